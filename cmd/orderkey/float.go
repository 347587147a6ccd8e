package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ntauth/orderkey/internal/log"
)

type approximation struct {
	Key   string  `json:"key" yaml:"key"`
	Value float64 `json:"value" yaml:"value"`
}

func (a *app) floatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "float KEY...",
		Short: "Print the approximate numeric value of keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]approximation, 0, len(args))
			lines := make([]string, 0, len(args))
			for _, key := range args {
				f, err := a.al.Float64Approx(key)
				if err != nil {
					a.logger.Error().Str(log.FieldKey, key).Err(err).Msg("approximation failed")
					return err
				}
				results = append(results, approximation{Key: key, Value: f})
				lines = append(lines, key+"\t"+strconv.FormatFloat(f, 'g', -1, 64))
			}
			return a.render(cmd.OutOrStdout(), results, lines)
		},
	}
}
