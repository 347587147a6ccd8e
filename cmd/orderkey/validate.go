package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ntauth/orderkey/internal/log"
)

type validation struct {
	Key   string `json:"key" yaml:"key"`
	Valid bool   `json:"valid" yaml:"valid"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate KEY...",
		Short: "Check that keys are well formed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]validation, 0, len(args))
			lines := make([]string, 0, len(args))
			invalid := 0
			for _, key := range args {
				res := validation{Key: key, Valid: true}
				if err := a.al.ValidateKey(key); err != nil {
					a.logger.Info().Str(log.FieldKey, key).Err(err).Msg("invalid key")
					res.Valid, res.Error = false, err.Error()
					invalid++
					lines = append(lines, fmt.Sprintf("%s\tinvalid: %s", key, err))
				} else {
					lines = append(lines, key+"\tok")
				}
				results = append(results, res)
			}
			if err := a.render(cmd.OutOrStdout(), results, lines); err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d keys invalid", invalid, len(args))
			}
			return nil
		},
	}
}
