package main

import (
	"github.com/spf13/cobra"

	"github.com/ntauth/orderkey/internal/log"
)

type keysResult struct {
	After  string   `json:"after,omitempty" yaml:"after,omitempty"`
	Before string   `json:"before,omitempty" yaml:"before,omitempty"`
	Keys   []string `json:"keys" yaml:"keys"`
}

func (a *app) betweenCmd() *cobra.Command {
	var (
		after, before string
		count         uint
	)
	cmd := &cobra.Command{
		Use:   "between",
		Short: "Generate keys between two optional bounds",
		Long: `Generate keys that sort strictly between --after and --before.
An omitted bound is open: without --after keys extend downwards,
without --before they extend upwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := a.logger.With().
				Str(log.FieldAfter, after).
				Str(log.FieldBefore, before).
				Uint(log.FieldCount, count).
				Int(log.FieldJitter, a.cfg.Jitter).
				Logger()

			var (
				keys []string
				err  error
			)
			if j := a.jitter(); j != nil {
				keys, err = a.al.NKeysBetweenJitter(after, before, count, j, a.cfg.Jitter)
			} else {
				keys, err = a.al.NKeysBetween(after, before, count)
			}
			if err != nil {
				logger.Error().Err(err).Msg("key generation failed")
				return err
			}
			logger.Debug().Strs(log.FieldKey, keys).Msg("keys generated")

			return a.render(cmd.OutOrStdout(), keysResult{After: after, Before: before, Keys: keys}, keys)
		},
	}
	cmd.Flags().StringVar(&after, "after", "", "Lower bound (exclusive); empty for none")
	cmd.Flags().StringVar(&before, "before", "", "Upper bound (exclusive); empty for none")
	cmd.Flags().UintVarP(&count, "count", "n", 1, "Number of keys to generate")
	cmd.Flags().Int("jitter", 0, "Randomize digits up to this many steps from the midpoint (0 disables)")
	cmd.Flags().Int64("seed", 0, "Seed for --jitter (0 picks a random seed)")
	return cmd
}
