package main

import (
	"github.com/spf13/cobra"

	"github.com/ntauth/orderkey"
	"github.com/ntauth/orderkey/internal/log"
)

type ranksResult struct {
	Bucket uint8    `json:"bucket" yaml:"bucket"`
	Ranks  []string `json:"ranks" yaml:"ranks"`
}

func (a *app) rankCmd() *cobra.Command {
	var (
		bucket        uint8
		after, before string
		count         uint
	)
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Generate bucketed ranks of the form bucket|key",
		Long: `Generate lexoranks in a bucket. Bounds are given in the bucket|key form
and must belong to --bucket. Rank keys always use the base62 alphabet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := parseBound(after)
			if err != nil {
				return err
			}
			hi, err := parseBound(before)
			if err != nil {
				return err
			}

			ranks, err := orderkey.NRanksBetween(orderkey.Bucket(bucket), lo, hi, count)
			if err != nil {
				a.logger.Error().
					Uint8(log.FieldBucket, bucket).
					Str(log.FieldAfter, after).
					Str(log.FieldBefore, before).
					Err(err).
					Msg("rank generation failed")
				return err
			}

			lines := make([]string, len(ranks))
			for i, rk := range ranks {
				lines[i] = rk.String()
			}
			a.logger.Debug().Uint8(log.FieldBucket, bucket).Strs(log.FieldKey, lines).Msg("ranks generated")
			return a.render(cmd.OutOrStdout(), ranksResult{Bucket: bucket, Ranks: lines}, lines)
		},
	}
	cmd.Flags().Uint8VarP(&bucket, "bucket", "b", 0, "Bucket the ranks belong to")
	cmd.Flags().StringVar(&after, "after", "", "Lower bound rank (bucket|key); empty for none")
	cmd.Flags().StringVar(&before, "before", "", "Upper bound rank (bucket|key); empty for none")
	cmd.Flags().UintVarP(&count, "count", "n", 1, "Number of ranks to generate")
	return cmd
}

func parseBound(s string) (*orderkey.Lexorank, error) {
	if s == "" {
		return nil, nil
	}
	rk, err := orderkey.ParseLexorank(s)
	if err != nil {
		return nil, err
	}
	return &rk, nil
}
