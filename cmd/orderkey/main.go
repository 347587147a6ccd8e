// Command orderkey generates and inspects fractional index keys.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ntauth/orderkey"
	"github.com/ntauth/orderkey/internal/config"
	"github.com/ntauth/orderkey/internal/log"
)

// app is the state shared by all commands once flags and config are loaded.
type app struct {
	configFile string

	cfg    config.Config
	al     orderkey.Alphabet
	logger zerolog.Logger
}

// flagKeys maps flag names to their config keys.
var flagKeys = map[string]string{
	"alphabet":   "alphabet",
	"format":     "format",
	"log-level":  "log.level",
	"log-pretty": "log.pretty",
	"jitter":     "jitter",
	"seed":       "seed",
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "orderkey",
		Short: "Generate lexicographically ordered keys for list positions",
		Long: `orderkey generates short string keys that sort lexicographically and can
always be extended with a new key between any two existing ones.

Configuration Sources (in order of precedence):
1. Command line flags
2. Environment variables (ORDERKEY_*)
3. Configuration file (--config, ORDERKEY_CONFIG, ./orderkey.yaml, ~/.orderkey/orderkey.yaml)

Examples:
  # First key of an empty list
  orderkey between

  # Key between two existing keys
  orderkey between --after a0 --before a1

  # Ten keys appended after a4, as JSON
  orderkey between --after a4 -n 10 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "Config file path")
	flags.StringP("alphabet", "a", "base62", "Digit alphabet: base10|base62|base95 or literal ascending digits")
	flags.StringP("format", "f", config.FormatText, "Output format: text|json|yaml")
	flags.String("log-level", "warn", "Log level: trace|debug|info|warn|error")
	flags.Bool("log-pretty", false, "Human readable logs on stderr")

	root.AddCommand(
		a.betweenCmd(),
		a.validateCmd(),
		a.floatCmd(),
		a.rankCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	v, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return fmt.Errorf("failed to bind flags: %w", bindErr)
	}

	cfg, err := config.Decode(v)
	if err != nil {
		return err
	}
	al, err := cfg.ResolveAlphabet()
	if err != nil {
		return err
	}

	a.cfg, a.al = cfg, al
	a.logger = log.New(cfg.Log, cmd.ErrOrStderr()).With().
		Str(log.FieldCommand, cmd.Name()).
		Logger()
	a.logger.Debug().
		Str(log.FieldAlphabet, al.String()).
		Str("config_file", v.ConfigFileUsed()).
		Msg("configuration loaded")
	return nil
}

// jitter returns the random source for jittered generation, or nil when
// jitter is disabled.
func (a *app) jitter() orderkey.Jitter {
	if a.cfg.Jitter == 0 {
		return nil
	}
	seed := a.cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	return orderkey.RandJitter{R: rand.New(rand.NewSource(seed))}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
