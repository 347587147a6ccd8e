// Package config loads orderkey settings from flags, environment variables
// and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/ntauth/orderkey"
	"github.com/ntauth/orderkey/internal/log"
)

// EnvPrefix is prepended to every environment variable, e.g. ORDERKEY_ALPHABET.
const EnvPrefix = "ORDERKEY"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the settings shared by all commands.
type Config struct {
	Alphabet string     `mapstructure:"alphabet"`
	Format   string     `mapstructure:"format"`
	Jitter   int        `mapstructure:"jitter"`
	Seed     int64      `mapstructure:"seed"`
	Log      log.Config `mapstructure:"log"`
}

// Load reads configuration from file and environment variables. When
// configFile is empty, ORDERKEY_CONFIG is consulted and then orderkey.yaml
// is searched for in the working directory and $HOME/.orderkey. A missing
// config file is not an error.
func Load(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("alphabet", "base62")
	v.SetDefault("format", FormatText)
	v.SetDefault("jitter", 0)
	v.SetDefault("seed", 0)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", false)

	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("orderkey")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.orderkey")
	}

	// Environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil // Config file not found, rely on env vars
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return v, nil
}

// Decode unmarshals v into a Config and checks it.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the output format and jitter spread.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported format %q (want text, json or yaml)", c.Format)
	}
	if c.Jitter < 0 {
		return fmt.Errorf("jitter must not be negative, got %d", c.Jitter)
	}
	return nil
}

// ResolveAlphabet maps the alphabet setting to an orderkey.Alphabet. The
// names base10, base62 and base95 select the predefined alphabets; any other
// value is used as the literal digit string.
func (c Config) ResolveAlphabet() (orderkey.Alphabet, error) {
	switch strings.ToLower(c.Alphabet) {
	case "", "base62":
		return orderkey.Base62, nil
	case "base10":
		return orderkey.Base10, nil
	case "base95":
		return orderkey.Base95, nil
	}
	al, err := orderkey.NewAlphabet(c.Alphabet)
	if err != nil {
		return orderkey.Alphabet{}, fmt.Errorf("alphabet %q: %w", c.Alphabet, err)
	}
	return al, nil
}
