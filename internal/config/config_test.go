package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntauth/orderkey"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	v, err := Load("")
	require.NoError(t, err)
	cfg, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, "base62", cfg.Alphabet)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 0, cfg.Jitter)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orderkey.yaml")
	data := "alphabet: base10\nformat: yaml\njitter: 3\nseed: 42\nlog:\n  level: debug\n  pretty: true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	v, err := Load(path)
	require.NoError(t, err)
	cfg, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, "base10", cfg.Alphabet)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, 3, cfg.Jitter)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orderkey.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\n"), 0o644))
	t.Setenv("ORDERKEY_CONFIG", path)
	t.Setenv("ORDERKEY_FORMAT", "json")
	t.Setenv("ORDERKEY_LOG_LEVEL", "error")

	v, err := Load("")
	require.NoError(t, err)
	cfg, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Config{Format: FormatJSON}.Validate())
	assert.Error(t, Config{Format: "csv"}.Validate())
	assert.Error(t, Config{Format: FormatText, Jitter: -1}.Validate())
}

func TestResolveAlphabet(t *testing.T) {
	test := func(name string, exp orderkey.Alphabet) {
		al, err := Config{Alphabet: name}.ResolveAlphabet()
		require.NoError(t, err)
		assert.Equal(t, exp.String(), al.String())
	}
	test("", orderkey.Base62)
	test("BASE10", orderkey.Base10)
	test("base95", orderkey.Base95)
	test("01", orderkey.MustAlphabet("01"))

	_, err := Config{Alphabet: "x"}.ResolveAlphabet()
	assert.ErrorIs(t, err, orderkey.ErrInvalidAlphabet)
}
