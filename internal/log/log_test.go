package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(" info "))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(""))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("nonsense"))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info"}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str(FieldKey, "a0").Msg("generated")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "generated", line["message"])
	assert.Equal(t, "a0", line[FieldKey])
	assert.Equal(t, "info", line["level"])
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Pretty: true}, &buf)
	logger.Debug().Msg("pretty")
	assert.Contains(t, buf.String(), "pretty")
	assert.NotContains(t, buf.String(), `"message"`)
}
