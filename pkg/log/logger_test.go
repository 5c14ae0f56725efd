package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer SetLogger(zerolog.New(nil).Level(zerolog.Disabled))

	logger := Logger()
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestSetupWithWriter(t *testing.T) {
	var buf bytes.Buffer
	SetupWithWriter("info", &buf)
	defer SetLogger(zerolog.New(nil).Level(zerolog.Disabled))

	logger := Logger()
	logger.Info().
		Str(ModelNameKey, "SGDRegressor").
		Str(OperationKey, "fit").
		Int(SamplesKey, 10).
		Msg("fit started")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "SGDRegressor", entry[ModelNameKey])
	assert.Equal(t, "fit", entry[OperationKey])
	assert.Equal(t, float64(10), entry[SamplesKey])
	assert.Contains(t, entry, "time")
}

func TestSetupWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetupWithWriter("warn", &buf)
	defer SetLogger(zerolog.New(nil).Level(zerolog.Disabled))

	logger := Logger()
	logger.Debug().Msg("filtered")
	logger.Info().Msg("filtered")
	assert.Zero(t, buf.Len())

	logger.Warn().Msg("kept")
	assert.Positive(t, buf.Len())
}

func TestSetupWithWriter_UnknownLevelDisables(t *testing.T) {
	var buf bytes.Buffer
	SetupWithWriter("verbose", &buf)
	defer SetLogger(zerolog.New(nil).Level(zerolog.Disabled))

	logger := Logger()
	logger.Error().Msg("filtered")
	assert.Zero(t, buf.Len())
}
