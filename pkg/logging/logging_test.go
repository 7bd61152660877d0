package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/skymap/pkg/logging"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)
	logger.Info().Str("catalog", "hip_main.dat.gz").Msg("parsing")

	out := buf.String()
	assert.Contains(t, out, `"catalog":"hip_main.dat.gz"`)
	assert.Contains(t, out, `"message":"parsing"`)
}

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
}

func TestNewLoggerFromConfigLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := logging.NewLoggerFromConfig(&logging.Config{
				Level:  tt.level,
				Format: "json",
				Output: "discard",
			})
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	logging.Ctx(ctx).Info().Msg("from context")
	assert.True(t, tl.Contains("from context"))
}

func TestCtxFallsBackToDefault(t *testing.T) {
	logger := logging.Ctx(context.Background())
	require.NotNil(t, logger)
}

func TestWithField(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithField(ctx, "stage", "boundaries")

	logging.Ctx(ctx).Info().Msg("parsed")
	assert.True(t, tl.Contains(`"stage":"boundaries"`))
}
