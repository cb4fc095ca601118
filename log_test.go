package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := newLogger(&bytes.Buffer{}, tt.level)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewLoggerWritesConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "info")

	logger.Debug().Msg("hidden")
	logger.Warn().Str("torrent", "A").Msg("couldn't get episodes")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "couldn't get episodes")
	assert.Contains(t, out, "torrent=")
}
