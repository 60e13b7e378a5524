package log_test

import (
	"bytes"
	"testing"

	"github.com/on-the-ground/computed_views/views/log"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	sink := log.Writer(&buf)

	sink("[Users] - **** ActiveUsers **** - Recomputations: 0 => 1")
	sink("second")

	assert.Equal(t, "[Users] - **** ActiveUsers **** - Recomputations: 0 => 1\nsecond\n", buf.String())
}

func TestZap(t *testing.T) {
	tests := []struct {
		level log.Level
		want  zapcore.Level
	}{
		{level: log.LevelInfo, want: zapcore.InfoLevel},
		{level: log.LevelWarn, want: zapcore.WarnLevel},
		{level: log.LevelError, want: zapcore.ErrorLevel},
		{level: log.LevelDebug, want: zapcore.DebugLevel},
		{level: log.Level("verbose"), want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			sink := log.Zap(zap.New(core), tt.level)

			sink("recomputed")

			entries := logs.All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tt.want, entries[0].Level)
				assert.Equal(t, "recomputed", entries[0].Message)
			}
		})
	}
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { log.Nop()("ignored") })
}
