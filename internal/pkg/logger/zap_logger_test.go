package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerAttachesModuleAndDetails(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Info("AUTH", "user registered", map[string]interface{}{"email": "a@example.com"})
	l.Warn("ROOM", "no details", nil)

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "user registered", entries[0].Message)
	assert.Equal(t, "AUTH", first["module"])
	assert.Equal(t, map[string]interface{}{"email": "a@example.com"}, first["details"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, map[string]interface{}{}, entries[1].ContextMap()["details"])
}

func TestZapLoggerErrorRef(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	l := NewFromZap(zap.New(core))

	l.Debug("X", "dropped", nil)
	l.Error("SESSION", "store failed", map[string]interface{}{"error": "timeout"})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "timeout", entries[0].ContextMap()["error_ref"])
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Error("X", "ignored", nil)
	assert.NoError(t, l.Sync())
}
