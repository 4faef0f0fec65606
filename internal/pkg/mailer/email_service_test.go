package mailer

import (
	"testing"
	"time"

	"live-rooms-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFormatTTL(t *testing.T) {
	tests := []struct {
		ttl  time.Duration
		want string
	}{
		{time.Hour, "1 hour"},
		{2 * time.Hour, "2 hours"},
		{90 * time.Minute, "90 minutes"},
		{15 * time.Minute, "15 minutes"},
		{time.Minute, "1 minute"},
		{10 * time.Second, "1 minute"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatTTL(tt.ttl))
		})
	}
}

func TestBodiesCarryCode(t *testing.T) {
	assert.Contains(t, verificationBody("123456", time.Hour), "<b>123456</b>")
	assert.Contains(t, verificationBody("123456", time.Hour), "valid for 1 hour")
	assert.Contains(t, passwordResetBody("654321", time.Hour), "password reset")
}

func TestLogEmailService(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewLogEmailService(logger.NewFromZap(zap.New(core)))

	require.NoError(t, svc.SendVerificationOTP("a@example.com", "111222", time.Hour))
	require.NoError(t, svc.SendPasswordResetOTP("a@example.com", "333444", time.Hour))

	entries := logs.All()
	require.Len(t, entries, 2)
	details := entries[0].ContextMap()["details"].(map[string]interface{})
	assert.Equal(t, "111222", details["otp"])
}
