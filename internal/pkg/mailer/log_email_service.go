package mailer

import (
	"time"

	"live-rooms-be/internal/pkg/logger"
)

type logEmailService struct {
	logger logger.ILogger
}

// NewLogEmailService is used when no SMTP host is configured. Codes are
// written to the log at debug level instead of being mailed.
func NewLogEmailService(log logger.ILogger) IEmailService {
	return &logEmailService{logger: log}
}

func (s *logEmailService) SendVerificationOTP(toEmail, otp string, ttl time.Duration) error {
	s.logger.Debug("MAILER", "Verification OTP (SMTP disabled)", map[string]interface{}{
		"to":  toEmail,
		"otp": otp,
		"ttl": formatTTL(ttl),
	})
	return nil
}

func (s *logEmailService) SendPasswordResetOTP(toEmail, otp string, ttl time.Duration) error {
	s.logger.Debug("MAILER", "Password reset OTP (SMTP disabled)", map[string]interface{}{
		"to":  toEmail,
		"otp": otp,
		"ttl": formatTTL(ttl),
	})
	return nil
}
