// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"time"

	"live-rooms-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendVerificationOTP(toEmail, otp string, ttl time.Duration) error
	SendPasswordResetOTP(toEmail, otp string, ttl time.Duration) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	logger      logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string, log logger.ILogger) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
		logger:      log,
	}
}

func (s *emailService) SendVerificationOTP(toEmail, otp string, ttl time.Duration) error {
	return s.send(toEmail, "Email Verification - OTP", verificationBody(otp, ttl))
}

func (s *emailService) SendPasswordResetOTP(toEmail, otp string, ttl time.Duration) error {
	return s.send(toEmail, "Password Reset - OTP", passwordResetBody(otp, ttl))
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "Failed to send email", map[string]interface{}{
			"to":      toEmail,
			"subject": subject,
			"error":   err.Error(),
		})
		return err
	}

	s.logger.Info("MAILER", "Email sent", map[string]interface{}{"to": toEmail, "subject": subject})
	return nil
}

func verificationBody(otp string, ttl time.Duration) string {
	return fmt.Sprintf(`<p>Your OTP for email verification is: <b>%s</b>. It is valid for %s.</p>`, otp, formatTTL(ttl))
}

func passwordResetBody(otp string, ttl time.Duration) string {
	return fmt.Sprintf(`<p>Your OTP for password reset is: <b>%s</b>. It is valid for %s.</p>`, otp, formatTTL(ttl))
}

// formatTTL renders whole hours or minutes ("1 hour", "15 minutes").
func formatTTL(ttl time.Duration) string {
	if ttl >= time.Hour && ttl%time.Hour == 0 {
		return plural(int(ttl/time.Hour), "hour")
	}
	minutes := int(ttl / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return plural(minutes, "minute")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
