// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type OTPPurpose string

const (
	OTPPurposeVerifyEmail   OTPPurpose = "verify_email"
	OTPPurposeResetPassword OTPPurpose = "reset_password"
)

// OneTimeCode is the pending code held on a user. At most one exists at a
// time, so issuing a new code replaces the previous one.
type OneTimeCode struct {
	Code      string
	Purpose   OTPPurpose
	ExpiresAt time.Time
}

// Matches reports whether code is valid for purpose at the given instant.
func (c *OneTimeCode) Matches(code string, purpose OTPPurpose, now time.Time) bool {
	if c == nil || c.Code == "" {
		return false
	}
	return c.Code == code && c.Purpose == purpose && now.Before(c.ExpiresAt)
}

type User struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	IsVerified   bool
	OTP          *OneTimeCode
	ProfilePic   string
	Bio          string
	CreatedAt    time.Time
}
