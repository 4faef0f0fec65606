// FILE: internal/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Auth DTOs ---

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,notblank" msg:"Name is required"`
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"min=6" msg:"Please enter a password with 6 or more characters"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Otp   string `json:"otp" validate:"required" msg:"OTP is required"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email" msg:"Please include a valid email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"required" msg:"Password is required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email" msg:"Please include a valid email"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Otp      string `json:"otp" validate:"required" msg:"OTP is required"`
	Password string `json:"password" validate:"min=6" msg:"Password must be at least 6 characters"`
}

// --- Profile DTOs ---

// UserProfileResponse never carries the password hash or pending code.
type UserProfileResponse struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"isVerified"`
	ProfilePic string    `json:"profilePic,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	Date       time.Time `json:"date"`
}

// UpdateProfileRequest fields are optional; an absent or empty value keeps
// the stored one.
type UpdateProfileRequest struct {
	Name       *string `json:"name" validate:"omitnil,min=1" msg:"Name is required"`
	Bio        *string `json:"bio" validate:"omitnil,max=200" msg:"Bio must not exceed 200 characters"`
	ProfilePic *string `json:"profilePic"`
}

type UpdateProfileResponse struct {
	User UserProfileResponse `json:"user"`
	Msg  string              `json:"msg"`
}

// --- Mail queue ---

type OTPMailKind string

const (
	OTPMailVerification  OTPMailKind = "verification"
	OTPMailPasswordReset OTPMailKind = "password_reset"
)

// OTPMailMessage is the payload published to the in-process mail topic.
type OTPMailMessage struct {
	Kind  OTPMailKind   `json:"kind"`
	Email string        `json:"email"`
	Code  string        `json:"code"`
	TTL   time.Duration `json:"ttl"`
}
