package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	IsVerified   bool       `gorm:"not null"`
	Otp          *string    `gorm:"type:varchar(6)"`
	OtpPurpose   *string    `gorm:"type:varchar(32)"`
	OtpExpiresAt *time.Time
	ProfilePic   string    `gorm:"type:text"`
	Bio          string    `gorm:"type:varchar(200)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
