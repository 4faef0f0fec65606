package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Session struct {
	Id           uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoomId       uuid.UUID                   `gorm:"type:uuid;not null;index"`
	HostId       uuid.UUID                   `gorm:"type:uuid;not null"`
	Participants datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	StartedAt    time.Time                   `gorm:"not null"`
	EndedAt      *time.Time
	IsRecording  bool   `gorm:"not null"`
	RecordingURL string `gorm:"type:text"`
}

func (Session) TableName() string {
	return "sessions"
}
