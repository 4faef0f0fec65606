package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Room struct {
	Id           uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string                      `gorm:"type:varchar(255);not null"`
	Description  string                      `gorm:"type:varchar(500)"`
	HostId       uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Participants datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	InvitedUsers datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Moderators   datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Privacy      string                      `gorm:"type:varchar(16);not null;index:idx_rooms_active_privacy,priority:2"`
	IsActive     bool                        `gorm:"not null;index:idx_rooms_active_privacy,priority:1"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime"`
}

func (Room) TableName() string {
	return "rooms"
}
