package model

import (
	"time"

	"github.com/google/uuid"
)

type Interaction struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;index:idx_interactions_session_time,priority:1"`
	UserId    uuid.UUID `gorm:"type:uuid;not null"`
	Type      string    `gorm:"type:varchar(16);not null"`
	Content   string    `gorm:"type:text"`
	Timestamp time.Time `gorm:"not null;index:idx_interactions_session_time,priority:2"`
}

func (Interaction) TableName() string {
	return "interactions"
}
