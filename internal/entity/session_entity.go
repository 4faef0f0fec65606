package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Id           uuid.UUID
	RoomId       uuid.UUID
	HostId       uuid.UUID
	Participants []uuid.UUID
	StartedAt    time.Time
	EndedAt      *time.Time
	IsRecording  bool
	RecordingURL string
}

func (s *Session) IsHost(userId uuid.UUID) bool {
	return s.HostId == userId
}

func (s *Session) Ended() bool {
	return s.EndedAt != nil
}
