package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartSessionRequest struct {
	RoomId string `json:"roomId" validate:"required" msg:"Room id is required"`
}

type SessionResponse struct {
	Id           uuid.UUID   `json:"id"`
	Room         uuid.UUID   `json:"room"`
	Host         uuid.UUID   `json:"host"`
	Participants []uuid.UUID `json:"participants"`
	StartedAt    time.Time   `json:"startedAt"`
	EndedAt      *time.Time  `json:"endedAt,omitempty"`
	IsRecording  bool        `json:"isRecording"`
	RecordingUrl string      `json:"recordingUrl"`
}

type EndSessionResponse struct {
	Msg     string          `json:"msg"`
	Session SessionResponse `json:"session"`
}

type RecordingResponse struct {
	RecordingUrl string `json:"recordingUrl"`
}
