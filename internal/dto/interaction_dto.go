package dto

import (
	"time"

	"github.com/google/uuid"
)

type ContentInteractionRequest struct {
	SessionId string `json:"sessionId" validate:"required" msg:"Session id is required"`
	Content   string `json:"content" validate:"required" msg:"Content is required"`
}

type RaiseHandRequest struct {
	SessionId string `json:"sessionId" validate:"required" msg:"Session id is required"`
}

type InteractionResponse struct {
	Id        uuid.UUID   `json:"id"`
	Session   uuid.UUID   `json:"session"`
	User      UserSummary `json:"user"`
	Type      string      `json:"type"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}
