package dto

import "github.com/google/uuid"

type MessageResponse struct {
	Msg string `json:"msg"`
}

// UserSummary is a user reference with its display name resolved.
type UserSummary struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}
