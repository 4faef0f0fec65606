package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Title       string `json:"title" validate:"required,notblank" msg:"Room title is required"`
	Description string `json:"description" validate:"max=500" msg:"Description cannot exceed 500 characters"`
	Privacy     string `json:"privacy" validate:"omitempty,oneof=public private" msg:"Privacy must be either public or private"`
}

// UpdateRoomRequest replaces only the fields that are present and non-empty.
type UpdateRoomRequest struct {
	Title       string `json:"title"`
	Description string `json:"description" validate:"max=500" msg:"Description cannot exceed 500 characters"`
	Privacy     string `json:"privacy" validate:"omitempty,oneof=public private" msg:"Privacy must be either public or private"`
}

type ListRoomsQuery struct {
	Privacy string `query:"privacy" validate:"omitempty,oneof=public private" msg:"Privacy must be either public or private"`
}

type InviteUsersRequest struct {
	UserIds []string `json:"userIds"`
}

type InviteUsersResponse struct {
	Msg          string      `json:"msg"`
	InvitedUsers []uuid.UUID `json:"invitedUsers"`
}

type RoomResponse struct {
	Id           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Host         UserSummary   `json:"host"`
	Participants []UserSummary `json:"participants"`
	InvitedUsers []uuid.UUID   `json:"invitedUsers"`
	Moderators   []uuid.UUID   `json:"moderators"`
	Privacy      string        `json:"privacy"`
	IsActive     bool          `json:"isActive"`
	CreatedAt    time.Time     `json:"createdAt"`
}
