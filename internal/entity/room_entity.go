package entity

import (
	"time"

	"github.com/google/uuid"
)

type RoomPrivacy string

const (
	RoomPrivacyPublic  RoomPrivacy = "public"
	RoomPrivacyPrivate RoomPrivacy = "private"
)

func (p RoomPrivacy) Valid() bool {
	return p == RoomPrivacyPublic || p == RoomPrivacyPrivate
}

type Room struct {
	Id           uuid.UUID
	Title        string
	Description  string
	HostId       uuid.UUID
	Participants []uuid.UUID
	InvitedUsers []uuid.UUID
	Moderators   []uuid.UUID
	Privacy      RoomPrivacy
	IsActive     bool
	CreatedAt    time.Time
}

func (r *Room) IsHost(userId uuid.UUID) bool {
	return r.HostId == userId
}

func (r *Room) HasParticipant(userId uuid.UUID) bool {
	for _, id := range r.Participants {
		if id == userId {
			return true
		}
	}
	return false
}

// AddParticipant appends userId unless already present and reports whether
// the set changed.
func (r *Room) AddParticipant(userId uuid.UUID) bool {
	if r.HasParticipant(userId) {
		return false
	}
	r.Participants = append(r.Participants, userId)
	return true
}

func (r *Room) RemoveParticipant(userId uuid.UUID) {
	kept := make([]uuid.UUID, 0, len(r.Participants))
	for _, id := range r.Participants {
		if id != userId {
			kept = append(kept, id)
		}
	}
	r.Participants = kept
}

// AddModerator appends without a membership check, so a user promoted twice
// appears twice.
func (r *Room) AddModerator(userId uuid.UUID) {
	r.Moderators = append(r.Moderators, userId)
}
