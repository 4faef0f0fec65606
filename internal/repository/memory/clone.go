package memory

import (
	"live-rooms-be/internal/entity"

	"github.com/google/uuid"
)

func cloneIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return nil
	}
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	if u.OTP != nil {
		otp := *u.OTP
		c.OTP = &otp
	}
	return &c
}

func cloneRoom(r *entity.Room) *entity.Room {
	c := *r
	c.Participants = cloneIDs(r.Participants)
	c.InvitedUsers = cloneIDs(r.InvitedUsers)
	c.Moderators = cloneIDs(r.Moderators)
	return &c
}

func cloneSession(s *entity.Session) *entity.Session {
	c := *s
	c.Participants = cloneIDs(s.Participants)
	if s.EndedAt != nil {
		endedAt := *s.EndedAt
		c.EndedAt = &endedAt
	}
	return &c
}

func cloneInteraction(i *entity.Interaction) *entity.Interaction {
	c := *i
	return &c
}
