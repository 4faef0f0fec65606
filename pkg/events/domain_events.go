package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserRegistered      = "USER_REGISTERED"
	UserVerified        = "USER_VERIFIED"
	RoomCreated         = "ROOM_CREATED"
	SessionStarted      = "SESSION_STARTED"
	SessionEnded        = "SESSION_ENDED"
	InteractionRecorded = "INTERACTION_RECORDED"
)

func NewUserRegistered(userID uuid.UUID, email string, at time.Time) Event {
	return newEnvelope(UserRegistered, at, map[string]interface{}{"user_id": userID.String(), "email": email})
}

func NewUserVerified(userID uuid.UUID, at time.Time) Event {
	return newEnvelope(UserVerified, at, map[string]interface{}{"user_id": userID.String()})
}

func NewRoomCreated(roomID, hostID uuid.UUID, privacy string, at time.Time) Event {
	return newEnvelope(RoomCreated, at, map[string]interface{}{
		"room_id": roomID.String(),
		"host_id": hostID.String(),
		"privacy": privacy,
	})
}

func NewSessionStarted(sessionID, roomID, hostID uuid.UUID, at time.Time) Event {
	return newEnvelope(SessionStarted, at, map[string]interface{}{
		"session_id": sessionID.String(),
		"room_id":    roomID.String(),
		"host_id":    hostID.String(),
	})
}

func NewSessionEnded(sessionID, roomID uuid.UUID, at time.Time) Event {
	return newEnvelope(SessionEnded, at, map[string]interface{}{
		"session_id": sessionID.String(),
		"room_id":    roomID.String(),
	})
}

func NewInteractionRecorded(interactionID, sessionID, userID uuid.UUID, kind string, at time.Time) Event {
	return newEnvelope(InteractionRecorded, at, map[string]interface{}{
		"interaction_id": interactionID.String(),
		"session_id":     sessionID.String(),
		"user_id":        userID.String(),
		"type":           kind,
	})
}
