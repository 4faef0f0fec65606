package mongostore

import (
	"time"

	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/mapper"

	"github.com/google/uuid"
)

const (
	usersCollection        = "users"
	roomsCollection        = "rooms"
	sessionsCollection     = "sessions"
	interactionsCollection = "interactions"
)

type userDocument struct {
	ID           string     `bson:"_id"`
	Name         string     `bson:"name"`
	Email        string     `bson:"email"`
	PasswordHash string     `bson:"password_hash"`
	IsVerified   bool       `bson:"is_verified"`
	Otp          string     `bson:"otp,omitempty"`
	OtpPurpose   string     `bson:"otp_purpose,omitempty"`
	OtpExpiresAt *time.Time `bson:"otp_expires_at,omitempty"`
	ProfilePic   string     `bson:"profile_pic"`
	Bio          string     `bson:"bio"`
	CreatedAt    time.Time  `bson:"created_at"`
}

func newUserDocument(u *entity.User) userDocument {
	doc := userDocument{
		ID:           u.Id.String(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsVerified:   u.IsVerified,
		ProfilePic:   u.ProfilePic,
		Bio:          u.Bio,
		CreatedAt:    u.CreatedAt,
	}
	if u.OTP != nil {
		expiresAt := u.OTP.ExpiresAt
		doc.Otp = u.OTP.Code
		doc.OtpPurpose = string(u.OTP.Purpose)
		doc.OtpExpiresAt = &expiresAt
	}
	return doc
}

func (d userDocument) toEntity() *entity.User {
	user := &entity.User{
		Id:           parseID(d.ID),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		IsVerified:   d.IsVerified,
		ProfilePic:   d.ProfilePic,
		Bio:          d.Bio,
		CreatedAt:    d.CreatedAt,
	}
	if d.Otp != "" && d.OtpExpiresAt != nil {
		user.OTP = &entity.OneTimeCode{
			Code:      d.Otp,
			Purpose:   entity.OTPPurpose(d.OtpPurpose),
			ExpiresAt: *d.OtpExpiresAt,
		}
	}
	return user
}

type roomDocument struct {
	ID           string    `bson:"_id"`
	Title        string    `bson:"title"`
	Description  string    `bson:"description"`
	HostID       string    `bson:"host_id"`
	Participants []string  `bson:"participants"`
	InvitedUsers []string  `bson:"invited_users"`
	Moderators   []string  `bson:"moderators"`
	Privacy      string    `bson:"privacy"`
	IsActive     bool      `bson:"is_active"`
	CreatedAt    time.Time `bson:"created_at"`
}

func newRoomDocument(r *entity.Room) roomDocument {
	return roomDocument{
		ID:           r.Id.String(),
		Title:        r.Title,
		Description:  r.Description,
		HostID:       r.HostId.String(),
		Participants: mapper.UUIDsToStrings(r.Participants),
		InvitedUsers: mapper.UUIDsToStrings(r.InvitedUsers),
		Moderators:   mapper.UUIDsToStrings(r.Moderators),
		Privacy:      string(r.Privacy),
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
	}
}

func (d roomDocument) toEntity() *entity.Room {
	return &entity.Room{
		Id:           parseID(d.ID),
		Title:        d.Title,
		Description:  d.Description,
		HostId:       parseID(d.HostID),
		Participants: mapper.StringsToUUIDs(d.Participants),
		InvitedUsers: mapper.StringsToUUIDs(d.InvitedUsers),
		Moderators:   mapper.StringsToUUIDs(d.Moderators),
		Privacy:      entity.RoomPrivacy(d.Privacy),
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
	}
}

type sessionDocument struct {
	ID           string     `bson:"_id"`
	RoomID       string     `bson:"room_id"`
	HostID       string     `bson:"host_id"`
	Participants []string   `bson:"participants"`
	StartedAt    time.Time  `bson:"started_at"`
	EndedAt      *time.Time `bson:"ended_at,omitempty"`
	IsRecording  bool       `bson:"is_recording"`
	RecordingURL string     `bson:"recording_url"`
}

func newSessionDocument(s *entity.Session) sessionDocument {
	return sessionDocument{
		ID:           s.Id.String(),
		RoomID:       s.RoomId.String(),
		HostID:       s.HostId.String(),
		Participants: mapper.UUIDsToStrings(s.Participants),
		StartedAt:    s.StartedAt,
		EndedAt:      s.EndedAt,
		IsRecording:  s.IsRecording,
		RecordingURL: s.RecordingURL,
	}
}

func (d sessionDocument) toEntity() *entity.Session {
	return &entity.Session{
		Id:           parseID(d.ID),
		RoomId:       parseID(d.RoomID),
		HostId:       parseID(d.HostID),
		Participants: mapper.StringsToUUIDs(d.Participants),
		StartedAt:    d.StartedAt,
		EndedAt:      d.EndedAt,
		IsRecording:  d.IsRecording,
		RecordingURL: d.RecordingURL,
	}
}

type interactionDocument struct {
	ID        string    `bson:"_id"`
	SessionID string    `bson:"session_id"`
	UserID    string    `bson:"user_id"`
	Type      string    `bson:"type"`
	Content   string    `bson:"content"`
	Timestamp time.Time `bson:"timestamp"`
}

func newInteractionDocument(i *entity.Interaction) interactionDocument {
	return interactionDocument{
		ID:        i.Id.String(),
		SessionID: i.SessionId.String(),
		UserID:    i.UserId.String(),
		Type:      string(i.Payload.Type()),
		Content:   i.Payload.Content(),
		Timestamp: i.Timestamp,
	}
}

func (d interactionDocument) toEntity() (*entity.Interaction, error) {
	payload, err := entity.NewInteractionPayload(entity.InteractionType(d.Type), d.Content)
	if err != nil {
		return nil, err
	}
	return &entity.Interaction{
		Id:        parseID(d.ID),
		SessionId: parseID(d.SessionID),
		UserId:    parseID(d.UserID),
		Payload:   payload,
		Timestamp: d.Timestamp,
	}, nil
}

func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
