package mongostore

import (
	"errors"
	"testing"
	"time"

	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestUserDocumentRoundTrip(t *testing.T) {
	expires := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	user := &entity.User{
		Id:           uuid.New(),
		Name:         "Grace",
		Email:        "grace@example.com",
		PasswordHash: "hash",
		OTP:          &entity.OneTimeCode{Code: "000111", Purpose: entity.OTPPurposeVerifyEmail, ExpiresAt: expires},
		CreatedAt:    expires.Add(-time.Hour),
	}

	doc := newUserDocument(user)
	assert.Equal(t, user.Id.String(), doc.ID)
	assert.Equal(t, "verify_email", doc.OtpPurpose)

	assert.Equal(t, user, doc.toEntity())
}

func TestUserDocumentWithoutOTP(t *testing.T) {
	doc := newUserDocument(&entity.User{Id: uuid.New()})

	assert.Empty(t, doc.Otp)
	assert.Nil(t, doc.OtpExpiresAt)
	assert.Nil(t, doc.toEntity().OTP)
}

func TestRoomDocumentRoundTrip(t *testing.T) {
	host := uuid.New()
	room := &entity.Room{
		Id:           uuid.New(),
		Title:        "Standup",
		HostId:       host,
		Participants: []uuid.UUID{host},
		InvitedUsers: []uuid.UUID{},
		Moderators:   []uuid.UUID{host, host},
		Privacy:      entity.RoomPrivacyPublic,
		IsActive:     true,
		CreatedAt:    time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, room, newRoomDocument(room).toEntity())
}

func TestInteractionDocumentRejectsUnknownType(t *testing.T) {
	doc := interactionDocument{ID: uuid.NewString(), Type: "poll"}
	_, err := doc.toEntity()
	assert.Error(t, err)
}

func TestInteractionDocumentRoundTrip(t *testing.T) {
	in := &entity.Interaction{
		Id:        uuid.New(),
		SessionId: uuid.New(),
		UserId:    uuid.New(),
		Payload:   entity.HandRaisedPayload{},
		Timestamp: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	out, err := newInteractionDocument(in).toEntity()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestTranslateError(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}

	assert.ErrorIs(t, translateError(dup), contract.ErrDuplicate)
	assert.NoError(t, translateError(nil))

	other := errors.New("timeout")
	assert.Equal(t, other, translateError(other))
}

func TestIndexesCoverLookups(t *testing.T) {
	names := map[string]string{}
	for _, idx := range indexes() {
		names[idx.collection] = *idx.model.Options.Name
	}

	assert.Equal(t, "uniq_email", names[usersCollection])
	assert.Equal(t, "idx_session_timestamp", names[interactionsCollection])
}
