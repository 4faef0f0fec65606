package nats

import (
	"testing"
	"time"

	"live-rooms-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	at := time.Date(2024, 4, 4, 10, 30, 0, 123, time.UTC)
	room, host := uuid.New(), uuid.New()
	ev := events.NewRoomCreated(room, host, "public", at)

	msg, err := encode(ev)
	require.NoError(t, err)
	assert.Equal(t, "events.ROOM_CREATED", msg.Subject)

	decoded, err := decode(msg.Subject, msg.Data, msg.Header)
	require.NoError(t, err)
	assert.Equal(t, events.RoomCreated, decoded.EventType())
	assert.Equal(t, at, decoded.Timestamp())
	assert.Equal(t, room.String(), decoded.Payload()["room_id"])
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := decode("events.X", []byte("{"), nil)
	assert.Error(t, err)
}

func TestSubjectRoundTrip(t *testing.T) {
	assert.Equal(t, "events.SESSION_ENDED", Subject(events.SessionEnded))
	assert.Equal(t, events.SessionEnded, EventType(Subject(events.SessionEnded)))
}
