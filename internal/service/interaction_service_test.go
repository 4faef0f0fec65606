package service

import (
	"context"
	"testing"
	"time"

	"live-rooms-be/internal/dto"
	"live-rooms-be/internal/pkg/apperror"
	"live-rooms-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) interactionService(clock func() time.Time) IInteractionService {
	svc := NewInteractionService(e.factory, e.events, e.log)
	if clock != nil {
		svc.(*interactionService).now = clock
	}
	return svc
}

func TestAddInteractions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	user := env.seedUser(t, "ada")
	sessionId := uuid.New()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	svc := env.interactionService(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})

	msg, err := svc.AddMessage(ctx, user.Id, &dto.ContentInteractionRequest{SessionId: sessionId.String(), Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "message", msg.Type)
	assert.Equal(t, "hello", msg.Content)
	assert.Equal(t, "ada", msg.User.Name)
	assert.Equal(t, sessionId, msg.Session)

	reaction, err := svc.AddReaction(ctx, user.Id, &dto.ContentInteractionRequest{SessionId: sessionId.String(), Content: "👍"})
	require.NoError(t, err)
	assert.Equal(t, "reaction", reaction.Type)

	hand, err := svc.RaiseHand(ctx, user.Id, &dto.RaiseHandRequest{SessionId: sessionId.String()})
	require.NoError(t, err)
	assert.Equal(t, "handRaised", hand.Type)
	assert.Empty(t, hand.Content)

	// another session stays separate
	_, err = svc.AddMessage(ctx, user.Id, &dto.ContentInteractionRequest{SessionId: uuid.NewString(), Content: "elsewhere"})
	require.NoError(t, err)

	list, err := svc.ListBySession(ctx, sessionId)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []uuid.UUID{msg.Id, reaction.Id, hand.Id}, []uuid.UUID{list[0].Id, list[1].Id, list[2].Id})
	assert.Equal(t, "ada", list[2].User.Name)

	assert.Contains(t, env.events.types(), events.InteractionRecorded)
}

func TestListBySessionBreaksTimestampTiesById(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	user := env.seedUser(t, "ada")
	sessionId := uuid.New()

	same := time.Date(2026, 3, 1, 10, 0, 1, 0, time.UTC)
	times := []time.Time{same, same, same, same.Add(-time.Second)}
	calls := 0
	svc := env.interactionService(func() time.Time {
		at := times[calls]
		calls++
		return at
	})

	var recorded []uuid.UUID
	for _, content := range []string{"first", "second", "third", "earliest"} {
		res, err := svc.AddMessage(ctx, user.Id, &dto.ContentInteractionRequest{SessionId: sessionId.String(), Content: content})
		require.NoError(t, err)
		recorded = append(recorded, res.Id)
	}

	list, err := svc.ListBySession(ctx, sessionId)
	require.NoError(t, err)
	require.Len(t, list, 4)

	// the earlier timestamp wins, then equal timestamps fall back to id order
	assert.Equal(t, "earliest", list[0].Content)
	assert.Equal(t, []string{"first", "second", "third"}, []string{list[1].Content, list[2].Content, list[3].Content})
	for i := 1; i < 3; i++ {
		assert.Equal(t, list[i].Timestamp, list[i+1].Timestamp)
		assert.Less(t, list[i].Id.String(), list[i+1].Id.String())
	}
	assert.Equal(t, recorded[3], list[0].Id)
}

func TestAddInteractionValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	user := env.seedUser(t, "ada")
	svc := env.interactionService(nil)

	_, err := svc.AddMessage(ctx, user.Id, &dto.ContentInteractionRequest{SessionId: "not-a-uuid", Content: "hi"})
	assert.ErrorIs(t, err, apperror.ErrInvalidSessionID)

	_, err = svc.AddReaction(ctx, user.Id, &dto.ContentInteractionRequest{SessionId: uuid.NewString()})
	assert.ErrorIs(t, err, apperror.ErrContentRequired)
}

func TestListBySessionEmpty(t *testing.T) {
	env := newTestEnv()
	list, err := env.interactionService(nil).ListBySession(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, list)
}
