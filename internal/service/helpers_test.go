package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"live-rooms-be/internal/dto"
	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/pkg/logger"
	"live-rooms-be/internal/pkg/token"
	"live-rooms-be/internal/repository/memory"
	"live-rooms-be/internal/repository/unitofwork"
	"live-rooms-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type capturedMail struct {
	mu       sync.Mutex
	messages []dto.OTPMailMessage
	err      error
}

func (c *capturedMail) Publish(ctx context.Context, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	var msg dto.OTPMailMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return err
	}
	c.messages = append(c.messages, msg)
	return nil
}

func (c *capturedMail) last(t *testing.T) dto.OTPMailMessage {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.messages, "no mail was queued")
	return c.messages[len(c.messages)-1]
}

type capturedEvents struct {
	mu     sync.Mutex
	events []events.Event
}

func (c *capturedEvents) Publish(ctx context.Context, event events.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

func (c *capturedEvents) types() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.events))
	for i, e := range c.events {
		out[i] = e.EventType()
	}
	return out
}

type testEnv struct {
	factory unitofwork.RepositoryFactory
	tokens  *token.JWTManager
	mail    *capturedMail
	events  *capturedEvents
	log     logger.ILogger
}

func newTestEnv() *testEnv {
	return &testEnv{
		factory: unitofwork.NewMemoryRepositoryFactory(memory.NewStore()),
		tokens:  token.NewJWTManager("test-secret", time.Hour),
		mail:    &capturedMail{},
		events:  &capturedEvents{},
		log:     logger.NewNopLogger(),
	}
}

func (e *testEnv) authService() *authService {
	svc := NewAuthService(e.factory, e.tokens, e.mail, e.events, e.log, AuthConfig{
		OTPTTL:   time.Hour,
		HashCost: bcrypt.MinCost,
	})
	return svc.(*authService)
}

// seedUser stores a verified user directly.
func (e *testEnv) seedUser(t *testing.T, name string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		Id:           uuid.New(),
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: string(hash),
		IsVerified:   true,
		CreatedAt:    time.Now(),
	}
	uow := e.factory.NewUnitOfWork(context.Background())
	require.NoError(t, uow.UserRepository().Create(context.Background(), user))
	return user
}
