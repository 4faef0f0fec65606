package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"live-rooms-be/internal/dto"
	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/pkg/logger"
	"live-rooms-be/internal/pkg/serverutils"
	"live-rooms-be/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.MessageResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.MessageResponse)
	return res, args.Error(1)
}

func (m *mockAuthService) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) (*dto.MessageResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.MessageResponse)
	return res, args.Error(1)
}

func (m *mockAuthService) ResendVerification(ctx context.Context, req *dto.ResendVerificationRequest) (*dto.MessageResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.MessageResponse)
	return res, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.LoginResponse)
	return res, args.Error(1)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (*dto.MessageResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.MessageResponse)
	return res, args.Error(1)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*dto.MessageResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.MessageResponse)
	return res, args.Error(1)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	args := m.Called(ctx, userId)
	res, _ := args.Get(0).(*dto.UserProfileResponse)
	return res, args.Error(1)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	args := m.Called(ctx, userId, req)
	res, _ := args.Get(0).(*dto.UpdateProfileResponse)
	return res, args.Error(1)
}

type mockRoomService struct{ mock.Mock }

func (m *mockRoomService) Create(ctx context.Context, hostId uuid.UUID, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	args := m.Called(ctx, hostId, req)
	res, _ := args.Get(0).(*dto.RoomResponse)
	return res, args.Error(1)
}

func (m *mockRoomService) List(ctx context.Context, privacy entity.RoomPrivacy) ([]dto.RoomResponse, error) {
	args := m.Called(ctx, privacy)
	res, _ := args.Get(0).([]dto.RoomResponse)
	return res, args.Error(1)
}

func (m *mockRoomService) Show(ctx context.Context, roomId uuid.UUID) (*dto.RoomResponse, error) {
	args := m.Called(ctx, roomId)
	res, _ := args.Get(0).(*dto.RoomResponse)
	return res, args.Error(1)
}

func (m *mockRoomService) Update(ctx context.Context, roomId, callerId uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	args := m.Called(ctx, roomId, callerId, req)
	res, _ := args.Get(0).(*dto.RoomResponse)
	return res, args.Error(1)
}

func (m *mockRoomService) Join(ctx context.Context, roomId, callerId uuid.UUID) (*dto.RoomResponse, error) {
	args := m.Called(ctx, roomId, callerId)
	res, _ := args.Get(0).(*dto.RoomResponse)
	return res, args.Error(1)
}

func (m *mockRoomService) Leave(ctx context.Context, roomId, callerId uuid.UUID) (*dto.RoomResponse, error) {
	args := m.Called(ctx, roomId, callerId)
	res, _ := args.Get(0).(*dto.RoomResponse)
	return res, args.Error(1)
}

func (m *mockRoomService) InviteUsers(ctx context.Context, roomId, callerId uuid.UUID, userIds []uuid.UUID) (*dto.InviteUsersResponse, error) {
	args := m.Called(ctx, roomId, callerId, userIds)
	res, _ := args.Get(0).(*dto.InviteUsersResponse)
	return res, args.Error(1)
}

func (m *mockRoomService) AddModerator(ctx context.Context, roomId, callerId, userId uuid.UUID) (*dto.MessageResponse, error) {
	args := m.Called(ctx, roomId, callerId, userId)
	res, _ := args.Get(0).(*dto.MessageResponse)
	return res, args.Error(1)
}

type mockSessionService struct{ mock.Mock }

func (m *mockSessionService) Start(ctx context.Context, callerId, roomId uuid.UUID) (*dto.SessionResponse, error) {
	args := m.Called(ctx, callerId, roomId)
	res, _ := args.Get(0).(*dto.SessionResponse)
	return res, args.Error(1)
}

func (m *mockSessionService) End(ctx context.Context, callerId, sessionId uuid.UUID) (*dto.EndSessionResponse, error) {
	args := m.Called(ctx, callerId, sessionId)
	res, _ := args.Get(0).(*dto.EndSessionResponse)
	return res, args.Error(1)
}

func (m *mockSessionService) GetParticipants(ctx context.Context, sessionId uuid.UUID) ([]dto.UserSummary, error) {
	args := m.Called(ctx, sessionId)
	res, _ := args.Get(0).([]dto.UserSummary)
	return res, args.Error(1)
}

func (m *mockSessionService) GetRecordingUrl(ctx context.Context, sessionId uuid.UUID) (*dto.RecordingResponse, error) {
	args := m.Called(ctx, sessionId)
	res, _ := args.Get(0).(*dto.RecordingResponse)
	return res, args.Error(1)
}

type mockInteractionService struct{ mock.Mock }

func (m *mockInteractionService) AddMessage(ctx context.Context, userId uuid.UUID, req *dto.ContentInteractionRequest) (*dto.InteractionResponse, error) {
	args := m.Called(ctx, userId, req)
	res, _ := args.Get(0).(*dto.InteractionResponse)
	return res, args.Error(1)
}

func (m *mockInteractionService) AddReaction(ctx context.Context, userId uuid.UUID, req *dto.ContentInteractionRequest) (*dto.InteractionResponse, error) {
	args := m.Called(ctx, userId, req)
	res, _ := args.Get(0).(*dto.InteractionResponse)
	return res, args.Error(1)
}

func (m *mockInteractionService) RaiseHand(ctx context.Context, userId uuid.UUID, req *dto.RaiseHandRequest) (*dto.InteractionResponse, error) {
	args := m.Called(ctx, userId, req)
	res, _ := args.Get(0).(*dto.InteractionResponse)
	return res, args.Error(1)
}

func (m *mockInteractionService) ListBySession(ctx context.Context, sessionId uuid.UUID) ([]dto.InteractionResponse, error) {
	args := m.Called(ctx, sessionId)
	res, _ := args.Get(0).([]dto.InteractionResponse)
	return res, args.Error(1)
}

// harness wires one controller behind the real error handler and JWT
// middleware.
type harness struct {
	app    *fiber.App
	tokens *token.JWTManager
}

type routeRegistrar interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
}

func newHarness(c routeRegistrar) *harness {
	tokens := token.NewJWTManager("controller-test", time.Hour)
	app := fiber.New(fiber.Config{ErrorHandler: serverutils.ErrorHandler(logger.NewNopLogger())})
	c.RegisterRoutes(app.Group("/api"), serverutils.NewJwtMiddleware(tokens))
	return &harness{app: app, tokens: tokens}
}

func (h *harness) bearer(t *testing.T, userId uuid.UUID) string {
	t.Helper()
	signed, err := h.tokens.Generate(userId)
	require.NoError(t, err)
	return "Bearer " + signed
}

func (h *harness) do(t *testing.T, method, path, auth, body string) (int, any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := h.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}
