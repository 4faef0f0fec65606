package controller

import (
	"testing"

	"live-rooms-be/internal/dto"
	"live-rooms-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStartSession(t *testing.T) {
	sessions := &mockSessionService{}
	h := newHarness(NewSessionController(sessions))
	userId, roomId := uuid.New(), uuid.New()

	status, body := h.do(t, fiber.MethodPost, "/api/sessions", h.bearer(t, userId), `{"roomId":"nope"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Room not found", body.(map[string]any)["msg"])

	sessions.On("Start", mock.Anything, userId, roomId).Return(nil, apperror.ErrStartSessionDenied).Once()
	status, body = h.do(t, fiber.MethodPost, "/api/sessions", h.bearer(t, userId), `{"roomId":"`+roomId.String()+`"}`)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "Unauthorized to start session", body.(map[string]any)["msg"])

	sessions.On("Start", mock.Anything, userId, roomId).Return(&dto.SessionResponse{Room: roomId, Host: userId}, nil).Once()
	status, body = h.do(t, fiber.MethodPost, "/api/sessions", h.bearer(t, userId), `{"roomId":"`+roomId.String()+`"}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, roomId.String(), body.(map[string]any)["room"])
	assert.NotContains(t, body.(map[string]any), "endedAt")
}

func TestSessionRoutesRequireToken(t *testing.T) {
	h := newHarness(NewSessionController(&mockSessionService{}))

	status, body := h.do(t, fiber.MethodGet, "/api/sessions/"+uuid.NewString()+"/participants", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "No token provided, authorization denied", body.(map[string]any)["msg"])

	status, body = h.do(t, fiber.MethodGet, "/api/sessions/"+uuid.NewString()+"/unknown", "", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "API route not found", body.(map[string]any)["message"])
}

func TestEndSession(t *testing.T) {
	sessions := &mockSessionService{}
	h := newHarness(NewSessionController(sessions))
	userId, sessionId := uuid.New(), uuid.New()

	sessions.On("End", mock.Anything, userId, sessionId).Return(&dto.EndSessionResponse{Msg: "Session ended"}, nil).Once()
	status, body := h.do(t, fiber.MethodPut, "/api/sessions/"+sessionId.String(), h.bearer(t, userId), "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Session ended", body.(map[string]any)["msg"])

	status, _ = h.do(t, fiber.MethodPut, "/api/sessions/not-a-uuid", h.bearer(t, userId), "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRecordingOutcomesAreDistinct(t *testing.T) {
	sessions := &mockSessionService{}
	h := newHarness(NewSessionController(sessions))
	userId, missing, bare := uuid.New(), uuid.New(), uuid.New()

	sessions.On("GetRecordingUrl", mock.Anything, missing).Return(nil, apperror.ErrSessionNotFound).Once()
	sessions.On("GetRecordingUrl", mock.Anything, bare).Return(nil, apperror.ErrRecordingNotFound).Once()

	status, body := h.do(t, fiber.MethodGet, "/api/sessions/"+missing.String()+"/recording", h.bearer(t, userId), "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Session not found", body.(map[string]any)["msg"])

	status, body = h.do(t, fiber.MethodGet, "/api/sessions/"+bare.String()+"/recording", h.bearer(t, userId), "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "No recording available for this session", body.(map[string]any)["msg"])
}
