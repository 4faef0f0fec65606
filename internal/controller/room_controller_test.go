package controller

import (
	"testing"

	"live-rooms-be/internal/dto"
	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListRooms(t *testing.T) {
	rooms := &mockRoomService{}
	h := newHarness(NewRoomController(rooms))

	rooms.On("List", mock.Anything, entity.RoomPrivacyPrivate).Return([]dto.RoomResponse{{Title: "Standup"}}, nil).Once()
	status, body := h.do(t, fiber.MethodGet, "/api/rooms?privacy=private", "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body, 1)

	rooms.On("List", mock.Anything, entity.RoomPrivacy("")).Return([]dto.RoomResponse{}, nil).Once()
	status, body = h.do(t, fiber.MethodGet, "/api/rooms", "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []any{}, body)

	status, body = h.do(t, fiber.MethodGet, "/api/rooms?privacy=secret", "", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body.(map[string]any), "errors")
	rooms.AssertExpectations(t)
}

func TestShowRoom(t *testing.T) {
	rooms := &mockRoomService{}
	h := newHarness(NewRoomController(rooms))

	status, body := h.do(t, fiber.MethodGet, "/api/rooms/not-a-uuid", "", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Room not found", body.(map[string]any)["msg"])

	roomId := uuid.New()
	rooms.On("Show", mock.Anything, roomId).Return(&dto.RoomResponse{Id: roomId, Title: "Standup"}, nil).Once()
	status, body = h.do(t, fiber.MethodGet, "/api/rooms/"+roomId.String(), "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Standup", body.(map[string]any)["title"])
}

func TestCreateRoom(t *testing.T) {
	rooms := &mockRoomService{}
	h := newHarness(NewRoomController(rooms))
	hostId := uuid.New()

	status, _ := h.do(t, fiber.MethodPost, "/api/rooms", "", `{"title":"Standup"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body := h.do(t, fiber.MethodPost, "/api/rooms", h.bearer(t, hostId), `{"description":"no title"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, []any{map[string]any{"field": "title", "msg": "Room title is required"}}, body.(map[string]any)["errors"])

	rooms.On("Create", mock.Anything, hostId, &dto.CreateRoomRequest{Title: "Standup", Privacy: "private"}).
		Return(&dto.RoomResponse{Title: "Standup", Privacy: "private"}, nil).Once()
	status, body = h.do(t, fiber.MethodPost, "/api/rooms", h.bearer(t, hostId), `{"title":"Standup","privacy":"private"}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "private", body.(map[string]any)["privacy"])
	rooms.AssertExpectations(t)
}

func TestUpdateRoomForbidden(t *testing.T) {
	rooms := &mockRoomService{}
	h := newHarness(NewRoomController(rooms))
	roomId, userId := uuid.New(), uuid.New()

	rooms.On("Update", mock.Anything, roomId, userId, mock.Anything).Return(nil, apperror.ErrNotRoomHost).Once()
	status, body := h.do(t, fiber.MethodPut, "/api/rooms/"+roomId.String(), h.bearer(t, userId), `{"title":"Mine now"}`)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "Unauthorized", body.(map[string]any)["msg"])
}

func TestJoinTwice(t *testing.T) {
	rooms := &mockRoomService{}
	h := newHarness(NewRoomController(rooms))
	roomId, userId := uuid.New(), uuid.New()

	rooms.On("Join", mock.Anything, roomId, userId).Return(nil, apperror.ErrAlreadyMember).Once()
	status, body := h.do(t, fiber.MethodPost, "/api/rooms/"+roomId.String()+"/join", h.bearer(t, userId), "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Already a participant", body.(map[string]any)["msg"])

	rooms.On("Leave", mock.Anything, roomId, userId).Return(&dto.RoomResponse{Id: roomId}, nil).Once()
	status, _ = h.do(t, fiber.MethodPost, "/api/rooms/"+roomId.String()+"/leave", h.bearer(t, userId), "")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestInviteSkipsMalformedIds(t *testing.T) {
	rooms := &mockRoomService{}
	h := newHarness(NewRoomController(rooms))
	roomId, hostId, guest := uuid.New(), uuid.New(), uuid.New()

	rooms.On("InviteUsers", mock.Anything, roomId, hostId, []uuid.UUID{guest}).
		Return(&dto.InviteUsersResponse{Msg: "Users invited successfully", InvitedUsers: []uuid.UUID{guest}}, nil).Once()

	status, body := h.do(t, fiber.MethodPost, "/api/rooms/"+roomId.String()+"/invite", h.bearer(t, hostId),
		`{"userIds":["bogus","`+guest.String()+`"]}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []any{guest.String()}, body.(map[string]any)["invitedUsers"])
	rooms.AssertExpectations(t)
}

func TestAddModerator(t *testing.T) {
	rooms := &mockRoomService{}
	h := newHarness(NewRoomController(rooms))
	roomId, hostId, guest := uuid.New(), uuid.New(), uuid.New()

	status, body := h.do(t, fiber.MethodPut, "/api/rooms/"+roomId.String()+"/moderate/bogus", h.bearer(t, hostId), "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid user id", body.(map[string]any)["msg"])

	rooms.On("AddModerator", mock.Anything, roomId, hostId, guest).Return(&dto.MessageResponse{Msg: "User is now a moderator"}, nil).Once()
	status, body = h.do(t, fiber.MethodPut, "/api/rooms/"+roomId.String()+"/moderate/"+guest.String(), h.bearer(t, hostId), "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "User is now a moderator", body.(map[string]any)["msg"])
}
