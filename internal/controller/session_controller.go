package controller

import (
	"strings"

	"live-rooms-be/internal/dto"
	"live-rooms-be/internal/pkg/apperror"
	"live-rooms-be/internal/pkg/serverutils"
	"live-rooms-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Start(ctx *fiber.Ctx) error
	End(ctx *fiber.Ctx) error
	GetParticipants(ctx *fiber.Ctx) error
	GetRecordingUrl(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/sessions")
	h.Post("/", jwtMiddleware, c.Start)
	h.Put("/:id", jwtMiddleware, c.End)
	h.Get("/:id/participants", jwtMiddleware, c.GetParticipants)
	h.Get("/:id/recording", jwtMiddleware, c.GetRecordingUrl)
}

func (c *sessionController) Start(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.StartSessionRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	roomId, err := uuid.Parse(strings.TrimSpace(req.RoomId))
	if err != nil {
		return apperror.ErrRoomNotFound
	}

	res, err := c.service.Start(ctx.UserContext(), userId, roomId)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *sessionController) End(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	sessionId, err := pathUUID(ctx, "id", apperror.ErrSessionNotFound)
	if err != nil {
		return err
	}

	res, err := c.service.End(ctx.UserContext(), userId, sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *sessionController) GetParticipants(ctx *fiber.Ctx) error {
	sessionId, err := pathUUID(ctx, "id", apperror.ErrSessionNotFound)
	if err != nil {
		return err
	}

	res, err := c.service.GetParticipants(ctx.UserContext(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *sessionController) GetRecordingUrl(ctx *fiber.Ctx) error {
	sessionId, err := pathUUID(ctx, "id", apperror.ErrSessionNotFound)
	if err != nil {
		return err
	}

	res, err := c.service.GetRecordingUrl(ctx.UserContext(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
