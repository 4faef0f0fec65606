package controller

import (
	"live-rooms-be/internal/dto"
	"live-rooms-be/internal/pkg/apperror"
	"live-rooms-be/internal/pkg/serverutils"
	"live-rooms-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInteractionController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	AddMessage(ctx *fiber.Ctx) error
	AddReaction(ctx *fiber.Ctx) error
	RaiseHand(ctx *fiber.Ctx) error
	ListBySession(ctx *fiber.Ctx) error
}

type interactionController struct {
	service service.IInteractionService
}

func NewInteractionController(service service.IInteractionService) IInteractionController {
	return &interactionController{service: service}
}

func (c *interactionController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/interactions")
	h.Post("/message", jwtMiddleware, c.AddMessage)
	h.Post("/reaction", jwtMiddleware, c.AddReaction)
	h.Post("/raise-hand", jwtMiddleware, c.RaiseHand)
	h.Get("/session/:sessionId", jwtMiddleware, c.ListBySession)
}

func (c *interactionController) AddMessage(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.ContentInteractionRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.AddMessage(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *interactionController) AddReaction(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.ContentInteractionRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.AddReaction(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *interactionController) RaiseHand(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.RaiseHandRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.RaiseHand(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *interactionController) ListBySession(ctx *fiber.Ctx) error {
	sessionId, err := pathUUID(ctx, "sessionId", apperror.ErrInvalidSessionID)
	if err != nil {
		return err
	}

	res, err := c.service.ListBySession(ctx.UserContext(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
