package controller

import (
	"strings"

	"live-rooms-be/internal/dto"
	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/pkg/apperror"
	"live-rooms-be/internal/pkg/serverutils"
	"live-rooms-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRoomController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Join(ctx *fiber.Ctx) error
	Leave(ctx *fiber.Ctx) error
	Invite(ctx *fiber.Ctx) error
	AddModerator(ctx *fiber.Ctx) error
}

type roomController struct {
	service service.IRoomService
}

func NewRoomController(service service.IRoomService) IRoomController {
	return &roomController{service: service}
}

func (c *roomController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/rooms")

	// Public endpoints
	h.Get("/", c.List)
	h.Get("/:id", c.Show)

	// Authenticated endpoints
	h.Post("/", jwtMiddleware, c.Create)
	h.Put("/:id", jwtMiddleware, c.Update)
	h.Post("/:id/join", jwtMiddleware, c.Join)
	h.Post("/:id/leave", jwtMiddleware, c.Leave)
	h.Post("/:id/invite", jwtMiddleware, c.Invite)
	h.Put("/:id/moderate/:userId", jwtMiddleware, c.AddModerator)
}

func (c *roomController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateRoomRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *roomController) List(ctx *fiber.Ctx) error {
	var query dto.ListRoomsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	if err := serverutils.ValidateRequest(&query); err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), entity.RoomPrivacy(query.Privacy))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *roomController) Show(ctx *fiber.Ctx) error {
	roomId, err := pathUUID(ctx, "id", apperror.ErrRoomNotFound)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), roomId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *roomController) Update(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	roomId, err := pathUUID(ctx, "id", apperror.ErrRoomNotFound)
	if err != nil {
		return err
	}

	var req dto.UpdateRoomRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), roomId, userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *roomController) Join(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	roomId, err := pathUUID(ctx, "id", apperror.ErrRoomNotFound)
	if err != nil {
		return err
	}

	res, err := c.service.Join(ctx.UserContext(), roomId, userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *roomController) Leave(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	roomId, err := pathUUID(ctx, "id", apperror.ErrRoomNotFound)
	if err != nil {
		return err
	}

	res, err := c.service.Leave(ctx.UserContext(), roomId, userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// Invite drops ids that are not uuids; unknown users are dropped by the
// service.
func (c *roomController) Invite(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	roomId, err := pathUUID(ctx, "id", apperror.ErrRoomNotFound)
	if err != nil {
		return err
	}

	var req dto.InviteUsersRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	invitees := make([]uuid.UUID, 0, len(req.UserIds))
	for _, raw := range req.UserIds {
		if id, err := uuid.Parse(strings.TrimSpace(raw)); err == nil {
			invitees = append(invitees, id)
		}
	}

	res, err := c.service.InviteUsers(ctx.UserContext(), roomId, userId, invitees)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *roomController) AddModerator(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	roomId, err := pathUUID(ctx, "id", apperror.ErrRoomNotFound)
	if err != nil {
		return err
	}
	moderatorId, err := pathUUID(ctx, "userId", apperror.ErrInvalidUserID)
	if err != nil {
		return err
	}

	res, err := c.service.AddModerator(ctx.UserContext(), roomId, userId, moderatorId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
