package controller

import (
	"live-rooms-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// bindBody parses the JSON body into req and runs its validate tags.
func bindBody(ctx *fiber.Ctx, req any) error {
	if err := ctx.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return serverutils.ValidateRequest(req)
}

// pathUUID reads a uuid path parameter, returning invalid when it does not
// parse.
func pathUUID(ctx *fiber.Ctx, name string, invalid error) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, invalid
	}
	return id, nil
}
