// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"strings"

	"live-rooms-be/internal/pkg/apperror"
	"live-rooms-be/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userIDKey = "user_id"

// NewJwtMiddleware accepts "Bearer <token>" or a bare token in the
// Authorization header and stores the caller's id in Locals.
func NewJwtMiddleware(tokens token.Manager) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		raw := strings.TrimSpace(strings.TrimPrefix(ctx.Get(fiber.HeaderAuthorization), "Bearer "))
		if raw == "" {
			return apperror.ErrNoToken
		}

		userID, err := tokens.Parse(raw)
		if err != nil {
			return apperror.ErrInvalidToken
		}

		ctx.Locals(userIDKey, userID)
		return ctx.Next()
	}
}

// CurrentUserID returns the id stored by the JWT middleware.
func CurrentUserID(ctx *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := ctx.Locals(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, apperror.ErrUnauthorizedAccess
	}
	return userID, nil
}
