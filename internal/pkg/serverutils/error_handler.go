package serverutils

import (
	"errors"

	"live-rooms-be/internal/pkg/apperror"
	"live-rooms-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the fiber ErrorHandler. Controllers return errors and this
// decides the status and body. Internal detail is logged, never returned.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{Errors: validationErr.Fields})
		}

		var appErr *apperror.Error
		if errors.As(err, &appErr) && appErr.Kind != apperror.KindInternal {
			return ctx.Status(appErr.Kind.HTTPStatus()).JSON(ErrorResponse(appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			switch {
			case fiberErr.Code == fiber.StatusNotFound:
				return ctx.Status(fiber.StatusNotFound).JSON(MessageResponse("API route not found"))
			case fiberErr.Code < fiber.StatusInternalServerError:
				return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
			}
		}

		log.Error("HTTP", "Unhandled request error", map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"request_id": ctx.GetRespHeader(fiber.HeaderXRequestID),
			"error":      err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(MessageResponse("Something went wrong!"))
	}
}
