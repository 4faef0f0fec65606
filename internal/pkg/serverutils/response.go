package serverutils

import "github.com/gofiber/fiber/v2"

type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// ErrorResponse is the body for domain and auth failures.
func ErrorResponse(msg string) fiber.Map {
	return fiber.Map{"msg": msg}
}

// MessageResponse is the body for route-level failures (unknown route,
// unexpected error).
func MessageResponse(message string) fiber.Map {
	return fiber.Map{"message": message}
}
