package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"live-rooms-be/internal/pkg/apperror"
	"live-rooms-be/internal/pkg/logger"
	"live-rooms-be/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger.NewNopLogger())})
}

func doRequest(t *testing.T, app *fiber.App, method, path, auth string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	if len(body) > 0 {
		require.NoError(t, json.Unmarshal(body, &out))
	}
	return resp.StatusCode, out
}

func TestJwtMiddleware(t *testing.T) {
	tokens := token.NewJWTManager("secret", time.Hour)
	userID := uuid.New()
	signed, err := tokens.Generate(userID)
	require.NoError(t, err)

	app := newTestApp()
	app.Get("/me", NewJwtMiddleware(tokens), func(ctx *fiber.Ctx) error {
		id, err := CurrentUserID(ctx)
		if err != nil {
			return err
		}
		return ctx.JSON(fiber.Map{"id": id})
	})

	tests := []struct {
		name       string
		auth       string
		wantStatus int
		wantMsg    string
	}{
		{"missing header", "", fiber.StatusUnauthorized, "No token provided, authorization denied"},
		{"garbage token", "Bearer not-a-token", fiber.StatusUnauthorized, "Token is not valid"},
		{"bearer token", "Bearer " + signed, fiber.StatusOK, ""},
		{"bare token", signed, fiber.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, fiber.MethodGet, "/me", tt.auth)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body["msg"])
			} else {
				assert.Equal(t, userID.String(), body["id"])
			}
		})
	}
}

func TestCurrentUserIDWithoutMiddleware(t *testing.T) {
	app := newTestApp()
	app.Get("/me", func(ctx *fiber.Ctx) error {
		_, err := CurrentUserID(ctx)
		return err
	})

	status, body := doRequest(t, app, fiber.MethodGet, "/me", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized access, invalid token", body["msg"])
}

func TestErrorHandler(t *testing.T) {
	app := newTestApp()
	app.Get("/forbidden", func(ctx *fiber.Ctx) error { return apperror.ErrNotRoomHost })
	app.Get("/internal", func(ctx *fiber.Ctx) error { return apperror.Internal(errors.New("db password leaked")) })
	app.Get("/plain", func(ctx *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/bad", func(ctx *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadRequest, "Invalid request body") })
	app.Get("/invalid", func(ctx *fiber.Ctx) error {
		return &ValidationError{Fields: []FieldError{{Field: "title", Msg: "Room title is required"}}}
	})
	app.Use(func(ctx *fiber.Ctx) error { return fiber.ErrNotFound })

	status, body := doRequest(t, app, fiber.MethodGet, "/forbidden", "")
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "Unauthorized", body["msg"])

	status, body = doRequest(t, app, fiber.MethodGet, "/internal", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Something went wrong!", body["message"])
	assert.NotContains(t, body, "msg")

	status, body = doRequest(t, app, fiber.MethodGet, "/plain", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Something went wrong!", body["message"])

	status, body = doRequest(t, app, fiber.MethodGet, "/bad", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", body["msg"])

	status, body = doRequest(t, app, fiber.MethodGet, "/invalid", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, []any{map[string]any{"field": "title", "msg": "Room title is required"}}, body["errors"])

	status, body = doRequest(t, app, fiber.MethodGet, "/nowhere", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "API route not found", body["message"])
}

type signupForm struct {
	Name     string  `json:"name" validate:"required,notblank" msg:"Name is required"`
	Email    string  `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string  `json:"password" validate:"min=6"`
	Bio      *string `json:"bio" validate:"omitnil,max=5" msg:"Bio too long"`
}

type privacyQuery struct {
	Privacy string `query:"privacy" validate:"omitempty,oneof=public private" msg:"Privacy must be either public or private"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(&signupForm{Name: "Ada", Email: "ada@example.com", Password: "secret1"}))

	err := ValidateRequest(&signupForm{Email: "nope", Password: "123"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{
		{Field: "name", Msg: "Name is required"},
		{Field: "email", Msg: "Please include a valid email"},
		{Field: "password", Msg: "Invalid value for password"},
	}, verr.Fields)

	err = ValidateRequest(&signupForm{Name: " \t ", Email: "ada@example.com", Password: "secret1"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{{Field: "name", Msg: "Name is required"}}, verr.Fields)

	long := "far too long"
	err = ValidateRequest(signupForm{Name: "Ada", Email: "ada@example.com", Password: "secret1", Bio: &long})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{{Field: "bio", Msg: "Bio too long"}}, verr.Fields)

	err = ValidateRequest(&privacyQuery{Privacy: "secret"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "privacy", verr.Fields[0].Field)
	assert.NoError(t, ValidateRequest(&privacyQuery{}))
}

func TestRequestLoggerKeepsErrorResponses(t *testing.T) {
	app := newTestApp()
	app.Use(RequestLogger(logger.NewNopLogger()))
	app.Get("/gone", func(ctx *fiber.Ctx) error { return apperror.ErrRoomNotFound })

	status, body := doRequest(t, app, fiber.MethodGet, "/gone", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Room not found", body["msg"])
}
