package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, h fiber.Handler) (int, ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/", h)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestFromFiberError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
		msg    string
	}{
		{"bad request", fiber.NewError(fiber.StatusBadRequest, "invalid uuid"), 400, "BAD_REQUEST", "invalid uuid"},
		{"forbidden", fiber.NewError(fiber.StatusForbidden, "nope"), 403, "FORBIDDEN", "nope"},
		{"rate limited", fiber.ErrTooManyRequests, 429, "TOO_MANY_REQUESTS", "Too Many Requests"},
		{"plain error hides details", errors.New("pq: connection refused"), 500, "INTERNAL_ERROR", "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := call(t, func(c *fiber.Ctx) error { return FromFiberError(c, tt.err) })
			assert.Equal(t, tt.status, status)
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.ErrorCode)
			assert.Equal(t, tt.msg, body.Message)
		})
	}
}

func TestValidationFieldErrors(t *testing.T) {
	type req struct {
		Text string `validate:"required"`
		Age  int    `validate:"min=1,max=3"`
	}

	err := validator.New().Struct(req{Age: 9})
	require.Error(t, err)

	got := ValidationFieldErrors(err)
	assert.Equal(t, []string{"required"}, got["Text"])
	assert.Equal(t, []string{"max"}, got["Age"])

	other := ValidationFieldErrors(errors.New("boom"))
	assert.Equal(t, []string{"boom"}, other["_"])
}

func TestJsonValidationError(t *testing.T) {
	status, body := call(t, func(c *fiber.Ctx) error {
		return JsonValidationError(c, map[string][]string{"Text": {"required"}})
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", body.ErrorCode)
	assert.Equal(t, []string{"required"}, body.Errors["Text"])
}
