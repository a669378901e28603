package helper

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerRendersEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Cohort not found")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("db gone")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Cohort not found", body.Message)
	assert.Equal(t, "NOT_FOUND", body.ErrorCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INTERNAL_ERROR", body.ErrorCode)
}

func TestFieldErrorsFlattensValidatorFailures(t *testing.T) {
	type req struct {
		Name  string `validate:"required"`
		Email string `validate:"omitempty,email"`
	}

	err := validator.New().Struct(req{Email: "nope"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Contains(t, fields["name"], "required")
	assert.Contains(t, fields["email"], "email")

	plain := FieldErrors(errors.New("broken payload"))
	assert.Equal(t, []string{"broken payload"}, plain["_"])
}
