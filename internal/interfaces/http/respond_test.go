package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/domain"
)

func getJSON(t *testing.T, app *fiber.App) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestListResult_FriendlyEmpty(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return listResult(c, "trucks", 0, []string{}, true)
	})

	status, body := getJSON(t, app)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "You do not have any trucks registered.", body["message"])
	assert.NotContains(t, body, "trucks")
}

func TestListResult_PlainEmpty(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return listResult(c, "trucks", 0, []string{}, false)
	})

	status, body := getJSON(t, app)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, body["trucks"])
	assert.NotContains(t, body, "message")
}

func TestListResult_NonEmpty(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return listResult(c, "trucks", 2, []string{"a", "b"}, true)
	})

	status, body := getJSON(t, app)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"a", "b"}, body["trucks"])
}

func TestRespondError_StatusMapping(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		code    string
		message string
	}{
		{domain.ErrNotVerified, http.StatusUnauthorized, "NOT_VERIFIED", "Your account is not verified."},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials."},
		{domain.ErrUserNotFound, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials."},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN", "You do not have permission to perform this action."},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "The requested truck does not exist."},
		{domain.ErrConflict, http.StatusConflict, "CONFLICT", "The request conflicts with the current state."},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL", "boom"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return respondError(c, "truck", tc.err)
			})

			status, body := getJSON(t, app)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body["code"])
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestRespondError_ValidationFields(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		ve := domain.NewValidationError("phone_number", "Enter a valid international phone number.")
		return respondError(c, "user", ve)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, []string{"Enter a valid international phone number."}, body.Fields["phone_number"])
}

func TestRespondError_DuplicateFieldNamesEntity(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return respondError(c, "truck", &domain.DuplicateFieldError{Field: "reg_no"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Contains(t, body.Fields, "reg_no")
	assert.Contains(t, body.Fields["reg_no"][0], "already registered")
}
