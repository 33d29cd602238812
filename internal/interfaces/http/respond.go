package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/domain"
)

// respondError maps domain errors to status codes. entity names the resource
// for duplicate-field messages ("A truck is already registered with this
// reg_no.").
func respondError(c *fiber.Ctx, entity string, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "Validation failed.", Fields: ve.Fields,
		})
	}
	var de *domain.DuplicateFieldError
	if errors.As(err, &de) {
		v := de.AsValidation(entity)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "Validation failed.", Fields: v.Fields,
		})
	}
	switch {
	case errors.Is(err, domain.ErrNotVerified):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "NOT_VERIFIED", Message: "Your account is not verified.",
		})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "Invalid credentials.",
		})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "FORBIDDEN", Message: "You do not have permission to perform this action.",
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "The requested " + entity + " does not exist.",
		})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "CONFLICT", Message: "The request conflicts with the current state.",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_BODY", Message: "Request body could not be parsed.",
	})
}

// created wraps a new resource in the {"<key>": ..., "message": ...} envelope.
func created(c *fiber.Ctx, key string, payload any, message string) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{key: payload, "message": message})
}

// ok wraps a resource in the success envelope.
func ok(c *fiber.Ctx, key string, payload any) error {
	return c.JSON(fiber.Map{key: payload})
}

// listResult renders a collection. When friendly messages are on and the
// collection is empty, clients get a message instead of an empty array.
func listResult(c *fiber.Ctx, key string, count int, payload any, friendly bool) error {
	if friendly && count == 0 {
		return c.JSON(fiber.Map{"message": "You do not have any " + key + " registered."})
	}
	return c.JSON(fiber.Map{key: payload})
}

// deleted renders a soft-delete acknowledgement.
func deleted(c *fiber.Ctx, entity string) error {
	return c.JSON(fiber.Map{"message": "The " + entity + " has been removed."})
}
