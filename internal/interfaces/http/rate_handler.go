package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/application/usecase"
)

// RateHandler serves cargo-owner rate sheets.
type RateHandler struct {
	uc       *usecase.RateUseCase
	friendly bool
}

// NewRateHandler builds the rate handler.
func NewRateHandler(uc *usecase.RateUseCase, friendlyEmptyLists bool) *RateHandler {
	return &RateHandler{uc: uc, friendly: friendlyEmptyLists}
}

// Create godoc
// @Summary      Create a rate sheet
// @Tags         rates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRateRequest  true  "Charges and currency"
// @Success      201   {object}  dto.RateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/rates [post]
func (h *RateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateRate(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, "rate", err)
	}
	return created(c, "rate", out, "Rate created.")
}

// List godoc
// @Summary      List the acting cargo owner's rates
// @Tags         rates
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RateResponse
// @Router       /api/rates [get]
func (h *RateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListRates(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, "rate", err)
	}
	return listResult(c, "rates", len(out), out, h.friendly)
}

// Get godoc
// @Summary      Rate by id
// @Tags         rates
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Rate id"
// @Success      200  {object}  dto.RateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rates/{id} [get]
func (h *RateHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetRate(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, "rate", err)
	}
	return ok(c, "rate", out)
}

// Update godoc
// @Summary      Update a rate
// @Tags         rates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Rate id"
// @Param        body  body  dto.UpdateRateRequest  true  "Fields to change"
// @Success      200   {object}  dto.RateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rates/{id} [put]
func (h *RateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateRate(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, "rate", err)
	}
	return ok(c, "rate", out)
}

// Remove godoc
// @Summary      Remove (soft-delete) a rate
// @Tags         rates
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Rate id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rates/{id} [delete]
func (h *RateHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.RemoveRate(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, "rate", err)
	}
	return deleted(c, "rate")
}
