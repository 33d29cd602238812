package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/application/usecase"
)

// DepotHandler serves depot registration and lookup.
type DepotHandler struct {
	uc       *usecase.DepotUseCase
	friendly bool
}

// NewDepotHandler builds the depot handler.
func NewDepotHandler(uc *usecase.DepotUseCase, friendlyEmptyLists bool) *DepotHandler {
	return &DepotHandler{uc: uc, friendly: friendlyEmptyLists}
}

// Create godoc
// @Summary      Register a depot
// @Tags         depots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDepotRequest  true  "Depot details"
// @Success      201   {object}  dto.DepotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/depots/depot [post]
func (h *DepotHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDepotRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateDepot(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, "depot", err)
	}
	return created(c, "depot", out, "Depot registered.")
}

// List godoc
// @Summary      List visible depots (own + public)
// @Tags         depots
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DepotResponse
// @Router       /api/depots/depot [get]
func (h *DepotHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListDepots(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, "depot", err)
	}
	return listResult(c, "depots", len(out), out, h.friendly)
}

// Get godoc
// @Summary      Depot by id
// @Tags         depots
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Depot id"
// @Success      200  {object}  dto.DepotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/depots/depot/{id} [get]
func (h *DepotHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetDepot(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, "depot", err)
	}
	return ok(c, "depot", out)
}

// Update godoc
// @Summary      Update an owned depot
// @Tags         depots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Depot id"
// @Param        body  body  dto.UpdateDepotRequest  true  "Fields to change"
// @Success      200   {object}  dto.DepotResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/depots/depot/{id} [put]
func (h *DepotHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDepotRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateDepot(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, "depot", err)
	}
	return ok(c, "depot", out)
}

// Remove godoc
// @Summary      Remove (soft-delete) an owned depot
// @Tags         depots
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Depot id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/depots/depot/{id} [delete]
func (h *DepotHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.RemoveDepot(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, "depot", err)
	}
	return deleted(c, "depot")
}
