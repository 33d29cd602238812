package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/application/usecase"
)

// CargoHandler serves cargo types (platform-wide) and commodities (per cargo
// owner).
type CargoHandler struct {
	uc       *usecase.CargoUseCase
	friendly bool
}

// NewCargoHandler builds the cargo handler.
func NewCargoHandler(uc *usecase.CargoUseCase, friendlyEmptyLists bool) *CargoHandler {
	return &CargoHandler{uc: uc, friendly: friendlyEmptyLists}
}

// CreateCargoType godoc
// @Summary      Create a cargo type (superuser only)
// @Tags         cargo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCargoTypeRequest  true  "Cargo type"
// @Success      201   {object}  dto.CargoTypeResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/cargo-types/cargo-type [post]
func (h *CargoHandler) CreateCargoType(c *fiber.Ctx) error {
	var in dto.CreateCargoTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateCargoType(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, "cargo type", err)
	}
	return created(c, "cargo_type", out, "Cargo type created.")
}

// ListCargoTypes godoc
// @Summary      List cargo types
// @Tags         cargo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CargoTypeResponse
// @Router       /api/cargo-types/cargo-type [get]
func (h *CargoHandler) ListCargoTypes(c *fiber.Ctx) error {
	out, err := h.uc.ListCargoTypes(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, "cargo type", err)
	}
	return listResult(c, "cargo_types", len(out), out, h.friendly)
}

// GetCargoType godoc
// @Summary      Cargo type by id
// @Tags         cargo
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Cargo type id"
// @Success      200  {object}  dto.CargoTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cargo-types/cargo-type/{id} [get]
func (h *CargoHandler) GetCargoType(c *fiber.Ctx) error {
	out, err := h.uc.GetCargoType(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, "cargo type", err)
	}
	return ok(c, "cargo_type", out)
}

// UpdateCargoType godoc
// @Summary      Update a cargo type (superuser only)
// @Tags         cargo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Cargo type id"
// @Param        body  body  dto.CreateCargoTypeRequest  true  "New values"
// @Success      200   {object}  dto.CargoTypeResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/cargo-types/cargo-type/{id} [put]
func (h *CargoHandler) UpdateCargoType(c *fiber.Ctx) error {
	var in dto.CreateCargoTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateCargoType(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, "cargo type", err)
	}
	return ok(c, "cargo_type", out)
}

// RemoveCargoType godoc
// @Summary      Remove a cargo type (superuser only)
// @Tags         cargo
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Cargo type id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/cargo-types/cargo-type/{id} [delete]
func (h *CargoHandler) RemoveCargoType(c *fiber.Ctx) error {
	if err := h.uc.RemoveCargoType(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, "cargo type", err)
	}
	return deleted(c, "cargo type")
}

// CreateCommodity godoc
// @Summary      Register a commodity for the acting cargo owner
// @Tags         cargo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCommodityRequest  true  "Commodity details"
// @Success      201   {object}  dto.CommodityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cargo-types/commodity [post]
func (h *CargoHandler) CreateCommodity(c *fiber.Ctx) error {
	var in dto.CreateCommodityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateCommodity(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, "commodity", err)
	}
	return created(c, "commodity", out, "Commodity registered.")
}

// ListCommodities godoc
// @Summary      List the acting cargo owner's commodities
// @Tags         cargo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CommodityResponse
// @Router       /api/cargo-types/commodity [get]
func (h *CargoHandler) ListCommodities(c *fiber.Ctx) error {
	out, err := h.uc.ListCommodities(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, "commodity", err)
	}
	return listResult(c, "commodities", len(out), out, h.friendly)
}

// GetCommodity godoc
// @Summary      Commodity by id
// @Tags         cargo
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Commodity id"
// @Success      200  {object}  dto.CommodityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cargo-types/commodity/{id} [get]
func (h *CargoHandler) GetCommodity(c *fiber.Ctx) error {
	out, err := h.uc.GetCommodity(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, "commodity", err)
	}
	return ok(c, "commodity", out)
}

// UpdateCommodity godoc
// @Summary      Update a commodity
// @Tags         cargo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Commodity id"
// @Param        body  body  dto.UpdateCommodityRequest  true  "Fields to change"
// @Success      200   {object}  dto.CommodityResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cargo-types/commodity/{id} [put]
func (h *CargoHandler) UpdateCommodity(c *fiber.Ctx) error {
	var in dto.UpdateCommodityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateCommodity(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, "commodity", err)
	}
	return ok(c, "commodity", out)
}

// RemoveCommodity godoc
// @Summary      Remove (soft-delete) a commodity
// @Tags         cargo
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Commodity id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cargo-types/commodity/{id} [delete]
func (h *CargoHandler) RemoveCommodity(c *fiber.Ctx) error {
	if err := h.uc.RemoveCommodity(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, "commodity", err)
	}
	return deleted(c, "commodity")
}
