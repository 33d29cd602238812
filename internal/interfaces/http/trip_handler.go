package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/application/usecase"
)

// TripHandler serves transporter trips.
type TripHandler struct {
	uc       *usecase.TripUseCase
	friendly bool
}

// NewTripHandler builds the trip handler.
func NewTripHandler(uc *usecase.TripUseCase, friendlyEmptyLists bool) *TripHandler {
	return &TripHandler{uc: uc, friendly: friendlyEmptyLists}
}

// Create godoc
// @Summary      Create a trip for an order
// @Tags         trips
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTripRequest  true  "Trip details"
// @Success      201   {object}  dto.TripResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/trips [post]
func (h *TripHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTripRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateTrip(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, "trip", err)
	}
	return created(c, "trip", out, "Trip created.")
}

// List godoc
// @Summary      List the acting transporter's trips
// @Tags         trips
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TripResponse
// @Router       /api/trips [get]
func (h *TripHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListTrips(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, "trip", err)
	}
	return listResult(c, "trips", len(out), out, h.friendly)
}

// Get godoc
// @Summary      Trip by id
// @Tags         trips
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Trip id"
// @Success      200  {object}  dto.TripResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trips/{id} [get]
func (h *TripHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetTrip(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, "trip", err)
	}
	return ok(c, "trip", out)
}

// Update godoc
// @Summary      Update a trip (status, end date, description)
// @Tags         trips
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Trip id"
// @Param        body  body  dto.UpdateTripRequest  true  "Fields to change"
// @Success      200   {object}  dto.TripResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/trips/{id} [put]
func (h *TripHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTripRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateTrip(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, "trip", err)
	}
	return ok(c, "trip", out)
}

// Remove godoc
// @Summary      Remove (soft-delete) a trip
// @Tags         trips
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Trip id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trips/{id} [delete]
func (h *TripHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.RemoveTrip(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, "trip", err)
	}
	return deleted(c, "trip")
}
