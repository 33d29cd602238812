package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/application/usecase"
)

// OrderHandler serves cargo-owner orders. Lookups use the tracking id, never
// the primary key.
type OrderHandler struct {
	uc       *usecase.OrderUseCase
	friendly bool
}

// NewOrderHandler builds the order handler.
func NewOrderHandler(uc *usecase.OrderUseCase, friendlyEmptyLists bool) *OrderHandler {
	return &OrderHandler{uc: uc, friendly: friendlyEmptyLists}
}

// Create godoc
// @Summary      Place an order
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Order details"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateOrder(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, "order", err)
	}
	return created(c, "order", out, "Order placed.")
}

// List godoc
// @Summary      List the acting cargo owner's orders
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListOrders(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, "order", err)
	}
	return listResult(c, "orders", len(out), out, h.friendly)
}

// Get godoc
// @Summary      Order by tracking id
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        tracking_id  path  string  true  "Tracking id"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/orders/{tracking_id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetOrder(c.Context(), GetActor(c), c.Params("tracking_id"))
	if err != nil {
		return respondError(c, "order", err)
	}
	return ok(c, "order", out)
}

// Update godoc
// @Summary      Update an order
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        tracking_id  path  string  true  "Tracking id"
// @Param        body  body  dto.UpdateOrderRequest  true  "Fields to change"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/orders/{tracking_id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateOrder(c.Context(), GetActor(c), c.Params("tracking_id"), in)
	if err != nil {
		return respondError(c, "order", err)
	}
	return ok(c, "order", out)
}

// Remove godoc
// @Summary      Remove (soft-delete) an order
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        tracking_id  path  string  true  "Tracking id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/orders/{tracking_id} [delete]
func (h *OrderHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.RemoveOrder(c.Context(), GetActor(c), c.Params("tracking_id")); err != nil {
		return respondError(c, "order", err)
	}
	return deleted(c, "order")
}
