package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/application/onboarding"
	"github.com/okwaroh/twende-logistics/internal/application/usecase"
)

// DriverHandler serves a transporter's driver roster. Creation goes through
// the onboarding use case because it spans a user account and the driver
// record.
type DriverHandler struct {
	onboarding *onboarding.UseCase
	uc         *usecase.DriverUseCase
	friendly   bool
}

// NewDriverHandler builds the driver handler.
func NewDriverHandler(ob *onboarding.UseCase, uc *usecase.DriverUseCase, friendlyEmptyLists bool) *DriverHandler {
	return &DriverHandler{onboarding: ob, uc: uc, friendly: friendlyEmptyLists}
}

// Create godoc
// @Summary      Add a driver (user account + licensing record)
// @Tags         drivers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDriverRequest  true  "Driver details (password is generated)"
// @Success      201   {object}  dto.DriverResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transporter/drivers [post]
func (h *DriverHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDriverRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.onboarding.CreateDriver(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, "driver", err)
	}
	return created(c, "driver", out, "Driver created. Credentials have been dispatched.")
}

// List godoc
// @Summary      List the acting transporter's drivers
// @Tags         drivers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DriverResponse
// @Router       /api/transporter/drivers [get]
func (h *DriverHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListDrivers(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, "driver", err)
	}
	return listResult(c, "drivers", len(out), out, h.friendly)
}

// Get godoc
// @Summary      Driver by id
// @Tags         drivers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Driver id"
// @Success      200  {object}  dto.DriverResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transporter/driver/{id} [get]
func (h *DriverHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetDriver(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, "driver", err)
	}
	return ok(c, "driver", out)
}

// Update godoc
// @Summary      Update a driver's licensing details
// @Tags         drivers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Driver id"
// @Param        body  body  dto.UpdateDriverRequest  true  "Fields to change"
// @Success      200   {object}  dto.DriverResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transporter/driver/{id} [put]
func (h *DriverHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDriverRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateDriver(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, "driver", err)
	}
	return ok(c, "driver", out)
}

// Remove godoc
// @Summary      Remove a driver (record and user account)
// @Tags         drivers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Driver id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transporter/driver/{id} [delete]
func (h *DriverHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.RemoveDriver(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, "driver", err)
	}
	return deleted(c, "driver")
}
