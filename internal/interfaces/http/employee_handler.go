package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/application/onboarding"
)

// EmployeeHandler serves a director's employee management surface.
type EmployeeHandler struct {
	uc       *onboarding.UseCase
	friendly bool
}

// NewEmployeeHandler builds the employee handler.
func NewEmployeeHandler(uc *onboarding.UseCase, friendlyEmptyLists bool) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, friendly: friendlyEmptyLists}
}

// Create godoc
// @Summary      Add an admin/staff employee to the acting company
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Employee details (password is generated)"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/company/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateEmployee(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, "user", err)
	}
	return created(c, "employee", out, "Employee created. Credentials have been dispatched.")
}

// List godoc
// @Summary      List the acting company's employees
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/company/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListEmployees(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, "employee", err)
	}
	return listResult(c, "employees", len(out), out, h.friendly)
}

// Get godoc
// @Summary      Employee by id
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Employee id"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/employee/{id} [get]
func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetEmployee(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, "employee", err)
	}
	return ok(c, "employee", out)
}

// Update godoc
// @Summary      Update an employee (suspend carries the activation flip)
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Employee id"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "Fields to change"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/company/employee/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateEmployee(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, "employee", err)
	}
	return ok(c, "employee", out)
}

// Remove godoc
// @Summary      Remove (soft-delete) an employee
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Employee id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/employee/{id} [delete]
func (h *EmployeeHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.RemoveEmployee(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, "employee", err)
	}
	return deleted(c, "employee")
}
