package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/application/onboarding"
	"github.com/okwaroh/twende-logistics/internal/application/usecase"
	"github.com/okwaroh/twende-logistics/internal/domain/entity"
)

// CompanyHandler serves company onboarding and the company resource.
type CompanyHandler struct {
	onboarding *onboarding.UseCase
	uc         *usecase.CompanyUseCase
	friendly   bool
}

// NewCompanyHandler builds the company handler.
func NewCompanyHandler(ob *onboarding.UseCase, uc *usecase.CompanyUseCase, friendlyEmptyLists bool) *CompanyHandler {
	return &CompanyHandler{onboarding: ob, uc: uc, friendly: friendlyEmptyLists}
}

// RegisterTransporter godoc
// @Summary      Register a transporter company with its director
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCompanyRequest  true  "Director + company + fleet details"
// @Success      201   {object}  dto.SpecializedCompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/company/register/transporter [post]
func (h *CompanyHandler) RegisterTransporter(c *fiber.Ctx) error {
	return h.register(c, entity.CategoryTransporter)
}

// RegisterCargoOwner godoc
// @Summary      Register a cargo-owner company with its director
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCompanyRequest  true  "Director + company + commodity details"
// @Success      201   {object}  dto.SpecializedCompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/company/register/cargo-owner [post]
func (h *CompanyHandler) RegisterCargoOwner(c *fiber.Ctx) error {
	return h.register(c, entity.CategoryCargoOwner)
}

func (h *CompanyHandler) register(c *fiber.Ctx, category entity.CompanyCategory) error {
	var in dto.RegisterCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.onboarding.RegisterCompany(c.Context(), category, in)
	if err != nil {
		return respondError(c, "company", err)
	}
	return created(c, "company", out, "Company registered. Verification is pending.")
}

// ListCargoOwners godoc
// @Summary      List cargo-owner companies
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SpecializedCompanyResponse
// @Router       /api/company/cargo-owner [get]
func (h *CompanyHandler) ListCargoOwners(c *fiber.Ctx) error {
	out, err := h.uc.ListCargoOwners(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, "company", err)
	}
	return listResult(c, "companies", len(out), out, h.friendly)
}

// ListTransporters godoc
// @Summary      List transporter companies
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SpecializedCompanyResponse
// @Router       /api/company/transporter [get]
func (h *CompanyHandler) ListTransporters(c *fiber.Ctx) error {
	out, err := h.uc.ListTransporters(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, "company", err)
	}
	return listResult(c, "companies", len(out), out, h.friendly)
}

// GetCargoOwner godoc
// @Summary      Cargo-owner company by id
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Specialization id"
// @Success      200  {object}  dto.SpecializedCompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/cargo-owner/{id} [get]
func (h *CompanyHandler) GetCargoOwner(c *fiber.Ctx) error {
	out, err := h.uc.GetCargoOwner(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, "company", err)
	}
	return ok(c, "company", out)
}

// GetTransporter godoc
// @Summary      Transporter company by id
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Specialization id"
// @Success      200  {object}  dto.SpecializedCompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/transporter/{id} [get]
func (h *CompanyHandler) GetTransporter(c *fiber.Ctx) error {
	out, err := h.uc.GetTransporter(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, "company", err)
	}
	return ok(c, "company", out)
}

// UpdateCompany godoc
// @Summary      Update the acting company's profile
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Company id"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Fields to change"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/company/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateCompany(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, "company", err)
	}
	return ok(c, "company", out)
}

// DeactivateCompany godoc
// @Summary      Deactivate (soft-delete) a company
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Company id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/{id} [delete]
func (h *CompanyHandler) DeactivateCompany(c *fiber.Ctx) error {
	if err := h.uc.DeactivateCompany(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, "company", err)
	}
	return deleted(c, "company")
}
