// Package usecase implements the domain resource managers: companies, assets,
// depots, cargo classifications, rates, orders, trips and drivers. Every
// operation takes the resolved actor and applies the request-level and
// object-level permission checks before touching a repository.
package usecase

import (
	"context"
	"time"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/domain"
	"github.com/okwaroh/twende-logistics/internal/domain/authz"
	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
)

// CompanyUseCase manages the specialized company views (cargo owners and
// transporters) after onboarding has created them.
type CompanyUseCase struct {
	companies    repository.CompanyRepository
	cargoOwners  repository.CargoOwnerRepository
	transporters repository.TransporterRepository
	users        repository.UserRepository
}

// NewCompanyUseCase builds the company manager.
func NewCompanyUseCase(companies repository.CompanyRepository, cargoOwners repository.CargoOwnerRepository,
	transporters repository.TransporterRepository, users repository.UserRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, cargoOwners: cargoOwners, transporters: transporters, users: users}
}

// ListCargoOwners returns every active cargo-owner company. The directory is
// readable by any authenticated non-driver actor; it is how transporters find
// counterparties.
func (uc *CompanyUseCase) ListCargoOwners(ctx context.Context, act authz.Actor) ([]dto.SpecializedCompanyResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceCompany) {
		return nil, domain.ErrForbidden
	}
	specs, err := uc.cargoOwners.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SpecializedCompanyResponse, 0, len(specs))
	for _, co := range specs {
		resp, err := uc.cargoOwnerResponse(ctx, co)
		if err != nil {
			return nil, err
		}
		if resp != nil {
			out = append(out, *resp)
		}
	}
	return out, nil
}

// ListTransporters returns every active transporter company.
func (uc *CompanyUseCase) ListTransporters(ctx context.Context, act authz.Actor) ([]dto.SpecializedCompanyResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceCompany) {
		return nil, domain.ErrForbidden
	}
	specs, err := uc.transporters.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SpecializedCompanyResponse, 0, len(specs))
	for _, tc := range specs {
		resp, err := uc.transporterResponse(ctx, tc)
		if err != nil {
			return nil, err
		}
		if resp != nil {
			out = append(out, *resp)
		}
	}
	return out, nil
}

// GetCargoOwner returns one cargo-owner company by specialization id.
func (uc *CompanyUseCase) GetCargoOwner(ctx context.Context, act authz.Actor, id string) (*dto.SpecializedCompanyResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceCompany) {
		return nil, domain.ErrForbidden
	}
	co, err := uc.cargoOwners.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if co == nil {
		return nil, domain.ErrNotFound
	}
	resp, err := uc.cargoOwnerResponse(ctx, co)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, domain.ErrNotFound
	}
	return resp, nil
}

// GetTransporter returns one transporter company by specialization id.
func (uc *CompanyUseCase) GetTransporter(ctx context.Context, act authz.Actor, id string) (*dto.SpecializedCompanyResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceCompany) {
		return nil, domain.ErrForbidden
	}
	tc, err := uc.transporters.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return nil, domain.ErrNotFound
	}
	resp, err := uc.transporterResponse(ctx, tc)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, domain.ErrNotFound
	}
	return resp, nil
}

// UpdateCompany applies a partial update to the actor's own company. Only the
// owning director, their admins, or a superuser may write.
func (uc *CompanyUseCase) UpdateCompany(ctx context.Context, act authz.Actor, companyID string, req dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceCompany) {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.OwnsCompany(act, company.ID) {
		return nil, domain.ErrNotFound
	}

	if req.BusinessType != nil {
		if !entity.ValidBusinessType(*req.BusinessType) {
			return nil, domain.NewValidationError("business_type", "Business type must be single, Corporate or others.")
		}
		company.BusinessType = *req.BusinessType
	}
	if req.PreferredCurrency != nil {
		company.PreferredCurrency = *req.PreferredCurrency
	}
	if req.BusinessEmail != nil {
		company.BusinessEmail = *req.BusinessEmail
	}
	if req.PostalCode != nil {
		company.PostalCode = *req.PostalCode
	}
	if req.OperationalRegion != nil {
		company.OperationalRegion = *req.OperationalRegion
	}
	if req.LogoRef != nil {
		company.LogoRef = *req.LogoRef
	}
	company.UpdatedAt = time.Now()
	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, err
	}

	director, err := uc.users.GetByID(ctx, company.DirectorID)
	if err != nil {
		return nil, err
	}
	if director == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := toCompanyResponse(company, director)
	return &resp, nil
}

// DeactivateCompany soft-deletes the actor's own company. The employees'
// accounts survive but can no longer resolve an owning company.
func (uc *CompanyUseCase) DeactivateCompany(ctx context.Context, act authz.Actor, companyID string) error {
	if !authz.CanWrite(act.Role, authz.ResourceCompany) {
		return domain.ErrForbidden
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if !authz.OwnsCompany(act, company.ID) {
		return domain.ErrNotFound
	}
	return uc.companies.SoftDelete(ctx, company.ID)
}

func (uc *CompanyUseCase) cargoOwnerResponse(ctx context.Context, co *entity.CargoOwnerCompany) (*dto.SpecializedCompanyResponse, error) {
	company, director, err := uc.companyWithDirector(ctx, co.CompanyID)
	if err != nil || company == nil {
		return nil, err
	}
	return &dto.SpecializedCompanyResponse{
		ID:                 co.ID,
		Category:           string(entity.CategoryCargoOwner),
		Company:            toCompanyResponse(company, director),
		CommoditiesHandled: co.CommoditiesHandled,
	}, nil
}

func (uc *CompanyUseCase) transporterResponse(ctx context.Context, tc *entity.TransporterCompany) (*dto.SpecializedCompanyResponse, error) {
	company, director, err := uc.companyWithDirector(ctx, tc.CompanyID)
	if err != nil || company == nil {
		return nil, err
	}
	return &dto.SpecializedCompanyResponse{
		ID:        tc.ID,
		Category:  string(entity.CategoryTransporter),
		Company:   toCompanyResponse(company, director),
		FleetSize: tc.FleetSize,
	}, nil
}

// companyWithDirector returns (nil, nil, nil) when the base company row has
// been soft-deleted, so list endpoints silently skip orphaned specializations.
func (uc *CompanyUseCase) companyWithDirector(ctx context.Context, companyID string) (*entity.Company, *entity.User, error) {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		return nil, nil, nil
	}
	director, err := uc.users.GetByID(ctx, company.DirectorID)
	if err != nil {
		return nil, nil, err
	}
	if director == nil {
		return nil, nil, nil
	}
	return company, director, nil
}

func toCompanyResponse(c *entity.Company, director *entity.User) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:                c.ID,
		BusinessName:      c.BusinessName,
		BusinessType:      c.BusinessType,
		AccountNumber:     c.AccountNumber,
		PreferredCurrency: c.PreferredCurrency,
		BusinessPhoneNo:   c.BusinessPhoneNo,
		BusinessEmail:     c.BusinessEmail,
		PostalCode:        c.PostalCode,
		OperationalRegion: c.OperationalRegion,
		IsActive:          c.IsActive,
		Director:          toUserResponse(director),
		CreatedAt:         c.CreatedAt,
	}
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       string(u.Role),
		EmployerID: u.EmployerID,
		IsVerified: u.IsVerified,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
