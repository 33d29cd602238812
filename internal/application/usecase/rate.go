package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/domain"
	"github.com/okwaroh/twende-logistics/internal/domain/authz"
	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
)

// RateUseCase manages a cargo owner's price sheets. Staff may read rates but
// never write them.
type RateUseCase struct {
	rates       repository.RateRepository
	cargoOwners repository.CargoOwnerRepository
}

// NewRateUseCase builds the rate manager.
func NewRateUseCase(rates repository.RateRepository, cargoOwners repository.CargoOwnerRepository) *RateUseCase {
	return &RateUseCase{rates: rates, cargoOwners: cargoOwners}
}

func (uc *RateUseCase) actingCargoOwner(ctx context.Context, act authz.Actor) (*entity.CargoOwnerCompany, error) {
	if act.CompanyID == "" {
		return nil, domain.ErrForbidden
	}
	co, err := uc.cargoOwners.GetByCompany(ctx, act.CompanyID)
	if err != nil {
		return nil, err
	}
	if co == nil {
		return nil, domain.ErrForbidden
	}
	return co, nil
}

// CreateRate registers a price sheet owned by the acting cargo-owner company.
// At least one of the three charges must be positive.
func (uc *RateUseCase) CreateRate(ctx context.Context, act authz.Actor, req dto.CreateRateRequest) (*dto.RateResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceRate) {
		return nil, domain.ErrForbidden
	}
	co, err := uc.actingCargoOwner(ctx, act)
	if err != nil {
		return nil, err
	}
	if !entity.ValidCurrency(req.PreferredCurrency) {
		return nil, domain.NewValidationError("preferred_currency", "Currency must be USD or KES.")
	}
	if err := validateCharges(req); err != nil {
		return nil, err
	}
	now := time.Now()
	rate := &entity.Rate{
		ID:                uuid.NewString(),
		PricePerKm:        req.PricePerKm,
		PricePerKg:        req.PricePerKg,
		PricePerTruck:     req.PricePerTruck,
		PreferredCurrency: req.PreferredCurrency,
		CreatedByID:       co.ID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.rates.Create(ctx, rate); err != nil {
		return nil, err
	}
	out := toRateResponse(rate)
	return &out, nil
}

// ListRates returns the acting company's rate sheets (all of them for a
// superuser).
func (uc *RateUseCase) ListRates(ctx context.Context, act authz.Actor) ([]dto.RateResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceRate) {
		return nil, domain.ErrForbidden
	}
	if act.IsSuperuser() {
		rates, err := uc.rates.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return toRateResponses(rates), nil
	}
	co, err := uc.actingCargoOwner(ctx, act)
	if err != nil {
		return nil, err
	}
	rates, err := uc.rates.ListByCreator(ctx, co.ID)
	if err != nil {
		return nil, err
	}
	return toRateResponses(rates), nil
}

// GetRate returns one rate sheet of the acting company.
func (uc *RateUseCase) GetRate(ctx context.Context, act authz.Actor, id string) (*dto.RateResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceRate) {
		return nil, domain.ErrForbidden
	}
	rate, err := uc.rateInScope(ctx, act, id)
	if err != nil {
		return nil, err
	}
	out := toRateResponse(rate)
	return &out, nil
}

// UpdateRate applies a partial update to an owned rate sheet.
func (uc *RateUseCase) UpdateRate(ctx context.Context, act authz.Actor, id string, req dto.UpdateRateRequest) (*dto.RateResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceRate) {
		return nil, domain.ErrForbidden
	}
	rate, err := uc.rateInScope(ctx, act, id)
	if err != nil {
		return nil, err
	}
	if rate.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if req.PricePerKm != nil {
		if req.PricePerKm.IsNegative() {
			return nil, domain.NewValidationError("price_per_km", "Charges cannot be negative.")
		}
		rate.PricePerKm = *req.PricePerKm
	}
	if req.PricePerKg != nil {
		if req.PricePerKg.IsNegative() {
			return nil, domain.NewValidationError("price_per_kg", "Charges cannot be negative.")
		}
		rate.PricePerKg = *req.PricePerKg
	}
	if req.PricePerTruck != nil {
		if req.PricePerTruck.IsNegative() {
			return nil, domain.NewValidationError("price_per_truck", "Charges cannot be negative.")
		}
		rate.PricePerTruck = *req.PricePerTruck
	}
	if req.PreferredCurrency != nil {
		if !entity.ValidCurrency(*req.PreferredCurrency) {
			return nil, domain.NewValidationError("preferred_currency", "Currency must be USD or KES.")
		}
		rate.PreferredCurrency = *req.PreferredCurrency
	}
	rate.UpdatedAt = time.Now()
	if err := uc.rates.Update(ctx, rate); err != nil {
		return nil, err
	}
	out := toRateResponse(rate)
	return &out, nil
}

// RemoveRate soft-deletes an owned rate sheet.
func (uc *RateUseCase) RemoveRate(ctx context.Context, act authz.Actor, id string) error {
	if !authz.CanWrite(act.Role, authz.ResourceRate) {
		return domain.ErrForbidden
	}
	rate, err := uc.rateInScope(ctx, act, id)
	if err != nil {
		return err
	}
	if rate.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.rates.SoftDelete(ctx, rate.ID)
}

func (uc *RateUseCase) rateInScope(ctx context.Context, act authz.Actor, id string) (*entity.Rate, error) {
	rate, err := uc.rates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, domain.ErrNotFound
	}
	if act.IsSuperuser() {
		return rate, nil
	}
	co, err := uc.actingCargoOwner(ctx, act)
	if err != nil {
		return nil, err
	}
	if rate.CreatedByID != co.ID {
		return nil, domain.ErrNotFound
	}
	return rate, nil
}

func validateCharges(req dto.CreateRateRequest) error {
	if req.PricePerKm.IsNegative() || req.PricePerKg.IsNegative() || req.PricePerTruck.IsNegative() {
		return domain.NewValidationError("charges", "Charges cannot be negative.")
	}
	if req.PricePerKm.IsZero() && req.PricePerKg.IsZero() && req.PricePerTruck.IsZero() {
		return domain.NewValidationError("charges", "At least one charge must be set.")
	}
	return nil
}

func toRateResponse(r *entity.Rate) dto.RateResponse {
	return dto.RateResponse{
		ID:                r.ID,
		PricePerKm:        r.PricePerKm,
		PricePerKg:        r.PricePerKg,
		PricePerTruck:     r.PricePerTruck,
		PreferredCurrency: r.PreferredCurrency,
		CreatedBy:         r.CreatedByID,
	}
}

func toRateResponses(rates []*entity.Rate) []dto.RateResponse {
	out := make([]dto.RateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, toRateResponse(r))
	}
	return out
}
