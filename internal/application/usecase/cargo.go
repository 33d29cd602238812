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

// CargoUseCase manages the platform-wide cargo types (superuser-only writes)
// and the cargo owners' commodities filed under them.
type CargoUseCase struct {
	cargoTypes  repository.CargoTypeRepository
	commodities repository.CommodityRepository
	cargoOwners repository.CargoOwnerRepository
}

// NewCargoUseCase builds the cargo classification manager.
func NewCargoUseCase(cargoTypes repository.CargoTypeRepository, commodities repository.CommodityRepository,
	cargoOwners repository.CargoOwnerRepository) *CargoUseCase {
	return &CargoUseCase{cargoTypes: cargoTypes, commodities: commodities, cargoOwners: cargoOwners}
}

// ── cargo types ───────────────────────────────────────────────────────────────

// CreateCargoType registers a platform classification. Superusers only.
func (uc *CargoUseCase) CreateCargoType(ctx context.Context, act authz.Actor, req dto.CreateCargoTypeRequest) (*dto.CargoTypeResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceCargoType) {
		return nil, domain.ErrForbidden
	}
	if err := domain.RequireAll(map[string]string{
		"cargo_type":  req.Name,
		"description": req.Description,
	}); err != nil {
		return nil, err
	}
	now := time.Now()
	ct := &entity.CargoType{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.cargoTypes.Create(ctx, ct); err != nil {
		return nil, err
	}
	out := toCargoTypeResponse(ct)
	return &out, nil
}

// ListCargoTypes returns all classifications. Readable by every authenticated
// non-driver actor.
func (uc *CargoUseCase) ListCargoTypes(ctx context.Context, act authz.Actor) ([]dto.CargoTypeResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceCargoType) {
		return nil, domain.ErrForbidden
	}
	types, err := uc.cargoTypes.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CargoTypeResponse, 0, len(types))
	for _, ct := range types {
		out = append(out, toCargoTypeResponse(ct))
	}
	return out, nil
}

// GetCargoType returns one classification.
func (uc *CargoUseCase) GetCargoType(ctx context.Context, act authz.Actor, id string) (*dto.CargoTypeResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceCargoType) {
		return nil, domain.ErrForbidden
	}
	ct, err := uc.cargoTypes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		return nil, domain.ErrNotFound
	}
	out := toCargoTypeResponse(ct)
	return &out, nil
}

// UpdateCargoType updates a classification. Superusers only.
func (uc *CargoUseCase) UpdateCargoType(ctx context.Context, act authz.Actor, id string, req dto.CreateCargoTypeRequest) (*dto.CargoTypeResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceCargoType) {
		return nil, domain.ErrForbidden
	}
	ct, err := uc.cargoTypes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ct == nil || ct.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if req.Name != "" {
		ct.Name = req.Name
	}
	if req.Description != "" {
		ct.Description = req.Description
	}
	ct.UpdatedAt = time.Now()
	if err := uc.cargoTypes.Update(ctx, ct); err != nil {
		return nil, err
	}
	out := toCargoTypeResponse(ct)
	return &out, nil
}

// RemoveCargoType soft-deletes a classification. Superusers only.
func (uc *CargoUseCase) RemoveCargoType(ctx context.Context, act authz.Actor, id string) error {
	if !authz.CanWrite(act.Role, authz.ResourceCargoType) {
		return domain.ErrForbidden
	}
	ct, err := uc.cargoTypes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ct == nil || ct.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.cargoTypes.SoftDelete(ctx, id)
}

// ── commodities ───────────────────────────────────────────────────────────────

// actingCargoOwner resolves the actor's cargo-owner specialization.
// Transporter companies have none and may not manage commodities.
func (uc *CargoUseCase) actingCargoOwner(ctx context.Context, act authz.Actor) (*entity.CargoOwnerCompany, error) {
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

// CreateCommodity registers a commodity under an existing cargo type, owned by
// the acting cargo-owner company.
func (uc *CargoUseCase) CreateCommodity(ctx context.Context, act authz.Actor, req dto.CreateCommodityRequest) (*dto.CommodityResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceCommodity) {
		return nil, domain.ErrForbidden
	}
	co, err := uc.actingCargoOwner(ctx, act)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireAll(map[string]string{
		"name":        req.Name,
		"cargo_type":  req.CargoTypeID,
		"description": req.Description,
	}); err != nil {
		return nil, err
	}
	ct, err := uc.cargoTypes.GetByID(ctx, req.CargoTypeID)
	if err != nil {
		return nil, err
	}
	if ct == nil || ct.IsDeleted {
		return nil, domain.NewValidationError("cargo_type", "Unknown cargo type.")
	}
	now := time.Now()
	commodity := &entity.Commodity{
		ID:          uuid.NewString(),
		Name:        req.Name,
		CargoTypeID: ct.ID,
		Description: req.Description,
		CreatedByID: co.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.commodities.Create(ctx, commodity); err != nil {
		return nil, err
	}
	out := toCommodityResponse(commodity)
	return &out, nil
}

// ListCommodities returns the acting company's commodities (all of them for a
// superuser).
func (uc *CargoUseCase) ListCommodities(ctx context.Context, act authz.Actor) ([]dto.CommodityResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceCommodity) {
		return nil, domain.ErrForbidden
	}
	if act.IsSuperuser() {
		commodities, err := uc.commodities.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return toCommodityResponses(commodities), nil
	}
	co, err := uc.actingCargoOwner(ctx, act)
	if err != nil {
		return nil, err
	}
	commodities, err := uc.commodities.ListByCreator(ctx, co.ID)
	if err != nil {
		return nil, err
	}
	return toCommodityResponses(commodities), nil
}

// GetCommodity returns one commodity of the acting company.
func (uc *CargoUseCase) GetCommodity(ctx context.Context, act authz.Actor, id string) (*dto.CommodityResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceCommodity) {
		return nil, domain.ErrForbidden
	}
	commodity, err := uc.commodityInScope(ctx, act, id)
	if err != nil {
		return nil, err
	}
	out := toCommodityResponse(commodity)
	return &out, nil
}

// UpdateCommodity applies a partial update to an owned commodity.
func (uc *CargoUseCase) UpdateCommodity(ctx context.Context, act authz.Actor, id string, req dto.UpdateCommodityRequest) (*dto.CommodityResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceCommodity) {
		return nil, domain.ErrForbidden
	}
	commodity, err := uc.commodityInScope(ctx, act, id)
	if err != nil {
		return nil, err
	}
	if commodity.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if req.Name != nil {
		commodity.Name = *req.Name
	}
	if req.CargoTypeID != nil {
		ct, err := uc.cargoTypes.GetByID(ctx, *req.CargoTypeID)
		if err != nil {
			return nil, err
		}
		if ct == nil || ct.IsDeleted {
			return nil, domain.NewValidationError("cargo_type", "Unknown cargo type.")
		}
		commodity.CargoTypeID = ct.ID
	}
	if req.Description != nil {
		commodity.Description = *req.Description
	}
	commodity.UpdatedAt = time.Now()
	if err := uc.commodities.Update(ctx, commodity); err != nil {
		return nil, err
	}
	out := toCommodityResponse(commodity)
	return &out, nil
}

// RemoveCommodity soft-deletes an owned commodity.
func (uc *CargoUseCase) RemoveCommodity(ctx context.Context, act authz.Actor, id string) error {
	if !authz.CanWrite(act.Role, authz.ResourceCommodity) {
		return domain.ErrForbidden
	}
	commodity, err := uc.commodityInScope(ctx, act, id)
	if err != nil {
		return err
	}
	if commodity.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.commodities.SoftDelete(ctx, commodity.ID)
}

func (uc *CargoUseCase) commodityInScope(ctx context.Context, act authz.Actor, id string) (*entity.Commodity, error) {
	commodity, err := uc.commodities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if commodity == nil {
		return nil, domain.ErrNotFound
	}
	if act.IsSuperuser() {
		return commodity, nil
	}
	co, err := uc.actingCargoOwner(ctx, act)
	if err != nil {
		return nil, err
	}
	if commodity.CreatedByID != co.ID {
		return nil, domain.ErrNotFound
	}
	return commodity, nil
}

func toCargoTypeResponse(ct *entity.CargoType) dto.CargoTypeResponse {
	return dto.CargoTypeResponse{ID: ct.ID, Name: ct.Name, Description: ct.Description}
}

func toCommodityResponse(c *entity.Commodity) dto.CommodityResponse {
	return dto.CommodityResponse{
		ID:          c.ID,
		Name:        c.Name,
		CargoTypeID: c.CargoTypeID,
		Description: c.Description,
		CreatedBy:   c.CreatedByID,
	}
}

func toCommodityResponses(commodities []*entity.Commodity) []dto.CommodityResponse {
	out := make([]dto.CommodityResponse, 0, len(commodities))
	for _, c := range commodities {
		out = append(out, toCommodityResponse(c))
	}
	return out
}
