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

// DepotUseCase manages loading/offloading points. Depots hang off the creating
// user, not a company side, so both categories use the same operations.
type DepotUseCase struct {
	depots repository.DepotRepository
}

// NewDepotUseCase builds the depot manager.
func NewDepotUseCase(depots repository.DepotRepository) *DepotUseCase {
	return &DepotUseCase{depots: depots}
}

// CreateDepot registers a depot owned by the acting user. New depots default
// to private.
func (uc *DepotUseCase) CreateDepot(ctx context.Context, act authz.Actor, req dto.CreateDepotRequest) (*dto.DepotResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceDepot) {
		return nil, domain.ErrForbidden
	}
	if err := domain.RequireAll(map[string]string{
		"city":      req.City,
		"address":   req.Address,
		"lattitude": req.Coordinates.Lattitude,
		"longitude": req.Coordinates.Longitude,
	}); err != nil {
		return nil, err
	}
	isPublic := false
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	now := time.Now()
	depot := &entity.Depot{
		ID:          uuid.NewString(),
		UserID:      act.UserID,
		City:        req.City,
		Address:     req.Address,
		Street:      req.Street,
		State:       req.State,
		Coordinates: req.Coordinates,
		IsPublic:    isPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.depots.Create(ctx, depot); err != nil {
		return nil, err
	}
	out := toDepotResponse(depot)
	return &out, nil
}

// ListDepots returns the actor's own depots plus every public one; superusers
// see everything.
func (uc *DepotUseCase) ListDepots(ctx context.Context, act authz.Actor) ([]dto.DepotResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceDepot) {
		return nil, domain.ErrForbidden
	}
	var (
		depots []*entity.Depot
		err    error
	)
	if act.IsSuperuser() {
		depots, err = uc.depots.ListAll(ctx)
	} else {
		depots, err = uc.depots.ListForUser(ctx, act.UserID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepotResponse, 0, len(depots))
	for _, d := range depots {
		out = append(out, toDepotResponse(d))
	}
	return out, nil
}

// GetDepot returns one depot the actor may see: their own or a public one.
func (uc *DepotUseCase) GetDepot(ctx context.Context, act authz.Actor, id string) (*dto.DepotResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceDepot) {
		return nil, domain.ErrForbidden
	}
	depot, err := uc.visibleDepot(ctx, act, id)
	if err != nil {
		return nil, err
	}
	out := toDepotResponse(depot)
	return &out, nil
}

// UpdateDepot applies a partial update. Only the creator (or a superuser) may
// write, public or not.
func (uc *DepotUseCase) UpdateDepot(ctx context.Context, act authz.Actor, id string, req dto.UpdateDepotRequest) (*dto.DepotResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceDepot) {
		return nil, domain.ErrForbidden
	}
	depot, err := uc.ownedDepot(ctx, act, id)
	if err != nil {
		return nil, err
	}
	if depot.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if req.City != nil {
		depot.City = *req.City
	}
	if req.Address != nil {
		depot.Address = *req.Address
	}
	if req.Street != nil {
		depot.Street = *req.Street
	}
	if req.State != nil {
		depot.State = *req.State
	}
	if req.Coordinates != nil {
		depot.Coordinates = *req.Coordinates
	}
	if req.IsPublic != nil {
		depot.IsPublic = *req.IsPublic
	}
	depot.UpdatedAt = time.Now()
	if err := uc.depots.Update(ctx, depot); err != nil {
		return nil, err
	}
	out := toDepotResponse(depot)
	return &out, nil
}

// RemoveDepot soft-deletes a depot the actor created.
func (uc *DepotUseCase) RemoveDepot(ctx context.Context, act authz.Actor, id string) error {
	if !authz.CanWrite(act.Role, authz.ResourceDepot) {
		return domain.ErrForbidden
	}
	depot, err := uc.ownedDepot(ctx, act, id)
	if err != nil {
		return err
	}
	if depot.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.depots.SoftDelete(ctx, depot.ID)
}

func (uc *DepotUseCase) visibleDepot(ctx context.Context, act authz.Actor, id string) (*entity.Depot, error) {
	depot, err := uc.depots.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if depot == nil {
		return nil, domain.ErrNotFound
	}
	// Deleted depots stay readable for audit, but only by the creator or a
	// superuser; public visibility ends with the deletion.
	if depot.IsDeleted {
		return uc.auditDepot(act, depot)
	}
	if !depot.IsPublic && depot.UserID != act.UserID && !act.IsSuperuser() {
		return nil, domain.ErrNotFound
	}
	return depot, nil
}

func (uc *DepotUseCase) auditDepot(act authz.Actor, depot *entity.Depot) (*entity.Depot, error) {
	if depot.UserID != act.UserID && !act.IsSuperuser() {
		return nil, domain.ErrNotFound
	}
	return depot, nil
}

func (uc *DepotUseCase) ownedDepot(ctx context.Context, act authz.Actor, id string) (*entity.Depot, error) {
	depot, err := uc.depots.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if depot == nil {
		return nil, domain.ErrNotFound
	}
	if depot.UserID != act.UserID && !act.IsSuperuser() {
		return nil, domain.ErrNotFound
	}
	return depot, nil
}

func toDepotResponse(d *entity.Depot) dto.DepotResponse {
	return dto.DepotResponse{
		ID:          d.ID,
		UserID:      d.UserID,
		City:        d.City,
		Address:     d.Address,
		Street:      d.Street,
		State:       d.State,
		Coordinates: d.Coordinates,
		IsPublic:    d.IsPublic,
		CreatedAt:   d.CreatedAt,
	}
}
