package usecase

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/domain"
	"github.com/okwaroh/twende-logistics/internal/domain/authz"
	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
)

// OrderUseCase manages a cargo owner's shipment orders. Orders are addressed
// by tracking id everywhere outside the database.
type OrderUseCase struct {
	orders      repository.OrderRepository
	commodities repository.CommodityRepository
	rates       repository.RateRepository
	depots      repository.DepotRepository
	cargoOwners repository.CargoOwnerRepository
}

// NewOrderUseCase builds the order manager.
func NewOrderUseCase(orders repository.OrderRepository, commodities repository.CommodityRepository,
	rates repository.RateRepository, depots repository.DepotRepository,
	cargoOwners repository.CargoOwnerRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, commodities: commodities, rates: rates,
		depots: depots, cargoOwners: cargoOwners}
}

func (uc *OrderUseCase) actingCargoOwner(ctx context.Context, act authz.Actor) (*entity.CargoOwnerCompany, error) {
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

// CreateOrder places an order owned by the acting cargo-owner company. The
// owner is injected from the actor; a tracking id is generated; the commodity
// and rate must belong to the same company.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, act authz.Actor, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceOrder) {
		return nil, domain.ErrForbidden
	}
	co, err := uc.actingCargoOwner(ctx, act)
	if err != nil {
		return nil, err
	}
	if err := uc.validateOrder(ctx, co, req); err != nil {
		return nil, err
	}

	trackingID, err := newTrackingID()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	order := &entity.Order{
		ID:                         uuid.NewString(),
		TrackingID:                 trackingID,
		Title:                      req.Title,
		Description:                req.Description,
		CommodityID:                req.CommodityID,
		CargoTonnage:               req.CargoTonnage,
		OriginIDs:                  req.OriginIDs,
		DestinationIDs:             req.DestinationIDs,
		LoadingPointContact:        req.LoadingPointContact,
		LoadingPointContactName:    req.LoadingPointContactName,
		OffloadingPointContact:     req.OffloadingPointContact,
		OffloadingPointContactName: req.OffloadingPointContactName,
		Status:                     entity.OrderPending,
		DesiredRateID:              req.DesiredRateID,
		RecurringOrder:             req.RecurringOrder,
		OrderType:                  orderType(req),
		DesiredTruckType:           req.DesiredTruckType,
		OwnerID:                    co.ID,
		Recipients:                 req.Recipients,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	out := toOrderResponse(order)
	return &out, nil
}

// ListOrders returns the acting company's orders (all of them for a
// superuser).
func (uc *OrderUseCase) ListOrders(ctx context.Context, act authz.Actor) ([]dto.OrderResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceOrder) {
		return nil, domain.ErrForbidden
	}
	if act.IsSuperuser() {
		orders, err := uc.orders.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return toOrderResponses(orders), nil
	}
	co, err := uc.actingCargoOwner(ctx, act)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orders.ListByOwner(ctx, co.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// GetOrder returns one order by tracking id. Another company's tracking id
// answers not-found, never forbidden.
func (uc *OrderUseCase) GetOrder(ctx context.Context, act authz.Actor, trackingID string) (*dto.OrderResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceOrder) {
		return nil, domain.ErrForbidden
	}
	order, err := uc.orderInScope(ctx, act, trackingID)
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(order)
	return &out, nil
}

// UpdateOrder applies a partial update to an owned order, by tracking id.
func (uc *OrderUseCase) UpdateOrder(ctx context.Context, act authz.Actor, trackingID string, req dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceOrder) {
		return nil, domain.ErrForbidden
	}
	order, err := uc.orderInScope(ctx, act, trackingID)
	if err != nil {
		return nil, err
	}
	if order.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if req.Title != nil {
		order.Title = *req.Title
	}
	if req.Description != nil {
		order.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, domain.NewValidationError("status", "Status must be Pending, Assigned or Accepted.")
		}
		order.Status = *req.Status
	}
	if req.DesiredTruckType != nil {
		order.DesiredTruckType = *req.DesiredTruckType
	}
	if req.Assigned != nil {
		order.Assigned = *req.Assigned
	}
	order.UpdatedAt = time.Now()
	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	out := toOrderResponse(order)
	return &out, nil
}

// RemoveOrder soft-deletes an owned order, by tracking id.
func (uc *OrderUseCase) RemoveOrder(ctx context.Context, act authz.Actor, trackingID string) error {
	if !authz.CanWrite(act.Role, authz.ResourceOrder) {
		return domain.ErrForbidden
	}
	order, err := uc.orderInScope(ctx, act, trackingID)
	if err != nil {
		return err
	}
	if order.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.orders.SoftDelete(ctx, order.ID)
}

func (uc *OrderUseCase) orderInScope(ctx context.Context, act authz.Actor, trackingID string) (*entity.Order, error) {
	order, err := uc.orders.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if act.IsSuperuser() {
		return order, nil
	}
	co, err := uc.actingCargoOwner(ctx, act)
	if err != nil {
		return nil, err
	}
	if order.OwnerID != co.ID {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (uc *OrderUseCase) validateOrder(ctx context.Context, co *entity.CargoOwnerCompany, req dto.CreateOrderRequest) error {
	if err := domain.RequireAll(map[string]string{
		"title":                         req.Title,
		"description":                   req.Description,
		"commodity":                     req.CommodityID,
		"loading_point_contact":         req.LoadingPointContact,
		"loading_point_contact_name":    req.LoadingPointContactName,
		"offloading_point_contact":      req.OffloadingPointContact,
		"offloading_point_contact_name": req.OffloadingPointContactName,
		"desired_rates":                 req.DesiredRateID,
		"desired_truck_type":            req.DesiredTruckType,
	}); err != nil {
		return err
	}
	if len(req.OriginIDs) == 0 {
		return domain.NewValidationError("origin", "At least one origin depot is required.")
	}
	if len(req.DestinationIDs) == 0 {
		return domain.NewValidationError("destination", "At least one destination depot is required.")
	}
	if len(req.Recipients) > entity.MaxRecipients {
		return domain.NewValidationError("recepients", "At most 5 recipients are allowed.")
	}

	commodity, err := uc.commodities.GetByID(ctx, req.CommodityID)
	if err != nil {
		return err
	}
	if commodity == nil || commodity.IsDeleted || commodity.CreatedByID != co.ID {
		return domain.NewValidationError("commodity", "Unknown commodity.")
	}
	rate, err := uc.rates.GetByID(ctx, req.DesiredRateID)
	if err != nil {
		return err
	}
	if rate == nil || rate.IsDeleted || rate.CreatedByID != co.ID {
		return domain.NewValidationError("desired_rates", "Unknown rate sheet.")
	}
	for _, id := range req.OriginIDs {
		if err := uc.checkDepot(ctx, "origin", id); err != nil {
			return err
		}
	}
	for _, id := range req.DestinationIDs {
		if err := uc.checkDepot(ctx, "destination", id); err != nil {
			return err
		}
	}
	return nil
}

func (uc *OrderUseCase) checkDepot(ctx context.Context, field, id string) error {
	depot, err := uc.depots.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if depot == nil || depot.IsDeleted {
		return domain.NewValidationError(field, "Unknown depot: "+id)
	}
	return nil
}

// orderType derives the single/multiple origin-destination shape unless the
// caller set it explicitly.
func orderType(req dto.CreateOrderRequest) string {
	if req.OrderType != "" {
		return req.OrderType
	}
	switch {
	case len(req.OriginIDs) == 1 && len(req.DestinationIDs) == 1:
		return entity.OrderTypeSOSD
	case len(req.OriginIDs) == 1:
		return entity.OrderTypeSOMD
	case len(req.DestinationIDs) == 1:
		return entity.OrderTypeMOSD
	default:
		return entity.OrderTypeMOMD
	}
}

const trackingAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// newTrackingID returns a client-facing order identifier like TW-7KQ2M9XHDR.
// The database enforces uniqueness; 10 characters over a 32-symbol alphabet
// makes a retry-worthy collision vanishingly rare.
func newTrackingID() (string, error) {
	out := make([]byte, 10)
	max := big.NewInt(int64(len(trackingAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = trackingAlphabet[n.Int64()]
	}
	return "TW-" + string(out), nil
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		TrackingID:                 o.TrackingID,
		Title:                      o.Title,
		Description:                o.Description,
		CommodityID:                o.CommodityID,
		CargoTonnage:               o.CargoTonnage,
		OriginIDs:                  o.OriginIDs,
		DestinationIDs:             o.DestinationIDs,
		LoadingPointContact:        o.LoadingPointContact,
		LoadingPointContactName:    o.LoadingPointContactName,
		OffloadingPointContact:     o.OffloadingPointContact,
		OffloadingPointContactName: o.OffloadingPointContactName,
		Status:                     string(o.Status),
		DesiredRateID:              o.DesiredRateID,
		RecurringOrder:             o.RecurringOrder,
		OrderType:                  o.OrderType,
		DesiredTruckType:           o.DesiredTruckType,
		Owner:                      o.OwnerID,
		Recipients:                 o.Recipients,
		Assigned:                   o.Assigned,
		CreatedAt:                  o.CreatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}
