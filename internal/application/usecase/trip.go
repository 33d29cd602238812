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
	"github.com/okwaroh/twende-logistics/pkg/validate"
)

// TripUseCase manages a transporter's trips. A trip references an order by
// tracking id and a set of the company's own trucks.
type TripUseCase struct {
	trips        repository.TripRepository
	orders       repository.OrderRepository
	trucks       repository.TruckRepository
	depots       repository.DepotRepository
	transporters repository.TransporterRepository
}

// NewTripUseCase builds the trip manager.
func NewTripUseCase(trips repository.TripRepository, orders repository.OrderRepository,
	trucks repository.TruckRepository, depots repository.DepotRepository,
	transporters repository.TransporterRepository) *TripUseCase {
	return &TripUseCase{trips: trips, orders: orders, trucks: trucks, depots: depots, transporters: transporters}
}

func (uc *TripUseCase) actingTransporter(ctx context.Context, act authz.Actor) (*entity.TransporterCompany, error) {
	if act.CompanyID == "" {
		return nil, domain.ErrForbidden
	}
	tc, err := uc.transporters.GetByCompany(ctx, act.CompanyID)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return nil, domain.ErrForbidden
	}
	return tc, nil
}

// CreateTrip registers a trip for the acting transporter company. Origin and
// destination must differ; when an end date is given, the start must precede
// it; every truck must belong to the company.
func (uc *TripUseCase) CreateTrip(ctx context.Context, act authz.Actor, req dto.CreateTripRequest) (*dto.TripResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceTrip) {
		return nil, domain.ErrForbidden
	}
	tc, err := uc.actingTransporter(ctx, act)
	if err != nil {
		return nil, err
	}
	if err := uc.validateTrip(ctx, tc, req); err != nil {
		return nil, err
	}

	now := time.Now()
	trip := &entity.Trip{
		ID:                         uuid.NewString(),
		OrderID:                    req.OrderID,
		TruckIDs:                   req.TruckIDs,
		OriginID:                   req.OriginID,
		DestinationID:              req.DestinationID,
		StartDate:                  req.StartDate,
		EndDate:                    req.EndDate,
		Status:                     entity.TripPending,
		OffloadingPointContact:     req.OffloadingPointContact,
		OffloadingPointContactName: req.OffloadingPointContactName,
		LoadingPointContact:        req.LoadingPointContact,
		LoadingPointContactName:    req.LoadingPointContactName,
		Description:                req.Description,
		TripNumber:                 req.TripNumber,
		TransporterID:              tc.ID,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	if err := uc.trips.Create(ctx, trip); err != nil {
		return nil, err
	}
	out := toTripResponse(trip)
	return &out, nil
}

// ListTrips returns the acting company's trips (all of them for a superuser).
func (uc *TripUseCase) ListTrips(ctx context.Context, act authz.Actor) ([]dto.TripResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceTrip) {
		return nil, domain.ErrForbidden
	}
	if act.IsSuperuser() {
		trips, err := uc.trips.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return toTripResponses(trips), nil
	}
	tc, err := uc.actingTransporter(ctx, act)
	if err != nil {
		return nil, err
	}
	trips, err := uc.trips.ListByTransporter(ctx, tc.ID)
	if err != nil {
		return nil, err
	}
	return toTripResponses(trips), nil
}

// GetTrip returns one trip of the acting company.
func (uc *TripUseCase) GetTrip(ctx context.Context, act authz.Actor, id string) (*dto.TripResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceTrip) {
		return nil, domain.ErrForbidden
	}
	trip, err := uc.tripInScope(ctx, act, id)
	if err != nil {
		return nil, err
	}
	out := toTripResponse(trip)
	return &out, nil
}

// UpdateTrip applies a partial update to an owned trip. An end date must still
// come after the start date.
func (uc *TripUseCase) UpdateTrip(ctx context.Context, act authz.Actor, id string, req dto.UpdateTripRequest) (*dto.TripResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceTrip) {
		return nil, domain.ErrForbidden
	}
	trip, err := uc.tripInScope(ctx, act, id)
	if err != nil {
		return nil, err
	}
	if trip.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, domain.NewValidationError("status", "Status must be Pending, Started, Ongoing or Delivered.")
		}
		trip.Status = *req.Status
	}
	if req.EndDate != nil {
		if !validate.StartDateBeforeEndDate(trip.StartDate, *req.EndDate) {
			return nil, domain.NewValidationError("end_date", "End date must come after the start date.")
		}
		trip.EndDate = req.EndDate
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	trip.UpdatedAt = time.Now()
	if err := uc.trips.Update(ctx, trip); err != nil {
		return nil, err
	}
	out := toTripResponse(trip)
	return &out, nil
}

// RemoveTrip soft-deletes an owned trip.
func (uc *TripUseCase) RemoveTrip(ctx context.Context, act authz.Actor, id string) error {
	if !authz.CanWrite(act.Role, authz.ResourceTrip) {
		return domain.ErrForbidden
	}
	trip, err := uc.tripInScope(ctx, act, id)
	if err != nil {
		return err
	}
	if trip.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.trips.SoftDelete(ctx, trip.ID)
}

func (uc *TripUseCase) tripInScope(ctx context.Context, act authz.Actor, id string) (*entity.Trip, error) {
	trip, err := uc.trips.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, domain.ErrNotFound
	}
	if act.IsSuperuser() {
		return trip, nil
	}
	tc, err := uc.actingTransporter(ctx, act)
	if err != nil {
		return nil, err
	}
	if trip.TransporterID != tc.ID {
		return nil, domain.ErrNotFound
	}
	return trip, nil
}

func (uc *TripUseCase) validateTrip(ctx context.Context, tc *entity.TransporterCompany, req dto.CreateTripRequest) error {
	if err := domain.RequireAll(map[string]string{
		"order":                         req.OrderID,
		"origin":                        req.OriginID,
		"destination":                   req.DestinationID,
		"loading_point_contact":         req.LoadingPointContact,
		"loading_point_contact_name":    req.LoadingPointContactName,
		"offloading_point_contact":      req.OffloadingPointContact,
		"offloading_point_contact_name": req.OffloadingPointContactName,
		"description":                   req.Description,
	}); err != nil {
		return err
	}
	if req.OriginID == req.DestinationID {
		return domain.NewValidationError("destination", "Origin and destination must be different depots.")
	}
	if req.StartDate.IsZero() {
		return domain.NewValidationError("start_date", "This field is required.")
	}
	if req.EndDate != nil && !validate.StartDateBeforeEndDate(req.StartDate, *req.EndDate) {
		return domain.NewValidationError("end_date", "End date must come after the start date.")
	}
	if len(req.TruckIDs) == 0 {
		return domain.NewValidationError("trucks", "At least one truck is required.")
	}

	order, err := uc.orders.GetByTrackingID(ctx, req.OrderID)
	if err != nil {
		return err
	}
	if order == nil || order.IsDeleted {
		return domain.NewValidationError("order", "Unknown order.")
	}
	for _, field := range []struct{ name, id string }{
		{"origin", req.OriginID},
		{"destination", req.DestinationID},
	} {
		depot, err := uc.depots.GetByID(ctx, field.id)
		if err != nil {
			return err
		}
		if depot == nil || depot.IsDeleted {
			return domain.NewValidationError(field.name, "Unknown depot: "+field.id)
		}
	}
	for _, truckID := range req.TruckIDs {
		truck, err := uc.trucks.GetByID(ctx, truckID)
		if err != nil {
			return err
		}
		if truck == nil || truck.IsDeleted || truck.OwnedByID != tc.ID {
			return domain.NewValidationError("trucks", "Unknown truck: "+truckID)
		}
	}
	return nil
}

func toTripResponse(t *entity.Trip) dto.TripResponse {
	return dto.TripResponse{
		ID:                         t.ID,
		OrderID:                    t.OrderID,
		TruckIDs:                   t.TruckIDs,
		OriginID:                   t.OriginID,
		DestinationID:              t.DestinationID,
		StartDate:                  t.StartDate,
		EndDate:                    t.EndDate,
		Status:                     string(t.Status),
		OffloadingPointContact:     t.OffloadingPointContact,
		OffloadingPointContactName: t.OffloadingPointContactName,
		LoadingPointContact:        t.LoadingPointContact,
		LoadingPointContactName:    t.LoadingPointContactName,
		Description:                t.Description,
		TripNumber:                 t.TripNumber,
		Transporter:                t.TransporterID,
		CreatedAt:                  t.CreatedAt,
	}
}

func toTripResponses(trips []*entity.Trip) []dto.TripResponse {
	out := make([]dto.TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripResponse(t))
	}
	return out
}
