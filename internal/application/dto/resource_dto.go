package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/okwaroh/twende-logistics/internal/domain/entity"
)

// ── Depots ────────────────────────────────────────────────────────────────────

// CreateDepotRequest input for registering a depot.
type CreateDepotRequest struct {
	City        string             `json:"city"`
	Address     string             `json:"address"`
	Street      string             `json:"street"`
	State       string             `json:"state"`
	Coordinates entity.Coordinates `json:"coordinates" validate:"required"`
	IsPublic    *bool              `json:"is_public"`
}

// UpdateDepotRequest partial depot update.
type UpdateDepotRequest struct {
	City        *string             `json:"city"`
	Address     *string             `json:"address"`
	Street      *string             `json:"street"`
	State       *string             `json:"state"`
	Coordinates *entity.Coordinates `json:"coordinates"`
	IsPublic    *bool               `json:"is_public"`
}

// DepotResponse a depot.
type DepotResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	City        string             `json:"city,omitempty"`
	Address     string             `json:"address,omitempty"`
	Street      string             `json:"street,omitempty"`
	State       string             `json:"state,omitempty"`
	Coordinates entity.Coordinates `json:"coordinates"`
	IsPublic    bool               `json:"is_public"`
	CreatedAt   time.Time          `json:"created_at"`
}

// ── Cargo types & commodities ─────────────────────────────────────────────────

// CreateCargoTypeRequest superuser-only platform classification.
type CreateCargoTypeRequest struct {
	Name        string `json:"cargo_type" validate:"required"`
	Description string `json:"description" validate:"required,max=200"`
}

// CargoTypeResponse a cargo type.
type CargoTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"cargo_type"`
	Description string `json:"description"`
}

// CreateCommodityRequest input for a cargo owner's commodity.
type CreateCommodityRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	CargoTypeID string `json:"cargo_type" validate:"required"`
	Description string `json:"description" validate:"required,max=200"`
}

// UpdateCommodityRequest partial commodity update.
type UpdateCommodityRequest struct {
	Name        *string `json:"name"`
	CargoTypeID *string `json:"cargo_type"`
	Description *string `json:"description"`
}

// CommodityResponse a commodity.
type CommodityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CargoTypeID string `json:"cargo_type"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
}

// ── Rates ─────────────────────────────────────────────────────────────────────

// CreateRateRequest a cargo owner's price sheet. The charge keys are fixed
// columns; unknown keys cannot be expressed, by design.
type CreateRateRequest struct {
	PricePerKm        decimal.Decimal `json:"price_per_km"`
	PricePerKg        decimal.Decimal `json:"price_per_kg"`
	PricePerTruck     decimal.Decimal `json:"price_per_truck"`
	PreferredCurrency string          `json:"preferred_currency" validate:"required,oneof=USD KES"`
}

// UpdateRateRequest partial rate update.
type UpdateRateRequest struct {
	PricePerKm        *decimal.Decimal `json:"price_per_km"`
	PricePerKg        *decimal.Decimal `json:"price_per_kg"`
	PricePerTruck     *decimal.Decimal `json:"price_per_truck"`
	PreferredCurrency *string          `json:"preferred_currency" validate:"omitempty,oneof=USD KES"`
}

// RateResponse a rate sheet.
type RateResponse struct {
	ID                string          `json:"id"`
	PricePerKm        decimal.Decimal `json:"price_per_km"`
	PricePerKg        decimal.Decimal `json:"price_per_kg"`
	PricePerTruck     decimal.Decimal `json:"price_per_truck"`
	PreferredCurrency string          `json:"preferred_currency"`
	CreatedBy         string          `json:"created_by"`
}

// ── Orders ────────────────────────────────────────────────────────────────────

// CreateOrderRequest a cargo owner's shipment request. Owner is injected from
// the acting company.
type CreateOrderRequest struct {
	Title                      string          `json:"title" validate:"required,max=50"`
	Description                string          `json:"description" validate:"required,max=1000"`
	CommodityID                string          `json:"commodity" validate:"required"`
	CargoTonnage               decimal.Decimal `json:"cargo_tonnage"`
	OriginIDs                  []string        `json:"origin" validate:"required,min=1"`
	DestinationIDs             []string        `json:"destination" validate:"required,min=1"`
	LoadingPointContact        string          `json:"loading_point_contact" validate:"required"`
	LoadingPointContactName    string          `json:"loading_point_contact_name" validate:"required"`
	OffloadingPointContact     string          `json:"offloading_point_contact" validate:"required"`
	OffloadingPointContactName string          `json:"offloading_point_contact_name" validate:"required"`
	DesiredRateID              string          `json:"desired_rates" validate:"required"`
	RecurringOrder             bool            `json:"recurring_order"`
	OrderType                  string          `json:"order_type"`
	DesiredTruckType           string          `json:"desired_truck_type" validate:"required"`
	Recipients                 []string        `json:"recepients" validate:"required,max=5"`
}

// UpdateOrderRequest partial order update; owner and soft-delete fields from
// callers are ignored.
type UpdateOrderRequest struct {
	Title            *string             `json:"title"`
	Description      *string             `json:"description"`
	Status           *entity.OrderStatus `json:"status"`
	DesiredTruckType *string             `json:"desired_truck_type"`
	Assigned         *bool               `json:"assigned"`
}

// OrderResponse an order.
type OrderResponse struct {
	TrackingID                 string          `json:"tracking_id"`
	Title                      string          `json:"title"`
	Description                string          `json:"description"`
	CommodityID                string          `json:"commodity"`
	CargoTonnage               decimal.Decimal `json:"cargo_tonnage"`
	OriginIDs                  []string        `json:"origin"`
	DestinationIDs             []string        `json:"destination"`
	LoadingPointContact        string          `json:"loading_point_contact"`
	LoadingPointContactName    string          `json:"loading_point_contact_name"`
	OffloadingPointContact     string          `json:"offloading_point_contact"`
	OffloadingPointContactName string          `json:"offloading_point_contact_name"`
	Status                     string          `json:"status"`
	DesiredRateID              string          `json:"desired_rates"`
	RecurringOrder             bool            `json:"recurring_order"`
	OrderType                  string          `json:"order_type"`
	DesiredTruckType           string          `json:"desired_truck_type"`
	Owner                      string          `json:"owner"`
	Recipients                 []string        `json:"recepients"`
	Assigned                   bool            `json:"assigned"`
	CreatedAt                  time.Time       `json:"created_at"`
}

// ── Trips ─────────────────────────────────────────────────────────────────────

// CreateTripRequest a transporter's trip for an order.
type CreateTripRequest struct {
	OrderID                    string     `json:"order" validate:"required"`
	TruckIDs                   []string   `json:"trucks" validate:"required,min=1"`
	OriginID                   string     `json:"origin" validate:"required"`
	DestinationID              string     `json:"destination" validate:"required"`
	StartDate                  time.Time  `json:"start_date" validate:"required"`
	EndDate                    *time.Time `json:"end_date"`
	OffloadingPointContact     string     `json:"offloading_point_contact" validate:"required"`
	OffloadingPointContactName string     `json:"offloading_point_contact_name" validate:"required"`
	LoadingPointContact        string     `json:"loading_point_contact" validate:"required"`
	LoadingPointContactName    string     `json:"loading_point_contact_name" validate:"required"`
	Description                string     `json:"description" validate:"required,max=1000"`
	TripNumber                 int        `json:"trip_number" validate:"required"`
}

// UpdateTripRequest partial trip update.
type UpdateTripRequest struct {
	Status      *entity.TripStatus `json:"status"`
	EndDate     *time.Time         `json:"end_date"`
	Description *string            `json:"description"`
}

// TripResponse a trip.
type TripResponse struct {
	ID                         string     `json:"id"`
	OrderID                    string     `json:"order"`
	TruckIDs                   []string   `json:"trucks"`
	OriginID                   string     `json:"origin"`
	DestinationID              string     `json:"destination"`
	StartDate                  time.Time  `json:"start_date"`
	EndDate                    *time.Time `json:"end_date,omitempty"`
	Status                     string     `json:"status"`
	OffloadingPointContact     string     `json:"offloading_point_contact"`
	OffloadingPointContactName string     `json:"offloading_point_contact_name"`
	LoadingPointContact        string     `json:"loading_point_contact"`
	LoadingPointContactName    string     `json:"loading_point_contact_name"`
	Description                string     `json:"description"`
	TripNumber                 int        `json:"trip_number"`
	Transporter                string     `json:"transporter"`
	CreatedAt                  time.Time  `json:"created_at"`
}
