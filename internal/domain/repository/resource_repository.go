package repository

import (
	"context"

	"github.com/okwaroh/twende-logistics/internal/domain/entity"
)

// DepotRepository persists depots. ListForUser returns the user's own depots
// plus all public ones.
type DepotRepository interface {
	Create(ctx context.Context, depot *entity.Depot) error
	GetByID(ctx context.Context, id string) (*entity.Depot, error)
	ListForUser(ctx context.Context, userID string) ([]*entity.Depot, error)
	ListAll(ctx context.Context) ([]*entity.Depot, error)
	Update(ctx context.Context, depot *entity.Depot) error
	SoftDelete(ctx context.Context, id string) error
}

// CargoTypeRepository persists the platform-wide cargo classifications.
type CargoTypeRepository interface {
	Create(ctx context.Context, ct *entity.CargoType) error
	GetByID(ctx context.Context, id string) (*entity.CargoType, error)
	List(ctx context.Context) ([]*entity.CargoType, error)
	Update(ctx context.Context, ct *entity.CargoType) error
	SoftDelete(ctx context.Context, id string) error
}

// CommodityRepository persists commodities, scoped by creating cargo owner.
type CommodityRepository interface {
	Create(ctx context.Context, c *entity.Commodity) error
	GetByID(ctx context.Context, id string) (*entity.Commodity, error)
	ListByCreator(ctx context.Context, cargoOwnerID string) ([]*entity.Commodity, error)
	ListAll(ctx context.Context) ([]*entity.Commodity, error)
	Update(ctx context.Context, c *entity.Commodity) error
	SoftDelete(ctx context.Context, id string) error
}

// RateRepository persists rate sheets, scoped by creating cargo owner.
type RateRepository interface {
	Create(ctx context.Context, rate *entity.Rate) error
	GetByID(ctx context.Context, id string) (*entity.Rate, error)
	ListByCreator(ctx context.Context, cargoOwnerID string) ([]*entity.Rate, error)
	ListAll(ctx context.Context) ([]*entity.Rate, error)
	Update(ctx context.Context, rate *entity.Rate) error
	SoftDelete(ctx context.Context, id string) error
}

// OrderRepository persists orders. Client-facing lookups go through the
// tracking id, not the primary key.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByTrackingID(ctx context.Context, trackingID string) (*entity.Order, error)
	ListByOwner(ctx context.Context, cargoOwnerID string) ([]*entity.Order, error)
	ListAll(ctx context.Context) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	SoftDelete(ctx context.Context, id string) error
}

// TripRepository persists trips, scoped by transporter company.
type TripRepository interface {
	Create(ctx context.Context, trip *entity.Trip) error
	GetByID(ctx context.Context, id string) (*entity.Trip, error)
	ListByTransporter(ctx context.Context, transporterID string) ([]*entity.Trip, error)
	ListAll(ctx context.Context) ([]*entity.Trip, error)
	Update(ctx context.Context, trip *entity.Trip) error
	SoftDelete(ctx context.Context, id string) error
}

// DriverRepository persists driver records, scoped by transporter company.
type DriverRepository interface {
	Create(ctx context.Context, driver *entity.Driver) error
	GetByID(ctx context.Context, id string) (*entity.Driver, error)
	GetByUser(ctx context.Context, userID string) (*entity.Driver, error)
	ListByCompany(ctx context.Context, transporterID string) ([]*entity.Driver, error)
	ListAll(ctx context.Context) ([]*entity.Driver, error)
	Update(ctx context.Context, driver *entity.Driver) error
	SoftDelete(ctx context.Context, id string) error
}
