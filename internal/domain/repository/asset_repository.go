package repository

import (
	"context"

	"github.com/okwaroh/twende-logistics/internal/domain/entity"
)

// TruckRepository persists trucks, scoped by owning transporter company.
type TruckRepository interface {
	Create(ctx context.Context, truck *entity.Truck) error
	GetByID(ctx context.Context, id string) (*entity.Truck, error)
	ListByOwner(ctx context.Context, transporterID string) ([]*entity.Truck, error)
	ListAll(ctx context.Context) ([]*entity.Truck, error)
	Update(ctx context.Context, truck *entity.Truck) error
	SoftDelete(ctx context.Context, id string) error
}

// TrailerRepository persists trailers, scoped by owning transporter company.
type TrailerRepository interface {
	Create(ctx context.Context, trailer *entity.Trailer) error
	GetByID(ctx context.Context, id string) (*entity.Trailer, error)
	ListByOwner(ctx context.Context, transporterID string) ([]*entity.Trailer, error)
	ListAll(ctx context.Context) ([]*entity.Trailer, error)
	Update(ctx context.Context, trailer *entity.Trailer) error
	SoftDelete(ctx context.Context, id string) error
}
