// Package repository defines the persistence ports the application layer
// depends on. Implementations live in internal/infrastructure/postgres.
// Lookups return (nil, nil) when nothing matches; soft-deleted rows are
// excluded everywhere except GetByID variants used for audit access.
package repository

import (
	"context"

	"github.com/okwaroh/twende-logistics/internal/domain/entity"
)

// UserRepository persists identity records.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListByEmployer(ctx context.Context, companyID string) ([]*entity.User, error)
	ListEmployees(ctx context.Context) ([]*entity.User, error)
	SoftDelete(ctx context.Context, id string) error
}

// RoleRepository persists role titles with get-or-create semantics: a title
// row is created lazily the first time it is referenced.
type RoleRepository interface {
	GetOrCreate(ctx context.Context, title entity.Role) (*entity.RoleRecord, error)
}
