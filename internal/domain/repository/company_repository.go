package repository

import (
	"context"

	"github.com/okwaroh/twende-logistics/internal/domain/entity"
)

// CompanyRepository persists the shared company base.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByDirector(ctx context.Context, userID string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	SoftDelete(ctx context.Context, id string) error
}

// CargoOwnerRepository persists the cargo-owner specialization.
type CargoOwnerRepository interface {
	Create(ctx context.Context, co *entity.CargoOwnerCompany) error
	GetByID(ctx context.Context, id string) (*entity.CargoOwnerCompany, error)
	GetByCompany(ctx context.Context, companyID string) (*entity.CargoOwnerCompany, error)
	List(ctx context.Context) ([]*entity.CargoOwnerCompany, error)
	SoftDelete(ctx context.Context, id string) error
}

// TransporterRepository persists the transporter specialization.
type TransporterRepository interface {
	Create(ctx context.Context, tc *entity.TransporterCompany) error
	GetByID(ctx context.Context, id string) (*entity.TransporterCompany, error)
	GetByCompany(ctx context.Context, companyID string) (*entity.TransporterCompany, error)
	List(ctx context.Context) ([]*entity.TransporterCompany, error)
	SoftDelete(ctx context.Context, id string) error
}
