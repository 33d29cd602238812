package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okwaroh/twende-logistics/internal/application/onboarding"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
)

var _ onboarding.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction, handing the
// callback repositories bound to that transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOnboarding opens a transaction spanning user, role, company and
// specialization writes. Commit happens only when fn returns nil.
func (r *TxRunner) RunOnboarding(ctx context.Context, fn func(
	users repository.UserRepository,
	roles repository.RoleRepository,
	companies repository.CompanyRepository,
	cargoOwners repository.CargoOwnerRepository,
	transporters repository.TransporterRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	users := NewUserRepository(tx)
	roles := NewRoleRepository(tx)
	companies := NewCompanyRepository(tx)
	cargoOwners := NewCargoOwnerRepository(tx)
	transporters := NewTransporterRepository(tx)

	if err := fn(users, roles, companies, cargoOwners, transporters); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunDriver opens a transaction spanning the user account and driver record
// writes.
func (r *TxRunner) RunDriver(ctx context.Context, fn func(
	users repository.UserRepository,
	roles repository.RoleRepository,
	drivers repository.DriverRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	users := NewUserRepository(tx)
	roles := NewRoleRepository(tx)
	drivers := NewDriverRepository(tx)

	if err := fn(users, roles, drivers); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
