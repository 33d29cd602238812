package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
)

var _ repository.DriverRepository = (*DriverRepo)(nil)

const driverColumns = `id, user_id, company_id, id_number, driver_license, is_deleted, created_at, updated_at`

// DriverRepo implements DriverRepository over PostgreSQL.
type DriverRepo struct {
	q Querier
}

// NewDriverRepository builds the driver persistence adapter.
func NewDriverRepository(q Querier) *DriverRepo {
	return &DriverRepo{q: q}
}

// Create persists a new driver record. Duplicate national id or license
// numbers surface as field-scoped errors.
func (r *DriverRepo) Create(ctx context.Context, d *entity.Driver) error {
	query := `
		INSERT INTO drivers (` + driverColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.UserID, d.CompanyID, d.IDNumber, d.DriverLicense, d.IsDeleted, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if e := duplicateField(err); e != err {
			return e
		}
		return fmt.Errorf("insert driver: %w", err)
	}
	return nil
}

// GetByID returns a driver record by id, deleted rows included, or nil.
func (r *DriverRepo) GetByID(ctx context.Context, id string) (*entity.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByUser returns the driver record backing a user account, or nil.
func (r *DriverRepo) GetByUser(ctx context.Context, userID string) (*entity.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE user_id = $1 AND NOT is_deleted LIMIT 1`
	return r.scanOne(ctx, query, userID)
}

// ListByCompany lists a transporter company's live drivers.
func (r *DriverRepo) ListByCompany(ctx context.Context, transporterID string) ([]*entity.Driver, error) {
	query := `
		SELECT ` + driverColumns + ` FROM drivers
		WHERE company_id = $1 AND NOT is_deleted ORDER BY created_at DESC`
	return r.list(ctx, query, transporterID)
}

// ListAll lists every live driver on the platform.
func (r *DriverRepo) ListAll(ctx context.Context) ([]*entity.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE NOT is_deleted ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// Update persists a changed driver record.
func (r *DriverRepo) Update(ctx context.Context, d *entity.Driver) error {
	query := `UPDATE drivers SET id_number = $2, driver_license = $3, updated_at = $4 WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, d.ID, d.IDNumber, d.DriverLicense, d.UpdatedAt); err != nil {
		if e := duplicateField(err); e != err {
			return e
		}
		return fmt.Errorf("update driver: %w", err)
	}
	return nil
}

// SoftDelete marks a driver record deleted.
func (r *DriverRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE drivers SET is_deleted = TRUE, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("soft delete driver: %w", err)
	}
	return nil
}

func (r *DriverRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Driver, error) {
	var d entity.Driver
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&d.ID, &d.UserID, &d.CompanyID, &d.IDNumber, &d.DriverLicense, &d.IsDeleted, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return &d, nil
}

func (r *DriverRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Driver, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Driver
	for rows.Next() {
		var d entity.Driver
		if err := rows.Scan(&d.ID, &d.UserID, &d.CompanyID, &d.IDNumber, &d.DriverLicense, &d.IsDeleted, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
