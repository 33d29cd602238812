package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
)

var _ repository.RateRepository = (*RateRepo)(nil)

const rateColumns = `id, price_per_km, price_per_kg, price_per_truck, preferred_currency,
	created_by_id, is_deleted, created_at, updated_at`

// RateRepo implements RateRepository over PostgreSQL. Charges map to NUMERIC
// columns and scan into decimals via the registered pgx codec.
type RateRepo struct {
	q Querier
}

// NewRateRepository builds the rate persistence adapter.
func NewRateRepository(q Querier) *RateRepo {
	return &RateRepo{q: q}
}

// Create persists a new rate sheet.
func (r *RateRepo) Create(ctx context.Context, rate *entity.Rate) error {
	query := `
		INSERT INTO rates (` + rateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		rate.ID, rate.PricePerKm, rate.PricePerKg, rate.PricePerTruck, rate.PreferredCurrency,
		rate.CreatedByID, rate.IsDeleted, rate.CreatedAt, rate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rate: %w", err)
	}
	return nil
}

// GetByID returns a rate by id, deleted rows included, or nil.
func (r *RateRepo) GetByID(ctx context.Context, id string) (*entity.Rate, error) {
	query := `SELECT ` + rateColumns + ` FROM rates WHERE id = $1`
	rate, err := scanRate(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rate: %w", err)
	}
	return rate, nil
}

// ListByCreator lists a cargo owner's live rates.
func (r *RateRepo) ListByCreator(ctx context.Context, cargoOwnerID string) ([]*entity.Rate, error) {
	query := `
		SELECT ` + rateColumns + ` FROM rates
		WHERE created_by_id = $1 AND NOT is_deleted ORDER BY created_at DESC`
	return r.list(ctx, query, cargoOwnerID)
}

// ListAll lists every live rate on the platform.
func (r *RateRepo) ListAll(ctx context.Context) ([]*entity.Rate, error) {
	query := `SELECT ` + rateColumns + ` FROM rates WHERE NOT is_deleted ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// Update persists a changed rate sheet.
func (r *RateRepo) Update(ctx context.Context, rate *entity.Rate) error {
	query := `
		UPDATE rates
		SET price_per_km = $2, price_per_kg = $3, price_per_truck = $4,
		    preferred_currency = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		rate.ID, rate.PricePerKm, rate.PricePerKg, rate.PricePerTruck,
		rate.PreferredCurrency, rate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rate: %w", err)
	}
	return nil
}

// SoftDelete marks a rate deleted.
func (r *RateRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE rates SET is_deleted = TRUE, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("soft delete rate: %w", err)
	}
	return nil
}

func (r *RateRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Rate, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rate
	for rows.Next() {
		rate, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rate: %w", err)
		}
		list = append(list, rate)
	}
	return list, rows.Err()
}

func scanRate(row pgx.Row) (*entity.Rate, error) {
	var rate entity.Rate
	err := row.Scan(
		&rate.ID, &rate.PricePerKm, &rate.PricePerKg, &rate.PricePerTruck, &rate.PreferredCurrency,
		&rate.CreatedByID, &rate.IsDeleted, &rate.CreatedAt, &rate.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rate, nil
}
