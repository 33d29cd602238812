package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
)

var _ repository.DepotRepository = (*DepotRepo)(nil)

const depotColumns = `id, user_id, city, address, street, state, lattitude, longitude,
	is_public, is_deleted, created_at, updated_at`

// DepotRepo implements DepotRepository over PostgreSQL.
type DepotRepo struct {
	q Querier
}

// NewDepotRepository builds the depot persistence adapter.
func NewDepotRepository(q Querier) *DepotRepo {
	return &DepotRepo{q: q}
}

// Create persists a new depot.
func (r *DepotRepo) Create(ctx context.Context, d *entity.Depot) error {
	query := `
		INSERT INTO depots (` + depotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.UserID, d.City, d.Address, d.Street, d.State,
		d.Coordinates.Lattitude, d.Coordinates.Longitude,
		d.IsPublic, d.IsDeleted, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert depot: %w", err)
	}
	return nil
}

// GetByID returns a depot by id, deleted rows included, or nil.
func (r *DepotRepo) GetByID(ctx context.Context, id string) (*entity.Depot, error) {
	query := `SELECT ` + depotColumns + ` FROM depots WHERE id = $1`
	d, err := scanDepot(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get depot: %w", err)
	}
	return d, nil
}

// ListForUser lists the user's own depots together with every public one.
func (r *DepotRepo) ListForUser(ctx context.Context, userID string) ([]*entity.Depot, error) {
	query := `
		SELECT ` + depotColumns + ` FROM depots
		WHERE (user_id = $1 OR is_public) AND NOT is_deleted
		ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

// ListAll lists every live depot on the platform.
func (r *DepotRepo) ListAll(ctx context.Context) ([]*entity.Depot, error) {
	query := `SELECT ` + depotColumns + ` FROM depots WHERE NOT is_deleted ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// Update persists a changed depot.
func (r *DepotRepo) Update(ctx context.Context, d *entity.Depot) error {
	query := `
		UPDATE depots
		SET city = $2, address = $3, street = $4, state = $5, lattitude = $6,
		    longitude = $7, is_public = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.City, d.Address, d.Street, d.State,
		d.Coordinates.Lattitude, d.Coordinates.Longitude, d.IsPublic, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update depot: %w", err)
	}
	return nil
}

// SoftDelete marks a depot deleted.
func (r *DepotRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE depots SET is_deleted = TRUE, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("soft delete depot: %w", err)
	}
	return nil
}

func (r *DepotRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Depot, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list depots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Depot
	for rows.Next() {
		d, err := scanDepot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan depot: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanDepot(row pgx.Row) (*entity.Depot, error) {
	var d entity.Depot
	err := row.Scan(
		&d.ID, &d.UserID, &d.City, &d.Address, &d.Street, &d.State,
		&d.Coordinates.Lattitude, &d.Coordinates.Longitude,
		&d.IsPublic, &d.IsDeleted, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
