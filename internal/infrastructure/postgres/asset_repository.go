package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
)

var (
	_ repository.TruckRepository   = (*TruckRepo)(nil)
	_ repository.TrailerRepository = (*TrailerRepo)(nil)
)

const assetColumns = `id, name, owned_by_id, reg_no, haulage, type, tracking, is_deleted, created_at, updated_at`

// TruckRepo implements TruckRepository over PostgreSQL.
type TruckRepo struct {
	q Querier
}

// NewTruckRepository builds the truck persistence adapter.
func NewTruckRepository(q Querier) *TruckRepo {
	return &TruckRepo{q: q}
}

// Create persists a new truck. A duplicate registration number surfaces as a
// field-scoped error.
func (r *TruckRepo) Create(ctx context.Context, t *entity.Truck) error {
	query := `
		INSERT INTO trucks (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Name, t.OwnedByID, t.RegNo, t.Haulage, t.Type, t.Tracking, t.IsDeleted, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if e := duplicateField(err); e != err {
			return e
		}
		return fmt.Errorf("insert truck: %w", err)
	}
	return nil
}

// GetByID returns a truck by id, deleted rows included, or nil. Callers decide
// whether a deleted row may be shown (audit) or must act as missing.
func (r *TruckRepo) GetByID(ctx context.Context, id string) (*entity.Truck, error) {
	query := `SELECT ` + assetColumns + ` FROM trucks WHERE id = $1`
	var t entity.Truck
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.OwnedByID, &t.RegNo, &t.Haulage, &t.Type, &t.Tracking, &t.IsDeleted, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get truck: %w", err)
	}
	return &t, nil
}

// ListByOwner lists a transporter company's live trucks.
func (r *TruckRepo) ListByOwner(ctx context.Context, transporterID string) ([]*entity.Truck, error) {
	query := `
		SELECT ` + assetColumns + ` FROM trucks
		WHERE owned_by_id = $1 AND NOT is_deleted ORDER BY created_at DESC`
	return r.list(ctx, query, transporterID)
}

// ListAll lists every live truck on the platform.
func (r *TruckRepo) ListAll(ctx context.Context) ([]*entity.Truck, error) {
	query := `SELECT ` + assetColumns + ` FROM trucks WHERE NOT is_deleted ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// Update persists a changed truck.
func (r *TruckRepo) Update(ctx context.Context, t *entity.Truck) error {
	query := `
		UPDATE trucks SET name = $2, haulage = $3, type = $4, tracking = $5, updated_at = $6
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, t.ID, t.Name, t.Haulage, t.Type, t.Tracking, t.UpdatedAt); err != nil {
		return fmt.Errorf("update truck: %w", err)
	}
	return nil
}

// SoftDelete marks a truck deleted. The row keeps its registration number, so
// the plate stays reserved until the record is purged.
func (r *TruckRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE trucks SET is_deleted = TRUE, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("soft delete truck: %w", err)
	}
	return nil
}

func (r *TruckRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Truck, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trucks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Truck
	for rows.Next() {
		var t entity.Truck
		if err := rows.Scan(&t.ID, &t.Name, &t.OwnedByID, &t.RegNo, &t.Haulage, &t.Type, &t.Tracking, &t.IsDeleted, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan truck: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// TrailerRepo implements TrailerRepository over PostgreSQL.
type TrailerRepo struct {
	q Querier
}

// NewTrailerRepository builds the trailer persistence adapter.
func NewTrailerRepository(q Querier) *TrailerRepo {
	return &TrailerRepo{q: q}
}

// Create persists a new trailer.
func (r *TrailerRepo) Create(ctx context.Context, t *entity.Trailer) error {
	query := `
		INSERT INTO trailers (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Name, t.OwnedByID, t.RegNo, t.Haulage, t.Type, t.Tracking, t.IsDeleted, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if e := duplicateField(err); e != err {
			return e
		}
		return fmt.Errorf("insert trailer: %w", err)
	}
	return nil
}

// GetByID returns a trailer by id, deleted rows included, or nil.
func (r *TrailerRepo) GetByID(ctx context.Context, id string) (*entity.Trailer, error) {
	query := `SELECT ` + assetColumns + ` FROM trailers WHERE id = $1`
	var t entity.Trailer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.OwnedByID, &t.RegNo, &t.Haulage, &t.Type, &t.Tracking, &t.IsDeleted, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trailer: %w", err)
	}
	return &t, nil
}

// ListByOwner lists a transporter company's live trailers.
func (r *TrailerRepo) ListByOwner(ctx context.Context, transporterID string) ([]*entity.Trailer, error) {
	query := `
		SELECT ` + assetColumns + ` FROM trailers
		WHERE owned_by_id = $1 AND NOT is_deleted ORDER BY created_at DESC`
	return r.list(ctx, query, transporterID)
}

// ListAll lists every live trailer on the platform.
func (r *TrailerRepo) ListAll(ctx context.Context) ([]*entity.Trailer, error) {
	query := `SELECT ` + assetColumns + ` FROM trailers WHERE NOT is_deleted ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// Update persists a changed trailer.
func (r *TrailerRepo) Update(ctx context.Context, t *entity.Trailer) error {
	query := `
		UPDATE trailers SET name = $2, haulage = $3, type = $4, tracking = $5, updated_at = $6
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, t.ID, t.Name, t.Haulage, t.Type, t.Tracking, t.UpdatedAt); err != nil {
		return fmt.Errorf("update trailer: %w", err)
	}
	return nil
}

// SoftDelete marks a trailer deleted; the registration number stays reserved.
func (r *TrailerRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE trailers SET is_deleted = TRUE, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("soft delete trailer: %w", err)
	}
	return nil
}

func (r *TrailerRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Trailer, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trailers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Trailer
	for rows.Next() {
		var t entity.Trailer
		if err := rows.Scan(&t.ID, &t.Name, &t.OwnedByID, &t.RegNo, &t.Haulage, &t.Type, &t.Tracking, &t.IsDeleted, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan trailer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
