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
	_ repository.CargoTypeRepository = (*CargoTypeRepo)(nil)
	_ repository.CommodityRepository = (*CommodityRepo)(nil)
)

// CargoTypeRepo implements the platform-wide cargo classifications over
// PostgreSQL.
type CargoTypeRepo struct {
	q Querier
}

// NewCargoTypeRepository builds the cargo-type persistence adapter.
func NewCargoTypeRepository(q Querier) *CargoTypeRepo {
	return &CargoTypeRepo{q: q}
}

// Create persists a new cargo type.
func (r *CargoTypeRepo) Create(ctx context.Context, ct *entity.CargoType) error {
	query := `
		INSERT INTO cargo_types (id, name, description, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, ct.ID, ct.Name, ct.Description, ct.IsDeleted, ct.CreatedAt, ct.UpdatedAt)
	if err != nil {
		if e := duplicateField(err); e != err {
			return e
		}
		return fmt.Errorf("insert cargo type: %w", err)
	}
	return nil
}

// GetByID returns a live cargo type by id, or nil.
func (r *CargoTypeRepo) GetByID(ctx context.Context, id string) (*entity.CargoType, error) {
	query := `
		SELECT id, name, description, is_deleted, created_at, updated_at
		FROM cargo_types WHERE id = $1`
	var ct entity.CargoType
	err := r.q.QueryRow(ctx, query, id).Scan(&ct.ID, &ct.Name, &ct.Description, &ct.IsDeleted, &ct.CreatedAt, &ct.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cargo type: %w", err)
	}
	return &ct, nil
}

// List returns every live cargo type.
func (r *CargoTypeRepo) List(ctx context.Context) ([]*entity.CargoType, error) {
	query := `
		SELECT id, name, description, is_deleted, created_at, updated_at
		FROM cargo_types WHERE NOT is_deleted ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cargo types: %w", err)
	}
	defer rows.Close()
	var list []*entity.CargoType
	for rows.Next() {
		var ct entity.CargoType
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.Description, &ct.IsDeleted, &ct.CreatedAt, &ct.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cargo type: %w", err)
		}
		list = append(list, &ct)
	}
	return list, rows.Err()
}

// Update persists a changed cargo type.
func (r *CargoTypeRepo) Update(ctx context.Context, ct *entity.CargoType) error {
	query := `UPDATE cargo_types SET name = $2, description = $3, updated_at = $4 WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, ct.ID, ct.Name, ct.Description, ct.UpdatedAt); err != nil {
		if e := duplicateField(err); e != err {
			return e
		}
		return fmt.Errorf("update cargo type: %w", err)
	}
	return nil
}

// SoftDelete marks a cargo type deleted.
func (r *CargoTypeRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE cargo_types SET is_deleted = TRUE, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("soft delete cargo type: %w", err)
	}
	return nil
}

const commodityColumns = `id, name, cargo_type_id, description, created_by_id, is_deleted, created_at, updated_at`

// CommodityRepo implements CommodityRepository over PostgreSQL.
type CommodityRepo struct {
	q Querier
}

// NewCommodityRepository builds the commodity persistence adapter.
func NewCommodityRepository(q Querier) *CommodityRepo {
	return &CommodityRepo{q: q}
}

// Create persists a new commodity.
func (r *CommodityRepo) Create(ctx context.Context, c *entity.Commodity) error {
	query := `
		INSERT INTO commodities (` + commodityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.CargoTypeID, c.Description, c.CreatedByID, c.IsDeleted, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert commodity: %w", err)
	}
	return nil
}

// GetByID returns a commodity by id, deleted rows included, or nil.
func (r *CommodityRepo) GetByID(ctx context.Context, id string) (*entity.Commodity, error) {
	query := `SELECT ` + commodityColumns + ` FROM commodities WHERE id = $1`
	var c entity.Commodity
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.CargoTypeID, &c.Description, &c.CreatedByID, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commodity: %w", err)
	}
	return &c, nil
}

// ListByCreator lists a cargo owner's live commodities.
func (r *CommodityRepo) ListByCreator(ctx context.Context, cargoOwnerID string) ([]*entity.Commodity, error) {
	query := `
		SELECT ` + commodityColumns + ` FROM commodities
		WHERE created_by_id = $1 AND NOT is_deleted ORDER BY created_at DESC`
	return r.list(ctx, query, cargoOwnerID)
}

// ListAll lists every live commodity on the platform.
func (r *CommodityRepo) ListAll(ctx context.Context) ([]*entity.Commodity, error) {
	query := `SELECT ` + commodityColumns + ` FROM commodities WHERE NOT is_deleted ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// Update persists a changed commodity.
func (r *CommodityRepo) Update(ctx context.Context, c *entity.Commodity) error {
	query := `
		UPDATE commodities SET name = $2, cargo_type_id = $3, description = $4, updated_at = $5
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, c.ID, c.Name, c.CargoTypeID, c.Description, c.UpdatedAt); err != nil {
		return fmt.Errorf("update commodity: %w", err)
	}
	return nil
}

// SoftDelete marks a commodity deleted.
func (r *CommodityRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE commodities SET is_deleted = TRUE, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("soft delete commodity: %w", err)
	}
	return nil
}

func (r *CommodityRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Commodity, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list commodities: %w", err)
	}
	defer rows.Close()
	var list []*entity.Commodity
	for rows.Next() {
		var c entity.Commodity
		if err := rows.Scan(&c.ID, &c.Name, &c.CargoTypeID, &c.Description, &c.CreatedByID, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan commodity: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
