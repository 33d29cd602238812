package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, tracking_id, title, description, commodity_id, cargo_tonnage,
	origin_ids, destination_ids, loading_point_contact, loading_point_contact_name,
	offloading_point_contact, offloading_point_contact_name, status, desired_rate_id,
	recurring_order, order_type, desired_truck_type, owner_id, recipients, assigned,
	is_deleted, created_at, updated_at`

// OrderRepo implements OrderRepository over PostgreSQL. Depot id lists and
// recipients live in TEXT[] columns; pgx scans them into []string directly.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the order persistence adapter.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persists a new order. A tracking-id collision surfaces as a
// field-scoped duplicate error so the caller can regenerate.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.TrackingID, o.Title, o.Description, o.CommodityID, o.CargoTonnage,
		o.OriginIDs, o.DestinationIDs, o.LoadingPointContact, o.LoadingPointContactName,
		o.OffloadingPointContact, o.OffloadingPointContactName, o.Status, o.DesiredRateID,
		o.RecurringOrder, o.OrderType, o.DesiredTruckType, o.OwnerID, o.Recipients, o.Assigned,
		o.IsDeleted, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if e := duplicateField(err); e != err {
			return e
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByTrackingID returns an order by its client-facing id, deleted rows
// included, or nil.
func (r *OrderRepo) GetByTrackingID(ctx context.Context, trackingID string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE tracking_id = $1`
	o, err := scanOrder(r.q.QueryRow(ctx, query, trackingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// ListByOwner lists a cargo owner's live orders, newest first.
func (r *OrderRepo) ListByOwner(ctx context.Context, cargoOwnerID string) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + ` FROM orders
		WHERE owner_id = $1 AND NOT is_deleted ORDER BY created_at DESC`
	return r.list(ctx, query, cargoOwnerID)
}

// ListAll lists every live order on the platform.
func (r *OrderRepo) ListAll(ctx context.Context) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE NOT is_deleted ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// Update persists a changed order. The tracking id and owner never change.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE orders
		SET title = $2, description = $3, commodity_id = $4, cargo_tonnage = $5,
		    origin_ids = $6, destination_ids = $7, loading_point_contact = $8,
		    loading_point_contact_name = $9, offloading_point_contact = $10,
		    offloading_point_contact_name = $11, status = $12, desired_rate_id = $13,
		    recurring_order = $14, order_type = $15, desired_truck_type = $16,
		    recipients = $17, assigned = $18, updated_at = $19
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Title, o.Description, o.CommodityID, o.CargoTonnage,
		o.OriginIDs, o.DestinationIDs, o.LoadingPointContact,
		o.LoadingPointContactName, o.OffloadingPointContact,
		o.OffloadingPointContactName, o.Status, o.DesiredRateID,
		o.RecurringOrder, o.OrderType, o.DesiredTruckType,
		o.Recipients, o.Assigned, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// SoftDelete marks an order deleted.
func (r *OrderRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE orders SET is_deleted = TRUE, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("soft delete order: %w", err)
	}
	return nil
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.TrackingID, &o.Title, &o.Description, &o.CommodityID, &o.CargoTonnage,
		&o.OriginIDs, &o.DestinationIDs, &o.LoadingPointContact, &o.LoadingPointContactName,
		&o.OffloadingPointContact, &o.OffloadingPointContactName, &o.Status, &o.DesiredRateID,
		&o.RecurringOrder, &o.OrderType, &o.DesiredTruckType, &o.OwnerID, &o.Recipients, &o.Assigned,
		&o.IsDeleted, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
