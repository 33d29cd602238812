package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
)

var _ repository.TripRepository = (*TripRepo)(nil)

const tripColumns = `id, order_id, truck_ids, origin_id, destination_id, start_date, end_date,
	status, offloading_point_contact, offloading_point_contact_name,
	loading_point_contact, loading_point_contact_name, description, trip_number,
	transporter_id, is_deleted, created_at, updated_at`

// TripRepo implements TripRepository over PostgreSQL. The end date column is
// nullable; it scans into the entity's *time.Time directly.
type TripRepo struct {
	q Querier
}

// NewTripRepository builds the trip persistence adapter.
func NewTripRepository(q Querier) *TripRepo {
	return &TripRepo{q: q}
}

// Create persists a new trip.
func (r *TripRepo) Create(ctx context.Context, t *entity.Trip) error {
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.OrderID, t.TruckIDs, t.OriginID, t.DestinationID, t.StartDate, t.EndDate,
		t.Status, t.OffloadingPointContact, t.OffloadingPointContactName,
		t.LoadingPointContact, t.LoadingPointContactName, t.Description, t.TripNumber,
		t.TransporterID, t.IsDeleted, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert trip: %w", err)
	}
	return nil
}

// GetByID returns a trip by id, deleted rows included, or nil.
func (r *TripRepo) GetByID(ctx context.Context, id string) (*entity.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`
	t, err := scanTrip(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return t, nil
}

// ListByTransporter lists a transporter company's live trips.
func (r *TripRepo) ListByTransporter(ctx context.Context, transporterID string) ([]*entity.Trip, error) {
	query := `
		SELECT ` + tripColumns + ` FROM trips
		WHERE transporter_id = $1 AND NOT is_deleted ORDER BY created_at DESC`
	return r.list(ctx, query, transporterID)
}

// ListAll lists every live trip on the platform.
func (r *TripRepo) ListAll(ctx context.Context) ([]*entity.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE NOT is_deleted ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// Update persists a changed trip. Order and transporter bindings never change.
func (r *TripRepo) Update(ctx context.Context, t *entity.Trip) error {
	query := `
		UPDATE trips
		SET truck_ids = $2, origin_id = $3, destination_id = $4, start_date = $5,
		    end_date = $6, status = $7, offloading_point_contact = $8,
		    offloading_point_contact_name = $9, loading_point_contact = $10,
		    loading_point_contact_name = $11, description = $12, trip_number = $13,
		    updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.TruckIDs, t.OriginID, t.DestinationID, t.StartDate,
		t.EndDate, t.Status, t.OffloadingPointContact,
		t.OffloadingPointContactName, t.LoadingPointContact,
		t.LoadingPointContactName, t.Description, t.TripNumber,
		t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update trip: %w", err)
	}
	return nil
}

// SoftDelete marks a trip deleted.
func (r *TripRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE trips SET is_deleted = TRUE, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("soft delete trip: %w", err)
	}
	return nil
}

func (r *TripRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Trip, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()
	var list []*entity.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTrip(row pgx.Row) (*entity.Trip, error) {
	var t entity.Trip
	err := row.Scan(
		&t.ID, &t.OrderID, &t.TruckIDs, &t.OriginID, &t.DestinationID, &t.StartDate, &t.EndDate,
		&t.Status, &t.OffloadingPointContact, &t.OffloadingPointContactName,
		&t.LoadingPointContact, &t.LoadingPointContactName, &t.Description, &t.TripNumber,
		&t.TransporterID, &t.IsDeleted, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
