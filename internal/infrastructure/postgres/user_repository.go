package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, full_name, email, phone, password_hash, role, employer_id,
	is_verified, is_active, is_deleted, created_at, updated_at`

// UserRepo implements the UserRepository port over PostgreSQL. Works on the
// pool or inside a transaction (Querier).
type UserRepo struct {
	q Querier
}

// NewUserRepository builds the user persistence adapter.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persists a new user. Unique violations surface as field-scoped
// duplicate errors.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.FullName, user.Email, user.Phone, user.PasswordHash, user.Role,
		user.EmployerID, user.IsVerified, user.IsActive, user.IsDeleted,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if e := duplicateField(err); e != err {
			return e
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID returns a user by id, deleted rows included, or nil. Login and
// token resolution guard IsDeleted themselves; the wide read keeps removed
// accounts reachable for audit.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByEmail returns a user by email (the login key), or nil.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE email = $1 AND NOT is_deleted LIMIT 1`
	return r.scanOne(ctx, query, email)
}

// Update persists a changed user.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET full_name = $2, email = $3, phone = $4, password_hash = $5, role = $6,
		    employer_id = NULLIF($7, '')::uuid, is_verified = $8, is_active = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.FullName, user.Email, user.Phone, user.PasswordHash, user.Role,
		user.EmployerID, user.IsVerified, user.IsActive, user.UpdatedAt,
	)
	if err != nil {
		if e := duplicateField(err); e != err {
			return e
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ListByEmployer lists the live users attached to a company.
func (r *UserRepo) ListByEmployer(ctx context.Context, companyID string) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE employer_id = $1 AND NOT is_deleted
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// ListEmployees lists every live user attached to any company.
func (r *UserRepo) ListEmployees(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE employer_id IS NOT NULL AND NOT is_deleted
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// SoftDelete marks a user deleted; the row stays for audit.
func (r *UserRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE users SET is_deleted = TRUE, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("soft delete user: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var employerID *string
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &employerID,
		&u.IsVerified, &u.IsActive, &u.IsDeleted, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if employerID != nil {
		u.EmployerID = *employerID
	}
	return &u, nil
}

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implements the role title table with get-or-create semantics.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository builds the role persistence adapter.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// GetOrCreate returns the row for a title, inserting it on first reference.
func (r *RoleRepo) GetOrCreate(ctx context.Context, title entity.Role) (*entity.RoleRecord, error) {
	query := `
		INSERT INTO roles (id, title) VALUES ($1, $2)
		ON CONFLICT (title) DO UPDATE SET title = EXCLUDED.title
		RETURNING id, title, created_at`
	var rec entity.RoleRecord
	err := r.q.QueryRow(ctx, query, uuid.NewString(), title).Scan(&rec.ID, &rec.Title, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get or create role: %w", err)
	}
	return &rec, nil
}
