package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, business_name, business_type, account_number, preferred_currency,
	business_phone_no, business_email, postal_code, operational_region,
	logo_ref, certificate_ref, directors_id_ref, director_id,
	is_active, is_deleted, created_at, updated_at`

// CompanyRepo implements the shared company base over PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the company persistence adapter.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persists a new company.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.BusinessName, c.BusinessType, c.AccountNumber, c.PreferredCurrency,
		c.BusinessPhoneNo, c.BusinessEmail, c.PostalCode, c.OperationalRegion,
		c.LogoRef, c.CertificateOfIncorporationRef, c.DirectorsIDRef, c.DirectorID,
		c.IsActive, c.IsDeleted, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if e := duplicateField(err); e != err {
			return e
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID returns a live company by id, or nil.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies WHERE id = $1 AND NOT is_deleted`
	return r.scanOne(ctx, query, id)
}

// GetByDirector returns the company a user directs, or nil.
func (r *CompanyRepo) GetByDirector(ctx context.Context, userID string) (*entity.Company, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies WHERE director_id = $1 AND NOT is_deleted LIMIT 1`
	return r.scanOne(ctx, query, userID)
}

// Update persists a changed company.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies
		SET business_type = $2, preferred_currency = $3, business_email = $4, postal_code = $5,
		    operational_region = $6, logo_ref = $7, certificate_ref = $8, directors_id_ref = $9,
		    is_active = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.BusinessType, c.PreferredCurrency, c.BusinessEmail, c.PostalCode,
		c.OperationalRegion, c.LogoRef, c.CertificateOfIncorporationRef, c.DirectorsIDRef,
		c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// SoftDelete marks a company deleted.
func (r *CompanyRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE companies SET is_deleted = TRUE, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("soft delete company: %w", err)
	}
	return nil
}

func (r *CompanyRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.BusinessName, &c.BusinessType, &c.AccountNumber, &c.PreferredCurrency,
		&c.BusinessPhoneNo, &c.BusinessEmail, &c.PostalCode, &c.OperationalRegion,
		&c.LogoRef, &c.CertificateOfIncorporationRef, &c.DirectorsIDRef, &c.DirectorID,
		&c.IsActive, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

var _ repository.CargoOwnerRepository = (*CargoOwnerRepo)(nil)

// CargoOwnerRepo implements the cargo-owner specialization over PostgreSQL.
type CargoOwnerRepo struct {
	q Querier
}

// NewCargoOwnerRepository builds the cargo-owner persistence adapter.
func NewCargoOwnerRepository(q Querier) *CargoOwnerRepo {
	return &CargoOwnerRepo{q: q}
}

// Create persists a new cargo-owner specialization.
func (r *CargoOwnerRepo) Create(ctx context.Context, co *entity.CargoOwnerCompany) error {
	query := `
		INSERT INTO cargo_owner_companies (id, company_id, commodities_handled, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, co.ID, co.CompanyID, co.CommoditiesHandled, co.IsDeleted, co.CreatedAt, co.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert cargo owner: %w", err)
	}
	return nil
}

// GetByID returns a live specialization by id, or nil.
func (r *CargoOwnerRepo) GetByID(ctx context.Context, id string) (*entity.CargoOwnerCompany, error) {
	query := `
		SELECT id, company_id, commodities_handled, is_deleted, created_at, updated_at
		FROM cargo_owner_companies WHERE id = $1 AND NOT is_deleted`
	return r.scanOne(ctx, query, id)
}

// GetByCompany returns the specialization of a base company, or nil.
func (r *CargoOwnerRepo) GetByCompany(ctx context.Context, companyID string) (*entity.CargoOwnerCompany, error) {
	query := `
		SELECT id, company_id, commodities_handled, is_deleted, created_at, updated_at
		FROM cargo_owner_companies WHERE company_id = $1 AND NOT is_deleted LIMIT 1`
	return r.scanOne(ctx, query, companyID)
}

// List returns every live cargo-owner specialization.
func (r *CargoOwnerRepo) List(ctx context.Context) ([]*entity.CargoOwnerCompany, error) {
	query := `
		SELECT id, company_id, commodities_handled, is_deleted, created_at, updated_at
		FROM cargo_owner_companies WHERE NOT is_deleted ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cargo owners: %w", err)
	}
	defer rows.Close()
	var list []*entity.CargoOwnerCompany
	for rows.Next() {
		var co entity.CargoOwnerCompany
		if err := rows.Scan(&co.ID, &co.CompanyID, &co.CommoditiesHandled, &co.IsDeleted, &co.CreatedAt, &co.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cargo owner: %w", err)
		}
		list = append(list, &co)
	}
	return list, rows.Err()
}

// SoftDelete marks a specialization deleted.
func (r *CargoOwnerRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE cargo_owner_companies SET is_deleted = TRUE, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("soft delete cargo owner: %w", err)
	}
	return nil
}

func (r *CargoOwnerRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.CargoOwnerCompany, error) {
	var co entity.CargoOwnerCompany
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&co.ID, &co.CompanyID, &co.CommoditiesHandled, &co.IsDeleted, &co.CreatedAt, &co.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cargo owner: %w", err)
	}
	return &co, nil
}

var _ repository.TransporterRepository = (*TransporterRepo)(nil)

// TransporterRepo implements the transporter specialization over PostgreSQL.
type TransporterRepo struct {
	q Querier
}

// NewTransporterRepository builds the transporter persistence adapter.
func NewTransporterRepository(q Querier) *TransporterRepo {
	return &TransporterRepo{q: q}
}

// Create persists a new transporter specialization.
func (r *TransporterRepo) Create(ctx context.Context, tc *entity.TransporterCompany) error {
	query := `
		INSERT INTO transporter_companies (id, company_id, fleet_size, carrier_license_ref, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, tc.ID, tc.CompanyID, tc.FleetSize, tc.CarrierLicenseRef, tc.IsDeleted, tc.CreatedAt, tc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert transporter: %w", err)
	}
	return nil
}

// GetByID returns a live specialization by id, or nil.
func (r *TransporterRepo) GetByID(ctx context.Context, id string) (*entity.TransporterCompany, error) {
	query := `
		SELECT id, company_id, fleet_size, carrier_license_ref, is_deleted, created_at, updated_at
		FROM transporter_companies WHERE id = $1 AND NOT is_deleted`
	return r.scanOne(ctx, query, id)
}

// GetByCompany returns the specialization of a base company, or nil.
func (r *TransporterRepo) GetByCompany(ctx context.Context, companyID string) (*entity.TransporterCompany, error) {
	query := `
		SELECT id, company_id, fleet_size, carrier_license_ref, is_deleted, created_at, updated_at
		FROM transporter_companies WHERE company_id = $1 AND NOT is_deleted LIMIT 1`
	return r.scanOne(ctx, query, companyID)
}

// List returns every live transporter specialization.
func (r *TransporterRepo) List(ctx context.Context) ([]*entity.TransporterCompany, error) {
	query := `
		SELECT id, company_id, fleet_size, carrier_license_ref, is_deleted, created_at, updated_at
		FROM transporter_companies WHERE NOT is_deleted ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transporters: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransporterCompany
	for rows.Next() {
		var tc entity.TransporterCompany
		if err := rows.Scan(&tc.ID, &tc.CompanyID, &tc.FleetSize, &tc.CarrierLicenseRef, &tc.IsDeleted, &tc.CreatedAt, &tc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan transporter: %w", err)
		}
		list = append(list, &tc)
	}
	return list, rows.Err()
}

// SoftDelete marks a specialization deleted.
func (r *TransporterRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE transporter_companies SET is_deleted = TRUE, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("soft delete transporter: %w", err)
	}
	return nil
}

func (r *TransporterRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.TransporterCompany, error) {
	var tc entity.TransporterCompany
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&tc.ID, &tc.CompanyID, &tc.FleetSize, &tc.CarrierLicenseRef, &tc.IsDeleted, &tc.CreatedAt, &tc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transporter: %w", err)
	}
	return &tc, nil
}
