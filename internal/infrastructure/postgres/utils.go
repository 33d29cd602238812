package postgres

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/okwaroh/twende-logistics/internal/domain"
)

// isUniqueViolation checks whether err is a unique-constraint violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// keyDetailPattern matches the offending column in the error detail postgres
// emits for 23505: `Key (email)=(x@y.co) already exists.`
var keyDetailPattern = regexp.MustCompile(`Key \(([^)]+)\)=`)

// duplicateField turns a unique violation into a field-scoped domain error so
// the API can answer "A company is already registered with this business_name"
// instead of an opaque conflict. Non-unique-violation errors pass through.
func duplicateField(err error) error {
	if err == nil || !isUniqueViolation(err) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if m := keyDetailPattern.FindStringSubmatch(pgErr.Detail); m != nil {
			return &domain.DuplicateFieldError{Field: m[1]}
		}
		if field, ok := constraintFields[pgErr.ConstraintName]; ok {
			return &domain.DuplicateFieldError{Field: field}
		}
	}
	return domain.ErrConflict
}

// constraintFields is the fallback when the error detail is unavailable
// (some poolers strip it). Names match schema.sql.
var constraintFields = map[string]string{
	"users_email_key":                 "email",
	"users_phone_key":                 "phone",
	"companies_business_name_key":     "business_name",
	"companies_account_number_key":    "account_number",
	"companies_business_phone_no_key": "business_phone_no",
	"trucks_reg_no_key":               "reg_no",
	"trailers_reg_no_key":             "reg_no",
	"cargo_types_name_key":            "cargo_type",
	"orders_tracking_id_key":          "tracking_id",
	"drivers_id_number_key":           "id_number",
	"drivers_driver_license_key":      "driver_license",
	"roles_title_key":                 "title",
}
