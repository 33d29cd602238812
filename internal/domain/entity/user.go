package entity

import "time"

// Role is a user's role title. The vocabulary is closed; rows in the roles
// table are created lazily the first time a title is referenced.
type Role string

const (
	RoleTransporterDirector Role = "transporter-director"
	RoleCargoOwnerDirector  Role = "cargo-owner-director"
	RoleDriver              Role = "driver"
	RoleAdmin               Role = "admin"
	RoleStaff               Role = "staff"
	RoleSuperuser           Role = "superuser"
)

// Valid reports whether the title belongs to the closed vocabulary.
func (r Role) Valid() bool {
	switch r {
	case RoleTransporterDirector, RoleCargoOwnerDirector, RoleDriver, RoleAdmin, RoleStaff, RoleSuperuser:
		return true
	}
	return false
}

// IsDirector reports whether the role owns a company.
func (r Role) IsDirector() bool {
	return r == RoleTransporterDirector || r == RoleCargoOwnerDirector
}

// IsEmployee reports whether the role works for a company through the
// employer reference rather than owning one.
func (r Role) IsEmployee() bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleDriver
}

// RoleRecord mirrors the roles table (title is unique, immutable once referenced).
type RoleRecord struct {
	ID        string
	Title     Role
	CreatedAt time.Time
}

// User is the identity record used throughout the application. Employees are
// plain users whose EmployerID points at a company; directors are reached the
// other way round, through Company.DirectorID.
type User struct {
	ID           string
	FullName     string
	Email        string // unique, login key
	Phone        string // unique, international format
	PasswordHash string
	Role         Role
	EmployerID   string // company the user works for; empty for a fresh director or driver
	IsVerified   bool
	IsActive     bool
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
