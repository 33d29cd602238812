package entity

import "time"

// Driver ties a user with the driver role to a transporter company, with the
// licensing attributes the platform verifies.
type Driver struct {
	ID            string
	UserID        string // one-to-one with User
	CompanyID     string // TransporterCompany id
	IDNumber      string // unique
	DriverLicense string // unique
	IsDeleted     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
