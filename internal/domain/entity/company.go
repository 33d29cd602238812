package entity

import "time"

// CompanyCategory selects the specialization created during onboarding.
type CompanyCategory string

const (
	CategoryCargoOwner  CompanyCategory = "cargo_owner"
	CategoryTransporter CompanyCategory = "transporter"
)

// Valid reports whether the category is one of the two known kinds.
func (c CompanyCategory) Valid() bool {
	return c == CategoryCargoOwner || c == CategoryTransporter
}

// DirectorRole returns the role the category's company director carries.
func (c CompanyCategory) DirectorRole() Role {
	if c == CategoryTransporter {
		return RoleTransporterDirector
	}
	return RoleCargoOwnerDirector
}

// Business types accepted for a company.
const (
	BusinessTypeSingle    = "single"
	BusinessTypeCorporate = "Corporate"
	BusinessTypeOthers    = "others"
)

// ValidBusinessType reports whether t is an accepted business type.
func ValidBusinessType(t string) bool {
	return t == BusinessTypeSingle || t == BusinessTypeCorporate || t == BusinessTypeOthers
}

// Company is the shared company-identity base. Exactly one director per
// company; a company must be specialized (cargo owner or transporter) to
// participate in orders or trips.
type Company struct {
	ID                string
	BusinessName      string // unique
	BusinessType      string // single | Corporate | others
	AccountNumber     string // unique
	PreferredCurrency string
	BusinessPhoneNo   string // unique
	BusinessEmail     string
	PostalCode        string
	OperationalRegion string
	// Document references are opaque storage keys; upload handling is an
	// external collaborator.
	LogoRef                       string
	CertificateOfIncorporationRef string
	DirectorsIDRef                string
	DirectorID                    string // one-to-one owning user
	IsActive                      bool
	IsDeleted                     bool
	CreatedAt                     time.Time
	UpdatedAt                     time.Time
}

// CargoOwnerCompany specializes a Company that places orders on the platform.
type CargoOwnerCompany struct {
	ID                 string
	CompanyID          string // one-to-one with Company
	CommoditiesHandled string
	IsDeleted          bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TransporterCompany specializes a Company that runs trucks and trips.
type TransporterCompany struct {
	ID              string
	CompanyID       string // one-to-one with Company
	FleetSize       int
	CarrierLicenseRef string
	IsDeleted       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
