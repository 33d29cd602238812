package dto

import "time"

// DirectorFields the director account created during company onboarding.
type DirectorFields struct {
	FullName          string `json:"full_name" form:"full_name" validate:"required,max=150"`
	Email             string `json:"email" form:"email" validate:"required,email"`
	Phone             string `json:"phone" form:"phone" validate:"required"`
	Password          string `json:"password" form:"password" validate:"required,min=8,max=124"`
	ConfirmedPassword string `json:"confirmed_password" form:"confirmed_password" validate:"required"`
}

// CompanyFields the shared business-identity block of a registration.
// Document fields carry opaque storage references; upload handling is an
// external collaborator.
type CompanyFields struct {
	BusinessName      string `json:"business_name" form:"business_name" validate:"required,max=100"`
	BusinessType      string `json:"business_type" form:"business_type" validate:"required,oneof=single Corporate others"`
	AccountNumber     string `json:"account_number" form:"account_number" validate:"required"`
	PreferredCurrency string `json:"preferred_currency" form:"preferred_currency"`
	BusinessPhoneNo   string `json:"business_phone_no" form:"business_phone_no" validate:"required"`
	BusinessEmail     string `json:"business_email" form:"business_email"`
	PostalCode        string `json:"postal_code" form:"postal_code"`
	OperationalRegion string `json:"operational_region" form:"operational_region"`
	LogoRef           string `json:"logo" form:"logo"`
	CertificateRef    string `json:"certificate_of_incorporation" form:"certificate_of_incorporation"`
	DirectorsIDRef    string `json:"directors_id" form:"directors_id"`
}

// RegisterCompanyRequest the full onboarding payload: director + company +
// category-specific specialization fields.
type RegisterCompanyRequest struct {
	Director DirectorFields `json:"company_director" form:"company_director"`
	Company  CompanyFields  `json:"company" form:"company"`
	// Transporter specialization.
	FleetSize         int    `json:"fleet_size" form:"fleet_size"`
	CarrierLicenseRef string `json:"carrier_license" form:"carrier_license"`
	// Cargo-owner specialization.
	CommoditiesHandled string `json:"commodities_handled" form:"commodities_handled"`
}

// UpdateCompanyRequest partial company self-update. Identity fields
// (business name, account number, phone) are immutable after registration.
type UpdateCompanyRequest struct {
	BusinessType      *string `json:"business_type" validate:"omitempty,oneof=single Corporate others"`
	PreferredCurrency *string `json:"preferred_currency"`
	BusinessEmail     *string `json:"business_email"`
	PostalCode        *string `json:"postal_code"`
	OperationalRegion *string `json:"operational_region"`
	LogoRef           *string `json:"logo"`
}

// CompanyResponse a company with its director.
type CompanyResponse struct {
	ID                string       `json:"id"`
	BusinessName      string       `json:"business_name"`
	BusinessType      string       `json:"business_type"`
	AccountNumber     string       `json:"account_number"`
	PreferredCurrency string       `json:"preferred_currency"`
	BusinessPhoneNo   string       `json:"business_phone_no"`
	BusinessEmail     string       `json:"business_email,omitempty"`
	PostalCode        string       `json:"postal_code,omitempty"`
	OperationalRegion string       `json:"operational_region,omitempty"`
	IsActive          bool         `json:"is_active"`
	Director          UserResponse `json:"company_director"`
	CreatedAt         time.Time    `json:"created_at"`
}

// SpecializedCompanyResponse the onboarding result: specialization id plus the
// embedded company (and director, reachable through it).
type SpecializedCompanyResponse struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Company  CompanyResponse `json:"company"`
	// Transporter-only.
	FleetSize int `json:"fleet_size,omitempty"`
	// Cargo-owner-only.
	CommoditiesHandled string `json:"commodities_handled,omitempty"`
}
