package entity

import "time"

// Truck types accepted on registration.
var TruckTypes = []string{"flatbed", "double diff", "skeleton"}

// Trailer types accepted on registration. Spelling follows the registration
// documents in circulation.
var TrailerTypes = []string{"flatbed", "enclosed", "refregirated", "lowboy"}

// Truck belongs to a transporter company. The registration number is unique
// across the whole platform, not per company.
type Truck struct {
	ID        string
	Name      string
	OwnedByID string // TransporterCompany id
	RegNo     string // unique
	Haulage   string
	Type      string // see TruckTypes
	Tracking  bool
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Trailer belongs to a transporter company.
type Trailer struct {
	ID        string
	Name      string
	OwnedByID string // TransporterCompany id
	RegNo     string // unique
	Haulage   string
	Type      string // see TrailerTypes
	Tracking  bool
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidAssetType reports whether t is in the allowed set.
func ValidAssetType(t string, allowed []string) bool {
	for _, a := range allowed {
		if a == t {
			return true
		}
	}
	return false
}
