package entity

import "time"

// Cargo type names accepted by the platform.
var CargoTypeNames = []string{"Container", "Bagged and Bulk", "FMCG"}

// CargoType is a platform-wide classification, managed by superusers only.
type CargoType struct {
	ID          string
	Name        string // unique, see CargoTypeNames
	Description string
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Commodity is a concrete good a cargo owner ships, under a cargo type.
type Commodity struct {
	ID          string
	Name        string
	CargoTypeID string
	Description string
	CreatedByID string // CargoOwnerCompany id
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
