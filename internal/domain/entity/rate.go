package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currencies a cargo owner may quote rates in.
const (
	CurrencyUSD = "USD"
	CurrencyKES = "KES"
)

// ValidCurrency reports whether c is a supported currency.
func ValidCurrency(c string) bool {
	return c == CurrencyUSD || c == CurrencyKES
}

// Rate is a cargo owner's price sheet. The charge keys are a closed set, so
// they are columns instead of a free-form map.
type Rate struct {
	ID                string
	PricePerKm        decimal.Decimal
	PricePerKg        decimal.Decimal
	PricePerTruck     decimal.Decimal
	PreferredCurrency string // USD | KES
	CreatedByID       string // CargoOwnerCompany id
	IsDeleted         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
