package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus values. Any member may be written directly; there is no
// transition sequencing.
type OrderStatus string

const (
	OrderPending  OrderStatus = "Pending"
	OrderAssigned OrderStatus = "Assigned"
	OrderAccepted OrderStatus = "Accepted"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	return s == OrderPending || s == OrderAssigned || s == OrderAccepted
}

// Order shapes: origins/destinations may be single or multiple depots.
const (
	OrderTypeSOSD = "SO-SD"
	OrderTypeSOMD = "SO-MD"
	OrderTypeMOMD = "MO-MD"
	OrderTypeMOSD = "MO-SD"
)

// MaxRecipients caps the notification recipient list on an order.
const MaxRecipients = 5

// Order is a cargo owner's request to move goods.
type Order struct {
	ID                         string
	TrackingID                 string // unique, client-facing identifier
	Title                      string
	Description                string
	CommodityID                string
	CargoTonnage               decimal.Decimal
	OriginIDs                  []string // depot ids
	DestinationIDs             []string // depot ids
	LoadingPointContact        string
	LoadingPointContactName    string
	OffloadingPointContact     string
	OffloadingPointContactName string
	Status                     OrderStatus
	DesiredRateID              string
	RecurringOrder             bool
	OrderType                  string
	DesiredTruckType           string
	OwnerID                    string // CargoOwnerCompany id
	Recipients                 []string
	Assigned                   bool
	IsDeleted                  bool
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}
