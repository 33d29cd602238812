package entity

import "time"

// TripStatus values. Like orders, any member may be written directly.
type TripStatus string

const (
	TripPending   TripStatus = "Pending"
	TripStarted   TripStatus = "Started"
	TripOngoing   TripStatus = "Ongoing"
	TripDelivered TripStatus = "Delivered"
)

// Valid reports whether s is a known trip status.
func (s TripStatus) Valid() bool {
	switch s {
	case TripPending, TripStarted, TripOngoing, TripDelivered:
		return true
	}
	return false
}

// Trip is a transporter's execution of (part of) an order.
// Origin and destination must be different depots; start must precede end.
type Trip struct {
	ID                         string
	OrderID                    string
	TruckIDs                   []string
	OriginID                   string // depot
	DestinationID              string // depot
	StartDate                  time.Time
	EndDate                    *time.Time
	Status                     TripStatus
	OffloadingPointContact     string
	OffloadingPointContactName string
	LoadingPointContact        string
	LoadingPointContactName    string
	Description                string
	TripNumber                 int
	TransporterID              string // TransporterCompany id
	IsDeleted                  bool
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}
