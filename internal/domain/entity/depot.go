package entity

import "time"

// Coordinates of a depot. JSON keeps the original key spelling ("lattitude")
// because mobile clients already depend on it.
type Coordinates struct {
	Lattitude string `json:"lattitude"`
	Longitude string `json:"longitude"`
}

// Depot is a loading/offloading point. Public depots are visible to every
// company; private ones only to their creator's company.
type Depot struct {
	ID          string
	UserID      string // creating user
	City        string
	Address     string
	Street      string
	State       string
	Coordinates Coordinates
	IsPublic    bool
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
