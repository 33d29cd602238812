// Package authz decides whether an acting user may perform an operation on a
// resource class (request level) or a concrete resource (object level).
//
// The two-path company resolution (director-of vs employee-of) happens once,
// in the actor resolver, and every check consumes the same Actor.
package authz

import "github.com/okwaroh/twende-logistics/internal/domain/entity"

// Actor is the authenticated user as seen by permission checks. CompanyID is
// the owning company resolved through the ownership chain: the company the
// user directs, or the employer for admin/staff/driver. Empty for superusers
// and unattached users.
type Actor struct {
	UserID    string
	Role      entity.Role
	CompanyID string
}

// IsSuperuser reports whether the actor bypasses all ownership checks.
func (a Actor) IsSuperuser() bool {
	return a.Role == entity.RoleSuperuser
}

// Resource classes permission checks branch on.
type Resource int

const (
	ResourceCompany Resource = iota
	ResourceEmployee
	ResourceDriver
	ResourceAsset
	ResourceTrip
	ResourceDepot
	ResourceCargoType
	ResourceCommodity
	ResourceRate
	ResourceOrder
)

// category of company a resource class hangs off. Resources without a side
// (depots, cargo types) answer with both=false flags.
func resourceSide(r Resource) (transporter, cargoOwner bool) {
	switch r {
	case ResourceDriver, ResourceAsset, ResourceTrip:
		return true, false
	case ResourceCommodity, ResourceRate, ResourceOrder:
		return false, true
	}
	return false, false
}

// staffReadOnly marks resource classes where staff may read but not write.
func staffReadOnly(r Resource) bool {
	return r == ResourceRate || r == ResourceOrder
}

// CanRead is the request-level check for safe methods. Reads are broadly
// allowed for any authenticated, non-driver actor; drivers have their own
// surface elsewhere.
func CanRead(role entity.Role, r Resource) bool {
	if role == entity.RoleSuperuser {
		return true
	}
	if role == entity.RoleDriver {
		return false
	}
	transporterSide, cargoOwnerSide := resourceSide(r)
	switch role {
	case entity.RoleTransporterDirector:
		return transporterSide || (!transporterSide && !cargoOwnerSide)
	case entity.RoleCargoOwnerDirector:
		return cargoOwnerSide || (!transporterSide && !cargoOwnerSide)
	case entity.RoleAdmin, entity.RoleStaff:
		// Employees read whatever their company's side owns; the side itself
		// is settled by the object-level company check.
		return true
	}
	return false
}

// CanWrite is the request-level check for unsafe methods (create/update/
// delete). Writes are restricted to the director of the relevant category,
// admins, staff (where not read-only), and superusers.
func CanWrite(role entity.Role, r Resource) bool {
	switch role {
	case entity.RoleSuperuser:
		return true
	case entity.RoleDriver:
		return false
	case entity.RoleTransporterDirector:
		transporterSide, cargoOwnerSide := resourceSide(r)
		return transporterSide || (!transporterSide && !cargoOwnerSide && r != ResourceCargoType)
	case entity.RoleCargoOwnerDirector:
		transporterSide, cargoOwnerSide := resourceSide(r)
		return cargoOwnerSide || (!transporterSide && !cargoOwnerSide && r != ResourceCargoType)
	case entity.RoleAdmin:
		return r != ResourceCargoType
	case entity.RoleStaff:
		return r != ResourceCargoType && r != ResourceEmployee && !staffReadOnly(r)
	}
	return false
}

// OwnsCompany is the object-level check: does the actor control companyID?
// Superusers always pass; everyone else passes iff the resolved owning
// company matches.
func OwnsCompany(a Actor, companyID string) bool {
	if a.IsSuperuser() {
		return true
	}
	return a.CompanyID != "" && a.CompanyID == companyID
}
