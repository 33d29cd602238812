package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okwaroh/twende-logistics/internal/domain/authz"
	"github.com/okwaroh/twende-logistics/internal/domain/entity"
)

func TestCanRead(t *testing.T) {
	cases := []struct {
		name     string
		role     entity.Role
		resource authz.Resource
		want     bool
	}{
		{"superuser reads everything", entity.RoleSuperuser, authz.ResourceRate, true},
		{"driver reads nothing", entity.RoleDriver, authz.ResourceTrip, false},
		{"transporter director reads own side", entity.RoleTransporterDirector, authz.ResourceAsset, true},
		{"transporter director reads shared resources", entity.RoleTransporterDirector, authz.ResourceDepot, true},
		{"transporter director blocked from cargo side", entity.RoleTransporterDirector, authz.ResourceRate, false},
		{"cargo owner director reads own side", entity.RoleCargoOwnerDirector, authz.ResourceOrder, true},
		{"cargo owner director reads shared resources", entity.RoleCargoOwnerDirector, authz.ResourceCargoType, true},
		{"cargo owner director blocked from transporter side", entity.RoleCargoOwnerDirector, authz.ResourceTrip, false},
		{"admin reads anything in class", entity.RoleAdmin, authz.ResourceTrip, true},
		{"staff reads anything in class", entity.RoleStaff, authz.ResourceOrder, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, authz.CanRead(tc.role, tc.resource))
		})
	}
}

func TestCanWrite(t *testing.T) {
	cases := []struct {
		name     string
		role     entity.Role
		resource authz.Resource
		want     bool
	}{
		{"superuser writes everything", entity.RoleSuperuser, authz.ResourceCargoType, true},
		{"driver writes nothing", entity.RoleDriver, authz.ResourceTrip, false},
		{"transporter director writes own side", entity.RoleTransporterDirector, authz.ResourceDriver, true},
		{"transporter director writes depots", entity.RoleTransporterDirector, authz.ResourceDepot, true},
		{"transporter director blocked from cargo side", entity.RoleTransporterDirector, authz.ResourceCommodity, false},
		{"cargo owner director writes own side", entity.RoleCargoOwnerDirector, authz.ResourceRate, true},
		{"cargo owner director blocked from transporter side", entity.RoleCargoOwnerDirector, authz.ResourceAsset, false},
		{"cargo types stay admin-curated", entity.RoleTransporterDirector, authz.ResourceCargoType, false},
		{"cargo types blocked for cargo owner directors too", entity.RoleCargoOwnerDirector, authz.ResourceCargoType, false},
		{"admin writes most resources", entity.RoleAdmin, authz.ResourceOrder, true},
		{"admin blocked from cargo types", entity.RoleAdmin, authz.ResourceCargoType, false},
		{"staff writes ordinary resources", entity.RoleStaff, authz.ResourceAsset, true},
		{"staff blocked from employees", entity.RoleStaff, authz.ResourceEmployee, false},
		{"staff read-only on rates", entity.RoleStaff, authz.ResourceRate, false},
		{"staff read-only on orders", entity.RoleStaff, authz.ResourceOrder, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, authz.CanWrite(tc.role, tc.resource))
		})
	}
}

func TestOwnsCompany(t *testing.T) {
	company := "33333333-3333-3333-3333-333333333333"

	super := authz.Actor{UserID: "u1", Role: entity.RoleSuperuser}
	assert.True(t, authz.OwnsCompany(super, company), "superusers bypass ownership")

	director := authz.Actor{UserID: "u2", Role: entity.RoleTransporterDirector, CompanyID: company}
	assert.True(t, authz.OwnsCompany(director, company))
	assert.False(t, authz.OwnsCompany(director, "another-company"))

	unattached := authz.Actor{UserID: "u3", Role: entity.RoleAdmin}
	assert.False(t, authz.OwnsCompany(unattached, company), "empty company never matches")
	assert.False(t, authz.OwnsCompany(unattached, ""), "two empties do not make an owner")
}
