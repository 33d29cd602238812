package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/domain"
	"github.com/okwaroh/twende-logistics/internal/domain/authz"
	"github.com/okwaroh/twende-logistics/internal/domain/entity"
)

// ── in-memory fakes ───────────────────────────────────────────────────────────

type fakeTransporters struct{ byCompany map[string]*entity.TransporterCompany }

func (f *fakeTransporters) Create(_ context.Context, tc *entity.TransporterCompany) error {
	f.byCompany[tc.CompanyID] = tc
	return nil
}

func (f *fakeTransporters) GetByID(_ context.Context, id string) (*entity.TransporterCompany, error) {
	for _, tc := range f.byCompany {
		if tc.ID == id && !tc.IsDeleted {
			return tc, nil
		}
	}
	return nil, nil
}

func (f *fakeTransporters) GetByCompany(_ context.Context, companyID string) (*entity.TransporterCompany, error) {
	tc, ok := f.byCompany[companyID]
	if !ok || tc.IsDeleted {
		return nil, nil
	}
	return tc, nil
}

func (f *fakeTransporters) List(_ context.Context) ([]*entity.TransporterCompany, error) {
	var out []*entity.TransporterCompany
	for _, tc := range f.byCompany {
		if !tc.IsDeleted {
			out = append(out, tc)
		}
	}
	return out, nil
}

func (f *fakeTransporters) SoftDelete(_ context.Context, id string) error {
	for _, tc := range f.byCompany {
		if tc.ID == id {
			tc.IsDeleted = true
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeCargoOwners struct{ byCompany map[string]*entity.CargoOwnerCompany }

func (f *fakeCargoOwners) Create(_ context.Context, co *entity.CargoOwnerCompany) error {
	f.byCompany[co.CompanyID] = co
	return nil
}

func (f *fakeCargoOwners) GetByID(_ context.Context, id string) (*entity.CargoOwnerCompany, error) {
	for _, co := range f.byCompany {
		if co.ID == id && !co.IsDeleted {
			return co, nil
		}
	}
	return nil, nil
}

func (f *fakeCargoOwners) GetByCompany(_ context.Context, companyID string) (*entity.CargoOwnerCompany, error) {
	co, ok := f.byCompany[companyID]
	if !ok || co.IsDeleted {
		return nil, nil
	}
	return co, nil
}

func (f *fakeCargoOwners) List(_ context.Context) ([]*entity.CargoOwnerCompany, error) {
	var out []*entity.CargoOwnerCompany
	for _, co := range f.byCompany {
		if !co.IsDeleted {
			out = append(out, co)
		}
	}
	return out, nil
}

func (f *fakeCargoOwners) SoftDelete(_ context.Context, id string) error {
	for _, co := range f.byCompany {
		if co.ID == id {
			co.IsDeleted = true
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeTrucks struct{ byID map[string]*entity.Truck }

func (f *fakeTrucks) Create(_ context.Context, truck *entity.Truck) error {
	for _, t := range f.byID {
		if t.RegNo == truck.RegNo {
			return &domain.DuplicateFieldError{Field: "reg_no"}
		}
	}
	cp := *truck
	f.byID[truck.ID] = &cp
	return nil
}

func (f *fakeTrucks) GetByID(_ context.Context, id string) (*entity.Truck, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTrucks) ListByOwner(_ context.Context, transporterID string) ([]*entity.Truck, error) {
	var out []*entity.Truck
	for _, t := range f.byID {
		if t.OwnedByID == transporterID && !t.IsDeleted {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeTrucks) ListAll(_ context.Context) ([]*entity.Truck, error) {
	var out []*entity.Truck
	for _, t := range f.byID {
		if !t.IsDeleted {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeTrucks) Update(_ context.Context, truck *entity.Truck) error {
	cp := *truck
	f.byID[truck.ID] = &cp
	return nil
}

func (f *fakeTrucks) SoftDelete(_ context.Context, id string) error {
	t, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.IsDeleted = true
	return nil
}

type fakeDepots struct{ byID map[string]*entity.Depot }

func (f *fakeDepots) Create(_ context.Context, depot *entity.Depot) error {
	cp := *depot
	f.byID[depot.ID] = &cp
	return nil
}

func (f *fakeDepots) GetByID(_ context.Context, id string) (*entity.Depot, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDepots) ListForUser(_ context.Context, userID string) ([]*entity.Depot, error) {
	var out []*entity.Depot
	for _, d := range f.byID {
		if d.IsDeleted {
			continue
		}
		if d.UserID == userID || d.IsPublic {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeDepots) ListAll(_ context.Context) ([]*entity.Depot, error) {
	var out []*entity.Depot
	for _, d := range f.byID {
		if !d.IsDeleted {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeDepots) Update(_ context.Context, depot *entity.Depot) error {
	cp := *depot
	f.byID[depot.ID] = &cp
	return nil
}

func (f *fakeDepots) SoftDelete(_ context.Context, id string) error {
	d, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.IsDeleted = true
	return nil
}

type fakeCargoTypes struct{ byID map[string]*entity.CargoType }

func (f *fakeCargoTypes) Create(_ context.Context, ct *entity.CargoType) error {
	for _, existing := range f.byID {
		if existing.Name == ct.Name {
			return &domain.DuplicateFieldError{Field: "cargo_type"}
		}
	}
	cp := *ct
	f.byID[ct.ID] = &cp
	return nil
}

func (f *fakeCargoTypes) GetByID(_ context.Context, id string) (*entity.CargoType, error) {
	ct, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *ct
	return &cp, nil
}

func (f *fakeCargoTypes) List(_ context.Context) ([]*entity.CargoType, error) {
	var out []*entity.CargoType
	for _, ct := range f.byID {
		if !ct.IsDeleted {
			cp := *ct
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCargoTypes) Update(_ context.Context, ct *entity.CargoType) error {
	cp := *ct
	f.byID[ct.ID] = &cp
	return nil
}

func (f *fakeCargoTypes) SoftDelete(_ context.Context, id string) error {
	ct, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	ct.IsDeleted = true
	return nil
}

type fakeCommodities struct{ byID map[string]*entity.Commodity }

func (f *fakeCommodities) Create(_ context.Context, c *entity.Commodity) error {
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCommodities) GetByID(_ context.Context, id string) (*entity.Commodity, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCommodities) ListByCreator(_ context.Context, cargoOwnerID string) ([]*entity.Commodity, error) {
	var out []*entity.Commodity
	for _, c := range f.byID {
		if c.CreatedByID == cargoOwnerID && !c.IsDeleted {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCommodities) ListAll(_ context.Context) ([]*entity.Commodity, error) {
	var out []*entity.Commodity
	for _, c := range f.byID {
		if !c.IsDeleted {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCommodities) Update(_ context.Context, c *entity.Commodity) error {
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCommodities) SoftDelete(_ context.Context, id string) error {
	c, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.IsDeleted = true
	return nil
}

type fakeRates struct{ byID map[string]*entity.Rate }

func (f *fakeRates) Create(_ context.Context, rate *entity.Rate) error {
	cp := *rate
	f.byID[rate.ID] = &cp
	return nil
}

func (f *fakeRates) GetByID(_ context.Context, id string) (*entity.Rate, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRates) ListByCreator(_ context.Context, cargoOwnerID string) ([]*entity.Rate, error) {
	var out []*entity.Rate
	for _, r := range f.byID {
		if r.CreatedByID == cargoOwnerID && !r.IsDeleted {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRates) ListAll(_ context.Context) ([]*entity.Rate, error) {
	var out []*entity.Rate
	for _, r := range f.byID {
		if !r.IsDeleted {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRates) Update(_ context.Context, rate *entity.Rate) error {
	cp := *rate
	f.byID[rate.ID] = &cp
	return nil
}

func (f *fakeRates) SoftDelete(_ context.Context, id string) error {
	r, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.IsDeleted = true
	return nil
}

type fakeOrders struct{ byID map[string]*entity.Order }

func (f *fakeOrders) Create(_ context.Context, order *entity.Order) error {
	cp := *order
	f.byID[order.ID] = &cp
	return nil
}

func (f *fakeOrders) GetByTrackingID(_ context.Context, trackingID string) (*entity.Order, error) {
	for _, o := range f.byID {
		if o.TrackingID == trackingID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeOrders) ListByOwner(_ context.Context, cargoOwnerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.byID {
		if o.OwnerID == cargoOwnerID && !o.IsDeleted {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrders) ListAll(_ context.Context) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.byID {
		if !o.IsDeleted {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrders) Update(_ context.Context, order *entity.Order) error {
	cp := *order
	f.byID[order.ID] = &cp
	return nil
}

func (f *fakeOrders) SoftDelete(_ context.Context, id string) error {
	o, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.IsDeleted = true
	return nil
}

// ── actors ────────────────────────────────────────────────────────────────────

var (
	transporterDirector = authz.Actor{UserID: "u-td", Role: entity.RoleTransporterDirector, CompanyID: "co-t"}
	cargoDirector       = authz.Actor{UserID: "u-cd", Role: entity.RoleCargoOwnerDirector, CompanyID: "co-c"}
	otherCargoDirector  = authz.Actor{UserID: "u-cd2", Role: entity.RoleCargoOwnerDirector, CompanyID: "co-c2"}
	platformAdmin       = authz.Actor{UserID: "u-su", Role: entity.RoleSuperuser}
	staffActor          = authz.Actor{UserID: "u-st", Role: entity.RoleStaff, CompanyID: "co-c"}
	driverActor         = authz.Actor{UserID: "u-dr", Role: entity.RoleDriver, CompanyID: "co-t"}
)

func seededTransporters() *fakeTransporters {
	return &fakeTransporters{byCompany: map[string]*entity.TransporterCompany{
		"co-t": {ID: "tc-1", CompanyID: "co-t", FleetSize: 10},
	}}
}

func seededCargoOwners() *fakeCargoOwners {
	return &fakeCargoOwners{byCompany: map[string]*entity.CargoOwnerCompany{
		"co-c":  {ID: "cg-1", CompanyID: "co-c"},
		"co-c2": {ID: "cg-2", CompanyID: "co-c2"},
	}}
}

// ── assets ────────────────────────────────────────────────────────────────────

func newAssetUC() (*AssetUseCase, *fakeTrucks) {
	trucks := &fakeTrucks{byID: map[string]*entity.Truck{}}
	trailers := &fakeTrailers{byID: map[string]*entity.Trailer{}}
	return NewAssetUseCase(trucks, trailers, seededTransporters()), trucks
}

type fakeTrailers struct{ byID map[string]*entity.Trailer }

func (f *fakeTrailers) Create(_ context.Context, trailer *entity.Trailer) error {
	for _, t := range f.byID {
		if t.RegNo == trailer.RegNo {
			return &domain.DuplicateFieldError{Field: "reg_no"}
		}
	}
	cp := *trailer
	f.byID[trailer.ID] = &cp
	return nil
}

func (f *fakeTrailers) GetByID(_ context.Context, id string) (*entity.Trailer, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTrailers) ListByOwner(_ context.Context, transporterID string) ([]*entity.Trailer, error) {
	var out []*entity.Trailer
	for _, t := range f.byID {
		if t.OwnedByID == transporterID && !t.IsDeleted {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeTrailers) ListAll(_ context.Context) ([]*entity.Trailer, error) {
	var out []*entity.Trailer
	for _, t := range f.byID {
		if !t.IsDeleted {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeTrailers) Update(_ context.Context, trailer *entity.Trailer) error {
	cp := *trailer
	f.byID[trailer.ID] = &cp
	return nil
}

func (f *fakeTrailers) SoftDelete(_ context.Context, id string) error {
	t, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.IsDeleted = true
	return nil
}

func TestCreateTruck_OwnershipInjectedFromActor(t *testing.T) {
	uc, trucks := newAssetUC()

	resp, err := uc.CreateTruck(context.Background(), transporterDirector, dto.CreateAssetRequest{
		Name: "Scania R450", RegNo: "KDA 123X", Haulage: "heavy", Type: "flatbed",
	})
	require.NoError(t, err)
	assert.Equal(t, "tc-1", resp.OwnedBy)
	assert.Equal(t, "tc-1", trucks.byID[resp.ID].OwnedByID)
}

func TestCreateTruck_CargoOwnerHasNoFleet(t *testing.T) {
	uc, _ := newAssetUC()

	_, err := uc.CreateTruck(context.Background(), cargoDirector, dto.CreateAssetRequest{
		Name: "Scania R450", RegNo: "KDA 123X", Haulage: "heavy", Type: "flatbed",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateTruck_UnknownTypeRejected(t *testing.T) {
	uc, _ := newAssetUC()

	_, err := uc.CreateTruck(context.Background(), transporterDirector, dto.CreateAssetRequest{
		Name: "Scania R450", RegNo: "KDA 123X", Haulage: "heavy", Type: "tipper",
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "type")
}

func TestTruckScoping_ForeignTruckLooksLikeNotFound(t *testing.T) {
	uc, trucks := newAssetUC()
	trucks.byID["tr-x"] = &entity.Truck{ID: "tr-x", OwnedByID: "tc-other", RegNo: "KDB 001A", Type: "flatbed"}

	_, err := uc.GetTruck(context.Background(), transporterDirector, "tr-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// A superuser sees it.
	resp, err := uc.GetTruck(context.Background(), platformAdmin, "tr-x")
	require.NoError(t, err)
	assert.Equal(t, "tr-x", resp.ID)
}

func TestRemoveTruck_SoftDeleteHidesFromLists(t *testing.T) {
	uc, _ := newAssetUC()
	ctx := context.Background()

	resp, err := uc.CreateTruck(ctx, transporterDirector, dto.CreateAssetRequest{
		Name: "Scania R450", RegNo: "KDA 123X", Haulage: "heavy", Type: "flatbed",
	})
	require.NoError(t, err)

	require.NoError(t, uc.RemoveTruck(ctx, transporterDirector, resp.ID))

	list, err := uc.ListTrucks(ctx, transporterDirector)
	require.NoError(t, err)
	assert.Empty(t, list)

	// The deleted row keeps its registration number, so re-registering the
	// same plate fails.
	_, err = uc.CreateTruck(ctx, transporterDirector, dto.CreateAssetRequest{
		Name: "Scania R500", RegNo: "KDA 123X", Haulage: "heavy", Type: "skeleton",
	})
	var dup *domain.DuplicateFieldError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "reg_no", dup.Field)
}

func TestRemoveTruck_DeletedRowStaysReadableByOwnerAndSuperuser(t *testing.T) {
	uc, _ := newAssetUC()
	ctx := context.Background()

	resp, err := uc.CreateTruck(ctx, transporterDirector, dto.CreateAssetRequest{
		Name: "Scania R450", RegNo: "KDA 123X", Haulage: "heavy", Type: "flatbed",
	})
	require.NoError(t, err)
	require.NoError(t, uc.RemoveTruck(ctx, transporterDirector, resp.ID))

	// Retrieval by id still answers for the owner and for a superuser.
	got, err := uc.GetTruck(ctx, transporterDirector, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)

	got, err = uc.GetTruck(ctx, platformAdmin, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "KDA 123X", got.RegNo)

	// Mutations on the deleted row answer not-found.
	_, err = uc.UpdateTruck(ctx, transporterDirector, resp.ID, dto.UpdateAssetRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.RemoveTruck(ctx, transporterDirector, resp.ID), domain.ErrNotFound)
}

func TestImportTrucksCSV_PerRowFailuresDoNotAbort(t *testing.T) {
	uc, trucks := newAssetUC()
	trucks.byID["tr-1"] = &entity.Truck{ID: "tr-1", OwnedByID: "tc-1", RegNo: "KDA 100A", Type: "flatbed"}

	file := strings.Join([]string{
		"name,reg_no,haulage,type",
		"Actros 1,KDA 200B,heavy,flatbed",
		"Actros 2,KDA 100A,heavy,flatbed", // duplicate reg_no
		"Actros 3,KDA 300C,heavy,tipper",  // bad type
		"Actros 4,KDA 400D,heavy,skeleton",
	}, "\n")

	resp, err := uc.ImportTrucksCSV(context.Background(), transporterDirector, strings.NewReader(file))
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, 2, resp.Failed)
	assert.Contains(t, resp.Errors, "row_3")
	assert.Contains(t, resp.Errors, "row_4")
}

func TestImportTrucksCSV_HeaderOrderDoesNotMatter(t *testing.T) {
	uc, _ := newAssetUC()

	file := "type,name,haulage,reg_no\nflatbed,Actros,heavy,KDA 500E\n"
	resp, err := uc.ImportTrucksCSV(context.Background(), transporterDirector, strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Created)
	assert.Zero(t, resp.Failed)
}

// ── depots ────────────────────────────────────────────────────────────────────

func TestDepotVisibility(t *testing.T) {
	depots := &fakeDepots{byID: map[string]*entity.Depot{
		"d-pub":  {ID: "d-pub", UserID: "u-td", City: "Nairobi", IsPublic: true},
		"d-priv": {ID: "d-priv", UserID: "u-td", City: "Mombasa"},
	}}
	uc := NewDepotUseCase(depots)
	ctx := context.Background()

	// The creator sees both.
	list, err := uc.ListDepots(ctx, transporterDirector)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Another company sees only the public one, and the private one's id
	// answers not-found.
	list, err = uc.ListDepots(ctx, cargoDirector)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "d-pub", list[0].ID)

	_, err = uc.GetDepot(ctx, cargoDirector, "d-priv")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Public is readable but not writable by non-owners.
	_, err = uc.GetDepot(ctx, cargoDirector, "d-pub")
	assert.NoError(t, err)
	err = uc.RemoveDepot(ctx, cargoDirector, "d-pub")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateDepot_DefaultsToPrivate(t *testing.T) {
	depots := &fakeDepots{byID: map[string]*entity.Depot{}}
	uc := NewDepotUseCase(depots)

	resp, err := uc.CreateDepot(context.Background(), cargoDirector, dto.CreateDepotRequest{
		City:        "Nakuru",
		Address:     "Industrial Area, Plot 14",
		Coordinates: entity.Coordinates{Lattitude: "-0.3031", Longitude: "36.0800"},
	})
	require.NoError(t, err)
	assert.False(t, resp.IsPublic)
	assert.Equal(t, "u-cd", resp.UserID)
}

// ── cargo types ───────────────────────────────────────────────────────────────

func TestCargoType_WritesAreSuperuserOnly(t *testing.T) {
	uc := NewCargoUseCase(&fakeCargoTypes{byID: map[string]*entity.CargoType{}},
		&fakeCommodities{byID: map[string]*entity.Commodity{}}, seededCargoOwners())
	ctx := context.Background()
	req := dto.CreateCargoTypeRequest{Name: "Container", Description: "Sealed container loads"}

	for _, act := range []authz.Actor{transporterDirector, cargoDirector, staffActor, driverActor} {
		_, err := uc.CreateCargoType(ctx, act, req)
		assert.ErrorIs(t, err, domain.ErrForbidden, string(act.Role))
	}

	resp, err := uc.CreateCargoType(ctx, platformAdmin, req)
	require.NoError(t, err)

	// Everyone but drivers can read.
	for _, act := range []authz.Actor{transporterDirector, cargoDirector, staffActor} {
		got, err := uc.GetCargoType(ctx, act, resp.ID)
		require.NoError(t, err, string(act.Role))
		assert.Equal(t, "Container", got.Name)
	}
	_, err = uc.GetCargoType(ctx, driverActor, resp.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCommodity_RequiresExistingCargoType(t *testing.T) {
	uc := NewCargoUseCase(&fakeCargoTypes{byID: map[string]*entity.CargoType{}},
		&fakeCommodities{byID: map[string]*entity.Commodity{}}, seededCargoOwners())

	_, err := uc.CreateCommodity(context.Background(), cargoDirector, dto.CreateCommodityRequest{
		Name: "Maize", CargoTypeID: "missing", Description: "90kg bags",
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "cargo_type")
}

// ── rates ─────────────────────────────────────────────────────────────────────

func TestRate_StaffReadOnly(t *testing.T) {
	rates := &fakeRates{byID: map[string]*entity.Rate{
		"r-1": {ID: "r-1", PricePerKm: decimal.NewFromInt(120), PreferredCurrency: "KES", CreatedByID: "cg-1"},
	}}
	uc := NewRateUseCase(rates, seededCargoOwners())
	ctx := context.Background()

	got, err := uc.GetRate(ctx, staffActor, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "r-1", got.ID)

	_, err = uc.CreateRate(ctx, staffActor, dto.CreateRateRequest{
		PricePerKm: decimal.NewFromInt(100), PreferredCurrency: "KES",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	err = uc.RemoveRate(ctx, staffActor, "r-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateRate_RejectsEmptyAndNegativeCharges(t *testing.T) {
	uc := NewRateUseCase(&fakeRates{byID: map[string]*entity.Rate{}}, seededCargoOwners())
	ctx := context.Background()

	_, err := uc.CreateRate(ctx, cargoDirector, dto.CreateRateRequest{PreferredCurrency: "KES"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "charges")

	_, err = uc.CreateRate(ctx, cargoDirector, dto.CreateRateRequest{
		PricePerKm: decimal.NewFromInt(-5), PreferredCurrency: "KES",
	})
	require.ErrorAs(t, err, &ve)
}

// ── orders ────────────────────────────────────────────────────────────────────

func newOrderUC() (*OrderUseCase, *fakeOrders) {
	orders := &fakeOrders{byID: map[string]*entity.Order{}}
	commodities := &fakeCommodities{byID: map[string]*entity.Commodity{
		"cm-1": {ID: "cm-1", Name: "Maize", CargoTypeID: "ct-1", CreatedByID: "cg-1"},
	}}
	rates := &fakeRates{byID: map[string]*entity.Rate{
		"r-1": {ID: "r-1", PricePerKm: decimal.NewFromInt(120), PreferredCurrency: "KES", CreatedByID: "cg-1"},
	}}
	depots := &fakeDepots{byID: map[string]*entity.Depot{
		"d-1": {ID: "d-1", UserID: "u-cd", City: "Nairobi", IsPublic: true},
		"d-2": {ID: "d-2", UserID: "u-cd", City: "Mombasa", IsPublic: true},
	}}
	return NewOrderUseCase(orders, commodities, rates, depots, seededCargoOwners()), orders
}

func orderRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Title:                      "Maize to Mombasa",
		Description:                "Weekly consignment",
		CommodityID:                "cm-1",
		CargoTonnage:               decimal.NewFromInt(28),
		OriginIDs:                  []string{"d-1"},
		DestinationIDs:             []string{"d-2"},
		LoadingPointContact:        "+254722000010",
		LoadingPointContactName:    "Yard office",
		OffloadingPointContact:     "+254722000011",
		OffloadingPointContactName: "Port office",
		DesiredRateID:              "r-1",
		DesiredTruckType:           "flatbed",
		Recipients:                 []string{"ops@millers.co.ke"},
	}
}

func TestCreateOrder_InjectsOwnerStatusAndTrackingID(t *testing.T) {
	uc, orders := newOrderUC()

	resp, err := uc.CreateOrder(context.Background(), cargoDirector, orderRequest())
	require.NoError(t, err)

	assert.Equal(t, "cg-1", resp.Owner)
	assert.Equal(t, string(entity.OrderPending), resp.Status)
	assert.True(t, strings.HasPrefix(resp.TrackingID, "TW-"))
	assert.Len(t, resp.TrackingID, 13)
	assert.Equal(t, entity.OrderTypeSOSD, resp.OrderType)
	assert.Len(t, orders.byID, 1)
}

func TestCreateOrder_DerivesMultiDepotOrderType(t *testing.T) {
	uc, _ := newOrderUC()
	req := orderRequest()
	req.OriginIDs = []string{"d-1", "d-2"}

	resp, err := uc.CreateOrder(context.Background(), cargoDirector, req)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderTypeMOSD, resp.OrderType)
}

func TestCreateOrder_RecipientCap(t *testing.T) {
	uc, _ := newOrderUC()
	req := orderRequest()
	req.Recipients = []string{"a@x.co", "b@x.co", "c@x.co", "d@x.co", "e@x.co", "f@x.co"}

	_, err := uc.CreateOrder(context.Background(), cargoDirector, req)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "recepients")
}

func TestCreateOrder_ForeignCommodityRejected(t *testing.T) {
	uc, _ := newOrderUC()

	// cg-2 does not own commodity cm-1.
	_, err := uc.CreateOrder(context.Background(), otherCargoDirector, orderRequest())
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "commodity")
}

func TestOrderScoping_ForeignTrackingIDLooksLikeNotFound(t *testing.T) {
	uc, _ := newOrderUC()
	ctx := context.Background()

	resp, err := uc.CreateOrder(ctx, cargoDirector, orderRequest())
	require.NoError(t, err)

	_, err = uc.GetOrder(ctx, otherCargoDirector, resp.TrackingID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := uc.GetOrder(ctx, platformAdmin, resp.TrackingID)
	require.NoError(t, err)
	assert.Equal(t, resp.TrackingID, got.TrackingID)
}

func TestRemoveOrder_HidesFromListsButStaysRetrievable(t *testing.T) {
	uc, _ := newOrderUC()
	ctx := context.Background()

	resp, err := uc.CreateOrder(ctx, cargoDirector, orderRequest())
	require.NoError(t, err)

	require.NoError(t, uc.RemoveOrder(ctx, cargoDirector, resp.TrackingID))

	list, err := uc.ListOrders(ctx, cargoDirector)
	require.NoError(t, err)
	assert.Empty(t, list)

	// The tracking id still resolves for the owner, but not for anyone else.
	got, err := uc.GetOrder(ctx, cargoDirector, resp.TrackingID)
	require.NoError(t, err)
	assert.Equal(t, resp.TrackingID, got.TrackingID)

	_, err = uc.GetOrder(ctx, otherCargoDirector, resp.TrackingID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// A second delete answers not-found.
	assert.ErrorIs(t, uc.RemoveOrder(ctx, cargoDirector, resp.TrackingID), domain.ErrNotFound)
}

// ── trips ─────────────────────────────────────────────────────────────────────

func newTripUC() (*TripUseCase, *fakeOrders) {
	orders := &fakeOrders{byID: map[string]*entity.Order{
		"o-1": {ID: "o-1", TrackingID: "TW-AAAA111122", OwnerID: "cg-1", Status: entity.OrderPending},
	}}
	trucks := &fakeTrucks{byID: map[string]*entity.Truck{
		"tr-1": {ID: "tr-1", OwnedByID: "tc-1", RegNo: "KDA 100A", Type: "flatbed"},
		"tr-x": {ID: "tr-x", OwnedByID: "tc-other", RegNo: "KDB 200B", Type: "flatbed"},
	}}
	depots := &fakeDepots{byID: map[string]*entity.Depot{
		"d-1": {ID: "d-1", UserID: "u-cd", City: "Nairobi", IsPublic: true},
		"d-2": {ID: "d-2", UserID: "u-cd", City: "Mombasa", IsPublic: true},
	}}
	trips := &fakeTrips{byID: map[string]*entity.Trip{}}
	return NewTripUseCase(trips, orders, trucks, depots, seededTransporters()), orders
}

type fakeTrips struct{ byID map[string]*entity.Trip }

func (f *fakeTrips) Create(_ context.Context, trip *entity.Trip) error {
	cp := *trip
	f.byID[trip.ID] = &cp
	return nil
}

func (f *fakeTrips) GetByID(_ context.Context, id string) (*entity.Trip, error) {
	trip, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *trip
	return &cp, nil
}

func (f *fakeTrips) ListByTransporter(_ context.Context, transporterID string) ([]*entity.Trip, error) {
	var out []*entity.Trip
	for _, trip := range f.byID {
		if trip.TransporterID == transporterID && !trip.IsDeleted {
			cp := *trip
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeTrips) ListAll(_ context.Context) ([]*entity.Trip, error) {
	var out []*entity.Trip
	for _, trip := range f.byID {
		if !trip.IsDeleted {
			cp := *trip
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeTrips) Update(_ context.Context, trip *entity.Trip) error {
	cp := *trip
	f.byID[trip.ID] = &cp
	return nil
}

func (f *fakeTrips) SoftDelete(_ context.Context, id string) error {
	trip, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	trip.IsDeleted = true
	return nil
}

func tripRequest() dto.CreateTripRequest {
	return dto.CreateTripRequest{
		OrderID:                    "TW-AAAA111122",
		TruckIDs:                   []string{"tr-1"},
		OriginID:                   "d-1",
		DestinationID:              "d-2",
		StartDate:                  time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
		OffloadingPointContact:     "+254722000011",
		OffloadingPointContactName: "Port office",
		LoadingPointContact:        "+254722000010",
		LoadingPointContactName:    "Yard office",
		Description:                "First leg",
		TripNumber:                 1,
	}
}

func TestCreateTrip_HappyPath(t *testing.T) {
	uc, _ := newTripUC()

	resp, err := uc.CreateTrip(context.Background(), transporterDirector, tripRequest())
	require.NoError(t, err)
	assert.Equal(t, "tc-1", resp.Transporter)
	assert.Equal(t, string(entity.TripPending), resp.Status)
}

func TestCreateTrip_SameOriginAndDestinationRejected(t *testing.T) {
	uc, _ := newTripUC()
	req := tripRequest()
	req.DestinationID = req.OriginID

	_, err := uc.CreateTrip(context.Background(), transporterDirector, req)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "destination")
}

func TestCreateTrip_EndBeforeStartRejected(t *testing.T) {
	uc, _ := newTripUC()
	req := tripRequest()
	end := req.StartDate.Add(-24 * time.Hour)
	req.EndDate = &end

	_, err := uc.CreateTrip(context.Background(), transporterDirector, req)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "end_date")
}

func TestCreateTrip_ForeignTruckRejected(t *testing.T) {
	uc, _ := newTripUC()
	req := tripRequest()
	req.TruckIDs = []string{"tr-x"}

	_, err := uc.CreateTrip(context.Background(), transporterDirector, req)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "trucks")
}

func TestCreateTrip_CargoOwnerForbidden(t *testing.T) {
	uc, _ := newTripUC()

	_, err := uc.CreateTrip(context.Background(), cargoDirector, tripRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
