package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/domain"
	"github.com/okwaroh/twende-logistics/internal/domain/authz"
	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
	"github.com/okwaroh/twende-logistics/pkg/logger"
)

// ── in-memory fakes ───────────────────────────────────────────────────────────

type memStore struct {
	users        map[string]*entity.User
	roles        map[entity.Role]*entity.RoleRecord
	companies    map[string]*entity.Company
	cargoOwners  map[string]*entity.CargoOwnerCompany
	transporters map[string]*entity.TransporterCompany
	drivers      map[string]*entity.Driver
}

func newMemStore() *memStore {
	return &memStore{
		users:        map[string]*entity.User{},
		roles:        map[entity.Role]*entity.RoleRecord{},
		companies:    map[string]*entity.Company{},
		cargoOwners:  map[string]*entity.CargoOwnerCompany{},
		transporters: map[string]*entity.TransporterCompany{},
		drivers:      map[string]*entity.Driver{},
	}
}

func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	for k, v := range s.users {
		u := *v
		c.users[k] = &u
	}
	for k, v := range s.roles {
		r := *v
		c.roles[k] = &r
	}
	for k, v := range s.companies {
		co := *v
		c.companies[k] = &co
	}
	for k, v := range s.cargoOwners {
		co := *v
		c.cargoOwners[k] = &co
	}
	for k, v := range s.transporters {
		t := *v
		c.transporters[k] = &t
	}
	for k, v := range s.drivers {
		d := *v
		c.drivers[k] = &d
	}
	return c
}

func (s *memStore) restore(from *memStore) {
	s.users = from.users
	s.roles = from.roles
	s.companies = from.companies
	s.cargoOwners = from.cargoOwners
	s.transporters = from.transporters
	s.drivers = from.drivers
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return &domain.DuplicateFieldError{Field: "email"}
		}
		if u.Phone == user.Phone {
			return &domain.DuplicateFieldError{Field: "phone"}
		}
	}
	u := *user
	r.s.users[user.ID] = &u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email && !u.IsDeleted {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) ListByEmployer(_ context.Context, companyID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.s.users {
		if u.EmployerID == companyID && !u.IsDeleted {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memUserRepo) ListEmployees(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.s.users {
		if u.EmployerID != "" && !u.IsDeleted {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memUserRepo) SoftDelete(_ context.Context, id string) error {
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsDeleted = true
	return nil
}

type memRoleRepo struct{ s *memStore }

func (r *memRoleRepo) GetOrCreate(_ context.Context, title entity.Role) (*entity.RoleRecord, error) {
	if rec, ok := r.s.roles[title]; ok {
		return rec, nil
	}
	rec := &entity.RoleRecord{ID: string(title), Title: title}
	r.s.roles[title] = rec
	return rec, nil
}

type memCompanyRepo struct{ s *memStore }

func (r *memCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	for _, c := range r.s.companies {
		if c.BusinessName == company.BusinessName {
			return &domain.DuplicateFieldError{Field: "business_name"}
		}
	}
	cp := *company
	r.s.companies[company.ID] = &cp
	return nil
}

func (r *memCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.s.companies[id]
	if !ok || c.IsDeleted {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCompanyRepo) GetByDirector(_ context.Context, userID string) (*entity.Company, error) {
	for _, c := range r.s.companies {
		if c.DirectorID == userID && !c.IsDeleted {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCompanyRepo) Update(_ context.Context, company *entity.Company) error {
	cp := *company
	r.s.companies[company.ID] = &cp
	return nil
}

func (r *memCompanyRepo) SoftDelete(_ context.Context, id string) error {
	c, ok := r.s.companies[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.IsDeleted = true
	return nil
}

type memCargoOwnerRepo struct{ s *memStore }

func (r *memCargoOwnerRepo) Create(_ context.Context, co *entity.CargoOwnerCompany) error {
	cp := *co
	r.s.cargoOwners[co.ID] = &cp
	return nil
}

func (r *memCargoOwnerRepo) GetByID(_ context.Context, id string) (*entity.CargoOwnerCompany, error) {
	co, ok := r.s.cargoOwners[id]
	if !ok || co.IsDeleted {
		return nil, nil
	}
	cp := *co
	return &cp, nil
}

func (r *memCargoOwnerRepo) GetByCompany(_ context.Context, companyID string) (*entity.CargoOwnerCompany, error) {
	for _, co := range r.s.cargoOwners {
		if co.CompanyID == companyID && !co.IsDeleted {
			cp := *co
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCargoOwnerRepo) List(_ context.Context) ([]*entity.CargoOwnerCompany, error) {
	var out []*entity.CargoOwnerCompany
	for _, co := range r.s.cargoOwners {
		if !co.IsDeleted {
			cp := *co
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memCargoOwnerRepo) SoftDelete(_ context.Context, id string) error {
	co, ok := r.s.cargoOwners[id]
	if !ok {
		return domain.ErrNotFound
	}
	co.IsDeleted = true
	return nil
}

type memTransporterRepo struct{ s *memStore }

func (r *memTransporterRepo) Create(_ context.Context, tc *entity.TransporterCompany) error {
	cp := *tc
	r.s.transporters[tc.ID] = &cp
	return nil
}

func (r *memTransporterRepo) GetByID(_ context.Context, id string) (*entity.TransporterCompany, error) {
	tc, ok := r.s.transporters[id]
	if !ok || tc.IsDeleted {
		return nil, nil
	}
	cp := *tc
	return &cp, nil
}

func (r *memTransporterRepo) GetByCompany(_ context.Context, companyID string) (*entity.TransporterCompany, error) {
	for _, tc := range r.s.transporters {
		if tc.CompanyID == companyID && !tc.IsDeleted {
			cp := *tc
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memTransporterRepo) List(_ context.Context) ([]*entity.TransporterCompany, error) {
	var out []*entity.TransporterCompany
	for _, tc := range r.s.transporters {
		if !tc.IsDeleted {
			cp := *tc
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memTransporterRepo) SoftDelete(_ context.Context, id string) error {
	tc, ok := r.s.transporters[id]
	if !ok {
		return domain.ErrNotFound
	}
	tc.IsDeleted = true
	return nil
}

type memDriverRepo struct{ s *memStore }

func (r *memDriverRepo) Create(_ context.Context, d *entity.Driver) error {
	for _, existing := range r.s.drivers {
		if existing.IDNumber == d.IDNumber {
			return &domain.DuplicateFieldError{Field: "id_number"}
		}
	}
	cp := *d
	r.s.drivers[d.ID] = &cp
	return nil
}

func (r *memDriverRepo) GetByID(_ context.Context, id string) (*entity.Driver, error) {
	d, ok := r.s.drivers[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *memDriverRepo) GetByUser(_ context.Context, userID string) (*entity.Driver, error) {
	for _, d := range r.s.drivers {
		if d.UserID == userID && !d.IsDeleted {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memDriverRepo) ListByCompany(_ context.Context, transporterID string) ([]*entity.Driver, error) {
	var out []*entity.Driver
	for _, d := range r.s.drivers {
		if d.CompanyID == transporterID && !d.IsDeleted {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memDriverRepo) ListAll(_ context.Context) ([]*entity.Driver, error) {
	var out []*entity.Driver
	for _, d := range r.s.drivers {
		if !d.IsDeleted {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memDriverRepo) Update(_ context.Context, d *entity.Driver) error {
	cp := *d
	r.s.drivers[d.ID] = &cp
	return nil
}

func (r *memDriverRepo) SoftDelete(_ context.Context, id string) error {
	d, ok := r.s.drivers[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.IsDeleted = true
	return nil
}

// fakeTx rolls the store back to a snapshot when the callback fails, which is
// exactly the contract the postgres runner provides.
type fakeTx struct{ s *memStore }

func (t *fakeTx) RunOnboarding(ctx context.Context, fn func(
	users repository.UserRepository,
	roles repository.RoleRepository,
	companies repository.CompanyRepository,
	cargoOwners repository.CargoOwnerRepository,
	transporters repository.TransporterRepository,
) error) error {
	snap := t.s.snapshot()
	err := fn(&memUserRepo{t.s}, &memRoleRepo{t.s}, &memCompanyRepo{t.s},
		&memCargoOwnerRepo{t.s}, &memTransporterRepo{t.s})
	if err != nil {
		t.s.restore(snap)
	}
	return err
}

func (t *fakeTx) RunDriver(ctx context.Context, fn func(
	users repository.UserRepository,
	roles repository.RoleRepository,
	drivers repository.DriverRepository,
) error) error {
	snap := t.s.snapshot()
	err := fn(&memUserRepo{t.s}, &memRoleRepo{t.s}, &memDriverRepo{t.s})
	if err != nil {
		t.s.restore(snap)
	}
	return err
}

type recordingNotifier struct {
	credentials []string // emails
	passwords   []string
	suspensions []bool
	fail        bool
}

func (n *recordingNotifier) SendCredentials(_ context.Context, email, _, password string) error {
	n.credentials = append(n.credentials, email)
	n.passwords = append(n.passwords, password)
	if n.fail {
		return errors.New("smtp down")
	}
	return nil
}

func (n *recordingNotifier) SendSuspensionNotice(_ context.Context, _ string, suspended bool) error {
	n.suspensions = append(n.suspensions, suspended)
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestUseCase(s *memStore, policy Policy) (*UseCase, *recordingNotifier) {
	notifier := &recordingNotifier{}
	uc := NewUseCase(&fakeTx{s}, &memUserRepo{s}, &memRoleRepo{s}, &memTransporterRepo{s},
		notifier, policy, logger.New(logger.Config{Env: "development", Level: "error"}))
	return uc, notifier
}

func transporterRequest() dto.RegisterCompanyRequest {
	return dto.RegisterCompanyRequest{
		Director: dto.DirectorFields{
			FullName:          "Aisha Wanjiru",
			Email:             "aisha@haulage.co.ke",
			Phone:             "+254722000001",
			Password:          "moving4Tonnes",
			ConfirmedPassword: "moving4Tonnes",
		},
		Company: dto.CompanyFields{
			BusinessName:    "Wanjiru Haulage",
			BusinessType:    "Corporate",
			AccountNumber:   "0110045500",
			BusinessPhoneNo: "+254722000002",
		},
		FleetSize:         18,
		CarrierLicenseRef: "docs/carrier-18.pdf",
	}
}

func cargoOwnerRequest() dto.RegisterCompanyRequest {
	req := transporterRequest()
	req.Director.Email = "juma@millers.co.ke"
	req.Director.Phone = "+254733000001"
	req.Company.BusinessName = "Juma Millers"
	req.Company.BusinessPhoneNo = "+254733000002"
	req.FleetSize = 0
	req.CarrierLicenseRef = ""
	req.CommoditiesHandled = "maize, wheat flour"
	return req
}

// ── registration ──────────────────────────────────────────────────────────────

func TestRegisterCompany_TransporterCreatesAllRecords(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s, Policy{})

	resp, err := uc.RegisterCompany(context.Background(), entity.CategoryTransporter, transporterRequest())
	require.NoError(t, err)

	assert.Equal(t, "transporter", resp.Category)
	assert.Equal(t, 18, resp.FleetSize)
	assert.Equal(t, "Wanjiru Haulage", resp.Company.BusinessName)
	assert.Equal(t, string(entity.RoleTransporterDirector), resp.Company.Director.Role)

	require.Len(t, s.users, 1)
	require.Len(t, s.companies, 1)
	require.Len(t, s.transporters, 1)
	assert.Empty(t, s.cargoOwners)
	assert.Contains(t, s.roles, entity.RoleTransporterDirector)
}

func TestRegisterCompany_CargoOwnerCreatesSpecialization(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s, Policy{})

	resp, err := uc.RegisterCompany(context.Background(), entity.CategoryCargoOwner, cargoOwnerRequest())
	require.NoError(t, err)

	assert.Equal(t, "cargo_owner", resp.Category)
	assert.Equal(t, "maize, wheat flour", resp.CommoditiesHandled)
	require.Len(t, s.cargoOwners, 1)
	assert.Empty(t, s.transporters)
}

func TestRegisterCompany_DirectorBecomesOwnEmployee(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s, Policy{})

	resp, err := uc.RegisterCompany(context.Background(), entity.CategoryTransporter, transporterRequest())
	require.NoError(t, err)

	director := s.users[resp.Company.Director.ID]
	require.NotNil(t, director)
	assert.Equal(t, resp.Company.ID, director.EmployerID)
	assert.Equal(t, director.ID, s.companies[resp.Company.ID].DirectorID)
}

func TestRegisterCompany_DuplicateBusinessNameLeavesNothingBehind(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s, Policy{})

	_, err := uc.RegisterCompany(context.Background(), entity.CategoryTransporter, transporterRequest())
	require.NoError(t, err)

	// Same business name, different director identity: the company insert
	// fails, and the already-inserted director row must roll back with it.
	req := transporterRequest()
	req.Director.Email = "second@haulage.co.ke"
	req.Director.Phone = "+254722999999"
	req.Company.BusinessPhoneNo = "+254722999998"

	_, err = uc.RegisterCompany(context.Background(), entity.CategoryTransporter, req)
	var dup *domain.DuplicateFieldError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "business_name", dup.Field)

	assert.Len(t, s.users, 1, "failed registration must not leave a director row")
	assert.Len(t, s.companies, 1)
	assert.Len(t, s.transporters, 1)
}

func TestRegisterCompany_ActivationFollowsPolicy(t *testing.T) {
	for _, auto := range []bool{false, true} {
		s := newMemStore()
		uc, _ := newTestUseCase(s, Policy{AutoActivate: auto})

		resp, err := uc.RegisterCompany(context.Background(), entity.CategoryTransporter, transporterRequest())
		require.NoError(t, err)

		director := s.users[resp.Company.Director.ID]
		assert.Equal(t, auto, director.IsVerified)
		assert.Equal(t, auto, director.IsActive)
		assert.Equal(t, auto, s.companies[resp.Company.ID].IsActive)
	}
}

func TestRegisterCompany_ValidationFailures(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s, Policy{})
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*dto.RegisterCompanyRequest)
		field  string
	}{
		{"missing business name", func(r *dto.RegisterCompanyRequest) { r.Company.BusinessName = "" }, "business_name"},
		{"password mismatch", func(r *dto.RegisterCompanyRequest) { r.Director.ConfirmedPassword = "different8x" }, "password"},
		{"all-numeric password", func(r *dto.RegisterCompanyRequest) {
			r.Director.Password = "12345678"
			r.Director.ConfirmedPassword = "12345678"
		}, "password"},
		{"local phone format", func(r *dto.RegisterCompanyRequest) { r.Director.Phone = "0722000001" }, "phone"},
		{"unknown business type", func(r *dto.RegisterCompanyRequest) { r.Company.BusinessType = "partnership" }, "business_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := transporterRequest()
			tt.mutate(&req)
			_, err := uc.RegisterCompany(ctx, entity.CategoryTransporter, req)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tt.field)
			assert.Empty(t, s.users, "validation failures must not persist anything")
		})
	}
}

// ── employees ─────────────────────────────────────────────────────────────────

func adminActor(companyID string) authz.Actor {
	return authz.Actor{UserID: "admin-1", Role: entity.RoleAdmin, CompanyID: companyID}
}

func TestCreateEmployee_GeneratesAndDispatchesPassword(t *testing.T) {
	s := newMemStore()
	uc, notifier := newTestUseCase(s, Policy{})

	resp, err := uc.CreateEmployee(context.Background(), adminActor("co-1"), dto.CreateEmployeeRequest{
		FullName: "Brian Otieno",
		Email:    "brian@haulage.co.ke",
		Phone:    "+254711000001",
		Role:     "staff",
	})
	require.NoError(t, err)

	assert.Equal(t, "staff", resp.Role)
	assert.Equal(t, "co-1", resp.EmployerID)
	assert.True(t, resp.IsVerified)
	assert.True(t, resp.IsActive)

	require.Len(t, notifier.credentials, 1)
	assert.Equal(t, "brian@haulage.co.ke", notifier.credentials[0])
	require.Len(t, notifier.passwords, 1)
	assert.Len(t, notifier.passwords[0], 12)

	stored := s.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, notifier.passwords[0], stored.PasswordHash)
}

func TestCreateEmployee_NotifierFailureDoesNotFailCreation(t *testing.T) {
	s := newMemStore()
	uc, notifier := newTestUseCase(s, Policy{})
	notifier.fail = true

	resp, err := uc.CreateEmployee(context.Background(), adminActor("co-1"), dto.CreateEmployeeRequest{
		FullName: "Brian Otieno",
		Email:    "brian@haulage.co.ke",
		Phone:    "+254711000001",
		Role:     "staff",
	})
	require.NoError(t, err)
	assert.NotNil(t, s.users[resp.ID])
}

func TestCreateEmployee_RejectsPrivilegedRoles(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s, Policy{})
	ctx := context.Background()

	for _, role := range []string{"transporter-director", "cargo-owner-director", "superuser", "driver"} {
		_, err := uc.CreateEmployee(ctx, adminActor("co-1"), dto.CreateEmployeeRequest{
			FullName: "X", Email: "x@y.co", Phone: "+254711000009", Role: role,
		})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve, role)
		assert.Contains(t, ve.Fields, "role")
	}
}

func TestCreateEmployee_StaffForbidden(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s, Policy{})

	_, err := uc.CreateEmployee(context.Background(),
		authz.Actor{UserID: "s1", Role: entity.RoleStaff, CompanyID: "co-1"},
		dto.CreateEmployeeRequest{FullName: "X", Email: "x@y.co", Phone: "+254711000009", Role: "staff"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func seedEmployee(s *memStore, id, companyID string, role entity.Role, active bool) {
	s.users[id] = &entity.User{
		ID: id, FullName: "Seeded", Email: id + "@x.co", Phone: "+25471100" + id,
		Role: role, EmployerID: companyID, IsVerified: true, IsActive: active,
	}
}

func TestSuspendEmployee_RoundTrip(t *testing.T) {
	s := newMemStore()
	uc, notifier := newTestUseCase(s, Policy{})
	seedEmployee(s, "emp-1", "co-1", entity.RoleStaff, true)
	ctx := context.Background()
	act := adminActor("co-1")

	resp, err := uc.SuspendEmployee(ctx, act, "emp-1", true)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.False(t, s.users["emp-1"].IsActive)

	// Suspending again is a persistence no-op but still notifies.
	_, err = uc.SuspendEmployee(ctx, act, "emp-1", true)
	require.NoError(t, err)
	assert.False(t, s.users["emp-1"].IsActive)

	resp, err = uc.SuspendEmployee(ctx, act, "emp-1", false)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.True(t, s.users["emp-1"].IsActive)

	assert.Equal(t, []bool{true, true, false}, notifier.suspensions)
}

func TestEmployeeScope_OtherCompanyLooksLikeNotFound(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s, Policy{})
	seedEmployee(s, "emp-1", "co-2", entity.RoleStaff, true)

	_, err := uc.GetEmployee(context.Background(), adminActor("co-1"), "emp-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeScope_DirectorCannotBeManagedAsEmployee(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s, Policy{})
	seedEmployee(s, "dir-1", "co-1", entity.RoleTransporterDirector, true)

	_, err := uc.SuspendEmployee(context.Background(), adminActor("co-1"), "dir-1", true)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListEmployees_ExcludesDirectors(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s, Policy{})
	seedEmployee(s, "dir-1", "co-1", entity.RoleTransporterDirector, true)
	seedEmployee(s, "emp-1", "co-1", entity.RoleStaff, true)
	seedEmployee(s, "emp-2", "co-1", entity.RoleAdmin, true)
	seedEmployee(s, "emp-3", "co-2", entity.RoleStaff, true)

	out, err := uc.ListEmployees(context.Background(), adminActor("co-1"))
	require.NoError(t, err)
	assert.Len(t, out, 2)
	for _, u := range out {
		assert.NotEqual(t, string(entity.RoleTransporterDirector), u.Role)
	}
}

func TestListEmployees_SuperuserSeesAllCompanies(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s, Policy{})
	seedEmployee(s, "dir-1", "co-1", entity.RoleTransporterDirector, true)
	seedEmployee(s, "emp-1", "co-1", entity.RoleStaff, true)
	seedEmployee(s, "emp-2", "co-2", entity.RoleAdmin, true)

	out, err := uc.ListEmployees(context.Background(), authz.Actor{UserID: "su-1", Role: entity.RoleSuperuser})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestRemoveEmployee_SoftDeletes(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s, Policy{})
	seedEmployee(s, "emp-1", "co-1", entity.RoleStaff, true)
	ctx := context.Background()
	act := adminActor("co-1")

	require.NoError(t, uc.RemoveEmployee(ctx, act, "emp-1"))
	assert.True(t, s.users["emp-1"].IsDeleted)

	// Gone from the roster, but the record stays retrievable for audit.
	out, err := uc.ListEmployees(ctx, act)
	require.NoError(t, err)
	assert.Empty(t, out)

	got, err := uc.GetEmployee(ctx, act, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "emp-1@x.co", got.Email)

	// Mutations on the deleted account answer not-found.
	_, err = uc.SuspendEmployee(ctx, act, "emp-1", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.RemoveEmployee(ctx, act, "emp-1"), domain.ErrNotFound)
}

// ── drivers ───────────────────────────────────────────────────────────────────

func driverRequest() dto.CreateDriverRequest {
	return dto.CreateDriverRequest{
		FullName:      "Musa Kimani",
		Email:         "musa@haulage.co.ke",
		Phone:         "+254744000001",
		IDNumber:      "30112233",
		DriverLicense: "DL-99887",
	}
}

func TestCreateDriver_CreatesUserAndRecordTogether(t *testing.T) {
	s := newMemStore()
	uc, notifier := newTestUseCase(s, Policy{})
	s.transporters["tc-1"] = &entity.TransporterCompany{ID: "tc-1", CompanyID: "co-1", FleetSize: 5}

	resp, err := uc.CreateDriver(context.Background(), adminActor("co-1"), driverRequest())
	require.NoError(t, err)

	assert.Equal(t, "tc-1", resp.CompanyID)
	assert.Equal(t, string(entity.RoleDriver), resp.User.Role)
	assert.Equal(t, "co-1", resp.User.EmployerID)
	require.Len(t, s.drivers, 1)
	require.Len(t, s.users, 1)
	require.Len(t, notifier.passwords, 1)
}

func TestCreateDriver_NonTransporterCompanyForbidden(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s, Policy{})
	// No transporter specialization for co-1.

	_, err := uc.CreateDriver(context.Background(), adminActor("co-1"), driverRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, s.users)
}

func TestCreateDriver_DuplicateIDNumberRollsBackUser(t *testing.T) {
	s := newMemStore()
	uc, _ := newTestUseCase(s, Policy{})
	s.transporters["tc-1"] = &entity.TransporterCompany{ID: "tc-1", CompanyID: "co-1"}
	s.drivers["d-0"] = &entity.Driver{ID: "d-0", UserID: "u-0", CompanyID: "tc-1", IDNumber: "30112233"}

	_, err := uc.CreateDriver(context.Background(), adminActor("co-1"), driverRequest())
	var dup *domain.DuplicateFieldError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "id_number", dup.Field)
	assert.Empty(t, s.users, "failed driver creation must not leave a user row")
}

func TestGeneratePassword_Shape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 16; i++ {
		p, err := generatePassword()
		require.NoError(t, err)
		assert.Len(t, p, 12)
		assert.Empty(t, seen[p])
		seen[p] = true
	}
}
