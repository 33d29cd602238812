// Package onboarding orchestrates company registration and employee account
// creation. Registration creates the director user, the company and its
// specialization as one transaction: a failure at any step persists nothing.
package onboarding

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/domain"
	"github.com/okwaroh/twende-logistics/internal/domain/authz"
	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
	"github.com/okwaroh/twende-logistics/pkg/logger"
	"github.com/okwaroh/twende-logistics/pkg/validate"
)

// TxRunner runs a callback against transaction-bound repositories. Commit
// happens only if the callback returns nil.
type TxRunner interface {
	RunOnboarding(ctx context.Context, fn func(
		users repository.UserRepository,
		roles repository.RoleRepository,
		companies repository.CompanyRepository,
		cargoOwners repository.CargoOwnerRepository,
		transporters repository.TransporterRepository,
	) error) error

	RunDriver(ctx context.Context, fn func(
		users repository.UserRepository,
		roles repository.RoleRepository,
		drivers repository.DriverRepository,
	) error) error
}

// Notifier dispatches out-of-band email+SMS. Delivery is an external
// collaborator; failures are logged, never surfaced to the caller.
type Notifier interface {
	SendCredentials(ctx context.Context, email, phone, password string) error
	SendSuspensionNotice(ctx context.Context, email string, suspended bool) error
}

// Policy switches deployment-dependent onboarding behavior.
type Policy struct {
	// AutoActivate marks freshly registered companies and directors verified
	// and active instead of waiting for admin review.
	AutoActivate bool
}

// UseCase wires the onboarding flows.
type UseCase struct {
	tx           TxRunner
	users        repository.UserRepository
	roles        repository.RoleRepository
	transporters repository.TransporterRepository
	notifier     Notifier
	policy       Policy
	log          *logger.Logger
}

// NewUseCase builds the onboarding use case.
func NewUseCase(tx TxRunner, users repository.UserRepository, roles repository.RoleRepository,
	transporters repository.TransporterRepository, notifier Notifier, policy Policy, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, users: users, roles: roles, transporters: transporters,
		notifier: notifier, policy: policy, log: log}
}

// RegisterCompany creates the director user, the company and its
// specialization atomically and returns the specialization view.
func (uc *UseCase) RegisterCompany(ctx context.Context, category entity.CompanyCategory, req dto.RegisterCompanyRequest) (*dto.SpecializedCompanyResponse, error) {
	if !category.Valid() {
		return nil, domain.NewValidationError("category", "Unknown company category.")
	}
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Director.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	director := &entity.User{
		ID:           uuid.NewString(),
		FullName:     req.Director.FullName,
		Email:        req.Director.Email,
		Phone:        req.Director.Phone,
		PasswordHash: string(hash),
		Role:         category.DirectorRole(),
		IsVerified:   uc.policy.AutoActivate,
		IsActive:     uc.policy.AutoActivate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	company := &entity.Company{
		ID:                            uuid.NewString(),
		BusinessName:                  req.Company.BusinessName,
		BusinessType:                  req.Company.BusinessType,
		AccountNumber:                 req.Company.AccountNumber,
		PreferredCurrency:             req.Company.PreferredCurrency,
		BusinessPhoneNo:               req.Company.BusinessPhoneNo,
		BusinessEmail:                 req.Company.BusinessEmail,
		PostalCode:                    req.Company.PostalCode,
		OperationalRegion:             req.Company.OperationalRegion,
		LogoRef:                       req.Company.LogoRef,
		CertificateOfIncorporationRef: req.Company.CertificateRef,
		DirectorsIDRef:                req.Company.DirectorsIDRef,
		DirectorID:                    director.ID,
		IsActive:                      uc.policy.AutoActivate,
		CreatedAt:                     now,
		UpdatedAt:                     now,
	}

	resp := &dto.SpecializedCompanyResponse{Category: string(category)}

	err = uc.tx.RunOnboarding(ctx, func(
		users repository.UserRepository,
		roles repository.RoleRepository,
		companies repository.CompanyRepository,
		cargoOwners repository.CargoOwnerRepository,
		transporters repository.TransporterRepository,
	) error {
		if _, err := roles.GetOrCreate(ctx, director.Role); err != nil {
			return err
		}
		if err := users.Create(ctx, director); err != nil {
			return err
		}
		if err := companies.Create(ctx, company); err != nil {
			return err
		}
		switch category {
		case entity.CategoryTransporter:
			tc := &entity.TransporterCompany{
				ID:                uuid.NewString(),
				CompanyID:         company.ID,
				FleetSize:         req.FleetSize,
				CarrierLicenseRef: req.CarrierLicenseRef,
				CreatedAt:         now,
				UpdatedAt:         now,
			}
			if err := transporters.Create(ctx, tc); err != nil {
				return err
			}
			resp.ID = tc.ID
			resp.FleetSize = tc.FleetSize
		default:
			co := &entity.CargoOwnerCompany{
				ID:                 uuid.NewString(),
				CompanyID:          company.ID,
				CommoditiesHandled: req.CommoditiesHandled,
				CreatedAt:          now,
				UpdatedAt:          now,
			}
			if err := cargoOwners.Create(ctx, co); err != nil {
				return err
			}
			resp.ID = co.ID
			resp.CommoditiesHandled = co.CommoditiesHandled
		}
		// The director is also an employee of their own company.
		director.EmployerID = company.ID
		director.UpdatedAt = time.Now()
		return users.Update(ctx, director)
	})
	if err != nil {
		return nil, err
	}

	resp.Company = toCompanyResponse(company, director)
	return resp, nil
}

// CreateEmployee adds an admin/staff user to the acting company. The password
// is generated and dispatched out-of-band, never returned.
func (uc *UseCase) CreateEmployee(ctx context.Context, act authz.Actor, req dto.CreateEmployeeRequest) (*dto.UserResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceEmployee) {
		return nil, domain.ErrForbidden
	}
	if act.CompanyID == "" && !act.IsSuperuser() {
		return nil, domain.ErrForbidden
	}

	role := entity.Role(req.Role)
	if role.IsDirector() || role == entity.RoleSuperuser || role == entity.RoleDriver {
		return nil, domain.NewValidationError("role", "Cannot assign this role through the employee path.")
	}
	if !role.Valid() {
		return nil, domain.NewValidationError("role", "Unknown role title.")
	}
	if err := domain.RequireAll(map[string]string{
		"full_name": req.FullName,
		"email":     req.Email,
		"phone":     req.Phone,
	}); err != nil {
		return nil, err
	}
	if !validate.InternationalPhoneNumber(req.Phone) {
		return nil, domain.NewValidationError("phone", "Please enter a valid international phone number.")
	}

	password, err := generatePassword()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if _, err := uc.roles.GetOrCreate(ctx, role); err != nil {
		return nil, err
	}
	now := time.Now()
	employee := &entity.User{
		ID:           uuid.NewString(),
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
		EmployerID:   act.CompanyID,
		IsVerified:   true,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, employee); err != nil {
		return nil, err
	}

	if err := uc.notifier.SendCredentials(ctx, employee.Email, employee.Phone, password); err != nil {
		uc.log.Warn().Err(err).Str("user_id", employee.ID).Msg("credentials notification failed")
	}

	out := toUserResponse(employee)
	return &out, nil
}

// SuspendEmployee flips is_active on an employee of the acting company.
// Setting the current state again is a persistence no-op, but the
// notification is still dispatched.
func (uc *UseCase) SuspendEmployee(ctx context.Context, act authz.Actor, employeeID string, suspend bool) (*dto.UserResponse, error) {
	employee, err := uc.employeeInScope(ctx, act, employeeID)
	if err != nil {
		return nil, err
	}
	if employee.IsDeleted {
		return nil, domain.ErrNotFound
	}

	if employee.IsActive == suspend {
		employee.IsActive = !suspend
		employee.UpdatedAt = time.Now()
		if err := uc.users.Update(ctx, employee); err != nil {
			return nil, err
		}
	}

	if err := uc.notifier.SendSuspensionNotice(ctx, employee.Email, suspend); err != nil {
		uc.log.Warn().Err(err).Str("user_id", employee.ID).Msg("suspension notification failed")
	}

	out := toUserResponse(employee)
	return &out, nil
}

// ListEmployees returns the acting company's employees, directors excluded.
// Superusers get the employee roster of every company.
func (uc *UseCase) ListEmployees(ctx context.Context, act authz.Actor) ([]dto.UserResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceEmployee) {
		return nil, domain.ErrForbidden
	}
	var (
		users []*entity.User
		err   error
	)
	if act.IsSuperuser() {
		users, err = uc.users.ListEmployees(ctx)
	} else {
		users, err = uc.users.ListByEmployer(ctx, act.CompanyID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		if u.Role.IsDirector() {
			continue
		}
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// GetEmployee returns one employee of the acting company.
func (uc *UseCase) GetEmployee(ctx context.Context, act authz.Actor, employeeID string) (*dto.UserResponse, error) {
	employee, err := uc.employeeInScope(ctx, act, employeeID)
	if err != nil {
		return nil, err
	}
	out := toUserResponse(employee)
	return &out, nil
}

// UpdateEmployee applies a partial update; Suspend goes through
// SuspendEmployee so the notification behavior stays in one place.
func (uc *UseCase) UpdateEmployee(ctx context.Context, act authz.Actor, employeeID string, req dto.UpdateEmployeeRequest) (*dto.UserResponse, error) {
	if req.Suspend != nil {
		if _, err := uc.SuspendEmployee(ctx, act, employeeID, *req.Suspend); err != nil {
			return nil, err
		}
	}
	employee, err := uc.employeeInScope(ctx, act, employeeID)
	if err != nil {
		return nil, err
	}
	if employee.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if req.FullName != nil {
		employee.FullName = *req.FullName
	}
	if req.Phone != nil {
		if !validate.InternationalPhoneNumber(*req.Phone) {
			return nil, domain.NewValidationError("phone", "Please enter a valid international phone number.")
		}
		employee.Phone = *req.Phone
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		if role != entity.RoleAdmin && role != entity.RoleStaff {
			return nil, domain.NewValidationError("role", "Employees can only be admin or staff.")
		}
		if _, err := uc.roles.GetOrCreate(ctx, role); err != nil {
			return nil, err
		}
		employee.Role = role
	}
	employee.UpdatedAt = time.Now()
	if err := uc.users.Update(ctx, employee); err != nil {
		return nil, err
	}
	out := toUserResponse(employee)
	return &out, nil
}

// RemoveEmployee soft-deletes an employee account.
func (uc *UseCase) RemoveEmployee(ctx context.Context, act authz.Actor, employeeID string) error {
	employee, err := uc.employeeInScope(ctx, act, employeeID)
	if err != nil {
		return err
	}
	if employee.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.users.SoftDelete(ctx, employee.ID)
}

// CreateDriver creates the driver's user account and licensing record in one
// transaction. Only transporter companies employ drivers.
func (uc *UseCase) CreateDriver(ctx context.Context, act authz.Actor, req dto.CreateDriverRequest) (*dto.DriverResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceDriver) {
		return nil, domain.ErrForbidden
	}
	tc, err := uc.transporters.GetByCompany(ctx, act.CompanyID)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return nil, domain.ErrForbidden
	}
	if err := domain.RequireAll(map[string]string{
		"full_name":      req.FullName,
		"email":          req.Email,
		"phone":          req.Phone,
		"id_number":      req.IDNumber,
		"driver_license": req.DriverLicense,
	}); err != nil {
		return nil, err
	}
	if !validate.InternationalPhoneNumber(req.Phone) {
		return nil, domain.NewValidationError("phone", "Please enter a valid international phone number.")
	}

	password, err := generatePassword()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         entity.RoleDriver,
		EmployerID:   act.CompanyID,
		IsVerified:   true,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	driver := &entity.Driver{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		CompanyID:     tc.ID,
		IDNumber:      req.IDNumber,
		DriverLicense: req.DriverLicense,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.tx.RunDriver(ctx, func(
		users repository.UserRepository,
		roles repository.RoleRepository,
		drivers repository.DriverRepository,
	) error {
		if _, err := roles.GetOrCreate(ctx, entity.RoleDriver); err != nil {
			return err
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return drivers.Create(ctx, driver)
	})
	if err != nil {
		return nil, err
	}

	if err := uc.notifier.SendCredentials(ctx, user.Email, user.Phone, password); err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("credentials notification failed")
	}

	return &dto.DriverResponse{
		ID:            driver.ID,
		IDNumber:      driver.IDNumber,
		DriverLicense: driver.DriverLicense,
		CompanyID:     driver.CompanyID,
		User:          toUserResponse(user),
	}, nil
}

// employeeInScope loads an employee and checks they belong to the acting
// company. Out-of-scope lookups answer not-found, not forbidden, so the
// existence of other companies' staff leaks nothing. Soft-deleted employees
// resolve so deletions stay auditable; mutating operations reject them
// separately.
func (uc *UseCase) employeeInScope(ctx context.Context, act authz.Actor, employeeID string) (*entity.User, error) {
	employee, err := uc.users.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.OwnsCompany(act, employee.EmployerID) {
		return nil, domain.ErrNotFound
	}
	if employee.Role.IsDirector() && !act.IsSuperuser() {
		return nil, domain.ErrForbidden
	}
	return employee, nil
}

func validateRegistration(req dto.RegisterCompanyRequest) error {
	if err := domain.RequireAll(map[string]string{
		"full_name":         req.Director.FullName,
		"email":             req.Director.Email,
		"phone":             req.Director.Phone,
		"password":          req.Director.Password,
		"business_name":     req.Company.BusinessName,
		"business_type":     req.Company.BusinessType,
		"account_number":    req.Company.AccountNumber,
		"business_phone_no": req.Company.BusinessPhoneNo,
	}); err != nil {
		return err
	}
	if problems := validate.PasswordStrength(req.Director.Password); len(problems) > 0 {
		e := &domain.ValidationError{}
		for _, p := range problems {
			e.Add("password", p)
		}
		return e
	}
	if req.Director.Password != req.Director.ConfirmedPassword {
		return domain.NewValidationError("password", "passwords don't match")
	}
	if !validate.InternationalPhoneNumber(req.Director.Phone) {
		return domain.NewValidationError("phone", "Please enter a valid international phone number.")
	}
	if !validate.InternationalPhoneNumber(req.Company.BusinessPhoneNo) {
		return domain.NewValidationError("business_phone_no", "Please enter a valid international phone number.")
	}
	if !entity.ValidBusinessType(req.Company.BusinessType) {
		return domain.NewValidationError("business_type", "Business type must be single, Corporate or others.")
	}
	return nil
}

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generatePassword returns a 12-character random password for accounts whose
// credentials are delivered out-of-band.
func generatePassword() (string, error) {
	out := make([]byte, 12)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       string(u.Role),
		EmployerID: u.EmployerID,
		IsVerified: u.IsVerified,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func toCompanyResponse(c *entity.Company, director *entity.User) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:                c.ID,
		BusinessName:      c.BusinessName,
		BusinessType:      c.BusinessType,
		AccountNumber:     c.AccountNumber,
		PreferredCurrency: c.PreferredCurrency,
		BusinessPhoneNo:   c.BusinessPhoneNo,
		BusinessEmail:     c.BusinessEmail,
		PostalCode:        c.PostalCode,
		OperationalRegion: c.OperationalRegion,
		IsActive:          c.IsActive,
		Director:          toUserResponse(director),
		CreatedAt:         c.CreatedAt,
	}
}
