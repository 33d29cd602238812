package usecase

import (
	"context"
	"time"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/domain"
	"github.com/okwaroh/twende-logistics/internal/domain/authz"
	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
)

// DriverUseCase manages the licensing records of a transporter's drivers.
// Creating a driver (user account plus record) lives in the onboarding
// package because it is transactional.
type DriverUseCase struct {
	drivers      repository.DriverRepository
	users        repository.UserRepository
	transporters repository.TransporterRepository
}

// NewDriverUseCase builds the driver manager.
func NewDriverUseCase(drivers repository.DriverRepository, users repository.UserRepository,
	transporters repository.TransporterRepository) *DriverUseCase {
	return &DriverUseCase{drivers: drivers, users: users, transporters: transporters}
}

func (uc *DriverUseCase) actingTransporter(ctx context.Context, act authz.Actor) (*entity.TransporterCompany, error) {
	if act.CompanyID == "" {
		return nil, domain.ErrForbidden
	}
	tc, err := uc.transporters.GetByCompany(ctx, act.CompanyID)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return nil, domain.ErrForbidden
	}
	return tc, nil
}

// ListDrivers returns the acting company's drivers (all of them for a
// superuser).
func (uc *DriverUseCase) ListDrivers(ctx context.Context, act authz.Actor) ([]dto.DriverResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceDriver) {
		return nil, domain.ErrForbidden
	}
	var (
		drivers []*entity.Driver
		err     error
	)
	if act.IsSuperuser() {
		drivers, err = uc.drivers.ListAll(ctx)
	} else {
		var tc *entity.TransporterCompany
		tc, err = uc.actingTransporter(ctx, act)
		if err != nil {
			return nil, err
		}
		drivers, err = uc.drivers.ListByCompany(ctx, tc.ID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		resp, err := uc.toDriverResponse(ctx, d)
		if err != nil {
			return nil, err
		}
		if resp != nil {
			out = append(out, *resp)
		}
	}
	return out, nil
}

// GetDriver returns one driver of the acting company.
func (uc *DriverUseCase) GetDriver(ctx context.Context, act authz.Actor, id string) (*dto.DriverResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceDriver) {
		return nil, domain.ErrForbidden
	}
	driver, err := uc.driverInScope(ctx, act, id)
	if err != nil {
		return nil, err
	}
	resp, err := uc.toDriverResponse(ctx, driver)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, domain.ErrNotFound
	}
	return resp, nil
}

// UpdateDriver applies a partial update to an owned driver's licensing record.
func (uc *DriverUseCase) UpdateDriver(ctx context.Context, act authz.Actor, id string, req dto.UpdateDriverRequest) (*dto.DriverResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceDriver) {
		return nil, domain.ErrForbidden
	}
	driver, err := uc.driverInScope(ctx, act, id)
	if err != nil {
		return nil, err
	}
	if driver.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if req.IDNumber != nil {
		driver.IDNumber = *req.IDNumber
	}
	if req.DriverLicense != nil {
		driver.DriverLicense = *req.DriverLicense
	}
	driver.UpdatedAt = time.Now()
	if err := uc.drivers.Update(ctx, driver); err != nil {
		return nil, err
	}
	resp, err := uc.toDriverResponse(ctx, driver)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, domain.ErrNotFound
	}
	return resp, nil
}

// RemoveDriver soft-deletes the driver record and the backing user account.
func (uc *DriverUseCase) RemoveDriver(ctx context.Context, act authz.Actor, id string) error {
	if !authz.CanWrite(act.Role, authz.ResourceDriver) {
		return domain.ErrForbidden
	}
	driver, err := uc.driverInScope(ctx, act, id)
	if err != nil {
		return err
	}
	if driver.IsDeleted {
		return domain.ErrNotFound
	}
	if err := uc.drivers.SoftDelete(ctx, driver.ID); err != nil {
		return err
	}
	return uc.users.SoftDelete(ctx, driver.UserID)
}

func (uc *DriverUseCase) driverInScope(ctx context.Context, act authz.Actor, id string) (*entity.Driver, error) {
	driver, err := uc.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, domain.ErrNotFound
	}
	if act.IsSuperuser() {
		return driver, nil
	}
	tc, err := uc.actingTransporter(ctx, act)
	if err != nil {
		return nil, err
	}
	if driver.CompanyID != tc.ID {
		return nil, domain.ErrNotFound
	}
	return driver, nil
}

// toDriverResponse joins the backing user, deleted or not, so a removed
// driver still renders on audit reads. A driver with no user row at all
// yields nil and callers skip it.
func (uc *DriverUseCase) toDriverResponse(ctx context.Context, d *entity.Driver) (*dto.DriverResponse, error) {
	user, err := uc.users.GetByID(ctx, d.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &dto.DriverResponse{
		ID:            d.ID,
		IDNumber:      d.IDNumber,
		DriverLicense: d.DriverLicense,
		CompanyID:     d.CompanyID,
		User:          toUserResponse(user),
	}, nil
}
