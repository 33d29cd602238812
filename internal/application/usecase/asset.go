package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/domain"
	"github.com/okwaroh/twende-logistics/internal/domain/authz"
	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
)

// AssetUseCase manages a transporter's trucks and trailers. The two asset
// kinds share validation and scoping; only the type vocabulary differs.
type AssetUseCase struct {
	trucks       repository.TruckRepository
	trailers     repository.TrailerRepository
	transporters repository.TransporterRepository
}

// NewAssetUseCase builds the asset manager.
func NewAssetUseCase(trucks repository.TruckRepository, trailers repository.TrailerRepository,
	transporters repository.TransporterRepository) *AssetUseCase {
	return &AssetUseCase{trucks: trucks, trailers: trailers, transporters: transporters}
}

// actingTransporter resolves the actor's transporter specialization. A
// cargo-owner company (or an unattached actor) has none and may not touch
// assets.
func (uc *AssetUseCase) actingTransporter(ctx context.Context, act authz.Actor) (*entity.TransporterCompany, error) {
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

// CreateTruck registers a truck owned by the acting transporter company.
func (uc *AssetUseCase) CreateTruck(ctx context.Context, act authz.Actor, req dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceAsset) {
		return nil, domain.ErrForbidden
	}
	tc, err := uc.actingTransporter(ctx, act)
	if err != nil {
		return nil, err
	}
	if err := validateAsset(req, entity.TruckTypes); err != nil {
		return nil, err
	}
	now := time.Now()
	truck := &entity.Truck{
		ID:        uuid.NewString(),
		Name:      req.Name,
		OwnedByID: tc.ID,
		RegNo:     req.RegNo,
		Haulage:   req.Haulage,
		Type:      req.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.trucks.Create(ctx, truck); err != nil {
		return nil, err
	}
	out := toTruckResponse(truck)
	return &out, nil
}

// ListTrucks returns the acting company's trucks; superusers see the whole
// fleet registry.
func (uc *AssetUseCase) ListTrucks(ctx context.Context, act authz.Actor) ([]dto.AssetResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceAsset) {
		return nil, domain.ErrForbidden
	}
	if act.IsSuperuser() {
		trucks, err := uc.trucks.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return toTruckResponses(trucks), nil
	}
	tc, err := uc.actingTransporter(ctx, act)
	if err != nil {
		return nil, err
	}
	trucks, err := uc.trucks.ListByOwner(ctx, tc.ID)
	if err != nil {
		return nil, err
	}
	return toTruckResponses(trucks), nil
}

// GetTruck returns one truck of the acting company.
func (uc *AssetUseCase) GetTruck(ctx context.Context, act authz.Actor, id string) (*dto.AssetResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceAsset) {
		return nil, domain.ErrForbidden
	}
	truck, err := uc.truckInScope(ctx, act, id)
	if err != nil {
		return nil, err
	}
	out := toTruckResponse(truck)
	return &out, nil
}

// UpdateTruck applies a partial update to an owned truck.
func (uc *AssetUseCase) UpdateTruck(ctx context.Context, act authz.Actor, id string, req dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceAsset) {
		return nil, domain.ErrForbidden
	}
	truck, err := uc.truckInScope(ctx, act, id)
	if err != nil {
		return nil, err
	}
	if truck.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if req.Name != nil {
		truck.Name = *req.Name
	}
	if req.Haulage != nil {
		truck.Haulage = *req.Haulage
	}
	if req.Type != nil {
		if !entity.ValidAssetType(*req.Type, entity.TruckTypes) {
			return nil, domain.NewValidationError("type", unknownTypeMessage(entity.TruckTypes))
		}
		truck.Type = *req.Type
	}
	if req.Tracking != nil {
		truck.Tracking = *req.Tracking
	}
	truck.UpdatedAt = time.Now()
	if err := uc.trucks.Update(ctx, truck); err != nil {
		return nil, err
	}
	out := toTruckResponse(truck)
	return &out, nil
}

// RemoveTruck soft-deletes an owned truck.
func (uc *AssetUseCase) RemoveTruck(ctx context.Context, act authz.Actor, id string) error {
	if !authz.CanWrite(act.Role, authz.ResourceAsset) {
		return domain.ErrForbidden
	}
	truck, err := uc.truckInScope(ctx, act, id)
	if err != nil {
		return err
	}
	if truck.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.trucks.SoftDelete(ctx, truck.ID)
}

// ImportTrucksCSV bulk-registers trucks from a CSV stream with the header
// name,reg_no,haulage,type. Bad rows are reported per row number and do not
// stop the rest of the file.
func (uc *AssetUseCase) ImportTrucksCSV(ctx context.Context, act authz.Actor, r io.Reader) (*dto.CSVUploadResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceAsset) {
		return nil, domain.ErrForbidden
	}
	tc, err := uc.actingTransporter(ctx, act)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domain.NewValidationError("file", "The CSV file is empty or unreadable.")
	}
	cols, err := truckCSVColumns(header)
	if err != nil {
		return nil, err
	}

	result := &dto.CSVUploadResponse{Errors: map[string][]string{}}
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		key := fmt.Sprintf("row_%d", row)
		if err != nil {
			result.Failed++
			result.Errors[key] = append(result.Errors[key], "Malformed CSV row.")
			continue
		}
		req := dto.CreateAssetRequest{
			Name:    record[cols.name],
			RegNo:   record[cols.regNo],
			Haulage: record[cols.haulage],
			Type:    record[cols.assetType],
		}
		if err := validateAsset(req, entity.TruckTypes); err != nil {
			result.Failed++
			result.Errors[key] = append(result.Errors[key], flattenValidation(err)...)
			continue
		}
		now := time.Now()
		truck := &entity.Truck{
			ID:        uuid.NewString(),
			Name:      req.Name,
			OwnedByID: tc.ID,
			RegNo:     req.RegNo,
			Haulage:   req.Haulage,
			Type:      req.Type,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.trucks.Create(ctx, truck); err != nil {
			var dup *domain.DuplicateFieldError
			if errors.As(err, &dup) {
				result.Failed++
				result.Errors[key] = append(result.Errors[key],
					fmt.Sprintf("A truck is already registered with this %s.", dup.Field))
				continue
			}
			return nil, err
		}
		result.Created++
	}
	if len(result.Errors) == 0 {
		result.Errors = nil
	}
	return result, nil
}

// CreateTrailer registers a trailer owned by the acting transporter company.
func (uc *AssetUseCase) CreateTrailer(ctx context.Context, act authz.Actor, req dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceAsset) {
		return nil, domain.ErrForbidden
	}
	tc, err := uc.actingTransporter(ctx, act)
	if err != nil {
		return nil, err
	}
	if err := validateAsset(req, entity.TrailerTypes); err != nil {
		return nil, err
	}
	now := time.Now()
	trailer := &entity.Trailer{
		ID:        uuid.NewString(),
		Name:      req.Name,
		OwnedByID: tc.ID,
		RegNo:     req.RegNo,
		Haulage:   req.Haulage,
		Type:      req.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.trailers.Create(ctx, trailer); err != nil {
		return nil, err
	}
	out := toTrailerResponse(trailer)
	return &out, nil
}

// ListTrailers returns the acting company's trailers (all of them for a
// superuser).
func (uc *AssetUseCase) ListTrailers(ctx context.Context, act authz.Actor) ([]dto.AssetResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceAsset) {
		return nil, domain.ErrForbidden
	}
	if act.IsSuperuser() {
		trailers, err := uc.trailers.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return toTrailerResponses(trailers), nil
	}
	tc, err := uc.actingTransporter(ctx, act)
	if err != nil {
		return nil, err
	}
	trailers, err := uc.trailers.ListByOwner(ctx, tc.ID)
	if err != nil {
		return nil, err
	}
	return toTrailerResponses(trailers), nil
}

// GetTrailer returns one trailer of the acting company.
func (uc *AssetUseCase) GetTrailer(ctx context.Context, act authz.Actor, id string) (*dto.AssetResponse, error) {
	if !authz.CanRead(act.Role, authz.ResourceAsset) {
		return nil, domain.ErrForbidden
	}
	trailer, err := uc.trailerInScope(ctx, act, id)
	if err != nil {
		return nil, err
	}
	out := toTrailerResponse(trailer)
	return &out, nil
}

// UpdateTrailer applies a partial update to an owned trailer.
func (uc *AssetUseCase) UpdateTrailer(ctx context.Context, act authz.Actor, id string, req dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceAsset) {
		return nil, domain.ErrForbidden
	}
	trailer, err := uc.trailerInScope(ctx, act, id)
	if err != nil {
		return nil, err
	}
	if trailer.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if req.Name != nil {
		trailer.Name = *req.Name
	}
	if req.Haulage != nil {
		trailer.Haulage = *req.Haulage
	}
	if req.Type != nil {
		if !entity.ValidAssetType(*req.Type, entity.TrailerTypes) {
			return nil, domain.NewValidationError("type", unknownTypeMessage(entity.TrailerTypes))
		}
		trailer.Type = *req.Type
	}
	if req.Tracking != nil {
		trailer.Tracking = *req.Tracking
	}
	trailer.UpdatedAt = time.Now()
	if err := uc.trailers.Update(ctx, trailer); err != nil {
		return nil, err
	}
	out := toTrailerResponse(trailer)
	return &out, nil
}

// RemoveTrailer soft-deletes an owned trailer.
func (uc *AssetUseCase) RemoveTrailer(ctx context.Context, act authz.Actor, id string) error {
	if !authz.CanWrite(act.Role, authz.ResourceAsset) {
		return domain.ErrForbidden
	}
	trailer, err := uc.trailerInScope(ctx, act, id)
	if err != nil {
		return err
	}
	if trailer.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.trailers.SoftDelete(ctx, trailer.ID)
}

// ImportTrailersCSV bulk-registers trailers from a CSV stream, same contract
// as the truck import.
func (uc *AssetUseCase) ImportTrailersCSV(ctx context.Context, act authz.Actor, r io.Reader) (*dto.CSVUploadResponse, error) {
	if !authz.CanWrite(act.Role, authz.ResourceAsset) {
		return nil, domain.ErrForbidden
	}
	tc, err := uc.actingTransporter(ctx, act)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domain.NewValidationError("file", "The CSV file is empty or unreadable.")
	}
	cols, err := truckCSVColumns(header)
	if err != nil {
		return nil, err
	}

	result := &dto.CSVUploadResponse{Errors: map[string][]string{}}
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		key := fmt.Sprintf("row_%d", row)
		if err != nil {
			result.Failed++
			result.Errors[key] = append(result.Errors[key], "Malformed CSV row.")
			continue
		}
		req := dto.CreateAssetRequest{
			Name:    record[cols.name],
			RegNo:   record[cols.regNo],
			Haulage: record[cols.haulage],
			Type:    record[cols.assetType],
		}
		if err := validateAsset(req, entity.TrailerTypes); err != nil {
			result.Failed++
			result.Errors[key] = append(result.Errors[key], flattenValidation(err)...)
			continue
		}
		now := time.Now()
		trailer := &entity.Trailer{
			ID:        uuid.NewString(),
			Name:      req.Name,
			OwnedByID: tc.ID,
			RegNo:     req.RegNo,
			Haulage:   req.Haulage,
			Type:      req.Type,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.trailers.Create(ctx, trailer); err != nil {
			var dup *domain.DuplicateFieldError
			if errors.As(err, &dup) {
				result.Failed++
				result.Errors[key] = append(result.Errors[key],
					fmt.Sprintf("A trailer is already registered with this %s.", dup.Field))
				continue
			}
			return nil, err
		}
		result.Created++
	}
	if len(result.Errors) == 0 {
		result.Errors = nil
	}
	return result, nil
}

// truckInScope loads a truck and checks the acting company owns it.
// Out-of-scope assets answer not-found. Soft-deleted rows resolve for the
// owner and superusers so deletions stay auditable; mutating operations
// reject them separately.
func (uc *AssetUseCase) truckInScope(ctx context.Context, act authz.Actor, id string) (*entity.Truck, error) {
	truck, err := uc.trucks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, domain.ErrNotFound
	}
	if act.IsSuperuser() {
		return truck, nil
	}
	tc, err := uc.actingTransporter(ctx, act)
	if err != nil {
		return nil, err
	}
	if truck.OwnedByID != tc.ID {
		return nil, domain.ErrNotFound
	}
	return truck, nil
}

func (uc *AssetUseCase) trailerInScope(ctx context.Context, act authz.Actor, id string) (*entity.Trailer, error) {
	trailer, err := uc.trailers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trailer == nil {
		return nil, domain.ErrNotFound
	}
	if act.IsSuperuser() {
		return trailer, nil
	}
	tc, err := uc.actingTransporter(ctx, act)
	if err != nil {
		return nil, err
	}
	if trailer.OwnedByID != tc.ID {
		return nil, domain.ErrNotFound
	}
	return trailer, nil
}

func validateAsset(req dto.CreateAssetRequest, allowedTypes []string) error {
	if err := domain.RequireAll(map[string]string{
		"name":    req.Name,
		"reg_no":  req.RegNo,
		"haulage": req.Haulage,
		"type":    req.Type,
	}); err != nil {
		return err
	}
	if !entity.ValidAssetType(req.Type, allowedTypes) {
		return domain.NewValidationError("type", unknownTypeMessage(allowedTypes))
	}
	return nil
}

func unknownTypeMessage(allowed []string) string {
	return "Type must be one of: " + strings.Join(allowed, ", ") + "."
}

type truckCSVLayout struct {
	name, regNo, haulage, assetType int
}

// truckCSVColumns maps the header to column positions so column order in the
// uploaded file does not matter.
func truckCSVColumns(header []string) (truckCSVLayout, error) {
	layout := truckCSVLayout{name: -1, regNo: -1, haulage: -1, assetType: -1}
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "name":
			layout.name = i
		case "reg_no":
			layout.regNo = i
		case "haulage":
			layout.haulage = i
		case "type":
			layout.assetType = i
		}
	}
	if layout.name < 0 || layout.regNo < 0 || layout.haulage < 0 || layout.assetType < 0 {
		return layout, domain.NewValidationError("file", "The CSV header must contain name, reg_no, haulage and type.")
	}
	return layout, nil
}

// flattenValidation renders a validation error as flat messages for the CSV
// per-row report.
func flattenValidation(err error) []string {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	var out []string
	for field, messages := range ve.Fields {
		for _, m := range messages {
			out = append(out, field+": "+m)
		}
	}
	return out
}

func toTruckResponse(t *entity.Truck) dto.AssetResponse {
	return dto.AssetResponse{
		ID:        t.ID,
		Name:      t.Name,
		OwnedBy:   t.OwnedByID,
		RegNo:     t.RegNo,
		Haulage:   t.Haulage,
		Type:      t.Type,
		Tracking:  t.Tracking,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toTruckResponses(trucks []*entity.Truck) []dto.AssetResponse {
	out := make([]dto.AssetResponse, 0, len(trucks))
	for _, t := range trucks {
		out = append(out, toTruckResponse(t))
	}
	return out
}

func toTrailerResponse(t *entity.Trailer) dto.AssetResponse {
	return dto.AssetResponse{
		ID:        t.ID,
		Name:      t.Name,
		OwnedBy:   t.OwnedByID,
		RegNo:     t.RegNo,
		Haulage:   t.Haulage,
		Type:      t.Type,
		Tracking:  t.Tracking,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toTrailerResponses(trailers []*entity.Trailer) []dto.AssetResponse {
	out := make([]dto.AssetResponse, 0, len(trailers))
	for _, t := range trailers {
		out = append(out, toTrailerResponse(t))
	}
	return out
}
