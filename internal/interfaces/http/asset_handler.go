package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/application/usecase"
)

// AssetHandler serves the transporter fleet surface: trucks and trailers,
// including CSV bulk upload.
type AssetHandler struct {
	uc       *usecase.AssetUseCase
	friendly bool
}

// NewAssetHandler builds the asset handler.
func NewAssetHandler(uc *usecase.AssetUseCase, friendlyEmptyLists bool) *AssetHandler {
	return &AssetHandler{uc: uc, friendly: friendlyEmptyLists}
}

// CreateTruck godoc
// @Summary      Register a truck
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "Truck details"
// @Success      201   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assets/truck [post]
func (h *AssetHandler) CreateTruck(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateTruck(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, "truck", err)
	}
	return created(c, "truck", out, "Truck registered.")
}

// ListTrucks godoc
// @Summary      List the acting company's trucks
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AssetResponse
// @Router       /api/assets/truck [get]
func (h *AssetHandler) ListTrucks(c *fiber.Ctx) error {
	out, err := h.uc.ListTrucks(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, "truck", err)
	}
	return listResult(c, "trucks", len(out), out, h.friendly)
}

// GetTruck godoc
// @Summary      Truck by id
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Truck id"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/truck/{id} [get]
func (h *AssetHandler) GetTruck(c *fiber.Ctx) error {
	out, err := h.uc.GetTruck(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, "truck", err)
	}
	return ok(c, "truck", out)
}

// UpdateTruck godoc
// @Summary      Update a truck
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Truck id"
// @Param        body  body  dto.UpdateAssetRequest  true  "Fields to change"
// @Success      200   {object}  dto.AssetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets/truck/{id} [put]
func (h *AssetHandler) UpdateTruck(c *fiber.Ctx) error {
	var in dto.UpdateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateTruck(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, "truck", err)
	}
	return ok(c, "truck", out)
}

// RemoveTruck godoc
// @Summary      Remove (soft-delete) a truck
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Truck id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/truck/{id} [delete]
func (h *AssetHandler) RemoveTruck(c *fiber.Ctx) error {
	if err := h.uc.RemoveTruck(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, "truck", err)
	}
	return deleted(c, "truck")
}

// ImportTrucks godoc
// @Summary      Bulk-register trucks from a CSV file
// @Tags         assets
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV with header name,reg_no,haulage,type"
// @Success      200   {object}  dto.CSVUploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assets/truck-csv-upload [post]
func (h *AssetHandler) ImportTrucks(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "A CSV file is required in the 'file' field."})
	}
	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "The uploaded file could not be read."})
	}
	defer f.Close()
	out, err := h.uc.ImportTrucksCSV(c.Context(), GetActor(c), f)
	if err != nil {
		return respondError(c, "truck", err)
	}
	return ok(c, "upload", out)
}

// CreateTrailer godoc
// @Summary      Register a trailer
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "Trailer details"
// @Success      201   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assets/trailer [post]
func (h *AssetHandler) CreateTrailer(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateTrailer(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, "trailer", err)
	}
	return created(c, "trailer", out, "Trailer registered.")
}

// ListTrailers godoc
// @Summary      List the acting company's trailers
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AssetResponse
// @Router       /api/assets/trailer [get]
func (h *AssetHandler) ListTrailers(c *fiber.Ctx) error {
	out, err := h.uc.ListTrailers(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, "trailer", err)
	}
	return listResult(c, "trailers", len(out), out, h.friendly)
}

// GetTrailer godoc
// @Summary      Trailer by id
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Trailer id"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/trailer/{id} [get]
func (h *AssetHandler) GetTrailer(c *fiber.Ctx) error {
	out, err := h.uc.GetTrailer(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, "trailer", err)
	}
	return ok(c, "trailer", out)
}

// UpdateTrailer godoc
// @Summary      Update a trailer
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Trailer id"
// @Param        body  body  dto.UpdateAssetRequest  true  "Fields to change"
// @Success      200   {object}  dto.AssetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets/trailer/{id} [put]
func (h *AssetHandler) UpdateTrailer(c *fiber.Ctx) error {
	var in dto.UpdateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateTrailer(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, "trailer", err)
	}
	return ok(c, "trailer", out)
}

// RemoveTrailer godoc
// @Summary      Remove (soft-delete) a trailer
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Trailer id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/trailer/{id} [delete]
func (h *AssetHandler) RemoveTrailer(c *fiber.Ctx) error {
	if err := h.uc.RemoveTrailer(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, "trailer", err)
	}
	return deleted(c, "trailer")
}

// ImportTrailers godoc
// @Summary      Bulk-register trailers from a CSV file
// @Tags         assets
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV with header name,reg_no,haulage,type"
// @Success      200   {object}  dto.CSVUploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assets/trailer-csv-upload [post]
func (h *AssetHandler) ImportTrailers(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "A CSV file is required in the 'file' field."})
	}
	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "The uploaded file could not be read."})
	}
	defer f.Close()
	out, err := h.uc.ImportTrailersCSV(c.Context(), GetActor(c), f)
	if err != nil {
		return respondError(c, "trailer", err)
	}
	return ok(c, "upload", out)
}
