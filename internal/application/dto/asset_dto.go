package dto

import "time"

// CreateAssetRequest input for registering a truck or trailer. Ownership is
// never taken from the caller; it is injected from the acting company.
type CreateAssetRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	RegNo   string `json:"reg_no" validate:"required,max=20"`
	Haulage string `json:"haulage" validate:"required,max=20"`
	Type    string `json:"type" validate:"required"`
}

// UpdateAssetRequest partial update; ownership and soft-delete fields
// supplied by callers are ignored.
type UpdateAssetRequest struct {
	Name     *string `json:"name"`
	Haulage  *string `json:"haulage"`
	Type     *string `json:"type"`
	Tracking *bool   `json:"tracking"`
}

// AssetResponse a truck or trailer.
type AssetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnedBy   string    `json:"owned_by"`
	RegNo     string    `json:"reg_no"`
	Haulage   string    `json:"haulage"`
	Type      string    `json:"type"`
	Tracking  bool      `json:"tracking"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CSVUploadResponse outcome of a bulk asset import: per-row failures do not
// abort the remaining rows.
type CSVUploadResponse struct {
	Created int                 `json:"created"`
	Failed  int                 `json:"failed"`
	Errors  map[string][]string `json:"errors,omitempty"` // row number -> messages
}
