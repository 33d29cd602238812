package dto

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Fields carries field-scoped validation messages when present.
	Fields map[string][]string `json:"fields,omitempty"`
}
