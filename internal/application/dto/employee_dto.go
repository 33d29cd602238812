package dto

// CreateEmployeeRequest input for adding an admin/staff user to the acting
// company. Director roles are rejected on this path; the password is
// generated, never supplied.
type CreateEmployeeRequest struct {
	FullName string `json:"full_name" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin staff"`
}

// UpdateEmployeeRequest partial update; Suspend flips is_active.
type UpdateEmployeeRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin staff"`
	Suspend  *bool   `json:"suspend"`
}

// CreateDriverRequest input for a transporter adding a driver: the user
// account plus the licensing record.
type CreateDriverRequest struct {
	FullName      string `json:"full_name" validate:"required,max=150"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	IDNumber      string `json:"id_number" validate:"required,max=20"`
	DriverLicense string `json:"driver_license" validate:"required,max=20"`
}

// DriverResponse a driver with the embedded user account.
type DriverResponse struct {
	ID            string       `json:"id"`
	IDNumber      string       `json:"id_number"`
	DriverLicense string       `json:"driver_license"`
	CompanyID     string       `json:"company_id"`
	User          UserResponse `json:"user"`
}

// UpdateDriverRequest partial driver update.
type UpdateDriverRequest struct {
	IDNumber      *string `json:"id_number"`
	DriverLicense *string `json:"driver_license"`
}
