package renter

import "rvconsign/internal/domain"

// View is a renter with the linked profile's name and email.
type View struct {
	domain.Renter
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// UpdateRequest is a partial update; nil fields are left untouched.
type UpdateRequest struct {
	DriversLicenseNumber  *string `json:"drivers_license_number"`
	DriversLicenseState   *string `json:"drivers_license_state"`
	DriversLicenseExpiry  *string `json:"drivers_license_expiry" validate:"omitempty,date"`
	DateOfBirth           *string `json:"date_of_birth" validate:"omitempty,date"`
	Address               *string `json:"address"`
	City                  *string `json:"city"`
	State                 *string `json:"state"`
	ZipCode               *string `json:"zip_code"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
}
