package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Renter struct {
	ID                    string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID                string     `json:"user_id,omitempty" gorm:"type:varchar(36);index"`
	DriversLicenseNumber  string     `json:"drivers_license_number,omitempty"`
	DriversLicenseState   string     `json:"drivers_license_state,omitempty"`
	DriversLicenseExpiry  *time.Time `json:"drivers_license_expiry,omitempty"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	Address               string     `json:"address,omitempty"`
	City                  string     `json:"city,omitempty"`
	State                 string     `json:"state,omitempty"`
	ZipCode               string     `json:"zip_code,omitempty"`
	EmergencyContactName  string     `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `json:"emergency_contact_phone,omitempty"`
	TotalBookings         int        `json:"total_bookings"`
	TotalSpent            float64    `json:"total_spent"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func (Renter) TableName() string {
	return "renters"
}

func (r *Renter) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
