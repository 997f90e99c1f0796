package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssetStatus string

const (
	AssetAvailable       AssetStatus = "available"
	AssetInUse           AssetStatus = "in_use"
	AssetMaintenance     AssetStatus = "maintenance"
	AssetInactive        AssetStatus = "inactive"
	AssetPendingApproval AssetStatus = "pending_approval"
)

func (s AssetStatus) Valid() bool {
	switch s {
	case AssetAvailable, AssetInUse, AssetMaintenance, AssetInactive, AssetPendingApproval:
		return true
	}
	return false
}

// AllAssetStatuses is the display order used by dashboards.
var AllAssetStatuses = []AssetStatus{
	AssetAvailable, AssetInUse, AssetMaintenance, AssetInactive, AssetPendingApproval,
}

const (
	DefaultCleaningFee         = 75.0
	DefaultSecurityDeposit     = 500.0
	DefaultMinimumRentalNights = 2
)

// Asset is a consigned RV.
type Asset struct {
	ID                     string      `json:"id" gorm:"type:varchar(36);primaryKey"`
	OwnerID                string      `json:"owner_id" gorm:"type:varchar(36);not null;index"`
	Name                   string      `json:"name" gorm:"not null"`
	Description            string      `json:"description,omitempty" gorm:"type:text"`
	Status                 AssetStatus `json:"status" gorm:"type:varchar(32);not null;index"`
	Year                   int         `json:"year,omitempty"`
	Make                   string      `json:"make,omitempty"`
	Model                  string      `json:"model,omitempty"`
	VIN                    string      `json:"vin,omitempty"`
	LicensePlate           string      `json:"license_plate,omitempty"`
	RVType                 string      `json:"rv_type,omitempty"`
	LengthFeet             float64     `json:"length_feet,omitempty"`
	Sleeps                 int         `json:"sleeps,omitempty"`
	FuelType               string      `json:"fuel_type,omitempty"`
	Mileage                int         `json:"mileage,omitempty"`
	Amenities              []string    `json:"amenities,omitempty" gorm:"serializer:json"`
	StorageLocation        string      `json:"storage_location,omitempty"`
	City                   string      `json:"city,omitempty"`
	State                  string      `json:"state,omitempty"`
	ZipCode                string      `json:"zip_code,omitempty"`
	BasePricePerNight      float64     `json:"base_price_per_night" gorm:"not null"`
	CleaningFee            float64     `json:"cleaning_fee"`
	SecurityDeposit        float64     `json:"security_deposit"`
	MinimumRentalNights    int         `json:"minimum_rental_nights"`
	InsurancePolicyNumber  string      `json:"insurance_policy_number,omitempty"`
	InsuranceExpiryDate    *time.Time  `json:"insurance_expiry_date,omitempty"`
	RegistrationNumber     string      `json:"registration_number,omitempty"`
	RegistrationExpiryDate *time.Time  `json:"registration_expiry_date,omitempty"`
	PrimaryImageURL        string      `json:"primary_image_url,omitempty"`
	ImageURLs              []string    `json:"image_urls,omitempty" gorm:"serializer:json"`
	TotalBookings          int         `json:"total_bookings"`
	TotalRevenue           float64     `json:"total_revenue"`
	CreatedAt              time.Time   `json:"created_at"`
	UpdatedAt              time.Time   `json:"updated_at"`
}

func (Asset) TableName() string {
	return "assets"
}

func (a *Asset) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
