package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InspectionCheckin  = "checkin"
	InspectionCheckout = "checkout"
)

const (
	SeverityMinor = "minor"
	SeverityMajor = "major"

	// MajorDamageThreshold is the repair estimate above which damage is major.
	MajorDamageThreshold = 500.0
)

const (
	DamageReported  = "reported"
	DamageAssessed  = "assessed"
	DamageRepairing = "repairing"
	DamageResolved  = "resolved"
)

type Inspection struct {
	ID                  string         `json:"id" gorm:"type:varchar(36);primaryKey"`
	BookingID           string         `json:"booking_id" gorm:"type:varchar(36);not null;index"`
	AssetID             string         `json:"asset_id,omitempty" gorm:"type:varchar(36);index"`
	InspectionType      string         `json:"inspection_type" gorm:"type:varchar(16);not null"`
	InspectorID         string         `json:"inspector_id,omitempty" gorm:"type:varchar(36)"`
	InspectionDate      time.Time      `json:"inspection_date" gorm:"not null;index"`
	Mileage             *int           `json:"mileage,omitempty"`
	FuelLevel           string         `json:"fuel_level,omitempty"`
	ExteriorCondition   string         `json:"exterior_condition,omitempty"`
	InteriorCondition   string         `json:"interior_condition,omitempty"`
	MechanicalCondition string         `json:"mechanical_condition,omitempty"`
	ChecklistItems      map[string]any `json:"checklist_items,omitempty" gorm:"serializer:json"`
	DamagesFound        bool           `json:"damages_found"`
	DamageDescription   string         `json:"damage_description,omitempty" gorm:"type:text"`
	EstimatedRepairCost float64        `json:"estimated_repair_cost"`
	PhotoURLs           []string       `json:"photo_urls,omitempty" gorm:"serializer:json"`
	RenterSigned        bool           `json:"renter_signed"`
	Notes               string         `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt           time.Time      `json:"created_at"`
}

func (Inspection) TableName() string {
	return "inspections"
}

func (i *Inspection) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

type DamageReport struct {
	ID                  string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	ReportNumber        string     `json:"report_number" gorm:"uniqueIndex;not null"`
	BookingID           string     `json:"booking_id,omitempty" gorm:"type:varchar(36);index"`
	AssetID             string     `json:"asset_id" gorm:"type:varchar(36);index"`
	InspectionID        string     `json:"inspection_id,omitempty" gorm:"type:varchar(36);index"`
	Title               string     `json:"title" gorm:"not null"`
	Description         string     `json:"description" gorm:"type:text"`
	Severity            string     `json:"severity" gorm:"type:varchar(16)"`
	DiscoveredBy        string     `json:"discovered_by,omitempty"`
	DiscoveryDate       time.Time  `json:"discovery_date"`
	ResponsibleParty    string     `json:"responsible_party,omitempty"`
	RenterID            string     `json:"renter_id,omitempty" gorm:"type:varchar(36)"`
	EstimatedRepairCost float64    `json:"estimated_repair_cost"`
	ActualRepairCost    *float64   `json:"actual_repair_cost,omitempty"`
	RenterChargeAmount  *float64   `json:"renter_charge_amount,omitempty"`
	Status              string     `json:"status" gorm:"type:varchar(32);index"`
	ResolutionDate      *time.Time `json:"resolution_date,omitempty"`
	ResolutionNotes     string     `json:"resolution_notes,omitempty" gorm:"type:text"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (DamageReport) TableName() string {
	return "damage_reports"
}

func (d *DamageReport) BeforeCreate(_ *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// SeverityFor classifies damage by estimated repair cost.
func SeverityFor(estimatedCost float64) string {
	if estimatedCost > MajorDamageThreshold {
		return SeverityMajor
	}
	return SeverityMinor
}
