package inspection

import "rvconsign/internal/domain"

type CreateRequest struct {
	BookingID           string         `json:"booking_id" validate:"required"`
	AssetID             string         `json:"asset_id"`
	InspectionType      string         `json:"inspection_type" validate:"required,oneof=checkin checkout"`
	InspectionDate      string         `json:"inspection_date" validate:"omitempty,date"`
	Mileage             *int           `json:"mileage" validate:"omitempty,gte=0"`
	FuelLevel           string         `json:"fuel_level"`
	ExteriorCondition   string         `json:"exterior_condition"`
	InteriorCondition   string         `json:"interior_condition"`
	MechanicalCondition string         `json:"mechanical_condition"`
	ChecklistItems      map[string]any `json:"checklist_items"`
	DamagesFound        bool           `json:"damages_found"`
	DamageDescription   string         `json:"damage_description"`
	EstimatedRepairCost float64        `json:"estimated_repair_cost" validate:"gte=0"`
	PhotoURLs           []string       `json:"photo_urls"`
	RenterSigned        bool           `json:"renter_signed"`
	Notes               string         `json:"notes"`
}

// CreateResult carries the inspection and, when damage was found, the report
// written with it.
type CreateResult struct {
	Inspection   *domain.Inspection   `json:"inspection"`
	DamageReport *domain.DamageReport `json:"damage_report,omitempty"`
}

type Filter struct {
	BookingID string
	AssetID   string
	OwnerID   string
	RenterID  string
}

type DamageFilter struct {
	AssetID string
	Status  string
	OwnerID string
}

type DamageUpdateRequest struct {
	Status             *string  `json:"status" validate:"omitempty,oneof=reported assessed repairing resolved"`
	ResponsibleParty   *string  `json:"responsible_party"`
	ActualRepairCost   *float64 `json:"actual_repair_cost" validate:"omitempty,gte=0"`
	RenterChargeAmount *float64 `json:"renter_charge_amount" validate:"omitempty,gte=0"`
	ResolutionNotes    *string  `json:"resolution_notes"`
}
