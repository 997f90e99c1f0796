package maintenance

type CreateRequest struct {
	AssetID       string   `json:"asset_id" validate:"required"`
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	Priority      string   `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Category      string   `json:"category"`
	EstimatedCost *float64 `json:"estimated_cost" validate:"omitempty,gte=0"`
	ScheduledDate string   `json:"scheduled_date" validate:"omitempty,date"`
}

// UpdateRequest is a partial update; nil fields are left untouched.
type UpdateRequest struct {
	Status          *string  `json:"status"`
	Priority        *string  `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	AssignedTo      *string  `json:"assigned_to"`
	ScheduledDate   *string  `json:"scheduled_date" validate:"omitempty,date"`
	EstimatedCost   *float64 `json:"estimated_cost" validate:"omitempty,gte=0"`
	ActualCost      *float64 `json:"actual_cost" validate:"omitempty,gte=0"`
	VendorName      *string  `json:"vendor_name"`
	VendorContact   *string  `json:"vendor_contact"`
	ResolutionNotes *string  `json:"resolution_notes"`
}

type Filter struct {
	Status  string
	AssetID string
	OwnerID string
}
