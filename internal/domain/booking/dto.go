package booking

import "rvconsign/internal/domain"

type CreateRequest struct {
	AssetID         string `json:"asset_id" validate:"required"`
	RenterID        string `json:"renter_id"`
	StartDate       string `json:"start_date" validate:"required,date"`
	EndDate         string `json:"end_date" validate:"required,date"`
	Status          string `json:"status"`
	SpecialRequests string `json:"special_requests"`
	InternalNotes   string `json:"internal_notes"`
}

// UpdateRequest is a partial update; nil fields are left untouched.
type UpdateRequest struct {
	ID                 string   `json:"id"`
	Status             *string  `json:"status"`
	RenterID           *string  `json:"renter_id"`
	StartDate          *string  `json:"start_date" validate:"omitempty,date"`
	EndDate            *string  `json:"end_date" validate:"omitempty,date"`
	SecurityDeposit    *float64 `json:"security_deposit" validate:"omitempty,gte=0"`
	SpecialRequests    *string  `json:"special_requests"`
	InternalNotes      *string  `json:"internal_notes"`
	ActualCheckinTime  *string  `json:"actual_checkin_time"`
	ActualCheckoutTime *string  `json:"actual_checkout_time"`
	CheckinMileage     *int     `json:"checkin_mileage" validate:"omitempty,gte=0"`
	CheckoutMileage    *int     `json:"checkout_mileage" validate:"omitempty,gte=0"`
}

type Filter struct {
	Status   string
	AssetID  string
	RenterID string
	OwnerID  string
}

// View is a booking row with the asset name joined in.
type View struct {
	domain.Booking
	AssetName string `json:"asset_name"`
}
