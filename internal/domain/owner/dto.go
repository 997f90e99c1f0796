package owner

import "rvconsign/internal/domain"

// View is an owner row with its asset count.
type View struct {
	domain.Owner
	AssetCount int `json:"asset_count"`
}

// Detail is an owner with its assets.
type Detail struct {
	domain.Owner
	Assets []domain.Asset `json:"assets"`
}

// UpdateRequest is a partial update; nil fields are left untouched.
type UpdateRequest struct {
	BusinessName            *string  `json:"business_name"`
	ContactName             *string  `json:"contact_name"`
	Email                   *string  `json:"email" validate:"omitempty,email"`
	Phone                   *string  `json:"phone"`
	Address                 *string  `json:"address"`
	City                    *string  `json:"city"`
	State                   *string  `json:"state"`
	ZipCode                 *string  `json:"zip_code"`
	TaxID                   *string  `json:"tax_id"`
	PreferredPayoutMethod   *string  `json:"preferred_payout_method"`
	RevenueSplitPercentage  *float64 `json:"revenue_split_percentage"`
	PlatformFeePercentage   *float64 `json:"platform_fee_percentage"`
	ContractType            *string  `json:"contract_type"`
	ExpenseCapMonthly       *float64 `json:"expense_cap_monthly" validate:"omitempty,gte=0"`
	MinimumGuaranteeMonthly *float64 `json:"minimum_guarantee_monthly" validate:"omitempty,gte=0"`
	Status                  *string  `json:"status"`
	Notes                   *string  `json:"notes"`
}

// OnboardRequest is the public owner application form.
type OnboardRequest struct {
	FirstName    string  `json:"first_name" validate:"required"`
	LastName     string  `json:"last_name" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        string  `json:"phone"`
	Company      string  `json:"company"`
	VehicleYear  int     `json:"vehicle_year" validate:"required,gte=1950,lte=2100"`
	VehicleMake  string  `json:"vehicle_make" validate:"required"`
	VehicleModel string  `json:"vehicle_model" validate:"required"`
	RVType       string  `json:"rv_type"`
	BasePrice    float64 `json:"base_price" validate:"gte=0"`
	Notes        string  `json:"notes"`
}

type OnboardResult struct {
	Owner *domain.Owner `json:"owner"`
	Asset *domain.Asset `json:"asset"`
}

type Earnings struct {
	OwnerID           string  `json:"owner_id"`
	TotalRevenue      float64 `json:"total_revenue"`
	CompletedBookings int     `json:"completed_bookings"`
	ApprovedExpenses  float64 `json:"approved_expenses"`
	PaidOut           float64 `json:"paid_out"`
	PendingPayout     float64 `json:"pending_payout"`
	AssetCount        int     `json:"asset_count"`
}
