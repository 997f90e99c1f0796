package remittance

import "time"

type PeriodRequest struct {
	OwnerID     string `json:"owner_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

type UpdateRequest struct {
	Status           *string `json:"status"`
	PaymentMethod    *string `json:"payment_method"`
	PaymentReference *string `json:"payment_reference"`
	PaymentDate      *string `json:"payment_date" validate:"omitempty,date"`
	Notes            *string `json:"notes"`
}

type Filter struct {
	OwnerID string
	Status  string
}

type OwnerSummary struct {
	ID                     string  `json:"id"`
	BusinessName           string  `json:"business_name"`
	RevenueSplitPercentage float64 `json:"revenue_split_percentage"`
}

type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type BookingLine struct {
	ID            string    `json:"id"`
	BookingNumber string    `json:"booking_number"`
	AssetName     string    `json:"asset_name"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Amount        float64   `json:"amount"`
	CleaningFee   float64   `json:"-"`
}

type ExpenseLine struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}

// Calculation is the payout breakdown for an owner and period.
type Calculation struct {
	Owner           OwnerSummary  `json:"owner"`
	Period          Period        `json:"period"`
	GrossIncome     float64       `json:"gross_income"`
	PlatformFees    float64       `json:"platform_fees"`
	CleaningFees    float64       `json:"cleaning_fees"`
	Expenses        float64       `json:"expenses"`
	TotalDeductions float64       `json:"total_deductions"`
	NetIncome       float64       `json:"net_income"`
	OwnerPayout     float64       `json:"owner_payout"`
	BookingsCount   int           `json:"bookings_count"`
	ExpensesCount   int           `json:"expenses_count"`
	Bookings        []BookingLine `json:"bookings"`
	ExpenseItems    []ExpenseLine `json:"expense_items"`
}
