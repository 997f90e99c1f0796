package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RemittanceStatus string

const (
	RemittancePending    RemittanceStatus = "pending"
	RemittanceProcessing RemittanceStatus = "processing"
	RemittancePaid       RemittanceStatus = "paid"
)

func (s RemittanceStatus) Valid() bool {
	return s == RemittancePending || s == RemittanceProcessing || s == RemittancePaid
}

// Remittance is a persisted owner payout statement for a period.
type Remittance struct {
	ID                   string           `json:"id" gorm:"type:varchar(36);primaryKey"`
	RemittanceNumber     string           `json:"remittance_number" gorm:"uniqueIndex;not null"`
	OwnerID              string           `json:"owner_id" gorm:"type:varchar(36);not null;index"`
	PeriodStart          time.Time        `json:"period_start"`
	PeriodEnd            time.Time        `json:"period_end"`
	GrossRentalIncome    float64          `json:"gross_rental_income"`
	PlatformFees         float64          `json:"platform_fees"`
	CleaningFees         float64          `json:"cleaning_fees"`
	MaintenanceExpenses  float64          `json:"maintenance_expenses"`
	OtherExpenses        float64          `json:"other_expenses"`
	TotalDeductions      float64          `json:"total_deductions"`
	NetIncome            float64          `json:"net_income"`
	OwnerSplitPercentage float64          `json:"owner_split_percentage"`
	OwnerPayoutAmount    float64          `json:"owner_payout_amount"`
	BookingIDs           []string         `json:"booking_ids" gorm:"serializer:json"`
	ExpenseIDs           []string         `json:"expense_ids" gorm:"serializer:json"`
	Status               RemittanceStatus `json:"status" gorm:"type:varchar(32);not null;index"`
	PaymentMethod        string           `json:"payment_method,omitempty"`
	PaymentDate          *time.Time       `json:"payment_date,omitempty"`
	PaymentReference     string           `json:"payment_reference,omitempty"`
	GeneratedAt          time.Time        `json:"generated_at"`
	SentAt               *time.Time       `json:"sent_at,omitempty"`
	Notes                string           `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

func (Remittance) TableName() string {
	return "remittances"
}

func (r *Remittance) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
