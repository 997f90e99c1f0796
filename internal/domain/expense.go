package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseCategory string

const (
	ExpenseMaintenance  ExpenseCategory = "maintenance"
	ExpenseRepair       ExpenseCategory = "repair"
	ExpenseCleaning     ExpenseCategory = "cleaning"
	ExpenseInsurance    ExpenseCategory = "insurance"
	ExpenseRegistration ExpenseCategory = "registration"
	ExpenseStorage      ExpenseCategory = "storage"
	ExpenseFuel         ExpenseCategory = "fuel"
	ExpenseOther        ExpenseCategory = "other"
)

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseMaintenance, ExpenseRepair, ExpenseCleaning, ExpenseInsurance,
		ExpenseRegistration, ExpenseStorage, ExpenseFuel, ExpenseOther:
		return true
	}
	return false
}

// LedgerType maps an expense category onto the transaction enum.
// Categories without a ledger counterpart are booked as maintenance.
func (c ExpenseCategory) LedgerType() TransactionType {
	switch c {
	case ExpenseCleaning:
		return TxCleaning
	case ExpenseInsurance:
		return TxInsurance
	case ExpenseRepair:
		return TxDamage
	default:
		return TxMaintenance
	}
}

type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
)

func (s ExpenseStatus) Valid() bool {
	return s == ExpensePending || s == ExpenseApproved || s == ExpenseRejected
}

type Expense struct {
	ID                         string          `json:"id" gorm:"type:varchar(36);primaryKey"`
	AssetID                    string          `json:"asset_id" gorm:"type:varchar(36);not null;index"`
	OwnerID                    string          `json:"owner_id,omitempty" gorm:"type:varchar(36);index"`
	MaintenanceRequestID       string          `json:"maintenance_request_id,omitempty" gorm:"type:varchar(36)"`
	Category                   ExpenseCategory `json:"category" gorm:"type:varchar(32);not null"`
	Amount                     float64         `json:"amount" gorm:"not null"`
	Description                string          `json:"description" gorm:"not null"`
	Vendor                     string          `json:"vendor,omitempty"`
	Status                     ExpenseStatus   `json:"status" gorm:"type:varchar(32);not null;index"`
	ApprovedBy                 string          `json:"approved_by,omitempty"`
	ApprovedAt                 *time.Time      `json:"approved_at,omitempty"`
	PaidTo                     string          `json:"paid_to,omitempty"`
	PaymentMethod              string          `json:"payment_method,omitempty"`
	PaymentDate                *time.Time      `json:"payment_date,omitempty"`
	DeductFromOwner            bool            `json:"deduct_from_owner"`
	OwnerResponsiblePercentage float64         `json:"owner_responsible_percentage"`
	ReceiptURL                 string          `json:"receipt_url,omitempty"`
	ExpenseDate                time.Time       `json:"expense_date" gorm:"not null;index"`
	CreatedAt                  time.Time       `json:"created_at"`
	UpdatedAt                  time.Time       `json:"updated_at"`
}

func (Expense) TableName() string {
	return "expenses"
}

func (e *Expense) BeforeCreate(_ *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
