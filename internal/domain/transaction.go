package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TxRentalIncome TransactionType = "rental_income"
	TxMaintenance  TransactionType = "maintenance"
	TxCleaning     TransactionType = "cleaning"
	TxInsurance    TransactionType = "insurance"
	TxPlatformFee  TransactionType = "platform_fee"
	TxDamage       TransactionType = "damage"
	TxRefund       TransactionType = "refund"
	TxRemittance   TransactionType = "remittance"
)

const (
	TxStatusPending   = "pending"
	TxStatusCompleted = "completed"
)

// Transaction is a signed ledger entry: income positive, expenses negative.
type Transaction struct {
	ID              string          `json:"id" gorm:"type:varchar(36);primaryKey"`
	BookingID       string          `json:"booking_id,omitempty" gorm:"type:varchar(36);index"`
	AssetID         string          `json:"asset_id,omitempty" gorm:"type:varchar(36);index"`
	OwnerID         string          `json:"owner_id,omitempty" gorm:"type:varchar(36);index"`
	RenterID        string          `json:"renter_id,omitempty" gorm:"type:varchar(36)"`
	ExpenseID       string          `json:"expense_id,omitempty" gorm:"type:varchar(36);index"`
	TransactionType TransactionType `json:"transaction_type" gorm:"type:varchar(32);not null;index"`
	Amount          float64         `json:"amount" gorm:"not null"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category,omitempty"`
	ReferenceNumber string          `json:"reference_number,omitempty" gorm:"index"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	Status          string          `json:"status" gorm:"type:varchar(32);index"`
	TransactionDate time.Time       `json:"transaction_date" gorm:"not null"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
