package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnerStatus string

const (
	OwnerPendingApproval OwnerStatus = "pending_approval"
	OwnerActive          OwnerStatus = "active"
	OwnerInactive        OwnerStatus = "inactive"
)

const (
	DefaultRevenueSplitPercentage = 70.0
	DefaultPlatformFeePercentage  = 10.0
	DefaultContractType           = "standard"
)

// Owner is an RV investor consigning assets to the platform.
type Owner struct {
	ID                      string      `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID                  string      `json:"user_id,omitempty" gorm:"type:varchar(36);index"`
	BusinessName            string      `json:"business_name,omitempty"`
	ContactName             string      `json:"contact_name,omitempty"`
	Email                   string      `json:"email,omitempty" gorm:"index"`
	Phone                   string      `json:"phone,omitempty"`
	Address                 string      `json:"address,omitempty"`
	City                    string      `json:"city,omitempty"`
	State                   string      `json:"state,omitempty"`
	ZipCode                 string      `json:"zip_code,omitempty"`
	TaxID                   string      `json:"tax_id,omitempty"`
	PreferredPayoutMethod   string      `json:"preferred_payout_method,omitempty"`
	RevenueSplitPercentage  float64     `json:"revenue_split_percentage" gorm:"not null"`
	PlatformFeePercentage   float64     `json:"platform_fee_percentage" gorm:"not null"`
	ContractType            string      `json:"contract_type,omitempty"`
	ExpenseCapMonthly       *float64    `json:"expense_cap_monthly,omitempty"`
	MinimumGuaranteeMonthly *float64    `json:"minimum_guarantee_monthly,omitempty"`
	Status                  OwnerStatus `json:"status" gorm:"type:varchar(32);index"`
	Notes                   string      `json:"notes,omitempty" gorm:"type:text"`
	HubspotContactID        string      `json:"hubspot_contact_id,omitempty"`
	CreatedAt               time.Time   `json:"created_at"`
	UpdatedAt               time.Time   `json:"updated_at"`
}

func (Owner) TableName() string {
	return "owners"
}

func (o *Owner) BeforeCreate(_ *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
