package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentType string

const (
	DocRentalReceipt       DocumentType = "rental_receipt"
	DocMaintenanceReceipt  DocumentType = "maintenance_receipt"
	DocCleaningInvoice     DocumentType = "cleaning_invoice"
	DocInsurancePolicy     DocumentType = "insurance_policy"
	DocVehicleRegistration DocumentType = "vehicle_registration"
	DocConsignmentContract DocumentType = "consignment_contract"
	DocRentalAgreement     DocumentType = "rental_agreement"
	DocInspectionReport    DocumentType = "inspection_report"
	DocDamageReport        DocumentType = "damage_report"
	DocOwnerStatement      DocumentType = "owner_statement"
	DocPaymentReceipt      DocumentType = "payment_receipt"
	DocOther               DocumentType = "other"
)

func (t DocumentType) Valid() bool {
	switch t {
	case DocRentalReceipt, DocMaintenanceReceipt, DocCleaningInvoice, DocInsurancePolicy,
		DocVehicleRegistration, DocConsignmentContract, DocRentalAgreement, DocInspectionReport,
		DocDamageReport, DocOwnerStatement, DocPaymentReceipt, DocOther:
		return true
	}
	return false
}

const DocumentActive = "active"

type Document struct {
	ID           string       `json:"id" gorm:"type:varchar(36);primaryKey"`
	AssetID      string       `json:"asset_id,omitempty" gorm:"type:varchar(36);index"`
	OwnerID      string       `json:"owner_id,omitempty" gorm:"type:varchar(36);index"`
	BookingID    string       `json:"booking_id,omitempty" gorm:"type:varchar(36);index"`
	RenterID     string       `json:"renter_id,omitempty" gorm:"type:varchar(36)"`
	ExpenseID    string       `json:"expense_id,omitempty" gorm:"type:varchar(36)"`
	DocumentType DocumentType `json:"document_type" gorm:"type:varchar(32);not null;index"`
	Title        string       `json:"title" gorm:"not null"`
	Description  string       `json:"description,omitempty" gorm:"type:text"`
	FileName     string       `json:"file_name" gorm:"not null"`
	FileURL      string       `json:"file_url" gorm:"not null"`
	StoragePath  string       `json:"storage_path" gorm:"not null"`
	FileSize     int64        `json:"file_size"`
	MimeType     string       `json:"mime_type,omitempty"`
	UploadedBy   string       `json:"uploaded_by,omitempty" gorm:"type:varchar(36)"`
	Status       string       `json:"status" gorm:"type:varchar(16)"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}

func (d *Document) BeforeCreate(_ *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
