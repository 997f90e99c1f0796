package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceStatus string

const (
	MaintenanceRequested  MaintenanceStatus = "requested"
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceRequested, MaintenanceScheduled, MaintenanceInProgress,
		MaintenanceCompleted, MaintenanceCancelled:
		return true
	}
	return false
}

// OpenMaintenanceStatuses are the states still worked on.
var OpenMaintenanceStatuses = []MaintenanceStatus{
	MaintenanceRequested, MaintenanceScheduled, MaintenanceInProgress,
}

type MaintenanceRequest struct {
	ID              string            `json:"id" gorm:"type:varchar(36);primaryKey"`
	TicketNumber    string            `json:"ticket_number" gorm:"uniqueIndex;not null"`
	AssetID         string            `json:"asset_id" gorm:"type:varchar(36);not null;index"`
	OwnerID         string            `json:"owner_id,omitempty" gorm:"type:varchar(36);index"`
	ReportedBy      string            `json:"reported_by,omitempty" gorm:"type:varchar(36)"`
	AssignedTo      string            `json:"assigned_to,omitempty"`
	Title           string            `json:"title" gorm:"not null"`
	Description     string            `json:"description" gorm:"type:text"`
	Priority        string            `json:"priority,omitempty" gorm:"type:varchar(16)"`
	Category        string            `json:"category,omitempty"`
	Status          MaintenanceStatus `json:"status" gorm:"type:varchar(32);not null;index"`
	ScheduledDate   *time.Time        `json:"scheduled_date,omitempty"`
	CompletionDate  *time.Time        `json:"completion_date,omitempty"`
	EstimatedCost   *float64          `json:"estimated_cost,omitempty"`
	ActualCost      *float64          `json:"actual_cost,omitempty"`
	VendorName      string            `json:"vendor_name,omitempty"`
	VendorContact   string            `json:"vendor_contact,omitempty"`
	ResolutionNotes string            `json:"resolution_notes,omitempty" gorm:"type:text"`
	HubspotTicketID string            `json:"hubspot_ticket_id,omitempty" gorm:"index"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}

func (m *MaintenanceRequest) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
