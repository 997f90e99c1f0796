package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CRMEntity string

const (
	CRMOwner       CRMEntity = "owner"
	CRMBooking     CRMEntity = "booking"
	CRMMaintenance CRMEntity = "maintenance"
)

func (e CRMEntity) Valid() bool {
	return e == CRMOwner || e == CRMBooking || e == CRMMaintenance
}

const (
	OutboxPending = "pending"
	OutboxDone    = "done"
	OutboxDead    = "dead"
)

// CRMOutbox holds one row per entity whose last CRM push failed.
type CRMOutbox struct {
	ID         string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	EntityType CRMEntity `json:"entity_type" gorm:"type:varchar(16);not null;uniqueIndex:idx_crm_outbox_entity"`
	EntityID   string    `json:"entity_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_crm_outbox_entity"`
	Status     string    `json:"status" gorm:"type:varchar(16);not null;index"`
	Attempts   int       `json:"attempts"`
	LastError  string    `json:"last_error,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (CRMOutbox) TableName() string {
	return "crm_outbox"
}

func (o *CRMOutbox) BeforeCreate(_ *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
