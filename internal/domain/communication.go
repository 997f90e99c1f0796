package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultMessageType = "general"

// Communication is a direct message between two profiles.
type Communication struct {
	ID             string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	FromUserID     string     `json:"from_user_id" gorm:"type:varchar(36);index"`
	ToUserID       string     `json:"to_user_id" gorm:"type:varchar(36);index"`
	BookingID      string     `json:"booking_id,omitempty" gorm:"type:varchar(36)"`
	AssetID        string     `json:"asset_id,omitempty" gorm:"type:varchar(36);index"`
	Subject        string     `json:"subject,omitempty"`
	Message        string     `json:"message" gorm:"type:text;not null"`
	MessageType    string     `json:"message_type" gorm:"type:varchar(32)"`
	IsRead         bool       `json:"is_read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	AttachmentURLs []string   `json:"attachment_urls,omitempty" gorm:"serializer:json"`
	CreatedAt      time.Time  `json:"created_at" gorm:"index"`
}

func (Communication) TableName() string {
	return "communications"
}

func (c *Communication) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
