package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleManager UserRole = "manager"
	RoleOwner   UserRole = "owner"
	RoleRenter  UserRole = "renter"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleManager, RoleOwner, RoleRenter, RoleAdmin:
		return true
	}
	return false
}

// Profile is a user account. Owner and Renter rows point at it through UserID.
type Profile struct {
	ID               string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Email            string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash     string    `json:"-" gorm:"not null"`
	FullName         string    `json:"full_name,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Role             UserRole  `json:"role" gorm:"type:varchar(20);not null;index"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
	HubspotContactID string    `json:"hubspot_contact_id,omitempty" gorm:"index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
