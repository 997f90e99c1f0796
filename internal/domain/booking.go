package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingInquiry    BookingStatus = "inquiry"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingActive     BookingStatus = "active"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingInquiry, BookingConfirmed, BookingCheckedIn, BookingActive,
		BookingCheckedOut, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID                 string        `json:"id" gorm:"type:varchar(36);primaryKey"`
	BookingNumber      string        `json:"booking_number" gorm:"uniqueIndex;not null"`
	AssetID            string        `json:"asset_id" gorm:"type:varchar(36);not null;index"`
	RenterID           string        `json:"renter_id,omitempty" gorm:"type:varchar(36);index"`
	OwnerID            string        `json:"owner_id,omitempty" gorm:"type:varchar(36);index"`
	StartDate          time.Time     `json:"start_date" gorm:"not null"`
	EndDate            time.Time     `json:"end_date" gorm:"not null;index"`
	TotalNights        int           `json:"total_nights"`
	NightlyRate        float64       `json:"nightly_rate"`
	Subtotal           float64       `json:"subtotal"`
	CleaningFee        float64       `json:"cleaning_fee"`
	SecurityDeposit    float64       `json:"security_deposit"`
	PlatformFee        float64       `json:"platform_fee"`
	TotalAmount        float64       `json:"total_amount"`
	Status             BookingStatus `json:"status" gorm:"type:varchar(32);not null;index"`
	ActualCheckinTime  *time.Time    `json:"actual_checkin_time,omitempty"`
	ActualCheckoutTime *time.Time    `json:"actual_checkout_time,omitempty"`
	CheckinMileage     *int          `json:"checkin_mileage,omitempty"`
	CheckoutMileage    *int          `json:"checkout_mileage,omitempty"`
	SpecialRequests    string        `json:"special_requests,omitempty" gorm:"type:text"`
	InternalNotes      string        `json:"internal_notes,omitempty" gorm:"type:text"`
	HubspotDealID      string        `json:"hubspot_deal_id,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
