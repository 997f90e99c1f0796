package message

import "rvconsign/internal/domain"

type SendRequest struct {
	ToUserID       string   `json:"to_user_id" validate:"required"`
	Message        string   `json:"message" validate:"required"`
	Subject        string   `json:"subject"`
	BookingID      string   `json:"booking_id"`
	AssetID        string   `json:"asset_id"`
	MessageType    string   `json:"message_type"`
	AttachmentURLs []string `json:"attachment_urls"`
}

type MarkReadRequest struct {
	MessageID string `json:"message_id"`
}

type Filter struct {
	UserID  string
	AssetID string
}

// Conversation summarises the thread between the session user and one partner.
type Conversation struct {
	PartnerID   string                `json:"partner_id"`
	PartnerName string                `json:"partner_name"`
	PartnerRole domain.UserRole       `json:"partner_role,omitempty"`
	LastMessage *domain.Communication `json:"last_message"`
	UnreadCount int                   `json:"unread_count"`
}
