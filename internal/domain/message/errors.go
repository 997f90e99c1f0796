package message

import "errors"

var (
	ErrMessageNotFound   = errors.New("message not found")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrMissingFields     = errors.New("to_user_id and message are required")
	ErrMissingID         = errors.New("message_id is required")
)
