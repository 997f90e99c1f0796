package crm

import "errors"

var (
	ErrInvalidEntityType = errors.New("type must be owner, booking or maintenance")
	ErrMissingID         = errors.New("id is required")
	ErrEntityNotFound    = errors.New("entity not found")
	ErrInvalidSignature  = errors.New("invalid webhook signature")
	ErrNoBookingNumber   = errors.New("deal name carries no booking number")
)
