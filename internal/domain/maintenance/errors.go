package maintenance

import "errors"

var (
	ErrRequestNotFound  = errors.New("maintenance request not found")
	ErrAssetNotFound    = errors.New("asset not found")
	ErrInvalidStatus    = errors.New("invalid maintenance status")
	ErrInvalidPriority  = errors.New("priority must be low, medium, high or urgent")
	ErrTicketNumberUsed = errors.New("could not allocate a ticket number")
)
