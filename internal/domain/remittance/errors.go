package remittance

import "errors"

var (
	ErrOwnerNotFound      = errors.New("owner not found")
	ErrRemittanceNotFound = errors.New("remittance not found")
	ErrMissingFields      = errors.New("owner_id, period_start and period_end are required")
	ErrInvalidPeriod      = errors.New("period_end must not be before period_start")
	ErrInvalidStatus      = errors.New("invalid remittance status")
	ErrNoRecipient        = errors.New("owner has no email address")
)
