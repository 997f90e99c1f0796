package owner

import "errors"

var (
	ErrOwnerNotFound  = errors.New("owner not found")
	ErrInvalidStatus  = errors.New("invalid owner status")
	ErrInvalidSplit   = errors.New("percentages must be between 0 and 100")
	ErrNoTeamAddress  = errors.New("team notification address is not configured")
	ErrMissingContact = errors.New("first_name, last_name and email are required")
)
