package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrAssetNotFound   = errors.New("asset not found")
	ErrInvalidDates    = errors.New("end_date must be after start_date")
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrInvalidTime     = errors.New("timestamps must be RFC3339")
	ErrMissingID       = errors.New("booking id is required")
	ErrNumberExhausted = errors.New("could not allocate a unique booking number")
	ErrStaffOnly       = errors.New("only staff can set the status of a new booking")
)
