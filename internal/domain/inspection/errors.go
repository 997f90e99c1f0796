package inspection

import "errors"

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInspectionNotFound   = errors.New("inspection not found")
	ErrDamageReportNotFound = errors.New("damage report not found")
	ErrInvalidType          = errors.New("inspection_type must be checkin or checkout")
	ErrInvalidStatus        = errors.New("invalid damage report status")
)
