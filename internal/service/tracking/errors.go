package tracking

import "errors"

var (
	ErrInvalidTrackingID  = errors.New("invalid tracking id")
	ErrInvalidStatusLabel = errors.New("invalid status label")

	ErrTrackingNotFound = errors.New("tracking not found")
)
