package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidParcelID       = errors.New("invalid parcel id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidCost           = errors.New("invalid cost")
	ErrInvalidDeliveryStatus = errors.New("invalid delivery status")

	ErrParcelNotFound = errors.New("parcel not found")

	// ErrPartialUpdate: посылка обновлена, событие записано,
	// но сопутствующее обновление райдера не прошло.
	ErrPartialUpdate = errors.New("partial delivery status update")
)
