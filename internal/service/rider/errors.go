package rider

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRiderID        = errors.New("invalid rider id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidWorkStatus     = errors.New("invalid work status")
	ErrInvalidDecision       = errors.New("invalid decision")

	ErrRiderNotFound      = errors.New("rider not found")
	ErrAlreadyDecided     = errors.New("rider application already decided")
	ErrWorkStatusConflict = errors.New("rider work status conflict")
	ErrConflict           = errors.New("resource already exists")
)
