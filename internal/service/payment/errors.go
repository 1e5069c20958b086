package payment

import "errors"

var (
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrInvalidEmail     = errors.New("invalid email")

	ErrPaymentNotFound      = errors.New("payment not found")
	ErrSessionNotFound      = errors.New("checkout session not found")
	ErrParcelAlreadyPaid    = errors.New("parcel already paid")
	ErrDuplicateTransaction = errors.New("transaction already recorded")

	// ErrParcelInconsistent: оплаченная сессия ссылается на отсутствующую
	// посылку - журналируется, не проглатывается.
	ErrParcelInconsistent = errors.New("paid session references missing parcel")
)
