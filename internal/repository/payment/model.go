package payment

import "time"

type PaymentDB struct {
	ID            int64
	TransactionID string
	ParcelID      int64
	TrackingID    string
	ParcelName    string
	CustomerEmail string
	Amount        int64
	Currency      string
	Status        string
	PaidAt        time.Time
}

type PaymentModifyDB struct {
	TransactionID *string
	ParcelID      *int64
	TrackingID    *string
	ParcelName    *string
	CustomerEmail *string
	Amount        *int64
	Currency      *string
	Status        *string
	PaidAt        *time.Time
}
