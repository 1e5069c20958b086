package entities

import "time"

// Payment неизменяем после вставки, transaction_id уникален.
type Payment struct {
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

type PaymentModify struct {
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

// PaymentReconciliation - результат сверки checkout-сессии.
type PaymentReconciliation struct {
	Settled          bool
	AlreadyProcessed bool
	TransactionID    string
	TrackingID       string
	Payment          *Payment
}

// CheckoutRequest - параметры создания checkout-сессии в платежном шлюзе.
type CheckoutRequest struct {
	ParcelID      int64
	ParcelName    string
	TrackingID    string
	Amount        int64
	Currency      string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// CheckoutSession - данные сессии из платежного шлюза.
type CheckoutSession struct {
	SessionID     string
	TransactionID string
	PaymentStatus string
	AmountTotal   int64
	Currency      string
	CustomerEmail string
	ParcelID      string
	ParcelName    string
	TrackingID    string
}

const CheckoutSessionPaid = "paid"
