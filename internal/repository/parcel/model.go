package parcel

import "time"

type ParcelDB struct {
	ID               int64
	TrackingID       string
	Name             string
	SenderName       string
	SenderEmail      string
	SenderDistrict   string
	ReceiverName     string
	ReceiverAddress  string
	ReceiverDistrict string
	Cost             int64
	PaymentStatus    string
	DeliveryStatus   string
	RiderID          *int64
	RiderEmail       *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ParcelModifyDB struct {
	ID               *int64
	TrackingID       *string
	Name             *string
	SenderName       *string
	SenderEmail      *string
	SenderDistrict   *string
	ReceiverName     *string
	ReceiverAddress  *string
	ReceiverDistrict *string
	Cost             *int64
	PaymentStatus    *string
	DeliveryStatus   *string
	RiderID          *int64
	RiderEmail       *string
}
