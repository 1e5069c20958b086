package entities

import "time"

type Parcel struct {
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
	PaymentStatus    PaymentStatusType
	DeliveryStatus   DeliveryStatusType
	RiderID          *int64
	RiderEmail       *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type PaymentStatusType string

const (
	ParcelUnpaid PaymentStatusType = "unpaid"
	ParcelPaid   PaymentStatusType = "paid"
)

func (t PaymentStatusType) String() string {
	return string(t)
}

type DeliveryStatusType string

const (
	ParcelCreated       DeliveryStatusType = "created"
	ParcelPendingPickup DeliveryStatusType = "pending-pickup"
	ParcelAssigned      DeliveryStatusType = "assigned"
	ParcelInTransit     DeliveryStatusType = "in-transit"
	ParcelDelivered     DeliveryStatusType = "parcel_delivered"
)

func (t DeliveryStatusType) String() string {
	return string(t)
}

type ParcelStatusUpdate struct {
	ParcelID       int64
	DeliveryStatus DeliveryStatusType
	RiderID        *int64
	TrackingID     string
}

type ParcelModify struct {
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
	PaymentStatus    *PaymentStatusType
	DeliveryStatus   *DeliveryStatusType
	RiderID          *int64
	RiderEmail       *string
}
