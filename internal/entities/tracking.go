package entities

import "time"

// TrackingEvent - запись append-only журнала, упорядочена по времени создания.
type TrackingEvent struct {
	ID         int64
	TrackingID string
	Status     string
	Details    string
	CreatedAt  time.Time
}

// Метки статусов журнала, не покрытые DeliveryStatusType.
const (
	TrackingParcelCreated  = "parcel_created"
	TrackingParcelPaid     = "parcel_paid"
	TrackingDriverAssigned = "driver_assigned"
)
