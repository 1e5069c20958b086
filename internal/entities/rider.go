package entities

import "time"

type Rider struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	District   string
	Status     RiderStatusType
	WorkStatus RiderWorkStatusType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type RiderStatusType string

const (
	RiderPending  RiderStatusType = "pending"
	RiderApproved RiderStatusType = "approved"
	RiderRejected RiderStatusType = "rejected"
)

const DefaultRiderStatus = RiderPending

func (t RiderStatusType) String() string {
	return string(t)
}

type RiderWorkStatusType string

const (
	RiderAvailable RiderWorkStatusType = "available"
	RiderBusy      RiderWorkStatusType = "busy"
)

const DefaultRiderWorkStatus = RiderAvailable

func (t RiderWorkStatusType) String() string {
	return string(t)
}

type RiderModify struct {
	ID         *int64
	Name       *string
	Email      *string
	Phone      *string
	District   *string
	Status     *RiderStatusType
	WorkStatus *RiderWorkStatusType
}

type RiderFilter struct {
	Status     *RiderStatusType
	District   *string
	WorkStatus *RiderWorkStatusType
}

// DeliveryDayCount - строка отчета deliveries-per-day.
type DeliveryDayCount struct {
	Day   string
	Count int64
}
