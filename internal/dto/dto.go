// Package dto - типизированные тела запросов и ответов HTTP API.
package dto

type ParcelCreate struct {
	Name             string `json:"name"`
	SenderName       string `json:"senderName"`
	SenderEmail      string `json:"senderEmail"`
	SenderDistrict   string `json:"senderDistrict"`
	ReceiverName     string `json:"receiverName"`
	ReceiverAddress  string `json:"receiverAddress"`
	ReceiverDistrict string `json:"receiverDistrict"`
	Cost             int64  `json:"cost"`
}

type ParcelCreateResponse struct {
	ID         int64  `json:"id"`
	TrackingID string `json:"trackingId"`
}

type Parcel struct {
	ID               int64   `json:"id"`
	TrackingID       string  `json:"trackingId"`
	Name             string  `json:"name"`
	SenderName       string  `json:"senderName"`
	SenderEmail      string  `json:"senderEmail"`
	SenderDistrict   string  `json:"senderDistrict"`
	ReceiverName     string  `json:"receiverName"`
	ReceiverAddress  string  `json:"receiverAddress"`
	ReceiverDistrict string  `json:"receiverDistrict"`
	Cost             int64   `json:"cost"`
	PaymentStatus    string  `json:"paymentStatus"`
	DeliveryStatus   string  `json:"deliveryStatus"`
	RiderID          *int64  `json:"riderId,omitempty"`
	RiderEmail       *string `json:"riderEmail,omitempty"`
	CreatedAt        string  `json:"createdAt"`
}

type ParcelStatusUpdate struct {
	DeliveryStatus string `json:"deliveryStatus"`
	RiderID        *int64 `json:"riderId,omitempty"`
	TrackingID     string `json:"trackingId,omitempty"`
}

type ParcelStatusUpdateResponse struct {
	ID             int64  `json:"id"`
	DeliveryStatus string `json:"deliveryStatus"`
	TrackingID     string `json:"trackingId"`
	Partial        bool   `json:"partial,omitempty"`
}

type CheckoutSessionCreate struct {
	ParcelID int64 `json:"parcelId"`
}

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

type PaymentSuccessResponse struct {
	Success       bool     `json:"success"`
	AlreadyExists bool     `json:"alreadyExists,omitempty"`
	TrackingID    string   `json:"trackingId,omitempty"`
	TransactionID string   `json:"transactionId,omitempty"`
	Payment       *Payment `json:"payment,omitempty"`
}

type Payment struct {
	ID            int64   `json:"id"`
	TransactionID string  `json:"transactionId"`
	ParcelID      int64   `json:"parcelId"`
	TrackingID    string  `json:"trackingId"`
	ParcelName    string  `json:"parcelName"`
	CustomerEmail string  `json:"customerEmail"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	PaidAt        string  `json:"paidAt"`
}

type RiderCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	District string `json:"district"`
}

type RiderCreateResponse struct {
	ID int64 `json:"id"`
}

type Rider struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	District   string `json:"district"`
	Status     string `json:"status"`
	WorkStatus string `json:"workStatus"`
}

type RiderDecision struct {
	Status string `json:"status"`
	Email  string `json:"email"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type TrackingEvent struct {
	TrackingID string `json:"trackingId"`
	Status     string `json:"status"`
	Details    string `json:"details"`
	CreatedAt  string `json:"createdAt"`
}

type DeliveryDayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"deliveredCount"`
}
