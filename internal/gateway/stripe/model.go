package stripe

type sessionResponse struct {
	ID            string          `json:"id"`
	URL           string          `json:"url"`
	PaymentIntent string          `json:"payment_intent"`
	PaymentStatus string          `json:"payment_status"`
	AmountTotal   int64           `json:"amount_total"`
	Currency      string          `json:"currency"`
	CustomerEmail string          `json:"customer_email"`
	Metadata      sessionMetadata `json:"metadata"`
}

type sessionMetadata struct {
	ParcelID   string `json:"parcelId"`
	ParcelName string `json:"parcelName"`
	TrackingID string `json:"trackingId"`
}
