package stripe

import "parcelhub/internal/entities"

func toDomain(s *sessionResponse) *entities.CheckoutSession {
	if s == nil {
		return nil
	}
	return &entities.CheckoutSession{
		SessionID:     s.ID,
		TransactionID: s.PaymentIntent,
		PaymentStatus: s.PaymentStatus,
		AmountTotal:   s.AmountTotal,
		Currency:      s.Currency,
		CustomerEmail: s.CustomerEmail,
		ParcelID:      s.Metadata.ParcelID,
		ParcelName:    s.Metadata.ParcelName,
		TrackingID:    s.Metadata.TrackingID,
	}
}
