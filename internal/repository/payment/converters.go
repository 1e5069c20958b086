package payment

import "parcelhub/internal/entities"

func ToDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}
	return &entities.Payment{
		ID:            p.ID,
		TransactionID: p.TransactionID,
		ParcelID:      p.ParcelID,
		TrackingID:    p.TrackingID,
		ParcelName:    p.ParcelName,
		CustomerEmail: p.CustomerEmail,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        p.Status,
		PaidAt:        p.PaidAt,
	}
}

func ToDomainList(models []PaymentDB) []entities.Payment {
	payments := make([]entities.Payment, 0, len(models))
	for i := range models {
		payments = append(payments, *ToDomain(&models[i]))
	}
	return payments
}

func FromDomainModify(p *entities.PaymentModify) *PaymentModifyDB {
	if p == nil {
		return nil
	}
	return &PaymentModifyDB{
		TransactionID: p.TransactionID,
		ParcelID:      p.ParcelID,
		TrackingID:    p.TrackingID,
		ParcelName:    p.ParcelName,
		CustomerEmail: p.CustomerEmail,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        p.Status,
		PaidAt:        p.PaidAt,
	}
}
