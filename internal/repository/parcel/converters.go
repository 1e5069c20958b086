package parcel

import "parcelhub/internal/entities"

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}
	return &entities.Parcel{
		ID:               p.ID,
		TrackingID:       p.TrackingID,
		Name:             p.Name,
		SenderName:       p.SenderName,
		SenderEmail:      p.SenderEmail,
		SenderDistrict:   p.SenderDistrict,
		ReceiverName:     p.ReceiverName,
		ReceiverAddress:  p.ReceiverAddress,
		ReceiverDistrict: p.ReceiverDistrict,
		Cost:             p.Cost,
		PaymentStatus:    entities.PaymentStatusType(p.PaymentStatus),
		DeliveryStatus:   entities.DeliveryStatusType(p.DeliveryStatus),
		RiderID:          p.RiderID,
		RiderEmail:       p.RiderEmail,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func ToDomainList(models []ParcelDB) []entities.Parcel {
	parcels := make([]entities.Parcel, 0, len(models))
	for i := range models {
		parcels = append(parcels, *ToDomain(&models[i]))
	}
	return parcels
}

func FromDomainModify(p *entities.ParcelModify) *ParcelModifyDB {
	if p == nil {
		return nil
	}
	parcelModifyDB := &ParcelModifyDB{
		ID:               p.ID,
		TrackingID:       p.TrackingID,
		Name:             p.Name,
		SenderName:       p.SenderName,
		SenderEmail:      p.SenderEmail,
		SenderDistrict:   p.SenderDistrict,
		ReceiverName:     p.ReceiverName,
		ReceiverAddress:  p.ReceiverAddress,
		ReceiverDistrict: p.ReceiverDistrict,
		Cost:             p.Cost,
		RiderID:          p.RiderID,
		RiderEmail:       p.RiderEmail,
	}

	if p.PaymentStatus != nil {
		status := p.PaymentStatus.String()
		parcelModifyDB.PaymentStatus = &status
	}
	if p.DeliveryStatus != nil {
		status := p.DeliveryStatus.String()
		parcelModifyDB.DeliveryStatus = &status
	}

	return parcelModifyDB
}
