package parcel

import (
	"context"
	"fmt"
	"time"

	"parcelhub/internal/entities"
)

type Parcel struct {
	repository      Repository
	riderService    RiderService
	trackingService TrackingService
	trackingFactory TrackingIDFactory
	txManager       TxManager
}

func New(
	repository Repository,
	riderService RiderService,
	trackingService TrackingService,
	trackingFactory TrackingIDFactory,
	txManager TxManager,
) *Parcel {
	return &Parcel{
		repository:      repository,
		riderService:    riderService,
		trackingService: trackingService,
		trackingFactory: trackingFactory,
		txManager:       txManager,
	}
}

func (s *Parcel) CreateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModify.Name == nil ||
		parcelModify.SenderEmail == nil ||
		parcelModify.ReceiverName == nil ||
		parcelModify.ReceiverAddress == nil ||
		parcelModify.Cost == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidName(*parcelModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidEmail(*parcelModify.SenderEmail) {
		return nil, ErrInvalidEmail
	}
	if *parcelModify.Cost <= 0 {
		return nil, ErrInvalidCost
	}

	// Tracking id выдается один раз при создании и больше не меняется.
	trackingID := s.trackingFactory.NewTrackingID()
	paymentStatus := entities.ParcelUnpaid
	deliveryStatus := entities.ParcelCreated
	parcelModify.TrackingID = &trackingID
	parcelModify.PaymentStatus = &paymentStatus
	parcelModify.DeliveryStatus = &deliveryStatus

	var created *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := s.repository.Create(ctx, parcelModify)
		if err != nil {
			return fmt.Errorf("create parcel: %w", err)
		}

		if err := s.trackingService.Append(ctx, parcel.TrackingID, entities.TrackingParcelCreated); err != nil {
			return err
		}

		created = parcel
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Parcel) GetParcel(ctx context.Context, id int64) (*entities.Parcel, error) {
	parcel, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get parcel: %w", err)
	}

	return parcel, nil
}

func (s *Parcel) ParcelsBySender(ctx context.Context, senderEmail string) ([]entities.Parcel, error) {
	if !isValidEmail(senderEmail) {
		return nil, ErrInvalidEmail
	}

	parcels, err := s.repository.GetBySenderEmail(ctx, senderEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get parcels: %w", err)
	}

	return parcels, nil
}

// MarkPaid переводит посылку в paid/pending-pickup при подтверждении оплаты.
// Вызывается платежным сервисом внутри его транзакции.
func (s *Parcel) MarkPaid(ctx context.Context, parcelID int64) (*entities.Parcel, error) {
	paymentStatus := entities.ParcelPaid
	deliveryStatus := entities.ParcelPendingPickup

	parcel, err := s.repository.Update(ctx, entities.ParcelModify{
		ID:             &parcelID,
		PaymentStatus:  &paymentStatus,
		DeliveryStatus: &deliveryStatus,
	})
	if err != nil {
		return nil, fmt.Errorf("mark parcel paid: %w", err)
	}
	return parcel, nil
}

// CountStalledParcels считает посылки, застрявшие в промежуточных статусах
// дольше olderThan. Только чтение, используется фоновым мониторингом.
func (s *Parcel) CountStalledParcels(ctx context.Context, olderThan time.Duration) (int64, error) {
	count, err := s.repository.CountStalled(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("count stalled parcels: %w", err)
	}
	return count, nil
}

// AssignRider назначает райдера на посылку. Перевод райдера в busy сделан
// как check-and-set от available: занятый райдер не может быть назначен
// повторно даже при конкурентных запросах.
func (s *Parcel) AssignRider(ctx context.Context, parcelID, riderID int64) (*entities.Parcel, error) {
	var assigned *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		rider, err := s.riderService.SetWorkStatus(ctx, riderID, entities.RiderAvailable, entities.RiderBusy)
		if err != nil {
			return fmt.Errorf("mark rider busy: %w", err)
		}

		deliveryStatus := entities.ParcelAssigned
		parcel, err := s.repository.Update(ctx, entities.ParcelModify{
			ID:             &parcelID,
			DeliveryStatus: &deliveryStatus,
			RiderID:        &rider.ID,
			RiderEmail:     &rider.Email,
		})
		if err != nil {
			return fmt.Errorf("update parcel: %w", err)
		}

		if err := s.trackingService.Append(ctx, parcel.TrackingID, entities.TrackingDriverAssigned); err != nil {
			return err
		}

		assigned = parcel
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

// UpdateDeliveryStatus намеренно не транзакционен: посылка, затем райдер,
// затем журнал. Событие журнала пишется даже если освобождение райдера не
// удалось - журнал отражает намерение, а частичный сбой поднимается как
// ErrPartialUpdate, не маскируется.
func (s *Parcel) UpdateDeliveryStatus(ctx context.Context, statusUpdate entities.ParcelStatusUpdate) (*entities.Parcel, error) {
	if statusUpdate.ParcelID <= 0 {
		return nil, ErrInvalidParcelID
	}
	if !isValidDeliveryStatus(statusUpdate.DeliveryStatus.String()) {
		return nil, ErrInvalidDeliveryStatus
	}

	// Назначение идет отдельным транзакционным путем.
	if statusUpdate.DeliveryStatus == entities.ParcelAssigned && statusUpdate.RiderID != nil {
		return s.AssignRider(ctx, statusUpdate.ParcelID, *statusUpdate.RiderID)
	}

	parcel, err := s.repository.Update(ctx, entities.ParcelModify{
		ID:             &statusUpdate.ParcelID,
		DeliveryStatus: &statusUpdate.DeliveryStatus,
	})
	if err != nil {
		return nil, fmt.Errorf("update parcel status: %w", err)
	}

	var riderErr error
	if statusUpdate.DeliveryStatus == entities.ParcelDelivered && statusUpdate.RiderID != nil {
		_, riderErr = s.riderService.SetWorkStatus(ctx, *statusUpdate.RiderID, entities.RiderBusy, entities.RiderAvailable)
	}

	trackingID := parcel.TrackingID
	if statusUpdate.TrackingID != "" {
		trackingID = statusUpdate.TrackingID
	}
	if err := s.trackingService.Append(ctx, trackingID, statusUpdate.DeliveryStatus.String()); err != nil {
		return nil, err
	}

	if riderErr != nil {
		return parcel, fmt.Errorf("%w: free rider: %w", ErrPartialUpdate, riderErr)
	}
	return parcel, nil
}
