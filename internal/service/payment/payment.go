package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parcelhub/internal/entities"
)

type Payment struct {
	repository      Repository
	parcelService   ParcelService
	trackingService TrackingService
	gateway         Gateway
	txManager       TxManager
}

func New(
	repository Repository,
	parcelService ParcelService,
	trackingService TrackingService,
	gateway Gateway,
	txManager TxManager,
) *Payment {
	return &Payment{
		repository:      repository,
		parcelService:   parcelService,
		trackingService: trackingService,
		gateway:         gateway,
		txManager:       txManager,
	}
}

func (s *Payment) CreateCheckoutSession(ctx context.Context, parcelID int64, successURL, cancelURL string) (string, error) {
	parcel, err := s.parcelService.GetParcel(ctx, parcelID)
	if err != nil {
		return "", fmt.Errorf("get parcel for checkout: %w", err)
	}

	if parcel.PaymentStatus == entities.ParcelPaid {
		return "", ErrParcelAlreadyPaid
	}

	sessionURL, err := s.gateway.CreateCheckoutSession(ctx, entities.CheckoutRequest{
		ParcelID:      parcel.ID,
		ParcelName:    parcel.Name,
		TrackingID:    parcel.TrackingID,
		Amount:        parcel.Cost,
		CustomerEmail: parcel.SenderEmail,
		SuccessURL:    successURL,
		CancelURL:     cancelURL,
	})
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	return sessionURL, nil
}

// ReconcilePayment применяет оплаченную сессию ровно один раз.
// Повторная сверка того же transaction id (повторная доставка вебхука,
// поллинг клиента) возвращает уже сохраненный платеж без мутаций.
func (s *Payment) ReconcilePayment(ctx context.Context, sessionID string) (*entities.PaymentReconciliation, error) {
	if !isValidSessionID(sessionID) {
		return nil, ErrInvalidSessionID
	}

	session, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}

	existing, err := s.repository.GetByTransactionID(ctx, session.TransactionID)
	if err != nil && !errors.Is(err, ErrPaymentNotFound) {
		return nil, fmt.Errorf("lookup payment by transaction id: %w", err)
	}
	if existing != nil {
		return &entities.PaymentReconciliation{
			Settled:          true,
			AlreadyProcessed: true,
			TransactionID:    existing.TransactionID,
			TrackingID:       existing.TrackingID,
			Payment:          existing,
		}, nil
	}

	if session.PaymentStatus != entities.CheckoutSessionPaid {
		// не оплачено - без побочных эффектов
		return &entities.PaymentReconciliation{Settled: false}, nil
	}

	reconciliation := entities.PaymentReconciliation{}
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		parcelID, err := parseParcelID(session.ParcelID)
		if err != nil {
			return fmt.Errorf("%w: session %s: %w", ErrParcelInconsistent, sessionID, err)
		}

		if _, err := s.parcelService.MarkPaid(ctx, parcelID); err != nil {
			return fmt.Errorf("%w: %w", ErrParcelInconsistent, err)
		}

		paidAt := time.Now().UTC()
		created, err := s.repository.Create(ctx, entities.PaymentModify{
			TransactionID: &session.TransactionID,
			ParcelID:      &parcelID,
			TrackingID:    &session.TrackingID,
			ParcelName:    &session.ParcelName,
			CustomerEmail: &session.CustomerEmail,
			Amount:        &session.AmountTotal,
			Currency:      &session.Currency,
			Status:        &session.PaymentStatus,
			PaidAt:        &paidAt,
		})
		if err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}

		if err := s.trackingService.Append(ctx, session.TrackingID, entities.TrackingParcelPaid); err != nil {
			return err
		}

		reconciliation = entities.PaymentReconciliation{
			Settled:       true,
			TransactionID: created.TransactionID,
			TrackingID:    created.TrackingID,
			Payment:       created,
		}
		return nil
	})
	if err != nil {
		// Гонка конкурентных вебхуков: вставка уперлась в уникальный
		// transaction_id - победившая запись и есть результат сверки.
		if errors.Is(err, ErrDuplicateTransaction) {
			winner, lookupErr := s.repository.GetByTransactionID(ctx, session.TransactionID)
			if lookupErr != nil {
				return nil, fmt.Errorf("lookup winning payment: %w", lookupErr)
			}
			return &entities.PaymentReconciliation{
				Settled:          true,
				AlreadyProcessed: true,
				TransactionID:    winner.TransactionID,
				TrackingID:       winner.TrackingID,
				Payment:          winner,
			}, nil
		}
		return nil, err
	}
	return &reconciliation, nil
}

func (s *Payment) PaymentsByEmail(ctx context.Context, email string) ([]entities.Payment, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	payments, err := s.repository.GetByCustomerEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	return payments, nil
}
