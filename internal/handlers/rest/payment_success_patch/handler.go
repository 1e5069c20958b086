package payment_success_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"parcelhub/internal/dto"
	"parcelhub/internal/entities"
	"parcelhub/internal/service/payment"
	"parcelhub/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reconciliation, err := h.service.ReconcilePayment(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidSessionID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrSessionNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, payment.ErrParcelInconsistent):
			// оплаченная сессия без посылки - сигнал рассинхрона данных
			h.log.With(
				logger.NewField("session", sessionID),
				logger.NewField("error", err),
			).Error("payment reconciliation inconsistency")
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("session", sessionID),
				logger.NewField("error", err),
			).Error("payment reconciliation failed")
			w.WriteHeader(http.StatusBadGateway)
		}
		return
	}

	response := dto.PaymentSuccessResponse{
		Success:       reconciliation.Settled,
		AlreadyExists: reconciliation.AlreadyProcessed,
		TrackingID:    reconciliation.TrackingID,
		TransactionID: reconciliation.TransactionID,
		Payment:       toPaymentDTO(reconciliation.Payment),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toPaymentDTO(paymentEntity *entities.Payment) *dto.Payment {
	if paymentEntity == nil {
		return nil
	}
	return &dto.Payment{
		ID:            paymentEntity.ID,
		TransactionID: paymentEntity.TransactionID,
		ParcelID:      paymentEntity.ParcelID,
		TrackingID:    paymentEntity.TrackingID,
		ParcelName:    paymentEntity.ParcelName,
		CustomerEmail: paymentEntity.CustomerEmail,
		Amount:        float64(paymentEntity.Amount) / 100,
		Currency:      paymentEntity.Currency,
		Status:        paymentEntity.Status,
		PaidAt:        paymentEntity.PaidAt.UTC().Format(time.RFC3339),
	}
}
