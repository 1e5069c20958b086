package payments_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"parcelhub/internal/dto"
	"parcelhub/internal/pkg/middlewares/auth"
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
	email := r.URL.Query().Get("email")
	if email == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// история платежей доступна только самому принципалу
	principal, ok := auth.PrincipalEmail(r.Context())
	if !ok || principal != email {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	paymentEntities, err := h.service.PaymentsByEmail(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	paymentDTOs := make([]dto.Payment, len(paymentEntities))
	for i, paymentEntity := range paymentEntities {
		paymentDTOs[i] = dto.Payment{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(paymentDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
