package checkout_session_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelhub/internal/dto"
	"parcelhub/internal/service/parcel"
	"parcelhub/internal/service/payment"
	"parcelhub/pkg/logger"
)

type Handler struct {
	log        handlerLogger
	service    Service
	successURL string
	cancelURL  string
}

func New(log handlerLogger, service Service, successURL, cancelURL string) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:        handlerLog,
		service:    service,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var checkoutDTO dto.CheckoutSessionCreate
	err := json.NewDecoder(r.Body).Decode(&checkoutDTO)
	if err != nil || checkoutDTO.ParcelID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sessionURL, err := h.service.CreateCheckoutSession(r.Context(), checkoutDTO.ParcelID, h.successURL, h.cancelURL)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, payment.ErrParcelAlreadyPaid):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("parcel", checkoutDTO.ParcelID),
				logger.NewField("error", err),
			).Error("create checkout session")
			w.WriteHeader(http.StatusBadGateway)
		}
		return
	}

	response := dto.CheckoutSessionResponse{
		URL: sessionURL,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
