package rider_delivery_report_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelhub/internal/dto"
	"parcelhub/internal/pkg/middlewares/auth"
	"parcelhub/internal/service/rider"
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

	// отчет о доставках видит только сам райдер
	principal, ok := auth.PrincipalEmail(r.Context())
	if !ok || principal != email {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	report, err := h.service.DeliveriesPerDay(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	reportDTOs := make([]dto.DeliveryDayCount, len(report))
	for i, row := range report {
		reportDTOs[i].Day = row.Day
		reportDTOs[i].Count = row.Count
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(reportDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
