package tracking_logs_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"parcelhub/internal/dto"
	"parcelhub/internal/service/tracking"
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
	trackingID := mux.Vars(r)["trackingId"]

	events, err := h.service.Logs(r.Context(), trackingID)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidTrackingID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tracking.ErrTrackingNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	eventDTOs := make([]dto.TrackingEvent, len(events))
	for i, event := range events {
		eventDTOs[i].TrackingID = event.TrackingID
		eventDTOs[i].Status = event.Status
		eventDTOs[i].Details = event.Details
		eventDTOs[i].CreatedAt = event.CreatedAt.Format(time.RFC3339)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(eventDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
