package riders_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelhub/internal/dto"
	"parcelhub/internal/entities"
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
	var filter entities.RiderFilter

	// Опциональные параметры
	query := r.URL.Query()
	if statusStr := query.Get("status"); statusStr != "" {
		status := entities.RiderStatusType(statusStr)
		filter.Status = &status
	}
	if district := query.Get("district"); district != "" {
		filter.District = &district
	}
	if workStatusStr := query.Get("workStatus"); workStatusStr != "" {
		workStatus := entities.RiderWorkStatusType(workStatusStr)
		filter.WorkStatus = &workStatus
	}

	riderEntities, err := h.service.Riders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidStatus),
			errors.Is(err, rider.ErrInvalidWorkStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	riderDTOs := make([]dto.Rider, len(riderEntities))
	for i, riderEntity := range riderEntities {
		riderDTOs[i].ID = riderEntity.ID
		riderDTOs[i].Name = riderEntity.Name
		riderDTOs[i].Email = riderEntity.Email
		riderDTOs[i].Phone = riderEntity.Phone
		riderDTOs[i].District = riderEntity.District
		riderDTOs[i].Status = riderEntity.Status.String()
		riderDTOs[i].WorkStatus = riderEntity.WorkStatus.String()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(riderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
