package rider_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	riderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var decisionDTO dto.RiderDecision
	err = json.NewDecoder(r.Body).Decode(&decisionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	decision := entities.RiderStatusType(decisionDTO.Status)

	riderEntity, err := h.service.Decide(r.Context(), riderID, decision, decisionDTO.Email)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidRiderID),
			errors.Is(err, rider.ErrInvalidDecision),
			errors.Is(err, rider.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, rider.ErrAlreadyDecided):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.log.With(
		logger.NewField("riderId", riderEntity.ID),
		logger.NewField("status", riderEntity.Status.String()),
	).Info("rider application decided")

	riderDTO := dto.Rider{
		ID:         riderEntity.ID,
		Name:       riderEntity.Name,
		Email:      riderEntity.Email,
		Phone:      riderEntity.Phone,
		District:   riderEntity.District,
		Status:     riderEntity.Status.String(),
		WorkStatus: riderEntity.WorkStatus.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(riderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
