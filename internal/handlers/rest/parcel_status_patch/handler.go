package parcel_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"parcelhub/internal/dto"
	"parcelhub/internal/entities"
	"parcelhub/internal/service/parcel"
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
	parcelID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusUpdateDTO dto.ParcelStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	statusUpdate := entities.ParcelStatusUpdate{
		ParcelID:       parcelID,
		DeliveryStatus: entities.DeliveryStatusType(statusUpdateDTO.DeliveryStatus),
		RiderID:        statusUpdateDTO.RiderID,
		TrackingID:     statusUpdateDTO.TrackingID,
	}

	updated, err := h.service.UpdateDeliveryStatus(r.Context(), statusUpdate)
	partial := errors.Is(err, parcel.ErrPartialUpdate)
	if err != nil && !partial {
		switch {
		case errors.Is(err, parcel.ErrInvalidParcelID),
			errors.Is(err, parcel.ErrInvalidDeliveryStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound),
			errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, rider.ErrWorkStatusConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if partial {
		// посылка обновлена и событие записано, но райдер не освобожден -
		// отдаем результат с пометкой, не маскируем
		h.log.With(
			logger.NewField("parcel", parcelID),
			logger.NewField("error", err),
		).Warn("partial delivery status update")
	}

	response := dto.ParcelStatusUpdateResponse{
		ID:             updated.ID,
		DeliveryStatus: updated.DeliveryStatus.String(),
		TrackingID:     updated.TrackingID,
		Partial:        partial,
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
