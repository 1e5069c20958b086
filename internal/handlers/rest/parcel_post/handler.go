package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelhub/internal/dto"
	"parcelhub/internal/entities"
	"parcelhub/internal/service/parcel"
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
	var parcelCreateDTO dto.ParcelCreate
	err := json.NewDecoder(r.Body).Decode(&parcelCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelModifyEntity := entities.ParcelModify{
		Name:             &parcelCreateDTO.Name,
		SenderName:       &parcelCreateDTO.SenderName,
		SenderEmail:      &parcelCreateDTO.SenderEmail,
		SenderDistrict:   &parcelCreateDTO.SenderDistrict,
		ReceiverName:     &parcelCreateDTO.ReceiverName,
		ReceiverAddress:  &parcelCreateDTO.ReceiverAddress,
		ReceiverDistrict: &parcelCreateDTO.ReceiverDistrict,
		Cost:             &parcelCreateDTO.Cost,
	}

	created, err := h.service.CreateParcel(r.Context(), parcelModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidName),
			errors.Is(err, parcel.ErrInvalidEmail),
			errors.Is(err, parcel.ErrInvalidCost):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ParcelCreateResponse{
		ID:         created.ID,
		TrackingID: created.TrackingID,
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
