package parcels_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"parcelhub/internal/dto"
	"parcelhub/internal/pkg/middlewares/auth"
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
	email := r.URL.Query().Get("email")
	if email == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// чужие посылки не отдаем
	principal, ok := auth.PrincipalEmail(r.Context())
	if !ok || principal != email {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	parcelEntities, err := h.service.ParcelsBySender(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	parcelDTOs := make([]dto.Parcel, len(parcelEntities))
	for i, parcelEntity := range parcelEntities {
		parcelDTOs[i] = dto.Parcel{
			ID:               parcelEntity.ID,
			TrackingID:       parcelEntity.TrackingID,
			Name:             parcelEntity.Name,
			SenderName:       parcelEntity.SenderName,
			SenderEmail:      parcelEntity.SenderEmail,
			SenderDistrict:   parcelEntity.SenderDistrict,
			ReceiverName:     parcelEntity.ReceiverName,
			ReceiverAddress:  parcelEntity.ReceiverAddress,
			ReceiverDistrict: parcelEntity.ReceiverDistrict,
			Cost:             parcelEntity.Cost,
			PaymentStatus:    parcelEntity.PaymentStatus.String(),
			DeliveryStatus:   parcelEntity.DeliveryStatus.String(),
			RiderID:          parcelEntity.RiderID,
			RiderEmail:       parcelEntity.RiderEmail,
			CreatedAt:        parcelEntity.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(parcelDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
