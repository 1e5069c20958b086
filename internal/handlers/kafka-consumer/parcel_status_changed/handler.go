package parcel_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"parcelhub/internal/entities"
	parcelservice "parcelhub/internal/service/parcel"
	"parcelhub/pkg/logger"
)

type statusChangedEvent struct {
	ParcelID   int64  `json:"parcelId"`
	Status     string `json:"status"`
	RiderID    *int64 `json:"riderId,omitempty"`
	TrackingID string `json:"trackingId,omitempty"`
}

type Handler struct {
	parcelService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, parcelService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		parcelService:            parcelService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("parcel.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("parcel.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("parcel.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("parcel", event.ParcelID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("parcel.status.changed processing")

	statusUpdate := entities.ParcelStatusUpdate{
		ParcelID:       event.ParcelID,
		DeliveryStatus: entities.DeliveryStatusType(event.Status),
		RiderID:        event.RiderID,
		TrackingID:     event.TrackingID,
	}

	parcel, err := h.parcelService.UpdateDeliveryStatus(ctx, statusUpdate)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, parcelservice.ErrInvalidDeliveryStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler unknown status for parcel")

		case errors.Is(err, parcelservice.ErrParcelNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler parcel not found")

		case errors.Is(err, parcelservice.ErrPartialUpdate):
			// посылка и журнал обновлены, райдер остался busy
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler partial update")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler failed to process parcel")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("parcel", parcel.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", parcel.DeliveryStatus.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("parcel.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
