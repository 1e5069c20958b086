package tracking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"parcelhub/internal/entities"
)

type Tracking struct {
	repository Repository
}

func New(repository Repository) *Tracking {
	return &Tracking{
		repository: repository,
	}
}

// Append пишет событие журнала. Ошибка хранилища всегда отдается наверх:
// пропуск события ломает аудит жизненного цикла посылки.
func (s *Tracking) Append(ctx context.Context, trackingID, status string) error {
	if !isValidTrackingID(trackingID) {
		return ErrInvalidTrackingID
	}
	if !isValidStatusLabel(status) {
		return ErrInvalidStatusLabel
	}

	event := entities.TrackingEvent{
		TrackingID: trackingID,
		Status:     status,
		Details:    detailsFromLabel(status),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repository.Append(ctx, event); err != nil {
		return fmt.Errorf("append tracking event: %w", err)
	}
	return nil
}

func (s *Tracking) Logs(ctx context.Context, trackingID string) ([]entities.TrackingEvent, error) {
	if !isValidTrackingID(trackingID) {
		return nil, ErrInvalidTrackingID
	}

	events, err := s.repository.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("get tracking events: %w", err)
	}
	return events, nil
}

// detailsFromLabel: parcel_delivered -> "parcel delivered".
func detailsFromLabel(label string) string {
	replacer := strings.NewReplacer("_", " ", "-", " ")
	return replacer.Replace(label)
}
