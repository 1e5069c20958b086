package tracking

import "parcelhub/internal/entities"

func ToDomain(e *TrackingEventDB) *entities.TrackingEvent {
	if e == nil {
		return nil
	}
	return &entities.TrackingEvent{
		ID:         e.ID,
		TrackingID: e.TrackingID,
		Status:     e.Status,
		Details:    e.Details,
		CreatedAt:  e.CreatedAt,
	}
}

func ToDomainList(models []TrackingEventDB) []entities.TrackingEvent {
	events := make([]entities.TrackingEvent, 0, len(models))
	for i := range models {
		events = append(events, *ToDomain(&models[i]))
	}
	return events
}
