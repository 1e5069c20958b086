package tracking

import (
	"context"
	"fmt"

	"parcelhub/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append только добавляет: записи журнала не обновляются и не удаляются.
func (r *Repository) Append(ctx context.Context, event entities.TrackingEvent) error {
	query := `INSERT INTO trackings (tracking_id, status, details, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(
		ctx,
		query,
		event.TrackingID,
		event.Status,
		event.Details,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected tracking repository append error: %w", err)
	}

	return nil
}

func (r *Repository) GetByTrackingID(ctx context.Context, trackingID string) ([]entities.TrackingEvent, error) {
	query := `SELECT id, tracking_id, status, details, created_at
		FROM trackings
		WHERE tracking_id = $1
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, trackingID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository get error: %w", err)
	}
	defer rows.Close()

	eventModels := make([]TrackingEventDB, 0, 8)
	for rows.Next() {
		var eventModel TrackingEventDB
		err := rows.Scan(
			&eventModel.ID,
			&eventModel.TrackingID,
			&eventModel.Status,
			&eventModel.Details,
			&eventModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected tracking repository get error: %w", err)
		}
		eventModels = append(eventModels, eventModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository get error: %w", err)
	}

	return ToDomainList(eventModels), nil
}
