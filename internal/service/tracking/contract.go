//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"parcelhub/internal/entities"
)

type Repository interface {
	Append(ctx context.Context, event entities.TrackingEvent) error
	GetByTrackingID(ctx context.Context, trackingID string) ([]entities.TrackingEvent, error)
}
