//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_logs_get_test
package tracking_logs_get

import (
	"context"

	"parcelhub/internal/entities"
	"parcelhub/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Logs(ctx context.Context, trackingID string) ([]entities.TrackingEvent, error)
}
