//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_delivery_report_get_test
package rider_delivery_report_get

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
	DeliveriesPerDay(ctx context.Context, riderEmail string) ([]entities.DeliveryDayCount, error)
}
