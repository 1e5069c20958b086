//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_status_changed_test
package parcel_status_changed

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
	UpdateDeliveryStatus(ctx context.Context, statusUpdate entities.ParcelStatusUpdate) (*entities.Parcel, error)
}
