//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payments_get_test
package payments_get

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
	PaymentsByEmail(ctx context.Context, email string) ([]entities.Payment, error)
}
