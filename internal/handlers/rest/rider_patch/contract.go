//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_patch_test
package rider_patch

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
	Decide(ctx context.Context, riderID int64, decision entities.RiderStatusType, email string) (*entities.Rider, error)
}
