//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
package rider

import (
	"context"

	"parcelhub/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, riderModifyEntity entities.RiderModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Rider, error)
	GetByFilter(ctx context.Context, filter entities.RiderFilter) ([]entities.Rider, error)

	// UpdateStatusIfPending меняет статус только у pending заявки,
	// иначе ErrAlreadyDecided.
	UpdateStatusIfPending(ctx context.Context, id int64, status entities.RiderStatusType) (*entities.Rider, error)

	// UpdateWorkStatus - check-and-set перехода from -> to,
	// при несовпадении текущего состояния ErrWorkStatusConflict.
	UpdateWorkStatus(ctx context.Context, id int64, from, to entities.RiderWorkStatusType) (*entities.Rider, error)

	CountDeliveredPerDay(ctx context.Context, riderEmail string) ([]entities.DeliveryDayCount, error)
}

type UserRepository interface {
	UpdateRoleByEmail(ctx context.Context, email string, role entities.UserRoleType) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
