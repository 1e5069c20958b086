//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"
	"time"

	"parcelhub/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	GetBySenderEmail(ctx context.Context, senderEmail string) ([]entities.Parcel, error)
	Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error)
	CountStalled(ctx context.Context, olderThan time.Duration) (int64, error)
}

type RiderService interface {
	SetWorkStatus(ctx context.Context, riderID int64, from, to entities.RiderWorkStatusType) (*entities.Rider, error)
}

type TrackingService interface {
	Append(ctx context.Context, trackingID, status string) error
}

type TrackingIDFactory interface {
	NewTrackingID() string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
