//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"parcelhub/internal/entities"
)

type Repository interface {
	// Create - атомарный insert-if-absent по уникальному transaction_id,
	// конфликт отдается как ErrDuplicateTransaction.
	Create(ctx context.Context, paymentModifyEntity entities.PaymentModify) (*entities.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*entities.Payment, error)
	GetByCustomerEmail(ctx context.Context, email string) ([]entities.Payment, error)
}

type ParcelService interface {
	GetParcel(ctx context.Context, id int64) (*entities.Parcel, error)
	MarkPaid(ctx context.Context, parcelID int64) (*entities.Parcel, error)
}

type TrackingService interface {
	Append(ctx context.Context, trackingID, status string) error
}

type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (string, error)
	RetrieveSession(ctx context.Context, sessionID string) (*entities.CheckoutSession, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
