package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"parcelhub/internal/entities"
	"parcelhub/internal/repository"
	"parcelhub/internal/service/payment"
)

const paymentColumns = `id, transaction_id, parcel_id, tracking_id, parcel_name,
		customer_email, amount, currency, status, paid_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create полагается на уникальный индекс transaction_id: конкурирующая
// вставка того же transaction id отдается как ErrDuplicateTransaction,
// а не решается через read-then-write.
func (r *Repository) Create(ctx context.Context, paymentModifyEntity entities.PaymentModify) (*entities.Payment, error) {
	paymentModifyModel := FromDomainModify(&paymentModifyEntity)
	query := `INSERT INTO payments (transaction_id, parcel_id, tracking_id, parcel_name,
			customer_email, amount, currency, status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + paymentColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		paymentModifyModel.TransactionID,
		paymentModifyModel.ParcelID,
		paymentModifyModel.TrackingID,
		paymentModifyModel.ParcelName,
		paymentModifyModel.CustomerEmail,
		paymentModifyModel.Amount,
		paymentModifyModel.Currency,
		paymentModifyModel.Status,
		paymentModifyModel.PaidAt,
	)

	paymentModel, err := scanPayment(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, payment.ErrDuplicateTransaction
		}
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return ToDomain(paymentModel), nil
}

func (r *Repository) GetByTransactionID(ctx context.Context, transactionID string) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE transaction_id = $1`

	paymentModel, err := scanPayment(r.querier.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository getbytransaction error: %w", err)
	}

	return ToDomain(paymentModel), nil
}

func (r *Repository) GetByCustomerEmail(ctx context.Context, email string) ([]entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE customer_email = $1
		ORDER BY paid_at DESC`

	rows, err := r.querier.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository getbyemail error: %w", err)
	}
	defer rows.Close()

	paymentModels := make([]PaymentDB, 0, 8)
	for rows.Next() {
		paymentModel, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected payment repository getbyemail error: %w", err)
		}
		paymentModels = append(paymentModels, *paymentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository getbyemail error: %w", err)
	}

	return ToDomainList(paymentModels), nil
}

func scanPayment(row pgx.Row) (*PaymentDB, error) {
	var paymentModel PaymentDB
	err := row.Scan(
		&paymentModel.ID,
		&paymentModel.TransactionID,
		&paymentModel.ParcelID,
		&paymentModel.TrackingID,
		&paymentModel.ParcelName,
		&paymentModel.CustomerEmail,
		&paymentModel.Amount,
		&paymentModel.Currency,
		&paymentModel.Status,
		&paymentModel.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	return &paymentModel, nil
}
