package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parcelhub/internal/entities"
	"parcelhub/internal/repository"
	"parcelhub/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const parcelColumns = `id, tracking_id, name, sender_name, sender_email, sender_district,
		receiver_name, receiver_address, receiver_district, cost,
		payment_status, delivery_status, rider_id, rider_email, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)
	query := `INSERT INTO parcels (tracking_id, name, sender_name, sender_email, sender_district,
			receiver_name, receiver_address, receiver_district, cost, payment_status, delivery_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + parcelColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		parcelModifyModel.TrackingID,
		parcelModifyModel.Name,
		parcelModifyModel.SenderName,
		parcelModifyModel.SenderEmail,
		parcelModifyModel.SenderDistrict,
		parcelModifyModel.ReceiverName,
		parcelModifyModel.ReceiverAddress,
		parcelModifyModel.ReceiverDistrict,
		parcelModifyModel.Cost,
		parcelModifyModel.PaymentStatus,
		parcelModifyModel.DeliveryStatus,
	)

	parcelModel, err := scanParcel(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("tracking id collision: %w", err)
		}
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(parcelModel), nil
}

// Update: tracking_id намеренно не входит в обновляемые поля,
// идентификатор неизменен после создания.
func (r *Repository) Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	builder := qb.
		Update("parcels")

	if parcelModifyModel.Name != nil {
		builder = builder.Set("name", parcelModifyModel.Name)
	}
	if parcelModifyModel.PaymentStatus != nil {
		builder = builder.Set("payment_status", parcelModifyModel.PaymentStatus)
	}
	if parcelModifyModel.DeliveryStatus != nil {
		builder = builder.Set("delivery_status", parcelModifyModel.DeliveryStatus)
	}
	if parcelModifyModel.RiderID != nil {
		builder = builder.Set("rider_id", parcelModifyModel.RiderID)
	}
	if parcelModifyModel.RiderEmail != nil {
		builder = builder.Set("rider_email", parcelModifyModel.RiderEmail)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": parcelModifyModel.ID}).
		Suffix("RETURNING " + parcelColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	return ToDomain(parcelModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE id = $1`

	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	return ToDomain(parcelModel), nil
}

func (r *Repository) GetBySenderEmail(ctx context.Context, senderEmail string) ([]entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE sender_email = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, senderEmail)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository getbysender error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 8)
	for rows.Next() {
		parcelModel, err := scanParcel(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository getbysender error: %w", err)
		}
		parcelModels = append(parcelModels, *parcelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository getbysender error: %w", err)
	}

	return ToDomainList(parcelModels), nil
}

// CountStalled считает посылки, зависшие в промежуточных статусах дольше
// заданного интервала. Только чтение, используется фоновым обходом.
func (r *Repository) CountStalled(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `SELECT COUNT(*)
		FROM parcels
		WHERE delivery_status IN ('assigned', 'in-transit')
			AND updated_at < NOW() - $1::interval`

	interval := fmt.Sprintf("%d seconds", int64(olderThan.Seconds()))

	var count int64
	err := r.querier.QueryRow(ctx, query, interval).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository count stalled error: %w", err)
	}
	return count, nil
}

func scanParcel(row pgx.Row) (*ParcelDB, error) {
	var parcelModel ParcelDB
	err := row.Scan(
		&parcelModel.ID,
		&parcelModel.TrackingID,
		&parcelModel.Name,
		&parcelModel.SenderName,
		&parcelModel.SenderEmail,
		&parcelModel.SenderDistrict,
		&parcelModel.ReceiverName,
		&parcelModel.ReceiverAddress,
		&parcelModel.ReceiverDistrict,
		&parcelModel.Cost,
		&parcelModel.PaymentStatus,
		&parcelModel.DeliveryStatus,
		&parcelModel.RiderID,
		&parcelModel.RiderEmail,
		&parcelModel.CreatedAt,
		&parcelModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &parcelModel, nil
}
