package rider

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parcelhub/internal/entities"
	"parcelhub/internal/repository"
	"parcelhub/internal/service/rider"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const riderColumns = "id, name, email, phone, district, status, work_status, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, riderModifyEntity entities.RiderModify) (int64, error) {
	riderModifyModel := FromDomainModify(&riderModifyEntity)
	query := `INSERT INTO riders (name, email, phone, district, status, work_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		riderModifyModel.Name,
		riderModifyModel.Email,
		riderModifyModel.Phone,
		riderModifyModel.District,
		riderModifyModel.Status,
		riderModifyModel.WorkStatus,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, rider.ErrConflict
		}
		return 0, fmt.Errorf("unexpected rider repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Rider, error) {
	query := `SELECT ` + riderColumns + `
		FROM riders
		WHERE id = $1`

	riderModel, err := scanRider(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository getbyid error: %w", err)
	}

	return ToDomain(riderModel), nil
}

func (r *Repository) GetByFilter(ctx context.Context, filter entities.RiderFilter) ([]entities.Rider, error) {
	builder := qb.
		Select(riderColumns).
		From("riders").
		OrderBy("id")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.District != nil {
		builder = builder.Where(sq.Eq{"district": *filter.District})
	}
	if filter.WorkStatus != nil {
		builder = builder.Where(sq.Eq{"work_status": filter.WorkStatus.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository getbyfilter error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository getbyfilter error: %w", err)
	}
	defer rows.Close()

	riderModels := make([]RiderDB, 0, 8)
	for rows.Next() {
		riderModel, err := scanRider(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected rider repository getbyfilter error: %w", err)
		}
		riderModels = append(riderModels, *riderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository getbyfilter error: %w", err)
	}

	return ToDomainList(riderModels), nil
}

// UpdateStatusIfPending: решение по заявке принимается ровно один раз,
// условие status='pending' отсекает повторное одобрение/отклонение.
func (r *Repository) UpdateStatusIfPending(ctx context.Context, id int64, status entities.RiderStatusType) (*entities.Rider, error) {
	query := `UPDATE riders
		SET status = $2, work_status = 'available', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + riderColumns

	riderModel, err := scanRider(r.querier.QueryRow(ctx, query, id, status.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.decideConflict(ctx, id)
		}
		return nil, fmt.Errorf("unexpected rider repository update status error: %w", err)
	}

	return ToDomain(riderModel), nil
}

// UpdateWorkStatus - оптимистический check-and-set busy/available.
func (r *Repository) UpdateWorkStatus(ctx context.Context, id int64, from, to entities.RiderWorkStatusType) (*entities.Rider, error) {
	query := `UPDATE riders
		SET work_status = $3, updated_at = NOW()
		WHERE id = $1 AND work_status = $2
		RETURNING ` + riderColumns

	riderModel, err := scanRider(r.querier.QueryRow(ctx, query, id, from.String(), to.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.workStatusConflict(ctx, id)
		}
		return nil, fmt.Errorf("unexpected rider repository update work status error: %w", err)
	}

	return ToDomain(riderModel), nil
}

// CountDeliveredPerDay: доставленные посылки райдера, сведенные с журналом
// по tracking_id и событию parcel_delivered, сгруппированные по дню (UTC).
func (r *Repository) CountDeliveredPerDay(ctx context.Context, riderEmail string) ([]entities.DeliveryDayCount, error) {
	query := `
        SELECT
            to_char(t.created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS delivery_day,
            COUNT(*)
        FROM parcels p
        JOIN trackings t ON t.tracking_id = p.tracking_id
        WHERE p.rider_email = $1
            AND p.delivery_status = 'parcel_delivered'
            AND t.status = 'parcel_delivered'
        GROUP BY delivery_day
        ORDER BY delivery_day
	`

	rows, err := r.querier.Query(ctx, query, riderEmail)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository report error: %w", err)
	}
	defer rows.Close()

	report := make([]entities.DeliveryDayCount, 0, 8)
	for rows.Next() {
		var row entities.DeliveryDayCount
		err := rows.Scan(&row.Day, &row.Count)
		if err != nil {
			return nil, fmt.Errorf("unexpected rider repository report error: %w", err)
		}
		report = append(report, row)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository report error: %w", err)
	}

	return report, nil
}

// decideConflict различает отсутствующего райдера и уже принятое решение.
func (r *Repository) decideConflict(ctx context.Context, id int64) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM riders WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected rider repository lookup error: %w", err)
	}
	if !exists {
		return rider.ErrRiderNotFound
	}
	return rider.ErrAlreadyDecided
}

func (r *Repository) workStatusConflict(ctx context.Context, id int64) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM riders WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected rider repository lookup error: %w", err)
	}
	if !exists {
		return rider.ErrRiderNotFound
	}
	return rider.ErrWorkStatusConflict
}

func scanRider(row pgx.Row) (*RiderDB, error) {
	var riderModel RiderDB
	err := row.Scan(
		&riderModel.ID,
		&riderModel.Name,
		&riderModel.Email,
		&riderModel.Phone,
		&riderModel.District,
		&riderModel.Status,
		&riderModel.WorkStatus,
		&riderModel.CreatedAt,
		&riderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &riderModel, nil
}
