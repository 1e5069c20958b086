package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"parcelhub/internal/entities"
)

var ErrUserNotFound = errors.New("user not found")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT id, email, role, created_at
		FROM users
		WHERE email = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, email).
		Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.Role,
			&userModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	return ToDomain(&userModel), nil
}

// UpdateRoleByEmail - разовый грант роли, откат не предусмотрен.
func (r *Repository) UpdateRoleByEmail(ctx context.Context, email string, role entities.UserRoleType) error {
	query := `UPDATE users
		SET role = $2
		WHERE email = $1`

	result, err := r.querier.Exec(ctx, query, email, role.String())
	if err != nil {
		return fmt.Errorf("unexpected user repository update role error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
