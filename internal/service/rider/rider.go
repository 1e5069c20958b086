package rider

import (
	"context"
	"fmt"

	"parcelhub/internal/entities"
)

type Rider struct {
	repository     Repository
	userRepository UserRepository
	txManager      TxManager
}

func New(repository Repository, userRepository UserRepository, txManager TxManager) *Rider {
	return &Rider{
		repository:     repository,
		userRepository: userRepository,
		txManager:      txManager,
	}
}

func (s *Rider) CreateRider(ctx context.Context, riderModify entities.RiderModify) (int64, error) {
	if riderModify.Name == nil ||
		riderModify.Email == nil ||
		riderModify.Phone == nil ||
		riderModify.District == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*riderModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidEmail(*riderModify.Email) {
		return 0, ErrInvalidEmail
	}
	if !isValidPhone(*riderModify.Phone) {
		return 0, ErrInvalidPhone
	}

	// Заявка всегда стартует в pending, решение принимает администратор.
	status := entities.DefaultRiderStatus
	workStatus := entities.DefaultRiderWorkStatus
	riderModify.Status = &status
	riderModify.WorkStatus = &workStatus

	id, err := s.repository.Create(ctx, riderModify)
	if err != nil {
		return 0, fmt.Errorf("create rider: %w", err)
	}

	return id, nil
}

func (s *Rider) GetRider(ctx context.Context, id int64) (*entities.Rider, error) {
	rider, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rider: %w", err)
	}

	return rider, nil
}

func (s *Rider) Riders(ctx context.Context, filter entities.RiderFilter) ([]entities.Rider, error) {
	if filter.Status != nil && !isValidStatus(filter.Status.String()) {
		return nil, ErrInvalidStatus
	}
	if filter.WorkStatus != nil && !isValidWorkStatus(filter.WorkStatus.String()) {
		return nil, ErrInvalidWorkStatus
	}

	riders, err := s.repository.GetByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get riders: %w", err)
	}

	return riders, nil
}

// Decide переводит заявку pending -> approved/rejected ровно один раз.
// Одобрение дополнительно повышает роль пользователя до rider - разовый
// необратимый грант. Отклонение побочных эффектов не имеет.
func (s *Rider) Decide(ctx context.Context, riderID int64, decision entities.RiderStatusType, email string) (*entities.Rider, error) {
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}
	if decision != entities.RiderApproved && decision != entities.RiderRejected {
		return nil, ErrInvalidDecision
	}
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	var decided *entities.Rider
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		rider, err := s.repository.UpdateStatusIfPending(ctx, riderID, decision)
		if err != nil {
			return fmt.Errorf("update rider status: %w", err)
		}

		if decision == entities.RiderApproved {
			err := s.userRepository.UpdateRoleByEmail(ctx, email, entities.RoleRider)
			if err != nil {
				return fmt.Errorf("promote user to rider: %w", err)
			}
		}

		decided = rider
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decided, nil
}

func (s *Rider) SetWorkStatus(ctx context.Context, riderID int64, from, to entities.RiderWorkStatusType) (*entities.Rider, error) {
	rider, err := s.repository.UpdateWorkStatus(ctx, riderID, from, to)
	if err != nil {
		return nil, fmt.Errorf("update rider work status: %w", err)
	}
	return rider, nil
}

// DeliveriesPerDay - агрегат только на чтение, пересчитывается запросом.
func (s *Rider) DeliveriesPerDay(ctx context.Context, riderEmail string) ([]entities.DeliveryDayCount, error) {
	if !isValidEmail(riderEmail) {
		return nil, ErrInvalidEmail
	}

	report, err := s.repository.CountDeliveredPerDay(ctx, riderEmail)
	if err != nil {
		return nil, fmt.Errorf("count delivered per day: %w", err)
	}
	return report, nil
}
