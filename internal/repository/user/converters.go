package user

import "parcelhub/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:        u.ID,
		Email:     u.Email,
		Role:      entities.UserRoleType(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
