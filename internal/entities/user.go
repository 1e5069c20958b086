package entities

import "time"

type User struct {
	ID        int64
	Email     string
	Role      UserRoleType
	CreatedAt time.Time
}

type UserRoleType string

const (
	RoleUser  UserRoleType = "user"
	RoleRider UserRoleType = "rider"
	RoleAdmin UserRoleType = "admin"
)

func (t UserRoleType) String() string {
	return string(t)
}
