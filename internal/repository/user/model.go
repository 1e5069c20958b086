package user

import "time"

type UserDB struct {
	ID        int64
	Email     string
	Role      string
	CreatedAt time.Time
}
