package user

import "context"

type UserFilter struct {
	Role     *string
	Page     int
	PageSize int
}

type UserRepository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, userID uint) error
	FindByID(ctx context.Context, userID uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter UserFilter) ([]*User, int64, error)
}
