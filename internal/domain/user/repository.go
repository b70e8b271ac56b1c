package user

import (
	"context"

	"campusdesk/internal/shared/authorization"
)

type Filter struct {
	Role     *authorization.Role
	Status   *Status
	Page     int
	PageSize int
}

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int64, error)
}

// PasswordHasher is the opaque hashing collaborator.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
