package repository

import (
	"context"

	"github.com/accadex/accadex/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create assigns u.ID and returns ErrDuplicateEmail if the email is taken.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	DeleteAll(ctx context.Context) error
}
