package ports

import (
	"context"

	"github.com/taplog/attendance-system/internal/core/domain"
)

// UserRepository is the user directory: canonical identifier to identity.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUID looks a user up by canonical identifier. Returns
	// domain.ErrUserNotFound when the identifier is unregistered; the tap
	// resolver treats that as a first-class outcome, not a failure.
	FindByUID(ctx context.Context, uid string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns all users, newest first.
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}

// UserUpdate carries the mutable user fields. Empty UID means "leave the
// identifier unchanged".
type UserUpdate struct {
	Name        string
	UID         string
	Gender      string
	Email       string
	PhoneNumber string
}
