package ports

import (
	"context"

	"github.com/taplog/attendance-system/internal/core/domain"
)

// CreateUserInput carries a validated registration request.
type CreateUserInput struct {
	Name        string
	UID         string
	Gender      string
	Email       string
	PhoneNumber string
}

// UpdateUserInput carries a validated edit request. An empty UID leaves the
// identifier unchanged.
type UpdateUserInput struct {
	Name        string
	UID         string
	Gender      string
	Email       string
	PhoneNumber string
}

// UserService defines the user directory use cases consumed by the CRUD
// endpoints.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
