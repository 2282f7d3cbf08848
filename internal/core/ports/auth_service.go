package ports

import (
	"context"

	"github.com/taplog/attendance-system/internal/core/domain"
)

// AuthService issues tokens for the destructive admin endpoints. The
// dashboard read surface is public; only event/user deletion needs a role.
type AuthService interface {
	Register(ctx context.Context, username, password, email, role string) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (string, *domain.Account, error)
}
