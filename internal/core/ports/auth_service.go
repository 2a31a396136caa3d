package ports

import (
	"context"

	"github.com/socialnet/community-api/internal/core/domain"
)

// AuthService issues bearer tokens for account credentials.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
