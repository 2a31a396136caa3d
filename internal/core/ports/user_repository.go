package ports

import (
	"context"

	"github.com/socialnet/community-api/internal/core/domain"
)

// UserRepository defines the persistence operations for users.
type UserRepository interface {
	// Find returns up to limit users in repository default order.
	Find(ctx context.Context, limit int) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByEmailExcluding returns a user holding email whose id differs from
	// excludeID, if any.
	FindByEmailExcluding(ctx context.Context, email string, excludeID int64) (*domain.User, error)
	// FindByEmailSuffix returns every user whose email ends with suffix.
	FindByEmailSuffix(ctx context.Context, suffix string) ([]domain.User, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	Remove(ctx context.Context, user *domain.User) error
	RemoveMany(ctx context.Context, users []domain.User) error
}
