package ports

import (
	"context"

	"github.com/socialnet/community-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted when registering a user.
// Password is optional; without one the account cannot log in directly.
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
}

// UpdateUserInput carries the fields overwritten on a full user update.
type UpdateUserInput struct {
	Email string
	Name  string
}

// UpdateProfileInput carries the fields accepted on a profile edit. Name is
// bound from the payload but profile names stay immutable through this path.
type UpdateProfileInput struct {
	Name     string
	Location string
	AboutMe  string
}

// UserService defines the use-case operations for user accounts.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	// DeleteUser removes the user with the given id, provided actorEmail
	// matches the stored record (self-delete-only policy).
	DeleteUser(ctx context.Context, id int64, actorEmail string) error
	// PurgeTestUsers removes every user with a @test.com address and reports
	// how many were removed.
	PurgeTestUsers(ctx context.Context) (int, error)
	UpdateProfile(ctx context.Context, id int64, input UpdateProfileInput) (*domain.User, error)
}
