package ports

import (
	"context"

	"github.com/socialnet/community-api/internal/core/domain"
)

// RoleRepository defines the persistence operations for roles.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	Save(ctx context.Context, role *domain.Role) (*domain.Role, error)
}
