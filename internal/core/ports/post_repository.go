package ports

import (
	"context"

	"github.com/socialnet/community-api/internal/core/domain"
)

// PostRepository defines the persistence operations for posts.
type PostRepository interface {
	// Find returns up to limit posts in repository default order.
	Find(ctx context.Context, limit int) ([]domain.Post, error)
	Save(ctx context.Context, post *domain.Post) (*domain.Post, error)
}
