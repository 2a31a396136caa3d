package ports

import (
	"context"

	"github.com/socialnet/community-api/internal/core/domain"
)

// PostService defines the use-case operations for posts.
type PostService interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
}
