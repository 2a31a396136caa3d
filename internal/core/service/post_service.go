package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/socialnet/community-api/internal/core/domain"
	"github.com/socialnet/community-api/internal/core/ports"
)

// PostService exposes the read-only post surface.
type PostService struct {
	posts  ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, logger: logger}
}

func (s *PostService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.posts.Find(ctx, listLimit)
}
