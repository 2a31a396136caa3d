package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/socialnet/community-api/internal/core/domain"
)

const postsCollection = "posts"

// PostRepository persists posts in MongoDB.
type PostRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{db: db, col: db.Collection(postsCollection)}
}

func (r *PostRepository) Find(ctx context.Context, limit int) ([]domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := make([]domain.Post, 0, limit)
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) Save(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if post.ID == 0 {
		id, err := nextID(ctx, r.db, postsCollection)
		if err != nil {
			return nil, err
		}
		post.ID = id
		post.Timestamp = time.Now().UTC()
	}

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": post.ID}, post, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return post, nil
}
