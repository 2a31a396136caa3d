package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/socialnet/community-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository persists users in MongoDB with numeric ids drawn from the
// counters collection.
type UserRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db, col: db.Collection(usersCollection)}
}

func (r *UserRepository) Find(ctx context.Context, limit int) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := make([]domain.User, 0, limit)
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByEmailExcluding(ctx context.Context, email string, excludeID int64) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email, "_id": bson.M{"$ne": excludeID}})
}

func (r *UserRepository) FindByEmailSuffix(ctx context.Context, suffix string) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(suffix) + "$"}
	cur, err := r.col.Find(ctx, bson.M{"email": pattern})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []domain.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Save inserts or replaces the user. New records receive the next sequence id
// and their memberSince stamp; lastSeen is refreshed on every save.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	if user.ID == 0 {
		id, err := nextID(ctx, r.db, usersCollection)
		if err != nil {
			return nil, err
		}
		user.ID = id
		user.MemberSince = now
	}
	user.LastSeen = now

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user, options.Replace().SetUpsert(true))
	if err != nil {
		// The unique index on email closes the check-then-save race.
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Remove(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"_id": user.ID})
	return err
}

func (r *UserRepository) RemoveMany(ctx context.Context, users []domain.User) error {
	if len(users) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	_, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

// EnsureIndexes creates the unique email index backing the uniqueness contract.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user domain.User
	if err := r.col.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
