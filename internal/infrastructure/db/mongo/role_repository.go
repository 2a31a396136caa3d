package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/socialnet/community-api/internal/core/domain"
)

const rolesCollection = "roles"

// RoleRepository persists roles in MongoDB.
type RoleRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{db: db, col: db.Collection(rolesCollection)}
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var role domain.Role
	if err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&role); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepository) Save(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if role.ID == 0 {
		id, err := nextID(ctx, r.db, rolesCollection)
		if err != nil {
			return nil, err
		}
		role.ID = id
	}

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": role.ID}, role, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return role, nil
}

// EnsureDefaultRoles seeds the three persistable preset roles. The anonymous
// role is never stored. Existing records are left untouched so operator
// edits to a mask survive restarts.
func (r *RoleRepository) EnsureDefaultRoles(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, name := range []string{
		domain.RoleNameUser,
		domain.RoleNameModerator,
		domain.RoleNameAdministrator,
	} {
		if _, err := r.FindByName(ctx, name); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrRoleNotFound) {
			return err
		}

		role := domain.GetRole(name)
		if _, err := r.Save(ctx, &role); err != nil {
			return err
		}
	}
	return nil
}
