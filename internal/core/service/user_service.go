package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/socialnet/community-api/internal/core/domain"
	"github.com/socialnet/community-api/internal/core/ports"
)

// listLimit caps every listing endpoint.
const listLimit = 20

// testEmailSuffix marks accounts created by integration and load tests.
const testEmailSuffix = "@test.com"

// UserService implements account management and profile editing.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.Find(ctx, listLimit)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// CreateUser builds a user with the default role, validates it, enforces
// email uniqueness and persists it.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	role, err := s.roles.FindByName(ctx, domain.RoleNameUser)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(input.Email, input.Name, *role)
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := domain.Validate(user); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, user.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	created, err := s.users.Save(ctx, &user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return created, nil
}

// UpdateUser overwrites name and email on an existing user, validates the
// result and enforces uniqueness against every other user.
func (s *UserService) UpdateUser(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.Email = input.Email

	if err := domain.Validate(*user); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmailExcluding(ctx, user.Email, user.ID); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	return s.users.Save(ctx, user)
}

// DeleteUser removes a user, provided the acting account is the target itself.
func (s *UserService) DeleteUser(ctx context.Context, id int64, actorEmail string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if actorEmail != user.Email {
		return domain.ErrSelfDeleteOnly
	}

	if err := s.users.Remove(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

// PurgeTestUsers removes every account with a test address. Removing zero
// users is not an error.
func (s *UserService) PurgeTestUsers(ctx context.Context) (int, error) {
	users, err := s.users.FindByEmailSuffix(ctx, testEmailSuffix)
	if err != nil {
		return 0, err
	}

	if err := s.users.RemoveMany(ctx, users); err != nil {
		return 0, err
	}

	s.logger.Info().Int("count", len(users)).Msg("test users purged")
	return len(users), nil
}

// UpdateProfile overwrites location and aboutMe on the acting user's record.
// The bound name field is deliberately not applied.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Location = input.Location
	user.AboutMe = input.AboutMe

	if err := domain.Validate(*user); err != nil {
		return nil, err
	}

	return s.users.Save(ctx, user)
}
