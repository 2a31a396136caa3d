package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/socialnet/community-api/internal/core/domain"
	"github.com/socialnet/community-api/internal/core/ports"
)

func seedLoginUser(t *testing.T, repo *stubUserRepo, email, password string) *domain.User {
	t.Helper()
	svc := NewUserService(repo, stubRoleRepo{}, zerolog.Nop())
	user, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Email:    email,
		Name:     "Aaron So",
		Password: password,
	})
	if err != nil {
		t.Fatalf("seed login user: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	created := seedLoginUser(t, repo, "aaron.so@test.com", "s3cret")
	svc := NewAuthService(repo, "secret", time.Hour)

	token, user, err := svc.Login(context.Background(), "aaron.so@test.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || user == nil || user.ID != created.ID {
		t.Fatalf("unexpected login result: token=%q user=%+v", token, user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["email"] != "aaron.so@test.com" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}
	if int64(claims["id"].(float64)) != created.ID {
		t.Fatalf("expected id claim %d, got %v", created.ID, claims["id"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedLoginUser(t, repo, "aaron.so@test.com", "goodpass")
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "aaron.so@test.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownOrPasswordless(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost.user@test.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}

	// accounts created without a password cannot log in
	userSvc := NewUserService(repo, stubRoleRepo{}, zerolog.Nop())
	if _, err := userSvc.CreateUser(context.Background(), ports.CreateUserInput{
		Email: "nopass.user@test.com",
		Name:  "No Pass",
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nopass.user@test.com", "anything"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for passwordless account, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
