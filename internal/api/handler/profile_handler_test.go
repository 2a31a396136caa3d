package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/socialnet/community-api/internal/core/domain"
	"github.com/socialnet/community-api/internal/core/ports"
)

func TestProfileHandler_Get_UsesAuthenticatedId(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, id int64) (*domain.User, error) {
			if id != 8 {
				t.Fatalf("expected lookup for authenticated id 8, got %d", id)
			}
			return &domain.User{ID: id, Email: "aaron.so@test.com", Name: "Aaron So"}, nil
		},
	}
	c, rec := newTestContext(t, http.MethodGet, "/edit-profile", "")
	c.Set("user_id", int64(8))
	c.Set("email", "aaron.so@test.com")

	if err := NewProfileHandler(stub).Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user.ID != 8 {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestProfileHandler_Get_Unauthenticated(t *testing.T) {
	stub := &stubUserService{}
	c, _ := newTestContext(t, http.MethodGet, "/edit-profile", "")

	err := NewProfileHandler(stub).Get(c)
	if err == nil {
		t.Fatalf("expected error without auth claims")
	}
}

func TestProfileHandler_Update_Success(t *testing.T) {
	stub := &stubUserService{
		profileFn: func(ctx context.Context, id int64, input ports.UpdateProfileInput) (*domain.User, error) {
			if id != 8 {
				t.Fatalf("unexpected id %d", id)
			}
			if input.Location != "Victoria, Virginia" || input.AboutMe != "I like to cook and eat." {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{
				ID:       id,
				Email:    "aaron.so@test.com",
				Name:     "Aaron So",
				Location: input.Location,
				AboutMe:  input.AboutMe,
			}, nil
		},
	}
	c, rec := newTestContext(t, http.MethodPost, "/edit-profile",
		`{"name":"Renamed","location":"Victoria, Virginia","aboutMe":"I like to cook and eat."}`)
	c.Set("user_id", int64(8))
	c.Set("email", "aaron.so@test.com")

	if err := NewProfileHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProfileHandler_Update_NotFoundIs400(t *testing.T) {
	stub := &stubUserService{
		profileFn: func(ctx context.Context, id int64, input ports.UpdateProfileInput) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	c, rec := newTestContext(t, http.MethodPost, "/edit-profile", `{"location":"Nowhere"}`)
	c.Set("user_id", int64(8))
	c.Set("email", "aaron.so@test.com")

	if err := NewProfileHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec.Body.String() != msgProfileNotFound {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}
