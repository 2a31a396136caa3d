package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/socialnet/community-api/internal/core/domain"
	"github.com/socialnet/community-api/internal/core/ports"
)

type stubUserService struct {
	listFn    func(ctx context.Context) ([]domain.User, error)
	getFn     func(ctx context.Context, id int64) (*domain.User, error)
	createFn  func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	updateFn  func(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn  func(ctx context.Context, id int64, actorEmail string) error
	purgeFn   func(ctx context.Context) (int, error)
	profileFn func(ctx context.Context, id int64, input ports.UpdateProfileInput) (*domain.User, error)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) UpdateUser(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id int64, actorEmail string) error {
	return s.deleteFn(ctx, id, actorEmail)
}

func (s *stubUserService) PurgeTestUsers(ctx context.Context) (int, error) {
	return s.purgeFn(ctx)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, id int64, input ports.UpdateProfileInput) (*domain.User, error) {
	return s.profileFn(ctx, id, input)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_List(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: 1, Email: "first.user@test.com", Name: "First User"},
				{ID: 2, Email: "second.user@test.com", Name: "Second User"},
			}, nil
		},
	}
	c, rec := newTestContext(t, http.MethodGet, "/users", "")

	if err := NewUserHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserHandler_Get_NotFoundIs400(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, id int64) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	c, rec := newTestContext(t, http.MethodGet, "/users/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := NewUserHandler(stub).Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec.Body.String() != msgUserNotFoundRetrieve {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestUserHandler_Get_NonNumericIdTreatedAsZero(t *testing.T) {
	var requested int64 = -1
	stub := &stubUserService{
		getFn: func(ctx context.Context, id int64) (*domain.User, error) {
			requested = id
			return nil, domain.ErrUserNotFound
		},
	}
	c, rec := newTestContext(t, http.MethodGet, "/users/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := NewUserHandler(stub).Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if requested != 0 {
		t.Fatalf("expected lookup for id 0, got %d", requested)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Create_Success(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			if input.Email != "aaron.so@test.com" || input.Name != "Aaron So" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: 1, Email: input.Email, Name: input.Name}, nil
		},
	}
	c, rec := newTestContext(t, http.MethodPost, "/users",
		`{"email":"aaron.so@test.com","name":"Aaron So"}`)

	if err := NewUserHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestUserHandler_Create_ValidationArray(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			return nil, &domain.ValidationError{Fields: []domain.FieldError{
				{Field: "email", Message: "email must be a valid email"},
				{Field: "name", Message: "name must be at least 4 characters"},
			}}
		},
	}
	c, rec := newTestContext(t, http.MethodPost, "/users", `{"email":"bad","name":"Ab"}`)

	if err := NewUserHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var fields []domain.FieldError
	if err := json.Unmarshal(rec.Body.Bytes(), &fields); err != nil {
		t.Fatalf("expected a json array of field errors: %v", err)
	}
	if len(fields) != 2 || fields[0].Field != "email" {
		t.Fatalf("unexpected validation payload: %+v", fields)
	}
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrEmailExists
		},
	}
	c, rec := newTestContext(t, http.MethodPost, "/users",
		`{"email":"aaron.so@test.com","name":"Aaron So"}`)

	if err := NewUserHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec.Body.String() != msgEmailExists {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestUserHandler_Update_Success(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
			if id != 5 {
				t.Fatalf("unexpected id %d", id)
			}
			return &domain.User{ID: id, Email: input.Email, Name: input.Name}, nil
		},
	}
	c, rec := newTestContext(t, http.MethodPut, "/users/5",
		`{"email":"aaron.new@test.com","name":"Aaron New"}`)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := NewUserHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Update_NotFoundIs400(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	c, rec := newTestContext(t, http.MethodPut, "/users/99",
		`{"email":"aaron.so@test.com","name":"Aaron So"}`)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := NewUserHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec.Body.String() != msgUserNotFoundUpdate {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestUserHandler_Delete(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"success", nil, http.StatusNoContent, ""},
		{"not found", domain.ErrUserNotFound, http.StatusBadRequest, msgUserNotFoundDelete},
		{"foreign user", domain.ErrSelfDeleteOnly, http.StatusForbidden, msgSelfDeleteOnly},
	}

	for _, tc := range cases {
		stub := &stubUserService{
			deleteFn: func(ctx context.Context, id int64, actorEmail string) error {
				if actorEmail != "aaron.so@test.com" {
					t.Fatalf("%s: unexpected actor %q", tc.name, actorEmail)
				}
				return tc.err
			},
		}
		c, rec := newTestContext(t, http.MethodDelete, "/users/3", "")
		c.SetParamNames("id")
		c.SetParamValues("3")
		c.Set("user_id", int64(3))
		c.Set("email", "aaron.so@test.com")

		if err := NewUserHandler(stub).Delete(c); err != nil {
			t.Fatalf("%s: handler error: %v", tc.name, err)
		}
		if rec.Code != tc.wantCode {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.wantCode, rec.Code)
		}
		if rec.Body.String() != tc.wantBody {
			t.Fatalf("%s: unexpected body %q", tc.name, rec.Body.String())
		}
	}
}

func TestUserHandler_PurgeTestUsers(t *testing.T) {
	stub := &stubUserService{
		purgeFn: func(ctx context.Context) (int, error) { return 0, nil },
	}
	c, rec := newTestContext(t, http.MethodDelete, "/testusers", "")

	if err := NewUserHandler(stub).PurgeTestUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 even with zero matches, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}
