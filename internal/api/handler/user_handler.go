package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialnet/community-api/internal/api/metrics"
	"github.com/socialnet/community-api/internal/core/domain"
	"github.com/socialnet/community-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users.
//
// @Summary      Find all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id.
//
// @Summary      Find user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "id of user"
// @Success      200  {object}  domain.User
// @Failure      400  {string}  string
// @Failure      401  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), parseID(c.Param("id")))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.String(http.StatusBadRequest, msgUserNotFoundRetrieve)
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /users.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      userRequest  true  "User fields"
// @Success      201   {object}  domain.User
// @Failure      400   {array}   domain.FieldError
// @Failure      401   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, ve.Fields)
		}
		if errors.Is(err, domain.ErrEmailExists) {
			return c.String(http.StatusBadRequest, msgEmailExists)
		}
		return err
	}

	metrics.UsersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, user)
}

// Update handles PUT /users/:id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "id of user"
// @Param        body  body      userRequest  true  "User fields"
// @Success      201   {object}  domain.User
// @Failure      400   {array}   domain.FieldError
// @Failure      401   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.UpdateUser(c.Request().Context(), parseID(c.Param("id")), ports.UpdateUserInput{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, ve.Fields)
		}
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.String(http.StatusBadRequest, msgUserNotFoundUpdate)
		case errors.Is(err, domain.ErrEmailExists):
			return c.String(http.StatusBadRequest, msgEmailExists)
		}
		return err
	}

	metrics.UsersUpdatedTotal.Inc()
	return c.JSON(http.StatusCreated, user)
}

// Delete handles DELETE /users/:id. A user may only delete themselves.
//
// @Summary      Delete user by id
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  int  true  "id of user"
// @Success      204
// @Failure      400  {string}  string
// @Failure      401  {object}  map[string]string
// @Failure      403  {string}  string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	_, email, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteUser(c.Request().Context(), parseID(c.Param("id")), email); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.String(http.StatusBadRequest, msgUserNotFoundDelete)
		case errors.Is(err, domain.ErrSelfDeleteOnly):
			return c.String(http.StatusForbidden, msgSelfDeleteOnly)
		}
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// PurgeTestUsers handles DELETE /testusers. Always answers 204, even when no
// account matched.
//
// @Summary      Delete users generated by integration and load tests
// @Tags         users
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /testusers [delete]
func (h *UserHandler) PurgeTestUsers(c echo.Context) error {
	n, err := h.service.PurgeTestUsers(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.TestUsersPurgedTotal.Add(float64(n))
	return c.NoContent(http.StatusNoContent)
}
