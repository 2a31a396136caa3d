package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialnet/community-api/internal/core/domain"
	"github.com/socialnet/community-api/internal/core/ports"
)

// ProfileHandler handles self-service reads and edits of the authenticated
// user's own record.
type ProfileHandler struct {
	service ports.UserService
}

func NewProfileHandler(service ports.UserService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /edit-profile — a user lookup keyed by the authenticated id.
//
// @Summary      Get profile of the authenticated user
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      400  {string}  string
// @Failure      401  {object}  map[string]string
// @Router       /edit-profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	id, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	user, err := h.service.GetUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.String(http.StatusBadRequest, msgUserNotFoundRetrieve)
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles POST /edit-profile. Location and aboutMe are applied; the
// bound name field is accepted but never applied here.
//
// @Summary      Edit profile of the authenticated user
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile fields"
// @Success      201   {object}  domain.User
// @Failure      400   {array}   domain.FieldError
// @Failure      401   {object}  map[string]string
// @Router       /edit-profile [post]
func (h *ProfileHandler) Update(c echo.Context) error {
	id, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), id, ports.UpdateProfileInput{
		Name:     req.Name,
		Location: req.Location,
		AboutMe:  req.AboutMe,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, ve.Fields)
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.String(http.StatusBadRequest, msgProfileNotFound)
		}
		return err
	}
	return c.JSON(http.StatusCreated, user)
}
