package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialnet/community-api/internal/core/ports"
)

// PostHandler handles the read-only post surface.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /posts.
//
// @Summary      Find all posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Post
// @Failure      401  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}
