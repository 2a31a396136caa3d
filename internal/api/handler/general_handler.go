package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Hello handles GET / — the only unprotected content route.
//
// @Summary      Hello world
// @Tags         general
// @Produce      plain
// @Success      200  {string}  string
// @Router       / [get]
func Hello(c echo.Context) error {
	return c.String(http.StatusOK, "Hello World!")
}
