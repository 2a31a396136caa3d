package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUser extracts the authenticated user's claims injected by the Auth
// middleware. A missing id means the middleware did not run; fail fast with
// 401 before touching any service.
func ctxUser(c echo.Context) (id int64, email string, err error) {
	id, ok := c.Get("user_id").(int64)
	if !ok {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ = c.Get("email").(string)
	return id, email, nil
}
