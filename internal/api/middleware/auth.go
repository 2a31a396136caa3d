package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Presence records that an authenticated user was seen. Implementations must
// tolerate failure; a broken tracker never blocks a request.
type Presence interface {
	Mark(ctx context.Context, userID int64) error
}

// Auth validates the bearer JWT and injects the authenticated user's claims
// (id, email, name) into the request context. When a presence tracker is
// given, the user is additionally marked as seen.
func Auth(jwtSecret string, presence Presence) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, ok := claims["id"].(float64)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
			}

			c.Set("user_id", int64(userID))
			c.Set("email", claims["email"])
			c.Set("name", claims["name"])

			if presence != nil {
				_ = presence.Mark(c.Request().Context(), int64(userID))
			}

			return next(c)
		}
	}
}
