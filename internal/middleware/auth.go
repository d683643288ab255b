package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/planner-api/internal/repository"
	"github.com/iliyamo/planner-api/internal/token"
)

// RequireAuth returns the gatekeeper middleware for protected routes.  It
// reads the session cookie, verifies the token, resolves the user id to a
// live account and stores the projection in the echo context under "user"
// (and the id under "user_id").  Requests fail with 401 when the cookie is
// missing, the token does not verify, or the account no longer exists; a
// store outage yields 500.
func RequireAuth(tokens *token.Service, users repository.UserStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(token.CookieName)
			if err != nil || cookie.Value == "" {
				return unauthorized(c, "authentication required")
			}

			userID, ok := tokens.Verify(cookie.Value)
			if !ok {
				return unauthorized(c, "invalid or expired token")
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			u, err := users.GetByID(ctx, userID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return unauthorized(c, "user not found")
				}
				log.Printf("%s %s: resolve user %d: %v", c.Request().Method, c.Path(), userID, err)
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"success": false,
					"message": "internal error",
				})
			}

			c.Set("user", u)
			c.Set("user_id", u.ID)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"success": false,
		"message": msg,
	})
}
