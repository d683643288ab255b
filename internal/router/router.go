package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/planner-api/internal/config"
	"github.com/iliyamo/planner-api/internal/handler"
	"github.com/iliyamo/planner-api/internal/middleware"
	"github.com/iliyamo/planner-api/internal/repository"
	"github.com/iliyamo/planner-api/internal/token"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth wires the auth endpoints.  Sign-up and sign-in live under
// /api/auth without authentication (but behind the rate limiter); sign-out
// and /api/me require a valid session cookie via RequireAuth.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, tokens *token.Service, users repository.UserStore, rl config.RateLimitConfig, rdb *redis.Client) {
	g := e.Group("/api/auth")
	g.Use(middleware.RateLimit(rl, rdb))
	g.POST("/signup", a.Signup)
	g.POST("/signin", a.Signin)
	g.POST("/signout", a.Signout, middleware.RequireAuth(tokens, users))

	protected := e.Group("/api")
	protected.Use(middleware.RequireAuth(tokens, users))
	protected.GET("/me", a.Me)
}
