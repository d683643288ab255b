package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/planner-api/internal/config"
	"github.com/iliyamo/planner-api/internal/model"
	"github.com/iliyamo/planner-api/internal/queue"
	"github.com/iliyamo/planner-api/internal/repository"
	"github.com/iliyamo/planner-api/internal/token"
	"github.com/iliyamo/planner-api/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.  Users and Tokens
// are injected so the handler can be exercised against a fake store and a
// test-keyed token service.
type AuthHandler struct {
	Cfg    config.Config
	Users  repository.UserStore
	Tokens *token.Service

	// dummyHash is compared against when sign-in hits an unknown email.
	// It is minted at the configured bcrypt cost so both 401 paths burn
	// the same work and response timing cannot reveal whether the address
	// is registered.
	dummyHash string
}

func NewAuthHandler(cfg config.Config, users repository.UserStore, tokens *token.Service) *AuthHandler {
	dummy, err := utils.HashPassword("not-a-real-password", cfg.BcryptCost)
	if err != nil {
		// out-of-range cost; the library default keeps the path working
		dummy, _ = utils.HashPassword("not-a-real-password", bcrypt.DefaultCost)
	}
	return &AuthHandler{Cfg: cfg, Users: users, Tokens: tokens, dummyHash: dummy}
}

// ----- DTOs -----

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type signinReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPart struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
type authResp struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    userPart `json:"user"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type errorResp struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors,omitempty"`
}

func project(u model.User) userPart {
	return userPart{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

// Signup: validate, create the user, set the session cookie and return the
// created projection.  The password never appears in any response.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResp{Message: "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var fields []fieldError
	if req.Name == "" {
		fields = append(fields, fieldError{Field: "name", Message: "name is required"})
	}
	if req.Email == "" {
		fields = append(fields, fieldError{Field: "email", Message: "email is required"})
	}
	if req.Password == "" {
		fields = append(fields, fieldError{Field: "password", Message: "password is required"})
	} else if len(req.Password) < 6 {
		fields = append(fields, fieldError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if len(fields) > 0 {
		return c.JSON(http.StatusBadRequest, errorResp{Message: "validation failed", Errors: fields})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return h.internalError(c, "signup failed", err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Create(ctx, req.Name, req.Email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, errorResp{Message: "email already registered"})
		}
		return h.internalError(c, "signup failed", err)
	}

	raw, err := h.Tokens.Issue(u.ID)
	if err != nil {
		return h.internalError(c, "signup failed", err)
	}
	h.Tokens.Attach(c, raw)

	if h.Cfg.RabbitURL != "" {
		// fire-and-forget; a broker outage must not fail the signup
		go func(ev queue.UserRegisteredEvent) {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer pubCancel()
			_ = queue.PublishUserRegistered(pubCtx, h.Cfg.RabbitURL, ev)
		}(queue.UserRegisteredEvent{
			UserID:       u.ID,
			Email:        u.Email,
			Name:         u.Name,
			RegisteredAt: u.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, authResp{
		Success: true,
		Message: "account created",
		User:    project(u),
	})
}

// Signin: verify credentials, set the session cookie.  Unknown email and
// wrong password produce byte-identical 401 responses, and the unknown-email
// path still performs a bcrypt comparison so timing matches too.
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResp{Message: "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var fields []fieldError
	if req.Email == "" {
		fields = append(fields, fieldError{Field: "email", Message: "email is required"})
	}
	if req.Password == "" {
		fields = append(fields, fieldError{Field: "password", Message: "password is required"})
	}
	if len(fields) > 0 {
		return c.JSON(http.StatusBadRequest, errorResp{Message: "validation failed", Errors: fields})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.VerifyPassword(h.dummyHash, req.Password)
			return invalidCredentials(c)
		}
		return h.internalError(c, "signin failed", err)
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return invalidCredentials(c)
	}

	raw, err := h.Tokens.Issue(u.ID)
	if err != nil {
		return h.internalError(c, "signin failed", err)
	}
	h.Tokens.Attach(c, raw)

	return c.JSON(http.StatusOK, authResp{
		Success: true,
		Message: "signed in",
		User:    project(u),
	})
}

// Signout clears the session cookie.  Tokens are stateless, so there is
// nothing to revoke server-side; the middleware has already authenticated
// the caller.
func (h *AuthHandler) Signout(c echo.Context) error {
	h.Tokens.Clear(c)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "signed out",
	})
}

// Me returns the authenticated user's projection.  The middleware stores
// the resolved user under "user".
func (h *AuthHandler) Me(c echo.Context) error {
	u, ok := c.Get("user").(model.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResp{Message: "authentication required"})
	}
	return c.JSON(http.StatusOK, authResp{Success: true, Message: "ok", User: project(u)})
}

func invalidCredentials(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorResp{Message: "invalid email or password"})
}

// internalError logs the underlying cause and answers with a generic 500.
// Outside production the cause is echoed back to ease debugging.
func (h *AuthHandler) internalError(c echo.Context, msg string, err error) error {
	log.Printf("%s %s: %s: %v", c.Request().Method, c.Path(), msg, err)
	if !h.Cfg.IsProduction() {
		msg = msg + ": " + err.Error()
	}
	return c.JSON(http.StatusInternalServerError, errorResp{Message: msg})
}
