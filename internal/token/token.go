// Package token issues and verifies the signed session tokens that prove a
// user's identity, and moves them in and out of the HTTP-only session
// cookie.  Tokens are stateless: validity is established purely by the HMAC
// signature and the embedded expiry, so there is no server-side session
// table and no revocation before natural expiry.
package token

import (
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// CookieName is the session cookie holding the signed token.
const CookieName = "token"

// Service creates and verifies session tokens.  It is injected into the
// auth handler and middleware so tests can construct one with a known
// secret and lifetime.
type Service struct {
	secret []byte
	ttl    time.Duration
	secure bool // set the Secure cookie attribute (production only)
}

// New returns a Service signing with secret, issuing tokens valid for ttl.
// secure controls the cookie's Secure attribute and should be true only when
// the service is reached over HTTPS.
func New(secret string, ttl time.Duration, secure bool) *Service {
	return &Service{secret: []byte(secret), ttl: ttl, secure: secure}
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration { return s.ttl }

// Issue builds and signs an HS256 JWT for the user.  Claims: sub (user id),
// exp (now+TTL) and iat.
func (s *Service) Issue(userID uint64) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(userID, 10),
		"exp": now.Add(s.ttl).Unix(),
		"iat": now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks the signature and expiry of raw and extracts the user id.
// Any failure (bad signature, malformed token, wrong algorithm, expiry)
// comes back as ok=false; parse errors never escape this package.
func (s *Service) Verify(raw string) (userID uint64, ok bool) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	switch sub := claims["sub"].(type) {
	case string:
		id, err := strconv.ParseUint(sub, 10, 64)
		if err != nil || id == 0 {
			return 0, false
		}
		return id, true
	case float64:
		// tolerated for tokens minted before sub became a string
		if sub <= 0 {
			return 0, false
		}
		return uint64(sub), true
	}
	return 0, false
}

// Attach sets raw as the session cookie on the response.  HttpOnly keeps it
// away from page scripts and SameSite=Strict keeps cross-site requests from
// carrying it.
func (s *Service) Attach(c echo.Context, raw string) {
	c.SetCookie(s.cookie(raw, s.ttl))
}

// Clear overwrites the session cookie with an empty value and a past expiry
// so the client drops it immediately.
func (s *Service) Clear(c echo.Context) {
	c.SetCookie(s.cookie("", -time.Hour))
}

func (s *Service) cookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		Expires:  time.Now().UTC().Add(maxAge),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	}
}
