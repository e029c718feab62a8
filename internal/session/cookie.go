package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"claimpilot/internal/models"
)

// CookieName is the frontend's own session cookie. Its value is a signed
// token wrapping the backend credential plus the identity, so route guards
// and the navigation chrome can read role without a backend round-trip.
const CookieName = "claimpilot_session"

// Codec signs and verifies the session cookie payload.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a cookie value for an authenticated identity.
func (c *Codec) Issue(id models.Identity, backendToken string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   id.Email,
		"role":  id.Role,
		"first": id.FirstName,
		"last":  id.LastName,
		"tok":   backendToken,
		"exp":   now.Add(c.ttl).Unix(),
		"iat":   now.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies a cookie value and reconstructs the session.
func (c *Codec) Decode(raw string) (Session, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return Session{}, errors.New("invalid session token")
	}
	mapc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, errors.New("invalid session claims")
	}
	s := Session{State: StateAuthenticated}
	s.Identity.Email, _ = mapc["sub"].(string)
	s.Identity.Role, _ = mapc["role"].(string)
	s.Identity.FirstName, _ = mapc["first"].(string)
	s.Identity.LastName, _ = mapc["last"].(string)
	s.Token, _ = mapc["tok"].(string)
	if s.Token == "" {
		return Session{}, errors.New("session has no backend credential")
	}
	return s, nil
}

// SetCookie writes the session cookie on a response.
func (c *Codec) SetCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func (c *Codec) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
