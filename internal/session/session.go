// Package session tracks who is logged in. The provider is the only
// transition point between Unknown, Anonymous and Authenticated; consumers
// read the current state from the request context and must treat Unknown as
// "not yet determined", not as logged out.
package session

import (
	"context"

	"go.uber.org/zap"

	"claimpilot/internal/models"
)

type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

// Session is the current identity snapshot. Token is the backend session
// credential and is only set when State is StateAuthenticated.
type Session struct {
	State    State
	Identity models.Identity
	Token    string
}

func (s Session) Authenticated() bool { return s.State == StateAuthenticated }

func (s Session) HasRole(role string) bool {
	return s.State == StateAuthenticated && s.Identity.Role == role
}

// Backend is the slice of the gateway the provider needs.
type Backend interface {
	Login(ctx context.Context, username, password string) (string, error)
	Me(ctx context.Context, token string) (*models.Identity, error)
	Logout(ctx context.Context, token string) error
}

// Provider owns the login/checkSession/logout transitions.
type Provider struct {
	backend Backend
	codec   *Codec
	lg      *zap.SugaredLogger
}

func NewProvider(backend Backend, codec *Codec, lg *zap.SugaredLogger) *Provider {
	return &Provider{backend: backend, codec: codec, lg: lg}
}

func (p *Provider) Codec() *Codec { return p.codec }

// CheckSession asks the identity endpoint whether the backend credential is
// still good. Success is the only transition into Authenticated; a 401 or
// any failure lands in Anonymous.
func (p *Provider) CheckSession(ctx context.Context, token string) Session {
	if token == "" {
		return Session{State: StateAnonymous}
	}
	id, err := p.backend.Me(ctx, token)
	if err != nil {
		p.lg.Debugw("session check failed", "error", err)
		return Session{State: StateAnonymous}
	}
	return Session{State: StateAuthenticated, Identity: *id, Token: token}
}

// Login exchanges credentials for a backend session, then refreshes the
// identity through CheckSession. No automatic retry on failure.
func (p *Provider) Login(ctx context.Context, username, password string) (Session, error) {
	token, err := p.backend.Login(ctx, username, password)
	if err != nil {
		return Session{State: StateAnonymous}, err
	}
	s := p.CheckSession(ctx, token)
	if !s.Authenticated() {
		return s, ErrProfileUnavailable
	}
	return s, nil
}

// Logout invalidates the backend session best-effort. The caller clears the
// cookie and navigates home regardless of the outcome.
func (p *Provider) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := p.backend.Logout(ctx, token); err != nil {
		p.lg.Warnw("backend logout failed", "error", err)
	}
}
