package session

import (
	"context"
	"errors"
)

// ErrProfileUnavailable reports a login that succeeded against the login
// endpoint but whose identity could not be fetched afterwards.
var ErrProfileUnavailable = errors.New("unable to retrieve user profile")

type ctxKey string

const sessionKey ctxKey = "session"

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext returns the request's session, or an Unknown session when the
// middleware has not run.
func FromContext(ctx context.Context) Session {
	if v, ok := ctx.Value(sessionKey).(Session); ok {
		return v
	}
	return Session{State: StateUnknown}
}

// Token returns the backend credential for the request, or "".
func Token(ctx context.Context) string {
	return FromContext(ctx).Token
}
