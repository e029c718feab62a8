package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"claimpilot/internal/gateway"
	"claimpilot/internal/models"
)

type fakeBackend struct {
	loginToken string
	loginErr   error
	identity   *models.Identity
	meErr      error
	logoutErr  error
	logoutHits int
}

func (f *fakeBackend) Login(ctx context.Context, username, password string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeBackend) Me(ctx context.Context, token string) (*models.Identity, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.identity, nil
}

func (f *fakeBackend) Logout(ctx context.Context, token string) error {
	f.logoutHits++
	return f.logoutErr
}

func newProvider(backend Backend) *Provider {
	return NewProvider(backend, NewCodec("test-secret", time.Hour), zap.NewNop().Sugar())
}

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)
	id := models.Identity{Role: models.RoleAdmin, FirstName: "Ada", LastName: "Ng", Email: "ada@claimpilot.io"}

	raw, err := codec.Issue(id, "backend-token")
	require.NoError(t, err)

	s, err := codec.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, s.State)
	assert.Equal(t, id, s.Identity)
	assert.Equal(t, "backend-token", s.Token)
}

func TestCodecRejectsTamperedToken(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)
	raw, err := codec.Issue(models.Identity{Role: models.RoleAdmin}, "tok")
	require.NoError(t, err)

	_, err = codec.Decode(raw + "x")
	assert.Error(t, err)

	other := NewCodec("different-secret", time.Hour)
	_, err = other.Decode(raw)
	assert.Error(t, err)
}

func TestCheckSession_Transitions(t *testing.T) {
	adjuster := &models.Identity{Role: models.RoleAdjuster, FirstName: "Alex", Email: "alex@claimpilot.io"}
	tests := []struct {
		name    string
		backend *fakeBackend
		token   string
		want    State
	}{
		{"valid token authenticates", &fakeBackend{identity: adjuster}, "tok", StateAuthenticated},
		{"401 lands anonymous", &fakeBackend{meErr: gateway.ErrUnauthorized}, "tok", StateAnonymous},
		{"network failure lands anonymous", &fakeBackend{meErr: errors.New("connection refused")}, "tok", StateAnonymous},
		{"empty token is anonymous", &fakeBackend{identity: adjuster}, "", StateAnonymous},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newProvider(tt.backend).CheckSession(context.Background(), tt.token)
			assert.Equal(t, tt.want, s.State)
			if tt.want == StateAuthenticated {
				assert.Equal(t, *adjuster, s.Identity)
				assert.Equal(t, tt.token, s.Token)
			} else {
				assert.Empty(t, s.Token)
			}
		})
	}
}

func TestLogin_RefreshesIdentity(t *testing.T) {
	backend := &fakeBackend{
		loginToken: "fresh-token",
		identity:   &models.Identity{Role: models.RoleAdmin, Email: "ada@claimpilot.io"},
	}
	s, err := newProvider(backend).Login(context.Background(), "ada@claimpilot.io", "pw")
	require.NoError(t, err)
	assert.True(t, s.HasRole(models.RoleAdmin))
	assert.Equal(t, "fresh-token", s.Token)
}

func TestLogin_BadCredentialsStaysAnonymous(t *testing.T) {
	backend := &fakeBackend{loginErr: gateway.ErrUnauthorized}
	s, err := newProvider(backend).Login(context.Background(), "ada@claimpilot.io", "wrong")
	assert.Error(t, err)
	assert.Equal(t, StateAnonymous, s.State)
}

func TestLogin_ProfileUnavailable(t *testing.T) {
	backend := &fakeBackend{loginToken: "tok", meErr: errors.New("boom")}
	_, err := newProvider(backend).Login(context.Background(), "ada@claimpilot.io", "pw")
	assert.ErrorIs(t, err, ErrProfileUnavailable)
}

func TestLogout_BestEffort(t *testing.T) {
	backend := &fakeBackend{logoutErr: errors.New("backend down")}
	p := newProvider(backend)
	p.Logout(context.Background(), "tok")
	assert.Equal(t, 1, backend.logoutHits)

	// no backend call without a credential
	p.Logout(context.Background(), "")
	assert.Equal(t, 1, backend.logoutHits)
}

func TestSessionHasRole(t *testing.T) {
	s := Session{State: StateAuthenticated, Identity: models.Identity{Role: models.RoleAdjuster}}
	assert.True(t, s.HasRole(models.RoleAdjuster))
	assert.False(t, s.HasRole(models.RoleAdmin))

	anon := Session{State: StateAnonymous, Identity: models.Identity{Role: models.RoleAdmin}}
	assert.False(t, anon.HasRole(models.RoleAdmin))
}
