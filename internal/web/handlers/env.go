package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"

	"claimpilot/internal/gateway"
	"claimpilot/internal/session"
)

// Env is what every handler factory closes over.
type Env struct {
	Gateway  *gateway.Client
	Sessions *session.Provider
	Renderer *Renderer
	Lg       *zap.SugaredLogger
}

// sessionExpired handles a backend rejection of the session credential: the
// frontend cookie is wrapping a token the backend no longer honors, so the
// session drops to anonymous and the user goes back through login. Reports
// whether the error was handled.
func sessionExpired(env *Env, w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, gateway.ErrUnauthorized) {
		return false
	}
	env.Lg.Infow("backend session expired", "path", r.URL.Path)
	env.Sessions.Codec().ClearCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
	return true
}

// claimID parses the {id} route parameter.
func claimID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// formValues pulls the named fields out of a parsed form post.
func formValues(r *http.Request, names ...string) map[string]string {
	out := make(map[string]string, len(names))
	for _, n := range names {
		out[n] = r.PostFormValue(n)
	}
	return out
}
