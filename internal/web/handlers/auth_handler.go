package handlers

import (
	"net/http"

	"claimpilot/internal/models"
	"claimpilot/internal/session"
)

type loginPage struct {
	Username string
	Error    string
}

func LoginForm(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if session.FromContext(r.Context()).Authenticated() {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		env.Renderer.render(w, r, http.StatusOK, "login.html", "Login", loginPage{})
	}
}

// Login exchanges the posted credentials for a backend session, issues the
// signed cookie and routes by role. Failures re-render the form with a
// message; there is no automatic retry.
func Login(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		username := r.PostFormValue("username")
		password := r.PostFormValue("password")
		sess, err := env.Sessions.Login(r.Context(), username, password)
		if err != nil {
			msg := "Invalid credentials. Please try again."
			if err == session.ErrProfileUnavailable {
				msg = "Unable to retrieve user profile."
			}
			env.Renderer.render(w, r, http.StatusUnauthorized, "login.html", "Login", loginPage{Username: username, Error: msg})
			return
		}
		cookie, err := env.Sessions.Codec().Issue(sess.Identity, sess.Token)
		if err != nil {
			env.Lg.Errorw("session cookie issue failed", "error", err)
			env.Renderer.render(w, r, http.StatusInternalServerError, "login.html", "Login", loginPage{Username: username, Error: "Login failed. Please try again."})
			return
		}
		env.Sessions.Codec().SetCookie(w, cookie)
		switch sess.Identity.Role {
		case models.RoleAdmin:
			http.Redirect(w, r, "/admin", http.StatusFound)
		case models.RoleAdjuster:
			http.Redirect(w, r, "/dashboard", http.StatusFound)
		default:
			http.Redirect(w, r, "/", http.StatusFound)
		}
	}
}

// Logout tears the backend session down best-effort, clears the cookie
// unconditionally and lands on the home boundary.
func Logout(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env.Sessions.Logout(r.Context(), session.Token(r.Context()))
		env.Sessions.Codec().ClearCookie(w)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
