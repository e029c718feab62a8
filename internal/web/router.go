package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"claimpilot/internal/gateway"
	"claimpilot/internal/models"
	"claimpilot/internal/session"
	"claimpilot/internal/web/handlers"
)

// NewRouter wires every page route. The public area (home, submit, track,
// login) needs no session; claims and dashboards sit behind the session
// middleware and role guards.
func NewRouter(gw *gateway.Client, sessions *session.Provider, rd *handlers.Renderer, lg *zap.SugaredLogger) http.Handler {
	env := &handlers.Env{Gateway: gw, Sessions: sessions, Renderer: rd, Lg: lg}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)
	r.Use(sessions.Middleware)

	r.Get("/", handlers.Home(env))
	r.Get("/login", handlers.LoginForm(env))
	r.Post("/login", handlers.Login(env))
	r.Post("/logout", handlers.Logout(env))
	r.Get("/submit-claim", handlers.SubmitClaimForm(env))
	r.Post("/submit-claim", handlers.SubmitClaim(env))
	r.Get("/track-claim", handlers.TrackClaimForm(env))
	r.Post("/track-claim", handlers.TrackClaim(env))

	r.Group(func(protected chi.Router) {
		protected.Use(session.RequireAuth)
		protected.Get("/claims/{id}", handlers.ClaimDetail(env))
		protected.Post("/claims/{id}", handlers.ClaimUpdate(env))
		protected.Get("/claims/{id}/audit", handlers.ClaimAudit(env))

		protected.Group(func(adjuster chi.Router) {
			adjuster.Use(session.RequireRole(models.RoleAdjuster))
			adjuster.Get("/dashboard", handlers.Dashboard(env))
			adjuster.Post("/dashboard/claims/{id}", handlers.DashboardRowUpdate(env))
		})

		protected.Group(func(admin chi.Router) {
			admin.Use(session.RequireRole(models.RoleAdmin))
			admin.Get("/admin", handlers.Admin(env))
			admin.Post("/admin/claims/{id}", handlers.AdminRowUpdate(env))
			admin.Post("/admin/claims/{id}/assign", handlers.AdminAssign(env))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
