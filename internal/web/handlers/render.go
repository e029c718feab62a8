package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"claimpilot/internal/models"
	"claimpilot/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer holds the parsed page templates. Pages share the layout and the
// stateless partials (nav, form field, claim table).
type Renderer struct {
	tmpl *template.Template
	lg   *zap.SugaredLogger
}

func NewRenderer(lg *zap.SugaredLogger) (*Renderer, error) {
	funcs := template.FuncMap{
		"optmoney": models.OptMoney,
		"orNA": func(p *string) string {
			if p == nil || *p == "" {
				return "N/A"
			}
			return *p
		},
		"statuses": func() []string {
			out := make([]string, 0, 9)
			for _, s := range models.ClaimStatuses() {
				out = append(out, string(s))
			}
			return out
		},
		"types": func() []string {
			out := make([]string, 0, 4)
			for _, t := range models.ClaimTypes() {
				out = append(out, string(t))
			}
			return out
		},
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl, lg: lg}, nil
}

// page is the envelope every template receives.
type page struct {
	Title   string
	Session session.Session
	Data    any
}

func (rd *Renderer) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	p := page{Title: title, Session: session.FromContext(r.Context()), Data: data}
	if err := rd.tmpl.ExecuteTemplate(w, name, p); err != nil {
		rd.lg.Errorw("template render failed", "template", name, "error", err)
	}
}
