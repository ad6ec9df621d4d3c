package http

import (
	"net/http"

	"github.com/PSrandula/issue-tracker-app/internal/auth"
	"github.com/PSrandula/issue-tracker-app/internal/config"
	"github.com/PSrandula/issue-tracker-app/internal/http/handler"
	mw "github.com/PSrandula/issue-tracker-app/internal/http/middleware"
	"github.com/PSrandula/issue-tracker-app/internal/issue"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, authSvc *auth.Service, issueSvc *issue.Service, jwtSvc *auth.JWT) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{Svc: authSvc}
	ih := &handler.IssueHandler{Svc: issueSvc}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", ah.Register)
		r.Post("/auth/login", ah.Login)

		r.Route("/issues", func(r chi.Router) {
			r.Use(auth.RequireAuth(jwtSvc))

			r.Post("/", ih.Create)
			r.Get("/", ih.List)

			// /export must be mounted before /{id}.
			r.Get("/export", ih.Export)

			r.Get("/{id}", ih.Get)
			r.Patch("/{id}", ih.Update)
			r.Delete("/{id}", ih.Delete)
		})
	})

	return r
}
