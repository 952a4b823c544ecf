package web

import (
	"time"

	"github.com/alex-monroe/fantasy-pulse-sub000/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, sessions Sessions, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", teamsHandler(ctrl, sessions, render))
		r.Get("/matchups", matchupsHandler(ctrl, sessions, render))

		r.Route("/integrations", func(r chi.Router) {
			r.Get("/", listIntegrationsHandler(ctrl, sessions, render))
			r.Post("/", connectHandler(ctrl, sessions, render))
			r.Delete("/{integrationID}", removeIntegrationHandler(ctrl, sessions, render))
			r.Get("/{integrationID}/leagues", leaguesHandler(ctrl, sessions, render))
			r.Post("/{integrationID}/sync", syncHandler(ctrl, sessions, render))
		})
	})

	r.Route("/oauth/yahoo", func(r chi.Router) {
		r.Get("/", oauthLinkHandler(ctrl, render))
		r.Get("/redirect", oauthRedirectHandler(ctrl, render))
	})

	return r
}
