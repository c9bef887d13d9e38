package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"goroster/app"
	"goroster/internal/config"
)

// App is the JSON API: the normalize and generate contracts over HTTP,
// for callers that want the pipeline without the web UI.
type App struct {
	router  *chi.Mux
	service *app.RosterService
	config  *config.Config
}

// NewApp creates the API application and wires its routes
func NewApp(cfg *config.Config, service *app.RosterService) *App {
	a := &App{
		router:  chi.NewRouter(),
		service: service,
		config:  cfg,
	}

	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	a.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", a.handleHealth)
		r.Post("/normalize", a.handleNormalize)
		r.Post("/rosters", a.handleCreateRoster)
		r.Get("/rosters/{id}", a.handleGetRoster)
	})

	return a
}

// Router exposes the chi mux for serving and tests
func (a *App) Router() *chi.Mux {
	return a.router
}

// Run starts the API server on the configured port
func (a *App) Run() error {
	addr := ":" + a.config.Server.Port
	log.Printf("[API] Listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
