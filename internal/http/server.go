package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"padel-games/internal/config"
	"padel-games/internal/metrics"
	"padel-games/internal/notifier"
	"padel-games/internal/store"
)

func NewServer(store store.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         chi.NewRouter(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	s.Router.Use(chimiddleware.Recoverer)
	s.Router.Use(s.requestLogger)
	s.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.Cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Get("/health", s.handleHealthCheck)

	// Everything below requires a resolvable caller identity.
	s.Router.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Route("/players", func(r chi.Router) {
			r.Get("/", s.handleListPlayers)
			r.Post("/", s.handleCreatePlayer)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetPlayer)
				r.Put("/", s.handleUpdatePlayer)
				r.Delete("/", s.handleDeletePlayer)
				r.Get("/total-games", s.handlePlayerTotalGames)
				r.Get("/total-wins", s.handlePlayerTotalWins)
				r.Get("/opponents/{opponentId}/total-games", s.handleOpponentTotalGames)
				r.Get("/opponents/{opponentId}/total-wins", s.handleOpponentTotalWins)
			})
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/", s.handleListGames)
			r.Post("/", s.handleCreateGame)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetGame)
				r.Put("/", s.handleUpdateGame)
				r.Delete("/", s.handleDeleteGame)
			})
		})

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", s.handleListTournaments)
			r.Post("/", s.handleCreateTournament)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetTournament)
				r.Put("/", s.handleUpdateTournament)
				r.Delete("/", s.handleDeleteTournament)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
