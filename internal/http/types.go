package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"padel-games/internal/config"
	"padel-games/internal/metrics"
	"padel-games/internal/notifier"
	"padel-games/internal/store"
)

type Server struct {
	Store          store.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *chi.Mux
}
