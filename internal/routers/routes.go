package routers

import (
	"github.com/go-chi/chi/v5"

	"lobby/internal/api"
	"lobby/internal/metrics"
)

func LobbyRoutes(r *chi.Mux, h *api.Handlers) {
	r.Get("/healthz", h.Health)
	r.Get("/ping", h.Ping)
	r.Get("/status", h.Status)
	r.Method("GET", "/metrics", metrics.Handler())
	r.HandleFunc("/ws", h.LobbyWS)
}
