package web

import (
	"net/http"

	"github.com/go-chi/chi"
)

func setupRoutes(h *handler) http.Handler {
	router := chi.NewRouter()

	router.Get("/configuration", h.getConfigurationHandler)
	router.Route("/pulse", func(router chi.Router) {
		router.Post("/validate", h.validatePulseHandler)
		router.Post("/samples", h.pulseSamplesHandler)
		router.Post("/files", h.pulseFilesHandler)
	})

	return router
}
