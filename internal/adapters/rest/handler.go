// Package rest is the local HTTP/JSON boundary the browser UI talks to.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vaibhavuttam8/jam-rating/internal/core/services"
)

// Handler manages the HTTP interface for our application.
type Handler struct {
	store   *services.PlaylistStore
	catalog *services.CatalogService
	router  chi.Router
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(store *services.PlaylistStore, catalog *services.CatalogService) *Handler {
	h := &Handler{
		store:   store,
		catalog: catalog,
		router:  chi.NewRouter(),
	}
	h.routes()
	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.Use(middleware.RequestID)
	h.router.Use(middleware.RealIP)
	h.router.Use(middleware.Logger)
	h.router.Use(middleware.Recoverer)

	h.router.Get("/health", h.HealthCheck)

	h.router.Route("/playlists", func(r chi.Router) {
		r.Get("/", h.ListPlaylists)
		r.Post("/", h.CreatePlaylist)
		r.Get("/{id}", h.GetPlaylist)
		r.Post("/{id}/upvote", h.Upvote)
		r.Post("/{id}/downvote", h.Downvote)
		r.Post("/{id}/comments", h.AddComment)
	})

	h.router.Route("/catalog", func(r chi.Router) {
		r.Get("/search", h.SearchCatalog)
		r.Get("/art", h.ArtStatus)
		r.Get("/recordings/{id}", h.GetRecording)
	})

	h.router.Post("/drafts/tracks", h.AddDraftTrack)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
