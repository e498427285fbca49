package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vaibhavuttam8/jam-rating/internal/core/domain"
)

type addCommentRequest struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// ListPlaylists handles GET /playlists
func (h *Handler) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

// CreatePlaylist handles POST /playlists
func (h *Handler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var draft domain.Draft
	if !decodeJSON(w, r, &draft) {
		return
	}

	playlist, err := h.store.Create(draft)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Location", "/playlists/"+playlist.ID)
	writeJSON(w, http.StatusCreated, playlist)
}

// GetPlaylist handles GET /playlists/{id}
func (h *Handler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, playlist)
}

// Upvote handles POST /playlists/{id}/upvote
func (h *Handler) Upvote(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.store.Upvote(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, playlist)
}

// Downvote handles POST /playlists/{id}/downvote
func (h *Handler) Downvote(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.store.Downvote(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, playlist)
}

// AddComment handles POST /playlists/{id}/comments
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.store.AddComment(chi.URLParam(r, "id"), req.Author, req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
