package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vaibhavuttam8/jam-rating/internal/core/domain"
)

type searchResponse struct {
	domain.SearchPage
	TotalPages int `json:"totalPages"`
}

type addDraftTrackRequest struct {
	CatalogID string `json:"catalogId"`
}

// SearchCatalog handles GET /catalog/search?song=&artist=&album=&page=&pageSize=
func (h *Handler) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.SearchFilter{
		SongName:   q.Get("song"),
		ArtistName: q.Get("artist"),
		AlbumName:  q.Get("album"),
	}

	page, ok := intParam(w, q.Get("page"), "page")
	if !ok {
		return
	}
	pageSize, ok := intParam(w, q.Get("pageSize"), "pageSize")
	if !ok {
		return
	}

	result, err := h.catalog.Search(r.Context(), filter, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{SearchPage: result, TotalPages: result.TotalPages()})
}

// ArtStatus handles GET /catalog/art?ids=a,b
func (h *Handler) ArtStatus(w http.ResponseWriter, r *http.Request) {
	var ids []string
	for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	writeJSON(w, http.StatusOK, h.catalog.ArtStatus(ids))
}

// GetRecording handles GET /catalog/recordings/{id}
func (h *Handler) GetRecording(w http.ResponseWriter, r *http.Request) {
	entry, err := h.catalog.GetRecording(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// AddDraftTrack handles POST /drafts/tracks
func (h *Handler) AddDraftTrack(w http.ResponseWriter, r *http.Request) {
	var req addDraftTrackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	track, err := h.catalog.NewDraftTrack(r.Context(), req.CatalogID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, track)
}

// intParam parses an optional positive integer query parameter; absent means 0.
func intParam(w http.ResponseWriter, raw, name string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		writeErrorWithCode(w, http.StatusBadRequest, name+" must be a non-negative integer", errCodeValidation)
		return 0, false
	}
	return n, true
}
