package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pagepost/pagepost/internal/page"
	"github.com/pagepost/pagepost/internal/pagestore"
)

type handlers struct {
	svc    *page.Service
	static StaticPages
	log    *slog.Logger
}

type createRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// An unreadable body carries no title or message either way.
		writeJSONError(w, http.StatusBadRequest, "Title and message are required")
		return
	}

	_, err := h.svc.Create(r.Context(), req.Title, req.Message)
	switch {
	case errors.Is(err, page.ErrEmptyFields):
		writeJSONError(w, http.StatusBadRequest, "Title and message are required")
	case err != nil:
		h.log.Error("failed to create page", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to create page")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "pageID")

	content, err := h.svc.Get(r.Context(), id)
	switch {
	case errors.Is(err, pagestore.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Page not found"))
	case err != nil:
		h.log.Error("failed to load page", "page", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Internal server error"))
	default:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(content)
	}
}

func (h *handlers) home(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.static.Home)
}

func (h *handlers) notFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(h.static.NotFound)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
