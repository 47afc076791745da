package handler

import (
	"net/http"

	"daily-quotes/internal/domain"
)

// FavoriteHandler handles favorite toggling and export.
type FavoriteHandler struct {
	session domain.SessionService
	logger  domain.Logger
}

func NewFavoriteHandler(session domain.SessionService, logger domain.Logger) *FavoriteHandler {
	return &FavoriteHandler{session: session, logger: logger}
}

// GetFavorites lists favorite quotes in store order
func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	favorites := h.session.Favorites()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"favorites": favorites,
		"count":     len(favorites),
	})
}

func (h *FavoriteHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeAppError(w, h.logger, err, "Invalid quote id")
		return
	}
	favorite, err := h.session.ToggleFavorite(r.Context(), id)
	if err != nil {
		writeAppError(w, h.logger, err, "Failed to toggle favorite", "quote_id", id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "favorite": favorite})
}

func (h *FavoriteHandler) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	h.session.ClearFavorites(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// ExportFavorites downloads the favorites as json or markdown
func (h *FavoriteHandler) ExportFavorites(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	file, err := h.session.ExportFavorites(format)
	if err != nil {
		writeAppError(w, h.logger, err, "Failed to export favorites", "format", format)
		return
	}
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}
