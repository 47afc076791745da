package handler

import (
	"net/http"
	"strconv"
	"strings"

	"daily-quotes/internal/domain"
	apperrors "daily-quotes/pkg/errors"
)

// QuoteHandler serves the random card, the list and the language preference.
type QuoteHandler struct {
	session domain.SessionService
	logger  domain.Logger
}

func NewQuoteHandler(session domain.SessionService, logger domain.Logger) *QuoteHandler {
	return &QuoteHandler{session: session, logger: logger}
}

// GetView returns the projection of the active mode
func (h *QuoteHandler) GetView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.View())
}

// SetMode switches between random and list mode
func (h *QuoteHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode string `json:"mode"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, h.logger, err, "Failed to decode mode")
		return
	}
	mode, err := domain.ParseViewMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Mode must be random or all")
		return
	}
	writeJSON(w, http.StatusOK, h.session.SetMode(mode))
}

func (h *QuoteHandler) NextRandom(w http.ResponseWriter, r *http.Request) {
	v := h.session.NextRandom()
	if v == nil {
		writeError(w, http.StatusNotFound, "No quotes available")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// ListQuotes applies any q, author, favorites and page parameters, then
// returns the list projection.
func (h *QuoteHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r)
	if err != nil {
		writeAppError(w, h.logger, err, "Invalid list query")
		return
	}
	list, err := h.session.List(query)
	if err != nil {
		writeAppError(w, h.logger, err, "Failed to list quotes")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func parseListQuery(r *http.Request) (domain.ListQuery, error) {
	var q domain.ListQuery
	values := r.URL.Query()
	if values.Has("q") {
		v := values.Get("q")
		q.Query = &v
	}
	if values.Has("author") {
		v := values.Get("author")
		q.AuthorFilter = &v
	}
	if values.Has("favorites") {
		v, err := strconv.ParseBool(strings.TrimSpace(values.Get("favorites")))
		if err != nil {
			return q, apperrors.NewValidationError("favorites must be a boolean")
		}
		q.FavoritesOnly = &v
	}
	if values.Has("page") {
		v, err := strconv.Atoi(values.Get("page"))
		if err != nil {
			return q, apperrors.NewValidationError("page must be an integer")
		}
		q.Page = &v
	}
	return q, nil
}

func (h *QuoteHandler) SetPage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Page int `json:"page"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, h.logger, err, "Failed to decode page")
		return
	}
	list, err := h.session.SetPage(req.Page)
	if err != nil {
		writeAppError(w, h.logger, err, "Failed to set page")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *QuoteHandler) NextPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.NextPage())
}

func (h *QuoteHandler) PrevPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.PrevPage())
}

func (h *QuoteHandler) GetAuthors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"authors": h.session.Authors()})
}

// ToggleExpansion flips the translation line of one quote
func (h *QuoteHandler) ToggleExpansion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeAppError(w, h.logger, err, "Invalid quote id")
		return
	}
	expanded, err := h.session.ToggleExpansion(id)
	if err != nil {
		writeAppError(w, h.logger, err, "Failed to toggle expansion", "quote_id", id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "expanded": expanded})
}

func (h *QuoteHandler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"language": h.session.Language()})
}

func (h *QuoteHandler) ToggleLanguage(w http.ResponseWriter, r *http.Request) {
	lang := h.session.ToggleLanguage(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{"language": lang})
}
