package handler

import (
	"net/http"

	"daily-quotes/internal/domain"
)

// ContributionHandler drives the contribution form of the session.
type ContributionHandler struct {
	session domain.SessionService
	logger  domain.Logger
}

func NewContributionHandler(session domain.SessionService, logger domain.Logger) *ContributionHandler {
	return &ContributionHandler{session: session, logger: logger}
}

func (h *ContributionHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Contribution())
}

func (h *ContributionHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuoteID int `json:"quoteId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, h.logger, err, "Failed to decode contribution target")
		return
	}
	draft, err := h.session.OpenContribution(req.QuoteID)
	if err != nil {
		writeAppError(w, h.logger, err, "Failed to open contribution", "quote_id", req.QuoteID)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *ContributionHandler) SetDraft(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, h.logger, err, "Failed to decode draft")
		return
	}
	draft, err := h.session.SetContributionDraft(req.Text)
	if err != nil {
		writeAppError(w, h.logger, err, "Failed to update draft")
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// Submit records the translation locally and answers 202 while delivery runs
// in the background; poll GetDraft for the outcome.
func (h *ContributionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	draft, _, err := h.session.SubmitContribution(r.Context())
	if err != nil {
		writeAppError(w, h.logger, err, "Failed to submit contribution")
		return
	}
	writeJSON(w, http.StatusAccepted, draft)
}

func (h *ContributionHandler) Close(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.CloseContribution())
}
