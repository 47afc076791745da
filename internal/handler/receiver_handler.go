package handler

import (
	"net/http"
	"strconv"

	"daily-quotes/internal/domain"
)

// ReceiverHandler implements the contribution endpoint clients post to.
type ReceiverHandler struct {
	receiver domain.ContributionReceiver
	logger   domain.Logger
}

func NewReceiverHandler(receiver domain.ContributionReceiver, logger domain.Logger) *ReceiverHandler {
	return &ReceiverHandler{receiver: receiver, logger: logger}
}

func (h *ReceiverHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var payload domain.ContributionPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeAppError(w, h.logger, err, "Failed to decode contribution")
		return
	}
	c, err := h.receiver.Receive(r.Context(), payload)
	if err != nil {
		writeAppError(w, h.logger, err, "Failed to receive contribution", "quote_id", payload.QuoteID)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// List returns received contributions, optionally filtered by ?quoteId=
func (h *ReceiverHandler) List(w http.ResponseWriter, r *http.Request) {
	var quoteID *int
	if raw := r.URL.Query().Get("quoteId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "quoteId must be an integer")
			return
		}
		quoteID = &id
	}
	items, err := h.receiver.List(r.Context(), quoteID)
	if err != nil {
		writeAppError(w, h.logger, err, "Failed to list contributions")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"contributions": items,
		"count":         len(items),
	})
}
