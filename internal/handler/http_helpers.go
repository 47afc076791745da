package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"daily-quotes/internal/domain"
	apperrors "daily-quotes/pkg/errors"

	"github.com/gorilla/mux"
)

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeAppError maps err to its AppError status and message. Anything that
// is not an AppError is logged and reported as a 500.
func writeAppError(w http.ResponseWriter, logger domain.Logger, err error, msg string, fields ...interface{}) {
	status := apperrors.GetStatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, err, fields...)
	}
	writeError(w, status, apperrors.GetMessage(err))
}

// decodeJSON reads a JSON request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.NewValidationError("Invalid request body", err.Error())
	}
	return nil
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (int, error) {
	raw := mux.Vars(r)["id"]
	if raw == "" {
		return 0, apperrors.NewValidationError("Quote ID is required")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError("Quote ID must be an integer", raw)
	}
	return id, nil
}
