package domain

import "errors"

// Domain errors
var (
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrEmptyTranslation      = errors.New("translation text is empty")
	ErrNoContributionTarget  = errors.New("no quote selected for contribution")
	ErrUnknownExportFormat   = errors.New("unknown export format")
	ErrPageOutOfRange        = errors.New("page out of range")
	ErrDuplicateQuoteID      = errors.New("duplicate quote id")
	ErrUnknownStorageBackend = errors.New("unknown storage backend")
	ErrSubmissionPending     = errors.New("submission already in progress")
	ErrContributionClosed    = errors.New("contribution form is not open")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
