package domain

import (
	"context"
	"time"
)

// SubmissionStatus is the lifecycle of a translation contribution.
type SubmissionStatus string

const (
	StatusIdle    SubmissionStatus = "idle"
	StatusPending SubmissionStatus = "pending"
	StatusSuccess SubmissionStatus = "success"
	StatusError   SubmissionStatus = "error"
)

// Terminal reports whether the status ends a submission.
func (s SubmissionStatus) Terminal() bool {
	return s == StatusSuccess || s == StatusError
}

// ContributionDraft is the state of the contribution modal.
type ContributionDraft struct {
	Open    bool             `json:"open"`
	QuoteID *int             `json:"quote_id"`
	Text    string           `json:"text"`
	Status  SubmissionStatus `json:"status"`
	Message string           `json:"message"`
}

// ContributionPayload is the wire body sent to the contribution endpoint.
type ContributionPayload struct {
	QuoteID     int    `json:"quoteId"`
	Translation string `json:"translation"`
	Timestamp   string `json:"timestamp"`
}

// ContributionNotifier delivers a contribution to the remote endpoint.
type ContributionNotifier interface {
	Notify(ctx context.Context, payload ContributionPayload) error
}

// Contribution is a translation received by the contribution endpoint.
type Contribution struct {
	ID          string    `json:"id"`
	QuoteID     int       `json:"quoteId"`
	Translation string    `json:"translation"`
	SubmittedAt time.Time `json:"timestamp"`
	ReceivedAt  time.Time `json:"receivedAt"`
}

// ContributionRepository persists received contributions.
type ContributionRepository interface {
	Create(ctx context.Context, c *Contribution) error
	ListByQuote(ctx context.Context, quoteID *int) ([]*Contribution, error)
}
