package domain

import (
	"context"
	"time"
)

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetLogFormat() string
	GetQuotesFile() string
	GetStorageBackend() string
	GetSQLitePath() string
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetSessionID() string
	GetContributionURL() string
	GetContributionAPIKey() string
	GetContributionTimeout() time.Duration
	GetContributionCloseDelay() time.Duration
	GetUILanguage() string
	GetCORSAllowedOrigins() []string
	GetRandomSeed() uint64
}

// SessionService is the single-user quote viewer driven by the HTTP API and the CLI.
type SessionService interface {
	View() View
	RandomView() *QuoteView
	NextRandom() *QuoteView
	SetMode(mode ViewMode) View
	Language() Language
	ToggleLanguage(ctx context.Context) Language
	ToggleExpansion(id int) (bool, error)
	List(q ListQuery) (ListView, error)
	SetPage(page int) (ListView, error)
	NextPage() ListView
	PrevPage() ListView
	Authors() []string
	ToggleFavorite(ctx context.Context, id int) (bool, error)
	ClearFavorites(ctx context.Context)
	Favorites() []Quote
	ExportFavorites(format string) (*ExportFile, error)
	Contribution() ContributionDraft
	OpenContribution(quoteID int) (ContributionDraft, error)
	SetContributionDraft(text string) (ContributionDraft, error)
	SubmitContribution(ctx context.Context) (ContributionDraft, <-chan SubmissionStatus, error)
	CloseContribution() ContributionDraft
	UserTranslations(id int) []string
}

// ContributionReceiver accepts contributions posted to the receiver endpoint.
type ContributionReceiver interface {
	Receive(ctx context.Context, payload ContributionPayload) (*Contribution, error)
	List(ctx context.Context, quoteID *int) ([]*Contribution, error)
}
