package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"daily-quotes/internal/domain"
	apperrors "daily-quotes/pkg/errors"

	"github.com/google/uuid"
)

// ContributionService receives contributions posted by clients.
type ContributionService struct {
	repo   domain.ContributionRepository
	quotes domain.QuoteStore
	logger domain.Logger
	now    func() time.Time
}

func NewContributionService(repo domain.ContributionRepository, quotes domain.QuoteStore, logger domain.Logger) *ContributionService {
	return &ContributionService{
		repo:   repo,
		quotes: quotes,
		logger: logger,
		now:    time.Now,
	}
}

// Receive validates and stores one contribution.
func (s *ContributionService) Receive(ctx context.Context, payload domain.ContributionPayload) (*domain.Contribution, error) {
	if _, ok := s.quotes.FindByID(payload.QuoteID); !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Quote %d not found", payload.QuoteID), domain.ErrQuoteNotFound)
	}
	text := strings.TrimSpace(payload.Translation)
	if text == "" {
		return nil, apperrors.WrapValidation("Translation is required", domain.ErrEmptyTranslation)
	}

	received := s.now().UTC()
	submitted := received
	if payload.Timestamp != "" {
		t, err := time.Parse(time.RFC3339Nano, payload.Timestamp)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid timestamp", "timestamp must be ISO-8601")
		}
		submitted = t.UTC()
	}

	c := &domain.Contribution{
		ID:          uuid.NewString(),
		QuoteID:     payload.QuoteID,
		Translation: text,
		SubmittedAt: submitted,
		ReceivedAt:  received,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("Failed to store contribution", err, "quote_id", payload.QuoteID)
		return nil, apperrors.NewInternalError("Failed to store contribution", err)
	}

	s.logger.Info("Contribution received", "contribution_id", c.ID, "quote_id", c.QuoteID)
	return c, nil
}

// List returns received contributions newest first, optionally for one quote.
func (s *ContributionService) List(ctx context.Context, quoteID *int) ([]*domain.Contribution, error) {
	items, err := s.repo.ListByQuote(ctx, quoteID)
	if err != nil {
		s.logger.Error("Failed to list contributions", err)
		return nil, apperrors.NewInternalError("Failed to list contributions", err)
	}
	return items, nil
}
