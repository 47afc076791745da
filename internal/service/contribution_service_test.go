package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"daily-quotes/internal/domain"
	"daily-quotes/internal/repository"
	apperrors "daily-quotes/pkg/errors"

	"github.com/google/uuid"
)

type failingContributionRepo struct{}

func (failingContributionRepo) Create(context.Context, *domain.Contribution) error {
	return errors.New("disk full")
}

func (failingContributionRepo) ListByQuote(context.Context, *int) ([]*domain.Contribution, error) {
	return nil, errors.New("disk full")
}

func TestContributionService_Receive(t *testing.T) {
	repo := repository.NewMemoryContributionRepository()
	svc := NewContributionService(repo, newTestStore(t, testQuotes(3)), newMockLogger())
	received := time.Date(2024, 5, 1, 1, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return received }
	ctx := context.Background()

	c, err := svc.Receive(ctx, domain.ContributionPayload{QuoteID: 2, Translation: " 测试 ", Timestamp: "2024-05-01T00:30:00.000Z"})
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	if _, err := uuid.Parse(c.ID); err != nil {
		t.Errorf("expected uuid id, got %q", c.ID)
	}
	if c.Translation != "测试" || c.QuoteID != 2 {
		t.Errorf("unexpected contribution %+v", c)
	}
	if !c.SubmittedAt.Equal(time.Date(2024, 5, 1, 0, 30, 0, 0, time.UTC)) || !c.ReceivedAt.Equal(received) {
		t.Errorf("unexpected timestamps %+v", c)
	}

	quoteID := 2
	list, err := svc.List(ctx, &quoteID)
	if err != nil || len(list) != 1 || list[0].ID != c.ID {
		t.Errorf("expected stored contribution, got %v (%v)", list, err)
	}
}

func TestContributionService_ReceiveValidation(t *testing.T) {
	svc := NewContributionService(repository.NewMemoryContributionRepository(), newTestStore(t, testQuotes(3)), newMockLogger())
	ctx := context.Background()

	tests := []struct {
		name    string
		payload domain.ContributionPayload
		errType apperrors.ErrorType
	}{
		{"unknown quote", domain.ContributionPayload{QuoteID: 9, Translation: "x"}, apperrors.ErrorTypeNotFound},
		{"blank translation", domain.ContributionPayload{QuoteID: 1, Translation: "  "}, apperrors.ErrorTypeValidation},
		{"bad timestamp", domain.ContributionPayload{QuoteID: 1, Translation: "x", Timestamp: "yesterday"}, apperrors.ErrorTypeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Receive(ctx, tt.payload); !apperrors.IsType(err, tt.errType) {
				t.Errorf("expected %s error, got %v", tt.errType, err)
			}
		})
	}
}

func TestContributionService_RepositoryFailure(t *testing.T) {
	logger := newMockLogger()
	svc := NewContributionService(failingContributionRepo{}, newTestStore(t, testQuotes(1)), logger)

	_, err := svc.Receive(context.Background(), domain.ContributionPayload{QuoteID: 1, Translation: "x"})
	if !apperrors.IsType(err, apperrors.ErrorTypeInternal) {
		t.Errorf("expected internal error, got %v", err)
	}
	if _, err := svc.List(context.Background(), nil); !apperrors.IsType(err, apperrors.ErrorTypeInternal) {
		t.Errorf("expected internal error, got %v", err)
	}
	if logger.count("ERROR: ") != 2 {
		t.Errorf("expected failures to be logged")
	}
}
