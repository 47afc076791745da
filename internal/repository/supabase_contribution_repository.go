package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"daily-quotes/internal/domain"

	"github.com/supabase-community/postgrest-go"
)

// SupabaseContributionRepository stores received contributions in Supabase.
type SupabaseContributionRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewSupabaseContributionRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) *SupabaseContributionRepository {
	return &SupabaseContributionRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

func (r *SupabaseContributionRepository) Create(_ context.Context, c *domain.Contribution) error {
	client := r.supabaseClient.DB()
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"id":           c.ID,
		"quote_id":     c.QuoteID,
		"translation":  sanitizeText(c.Translation),
		"submitted_at": c.SubmittedAt.UTC().Format(time.RFC3339Nano),
		"received_at":  c.ReceivedAt.UTC().Format(time.RFC3339Nano),
	}

	_, _, err := client.From("contributions").
		Insert(row, false, "", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to create contribution: %w", err)
	}

	r.logger.Info("Contribution stored", "contribution_id", c.ID, "quote_id", c.QuoteID)
	return nil
}

func (r *SupabaseContributionRepository) ListByQuote(_ context.Context, quoteID *int) ([]*domain.Contribution, error) {
	client := r.supabaseClient.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	q := client.From("contributions").
		Select("*", "", false).
		Order("received_at", &postgrest.OrderOpts{Ascending: false})
	if quoteID != nil {
		q = q.Eq("quote_id", fmt.Sprint(*quoteID))
	}

	data, _, err := q.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	out := make([]*domain.Contribution, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.Contribution{
			ID:          getString(row, "id"),
			QuoteID:     getInt(row, "quote_id"),
			Translation: getString(row, "translation"),
			SubmittedAt: getTime(row, "submitted_at"),
			ReceivedAt:  getTime(row, "received_at"),
		})
	}
	return out, nil
}

var reControl = regexp.MustCompile(`[\x00]`)

// sanitizeText removes characters that PostgreSQL rejects in text fields (notably NUL bytes).
func sanitizeText(s string) string {
	if s == "" {
		return s
	}
	s = reControl.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\\u0000", "")
	return s
}
