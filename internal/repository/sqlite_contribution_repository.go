package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"daily-quotes/internal/domain"

	sq "github.com/Masterminds/squirrel"
)

// SQLiteContributionRepository stores received contributions in SQLite.
type SQLiteContributionRepository struct {
	sqliteRepo
}

func NewSQLiteContributionRepository(db *sql.DB) *SQLiteContributionRepository {
	return &SQLiteContributionRepository{sqliteRepo: newSQLiteRepo(db)}
}

func (r *SQLiteContributionRepository) Create(ctx context.Context, c *domain.Contribution) error {
	sqlStr, args, err := r.sq.Insert("contributions").
		Columns("id", "quote_id", "translation", "submitted_at", "received_at").
		Values(c.ID, c.QuoteID, c.Translation,
			c.SubmittedAt.UTC().Format(time.RFC3339Nano),
			c.ReceivedAt.UTC().Format(time.RFC3339Nano)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build contribution insert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("insert contribution: %w", err)
	}
	return nil
}

// ListByQuote returns contributions newest first; a nil quoteID lists all.
func (r *SQLiteContributionRepository) ListByQuote(ctx context.Context, quoteID *int) ([]*domain.Contribution, error) {
	q := r.sq.Select("id", "quote_id", "translation", "submitted_at", "received_at").
		From("contributions").
		OrderBy("received_at DESC", "id")
	if quoteID != nil {
		q = q.Where(sq.Eq{"quote_id": *quoteID})
	}
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build contribution select: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Contribution, 0)
	for rows.Next() {
		var c domain.Contribution
		var submitted, received string
		if err := rows.Scan(&c.ID, &c.QuoteID, &c.Translation, &submitted, &received); err != nil {
			return nil, fmt.Errorf("scan contribution: %w", err)
		}
		c.SubmittedAt, _ = time.Parse(time.RFC3339Nano, submitted)
		c.ReceivedAt, _ = time.Parse(time.RFC3339Nano, received)
		out = append(out, &c)
	}
	return out, rows.Err()
}
