package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// SQLiteKVStore persists client state in the kv_store table, namespaced by session.
type SQLiteKVStore struct {
	sqliteRepo
	sessionID string
}

func NewSQLiteKVStore(db *sql.DB, sessionID string) *SQLiteKVStore {
	return &SQLiteKVStore{sqliteRepo: newSQLiteRepo(db), sessionID: sessionID}
}

func (s *SQLiteKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	sqlStr, args, err := s.sq.Select("value").From("kv_store").
		Where(sq.Eq{"session_id": s.sessionID, "key": key}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build kv select: %w", err)
	}
	var value string
	if err := s.db.QueryRowContext(ctx, sqlStr, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteKVStore) Set(ctx context.Context, key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	sqlStr, args, err := s.sq.Insert("kv_store").
		Columns("session_id", "key", "value", "updated_at").
		Values(s.sessionID, key, value, now).
		Suffix("ON CONFLICT(session_id, key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build kv upsert: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
