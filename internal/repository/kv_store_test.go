package repository

import (
	"context"
	"testing"

	"daily-quotes/internal/domain"
	"daily-quotes/internal/infra/sqlite"
)

func newTestSQLiteDB(t *testing.T) *SQLiteKVStore {
	t.Helper()
	db, err := sqlite.Open(sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSQLiteKVStore(db, "test-session")
}

func TestKVStores(t *testing.T) {
	stores := map[string]func(t *testing.T) domain.KVStore{
		"memory": func(t *testing.T) domain.KVStore { return NewMemoryKVStore() },
		"sqlite": func(t *testing.T) domain.KVStore { return newTestSQLiteDB(t) },
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)

			if _, ok, err := store.Get(ctx, domain.KeyFavorites); err != nil || ok {
				t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
			}

			if err := store.Set(ctx, domain.KeyFavorites, "[1,2]"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := store.Set(ctx, domain.KeyFavorites, "[3]"); err != nil {
				t.Fatalf("overwrite: %v", err)
			}

			value, ok, err := store.Get(ctx, domain.KeyFavorites)
			if err != nil || !ok {
				t.Fatalf("expected stored key, got ok=%v err=%v", ok, err)
			}
			if value != "[3]" {
				t.Errorf("expected last write to win, got %q", value)
			}
		})
	}
}

func TestSQLiteKVStore_SessionsAreIsolated(t *testing.T) {
	db, err := sqlite.Open(sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	a := NewSQLiteKVStore(db, "a")
	b := NewSQLiteKVStore(db, "b")

	if err := a.Set(ctx, domain.KeyLanguage, `"translated"`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok, _ := b.Get(ctx, domain.KeyLanguage); ok {
		t.Errorf("session b must not see session a's state")
	}
}
