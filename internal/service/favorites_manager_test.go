package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"daily-quotes/internal/domain"
	apperrors "daily-quotes/pkg/errors"

	"github.com/google/go-cmp/cmp"
)

func newTestFavorites(t *testing.T, quotes []domain.Quote) (*FavoritesManager, *mockKVStore) {
	t.Helper()
	kv := newMockKVStore()
	store := newTestStore(t, quotes)
	logger := newMockLogger()
	return NewFavoritesManager(store, nil, NewStateStore(kv, store, logger), nil, logger), kv
}

func TestFavoritesManager_ToggleIsInvolution(t *testing.T) {
	quotes := testQuotes(12)
	m, _ := newTestFavorites(t, quotes)
	ctx := context.Background()

	if _, err := m.Toggle(ctx, 4); err != nil {
		t.Fatalf("seed toggle: %v", err)
	}

	for _, q := range quotes {
		before := m.IsFavorite(q.ID)
		if _, err := m.Toggle(ctx, q.ID); err != nil {
			t.Fatalf("toggle %d: %v", q.ID, err)
		}
		if _, err := m.Toggle(ctx, q.ID); err != nil {
			t.Fatalf("toggle %d: %v", q.ID, err)
		}
		if m.IsFavorite(q.ID) != before {
			t.Errorf("double toggle of %d changed membership", q.ID)
		}
	}
}

func TestFavoritesManager_PersistsEveryMutation(t *testing.T) {
	m, kv := newTestFavorites(t, testQuotes(5))
	ctx := context.Background()

	fav, _ := m.Toggle(ctx, 3)
	if !fav {
		t.Errorf("expected quote 3 to become a favorite")
	}
	m.Toggle(ctx, 1)
	if got := kv.value(domain.KeyFavorites); got != "[1,3]" {
		t.Errorf("persisted favorites = %s", got)
	}

	m.Clear(ctx)
	if got := kv.value(domain.KeyFavorites); got != "[]" {
		t.Errorf("persisted favorites after clear = %s", got)
	}
	if n := kv.writeCount(domain.KeyFavorites); n != 3 {
		t.Errorf("expected 3 writes, got %d", n)
	}
	if m.Count() != 0 {
		t.Errorf("expected no favorites after clear")
	}
}

func TestFavoritesManager_ToggleUnknownQuote(t *testing.T) {
	m, kv := newTestFavorites(t, testQuotes(2))

	_, err := m.Toggle(context.Background(), 42)
	if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) || !errors.Is(err, domain.ErrQuoteNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if kv.writeCount(domain.KeyFavorites) != 0 {
		t.Errorf("rejected toggle must not persist")
	}
}

func TestFavoritesManager_ExportJSONRoundTrip(t *testing.T) {
	quotes := testQuotes(8)
	m, _ := newTestFavorites(t, quotes)
	ctx := context.Background()
	for _, id := range []int{7, 2, 5} {
		m.Toggle(ctx, id)
	}

	file, err := m.Export("json")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if file.FileName != "ofog-favorites.json" || file.ContentType != "application/json" {
		t.Errorf("unexpected file metadata %+v", file)
	}

	var got []domain.Quote
	if err := json.Unmarshal(file.Data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []domain.Quote{quotes[1], quotes[4], quotes[6]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("exported quotes mismatch (-want +got):\n%s", diff)
	}
}

func TestFavoritesManager_ExportMarkdown(t *testing.T) {
	quotes := []domain.Quote{
		{ID: 1, Text: `Say "yes"`, Author: "Seneca,"},
		{ID: 2, Text: "Skipped", Author: "Nobody"},
		{ID: 3, Text: "Be brief", Author: "Epictetus"},
	}
	m, _ := newTestFavorites(t, quotes)
	m.Toggle(context.Background(), 3)
	m.Toggle(context.Background(), 1)

	file, err := m.Export("md")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := "- \"Say \\\"yes\\\"\" — Seneca\n- \"Be brief\" — Epictetus"
	if diff := cmp.Diff(want, string(file.Data)); diff != "" {
		t.Errorf("markdown mismatch (-want +got):\n%s", diff)
	}
}

func TestFavoritesManager_ExportUnknownFormat(t *testing.T) {
	m, _ := newTestFavorites(t, testQuotes(1))

	_, err := m.Export("pdf")
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) || !errors.Is(err, domain.ErrUnknownExportFormat) {
		t.Errorf("expected validation error, got %v", err)
	}
}
