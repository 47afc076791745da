package service

import (
	"context"
	"fmt"

	"daily-quotes/internal/domain"
	"daily-quotes/internal/exporter"
	apperrors "daily-quotes/pkg/errors"
)

// FavoritesManager owns the favorite set. Every mutation re-persists the
// whole set. Not safe for concurrent use.
type FavoritesManager struct {
	quotes    domain.QuoteStore
	set       domain.FavoriteSet
	state     *StateStore
	exporters *exporter.Registry
	logger    domain.Logger
}

func NewFavoritesManager(
	quotes domain.QuoteStore,
	set domain.FavoriteSet,
	state *StateStore,
	exporters *exporter.Registry,
	logger domain.Logger,
) *FavoritesManager {
	if set == nil {
		set = domain.NewFavoriteSet()
	}
	if exporters == nil {
		exporters = exporter.Default()
	}
	return &FavoritesManager{
		quotes:    quotes,
		set:       set,
		state:     state,
		exporters: exporters,
		logger:    logger,
	}
}

// Toggle flips id in the set and reports whether it is now a favorite.
func (m *FavoritesManager) Toggle(ctx context.Context, id int) (bool, error) {
	if _, ok := m.quotes.FindByID(id); !ok {
		return false, apperrors.NewNotFoundError(fmt.Sprintf("Quote %d not found", id), domain.ErrQuoteNotFound)
	}
	fav := m.set.Toggle(id)
	m.state.SaveFavorites(ctx, m.set)
	m.logger.Debug("Favorite toggled", "quote_id", id, "favorite", fav)
	return fav, nil
}

func (m *FavoritesManager) Clear(ctx context.Context) {
	m.set.Clear()
	m.state.SaveFavorites(ctx, m.set)
}

func (m *FavoritesManager) IsFavorite(id int) bool { return m.set.Has(id) }

func (m *FavoritesManager) Count() int { return len(m.set) }

func (m *FavoritesManager) IDs() []int { return m.set.IDs() }

// Set returns the live set for filtering.
func (m *FavoritesManager) Set() domain.FavoriteSet { return m.set }

// Quotes materializes the favorites in store order.
func (m *FavoritesManager) Quotes() []domain.Quote {
	out := make([]domain.Quote, 0, len(m.set))
	for _, q := range m.quotes.All() {
		if m.set.Has(q.ID) {
			out = append(out, q)
		}
	}
	return out
}

// Export renders the favorites in the requested format.
func (m *FavoritesManager) Export(format string) (*domain.ExportFile, error) {
	e, ok := m.exporters.Get(format)
	if !ok {
		return nil, apperrors.WrapValidation(fmt.Sprintf("Unknown export format %q", format), domain.ErrUnknownExportFormat)
	}
	data, err := e.Export(m.Quotes())
	if err != nil {
		return nil, apperrors.NewInternalError("Failed to export favorites", err)
	}
	return &domain.ExportFile{FileName: e.FileName(), ContentType: e.ContentType(), Data: data}, nil
}
