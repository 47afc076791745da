package service

import (
	"context"
	"math/rand/v2"
	"sync"

	"daily-quotes/internal/domain"
	"daily-quotes/internal/exporter"
	"daily-quotes/internal/i18n"
)

// SessionOptions carries the collaborators a Session may take from its caller.
type SessionOptions struct {
	Presets      map[int]string
	Exporters    *exporter.Registry
	Catalog      *i18n.Catalog
	Rand         *rand.Rand
	Contribution ContributionOptions
}

// Session is the single-user quote viewer. All state transitions are
// serialized behind one mutex, shared with the contribution flow's
// background work.
type Session struct {
	mu           sync.Mutex
	quotes       domain.QuoteStore
	state        *StateStore
	resolver     *TranslationResolver
	favorites    *FavoritesManager
	view         *ViewController
	contribution *ContributionFlow
	logger       domain.Logger
}

// NewSession loads persisted client state and picks the first random quote.
func NewSession(
	ctx context.Context,
	quotes domain.QuoteStore,
	kv domain.KVStore,
	notifier domain.ContributionNotifier,
	opts SessionOptions,
	logger domain.Logger,
) *Session {
	state := NewStateStore(kv, quotes, logger)
	persisted := state.Load(ctx)

	s := &Session{quotes: quotes, state: state, logger: logger}
	s.resolver = NewTranslationResolver(opts.Presets, persisted.Translations)
	s.favorites = NewFavoritesManager(quotes, persisted.Favorites, state, opts.Exporters, logger)
	s.view = NewViewController(quotes, s.resolver, s.favorites, state, persisted.Language, opts.Rand, logger)
	s.contribution = NewContributionFlow(&s.mu, quotes, s.resolver, state, notifier, opts.Catalog, opts.Contribution, logger)

	s.view.Next()
	return s
}

func (s *Session) View() domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.View()
}

func (s *Session) State() domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.State()
}

// NextRandom picks another random quote and returns the random card.
func (s *Session) NextRandom() *domain.QuoteView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Next()
	return s.view.RandomView()
}

func (s *Session) RandomView() *domain.QuoteView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.RandomView()
}

func (s *Session) SetMode(mode domain.ViewMode) domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.SetMode(mode)
	return s.view.View()
}

func (s *Session) Language() domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Language()
}

func (s *Session) ToggleLanguage(ctx context.Context) domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.ToggleLanguage(ctx)
}

func (s *Session) ToggleExpansion(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.ToggleExpansion(id)
}

// List applies q to the filter state and returns the list projection.
func (s *Session) List(q domain.ListQuery) (domain.ListView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.view.SetListQuery(q); err != nil {
		return domain.ListView{}, err
	}
	return s.view.ListView(), nil
}

func (s *Session) SetPage(page int) (domain.ListView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.view.SetPage(page); err != nil {
		return domain.ListView{}, err
	}
	return s.view.ListView(), nil
}

func (s *Session) NextPage() domain.ListView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.NextPage()
	return s.view.ListView()
}

func (s *Session) PrevPage() domain.ListView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.PrevPage()
	return s.view.ListView()
}

func (s *Session) Authors() []string {
	return s.quotes.Authors()
}

func (s *Session) ToggleFavorite(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Toggle(ctx, id)
}

func (s *Session) ClearFavorites(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites.Clear(ctx)
}

func (s *Session) Favorites() []domain.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Quotes()
}

func (s *Session) ExportFavorites(format string) (*domain.ExportFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Export(format)
}

func (s *Session) Contribution() domain.ContributionDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contribution.Draft()
}

func (s *Session) OpenContribution(quoteID int) (domain.ContributionDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.contribution.Open(quoteID); err != nil {
		return domain.ContributionDraft{}, err
	}
	return s.contribution.Draft(), nil
}

func (s *Session) SetContributionDraft(text string) (domain.ContributionDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.contribution.SetDraft(text); err != nil {
		return domain.ContributionDraft{}, err
	}
	return s.contribution.Draft(), nil
}

// SubmitContribution returns the pending draft and a channel that yields
// the terminal status.
func (s *Session) SubmitContribution(ctx context.Context) (domain.ContributionDraft, <-chan domain.SubmissionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	done, err := s.contribution.Submit(ctx)
	if err != nil {
		return domain.ContributionDraft{}, nil, err
	}
	return s.contribution.Draft(), done, nil
}

func (s *Session) CloseContribution() domain.ContributionDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contribution.Close()
	return s.contribution.Draft()
}

// UserTranslations returns the submission history for one quote.
func (s *Session) UserTranslations(id int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.UserTranslations(id)
}

// Wait blocks until background contribution deliveries finish.
func (s *Session) Wait() {
	s.contribution.Wait()
}

// Shutdown stops background contribution work.
func (s *Session) Shutdown() {
	s.contribution.Shutdown()
}
