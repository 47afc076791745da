package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"daily-quotes/internal/domain"
	apperrors "daily-quotes/pkg/errors"
)

// ViewController owns the transient view state and projects it into
// render-ready views. Not safe for concurrent use.
type ViewController struct {
	quotes    domain.QuoteStore
	resolver  *TranslationResolver
	favorites *FavoritesManager
	state     *StateStore
	rng       *rand.Rand
	logger    domain.Logger

	app  domain.AppState
	lang domain.Language
}

func NewViewController(
	quotes domain.QuoteStore,
	resolver *TranslationResolver,
	favorites *FavoritesManager,
	state *StateStore,
	lang domain.Language,
	rng *rand.Rand,
	logger domain.Logger,
) *ViewController {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if lang == "" {
		lang = domain.LanguageOriginal
	}
	return &ViewController{
		quotes:    quotes,
		resolver:  resolver,
		favorites: favorites,
		state:     state,
		rng:       rng,
		logger:    logger,
		app:       domain.NewAppState(),
		lang:      lang,
	}
}

// State returns a copy of the current view state.
func (c *ViewController) State() domain.AppState {
	st := c.app
	st.Expanded = make(map[int]bool, len(c.app.Expanded))
	for id, v := range c.app.Expanded {
		st.Expanded[id] = v
	}
	if c.app.RandomQuote != nil {
		q := *c.app.RandomQuote
		st.RandomQuote = &q
	}
	return st
}

func (c *ViewController) Language() domain.Language { return c.lang }

// Next picks a new random quote. It is a no-op on an empty store.
func (c *ViewController) Next() {
	n := c.quotes.Len()
	if n == 0 {
		return
	}
	q := c.quotes.At(c.rng.IntN(n))
	if preset, ok := c.resolver.Preset(q.ID); ok {
		q.Translated = preset
	}
	c.app.RandomQuote = &q
	c.expandRandomIfTranslated()
}

func (c *ViewController) SetMode(mode domain.ViewMode) {
	c.app.Mode = mode
	c.app.Page = 1
	c.expandRandomIfTranslated()
}

// ToggleLanguage flips the global preference and persists it.
func (c *ViewController) ToggleLanguage(ctx context.Context) domain.Language {
	c.lang = c.lang.Toggle()
	c.state.SaveLanguage(ctx, c.lang)
	c.expandRandomIfTranslated()
	return c.lang
}

// expandRandomIfTranslated forces the displayed random quote open while the
// preference is translated. Switching back never collapses it.
func (c *ViewController) expandRandomIfTranslated() {
	if c.app.Mode != domain.ModeRandom || c.app.RandomQuote == nil {
		return
	}
	if c.lang == domain.LanguageTranslated {
		c.app.Expanded[c.app.RandomQuote.ID] = true
	}
}

// ToggleExpansion flips the translation visibility of one quote.
func (c *ViewController) ToggleExpansion(id int) (bool, error) {
	if _, ok := c.quotes.FindByID(id); !ok {
		return false, apperrors.NewNotFoundError(fmt.Sprintf("Quote %d not found", id), domain.ErrQuoteNotFound)
	}
	c.app.Expanded[id] = !c.app.Expanded[id]
	return c.app.Expanded[id], nil
}

// SetListQuery applies filter updates. Changing any filter resets the page
// to 1; an explicit page is applied afterwards and range checked.
func (c *ViewController) SetListQuery(q domain.ListQuery) error {
	if q.Query != nil {
		c.app.Query = *q.Query
		c.app.Page = 1
	}
	if q.AuthorFilter != nil {
		c.app.AuthorFilter = *q.AuthorFilter
		c.app.Page = 1
	}
	if q.FavoritesOnly != nil {
		c.app.FavoritesOnly = *q.FavoritesOnly
		c.app.Page = 1
	}
	if q.Page != nil {
		return c.SetPage(*q.Page)
	}
	return nil
}

// SetPage moves to page, which must lie in [1, max(1, totalPages)].
func (c *ViewController) SetPage(page int) error {
	total := TotalPages(len(c.filtered()), domain.PageSize)
	if page < 1 || page > max(1, total) {
		return apperrors.WrapValidation(fmt.Sprintf("Page %d is out of range (1-%d)", page, max(1, total)), domain.ErrPageOutOfRange)
	}
	c.app.Page = page
	return nil
}

func (c *ViewController) NextPage() {
	total := TotalPages(len(c.filtered()), domain.PageSize)
	if c.app.Page < total {
		c.app.Page++
	}
}

func (c *ViewController) PrevPage() {
	if c.app.Page > 1 {
		c.app.Page--
	}
}

func (c *ViewController) filtered() []domain.Quote {
	return Filter(c.quotes.All(), c.app.Query, c.app.AuthorFilter, c.app.FavoritesOnly, c.favorites.Set())
}

// RandomView projects the random card, or nil before any quote was picked.
func (c *ViewController) RandomView() *domain.QuoteView {
	if c.app.RandomQuote == nil {
		return nil
	}
	q := *c.app.RandomQuote
	expanded := c.app.Expanded[q.ID]
	v := c.baseView(q, expanded)
	v.Text = c.resolver.DisplayText(q, expanded, c.lang)
	if t, ok := c.resolver.Resolve(q); ok && expanded {
		v.Translation = t
	}
	return &v
}

// ListView projects the current page of the filtered list.
func (c *ViewController) ListView() domain.ListView {
	filtered := c.filtered()
	items, total := Paginate(filtered, c.app.Page, domain.PageSize)

	views := make([]domain.QuoteView, 0, len(items))
	for _, q := range items {
		expanded := c.app.Expanded[q.ID]
		v := c.baseView(q, expanded)
		v.Text = q.Text
		if t, ok := c.resolver.Resolve(q); ok && (expanded || c.lang == domain.LanguageTranslated) {
			v.Translation = t
		}
		views = append(views, v)
	}

	return domain.ListView{
		Items:         views,
		Page:          c.app.Page,
		TotalPages:    total,
		Results:       len(filtered),
		HasPrev:       c.app.Page > 1,
		HasNext:       c.app.Page < total,
		Query:         c.app.Query,
		AuthorFilter:  c.app.AuthorFilter,
		FavoritesOnly: c.app.FavoritesOnly,
	}
}

// View projects whichever mode is active.
func (c *ViewController) View() domain.View {
	v := domain.View{
		Mode:           c.app.Mode,
		Language:       c.lang,
		FavoritesCount: c.favorites.Count(),
	}
	if c.app.Mode == domain.ModeAll {
		list := c.ListView()
		v.List = &list
	} else {
		v.Random = c.RandomView()
	}
	return v
}

func (c *ViewController) baseView(q domain.Quote, expanded bool) domain.QuoteView {
	return domain.QuoteView{
		ID:                   q.ID,
		Author:               domain.NormalizeAuthor(q.Author),
		Tags:                 strings.Join(q.Tags, ", "),
		Expanded:             expanded,
		CanToggleTranslation: c.resolver.HasTranslation(q),
		UserTranslations:     c.resolver.UserTranslations(q.ID),
		Favorite:             c.favorites.IsFavorite(q.ID),
	}
}
