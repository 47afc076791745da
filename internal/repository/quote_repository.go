package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"daily-quotes/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed data/ofog-quotes.json
var bundledQuotes []byte

// QuoteRepository implements domain.QuoteStore over an in-memory, load-once list.
type QuoteRepository struct {
	quotes  []domain.Quote
	byID    map[int]int
	authors []string
}

// NewQuoteRepository indexes quotes and rejects duplicate ids.
func NewQuoteRepository(quotes []domain.Quote) (*QuoteRepository, error) {
	r := &QuoteRepository{
		quotes: make([]domain.Quote, len(quotes)),
		byID:   make(map[int]int, len(quotes)),
	}
	authorSet := make(map[string]struct{})
	for i, q := range quotes {
		if _, dup := r.byID[q.ID]; dup {
			return nil, fmt.Errorf("%w: %d", domain.ErrDuplicateQuoteID, q.ID)
		}
		q.Tags = append([]string(nil), q.Tags...)
		r.quotes[i] = q
		r.byID[q.ID] = i
		authorSet[domain.NormalizeAuthor(q.Author)] = struct{}{}
	}
	r.authors = make([]string, 0, len(authorSet))
	for a := range authorSet {
		r.authors = append(r.authors, a)
	}
	sort.Strings(r.authors)
	return r, nil
}

// LoadQuoteRepository loads the dataset from path, or the bundled dataset when path is empty.
func LoadQuoteRepository(path string, logger domain.Logger) (*QuoteRepository, error) {
	quotes, err := LoadQuotes(path)
	if err != nil {
		return nil, err
	}
	repo, err := NewQuoteRepository(quotes)
	if err != nil {
		return nil, err
	}
	source := path
	if source == "" {
		source = "bundled"
	}
	logger.Info("Quote store loaded", "source", source, "count", repo.Len(), "authors", len(repo.authors))
	return repo, nil
}

// LoadQuotes decodes a JSON or YAML dataset. An empty path selects the bundled JSON.
func LoadQuotes(path string) ([]domain.Quote, error) {
	if path == "" {
		return decodeJSONQuotes(bundledQuotes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quotes file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var quotes []domain.Quote
		if err := yaml.Unmarshal(data, &quotes); err != nil {
			return nil, fmt.Errorf("parse quotes yaml: %w", err)
		}
		return quotes, nil
	default:
		return decodeJSONQuotes(data)
	}
}

func decodeJSONQuotes(data []byte) ([]domain.Quote, error) {
	var quotes []domain.Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("parse quotes json: %w", err)
	}
	return quotes, nil
}

// All returns a copy of the quotes in dataset order.
func (r *QuoteRepository) All() []domain.Quote {
	out := make([]domain.Quote, len(r.quotes))
	copy(out, r.quotes)
	return out
}

func (r *QuoteRepository) Len() int {
	return len(r.quotes)
}

// At returns the quote at dataset index i. It panics when i is out of range, like a slice.
func (r *QuoteRepository) At(i int) domain.Quote {
	return r.quotes[i]
}

func (r *QuoteRepository) FindByID(id int) (domain.Quote, bool) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Quote{}, false
	}
	return r.quotes[i], true
}

// Authors returns the distinct normalized authors, sorted ascending.
func (r *QuoteRepository) Authors() []string {
	out := make([]string, len(r.authors))
	copy(out, r.authors)
	return out
}

// PresetTranslations collects the bundled translations carried by the dataset.
func (r *QuoteRepository) PresetTranslations() map[int]string {
	presets := make(map[int]string)
	for _, q := range r.quotes {
		if q.Translated != "" {
			presets[q.ID] = q.Translated
		}
	}
	return presets
}
