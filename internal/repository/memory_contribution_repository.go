package repository

import (
	"context"
	"sort"
	"sync"

	"daily-quotes/internal/domain"
)

// MemoryContributionRepository keeps received contributions in process memory.
type MemoryContributionRepository struct {
	mu    sync.RWMutex
	items []*domain.Contribution
}

func NewMemoryContributionRepository() *MemoryContributionRepository {
	return &MemoryContributionRepository{}
}

func (r *MemoryContributionRepository) Create(_ context.Context, c *domain.Contribution) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.items = append(r.items, &cp)
	return nil
}

func (r *MemoryContributionRepository) ListByQuote(_ context.Context, quoteID *int) ([]*domain.Contribution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Contribution, 0, len(r.items))
	for _, c := range r.items {
		if quoteID != nil && c.QuoteID != *quoteID {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReceivedAt.After(out[j].ReceivedAt)
	})
	return out, nil
}
