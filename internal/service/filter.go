package service

import (
	"strings"

	"daily-quotes/internal/domain"
)

// Filter applies the favorites-only, free-text and author filters in that
// order. The result keeps store order.
func Filter(quotes []domain.Quote, query, authorFilter string, favoritesOnly bool, favorites domain.FavoriteSet) []domain.Quote {
	needle := strings.ToLower(query)
	out := make([]domain.Quote, 0, len(quotes))
	for _, q := range quotes {
		if favoritesOnly && !favorites.Has(q.ID) {
			continue
		}
		if needle != "" && !strings.Contains(q.SearchText(), needle) {
			continue
		}
		if authorFilter != "" && domain.NormalizeAuthor(q.Author) != authorFilter {
			continue
		}
		out = append(out, q)
	}
	return out
}

// TotalPages is ceil(n/pageSize), zero for an empty result.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// Paginate returns the 1-based page of items and the total page count.
// Pages outside the range yield an empty slice.
func Paginate(items []domain.Quote, page, pageSize int) ([]domain.Quote, int) {
	total := TotalPages(len(items), pageSize)
	if total == 0 || page < 1 || page > total {
		return []domain.Quote{}, total
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []domain.Quote{}, total
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}
