package domain

import "sort"

// FavoriteSet is the set of favorited quote ids. Order is irrelevant.
type FavoriteSet map[int]struct{}

// NewFavoriteSet builds a set from a list of ids, ignoring duplicates.
func NewFavoriteSet(ids ...int) FavoriteSet {
	s := make(FavoriteSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Toggle inserts id when absent and removes it when present.
// It reports whether id is a favorite afterwards.
func (s FavoriteSet) Toggle(id int) bool {
	if _, ok := s[id]; ok {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s FavoriteSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

func (s FavoriteSet) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// IDs returns the members sorted ascending so persisted payloads are stable.
func (s FavoriteSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
