package service

import (
	"context"
	"encoding/json"
	"strings"

	"daily-quotes/internal/domain"
)

// PersistedState is the client state that survives across sessions.
type PersistedState struct {
	Favorites    domain.FavoriteSet
	Translations domain.TranslationLog
	Language     domain.Language
}

// StateStore reads and writes PersistedState through a KVStore. Loading
// never fails: missing or corrupt values fall back to defaults. Write
// failures are logged and otherwise ignored.
type StateStore struct {
	kv     domain.KVStore
	quotes domain.QuoteStore
	logger domain.Logger
}

func NewStateStore(kv domain.KVStore, quotes domain.QuoteStore, logger domain.Logger) *StateStore {
	return &StateStore{kv: kv, quotes: quotes, logger: logger}
}

func (s *StateStore) Load(ctx context.Context) PersistedState {
	state := PersistedState{
		Favorites:    domain.NewFavoriteSet(),
		Translations: domain.TranslationLog{},
		Language:     domain.LanguageOriginal,
	}

	if raw, ok := s.get(ctx, domain.KeyFavorites); ok {
		var ids []int
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			s.logger.Warn("Ignoring corrupt favorites", "key", domain.KeyFavorites, "error", err.Error())
		} else {
			dropped := 0
			for _, id := range ids {
				if _, ok := s.quotes.FindByID(id); !ok {
					dropped++
					continue
				}
				state.Favorites[id] = struct{}{}
			}
			if dropped > 0 {
				s.logger.Warn("Dropped unknown favorite ids", "count", dropped)
			}
		}
	}

	if raw, ok := s.get(ctx, domain.KeyUserTranslations); ok {
		var log domain.TranslationLog
		if err := json.Unmarshal([]byte(raw), &log); err != nil {
			s.logger.Warn("Ignoring corrupt user translations", "key", domain.KeyUserTranslations, "error", err.Error())
		} else if log != nil {
			log.Compact()
			state.Translations = log
		}
	}

	if raw, ok := s.get(ctx, domain.KeyLanguage); ok {
		lang, err := domain.ParseLanguage(decodeLanguage(raw))
		if err != nil {
			s.logger.Warn("Ignoring corrupt language preference", "key", domain.KeyLanguage, "error", err.Error())
		} else {
			state.Language = lang
		}
	}

	s.logger.Debug("Client state loaded",
		"favorites", len(state.Favorites),
		"translated_quotes", len(state.Translations),
		"language", state.Language)
	return state
}

// decodeLanguage accepts a JSON string or the bare word.
func decodeLanguage(raw string) string {
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err == nil {
		return s
	}
	return strings.TrimSpace(raw)
}

func (s *StateStore) SaveFavorites(ctx context.Context, favorites domain.FavoriteSet) {
	s.save(ctx, domain.KeyFavorites, favorites.IDs())
}

func (s *StateStore) SaveTranslations(ctx context.Context, log domain.TranslationLog) {
	if log == nil {
		log = domain.TranslationLog{}
	}
	s.save(ctx, domain.KeyUserTranslations, log)
}

func (s *StateStore) SaveLanguage(ctx context.Context, lang domain.Language) {
	s.save(ctx, domain.KeyLanguage, string(lang))
}

func (s *StateStore) get(ctx context.Context, key string) (string, bool) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Failed to read client state", "key", key, "error", err.Error())
		return "", false
	}
	return raw, ok
}

func (s *StateStore) save(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("Failed to encode client state", err, "key", key)
		return
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		s.logger.Error("Failed to persist client state", err, "key", key)
	}
}
