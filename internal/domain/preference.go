package domain

import "fmt"

// Language is the global display language preference.
type Language string

const (
	LanguageOriginal   Language = "original"
	LanguageTranslated Language = "translated"
)

// Toggle flips between original and translated.
func (l Language) Toggle() Language {
	if l == LanguageTranslated {
		return LanguageOriginal
	}
	return LanguageTranslated
}

// ParseLanguage accepts the two known preference values.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageOriginal, LanguageTranslated:
		return Language(s), nil
	}
	return LanguageOriginal, fmt.Errorf("unknown language preference %q", s)
}

// ViewMode selects between the random quote card and the paginated list.
type ViewMode string

const (
	ModeRandom ViewMode = "random"
	ModeAll    ViewMode = "all"
)

// ParseViewMode accepts "random" and "all" ("list" is an alias of "all").
func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case string(ModeRandom):
		return ModeRandom, nil
	case string(ModeAll), "list":
		return ModeAll, nil
	}
	return "", fmt.Errorf("unknown view mode %q", s)
}

// Storage keys of the persisted client state.
const (
	KeyFavorites        = "ofog_favs"
	KeyUserTranslations = "ofog_user_translations"
	KeyLanguage         = "ofog_preferred_language"
)
