package service

import (
	"testing"

	"daily-quotes/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func TestTranslationResolver_PresetWinsOverUserTranslation(t *testing.T) {
	log := domain.TranslationLog{1: {"user version"}, 2: {"first", "second"}}
	r := NewTranslationResolver(map[int]string{1: presetOne}, log)

	got, ok := r.Resolve(domain.Quote{ID: 1})
	if !ok || got != presetOne {
		t.Errorf("expected preset, got %q (ok=%v)", got, ok)
	}

	got, ok = r.Resolve(domain.Quote{ID: 2})
	if !ok || got != "second" {
		t.Errorf("expected latest user translation, got %q (ok=%v)", got, ok)
	}

	if _, ok := r.Resolve(domain.Quote{ID: 3}); ok {
		t.Errorf("expected no translation for quote 3")
	}
	if r.HasTranslation(domain.Quote{ID: 3}) {
		t.Errorf("HasTranslation should agree with Resolve")
	}
}

func TestTranslationResolver_DisplayText(t *testing.T) {
	r := NewTranslationResolver(map[int]string{1: "译文"}, nil)
	translated := domain.Quote{ID: 1, Text: "original"}
	plain := domain.Quote{ID: 9, Text: "untranslated"}

	tests := []struct {
		name     string
		quote    domain.Quote
		expanded bool
		pref     domain.Language
		want     string
	}{
		{"translated preference", translated, false, domain.LanguageTranslated, "译文"},
		{"translated preference without translation", plain, true, domain.LanguageTranslated, "untranslated"},
		{"original collapsed", translated, false, domain.LanguageOriginal, "original"},
		{"original expanded", translated, true, domain.LanguageOriginal, "译文"},
		{"original expanded without translation", plain, true, domain.LanguageOriginal, "untranslated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.DisplayText(tt.quote, tt.expanded, tt.pref); got != tt.want {
				t.Errorf("DisplayText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslationResolver_UserTranslations(t *testing.T) {
	r := NewTranslationResolver(nil, nil)
	r.AddUserTranslation(4, "a")
	r.AddUserTranslation(4, "b")

	history := r.UserTranslations(4)
	if diff := cmp.Diff([]string{"a", "b"}, history); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
	history[0] = "mutated"
	if r.UserTranslations(4)[0] != "a" {
		t.Errorf("UserTranslations must return a copy")
	}
	if got := r.UserTranslations(5); len(got) != 0 {
		t.Errorf("expected empty history, got %v", got)
	}
}
