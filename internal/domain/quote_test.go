package domain

import "testing"

func TestNormalizeAuthor(t *testing.T) {
	tests := []struct {
		name   string
		author string
		want   string
	}{
		{name: "plain", author: "Seneca", want: "Seneca"},
		{name: "trailing comma", author: "Marcus Aurelius,", want: "Marcus Aurelius"},
		{name: "surrounding spaces", author: "  Epictetus  ", want: "Epictetus"},
		{name: "only one comma stripped", author: "Zeno,,", want: "Zeno,"},
		{name: "comma before trailing space kept", author: "Seneca, ", want: "Seneca,"},
		{name: "empty", author: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAuthor(tt.author); got != tt.want {
				t.Errorf("NormalizeAuthor(%q) = %q, want %q", tt.author, got, tt.want)
			}
		})
	}
}

func TestQuote_SearchText(t *testing.T) {
	q := Quote{Text: "The Obstacle", Author: "Marcus Aurelius,", Tags: []string{"Stoic", "Action"}}
	want := "the obstacle marcus aurelius, stoic action"
	if got := q.SearchText(); got != want {
		t.Fatalf("SearchText() = %q, want %q", got, want)
	}
}

func TestFavoriteSet_ToggleIsInvolution(t *testing.T) {
	for _, id := range []int{1, 2, 42} {
		s := NewFavoriteSet(2)
		before := s.Has(id)
		s.Toggle(id)
		if s.Has(id) == before {
			t.Fatalf("id %d: first toggle did not change membership", id)
		}
		s.Toggle(id)
		if s.Has(id) != before {
			t.Fatalf("id %d: double toggle changed membership from %v", id, before)
		}
	}
}

func TestFavoriteSet_IDsSortedAndClear(t *testing.T) {
	s := NewFavoriteSet(5, 1, 3, 1)
	ids := s.IDs()
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 3 || ids[2] != 5 {
		t.Fatalf("IDs() = %v, want [1 3 5]", ids)
	}
	s.Clear()
	if len(s.IDs()) != 0 {
		t.Fatalf("expected empty set after Clear, got %v", s.IDs())
	}
}

func TestTranslationLog(t *testing.T) {
	log := TranslationLog{}
	if _, ok := log.Latest(2); ok {
		t.Fatalf("expected no translation for unknown id")
	}

	log.Append(2, "first")
	log.Append(2, "second")
	if got, ok := log.Latest(2); !ok || got != "second" {
		t.Fatalf("Latest(2) = %q, %v; want second, true", got, ok)
	}

	history := log.History(2)
	history[0] = "mutated"
	if log[2][0] != "first" {
		t.Fatalf("History must return a copy")
	}

	log[7] = []string{}
	log.Compact()
	if _, ok := log[7]; ok {
		t.Fatalf("Compact should drop empty entries")
	}
}

func TestParseLanguageAndMode(t *testing.T) {
	if l, err := ParseLanguage("translated"); err != nil || l != LanguageTranslated {
		t.Fatalf("ParseLanguage(translated) = %v, %v", l, err)
	}
	if _, err := ParseLanguage("klingon"); err == nil {
		t.Fatalf("expected error for unknown language")
	}
	if LanguageOriginal.Toggle() != LanguageTranslated || LanguageTranslated.Toggle() != LanguageOriginal {
		t.Fatalf("Toggle should flip between the two preferences")
	}
	if m, err := ParseViewMode("list"); err != nil || m != ModeAll {
		t.Fatalf("ParseViewMode(list) = %v, %v", m, err)
	}
	if _, err := ParseViewMode("grid"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
