package exporter

import (
	"encoding/json"
	"sort"
	"testing"

	"daily-quotes/internal/domain"

	"github.com/google/go-cmp/cmp"
)

var sample = []domain.Quote{
	{ID: 2, Text: `He said "no".`, Author: "Epictetus,", Tags: []string{"pain"}},
	{ID: 7, Text: "Plain text & more", Author: " Seneca ", Tags: []string{}, Translated: "译文"},
}

func TestRegistry_Get(t *testing.T) {
	r := Default()

	for _, format := range []string{"json", "JSON", "markdown", "md", " MD "} {
		if _, ok := r.Get(format); !ok {
			t.Errorf("expected exporter for %q", format)
		}
	}
	if _, ok := r.Get("csv"); ok {
		t.Errorf("expected csv to be unknown")
	}

	md, _ := r.Get("md")
	if md.Format() != "markdown" || md.FileName() != "ofog-favorites.md" {
		t.Errorf("md alias resolved to %s (%s)", md.Format(), md.FileName())
	}

	formats := r.Formats()
	sort.Strings(formats)
	if diff := cmp.Diff([]string{"json", "markdown"}, formats); diff != "" {
		t.Errorf("formats mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	data, err := NewJSON().Export(sample)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var got []domain.Quote
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(sample, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if data[len(data)-1] == '\n' {
		t.Errorf("expected no trailing newline")
	}
	if !json.Valid(data) || string(data[:3]) != "[\n " {
		t.Errorf("expected indented array, got %q", data[:3])
	}
}

func TestJSON_EmptyIsArray(t *testing.T) {
	data, err := NewJSON().Export(nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected [], got %q", data)
	}
}

func TestMarkdown_Export(t *testing.T) {
	data, err := NewMarkdown().Export(sample)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := "- \"He said \\\"no\\\".\" — Epictetus\n- \"Plain text & more\" — Seneca"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("markdown mismatch (-want +got):\n%s", diff)
	}

	empty, _ := NewMarkdown().Export(nil)
	if len(empty) != 0 {
		t.Errorf("expected empty output, got %q", empty)
	}
}
