// Package exporter serializes favorite quotes for download.
package exporter

import (
	"strings"

	"daily-quotes/internal/domain"
)

// Exporter renders a list of quotes in one file format.
type Exporter interface {
	Format() string
	FileName() string
	ContentType() string
	Export(quotes []domain.Quote) ([]byte, error)
}

// Registry resolves exporters by format name.
type Registry struct {
	byFormat map[string]Exporter
	aliases  map[string]string
}

func New() *Registry {
	return &Registry{byFormat: map[string]Exporter{}, aliases: map[string]string{}}
}

func (r *Registry) Register(e Exporter, aliases ...string) {
	r.byFormat[e.Format()] = e
	for _, a := range aliases {
		r.aliases[a] = e.Format()
	}
}

// Get looks up format case-insensitively, following aliases.
func (r *Registry) Get(format string) (Exporter, bool) {
	format = strings.ToLower(strings.TrimSpace(format))
	if target, ok := r.aliases[format]; ok {
		format = target
	}
	e, ok := r.byFormat[format]
	return e, ok
}

// Formats lists the registered primary format names.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.byFormat))
	for f := range r.byFormat {
		out = append(out, f)
	}
	return out
}

// Default returns a registry with the json and markdown exporters.
func Default() *Registry {
	r := New()
	r.Register(NewJSON())
	r.Register(NewMarkdown(), "md")
	return r
}
