package exporter

import (
	"strings"

	"daily-quotes/internal/domain"
)

type Markdown struct{}

func NewMarkdown() *Markdown { return &Markdown{} }

func (e *Markdown) Format() string      { return "markdown" }
func (e *Markdown) FileName() string    { return "ofog-favorites.md" }
func (e *Markdown) ContentType() string { return "text/markdown; charset=utf-8" }

var quoteEscaper = strings.NewReplacer(`"`, `\"`)

// Export renders one list item per quote, without a trailing newline.
func (e *Markdown) Export(quotes []domain.Quote) ([]byte, error) {
	lines := make([]string, 0, len(quotes))
	for _, q := range quotes {
		lines = append(lines, `- "`+quoteEscaper.Replace(q.Text)+`" — `+domain.NormalizeAuthor(q.Author))
	}
	return []byte(strings.Join(lines, "\n")), nil
}
