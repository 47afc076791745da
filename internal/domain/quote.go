package domain

import "strings"

// Quote represents a single record of the bundled quote dataset.
// Records are immutable once the store is loaded.
type Quote struct {
	ID         int      `json:"id" yaml:"id"`
	Text       string   `json:"quote" yaml:"quote"`
	Author     string   `json:"author" yaml:"author"`
	Tags       []string `json:"tags" yaml:"tags"`
	Translated string   `json:"translated,omitempty" yaml:"translated,omitempty"`
	Language   string   `json:"language,omitempty" yaml:"language,omitempty"`
}

// NormalizeAuthor strips a single trailing comma and then surrounding whitespace.
func NormalizeAuthor(author string) string {
	return strings.TrimSpace(strings.TrimSuffix(author, ","))
}

// SearchText is the lowercase haystack used by the text filter.
func (q Quote) SearchText() string {
	return strings.ToLower(q.Text + " " + q.Author + " " + strings.Join(q.Tags, " "))
}

// QuoteStore is the read-only ordered quote collection loaded at startup.
type QuoteStore interface {
	All() []Quote
	Len() int
	At(index int) Quote
	FindByID(id int) (Quote, bool)
	Authors() []string
}
