package exporter

import (
	"bytes"
	"encoding/json"

	"daily-quotes/internal/domain"
)

type JSON struct{}

func NewJSON() *JSON { return &JSON{} }

func (e *JSON) Format() string      { return "json" }
func (e *JSON) FileName() string    { return "ofog-favorites.json" }
func (e *JSON) ContentType() string { return "application/json" }

// Export writes an indented array of full quote records.
func (e *JSON) Export(quotes []domain.Quote) ([]byte, error) {
	if quotes == nil {
		quotes = []domain.Quote{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(quotes); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
