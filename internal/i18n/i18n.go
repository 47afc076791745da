// Package i18n localizes the status messages shown to contributors.
//
// Catalogs are gettext .po files embedded in the binary under
// locales/{lang}/LC_MESSAGES/quotes.po. Unknown languages and missing
// entries pass the English msgid through unchanged.
package i18n

import (
	"embed"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed all:locales
var locales embed.FS

const domain = "quotes"

// Message ids used by the contribution flow.
const (
	MsgSubmitted          = "Translation submitted! Thanks for your contribution!"
	MsgBackendFailed      = "Backend save failed, but saved locally"
	MsgBackendUnreachable = "Could not reach the backend, but saved locally"
	MsgEmptyTranslation   = "Please enter a translation"
)

// Catalog translates message ids for one language.
type Catalog struct {
	lang string
	msgs map[string]*gotext.Translation
}

// New loads the catalog for lang. An empty lang is detected from the
// environment the way GNU gettext does it.
func New(lang string) *Catalog {
	if lang == "" {
		lang = detectLanguage()
	}
	po := gotext.NewLocaleFSWithPath(lang, locales, "locales")
	po.AddDomain(domain)
	po.SetDomain(domain)
	return &Catalog{lang: lang, msgs: po.GetTranslations()}
}

// Language returns the language the catalog was loaded for.
func (c *Catalog) Language() string {
	if c == nil {
		return "en"
	}
	return c.lang
}

// T translates msgid, returning it unchanged when no translation exists.
// Message ids are looked up verbatim and never treated as format strings.
func (c *Catalog) T(msgid string) string {
	if c == nil {
		return msgid
	}
	if tr, ok := c.msgs[msgid]; ok {
		return tr.Get()
	}
	return msgid
}

// detectLanguage follows the gettext priority LANGUAGE > LC_ALL > LC_MESSAGES > LANG.
func detectLanguage() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		// LANGUAGE can be a colon-separated list
		if env == "LANGUAGE" {
			val = strings.SplitN(val, ":", 2)[0]
		}
		if idx := strings.IndexByte(val, '.'); idx >= 0 {
			val = val[:idx]
		}
		if val == "C" || val == "POSIX" || val == "" {
			continue
		}
		return val
	}
	return "en"
}
