package domain

// TranslationLog maps a quote id to the translations users submitted for it,
// oldest first. An id with no submissions is absent, never mapped to an empty list.
type TranslationLog map[int][]string

// Append records a new translation for id.
func (l TranslationLog) Append(id int, text string) {
	l[id] = append(l[id], text)
}

// Latest returns the most recent translation for id.
func (l TranslationLog) Latest(id int) (string, bool) {
	entries := l[id]
	if len(entries) == 0 {
		return "", false
	}
	return entries[len(entries)-1], true
}

// History returns a copy of all translations recorded for id.
func (l TranslationLog) History(id int) []string {
	entries := l[id]
	out := make([]string, len(entries))
	copy(out, entries)
	return out
}

// Compact removes ids mapped to empty lists.
func (l TranslationLog) Compact() {
	for id, entries := range l {
		if len(entries) == 0 {
			delete(l, id)
		}
	}
}
