package service

import "daily-quotes/internal/domain"

// TranslationResolver decides which translation a quote shows. Preset
// translations always win over user submissions.
//
// It is not safe for concurrent use; Session serializes access.
type TranslationResolver struct {
	presets map[int]string
	log     domain.TranslationLog
}

func NewTranslationResolver(presets map[int]string, log domain.TranslationLog) *TranslationResolver {
	if presets == nil {
		presets = map[int]string{}
	}
	if log == nil {
		log = domain.TranslationLog{}
	}
	return &TranslationResolver{presets: presets, log: log}
}

// Resolve returns the preset translation for q, else the latest user translation.
func (r *TranslationResolver) Resolve(q domain.Quote) (string, bool) {
	if t, ok := r.presets[q.ID]; ok && t != "" {
		return t, true
	}
	return r.log.Latest(q.ID)
}

func (r *TranslationResolver) HasTranslation(q domain.Quote) bool {
	_, ok := r.Resolve(q)
	return ok
}

// Preset returns only the bundled translation for id.
func (r *TranslationResolver) Preset(id int) (string, bool) {
	t, ok := r.presets[id]
	return t, ok && t != ""
}

// DisplayText picks the primary line of a quote card.
func (r *TranslationResolver) DisplayText(q domain.Quote, expanded bool, pref domain.Language) string {
	translation, ok := r.Resolve(q)
	if pref == domain.LanguageTranslated {
		if ok {
			return translation
		}
		return q.Text
	}
	if expanded && ok {
		return translation
	}
	return q.Text
}

// UserTranslations returns the submission history for id, oldest first.
func (r *TranslationResolver) UserTranslations(id int) []string {
	return r.log.History(id)
}

// AddUserTranslation appends text to the history of id.
func (r *TranslationResolver) AddUserTranslation(id int, text string) {
	r.log.Append(id, text)
}

// Log exposes the underlying log for persistence.
func (r *TranslationResolver) Log() domain.TranslationLog {
	return r.log
}
