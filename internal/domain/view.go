package domain

// PageSize is the number of quotes per list page.
const PageSize = 10

// AppState is the transient view state of one session. Favorites, user
// translations and the language preference live in their own managers.
type AppState struct {
	Mode          ViewMode
	Query         string
	AuthorFilter  string
	Page          int
	FavoritesOnly bool
	RandomQuote   *Quote
	Expanded      map[int]bool
}

// NewAppState returns the state a fresh session starts with.
func NewAppState() AppState {
	return AppState{
		Mode:     ModeRandom,
		Page:     1,
		Expanded: make(map[int]bool),
	}
}

// QuoteView is the render-ready projection of one quote.
type QuoteView struct {
	ID                   int      `json:"id"`
	Text                 string   `json:"text"`
	Translation          string   `json:"translation,omitempty"`
	Author               string   `json:"author"`
	Tags                 string   `json:"tags"`
	Expanded             bool     `json:"expanded"`
	CanToggleTranslation bool     `json:"can_toggle_translation"`
	UserTranslations     []string `json:"user_translations"`
	Favorite             bool     `json:"favorite"`
}

// ListView is the projection of the paginated list mode.
type ListView struct {
	Items         []QuoteView `json:"items"`
	Page          int         `json:"page"`
	TotalPages    int         `json:"total_pages"`
	Results       int         `json:"results"`
	HasPrev       bool        `json:"has_prev"`
	HasNext       bool        `json:"has_next"`
	Query         string      `json:"query"`
	AuthorFilter  string      `json:"author"`
	FavoritesOnly bool        `json:"favorites_only"`
}

// View is the full projection of the session for the current mode.
type View struct {
	Mode           ViewMode   `json:"mode"`
	Language       Language   `json:"language"`
	Random         *QuoteView `json:"random,omitempty"`
	List           *ListView  `json:"list,omitempty"`
	FavoritesCount int        `json:"favorites_count"`
}

// ListQuery carries optional filter updates; nil fields are left unchanged.
type ListQuery struct {
	Query         *string
	AuthorFilter  *string
	FavoritesOnly *bool
	Page          *int
}

// ExportFile is a rendered favorites download.
type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}
