package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const apiPrefix = "/api/v1"

// Handlers bundles the route handlers wired by NewRouter.
type Handlers struct {
	Quotes        *QuoteHandler
	Favorites     *FavoriteHandler
	Contributions *ContributionHandler
	Receiver      *ReceiverHandler
}

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(h Handlers, allowedOrigins []string, receiverAuth, requestLogger func(http.Handler) http.Handler) http.Handler {
	router := mux.NewRouter()
	if requestLogger != nil {
		router.Use(requestLogger)
	}

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"daily-quotes"}`))
	}).Methods("GET")

	// API routes live on the root router; inside a subrouter a method
	// mismatch surfaces as 404 instead of 405.
	api := func(path string, fn http.HandlerFunc, method string) {
		router.HandleFunc(apiPrefix+path, fn).Methods(method)
	}

	// View routes
	api("/view", h.Quotes.GetView, "GET")
	api("/view/mode", h.Quotes.SetMode, "PUT")
	api("/random/next", h.Quotes.NextRandom, "POST")

	// List routes
	api("/quotes", h.Quotes.ListQuotes, "GET")
	api("/quotes/page", h.Quotes.SetPage, "PUT")
	api("/quotes/page/next", h.Quotes.NextPage, "POST")
	api("/quotes/page/prev", h.Quotes.PrevPage, "POST")
	api("/quotes/{id:[0-9]+}/expand", h.Quotes.ToggleExpansion, "POST")
	api("/authors", h.Quotes.GetAuthors, "GET")

	// Language preference
	api("/language", h.Quotes.GetLanguage, "GET")
	api("/language/toggle", h.Quotes.ToggleLanguage, "POST")

	// Favorite routes
	api("/favorites", h.Favorites.GetFavorites, "GET")
	api("/favorites", h.Favorites.ClearFavorites, "DELETE")
	api("/favorites/export", h.Favorites.ExportFavorites, "GET")
	api("/favorites/{id:[0-9]+}/toggle", h.Favorites.ToggleFavorite, "POST")

	// Contribution form
	api("/contribution", h.Contributions.GetDraft, "GET")
	api("/contribution/open", h.Contributions.Open, "POST")
	api("/contribution/draft", h.Contributions.SetDraft, "PUT")
	api("/contribution/submit", h.Contributions.Submit, "POST")
	api("/contribution/close", h.Contributions.Close, "POST")

	// Contribution receiver, the endpoint the form posts to
	receiver := router.PathPrefix("/api/quotes").Subrouter()
	if receiverAuth != nil {
		receiver.Use(receiverAuth)
	}
	receiver.HandleFunc("/contribution", h.Receiver.Receive).Methods("POST")
	receiver.HandleFunc("/contribution", h.Receiver.List).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
