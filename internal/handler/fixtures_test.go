package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"daily-quotes/internal/domain"
	"daily-quotes/internal/i18n"
	"daily-quotes/internal/repository"
	"daily-quotes/internal/service"
)

type stubNotifier struct{ err error }

func (n stubNotifier) Notify(context.Context, domain.ContributionPayload) error { return n.err }

type mockReceiver struct {
	received []domain.ContributionPayload
	err      error
}

func (m *mockReceiver) Receive(_ context.Context, payload domain.ContributionPayload) (*domain.Contribution, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.received = append(m.received, payload)
	return &domain.Contribution{ID: fmt.Sprintf("c%d", len(m.received)), QuoteID: payload.QuoteID, Translation: payload.Translation}, nil
}

func (m *mockReceiver) List(_ context.Context, quoteID *int) ([]*domain.Contribution, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.Contribution{}
	for i, p := range m.received {
		if quoteID != nil && p.QuoteID != *quoteID {
			continue
		}
		out = append(out, &domain.Contribution{ID: fmt.Sprintf("c%d", i+1), QuoteID: p.QuoteID, Translation: p.Translation})
	}
	return out, nil
}

func handlerTestQuotes(n int) []domain.Quote {
	quotes := make([]domain.Quote, 0, n)
	for i := 1; i <= n; i++ {
		q := domain.Quote{ID: i, Text: fmt.Sprintf("Quote number %d", i), Author: "Seneca,", Tags: []string{"time"}}
		if i == 1 {
			q.Translated = "第一"
		}
		quotes = append(quotes, q)
	}
	return quotes
}

type routerFixture struct {
	router   http.Handler
	session  *service.Session
	receiver *mockReceiver
}

func newRouterFixture(t *testing.T, n int, apiKey string) *routerFixture {
	t.Helper()
	store, err := repository.NewQuoteRepository(handlerTestQuotes(n))
	if err != nil {
		t.Fatalf("quote store: %v", err)
	}
	logger := NewMockHandlerLogger()
	session := service.NewSession(context.Background(), store, repository.NewMemoryKVStore(), stubNotifier{},
		service.SessionOptions{
			Presets: store.PresetTranslations(),
			Catalog: i18n.New("en"),
			Rand:    rand.New(rand.NewPCG(3, 4)),
		}, logger)
	t.Cleanup(session.Shutdown)

	receiver := &mockReceiver{}
	router := NewRouter(Handlers{
		Quotes:        NewQuoteHandler(session, logger),
		Favorites:     NewFavoriteHandler(session, logger),
		Contributions: NewContributionHandler(session, logger),
		Receiver:      NewReceiverHandler(receiver, logger),
	}, []string{"http://localhost:5173"}, NewAPIKeyMiddleware(apiKey, logger).Middleware, RequestLogger(logger))

	return &routerFixture{router: router, session: session, receiver: receiver}
}

func (f *routerFixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
}
