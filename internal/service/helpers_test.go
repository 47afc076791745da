package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"daily-quotes/internal/domain"
	"daily-quotes/internal/repository"
)

type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func newMockLogger() *mockLogger {
	return &mockLogger{messages: []string{}}
}

func (m *mockLogger) add(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, line)
}

func (m *mockLogger) Info(msg string, args ...interface{})  { m.add("INFO: " + msg) }
func (m *mockLogger) Debug(msg string, args ...interface{}) { m.add("DEBUG: " + msg) }
func (m *mockLogger) Warn(msg string, args ...interface{})  { m.add("WARN: " + msg) }
func (m *mockLogger) Error(msg string, err error, args ...interface{}) {
	m.add("ERROR: " + msg + " - " + err.Error())
}

func (m *mockLogger) count(prefix string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, line := range m.messages {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

type mockKVStore struct {
	mu      sync.Mutex
	data    map[string]string
	writes  map[string]int
	failGet bool
	failSet bool
}

func newMockKVStore() *mockKVStore {
	return &mockKVStore{data: map[string]string{}, writes: map[string]int{}}
}

func (m *mockKVStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return "", false, errors.New("storage unavailable")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mockKVStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return errors.New("storage full")
	}
	m.data[key] = value
	m.writes[key]++
	return nil
}

func (m *mockKVStore) value(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}

func (m *mockKVStore) writeCount(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[key]
}

// mockNotifier returns err for every call and records the payloads.
type mockNotifier struct {
	mu       sync.Mutex
	err      error
	block    chan struct{}
	payloads []domain.ContributionPayload
}

func (m *mockNotifier) Notify(ctx context.Context, payload domain.ContributionPayload) error {
	m.mu.Lock()
	m.payloads = append(m.payloads, payload)
	block := m.block
	err := m.err
	m.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (m *mockNotifier) calls() []domain.ContributionPayload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ContributionPayload(nil), m.payloads...)
}

// manualTimers captures scheduled callbacks so tests decide when they fire.
type manualTimers struct {
	mu      sync.Mutex
	pending []func()
	delays  []time.Duration
}

func (m *manualTimers) AfterFunc(d time.Duration, f func()) func() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := len(m.pending)
	m.pending = append(m.pending, f)
	m.delays = append(m.delays, d)
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		stopped := m.pending[idx] != nil
		m.pending[idx] = nil
		return stopped
	}
}

// scheduled returns the callbacks that have not been stopped or fired.
func (m *manualTimers) scheduled() []func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var fns []func()
	for _, f := range m.pending {
		if f != nil {
			fns = append(fns, f)
		}
	}
	return fns
}

// fire runs every callback that has not been stopped.
func (m *manualTimers) fire() int {
	m.mu.Lock()
	fns := make([]func(), 0, len(m.pending))
	for i, f := range m.pending {
		if f != nil {
			fns = append(fns, f)
			m.pending[i] = nil
		}
	}
	m.mu.Unlock()
	for _, f := range fns {
		f()
	}
	return len(fns)
}

const presetOne = "想象在被打了一巴掌后仍然微笑。然后想象一天二十四小时都这样做。"

// testQuotes builds n quotes with ids 1..n. Quote 1 carries a preset translation.
func testQuotes(n int) []domain.Quote {
	quotes := make([]domain.Quote, 0, n)
	for i := 1; i <= n; i++ {
		q := domain.Quote{
			ID:     i,
			Text:   fmt.Sprintf("Quote number %d", i),
			Author: fmt.Sprintf("Author %d,", i%4),
			Tags:   []string{"stoicism"},
		}
		if i == 1 {
			q.Translated = presetOne
		}
		quotes = append(quotes, q)
	}
	return quotes
}

func newTestStore(t *testing.T, quotes []domain.Quote) *repository.QuoteRepository {
	t.Helper()
	store, err := repository.NewQuoteRepository(quotes)
	if err != nil {
		t.Fatalf("new quote store: %v", err)
	}
	return store
}
