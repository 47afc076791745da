package supabase_test

import (
	"errors"
	"testing"

	"daily-quotes/internal/config"
	"daily-quotes/internal/domain"
	"daily-quotes/internal/infra/supabase"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})         {}
func (nopLogger) Error(string, error, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{})        {}
func (nopLogger) Warn(string, ...interface{})         {}

var _ domain.SupabaseClient = (*supabase.Client)(nil)

func TestInitialize_RequiresURLAndKey(t *testing.T) {
	client := supabase.NewClient(&config.AppConfig{SupabaseURL: "http://localhost:54321"}, nopLogger{})
	if err := client.Initialize(); !errors.Is(err, supabase.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if client.DB() != nil {
		t.Fatalf("expected nil client before successful initialization")
	}
}

func TestInitialize_RejectsInvalidURL(t *testing.T) {
	for _, raw := range []string{"localhost:54321", "ftp://example.com", "http://"} {
		client := supabase.NewClient(&config.AppConfig{SupabaseURL: raw, SupabaseKey: "anon-key"}, nopLogger{})
		if err := client.Initialize(); err == nil {
			t.Errorf("%q: expected error", raw)
		}
	}
}

func TestInitialize(t *testing.T) {
	client := supabase.NewClient(&config.AppConfig{
		SupabaseURL: "http://localhost:54321",
		SupabaseKey: "anon-key",
		SessionID:   "default",
	}, nopLogger{})
	if err := client.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	db := client.DB()
	if db == nil {
		t.Fatalf("expected client after initialization")
	}
	if err := client.Initialize(); err != nil {
		t.Fatalf("second initialize: %v", err)
	}
	if client.DB() != db {
		t.Fatalf("second initialize replaced the client")
	}
}
