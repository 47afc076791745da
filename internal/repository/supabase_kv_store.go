package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"daily-quotes/internal/domain"
)

// SupabaseKVStore persists client state in the Supabase kv_store table.
type SupabaseKVStore struct {
	supabaseClient domain.SupabaseClient
	sessionID      string
	logger         domain.Logger
}

func NewSupabaseKVStore(supabaseClient domain.SupabaseClient, sessionID string, logger domain.Logger) *SupabaseKVStore {
	return &SupabaseKVStore{
		supabaseClient: supabaseClient,
		sessionID:      sessionID,
		logger:         logger,
	}
}

func (s *SupabaseKVStore) Get(_ context.Context, key string) (string, bool, error) {
	client := s.supabaseClient.DB()
	if client == nil {
		return "", false, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("kv_store").
		Select("value", "", false).
		Eq("session_id", s.sessionID).
		Eq("key", key).
		Execute()
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return "", false, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return getString(rows[0], "value"), true, nil
}

func (s *SupabaseKVStore) Set(_ context.Context, key, value string) error {
	client := s.supabaseClient.DB()
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"session_id": s.sessionID,
		"key":        key,
		"value":      value,
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}

	// Use upsert to insert or update
	_, _, err := client.From("kv_store").
		Upsert(row, "session_id,key", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	s.logger.Debug("State persisted to Supabase", "session_id", s.sessionID, "key", key)
	return nil
}

func getString(data map[string]interface{}, key string) string {
	if val, ok := data[key]; ok && val != nil {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getInt(data map[string]interface{}, key string) int {
	if val, ok := data[key]; ok && val != nil {
		switch v := val.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		}
	}
	return 0
}

func getTime(data map[string]interface{}, key string) time.Time {
	raw := getString(data, key)
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t
	}
	return time.Time{}
}
