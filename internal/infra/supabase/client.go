package supabase

import (
	"errors"
	"fmt"
	"net/url"

	"daily-quotes/internal/domain"

	"github.com/supabase-community/supabase-go"
)

// ErrMissingCredentials is returned when SUPABASE_URL or SUPABASE_ANON_KEY is unset.
var ErrMissingCredentials = errors.New("supabase URL and anon key must be provided")

// Client is the lazily connected Supabase handle behind the kv_store and
// contributions tables.
type Client struct {
	db     *supabase.Client
	config domain.Config
	logger domain.Logger
}

// NewClient returns an unconnected client; call Initialize before DB.
func NewClient(config domain.Config, logger domain.Logger) *Client {
	return &Client{config: config, logger: logger}
}

// DB returns the postgrest-capable client, or nil before Initialize succeeded.
func (c *Client) DB() *supabase.Client {
	return c.db
}

// Initialize validates the project URL and connects. Repeated calls are no-ops.
func (c *Client) Initialize() error {
	if c.db != nil {
		return nil
	}

	rawURL := c.config.GetSupabaseURL()
	key := c.config.GetSupabaseKey()
	if rawURL == "" || key == "" {
		return ErrMissingCredentials
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid supabase URL %q", rawURL)
	}

	db, err := supabase.NewClient(rawURL, key, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("connect supabase: %w", err)
	}

	c.db = db
	c.logger.Info("Supabase storage ready", "host", u.Host, "session_id", c.config.GetSessionID())
	return nil
}
