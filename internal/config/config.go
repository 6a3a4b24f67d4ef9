// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr     string
	BasePath       string
	SiteURL        string
	ContentDB      string
	Reveal         bool
	NoticeDuration time.Duration

	RelayEndpoint   string
	RelayServiceID  string
	RelayTemplateID string
	RelayPublicKey  string
	RelayPrivateKey string
	RelayTimeout    time.Duration

	ContactRecipient string
}

// HasRelayCredentials returns true when the EmailJS service, template and
// public key are all set. Without them the composition root falls back to a
// relay that only logs submissions.
func (c *Config) HasRelayCredentials() bool {
	return c.RelayServiceID != "" && c.RelayTemplateID != "" && c.RelayPublicKey != ""
}

// UsesContentDB returns true when content should be read from a SQLite
// snapshot instead of the embedded catalog.
func (c *Config) UsesContentDB() bool {
	return c.ContentDB != ""
}

// Load reads configuration from environment variables and returns a validated Config.
// Every variable is optional. Defaults: STUDIOSITE_LISTEN_ADDR (127.0.0.1:8080),
// STUDIOSITE_BASE_PATH (/), STUDIOSITE_REVEAL (true), STUDIOSITE_NOTICE_DURATION (5s),
// STUDIOSITE_RELAY_ENDPOINT (https://api.emailjs.com), STUDIOSITE_RELAY_TIMEOUT (15s).
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:       envOr("STUDIOSITE_LISTEN_ADDR", "127.0.0.1:8080"),
		BasePath:         envOr("STUDIOSITE_BASE_PATH", "/"),
		SiteURL:          strings.TrimRight(os.Getenv("STUDIOSITE_SITE_URL"), "/"),
		ContentDB:        os.Getenv("STUDIOSITE_CONTENT_DB"),
		RelayEndpoint:    strings.TrimRight(envOr("STUDIOSITE_RELAY_ENDPOINT", "https://api.emailjs.com"), "/"),
		RelayServiceID:   os.Getenv("STUDIOSITE_RELAY_SERVICE_ID"),
		RelayTemplateID:  os.Getenv("STUDIOSITE_RELAY_TEMPLATE_ID"),
		RelayPublicKey:   os.Getenv("STUDIOSITE_RELAY_PUBLIC_KEY"),
		RelayPrivateKey:  os.Getenv("STUDIOSITE_RELAY_PRIVATE_KEY"),
		ContactRecipient: os.Getenv("STUDIOSITE_CONTACT_RECIPIENT"),
	}

	var err error
	if cfg.Reveal, err = boolEnv("STUDIOSITE_REVEAL", true); err != nil {
		return nil, err
	}
	if cfg.NoticeDuration, err = durationEnv("STUDIOSITE_NOTICE_DURATION", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.RelayTimeout, err = durationEnv("STUDIOSITE_RELAY_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(cfg.BasePath, "/") {
		return nil, fmt.Errorf("STUDIOSITE_BASE_PATH must start with '/', got %q", cfg.BasePath)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func boolEnv(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s has invalid boolean %q: %w", key, v, err)
	}
	return parsed, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid duration %q: %w", key, v, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %q", key, v)
	}
	return parsed, nil
}
