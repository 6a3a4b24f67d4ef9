package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every STUDIOSITE_ env var that Load() reads.
var allConfigKeys = []string{
	"STUDIOSITE_LISTEN_ADDR",
	"STUDIOSITE_BASE_PATH",
	"STUDIOSITE_SITE_URL",
	"STUDIOSITE_CONTENT_DB",
	"STUDIOSITE_REVEAL",
	"STUDIOSITE_NOTICE_DURATION",
	"STUDIOSITE_RELAY_ENDPOINT",
	"STUDIOSITE_RELAY_SERVICE_ID",
	"STUDIOSITE_RELAY_TEMPLATE_ID",
	"STUDIOSITE_RELAY_PUBLIC_KEY",
	"STUDIOSITE_RELAY_PRIVATE_KEY",
	"STUDIOSITE_RELAY_TIMEOUT",
	"STUDIOSITE_CONTACT_RECIPIENT",
}

// isolateConfigEnv saves and unsets all STUDIOSITE_ env vars so tests don't
// inherit values from the host environment (e.g. a local .env).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("STUDIOSITE_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("STUDIOSITE_BASE_PATH", "/official-website/")
	t.Setenv("STUDIOSITE_SITE_URL", "https://caffxin.example/")
	t.Setenv("STUDIOSITE_CONTENT_DB", "/tmp/content.db")
	t.Setenv("STUDIOSITE_REVEAL", "false")
	t.Setenv("STUDIOSITE_NOTICE_DURATION", "3s")
	t.Setenv("STUDIOSITE_RELAY_ENDPOINT", "http://relay.local/")
	t.Setenv("STUDIOSITE_RELAY_SERVICE_ID", "svc")
	t.Setenv("STUDIOSITE_RELAY_TEMPLATE_ID", "tpl")
	t.Setenv("STUDIOSITE_RELAY_PUBLIC_KEY", "pub")
	t.Setenv("STUDIOSITE_RELAY_PRIVATE_KEY", "priv")
	t.Setenv("STUDIOSITE_RELAY_TIMEOUT", "2s")
	t.Setenv("STUDIOSITE_CONTACT_RECIPIENT", "team@example.com")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/official-website/", cfg.BasePath)
	assert.Equal(t, "https://caffxin.example", cfg.SiteURL)
	assert.Equal(t, "/tmp/content.db", cfg.ContentDB)
	assert.True(t, cfg.UsesContentDB())
	assert.False(t, cfg.Reveal)
	assert.Equal(t, 3*time.Second, cfg.NoticeDuration)
	assert.Equal(t, "http://relay.local", cfg.RelayEndpoint)
	assert.Equal(t, "priv", cfg.RelayPrivateKey)
	assert.Equal(t, 2*time.Second, cfg.RelayTimeout)
	assert.Equal(t, "team@example.com", cfg.ContactRecipient)
	assert.True(t, cfg.HasRelayCredentials())
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "/", cfg.BasePath)
	assert.True(t, cfg.Reveal)
	assert.Equal(t, 5*time.Second, cfg.NoticeDuration)
	assert.Equal(t, "https://api.emailjs.com", cfg.RelayEndpoint)
	assert.Equal(t, 15*time.Second, cfg.RelayTimeout)
	assert.False(t, cfg.UsesContentDB())
	assert.False(t, cfg.HasRelayCredentials())
}

// TestLoad_PartialRelay verifies that a half-configured relay is not treated
// as configured.
func TestLoad_PartialRelay(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("STUDIOSITE_RELAY_SERVICE_ID", "svc")

	cfg, err := Load()

	require.NoError(t, err)
	assert.False(t, cfg.HasRelayCredentials())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"STUDIOSITE_REVEAL", "sometimes", "STUDIOSITE_REVEAL has invalid boolean"},
		{"STUDIOSITE_NOTICE_DURATION", "five", "STUDIOSITE_NOTICE_DURATION has invalid duration"},
		{"STUDIOSITE_RELAY_TIMEOUT", "-1s", "STUDIOSITE_RELAY_TIMEOUT must be positive"},
		{"STUDIOSITE_BASE_PATH", "site", "STUDIOSITE_BASE_PATH must start with '/'"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
