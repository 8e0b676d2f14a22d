package configs

import (
	"os"
	"testing"
)

var testEnv = map[string]string{
	"APP_DEBUG":             "false",
	"APP_ENV":               "test",
	"APP_PORT":              "8080",
	"SPOTIFY_CLIENT_ID":     "client-id",
	"SPOTIFY_CLIENT_SECRET": "client-secret",
	"SPOTIFY_REDIRECT_URI":  "http://localhost:8080/auth/callback",
	"SPOTIFY_TIMEOUT":       "5",
	"MODEL_PROVIDER":        "lmstudio",
	"MODEL_TIMEOUT":         "30",
	"MODEL_ROAST_COUNT":     "0",
	"GEMINI_API_KEY":        "test-key",
	"LMSTUDIO_BASE_URL":     "http://localhost:1234",
	"LMSTUDIO_MODEL":        "test-model",
	"SESSION_STATE_TTL":     "0",
	"STATE_STORE_DRIVER":    "memory",
}

// setupTestEnv sets environment variables that override config.yaml
func setupTestEnv() {
	for key, value := range testEnv {
		os.Setenv(key, value)
	}
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	for key := range testEnv {
		os.Unsetenv(key)
	}
}

// TestEnvironmentOverridesConfigFile tests that env vars win over config.yaml values
func TestEnvironmentOverridesConfigFile(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "")

	cfg := GetViper()

	if cfg.App.Port != "8080" {
		t.Errorf("Expected App.Port to be 8080, got %s", cfg.App.Port)
	}

	if cfg.Spotify.ClientID != "client-id" {
		t.Errorf("Expected Spotify.ClientID to be client-id, got %s", cfg.Spotify.ClientID)
	}

	if cfg.Spotify.RedirectURI != "http://localhost:8080/auth/callback" {
		t.Errorf("Expected Spotify.RedirectURI override, got %s", cfg.Spotify.RedirectURI)
	}

	if cfg.Spotify.Timeout != 5 {
		t.Errorf("Expected Spotify.Timeout to be 5, got %d", cfg.Spotify.Timeout)
	}

	if cfg.Model.Provider != "lmstudio" {
		t.Errorf("Expected Model.Provider to be lmstudio, got %s", cfg.Model.Provider)
	}

	if cfg.Gemini.APIKey != "test-key" {
		t.Errorf("Expected Gemini.APIKey to be test-key, got %s", cfg.Gemini.APIKey)
	}
}

// TestConfigFileDefaults tests values that only come from config.yaml
func TestConfigFileDefaults(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "")

	cfg := GetViper()

	if cfg.Spotify.TokenURL != "https://accounts.spotify.com/api/token" {
		t.Errorf("Expected default token URL, got %s", cfg.Spotify.TokenURL)
	}

	if cfg.Spotify.TimeRange != "short_term" {
		t.Errorf("Expected time range short_term, got %s", cfg.Spotify.TimeRange)
	}

	if !cfg.Session.CookieSecure {
		t.Error("Expected cookies to be secure by default")
	}

	if cfg.StateStore.Prefix == "" {
		t.Error("Expected a default state store prefix")
	}
}

// TestZeroValuesRequireApplicationDefaults tests that zero values pass through to the wiring layer
// NewRoastService and NewAuthService turn a zero MODEL_ROAST_COUNT or SESSION_STATE_TTL into their defaults
func TestZeroValuesRequireApplicationDefaults(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "")

	cfg := GetViper()

	if cfg.Model.RoastCount != 0 {
		t.Errorf("Expected Model.RoastCount to be 0, got %d", cfg.Model.RoastCount)
	}

	if cfg.Session.StateTTL != 0 {
		t.Errorf("Expected Session.StateTTL to be 0, got %d", cfg.Session.StateTTL)
	}
}

// TestInitViperEnvFlag tests that the --env flag value wins over app.env
func TestInitViperEnvFlag(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "production")

	if GetViper().App.Env != "production" {
		t.Errorf("Expected App.Env to be production, got %s", GetViper().App.Env)
	}
}
