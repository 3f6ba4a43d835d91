package testutils

import (
	"testing"
	"time"

	"github.com/nfrund/signup/internal/config"
	"github.com/nfrund/signup/internal/logging"
)

// ConfigForTests returns a valid config.Provider pointing at the given fake
// registration API. Extra key/value pairs override the defaults.
func ConfigForTests(t *testing.T, api *RegisterAPI, overrides ...string) *config.Config {
	t.Helper()

	if len(overrides)%2 != 0 {
		t.Fatalf("ConfigForTests: overrides must be key/value pairs")
	}

	// 1. Baseline environment for a test server.
	env := map[string]string{
		"PORT":                    "0",
		"REGISTER_API_URL":        api.URL,
		"REGISTER_API_TIMEOUT":    time.Second.String(),
		"SESSION_SECRET":          "a-very-secret-key-for-testing-!",
		"LOGIN_PATH":              "/login",
		"REDIRECT_DELAY":          "2s",
		"REGISTER_VALIDATE_FIRST": "false",
		"APP_ENV":                 "test",
	}
	for i := 0; i < len(overrides); i += 2 {
		env[overrides[i]] = overrides[i+1]
	}

	// 2. t.Setenv restores the previous values when the test ends.
	for key, value := range env {
		t.Setenv(key, value)
	}

	logging.New()

	// 3. Parse skips .env so a developer's local file cannot leak into tests.
	cfg, err := config.Parse()
	if err != nil {
		t.Fatalf("failed to build test config: %v", err)
	}
	return cfg
}
