package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("REGISTER_API_URL", "http://api.test")
	t.Setenv("SESSION_SECRET", "secret")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.GetPort())
	assert.Equal(t, "http://api.test", cfg.GetRegisterAPIURL())
	assert.Equal(t, 10*time.Second, cfg.GetRegisterAPITimeout())
	assert.Equal(t, "/login", cfg.GetLoginPath())
	assert.Equal(t, 2000*time.Millisecond, cfg.GetRedirectDelay())
	assert.False(t, cfg.GetValidateFirst())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("REGISTER_API_URL", "http://api.test")
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("REDIRECT_DELAY", "500ms")
	t.Setenv("REGISTER_VALIDATE_FIRST", "true")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.GetRedirectDelay())
	assert.True(t, cfg.GetValidateFirst())
}

func TestParseMissingRequired(t *testing.T) {
	t.Setenv("REGISTER_API_URL", "")
	t.Setenv("SESSION_SECRET", "secret")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
