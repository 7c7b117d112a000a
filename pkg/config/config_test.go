package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsDev())
	assert.Equal(t, "8080", cfg.App.Port)
	assert.False(t, cfg.Brevo.Configured(), "Brevo must be unconfigured without an API key")
	assert.Equal(t, "https://api.brevo.com/v3", cfg.Brevo.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Simulator.MinDelay)
	assert.Equal(t, 12*time.Second, cfg.Simulator.MaxDelay)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvBrevoAPIKey, "xkeysib-test")
	t.Setenv(EnvSimMinDelay, "100ms")
	t.Setenv(EnvSimMaxDelay, "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProd())
	assert.True(t, cfg.Brevo.Configured())
	assert.Equal(t, 100*time.Millisecond, cfg.Simulator.MinDelay)
	assert.Equal(t, 250*time.Millisecond, cfg.Simulator.MaxDelay)
}

func TestLoad_RejectsInvertedSimulatorWindow(t *testing.T) {
	t.Setenv(EnvSimMinDelay, "10s")
	t.Setenv(EnvSimMaxDelay, "2s")

	_, err := Load()
	require.Error(t, err, "inverted delay window must be rejected")
}
