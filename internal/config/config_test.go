package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "CLIENT_ORIGIN", "REQUEST_TIMEOUT", "SIM_ANSWER", "SIM_GUESSES"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, ":5175", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:5173", cfg.ClientOrigin)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.SimAnswer)
	assert.Empty(t, cfg.SimGuesses)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("SIM_ANSWER", "grass")
	t.Setenv("SIM_GUESSES", "THOSE,HULAS")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "grass", cfg.SimAnswer)
	assert.Equal(t, []string{"THOSE", "HULAS"}, cfg.SimGuesses)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)
}
