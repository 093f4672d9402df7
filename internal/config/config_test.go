package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Equal(t, "static", cfg.StaticDir)
	require.Equal(t, 5*time.Second, cfg.ReadTimeout)
	require.Equal(t, 60*time.Second, cfg.IdleTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("STATIC_DIR", "/srv/static")
	t.Setenv("WRITE_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddress)
	require.Equal(t, "/srv/static", cfg.StaticDir)
	require.Equal(t, 30*time.Second, cfg.WriteTimeout)
}
