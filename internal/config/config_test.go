package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", true)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.False(t, cfg.App.IsProduction())
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddr)
	assert.Equal(t, "../frontend/dist", cfg.Server.StaticDir)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, defaultOrigins, cfg.CORS.Origins())
	assert.Zero(t, cfg.RateLimit.RequestsPerSecond)
	assert.False(t, cfg.Clients.StrictRiskProfile)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"stdout"}, cfg.Log.OutputPaths)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("ADDITIONAL_CORS_ORIGINS", "https://a.example.com, https://b.example.com,,http://localhost:3000")
	t.Setenv("AIVEST_CLIENTS_STRICT_RISK_PROFILE", "true")
	t.Setenv("AIVEST_RATE_LIMIT_REQUESTS_PER_SECOND", "2.5")
	t.Setenv("AIVEST_LOG_LEVEL", "debug")

	cfg, err := Load("", true)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.True(t, cfg.App.IsProduction())
	assert.True(t, cfg.Clients.StrictRiskProfile)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, "debug", cfg.Log.Level)

	origins := cfg.CORS.Origins()
	assert.Len(t, origins, len(defaultOrigins)+2)
	assert.Contains(t, origins, "https://a.example.com")
	assert.Contains(t, origins, "https://b.example.com")
}

func TestLoad_PrefixedPortWins(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("AIVEST_SERVER_PORT", "9000")

	cfg, err := Load("", true)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
app:
  env: production
server:
  port: 7000
  grpc_addr: ""
  shutdown_timeout: 3s
cors:
  allowed_origins:
    - https://app.example.com
log:
  encoding: json
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Empty(t, cfg.Server.GRPCAddr)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORS.Origins())
	assert.Equal(t, "json", cfg.Log.Encoding)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), false)
	assert.Error(t, err)
}
