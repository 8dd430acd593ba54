package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load looks at so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for key, names := range envAliases {
		for _, name := range names {
			t.Setenv(name, "")
		}
		t.Setenv("PORTFOLIO_"+envName(key), "")
	}
	t.Setenv("PORTFOLIO_BACKEND", "")
}

func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, BackendNone, cfg.Backend)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Source.Timeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "public", cfg.Export.Dir)
	assert.Equal(t, "/placeholder.jpg", cfg.Assets.Placeholder)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DIRECTUS_URL", "http://cms.local")
	t.Setenv("DIRECTUS_TOKEN", "secret")
	t.Setenv("PORT", "9000")
	t.Setenv("PORTFOLIO_SOURCE_TIMEOUT", "2s")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, BackendDirectus, cfg.Backend)
	assert.Equal(t, "http://cms.local", cfg.Directus.URL)
	assert.Equal(t, "secret", cfg.Directus.Token)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Source.Timeout)
}

func TestPrefixedEnvWinsOverAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORTFOLIO_DATABASE_URL", "postgres://prefixed")
	t.Setenv("DATABASE_URI", "postgres://alias")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, BackendPostgres, cfg.Backend)
	assert.Equal(t, "postgres://prefixed", cfg.Database.URL)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend: payload
payload:
  url: https://payload.local
  api_key: key
server:
  allowed_origins: [https://ade.dev]
log:
  format: console
`), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, BackendPayload, cfg.Backend)
	assert.Equal(t, "key", cfg.Payload.APIKey)
	assert.Equal(t, []string{"https://ade.dev"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("PORTFOLIO_BACKEND", "directus")
	_, err = Load(viper.New(), "")
	assert.ErrorContains(t, err, "directus.url")
}

func TestValidate(t *testing.T) {
	valid := Config{Backend: BackendAuto, Server: ServerConfig{Port: 80}, Source: SourceConfig{Timeout: time.Second}}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "unknown backend", mutate: func(c *Config) { c.Backend = "sanity" }},
		{name: "payload without url", mutate: func(c *Config) { c.Backend = BackendPayload }},
		{name: "postgres without url", mutate: func(c *Config) { c.Backend = BackendPostgres }},
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }},
		{name: "zero timeout", mutate: func(c *Config) { c.Source.Timeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestResolveBackend(t *testing.T) {
	cfg := Config{Backend: BackendAuto}
	assert.Equal(t, BackendNone, cfg.ResolveBackend())

	cfg.Database.URL = "postgres://db"
	assert.Equal(t, BackendPostgres, cfg.ResolveBackend())

	cfg.Payload.URL = "http://payload"
	assert.Equal(t, BackendPayload, cfg.ResolveBackend())

	cfg.Directus.URL = "http://directus"
	assert.Equal(t, BackendDirectus, cfg.ResolveBackend())

	cfg.Backend = BackendNone
	assert.Equal(t, BackendNone, cfg.ResolveBackend())
}
