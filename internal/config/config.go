// Package config resolves runtime configuration from defaults, an optional
// YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Backend string

const (
	BackendAuto     Backend = "auto"
	BackendDirectus Backend = "directus"
	BackendPayload  Backend = "payload"
	BackendPostgres Backend = "postgres"
	BackendNone     Backend = "none"
)

type Config struct {
	Backend  Backend        `mapstructure:"backend"`
	Directus DirectusConfig `mapstructure:"directus"`
	Payload  PayloadConfig  `mapstructure:"payload"`
	Database DatabaseConfig `mapstructure:"database"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Server   ServerConfig   `mapstructure:"server"`
	Source   SourceConfig   `mapstructure:"source"`
	Log      LogConfig      `mapstructure:"log"`
	Export   ExportConfig   `mapstructure:"export"`
}

type DirectusConfig struct {
	URL   string `mapstructure:"url"`
	Token string `mapstructure:"token"`
}

type PayloadConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type AssetsConfig struct {
	// BaseURL overrides the backend URL as the origin for file ids.
	BaseURL     string `mapstructure:"base_url"`
	Placeholder string `mapstructure:"placeholder"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type SourceConfig struct {
	// Timeout bounds every single backend read.
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// legacy env names, bound next to the PORTFOLIO_ prefixed ones
var envAliases = map[string][]string{
	"directus.url":    {"DIRECTUS_URL"},
	"directus.token":  {"DIRECTUS_TOKEN"},
	"payload.url":     {"PAYLOAD_URL"},
	"payload.api_key": {"PAYLOAD_API_KEY"},
	"database.url":    {"DATABASE_URI", "POSTGRES_URL"},
	"assets.base_url": {"ASSET_BASE_URL"},
	"server.port":     {"PORT"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", string(BackendAuto))
	v.SetDefault("directus.url", "")
	v.SetDefault("directus.token", "")
	v.SetDefault("payload.url", "")
	v.SetDefault("payload.api_key", "")
	v.SetDefault("database.url", "")
	v.SetDefault("assets.base_url", "")
	v.SetDefault("assets.placeholder", "/placeholder.jpg")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", time.Minute)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("source.timeout", 5*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("export.dir", "public")
}

// Load reads configuration into v. cfgFile may be empty, in which case an
// optional portfolio.yaml in the working directory is used.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range envAliases {
		prefixed := "PORTFOLIO_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(append([]string{key, prefixed}, names...)...); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.Backend = cfg.ResolveBackend()
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendAuto, BackendNone:
	case BackendDirectus:
		if c.Directus.URL == "" {
			return fmt.Errorf("invalid config: backend %q needs directus.url", c.Backend)
		}
	case BackendPayload:
		if c.Payload.URL == "" {
			return fmt.Errorf("invalid config: backend %q needs payload.url", c.Backend)
		}
	case BackendPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("invalid config: backend %q needs database.url", c.Backend)
		}
	default:
		return fmt.Errorf("invalid config: unknown backend %q", c.Backend)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port %d out of range", c.Server.Port)
	}
	if c.Source.Timeout <= 0 {
		return fmt.Errorf("invalid config: source.timeout must be positive")
	}
	return nil
}

// ResolveBackend turns BackendAuto into a concrete choice: the first
// configured of directus, payload and postgres, or none.
func (c Config) ResolveBackend() Backend {
	if c.Backend != BackendAuto {
		return c.Backend
	}
	switch {
	case c.Directus.URL != "":
		return BackendDirectus
	case c.Payload.URL != "":
		return BackendPayload
	case c.Database.URL != "":
		return BackendPostgres
	default:
		return BackendNone
	}
}
