package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Server   ServerConfig   `mapstructure:"server"`
	NASA     NASAConfig     `mapstructure:"nasa"`
	EPIC     EPICConfig     `mapstructure:"epic"`
	APOD     APODConfig     `mapstructure:"apod"`
	UI       UIConfig       `mapstructure:"ui"`
	Refresh  RefreshConfig  `mapstructure:"refresh"`
	Sessions SessionsConfig `mapstructure:"sessions"`
	State    StateConfig    `mapstructure:"state"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// NASAConfig holds the space-data API configuration
type NASAConfig struct {
	BaseURL              string   `mapstructure:"base_url"`
	Timeout              int      `mapstructure:"timeout"`
	MaxRequestsPerSecond int      `mapstructure:"max_requests_per_second"`
	UserAgent            string   `mapstructure:"user_agent"`
	Proxies              []string `mapstructure:"proxies"`
}

type EPICConfig struct {
	ArchiveURL string `mapstructure:"archive_url"`
}

type APODConfig struct {
	DefaultLanguage string `mapstructure:"default_language"`
}

type UIConfig struct {
	Locale string `mapstructure:"locale"`
}

// RefreshConfig controls the periodic reload of every open dashboard.
// An empty schedule disables it.
type RefreshConfig struct {
	Schedule string `mapstructure:"schedule"`
}

// SessionsConfig bounds the number of open dashboards. Zero disables a limit.
type SessionsConfig struct {
	IdleTimeout int `mapstructure:"idle_timeout"` // seconds
	MaxSessions int `mapstructure:"max_sessions"`
}

type StateConfig struct {
	Backend string `mapstructure:"backend"`
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
	TTL      int    `mapstructure:"ttl"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// DSN returns the libpq-style connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

const (
	StateBackendMemory = "memory"
	StateBackendRedis  = "redis"
)

// Load loads configuration from a YAML file with environment variable overrides.
// An empty path searches for config.yaml in the working directory. A missing
// file is not an error: defaults and environment still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks values that cannot be fixed by defaults.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if c.NASA.BaseURL == "" {
		return fmt.Errorf("nasa.base_url is required")
	}
	if c.Sessions.IdleTimeout < 0 || c.Sessions.MaxSessions < 0 {
		return fmt.Errorf("sessions limits must not be negative")
	}
	switch c.State.Backend {
	case StateBackendMemory, StateBackendRedis:
	default:
		return fmt.Errorf("unknown state.backend %q", c.State.Backend)
	}
	switch c.APOD.DefaultLanguage {
	case "primary", "secondary":
	default:
		return fmt.Errorf("unknown apod.default_language %q", c.APOD.DefaultLanguage)
	}
	switch c.UI.Locale {
	case "en", "es":
	default:
		return fmt.Errorf("unsupported ui.locale %q", c.UI.Locale)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "localhost")

	v.SetDefault("nasa.base_url", "https://server-nasa.onrender.com/api/nasa")
	v.SetDefault("nasa.timeout", 0)
	v.SetDefault("nasa.max_requests_per_second", 0)
	v.SetDefault("nasa.user_agent", "space-explorer/1.0")
	v.SetDefault("nasa.proxies", []string{})

	v.SetDefault("epic.archive_url", "https://epic.gsfc.nasa.gov/archive/natural")

	v.SetDefault("apod.default_language", "primary")
	v.SetDefault("ui.locale", "en")
	v.SetDefault("refresh.schedule", "")

	v.SetDefault("sessions.idle_timeout", 1800)
	v.SetDefault("sessions.max_sessions", 1000)

	v.SetDefault("state.backend", StateBackendMemory)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.ttl", 86400)

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "explorer")
	v.SetDefault("database.user", "explorer_user")
	v.SetDefault("database.password", "explorer_pass")
}
