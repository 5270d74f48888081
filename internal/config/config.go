package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Board     BoardConfig     `yaml:"board"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// BoardConfig tunes the live board's timing and local state location.
// Zero values fall back to package defaults.
type BoardConfig struct {
	SearchDebounceMs int    `yaml:"search_debounce_ms"`
	ToastDwellMs     int    `yaml:"toast_dwell_ms"`
	ToastExitMs      int    `yaml:"toast_exit_ms"`
	PresetsDir       string `yaml:"presets_dir"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix CLASSGRID_ and underscore-separated
// paths:
//
//	CLASSGRID_SERVER_HOST, CLASSGRID_SERVER_PORT,
//	CLASSGRID_DB_HOST, CLASSGRID_DB_PORT, CLASSGRID_DB_NAME,
//	CLASSGRID_DB_USER, CLASSGRID_DB_PASSWORD, CLASSGRID_DB_SSLMODE,
//	CLASSGRID_AUTH_API_KEY, CLASSGRID_PRESETS_DIR
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CLASSGRID_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("CLASSGRID_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("CLASSGRID_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("CLASSGRID_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("CLASSGRID_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("CLASSGRID_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("CLASSGRID_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("CLASSGRID_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("CLASSGRID_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("CLASSGRID_PRESETS_DIR"); v != "" {
		cfg.Board.PresetsDir = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 && !c.Tailscale.Enabled {
		return fmt.Errorf("server.port is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port == 0 {
		return fmt.Errorf("database.port is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	if c.Board.SearchDebounceMs < 0 || c.Board.ToastDwellMs < 0 || c.Board.ToastExitMs < 0 {
		return fmt.Errorf("board timing values must not be negative")
	}
	return nil
}
