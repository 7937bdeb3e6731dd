// Package config loads the daemon configuration from a TOML file.
// Values of the form ${VAR} are substituted from the environment
// before parsing.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Search   SearchConfig   `toml:"search"`
	Lookup   LookupConfig   `toml:"lookup"`
	Auth     AuthConfig     `toml:"auth"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type SearchConfig struct {
	TextLimit int `toml:"text_limit"`
	LinkLimit int `toml:"link_limit"`
}

type LookupConfig struct {
	CacheTTL duration `toml:"cache_ttl"`
}

type AuthConfig struct {
	// Secret enables bearer-token auth on the API when non-empty.
	Secret string `toml:"secret"`
}

// duration wraps time.Duration so TOML values like "60s" parse.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// Load reads the config file at path, substitutes ${VAR} references
// from the environment, and fills in defaults for unset fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	expanded := envVarPattern.ReplaceAllStringFunc(string(data), func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})

	var cfg Config
	if err := toml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8730
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/avdex.db"
	}
	if cfg.Search.TextLimit == 0 {
		cfg.Search.TextLimit = 50
	}
	if cfg.Search.LinkLimit == 0 {
		cfg.Search.LinkLimit = 2000
	}
	if cfg.Lookup.CacheTTL.Duration == 0 {
		cfg.Lookup.CacheTTL.Duration = 60 * time.Second
	}

	return &cfg, nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
