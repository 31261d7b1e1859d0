// Package config loads the configuration of the pagelinks server.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables (optionally read from a .env file first).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Sternrassler/pagelinks/pkg/logging"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Validation errors.
var (
	ErrEmptyPort        = errors.New("port cannot be empty")
	ErrInvalidLinks     = errors.New("number_of_links must be >= 1")
	ErrInvalidPageSize  = errors.New("page_size must be >= 1")
	ErrInvalidItemCount = errors.New("item_count cannot be negative")
	ErrInvalidCacheTTL  = errors.New("cache_ttl cannot be negative")
)

// ServerConfig holds all settings of the demo server.
type ServerConfig struct {
	// Port the HTTP server listens on
	Port string `yaml:"port"`

	// RedisURL is the address of the markup cache ("" disables caching)
	RedisURL string `yaml:"redis_url"`

	// CacheTTL is how long rendered markup stays cached
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// NumberOfLinks is the size of the numbered window
	NumberOfLinks int `yaml:"number_of_links"`

	// PageSize is the number of items shown per page
	PageSize int `yaml:"page_size"`

	// ItemCount is the number of synthetic items in the demo list
	ItemCount int `yaml:"item_count"`

	// Log configures zerolog
	Log logging.Config `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() ServerConfig {
	return ServerConfig{
		Port:          "8080",
		RedisURL:      "localhost:6379",
		CacheTTL:      5 * time.Minute,
		NumberOfLinks: 5,
		PageSize:      10,
		ItemCount:     195,
		Log:           logging.DefaultConfig(),
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty) and the process environment.
func Load(path string) (ServerConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// LoadEnvFile loads variables from a .env file into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables looked up with lookup.
func (c *ServerConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		c.Port = v
	}
	if v, ok := lookup("REDIS_URL"); ok {
		c.RedisURL = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.Log.Level = logging.LogLevel(v)
	}
	if v, ok := lookup("LOG_PRETTY"); ok && v != "" {
		pretty, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LOG_PRETTY: %w", err)
		}
		c.Log.Pretty = pretty
	}
	if v, ok := lookup("CACHE_TTL"); ok && v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CACHE_TTL: %w", err)
		}
		c.CacheTTL = ttl
	}

	ints := []struct {
		name   string
		target *int
	}{
		{"NUMBER_OF_LINKS", &c.NumberOfLinks},
		{"PAGE_SIZE", &c.PageSize},
		{"ITEM_COUNT", &c.ItemCount},
	}
	for _, i := range ints {
		v, ok := lookup(i.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", i.name, err)
		}
		*i.target = n
	}

	return nil
}

// Validate checks that the configuration is usable.
func (c ServerConfig) Validate() error {
	if c.Port == "" {
		return ErrEmptyPort
	}
	if c.NumberOfLinks < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidLinks, c.NumberOfLinks)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidPageSize, c.PageSize)
	}
	if c.ItemCount < 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidItemCount, c.ItemCount)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("%w (got %s)", ErrInvalidCacheTTL, c.CacheTTL)
	}
	return nil
}
