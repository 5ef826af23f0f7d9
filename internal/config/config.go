package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCapacity = 1
	DefaultTheme    = "default"
	DefaultLogLevel = "warn"
)

type Config struct {
	InitialCapacity int    `yaml:"initial_capacity"`
	Theme           string `yaml:"theme"`
	LogLevel        string `yaml:"log_level"`
	PrintAfterEach  bool   `yaml:"print_after_each"`
}

func DefaultConfig() *Config {
	return &Config{
		InitialCapacity: DefaultCapacity,
		Theme:           DefaultTheme,
		LogLevel:        DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.InitialCapacity < 1 {
		return fmt.Errorf("initial_capacity must be at least 1, got %d", c.InitialCapacity)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty value means the default level.
func (c *Config) Level() (slog.Level, error) {
	name := c.LogLevel
	if name == "" {
		name = DefaultLogLevel
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return lvl, nil
}

// NewLogger builds a text logger on stderr at the configured level.
func (c *Config) NewLogger() (*slog.Logger, error) {
	lvl, err := c.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
