package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vango-dev/elements/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "elements.json"

	// DefaultPort is the default docs server port.
	DefaultPort = 4000

	// DefaultHost is the default docs server host.
	DefaultHost = "localhost"

	// DefaultRegistryURL is where the published manifest is served from.
	DefaultRegistryURL = "https://elements.vango.dev/registry.json"

	// DefaultRegistryOutput is where `registry build` writes the manifest.
	DefaultRegistryOutput = "dist/registry.json"

	// DefaultMaxSessions bounds concurrent playground sessions.
	DefaultMaxSessions = 64

	// DefaultIdleTimeout closes playground sessions without traffic.
	DefaultIdleTimeout = "5m"
)

// Config represents elements.json.
type Config struct {
	// Name is the library name published in the manifest.
	Name string `json:"name" validate:"required"`

	// Version is the library version, a semantic version without the v.
	Version string `json:"version" validate:"required,semver"`

	Server     ServerConfig     `json:"server"`
	Playground PlaygroundConfig `json:"playground"`
	Registry   RegistryConfig   `json:"registry"`

	// Theme is the path to a theme.toml. Empty uses the default theme.
	Theme string `json:"theme,omitempty"`

	// Stories is the path to a stories.yaml. Empty uses the built-in stories.
	Stories string `json:"stories,omitempty"`

	// LogLevel is one of debug, info, warn and error.
	LogLevel string `json:"logLevel" validate:"oneof=debug info warn error"`

	// Tracing enables spans around HTTP requests.
	Tracing bool `json:"tracing,omitempty"`

	configPath string
}

// ServerConfig contains docs server settings.
type ServerConfig struct {
	Host string `json:"host" validate:"required"`
	Port int    `json:"port" validate:"min=0,max=65535"`
}

// PlaygroundConfig contains live playground settings.
type PlaygroundConfig struct {
	MaxSessions int    `json:"maxSessions" validate:"min=1"`
	IdleTimeout string `json:"idleTimeout" validate:"duration"`
}

// RegistryConfig contains manifest build and publish settings.
type RegistryConfig struct {
	// URL is where the manifest is published.
	URL string `json:"url" validate:"required,url"`

	// Output is the local path of the built manifest.
	Output string `json:"output" validate:"required"`

	// Bucket, Prefix and Region locate the S3 upload target. Publishing
	// requires Bucket.
	Bucket string `json:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty"`
	Region string `json:"region,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	cfg := &Config{
		Name:    "elements",
		Version: "0.1.0",
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads elements.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads, defaults and validates the configuration at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or run without --config to use defaults")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default loads elements.json from dir when it exists and returns the
// defaults otherwise.
func Default(dir string) (*Config, error) {
	if !Exists(dir) {
		return New(), nil
	}
	return Load(dir)
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E101").Wrap(err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("E101").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Playground.MaxSessions == 0 {
		c.Playground.MaxSessions = DefaultMaxSessions
	}
	if c.Playground.IdleTimeout == "" {
		c.Playground.IdleTimeout = DefaultIdleTimeout
	}
	if c.Registry.URL == "" {
		c.Registry.URL = DefaultRegistryURL
	}
	if c.Registry.Output == "" {
		c.Registry.Output = DefaultRegistryOutput
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Address returns the docs server listen address.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// IdleTimeout returns the parsed playground idle timeout.
func (c *Config) IdleTimeout() time.Duration {
	d, err := time.ParseDuration(c.Playground.IdleTimeout)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// Level returns the configured slog level.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Resolve returns path relative to the config directory, or path itself when
// it is absolute or empty.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// ThemePath returns the resolved theme path.
func (c *Config) ThemePath() string { return c.Resolve(c.Theme) }

// StoriesPath returns the resolved stories path.
func (c *Config) StoriesPath() string { return c.Resolve(c.Stories) }

// RegistryOutputPath returns the resolved manifest output path.
func (c *Config) RegistryOutputPath() string { return c.Resolve(c.Registry.Output) }

// Exists reports whether dir contains elements.json.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
