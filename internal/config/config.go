// Package config loads the navrouter configuration: server settings,
// logging and the ordered route table.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/navkit/router"
)

// Config is the root configuration.
type Config struct {
	Server  ServerConfig        `yaml:"server"`
	Logging LoggingConfig       `yaml:"logging"`
	Metrics MetricsConfig       `yaml:"metrics"`
	Routes  []router.Descriptor `yaml:"routes"`
}

// ServerConfig configures the HTTP resolve server.
type ServerConfig struct {
	Address      string        `yaml:"address"`
	Name         string        `yaml:"name"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// MetricsConfig configures the prometheus collectors.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Defaults.
const (
	DefaultAddress      = ":8080"
	DefaultName         = "navrouter"
	DefaultReadTimeout  = 5 * time.Second
	DefaultWriteTimeout = 5 * time.Second
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
	DefaultLogOutput    = "stdout"
	DefaultNamespace    = "navrouter"
)

// ErrNoRoutes is returned by Validate for a configuration without routes.
var ErrNoRoutes = errors.New("no routes configured")

// SetDefaults fills every unset field with its default value.
func (c *Config) SetDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = DefaultAddress
	}
	if c.Server.Name == "" {
		c.Server.Name = DefaultName
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	if c.Logging.Output == "" {
		c.Logging.Output = DefaultLogOutput
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// Validate checks the configuration. Patterns themselves are checked when the
// routes are compiled by the router.
func (c *Config) Validate() error {
	if len(c.Routes) == 0 {
		return ErrNoRoutes
	}

	for i, route := range c.Routes {
		if route.Pattern == "" {
			return fmt.Errorf("route %d: pattern is required", i)
		}
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q", c.Logging.Format)
	}

	switch c.Logging.Output {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("invalid log output %q", c.Logging.Output)
	}

	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return errors.New("server timeouts must not be negative")
	}

	return nil
}
