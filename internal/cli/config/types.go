// Package config loads the piper-site CLI configuration.
package config

import (
	"time"

	"github.com/piper-lan/piper-site/pkg/carousel"
)

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool          `koanf:"verbose" yaml:"verbose" json:"verbose"`
	LogLevel     string        `koanf:"log_level" yaml:"log_level" json:"log_level"`
	LogFormat    string        `koanf:"log_format" yaml:"log_format" json:"log_format"`
	OutputFormat string        `koanf:"output" yaml:"output" json:"output"`
	AssetsDir    string        `koanf:"assets_dir" yaml:"assets_dir" json:"assets_dir"`
	Transition   time.Duration `koanf:"transition" yaml:"transition" json:"transition"`
	Server       ServerConfig  `koanf:"server" yaml:"server" json:"server"`
}

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	Port          int           `koanf:"port" yaml:"port" json:"port"`
	AutoOpen      bool          `koanf:"auto_open" yaml:"auto_open" json:"auto_open"`
	Watch         bool          `koanf:"watch" yaml:"watch" json:"watch"`
	SessionSecret string        `koanf:"session_secret" yaml:"session_secret" json:"session_secret"`
	SweepInterval time.Duration `koanf:"sweep_interval" yaml:"sweep_interval" json:"sweep_interval"`
	IdleTimeout   time.Duration `koanf:"idle_timeout" yaml:"idle_timeout" json:"idle_timeout"`
}

// Default configuration values.
const (
	DefaultPort          = 8765
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultOutput        = "auto" // TTY=text, non-TTY=markdown
	DefaultTransition    = carousel.DefaultDuration
	DefaultSweepInterval = time.Minute
	DefaultIdleTimeout   = 2 * time.Minute
	EnvPrefix            = "PIPER_"
)

// ConfigNames are the file names searched in the working directory.
var ConfigNames = []string{"piper-site.yaml", "piper-site.yml"}

// Default returns the configuration used when nothing was loaded.
func Default() *Config {
	return &Config{
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		OutputFormat: DefaultOutput,
		Transition:   DefaultTransition,
		Server: ServerConfig{
			Port:          DefaultPort,
			AutoOpen:      true,
			Watch:         true,
			SweepInterval: DefaultSweepInterval,
			IdleTimeout:   DefaultIdleTimeout,
		},
	}
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	if c.Server.SessionSecret != "" {
		c.Server.SessionSecret = "********"
	}
	return c
}
