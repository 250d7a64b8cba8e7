package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// loggerKey is used to store logger in context.
type loggerKey struct{}

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config
)

// flagKeys maps command flags onto config keys where the names differ.
var flagKeys = map[string]string{
	"port":  "server.port",
	"watch": "server.watch",
}

func defaults() map[string]any {
	return map[string]any{
		"verbose":               false,
		"log_level":             DefaultLogLevel,
		"log_format":            DefaultLogFormat,
		"output":                DefaultOutput,
		"assets_dir":            "",
		"transition":            DefaultTransition.String(),
		"server.port":           DefaultPort,
		"server.auto_open":      true,
		"server.watch":          true,
		"server.session_secret": "",
		"server.sweep_interval": DefaultSweepInterval.String(),
		"server.idle_timeout":   DefaultIdleTimeout.String(),
	}
}

// findConfigFile finds the config file to use.
// Priority: explicit path > piper-site.yaml > piper-site.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range ConfigNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// envKey maps PIPER_SERVER__PORT to server.port and PIPER_LOG_LEVEL to
// log_level.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// flagKey maps an explicitly set flag to its config key and value.
func flagKey(flags *pflag.FlagSet, f *pflag.Flag) (string, any) {
	if !f.Changed {
		return "", nil
	}
	if f.Name == "no-browser" {
		v, _ := flags.GetBool("no-browser")
		return "server.auto_open", !v
	}
	if key, ok := flagKeys[f.Name]; ok {
		return key, posflag.FlagVal(flags, f)
	}
	// Transform kebab-case to snake_case for config keys
	return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from defaults, file, environment variables
// and flags. Precedence (highest to lowest): flags > env vars > config file >
// defaults.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k = koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Load environment variables (PIPER_ prefix)
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			return flagKey(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			WeaklyTypedInput: true,
			TagName:          "koanf",
			Result:           &cfg,
		},
	}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	currentConfig = &cfg
	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
func GetCurrentConfig() *Config {
	return currentConfig
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() any {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
