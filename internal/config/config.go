// Package config loads fsbrowse settings from defaults, an optional
// fsbrowse.yaml, FSBROWSE_* environment variables and command line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment override, e.g. FSBROWSE_ROOT
	EnvPrefix = "FSBROWSE"

	configName = "fsbrowse"
	configType = "yaml"
)

// Setting keys. Flags are bound to these with BindPFlag.
const (
	KeyRoot          = "root"
	KeyFormat        = "format"
	KeyCaseSensitive = "case_sensitive"
	KeyStrictReparse = "strict_reparse"
	KeyIgnoreFile    = "ignore_file"
	KeyLogLevel      = "log_level"
	KeyNoColor       = "no_color"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config holds the resolved settings
type Config struct {
	Root          string `mapstructure:"root"`
	Format        string `mapstructure:"format"`
	CaseSensitive bool   `mapstructure:"case_sensitive"`
	StrictReparse bool   `mapstructure:"strict_reparse"`
	IgnoreFile    string `mapstructure:"ignore_file"`
	LogLevel      string `mapstructure:"log_level"`
	NoColor       bool   `mapstructure:"no_color"`
}

// New returns a viper instance with defaults and environment lookup set up
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyRoot, ".")
	v.SetDefault(KeyFormat, FormatTable)
	v.SetDefault(KeyCaseSensitive, false)
	v.SetDefault(KeyStrictReparse, false)
	v.SetDefault(KeyIgnoreFile, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyNoColor, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file into v and returns the merged settings.
// With an empty cfgFile, fsbrowse.yaml is looked up in $HOME/.config/fsbrowse
// and the working directory, and a missing file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
		v.AddConfigPath(".")
		v.SetConfigName(configName)
		v.SetConfigType(configType)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", c.Format)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if c.Root == "" {
		c.Root = "."
	}

	return nil
}
