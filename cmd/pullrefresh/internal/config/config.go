// Package config loads the pullrefresh demo configuration.
//
// Values come from pullrefresh.yaml when present, then PULLREFRESH_*
// environment variables, then built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/pullrefresh/pkg/animation"
	"github.com/go-drift/pullrefresh/pkg/refresh"
)

// FileName is the config file looked up in the working directory.
const FileName = "pullrefresh.yaml"

// EnvPrefix prefixes environment overrides, e.g. PULLREFRESH_DAMPING.
const EnvPrefix = "PULLREFRESH"

// CurrentConfigVersion is the config schema version written by Dump.
// Files must carry the same semver major.
const CurrentConfigVersion = "v1.0.0"

// Content kinds.
const (
	ContentStatic   = "static"
	ContentList     = "list"
	ContentRecycler = "recycler"
)

// Recycler layouts.
const (
	LayoutLinear = "linear"
	LayoutGrid   = "grid"
)

// Config is the resolved demo configuration.
type Config struct {
	ConfigVersion string        `mapstructure:"config_version" yaml:"config_version"`
	Pull          PullConfig    `mapstructure:"pull" yaml:"pull"`
	Content       ContentConfig `mapstructure:"content" yaml:"content"`
	Refresh       RefreshConfig `mapstructure:"refresh" yaml:"refresh"`
}

// PullConfig controls the gesture and settle animation.
type PullConfig struct {
	Damping        float64       `mapstructure:"damping" yaml:"damping"`
	HeaderExtent   float64       `mapstructure:"header_extent" yaml:"header_extent"`
	SettleDuration time.Duration `mapstructure:"settle_duration" yaml:"settle_duration"`
	Curve          string        `mapstructure:"curve" yaml:"curve"`
	// Scale converts logical units to device pixels.
	Scale float64 `mapstructure:"scale" yaml:"scale"`
}

// ContentConfig picks the view placed under the header.
type ContentConfig struct {
	Kind       string `mapstructure:"kind" yaml:"kind"`
	Items      int    `mapstructure:"items" yaml:"items"`
	ItemExtent int    `mapstructure:"item_extent" yaml:"item_extent"`
	Layout     string `mapstructure:"layout" yaml:"layout"`
	Span       int    `mapstructure:"span" yaml:"span"`
}

// RefreshConfig controls the simulated refresh work.
type RefreshConfig struct {
	Delay time.Duration `mapstructure:"delay" yaml:"delay"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Pull: PullConfig{
			Damping:        refresh.DefaultDampingFactor,
			HeaderExtent:   refresh.DefaultHeaderExtent,
			SettleDuration: animation.DefaultSettleDuration,
			Curve:          "accelerate-decelerate",
			Scale:          1,
		},
		Content: ContentConfig{
			Kind:       ContentList,
			Items:      50,
			ItemExtent: 20,
			Layout:     LayoutLinear,
			Span:       2,
		},
		Refresh: RefreshConfig{
			Delay: 1500 * time.Millisecond,
		},
	}
}

// DefaultPath returns FileName in the working directory.
func DefaultPath() string {
	wd, err := os.Getwd()
	if err != nil {
		return FileName
	}
	return filepath.Join(wd, FileName)
}

// Load reads configuration from path. If path is empty, DefaultPath is
// used. A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("config_version", cfg.ConfigVersion)
	v.SetDefault("pull.damping", cfg.Pull.Damping)
	v.SetDefault("pull.header_extent", cfg.Pull.HeaderExtent)
	v.SetDefault("pull.settle_duration", cfg.Pull.SettleDuration)
	v.SetDefault("pull.curve", cfg.Pull.Curve)
	v.SetDefault("pull.scale", cfg.Pull.Scale)
	v.SetDefault("content.kind", cfg.Content.Kind)
	v.SetDefault("content.items", cfg.Content.Items)
	v.SetDefault("content.item_extent", cfg.Content.ItemExtent)
	v.SetDefault("content.layout", cfg.Content.Layout)
	v.SetDefault("content.span", cfg.Content.Span)
	v.SetDefault("refresh.delay", cfg.Refresh.Delay)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if !v.InConfig("config_version") {
		return Config{}, fmt.Errorf("config_version is required; expected %s", semver.Major(CurrentConfigVersion))
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks version compatibility and value ranges.
func (c Config) Validate() error {
	version := c.ConfigVersion
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid config_version %q", c.ConfigVersion)
	}
	if semver.Major(version) != semver.Major(CurrentConfigVersion) {
		return fmt.Errorf("unsupported config_version %s; expected %s", c.ConfigVersion, semver.Major(CurrentConfigVersion))
	}

	if c.Pull.Damping <= 0 {
		return fmt.Errorf("pull.damping must be positive, got %v", c.Pull.Damping)
	}
	if c.Pull.HeaderExtent <= 0 {
		return fmt.Errorf("pull.header_extent must be positive, got %v", c.Pull.HeaderExtent)
	}
	if c.Pull.SettleDuration < 0 {
		return fmt.Errorf("pull.settle_duration must not be negative")
	}
	if c.Pull.Scale <= 0 {
		return fmt.Errorf("pull.scale must be positive, got %v", c.Pull.Scale)
	}
	if _, err := animation.CurveByName(c.Pull.Curve); err != nil {
		return fmt.Errorf("pull.curve: %w", err)
	}

	switch c.Content.Kind {
	case ContentStatic:
	case ContentList, ContentRecycler:
		if c.Content.Items < 0 || c.Content.ItemExtent <= 0 {
			return fmt.Errorf("content needs items >= 0 and item_extent > 0")
		}
	default:
		return fmt.Errorf("unsupported content.kind %q", c.Content.Kind)
	}
	if c.Content.Kind == ContentRecycler {
		switch c.Content.Layout {
		case LayoutLinear:
		case LayoutGrid:
			if c.Content.Span <= 0 {
				return fmt.Errorf("content.span must be positive for a grid")
			}
		default:
			return fmt.Errorf("unsupported content.layout %q", c.Content.Layout)
		}
	}

	if c.Refresh.Delay < 0 {
		return fmt.Errorf("refresh.delay must not be negative")
	}
	return nil
}

// Dump renders cfg as YAML.
func Dump(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteDefault writes the default config to path, refusing to overwrite
// an existing file unless overwrite is set.
func WriteDefault(path string, overwrite bool) (string, error) {
	if path == "" {
		path = DefaultPath()
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config already exists at %s", path)
		}
	}
	data, err := Dump(DefaultConfig())
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
