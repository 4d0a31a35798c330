// Package config provides configuration loading and management.
package config

import (
	"path/filepath"
	"time"
)

// Built-in defaults.
const (
	// DefaultAssetsRoot is the default content root directory.
	DefaultAssetsRoot = "assets"

	// DefaultReloadInterval is the default poll interval for watch mode.
	DefaultReloadInterval = 2 * time.Second

	// DefaultSuggestionLimit caps ranked replacement suggestions per slot.
	DefaultSuggestionLimit = 5

	// DefaultServeAddr is the default listen address for serve mode.
	DefaultServeAddr = ":8374"
)

// AssetsConfig contains content directory settings.
type AssetsConfig struct {
	// Root is the content root directory.
	// Env: SHIPWRIGHT_ASSETS_ROOT, Default: "assets"
	Root string `json:"root,omitempty"`

	// Components is the component blueprint directory.
	// Default: <root>/components
	Components string `json:"components,omitempty"`

	// Ships is the hull and ship class blueprint directory.
	// Default: <root>/ships
	Ships string `json:"ships,omitempty"`

	// Designs is the saved design directory.
	// Default: <ships>/designs
	Designs string `json:"designs,omitempty"`
}

// ReloadConfig contains hot reload settings.
type ReloadConfig struct {
	// Interval is the poll interval for watch mode.
	// Default: 2s
	Interval time.Duration `json:"interval,omitempty"`
}

// SuggestionsConfig contains replacement suggestion settings.
type SuggestionsConfig struct {
	// Limit caps the number of ranked suggestions per slot.
	// Default: 5
	Limit int `json:"limit,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Verbose enables debug-level logging with caller reporting.
	// Override with --verbose flag.
	Verbose bool `json:"verbose,omitempty"`

	// Timestamps controls whether timestamps are shown in log output.
	// Default: follows Verbose. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty"`
}

// ServeConfig contains designer server settings.
type ServeConfig struct {
	// Addr is the listen address for serve mode.
	// Env: SHIPWRIGHT_SERVE_ADDR, Default: ":8374"
	Addr string `json:"addr,omitempty"`
}

// Config represents the shipwright CLI configuration.
// Loaded from ~/.shipwright/config.yaml, validated against the embedded
// CUE schema.
type Config struct {
	// Assets contains content directory settings.
	Assets AssetsConfig `json:"assets,omitempty"`

	// Reload contains hot reload settings.
	Reload ReloadConfig `json:"reload,omitempty"`

	// Suggestions contains replacement suggestion settings.
	Suggestions SuggestionsConfig `json:"suggestions,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty"`

	// Serve contains designer server settings.
	Serve ServeConfig `json:"serve,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `shipwright config init` to generate the initial config file.
func DefaultConfig() *Config {
	return (&Config{}).WithDefaults()
}

// WithDefaults fills unset fields with their defaults and returns the
// receiver. Derived directories follow the resolved assets root.
func (c *Config) WithDefaults() *Config {
	if c.Assets.Root == "" {
		c.Assets.Root = DefaultAssetsRoot
	}
	if c.Assets.Components == "" {
		c.Assets.Components = filepath.Join(c.Assets.Root, "components")
	}
	if c.Assets.Ships == "" {
		c.Assets.Ships = filepath.Join(c.Assets.Root, "ships")
	}
	if c.Assets.Designs == "" {
		c.Assets.Designs = filepath.Join(c.Assets.Ships, "designs")
	}
	if c.Reload.Interval <= 0 {
		c.Reload.Interval = DefaultReloadInterval
	}
	if c.Suggestions.Limit <= 0 {
		c.Suggestions.Limit = DefaultSuggestionLimit
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = DefaultServeAddr
	}
	return c
}

// Merge overwrites fields of c with non-zero fields of other.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Assets.Root != "" {
		c.Assets.Root = other.Assets.Root
	}
	if other.Assets.Components != "" {
		c.Assets.Components = other.Assets.Components
	}
	if other.Assets.Ships != "" {
		c.Assets.Ships = other.Assets.Ships
	}
	if other.Assets.Designs != "" {
		c.Assets.Designs = other.Assets.Designs
	}
	if other.Reload.Interval > 0 {
		c.Reload.Interval = other.Reload.Interval
	}
	if other.Suggestions.Limit > 0 {
		c.Suggestions.Limit = other.Suggestions.Limit
	}
	if other.Log.Verbose {
		c.Log.Verbose = true
	}
	if other.Log.Timestamps != nil {
		c.Log.Timestamps = other.Log.Timestamps
	}
	if other.Serve.Addr != "" {
		c.Serve.Addr = other.Serve.Addr
	}
}

// IsEmpty reports whether no field of c has been set.
func (c *Config) IsEmpty() bool {
	return c.Assets == (AssetsConfig{}) &&
		c.Reload == (ReloadConfig{}) &&
		c.Suggestions == (SuggestionsConfig{}) &&
		!c.Log.Verbose && c.Log.Timestamps == nil &&
		c.Serve == (ServeConfig{})
}
