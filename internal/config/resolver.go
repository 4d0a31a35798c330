package config

import (
	"os"
	"path/filepath"

	"github.com/novaengine/shipwright/internal/output"
)

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv Source = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig Source = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault Source = "default"
)

// ResolvedValue is a configuration value together with its provenance.
type ResolvedValue struct {
	// Key is the configuration key (e.g. "assets.root").
	Key string
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source Source
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[Source]string
}

// resolveValue applies the flag > env > config > default precedence for a
// single key and records shadowed values.
func resolveValue(key, flagValue, envName, configValue, defaultValue string) ResolvedValue {
	rv := ResolvedValue{
		Key:      key,
		Shadowed: make(map[Source]string),
	}

	envValue := ""
	if envName != "" {
		envValue = os.Getenv(envName)
	}

	switch {
	case flagValue != "":
		rv.Value = flagValue
		rv.Source = SourceFlag
		if envValue != "" {
			rv.Shadowed[SourceEnv] = envValue
		}
		if configValue != "" {
			rv.Shadowed[SourceConfig] = configValue
		}
	case envValue != "":
		rv.Value = envValue
		rv.Source = SourceEnv
		if configValue != "" {
			rv.Shadowed[SourceConfig] = configValue
		}
	case configValue != "":
		rv.Value = configValue
		rv.Source = SourceConfig
	case defaultValue != "":
		rv.Value = defaultValue
		rv.Source = SourceDefault
	}
	// If none set, Value stays empty and Source is zero value

	return rv
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source Source
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[Source]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SHIPWRIGHT_CONFIG env, (3) ~/.shipwright/config.yaml
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolveConfigPathResult{}, err
	}

	rv := resolveValue("config", opts.FlagValue, "SHIPWRIGHT_CONFIG", "", paths.ConfigFile)

	// The default path always exists as a fallback, so record it whenever
	// something else won.
	if rv.Source != SourceDefault {
		rv.Shadowed[SourceDefault] = paths.ConfigFile
	}

	return ResolveConfigPathResult{
		ConfigPath: rv.Value,
		Source:     rv.Source,
		Shadowed:   rv.Shadowed,
	}, nil
}

// ResolveAssetsOptions contains options for content directory resolution.
type ResolveAssetsOptions struct {
	// RootFlag is the --assets flag value (empty if not set).
	RootFlag string
	// ComponentsFlag is the --components-dir flag value.
	ComponentsFlag string
	// ShipsFlag is the --ships-dir flag value.
	ShipsFlag string
	// DesignsFlag is the --designs-dir flag value.
	DesignsFlag string
	// Config is the loaded config file (may be nil).
	Config *Config
}

// ResolveAssetsResult contains every resolved content directory with its
// provenance.
type ResolveAssetsResult struct {
	Root       ResolvedValue
	Components ResolvedValue
	Ships      ResolvedValue
	Designs    ResolvedValue
}

// Values returns the resolved values in a fixed order for logging.
func (r ResolveAssetsResult) Values() []ResolvedValue {
	return []ResolvedValue{r.Root, r.Components, r.Ships, r.Designs}
}

// ResolveAssets resolves the content directories using precedence:
// (1) flags, (2) SHIPWRIGHT_* env, (3) config file, (4) built-in defaults.
// Derived defaults follow the resolved root.
func ResolveAssets(opts ResolveAssetsOptions) ResolveAssetsResult {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	root := resolveValue("assets.root",
		opts.RootFlag, "SHIPWRIGHT_ASSETS_ROOT", cfg.Assets.Root, DefaultAssetsRoot)

	components := resolveValue("assets.components",
		opts.ComponentsFlag, "SHIPWRIGHT_COMPONENTS_DIR", cfg.Assets.Components,
		filepath.Join(root.Value, "components"))

	ships := resolveValue("assets.ships",
		opts.ShipsFlag, "SHIPWRIGHT_SHIPS_DIR", cfg.Assets.Ships,
		filepath.Join(root.Value, "ships"))

	designs := resolveValue("assets.designs",
		opts.DesignsFlag, "SHIPWRIGHT_DESIGNS_DIR", cfg.Assets.Designs,
		filepath.Join(ships.Value, "designs"))

	return ResolveAssetsResult{
		Root:       root,
		Components: components,
		Ships:      ships,
		Designs:    designs,
	}
}

// ResolveServeAddrOptions contains options for listen address resolution.
type ResolveServeAddrOptions struct {
	// FlagValue is the --addr flag value (empty if not set).
	FlagValue string
	// Config is the loaded config file (may be nil).
	Config *Config
}

// ResolveServeAddr resolves the serve listen address using precedence:
// (1) --addr flag, (2) SHIPWRIGHT_SERVE_ADDR env, (3) config.serve.addr,
// (4) the built-in default.
func ResolveServeAddr(opts ResolveServeAddrOptions) ResolvedValue {
	configValue := ""
	if opts.Config != nil {
		configValue = opts.Config.Serve.Addr
	}

	return resolveValue("serve.addr",
		opts.FlagValue, "SHIPWRIGHT_SERVE_ADDR", configValue, DefaultServeAddr)
}

// LogResolvedValues logs configuration resolution at DEBUG level when verbose.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
