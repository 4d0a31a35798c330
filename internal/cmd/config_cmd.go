package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/novaengine/shipwright/internal/config"
	oerrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage shipwright configuration",
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigVetCmd())

	return cmd
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write the default configuration to ~/.shipwright/config.yaml.

The generated file spells out every setting at its default value: content
directories, the hot-reload interval, the suggestion limit, and the serve
address.

Examples:
  # Initialize configuration
  shipwright config init

  # Overwrite existing configuration
  shipwright config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(forceFlag)
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(force bool) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	if _, err := os.Stat(paths.ConfigFile); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: paths.ConfigFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := config.EnsureHomeDir(); err != nil {
		return oerrors.NewIOError("could not create shipwright home directory", paths.HomeDir, err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(paths.ConfigFile, data, 0o644); err != nil {
		return oerrors.NewIOError("could not write config file", paths.ConfigFile, err)
	}

	output.Println("Configuration initialized at " + paths.ConfigFile)
	output.Println("")
	output.Println("Validate with: shipwright config vet")
	return nil
}

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the shipwright configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. File parses as YAML
  3. Settings satisfy the embedded schema (directories non-empty,
     interval and limit non-negative, serve address a host:port)

The config path resolves as --config flag > SHIPWRIGHT_CONFIG env >
~/.shipwright/config.yaml.

Examples:
  # Validate default configuration
  shipwright config vet

  # Validate a custom config path
  shipwright config vet --config /path/to/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigVet()
		},
	}
}

func runConfigVet() error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: configFlag,
	})
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
	}
	configPath := pathResult.ConfigPath

	output.Debug("validating config",
		"path", configPath,
		"source", pathResult.Source,
	)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: configPath,
			Hint:     "Run 'shipwright config init' to create default configuration",
			Cause:    oerrors.ErrNotFound,
		}
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("building config validator: %w", err)
	}
	if err := validator.ValidateFile(configPath); err != nil {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}

	output.Println("Configuration is valid: " + configPath)
	return nil
}
