// Package cmd provides CLI command implementations.
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/novaengine/shipwright/internal/config"
	"github.com/novaengine/shipwright/internal/engine"
	oerrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/output"
)

var (
	// Global flags
	configFlag       string
	assetsFlag       string
	componentsFlag   string
	shipsFlag        string
	designsFlag      string
	outputFormatFlag string
	verboseFlag      bool
	timestampsFlag   bool

	// Resolved configuration (loaded during PersistentPreRunE)
	shipConfig *config.Config
)

// NewRootCmd creates the root command for the shipwright CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "shipwright",
		Short:         "Modular ship assembly and compatibility engine",
		Long:          `shipwright loads component and hull catalogs, assembles ships against slot and compatibility rules, and reports diagnostics with ranked refit suggestions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: SHIPWRIGHT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&assetsFlag, "assets", "", "Content root directory (env: SHIPWRIGHT_ASSETS_ROOT)")
	rootCmd.PersistentFlags().StringVar(&componentsFlag, "components-dir", "", "Component blueprint directory (env: SHIPWRIGHT_COMPONENTS_DIR)")
	rootCmd.PersistentFlags().StringVar(&shipsFlag, "ships-dir", "", "Hull and class blueprint directory (env: SHIPWRIGHT_SHIPS_DIR)")
	rootCmd.PersistentFlags().StringVar(&designsFlag, "designs-dir", "", "Saved design directory (env: SHIPWRIGHT_DESIGNS_DIR)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "text", "Output format: "+strings.Join(output.ValidFormats(), ", "))
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewAssembleCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewCatalogCmd())
	rootCmd.AddCommand(NewClassCmd())
	rootCmd.AddCommand(NewDesignCmd())
	rootCmd.AddCommand(NewSimulateCmd())
	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().Load(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - every command works on defaults alone
		loaded = &config.Config{}
	}

	assets := config.ResolveAssets(config.ResolveAssetsOptions{
		RootFlag:       assetsFlag,
		ComponentsFlag: componentsFlag,
		ShipsFlag:      shipsFlag,
		DesignsFlag:    designsFlag,
		Config:         loaded,
	})
	loaded.Assets.Root = assets.Root.Value
	loaded.Assets.Components = assets.Components.Value
	loaded.Assets.Ships = assets.Ships.Value
	loaded.Assets.Designs = assets.Designs.Value

	shipConfig = loaded.WithDefaults()

	// Build LogConfig with precedence: flag > config > default
	logCfg := output.LogConfig{
		Verbose: verboseFlag || shipConfig.Log.Verbose,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if shipConfig.Log.Timestamps != nil {
		logCfg.Timestamps = shipConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if verboseFlag {
		config.LogResolvedValues(assets.Values())
	}

	return nil
}

// GetConfig returns the resolved configuration.
func GetConfig() *config.Config {
	if shipConfig == nil {
		return config.DefaultConfig()
	}
	return shipConfig
}

// newEngineContext builds and initializes an engine context over the
// resolved configuration. Content load failures do not fail startup; they
// are logged and the affected files skipped.
func newEngineContext(ctx context.Context) (*engine.Context, error) {
	ectx, err := engine.New(GetConfig())
	if err != nil {
		return nil, oerrors.NewExitError(fmt.Errorf("building engine: %w", err), oerrors.ExitGeneralError)
	}

	var summary *engine.LoadSummary
	err = output.RunWithSpinner(ctx, func() error {
		var initErr error
		summary, initErr = ectx.Init(ctx)
		return initErr
	}, output.WithTitle("Loading content..."))
	if err != nil {
		return nil, oerrors.NewExitError(fmt.Errorf("loading content: %w", err), oerrors.ExitGeneralError)
	}
	for _, loadErr := range summary.Errors() {
		output.Warn("content file skipped", "error", loadErr)
	}

	return ectx, nil
}

// reportFormat validates the --output value for report-producing commands.
func reportFormat() (output.Format, error) {
	format := output.ParseFormat(outputFormatFlag)
	if format == output.FormatTable {
		return "", oerrors.NewExitError(
			fmt.Errorf("invalid output format %q (valid: %v)", outputFormatFlag, output.ValidReportFormats()),
			oerrors.ExitGeneralError)
	}
	return format, nil
}

// listFormat validates the --output value for list commands, defaulting the
// persistent text default to table.
func listFormat() (output.Format, error) {
	if outputFormatFlag == "" || outputFormatFlag == "text" {
		return output.FormatTable, nil
	}
	format := output.ParseFormat(outputFormatFlag)
	if format == output.FormatText {
		return output.FormatTable, nil
	}
	return format, nil
}
