package cmd

import (
	"github.com/spf13/cobra"

	"github.com/novaengine/shipwright/internal/content"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show shipwright version information.

Displays:
  - CLI version, commit, and build date
  - Newest content schema version this build reads`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get(content.SupportedSchemaVersion)
	output.Println(info.String())
	return nil
}
