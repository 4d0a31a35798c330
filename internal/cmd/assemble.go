package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/novaengine/shipwright/internal/catalog"
	"github.com/novaengine/shipwright/internal/diag"
	"github.com/novaengine/shipwright/internal/engine"
	oerrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/report"
	"github.com/novaengine/shipwright/internal/ship"
)

// NewAssembleCmd creates the assemble command.
func NewAssembleCmd() *cobra.Command {
	var (
		hullFlag    string
		setFlags    []string
		designFlag  string
		loadoutFlag string
	)

	cmd := &cobra.Command{
		Use:   "assemble",
		Short: "Assemble a ship and report diagnostics",
		Long: `Assemble a ship from a hull and slot assignments, or from a saved design.

The assembly always completes: hard rule violations become Error diagnostics
on the report, soft compatibility issues become Warnings, and empty required
slots carry ranked replacement suggestions. The command exits 2 when the
assembled ship is invalid.

Examples:
  # Assemble a fighter from explicit slot assignments
  shipwright assemble --hull fighter_mk1 \
    --set PowerPlant_0=fusion_core_mk1 --set MainThruster_0=main_thruster_viper

  # Assemble a saved design
  shipwright assemble --design patrol-wing

  # Assemble a class default loadout
  shipwright assemble --loadout fighter_mk1:standard

  # Canonical JSON report
  shipwright assemble --design patrol-wing -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssembleCmd(cmd.Context(), hullFlag, setFlags, designFlag, loadoutFlag)
		},
	}

	cmd.Flags().StringVar(&hullFlag, "hull", "", "Hull blueprint id")
	cmd.Flags().StringArrayVar(&setFlags, "set", nil, "Slot assignment as slotId=componentId (repeatable)")
	cmd.Flags().StringVar(&designFlag, "design", "", "Saved design name to assemble")
	cmd.Flags().StringVar(&loadoutFlag, "loadout", "", "Class loadout as classId:loadoutName")

	return cmd
}

func runAssemble(ctx context.Context, hullID string, sets []string, designName string) error {
	return runAssembleCmd(ctx, hullID, sets, designName, "")
}

func runAssembleCmd(ctx context.Context, hullID string, sets []string, designName, loadout string) error {
	ectx, err := newEngineContext(ctx)
	if err != nil {
		return err
	}

	var result *ship.AssemblyResult
	if loadout != "" {
		if hullID != "" || designName != "" {
			return oerrors.NewExitError(
				fmt.Errorf("--loadout cannot be combined with --hull or --design"), oerrors.ExitGeneralError)
		}
		result, err = resolveLoadout(ectx, loadout)
	} else {
		result, err = resolveResult(ectx, hullID, sets, designName)
	}
	if err != nil {
		return err
	}

	if err := printReport(ectx, result); err != nil {
		return err
	}

	if !result.IsValid() {
		return &oerrors.ExitError{
			Err:     fmt.Errorf("ship is not assemblable"),
			Code:    oerrors.ExitValidationError,
			Printed: true,
		}
	}
	return nil
}

// resolveResult assembles either a saved design or an explicit hull with
// --set assignments. Exactly one source must be given.
func resolveResult(ectx *engine.Context, hullID string, sets []string, designName string) (*ship.AssemblyResult, error) {
	switch {
	case designName != "" && hullID != "":
		return nil, oerrors.NewExitError(
			fmt.Errorf("--design and --hull are mutually exclusive"), oerrors.ExitGeneralError)

	case designName != "":
		design, err := ectx.Designs().LoadDesign(designName)
		if err != nil {
			return nil, oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
		}
		return ectx.Assembler().Assemble(design.Request()), nil

	case hullID != "":
		req := ship.NewAssemblyRequest(hullID)
		assignments, err := parseAssignments(sets)
		if err != nil {
			return nil, err
		}
		for slotID, componentID := range assignments {
			req.Assign(slotID, componentID)
		}
		return ectx.Assembler().Assemble(req), nil

	default:
		return nil, oerrors.NewExitError(
			fmt.Errorf("either --hull or --design is required"), oerrors.ExitGeneralError)
	}
}

// resolveLoadout assembles a class default loadout given as
// classId:loadoutName.
func resolveLoadout(ectx *engine.Context, loadout string) (*ship.AssemblyResult, error) {
	classID, loadoutName, ok := strings.Cut(loadout, ":")
	if !ok || classID == "" || loadoutName == "" {
		return nil, oerrors.NewExitError(
			fmt.Errorf("invalid --loadout value %q, expected classId:loadoutName", loadout),
			oerrors.ExitGeneralError)
	}
	req, err := ectx.Classes().LoadoutRequest(classID, loadoutName)
	if err != nil {
		return nil, oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}
	return ectx.Assembler().Assemble(req), nil
}

// parseAssignments parses repeated slotId=componentId flags, preserving the
// last occurrence per slot.
func parseAssignments(sets []string) (map[string]string, error) {
	assignments := make(map[string]string, len(sets))
	for _, s := range sets {
		slotID, componentID, ok := strings.Cut(s, "=")
		if !ok || slotID == "" || componentID == "" {
			return nil, oerrors.NewExitError(
				fmt.Errorf("invalid --set value %q, expected slotId=componentId", s),
				oerrors.ExitGeneralError)
		}
		assignments[slotID] = componentID
	}
	return assignments, nil
}

// printReport renders an assembly result in the requested output format.
func printReport(ectx *engine.Context, result *ship.AssemblyResult) error {
	format, err := reportFormat()
	if err != nil {
		return err
	}

	rendered, err := report.Render(result, format, report.TextOptions{
		ComponentLabel: componentLabeler(ectx.Components()),
	})
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	output.Print(string(rendered))
	return nil
}

// componentLabeler resolves component ids in diagnostic lines to display
// names through the live catalog.
func componentLabeler(components *catalog.ComponentCatalog) diag.ComponentLabeler {
	return func(componentID string) string {
		if bp := components.Find(componentID); bp != nil && bp.DisplayName != "" {
			return bp.DisplayName
		}
		return componentID
	}
}
