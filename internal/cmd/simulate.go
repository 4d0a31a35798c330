package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/novaengine/shipwright/internal/balance"
	oerrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/ship"
)

// NewSimulateCmd creates the simulate command.
func NewSimulateCmd() *cobra.Command {
	var (
		hullFlag string
		setFlags []string
	)

	cmd := &cobra.Command{
		Use:   "simulate [design...]",
		Short: "Estimate flight performance of assembled ships",
		Long: `Derive a coarse flight profile from an assembly's aggregate stats:
acceleration, top speed, turn rate, power and heat headroom, and combat,
survival, and economic ratings on a 0-100 scale.

With several designs, the ships are ranked by overall score. The profile of
an invalid assembly is meaningless; simulate refuses to run one.

Examples:
  # Simulate a saved design
  shipwright simulate patrol-wing

  # Rank a squadron
  shipwright simulate patrol-wing escort-wing hauler-wing

  # Simulate an ad-hoc fit
  shipwright simulate --hull fighter_mk1 --set PowerPlant_0=fusion_core_mk1 ...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd.Context(), args, hullFlag, setFlags)
		},
	}

	cmd.Flags().StringVar(&hullFlag, "hull", "", "Hull blueprint id for an ad-hoc fit")
	cmd.Flags().StringArrayVar(&setFlags, "set", nil, "Slot assignment as slotId=componentId (repeatable)")

	return cmd
}

func runSimulate(ctx context.Context, designs []string, hullID string, sets []string) error {
	ectx, err := newEngineContext(ctx)
	if err != nil {
		return err
	}

	if hullID != "" && len(designs) > 0 {
		return oerrors.NewExitError(
			fmt.Errorf("--hull and design arguments are mutually exclusive"), oerrors.ExitGeneralError)
	}

	var (
		names   []string
		results []*ship.AssemblyResult
	)
	switch {
	case hullID != "":
		result, err := resolveResult(ectx, hullID, sets, "")
		if err != nil {
			return err
		}
		names = []string{hullID}
		results = []*ship.AssemblyResult{result}

	case len(designs) > 0:
		for _, name := range designs {
			design, err := ectx.Designs().LoadDesign(name)
			if err != nil {
				return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
			}
			names = append(names, name)
			results = append(results, ectx.Assembler().Assemble(design.Request()))
		}

	default:
		return oerrors.NewExitError(
			fmt.Errorf("either design names or --hull is required"), oerrors.ExitGeneralError)
	}

	for i, result := range results {
		if !result.IsValid() {
			if err := printReport(ectx, result); err != nil {
				return err
			}
			return &oerrors.ExitError{
				Err:     fmt.Errorf("%q is not assemblable; fix it before simulating", names[i]),
				Code:    oerrors.ExitValidationError,
				Printed: true,
			}
		}
	}

	for i, result := range results {
		printProfile(names[i], balance.Simulate(result))
	}

	if len(results) > 1 {
		output.Println("Ranking:")
		for i, ranked := range balance.CompareShips(results) {
			output.Println(fmt.Sprintf("  %d. %-24s %.1f", i+1, ranked.Name, ranked.Score))
		}
	}
	return nil
}

func printProfile(name string, p balance.FlightProfile) {
	styles := output.GetStyles()
	output.Println(styles.Bold.Render(name))
	output.Println(fmt.Sprintf("  Acceleration     %.1f m/s²", p.AccelerationMS2))
	output.Println(fmt.Sprintf("  Top speed        %.1f m/s", p.MaxSpeedMS))
	output.Println(fmt.Sprintf("  Turn rate        %.1f °/s", p.TurnRateDegS))
	output.Println(fmt.Sprintf("  Power headroom   %.1f%%", p.PowerEfficiencyPct))
	output.Println(fmt.Sprintf("  Heat headroom    %.1f%%", p.HeatManagementPct))
	output.Println(fmt.Sprintf("  Combat           %.1f", p.CombatRating))
	output.Println(fmt.Sprintf("  Survival         %.1f", p.SurvivalRating))
	output.Println(fmt.Sprintf("  Economy          %.1f", p.EconomicRating))
	output.Println(fmt.Sprintf("  Overall          %.1f", p.OverallScore()))
}
