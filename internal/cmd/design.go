package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	oerrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/report"
)

// NewDesignCmd creates the design command group.
func NewDesignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "design",
		Short: "Create, inspect, and compare saved designs",
	}

	cmd.AddCommand(NewDesignCreateCmd())
	cmd.AddCommand(NewDesignListCmd())
	cmd.AddCommand(NewDesignShowCmd())
	cmd.AddCommand(NewDesignDiffCmd())

	return cmd
}

// NewDesignCreateCmd creates the design create command.
func NewDesignCreateCmd() *cobra.Command {
	var (
		hullFlag  string
		setFlags  []string
		draftFlag bool
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create and save a design",
		Long: `Create a design from a hull and slot assignments and save it under
assets/ships/designs/<name>.json.

By default the design must assemble without errors before it is written.
With --draft, work in progress is saved regardless of validity.

Examples:
  # Publish a complete fighter fit
  shipwright design create patrol-wing --hull fighter_mk1 \
    --set PowerPlant_0=fusion_core_mk1 --set MainThruster_0=main_thruster_viper

  # Park an incomplete fit for later
  shipwright design create patrol-wing --hull fighter_mk1 --draft`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesignCreate(cmd.Context(), args[0], hullFlag, setFlags, draftFlag)
		},
	}

	cmd.Flags().StringVar(&hullFlag, "hull", "", "Hull blueprint id (required)")
	cmd.Flags().StringArrayVar(&setFlags, "set", nil, "Slot assignment as slotId=componentId (repeatable)")
	cmd.Flags().BoolVar(&draftFlag, "draft", false, "Save without requiring the design to assemble")
	_ = cmd.MarkFlagRequired("hull")

	return cmd
}

func runDesignCreate(ctx context.Context, name, hullID string, sets []string, draft bool) error {
	ectx, err := newEngineContext(ctx)
	if err != nil {
		return err
	}

	assignments, err := parseAssignments(sets)
	if err != nil {
		return err
	}

	session := ectx.Designs().NewSession(hullID)
	defer ectx.Designs().Close(session.ID)
	for slotID, componentID := range assignments {
		session.SetSlot(slotID, componentID)
	}

	var path string
	if draft {
		path, err = ectx.Designs().SaveDesign(session, name)
	} else {
		path, err = ectx.Designs().Publish(session, name)
	}
	if err != nil {
		if !draft {
			// Show what blocked publishing before failing.
			if result := session.LastResult(); result != nil && !result.IsValid() {
				if printErr := printReport(ectx, result); printErr != nil {
					return printErr
				}
				return &oerrors.ExitError{
					Err:     err,
					Code:    oerrors.ExitValidationError,
					Printed: true,
				}
			}
		}
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	output.Println(output.FormatCheckmark("Saved design to " + path))
	return nil
}

// NewDesignListCmd creates the design list command.
func NewDesignListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved designs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesignList(cmd.Context())
		},
	}
}

func runDesignList(ctx context.Context) error {
	ectx, err := newEngineContext(ctx)
	if err != nil {
		return err
	}

	names, err := ectx.Designs().ListDesigns()
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	if len(names) == 0 {
		output.Println("No saved designs in " + ectx.Config().Assets.Designs)
		return nil
	}

	table := output.NewTable("NAME", "HULL", "COMPONENTS", "STATUS")
	for _, name := range names {
		design, err := ectx.Designs().LoadDesign(name)
		if err != nil {
			table.Row(name, "?", "?", "UNREADABLE")
			continue
		}
		result := ectx.Assembler().Assemble(design.Request())
		status := output.StatusInvalid
		if result.IsValid() {
			status = output.StatusValid
		}
		table.Row(name, design.HullID, strconv.Itoa(len(design.Components)), status)
	}
	output.Println(table.String())
	return nil
}

// NewDesignShowCmd creates the design show command.
func NewDesignShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Assemble a saved design and show its report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssemble(cmd.Context(), "", nil, args[0])
		},
	}
}

// NewDesignDiffCmd creates the design diff command.
func NewDesignDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare two saved designs structurally",
		Long: `Compare the canonical assembly reports of two saved designs.

The diff runs over the canonical JSON documents, so component swaps,
aggregate stat changes, and diagnostic changes all show up. Identical
reports produce no output.

Examples:
  shipwright design diff patrol-wing escort-wing`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesignDiff(cmd.Context(), args[0], args[1])
		},
	}
}

func runDesignDiff(ctx context.Context, nameA, nameB string) error {
	ectx, err := newEngineContext(ctx)
	if err != nil {
		return err
	}

	designA, err := ectx.Designs().LoadDesign(nameA)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}
	designB, err := ectx.Designs().LoadDesign(nameB)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	resultA := ectx.Assembler().Assemble(designA.Request())
	resultB := ectx.Assembler().Assemble(designB.Request())

	diff, err := report.Diff(nameA, resultA, nameB, resultB, output.IsTTY())
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	if diff == "" {
		output.Println(fmt.Sprintf("Designs %q and %q assemble identically.", nameA, nameB))
		return nil
	}

	added, removed, modified := diffSlots(designA.Components, designB.Components)
	output.Print(output.RenderDiff(added, removed, modified, output.GetStyles()))
	output.Println("Report changes:")
	output.Print(output.IndentDiff(diff, "  "))
	return nil
}

// diffSlots compares two slot assignment maps and reports slots only in B
// (added), only in A (removed), and assigned differently (modified).
func diffSlots(a, b map[string]string) (added, removed []string, modified []output.ModifiedItem) {
	slots := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for slot := range a {
		slots = append(slots, slot)
		seen[slot] = true
	}
	for slot := range b {
		if !seen[slot] {
			slots = append(slots, slot)
		}
	}
	sort.Strings(slots)

	for _, slot := range slots {
		compA, inA := a[slot]
		compB, inB := b[slot]
		switch {
		case !inA:
			added = append(added, slot+" = "+compB)
		case !inB:
			removed = append(removed, slot+" = "+compA)
		case compA != compB:
			modified = append(modified, output.ModifiedItem{
				Name: slot,
				Diff: compA + " -> " + compB,
			})
		}
	}
	return added, removed, modified
}
