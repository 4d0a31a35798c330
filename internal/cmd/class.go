package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	oerrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/shipclass"
)

// NewClassCmd creates the class command group.
func NewClassCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class",
		Short: "Inspect ship classes, variants, and default loadouts",
	}

	cmd.AddCommand(NewClassListCmd())
	cmd.AddCommand(NewClassShowCmd())
	cmd.AddCommand(NewClassResolveCmd())

	return cmd
}

// NewClassListCmd creates the class list command.
func NewClassListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List ship classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassList(cmd.Context())
		},
	}
}

func runClassList(ctx context.Context) error {
	ectx, err := newEngineContext(ctx)
	if err != nil {
		return err
	}

	table := output.NewTable("ID", "NAME", "TYPE", "SLOTS", "LOADOUTS", "VARIANTS", "FLAGGED")
	for _, entry := range ectx.Classes().All() {
		flagged := ""
		if entry.Flagged {
			flagged = "yes"
		}
		table.Row(entry.ID, entry.DisplayName, string(entry.Type),
			strconv.Itoa(entry.SlotCount()),
			strconv.Itoa(len(entry.DefaultLoadouts)),
			strconv.Itoa(len(entry.Variants)),
			flagged)
	}
	output.Println(table.String())

	if violations := ectx.Classes().ValidationErrors(); len(violations) > 0 {
		output.Println("Taxonomy violations:")
		for _, v := range violations {
			output.Println("  " + v)
		}
	}
	return nil
}

// NewClassShowCmd creates the class show command.
func NewClassShowCmd() *cobra.Command {
	var variantFlag string

	cmd := &cobra.Command{
		Use:   "show <class-id>",
		Short: "Show one class entry in full",
		Long: `Show a class entry: concept brief, baseline envelope, layout,
progression ladder, variants, and default loadouts.

With --variant, the named variant's deltas are applied and the resolved
layout is shown instead of the baseline.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassShow(cmd.Context(), args[0], variantFlag)
		},
	}

	cmd.Flags().StringVar(&variantFlag, "variant", "", "Resolve this variant codename's layout")

	return cmd
}

func runClassShow(ctx context.Context, classID, variantCodename string) error {
	ectx, err := newEngineContext(ctx)
	if err != nil {
		return err
	}

	entry, err := ectx.Classes().Get(classID)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	format, err := reportFormat()
	if err != nil {
		return err
	}

	if variantCodename != "" {
		variant := entry.FindVariant(variantCodename)
		if variant == nil {
			return oerrors.NewExitError(
				oerrors.NewNotFoundError(
					fmt.Sprintf("class %q has no variant %q", classID, variantCodename), "",
					"Run 'shipwright class show "+classID+"' to see its variants."),
				oerrors.ExitNotFound)
		}
		layout := shipclass.ResolveVariantLayout(entry, variant)
		rendered, err := marshalEntry(layout, format)
		if err != nil {
			return oerrors.NewExitError(err, oerrors.ExitGeneralError)
		}
		output.Print(rendered)
		return nil
	}

	rendered, err := marshalEntry(entry, format)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	output.Print(rendered)
	return nil
}

// NewClassResolveCmd creates the class resolve command.
func NewClassResolveCmd() *cobra.Command {
	var (
		loadoutFlag string
		allFlag     bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <class-id>",
		Short: "Assemble a class's default loadouts",
		Long: `Resolve a class's default loadouts into full assembly reports.

Loadout components map positionally onto the class's expanded slot ids; the
assembled result runs through the same rule set as any manual fit, so a
broken default loadout shows its diagnostics here.

Examples:
  # Assemble the first default loadout
  shipwright class resolve fighter_mk1

  # A named loadout, as canonical JSON
  shipwright class resolve fighter_mk1 --loadout "Strike Fit" -o json

  # Every default loadout in turn
  shipwright class resolve fighter_mk1 --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassResolve(cmd.Context(), args[0], loadoutFlag, allFlag)
		},
	}

	cmd.Flags().StringVar(&loadoutFlag, "loadout", "", "Default loadout name (default: the first)")
	cmd.Flags().BoolVar(&allFlag, "all", false, "Resolve every default loadout")

	return cmd
}

func runClassResolve(ctx context.Context, classID, loadoutName string, all bool) error {
	ectx, err := newEngineContext(ctx)
	if err != nil {
		return err
	}

	entry, err := ectx.Classes().Get(classID)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}
	if len(entry.DefaultLoadouts) == 0 {
		return oerrors.NewExitError(
			fmt.Errorf("class %q declares no default loadouts", classID),
			oerrors.ExitGeneralError)
	}

	invalid := 0
	switch {
	case all:
		for i, req := range shipclass.LoadoutRequests(entry) {
			output.Println(fmt.Sprintf("=== %s ===", entry.DefaultLoadouts[i].Name))
			result := ectx.Assembler().Assemble(req)
			if err := printReport(ectx, result); err != nil {
				return err
			}
			if !result.IsValid() {
				invalid++
			}
		}

	default:
		if loadoutName == "" {
			loadoutName = entry.DefaultLoadouts[0].Name
		}
		req, err := ectx.Classes().LoadoutRequest(classID, loadoutName)
		if err != nil {
			return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
		}
		result := ectx.Assembler().Assemble(req)
		if err := printReport(ectx, result); err != nil {
			return err
		}
		if !result.IsValid() {
			invalid++
		}
	}

	if invalid > 0 {
		return &oerrors.ExitError{
			Err:     fmt.Errorf("%d loadout(s) did not assemble cleanly", invalid),
			Code:    oerrors.ExitValidationError,
			Printed: true,
		}
	}
	return nil
}
