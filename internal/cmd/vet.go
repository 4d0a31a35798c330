package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/novaengine/shipwright/internal/balance"
	"github.com/novaengine/shipwright/internal/catalog"
	"github.com/novaengine/shipwright/internal/content"
	"github.com/novaengine/shipwright/internal/engine"
	oerrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/shipclass"
)

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	var levelFlag string

	cmd := &cobra.Command{
		Use:   "vet [design...]",
		Short: "Validate content files and saved designs",
		Long: `Validate the content tree, and optionally grade saved designs.

Without arguments, vet scans the component, hull, and class directories and
reports every file that failed to load, per failure lane (parse, schema,
version, duplicate id, io). Load failures never stop the scan.

With design names, each design is assembled and graded at the requested
validation level. Levels are cumulative:

  basic        assemblable, no hard errors
  standard     adds non-negative net power and crew within capacity
  strict       adds non-negative net heat and balance score >= 0.5
  tournament   raises the score floor to 0.75

Exits 2 when any content file failed to load or any design failed its level.

Examples:
  # Vet the content tree
  shipwright vet

  # Grade designs for tournament play
  shipwright vet patrol-wing escort-wing --level tournament`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVet(cmd.Context(), args, levelFlag)
		},
	}

	cmd.Flags().StringVar(&levelFlag, "level", "standard",
		fmt.Sprintf("Validation level for designs (%v)", balance.ValidLevels()))

	return cmd
}

func runVet(ctx context.Context, designs []string, levelName string) error {
	level, ok := balance.ParseLevel(levelName)
	if !ok {
		return oerrors.NewExitError(
			fmt.Errorf("invalid level %q (valid: %v)", levelName, balance.ValidLevels()),
			oerrors.ExitGeneralError)
	}

	if len(designs) == 0 {
		return vetContent()
	}

	ectx, err := newEngineContext(ctx)
	if err != nil {
		return err
	}
	return vetDesigns(ectx, designs, level)
}

// vetContent scans the content tree into throwaway catalogs and reports
// every file's load outcome. No defaults are injected; vet grades exactly
// what is on disk.
func vetContent() error {
	cfg := GetConfig()
	loader, err := content.NewLoader()
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	failures := 0
	failures += printContentReport("components",
		loader.LoadComponents(cfg.Assets.Components, catalog.NewComponentCatalog()))
	failures += printContentReport("hulls",
		loader.LoadHulls(cfg.Assets.Ships, catalog.NewHullCatalog()))
	failures += printContentReport("classes",
		loader.LoadClassEntries(cfg.Assets.Ships, shipclass.NewCatalog()))

	if failures > 0 {
		return &oerrors.ExitError{
			Err:     fmt.Errorf("%d content file(s) failed to load", failures),
			Code:    oerrors.ExitValidationError,
			Printed: true,
		}
	}
	output.Println(output.FormatCheckmark("Content tree is valid."))
	return nil
}

// printContentReport renders one pass and returns its failure count.
func printContentReport(name string, report *content.Report) int {
	detail := fmt.Sprintf("%d loaded, %d failed (%s)", report.Loaded(), report.Failed(), report.Dir)
	output.Println(output.FormatVetCheck(name, detail))

	if report.Err != nil {
		output.Println("  " + report.Err.Error())
	}
	for i := range report.Files {
		fs := &report.Files[i]
		switch {
		case fs.Err != nil:
			output.Println("  " + output.FormatFileLine(fs.Path, string(fs.Kind)))
			output.Println("    " + fs.Err.Error())
		case len(fs.Flags) > 0:
			output.Println("  " + output.FormatFileLine(fs.Path, "FLAGGED"))
			for _, flag := range fs.Flags {
				output.Println("    " + flag)
			}
		}
	}
	return report.Failed()
}

// vetDesigns assembles and grades each named design at the given level.
func vetDesigns(ectx *engine.Context, designs []string, level balance.Level) error {
	failed := 0
	for _, name := range designs {
		design, err := ectx.Designs().LoadDesign(name)
		if err != nil {
			return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
		}

		result := ectx.Assembler().Assemble(design.Request())
		check := balance.Check(result, level)

		status := "FAIL"
		if check.Passed {
			status = "PASS"
		}
		output.Println(fmt.Sprintf("%s  %s (score %.2f, level %s)",
			output.StatusStyle(statusFor(check.Passed)).Render(status), name, check.Score, level))

		for _, finding := range check.Findings {
			output.Println("  " + finding.Message)
		}
		for _, hint := range check.Improvements {
			output.Println("  hint: " + hint)
		}

		if !check.Passed {
			failed++
		}
	}

	if failed > 0 {
		return &oerrors.ExitError{
			Err:     fmt.Errorf("%d design(s) failed %v validation", failed, designs),
			Code:    oerrors.ExitValidationError,
			Printed: true,
		}
	}
	return nil
}

func statusFor(passed bool) string {
	if passed {
		return output.StatusValid
	}
	return output.StatusInvalid
}
