package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	oerrors "github.com/novaengine/shipwright/internal/errors"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/ship"
)

// NewCatalogCmd creates the catalog command group.
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the component and hull catalogs",
	}

	cmd.AddCommand(NewCatalogListCmd())
	cmd.AddCommand(NewCatalogShowCmd())
	cmd.AddCommand(NewCatalogExportCmd())

	return cmd
}

// NewCatalogListCmd creates the catalog list command.
func NewCatalogListCmd() *cobra.Command {
	var categoryFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		Long: `List every component and hull in the live catalogs.

When the content tree is empty or missing, the built-in fallback roster is
listed instead, matching what the engine would assemble against.

Examples:
  # List everything
  shipwright catalog list

  # Only weapons
  shipwright catalog list --category Weapon

  # Machine-readable listing
  shipwright catalog list -o json

List formats: ` + strings.Join(output.ValidListFormats(), ", ") + `.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList(cmd.Context(), categoryFlag)
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "Filter components by category ("+categoryNames()+")")

	return cmd
}

func runCatalogList(ctx context.Context, categoryName string) error {
	ectx, err := newEngineContext(ctx)
	if err != nil {
		return err
	}

	var category ship.Category
	if categoryName != "" {
		parsed, ok := ship.ParseCategoryFold(categoryName)
		if !ok {
			return oerrors.NewExitError(
				fmt.Errorf("unknown category %q", categoryName), oerrors.ExitGeneralError)
		}
		category = parsed
	}

	components := ectx.Components().All()
	format, err := listFormat()
	if err != nil {
		return err
	}

	if format != output.FormatTable {
		entries := catalogEntries(ectx.Components().All(), ectx.Hulls().All(), category)
		return output.WriteExport(entries, output.ExportOptions{Format: format, Writer: os.Stdout})
	}

	table := output.NewTable("ID", "NAME", "CATEGORY", "SIZE", "MASS (t)", "TIER")
	for _, bp := range components {
		if category != "" && bp.Category != category {
			continue
		}
		table.Row(bp.ID, bp.DisplayName, string(bp.Category), string(bp.Size),
			strconv.FormatFloat(bp.MassTons, 'g', -1, 64), strconv.Itoa(bp.TechTier))
	}
	output.Println(table.String())

	if category == "" {
		hulls := output.NewTable("HULL ID", "NAME", "CLASS", "SLOTS", "BASE MASS (t)")
		for _, hull := range ectx.Hulls().All() {
			hulls.Row(hull.ID, hull.DisplayName, hull.ClassType,
				strconv.Itoa(len(hull.Slots)),
				strconv.FormatFloat(hull.BaseMassTons, 'g', -1, 64))
		}
		output.Println(hulls.String())
	}
	return nil
}

// NewCatalogShowCmd creates the catalog show command.
func NewCatalogShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one catalog entry in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogShow(cmd.Context(), args[0])
		},
	}
	return cmd
}

func runCatalogShow(ctx context.Context, id string) error {
	ectx, err := newEngineContext(ctx)
	if err != nil {
		return err
	}

	var obj any
	switch {
	case ectx.Components().Find(id) != nil:
		obj = ectx.Components().Find(id)
	case ectx.Hulls().Find(id) != nil:
		obj = ectx.Hulls().Find(id)
	default:
		return oerrors.NewExitError(
			oerrors.NewNotFoundError(fmt.Sprintf("no component or hull with id %q", id), "",
				"Run 'shipwright catalog list' to see known ids."),
			oerrors.ExitNotFound)
	}

	format, err := reportFormat()
	if err != nil {
		return err
	}
	rendered, err := marshalEntry(obj, format)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	output.Print(rendered)
	return nil
}

func marshalEntry(obj any, format output.Format) (string, error) {
	if format == output.FormatJSON {
		data, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	}
	data, err := yaml.Marshal(obj)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewCatalogExportCmd creates the catalog export command.
func NewCatalogExportCmd() *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalogs as YAML or JSON",
		Long: `Export every component and hull blueprint.

Without --dir, entries stream to stdout as multi-document YAML (or one JSON
array with -o json). With --dir, each entry lands in its own file named
<kind>-<id>.<ext>.

Examples:
  # Dump the full catalog as YAML documents
  shipwright catalog export

  # One JSON file per entry
  shipwright catalog export --dir ./export -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogExport(cmd.Context(), dirFlag)
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Write one file per entry into this directory")

	return cmd
}

func runCatalogExport(ctx context.Context, dir string) error {
	ectx, err := newEngineContext(ctx)
	if err != nil {
		return err
	}

	format := output.ParseFormat(outputFormatFlag)
	if format != output.FormatJSON {
		format = output.FormatYAML
	}

	entries := catalogEntries(ectx.Components().All(), ectx.Hulls().All(), "")
	if dir != "" {
		written, err := output.WriteSplitExport(entries, output.SplitOptions{OutDir: dir, Format: format})
		if err != nil {
			return oerrors.NewExitError(err, oerrors.ExitGeneralError)
		}
		output.Print(output.RenderFileTree(dir, written))
		output.Println(fmt.Sprintf("Exported %d entries to %s", len(entries), dir))
		return nil
	}
	if err := output.WriteExport(entries, output.ExportOptions{Format: format, Writer: os.Stdout}); err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	return nil
}

// componentEntry adapts a component blueprint for export output.
type componentEntry struct{ bp *ship.ComponentBlueprint }

func (e componentEntry) GetKind() string { return "Component" }
func (e componentEntry) GetName() string { return e.bp.ID }
func (e componentEntry) GetObject() any  { return e.bp }

// hullEntry adapts a hull blueprint for export output.
type hullEntry struct{ bp *ship.HullBlueprint }

func (e hullEntry) GetKind() string { return "Hull" }
func (e hullEntry) GetName() string { return e.bp.ID }
func (e hullEntry) GetObject() any  { return e.bp }

func catalogEntries(components []*ship.ComponentBlueprint, hulls []*ship.HullBlueprint, category ship.Category) []output.ExportEntry {
	var entries []output.ExportEntry
	for _, bp := range components {
		if category != "" && bp.Category != category {
			continue
		}
		entries = append(entries, componentEntry{bp})
	}
	if category == "" {
		for _, hull := range hulls {
			entries = append(entries, hullEntry{hull})
		}
	}
	return entries
}

// categoryNames joins category names for usage strings.
func categoryNames() string {
	names := make([]string, 0, len(ship.AllCategories))
	for _, c := range ship.AllCategories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
