package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExportEntry provides information about a catalog entry for output
// formatting. This interface allows the output package to work with
// blueprints without importing the catalog package.
type ExportEntry interface {
	GetKind() string
	GetName() string
	GetObject() any
}

// ExportOptions controls export output formatting.
type ExportOptions struct {
	// Format specifies output format: "yaml" or "json"
	Format Format
	// Writer is the output destination
	Writer io.Writer
}

// WriteExport writes catalog entries to the writer in the specified format.
// Entries are sorted by kind then name for consistent output.
func WriteExport(entries []ExportEntry, opts ExportOptions) error {
	if len(entries) == 0 {
		return nil
	}

	sortExportEntries(entries)

	switch opts.Format {
	case FormatJSON:
		return writeEntriesJSON(entries, opts.Writer)
	case FormatYAML:
		return writeEntriesYAML(entries, opts.Writer)
	case FormatText, FormatTable:
		return fmt.Errorf("format %s not supported for export output", opts.Format)
	}
	return writeEntriesYAML(entries, opts.Writer) // Default to YAML
}

// sortExportEntries sorts entries by kind, then by name.
func sortExportEntries(entries []ExportEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ki := entries[i].GetKind()
		kj := entries[j].GetKind()
		if ki != kj {
			return ki < kj
		}
		return entries[i].GetName() < entries[j].GetName()
	})
}

// writeEntriesYAML writes entries as YAML documents separated by ---.
// The yaml.v3 encoder automatically adds document separators between documents.
func writeEntriesYAML(entries []ExportEntry, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	for _, entry := range entries {
		if err := encoder.Encode(entry.GetObject()); err != nil {
			return fmt.Errorf("encoding entry %s/%s: %w",
				entry.GetKind(), entry.GetName(), err)
		}
	}

	return encoder.Close()
}

// writeEntriesJSON writes entries as a JSON array.
func writeEntriesJSON(entries []ExportEntry, w io.Writer) error {
	objects := make([]any, len(entries))
	for i, entry := range entries {
		objects[i] = entry.GetObject()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(objects); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// SplitOptions controls split file output.
type SplitOptions struct {
	// OutDir is the directory for split output
	OutDir string
	// Format specifies output format: "yaml" or "json"
	Format Format
}

// WriteSplitExport writes each catalog entry to a separate file.
// Files are named <lowercase-kind>-<entry-name>.<ext>. The returned map pairs
// each written filename with the entry kind, for tree rendering.
func WriteSplitExport(entries []ExportEntry, opts SplitOptions) (map[string]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	// Ensure output directory exists
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Track filenames to handle collisions
	usedNames := make(map[string]int)
	written := make(map[string]string, len(entries))

	for _, entry := range entries {
		filename := buildEntryFilename(entry, opts.Format, usedNames)
		path := filepath.Join(opts.OutDir, filename)

		if err := writeEntryFile(entry, path, opts.Format); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		written[filename] = entry.GetKind()

		Debug("wrote catalog file",
			"kind", entry.GetKind(),
			"name", entry.GetName(),
			"file", path,
		)
	}

	return written, nil
}

// buildEntryFilename creates a filename for a catalog entry.
func buildEntryFilename(entry ExportEntry, format Format, usedNames map[string]int) string {
	ext := ".yaml"
	if format == FormatJSON {
		ext = ".json"
	}

	kind := strings.ToLower(entry.GetKind())
	name := sanitizeName(entry.GetName())
	baseName := kind + "-" + name

	count, exists := usedNames[baseName]
	if exists {
		usedNames[baseName] = count + 1
		return fmt.Sprintf("%s-%d%s", baseName, count+1, ext)
	}

	usedNames[baseName] = 1
	return baseName + ext
}

// sanitizeName makes a name safe for use in filenames.
func sanitizeName(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"\"", "",
		"<", "",
		">", "",
		"|", "-",
	)
	return replacer.Replace(name)
}

// writeEntryFile writes a single catalog entry to a file.
func writeEntryFile(entry ExportEntry, destPath string, format Format) error {
	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeEntry(entry.GetObject(), format, f)
}

// writeEntry writes a single entry to the writer.
func writeEntry(obj any, format Format, w io.Writer) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(obj)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		err := encoder.Encode(obj)
		if closeErr := encoder.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		return err
	case FormatText, FormatTable:
		return fmt.Errorf("format %s not supported for single entry output", format)
	}
	// Default to YAML
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	err := encoder.Encode(obj)
	if closeErr := encoder.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
