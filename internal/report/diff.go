package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"

	"github.com/novaengine/shipwright/internal/ship"
)

// Diff renders a structural diff between the canonical reports of two
// results, labelled with the given names. An empty string means the
// reports are identical.
//
// The comparison runs over the canonical JSON documents, so it sees
// exactly what tooling and saved designs see: slot assignments, aggregate
// stats, subsystems, and diagnostics.
func Diff(nameA string, a *ship.AssemblyResult, nameB string, b *ship.AssemblyResult, useColor bool) (string, error) {
	inputA, err := parseReportInput(nameA, JSON(a))
	if err != nil {
		return "", fmt.Errorf("parsing report %q: %w", nameA, err)
	}
	inputB, err := parseReportInput(nameB, JSON(b))
	if err != nil {
		return "", fmt.Errorf("parsing report %q: %w", nameB, err)
	}

	diffReport, err := dyff.CompareInputFiles(inputA, inputB)
	if err != nil {
		return "", fmt.Errorf("comparing reports: %w", err)
	}
	if len(diffReport.Diffs) == 0 {
		return "", nil
	}
	return renderDiffReport(diffReport, useColor)
}

// parseReportInput loads one canonical JSON document as a dyff input.
// JSON is YAML, so the YAML document loader handles it directly.
func parseReportInput(name string, data []byte) (ytbx.InputFile, error) {
	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

func renderDiffReport(diffReport dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer
	writer := &dyff.HumanReport{
		Report:            diffReport,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := writer.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing diff report: %w", err)
	}
	return buf.String(), nil
}
