// Package content loads component, hull, and ship class documents from the
// asset directories into the engine catalogs.
//
// Loading never aborts: every file that cannot be used is skipped with a
// structured error on the load report, and everything that parsed cleanly is
// registered. Hot reloading is polling-based; a load pass records the
// modification time of every file it saw, and a reload pass rebuilds the
// catalog from scratch as soon as any file was added, removed, or modified.
package content

import (
	"embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	serrors "github.com/novaengine/shipwright/internal/errors"
)

//go:embed schema.cue
var schemaFS embed.FS

// Schema validates raw content documents against the embedded CUE
// definitions before they are decoded. A Schema is immutable after
// construction and safe for concurrent use.
type Schema struct {
	ctx        *cue.Context
	component  cue.Value
	hull       cue.Value
	classEntry cue.Value
}

// NewSchema compiles the embedded schema and resolves the per-kind
// definitions.
func NewSchema() (*Schema, error) {
	ctx := cuecontext.New()

	data, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	root := ctx.CompileBytes(data)
	if root.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", root.Err())
	}

	s := &Schema{ctx: ctx}
	for _, def := range []struct {
		name string
		dst  *cue.Value
	}{
		{"#Component", &s.component},
		{"#Hull", &s.hull},
		{"#ClassEntry", &s.classEntry},
	} {
		// The definitions stay non-concrete until unified with a document,
		// so Err reports pending evaluation here. Only a missing definition
		// is fatal.
		v := root.LookupPath(cue.ParsePath(def.name))
		if !v.Exists() {
			return nil, fmt.Errorf("schema definition %s not found", def.name)
		}
		*def.dst = v
	}

	return s, nil
}

// ValidateComponent unifies a raw component document with #Component.
// The returned error is a schema DetailError naming the violated fields.
func (s *Schema) ValidateComponent(data []byte, location string) error {
	return s.validate(s.component, data, location)
}

// ValidateHull unifies a raw hull document with #Hull.
func (s *Schema) ValidateHull(data []byte, location string) error {
	return s.validate(s.hull, data, location)
}

// ValidateClassEntry unifies a raw class entry document with #ClassEntry.
func (s *Schema) ValidateClassEntry(data []byte, location string) error {
	return s.validate(s.classEntry, data, location)
}

func (s *Schema) validate(def cue.Value, data []byte, location string) error {
	// JSON is a subset of CUE, so the raw document compiles directly.
	doc := s.ctx.CompileBytes(data, cue.Filename(location))
	if err := doc.Err(); err != nil {
		return serrors.NewSchemaError(err.Error(), location, "")
	}

	// Concrete validation makes a required field that the document omits an
	// incomplete value, which is exactly the missing-field signal. Fields
	// with schema defaults stay satisfiable without being present.
	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		field, msg := summarizeCUEError(err)
		return serrors.NewSchemaError(msg, location, field)
	}

	return nil
}

// summarizeCUEError flattens a CUE validation error into the first violated
// field path and a one-line message joining every violation.
func summarizeCUEError(err error) (field, msg string) {
	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return "", err.Error()
	}

	parts := make([]string, 0, len(list))
	for _, e := range list {
		path := strings.Join(e.Path(), ".")
		if field == "" {
			field = path
		}
		if path != "" {
			parts = append(parts, path+": "+cueErrorMessage(e))
		} else {
			parts = append(parts, cueErrorMessage(e))
		}
	}
	return field, strings.Join(parts, "; ")
}

// cueErrorMessage walks the wrapped error chain of a CUE error and
// concatenates messages with ": " separators, without the path prefix.
func cueErrorMessage(e cueerrors.Error) string {
	var parts []string
	var current error = e

	for current != nil {
		cueErr, ok := current.(cueerrors.Error)
		if !ok {
			parts = append(parts, current.Error())
			break
		}
		format, args := cueErr.Msg()
		if format != "" {
			parts = append(parts, fmt.Sprintf(format, args...))
		}
		current = cueerrors.Unwrap(current)
	}

	return strings.Join(parts, ": ")
}
