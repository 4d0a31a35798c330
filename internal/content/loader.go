package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	serrors "github.com/novaengine/shipwright/internal/errors"
)

// SupportedSchemaVersion is the newest component schema version this build
// decodes. Files declaring a newer version are skipped with a version error.
const SupportedSchemaVersion = 1

// parseWorkers bounds how many files one load pass parses concurrently.
// Registration stays sequential and name-ordered, so catalog order and
// duplicate-id resolution are deterministic regardless of parse timing.
const parseWorkers = 8

// Loader reads content directories into catalogs. It owns one file index per
// content kind for hot-reload change detection.
//
// A Loader is not safe for concurrent use; the engine context serializes
// load and reload calls.
type Loader struct {
	schema *Schema

	componentIndex *FileIndex
	hullIndex      *FileIndex
	classIndex     *FileIndex
}

// NewLoader compiles the embedded content schema and returns a loader with
// empty file indexes.
func NewLoader() (*Loader, error) {
	schema, err := NewSchema()
	if err != nil {
		return nil, err
	}
	return &Loader{
		schema:         schema,
		componentIndex: NewFileIndex(),
		hullIndex:      NewFileIndex(),
		classIndex:     NewFileIndex(),
	}, nil
}

// Schema exposes the compiled content schema for callers that validate
// single documents outside a load pass.
func (l *Loader) Schema() *Schema {
	return l.schema
}

// readContentFile reads one content file, mapping read failures to the io
// lane.
func readContentFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serrors.NewIOError("content file is not readable", path, err)
	}
	return data, nil
}

// decodeError classifies a json.Unmarshal failure. Malformed JSON lands in
// the parse lane with the byte offset; a well-formed document whose values
// have the wrong JSON type is a schema problem and is left to CUE, which
// reports the violated field.
func decodeError(err error, path string) (parseErr error, deferToSchema bool) {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		msg := fmt.Sprintf("malformed JSON at byte offset %d: %s", syn.Offset, syn.Error())
		return serrors.NewParseError(msg, path), false
	}
	return nil, true
}

// runParsePass executes fn for every scanned file through a bounded worker
// pool. fn writes its outcome into a result slot by index, so no locking is
// needed and the results keep scan order.
func runParsePass(n int, fn func(i int)) {
	var g errgroup.Group
	g.SetLimit(parseWorkers)
	for i := range n {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	// Workers never return errors; failures land on the per-file statuses.
	_ = g.Wait()
}
