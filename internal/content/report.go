package content

import (
	"errors"

	serrors "github.com/novaengine/shipwright/internal/errors"
)

// FailureKind labels the load-failure lane a file fell into. The values are
// stable identifiers consumed by vet output and downstream tooling.
type FailureKind string

// Load-failure lanes.
const (
	FailureIO        FailureKind = "IO_ERROR"
	FailureParse     FailureKind = "PARSE_ERROR"
	FailureSchema    FailureKind = "SCHEMA_ERROR"
	FailureVersion   FailureKind = "VERSION_ERROR"
	FailureDuplicate FailureKind = "DUPLICATE_ID"
)

// KindForError maps a load error to its failure lane via the sentinel it
// wraps. Unrecognized errors land in the schema lane.
func KindForError(err error) FailureKind {
	switch {
	case errors.Is(err, serrors.ErrIO):
		return FailureIO
	case errors.Is(err, serrors.ErrParse):
		return FailureParse
	case errors.Is(err, serrors.ErrVersion):
		return FailureVersion
	case errors.Is(err, serrors.ErrDuplicateID):
		return FailureDuplicate
	default:
		return FailureSchema
	}
}

// FileStatus records the outcome of one file in a load pass.
type FileStatus struct {
	// Path is the file as scanned.
	Path string

	// ID is the entity id, once known.
	ID string

	// Loaded is true when the file's entity was registered.
	Loaded bool

	// Skipped is true when the file belongs to a different loader, such as a
	// class entry seen by the hull loader.
	Skipped bool

	// Kind labels the failure lane; empty on success or skip.
	Kind FailureKind

	// Err is the structured load error; nil on success or skip.
	Err error

	// Flags holds taxonomy violations for an entity that was registered
	// anyway. Only the class-entry loader populates it.
	Flags []string
}

// Report aggregates one load pass over a content directory. Failures never
// abort a pass, so a report can carry both registered entities and errors.
type Report struct {
	// Dir is the directory the pass scanned.
	Dir string

	// Err is set when the directory itself could not be scanned.
	Err error

	// Files holds one status per scanned file, in name order.
	Files []FileStatus
}

// Loaded returns the number of files whose entity was registered.
func (r *Report) Loaded() int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Loaded {
			n++
		}
	}
	return n
}

// Failed returns the number of files that fell into a failure lane.
func (r *Report) Failed() int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Err != nil {
			n++
		}
	}
	return n
}

// Flagged returns the number of registered entities carrying taxonomy
// violations.
func (r *Report) Flagged() int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Loaded && len(r.Files[i].Flags) > 0 {
			n++
		}
	}
	return n
}

// Skipped returns the number of files that belong to a different loader.
func (r *Report) Skipped() int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Skipped {
			n++
		}
	}
	return n
}

// OK reports whether the pass registered at least one entity.
func (r *Report) OK() bool {
	return r.Loaded() > 0
}

// Errors returns every load error in file order, starting with the
// directory-level error when present.
func (r *Report) Errors() []error {
	var errs []error
	if r.Err != nil {
		errs = append(errs, r.Err)
	}
	for i := range r.Files {
		if r.Files[i].Err != nil {
			errs = append(errs, r.Files[i].Err)
		}
	}
	return errs
}
