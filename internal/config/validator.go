package config

import (
	"embed"
	"fmt"
	"net"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaFS embed.FS

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	// Read the embedded schema
	schemaData, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	// Compile the schema
	schema := ctx.CompileBytes(schemaData)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// Validate validates the given configuration. Structural checks run against
// the CUE schema; checks the schema cannot express run in Go.
func (v *Validator) Validate(cfg *Config) error {
	var errs ValidationErrors

	def := v.schema.LookupPath(cue.ParsePath("#Config"))
	if def.Err() != nil {
		return fmt.Errorf("looking up #Config: %w", def.Err())
	}

	val := v.ctx.Encode(cfg)
	if val.Err() != nil {
		return fmt.Errorf("encoding config: %w", val.Err())
	}

	if err := def.Unify(val).Validate(cue.Concrete(false)); err != nil {
		errs = append(errs, ValidationError{
			Field:   "config",
			Message: err.Error(),
		})
	}

	for _, dir := range []struct {
		field string
		value string
	}{
		{"assets.root", cfg.Assets.Root},
		{"assets.components", cfg.Assets.Components},
		{"assets.ships", cfg.Assets.Ships},
		{"assets.designs", cfg.Assets.Designs},
	} {
		if dir.value != "" && strings.TrimSpace(dir.value) == "" {
			errs = append(errs, ValidationError{
				Field:   dir.field,
				Message: "must not be whitespace only",
			})
		}
	}

	if cfg.Reload.Interval < 0 {
		errs = append(errs, ValidationError{
			Field:   "reload.interval",
			Message: "must not be negative",
		})
	}

	if cfg.Suggestions.Limit < 0 {
		errs = append(errs, ValidationError{
			Field:   "suggestions.limit",
			Message: "must not be negative",
		})
	}

	if cfg.Serve.Addr != "" {
		if err := ValidateListenAddr(cfg.Serve.Addr); err != nil {
			errs = append(errs, ValidationError{
				Field:   "serve.addr",
				Message: err.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateFile validates a configuration file at the given path.
func (v *Validator) ValidateFile(path string) error {
	loader := NewLoader()
	cfg, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}

	return v.Validate(cfg)
}

// ValidateListenAddr checks if a listen address is a valid host:port form.
func ValidateListenAddr(addr string) error {
	if addr == "" {
		return nil
	}

	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("must be a host:port listen address: %w", err)
	}

	return nil
}
