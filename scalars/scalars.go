// Package scalars resolves GraphQL scalar names to target-language types.
package scalars

import (
	"fmt"
	"maps"

	"github.com/gqlgo/gqlnaming/config"
)

// Defaults maps the built-in GraphQL scalars to their Go representations,
// following gqlgen's model binding.
var Defaults = map[string]string{
	"ID":      "string",
	"String":  "string",
	"Int":     "int",
	"Float":   "float64",
	"Boolean": "bool",
}

// UnknownScalarError is returned when strict scalars are enabled and a scalar
// has no explicit mapping. It carries the scalar name so the caller can report
// a precise location.
type UnknownScalarError struct {
	Scalar string
}

func (e *UnknownScalarError) Error() string {
	return fmt.Sprintf("scalar %q has no mapping and strict scalars are enabled", e.Scalar)
}

// Registry is the normalized scalar table for one generation run. It is built
// once from a resolved configuration and never mutated afterwards, so it may
// be shared across plugins and goroutines without coordination.
type Registry struct {
	table    map[string]string
	strict   bool
	fallback string
}

// NewRegistry normalizes the configured scalar map: built-in scalar defaults
// first, user entries on top.
func NewRegistry(cfg *config.ResolvedConfig) *Registry {
	table := maps.Clone(Defaults)
	maps.Copy(table, cfg.Scalars)

	return &Registry{
		table:    table,
		strict:   cfg.StrictScalars,
		fallback: cfg.DefaultScalarType,
	}
}

// TypeFor returns the target type for a scalar. Lookup order: explicit table
// entry, then (strict mode disabled) the configured default scalar type.
// Strict mode never falls back; a miss is an *UnknownScalarError.
func (r *Registry) TypeFor(scalar string) (string, error) {
	if t, ok := r.table[scalar]; ok {
		return t, nil
	}

	if r.strict {
		return "", &UnknownScalarError{Scalar: scalar}
	}

	return r.fallback, nil
}

// Table returns a copy of the normalized scalar table. Mutating the copy does
// not affect the registry.
func (r *Registry) Table() map[string]string {
	return maps.Clone(r.table)
}
