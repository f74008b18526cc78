package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/gqlgo/gqlnaming/casing"
)

// Built-in defaults for fields left unset by both the user configuration and
// the per-call override.
const (
	// DefaultScalarType is the universal fallback for unmapped scalars when
	// strict scalars are disabled and no default is configured.
	DefaultScalarType = "any"
	// DefaultFragmentVariableSuffix names the generated document variable
	// that holds a fragment.
	DefaultFragmentVariableSuffix = "FragmentDoc"
)

// InlineFragmentMode controls how inline fragment selections are represented
// in generated types.
type InlineFragmentMode string

const (
	InlineFragmentInline  InlineFragmentMode = "inline"
	InlineFragmentCombine InlineFragmentMode = "combine"
	InlineFragmentMask    InlineFragmentMode = "mask"
)

// ConfigError reports malformed or unresolvable configuration. It is fatal to
// the generation run and never retried.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

// ResolvedConfig is the fully-defaulted projection of RawConfig. It is built
// once per generation run and never mutated afterwards; every emission plugin
// of the run shares it read-only.
type ResolvedConfig struct {
	Scalars                map[string]string
	StrictScalars          bool
	DefaultScalarType      string
	Conventions            casing.Conventions
	TypesPrefix            string
	TypesSuffix            string
	SkipTypename           bool
	NonOptionalTypename    bool
	OmitOperationSuffix    bool
	DedupeOperationSuffix  bool
	FragmentVariablePrefix string
	FragmentVariableSuffix string
	ExternalFragments      []ExternalFragment
	FragmentImports        []FragmentImport
	DedupeFragments        bool
	AllowEnumStringTypes   bool
	InlineFragmentTypes    InlineFragmentMode
	ImmutableTypes         bool
	UseTypeImports         bool
}

// Resolve merges a raw user configuration with an optional partial override
// into one ResolvedConfig. Priority order, highest first: override, raw,
// built-in defaults. The override is how a plugin supplies its own defaults
// for the run; either argument may be nil.
//
// Resolve is pure: identical inputs always produce an identical
// ResolvedConfig, and the inputs are never mutated.
func Resolve(raw, override *RawConfig) (*ResolvedConfig, error) {
	merged := merge(raw, override)

	conventions, err := resolveConventions(merged.NamingConvention)
	if err != nil {
		return nil, &ConfigError{Field: "naming_convention", Reason: err.Error()}
	}

	mode := InlineFragmentMode(orString(merged.InlineFragmentTypes, string(InlineFragmentInline)))
	switch mode {
	case InlineFragmentInline, InlineFragmentCombine, InlineFragmentMask:
	default:
		return nil, &ConfigError{Field: "inline_fragment_types", Reason: fmt.Sprintf("unknown mode %q", mode)}
	}

	strict := orBool(merged.StrictScalars, false)
	if strict && merged.DefaultScalarType != nil {
		// Strict mode never consults a default scalar type; configuring both
		// is a conflict, not a precedence question.
		return nil, &ConfigError{Field: "default_scalar_type", Reason: "cannot be combined with strict_scalars"}
	}

	return &ResolvedConfig{
		Scalars:                maps.Clone(merged.Scalars),
		StrictScalars:          strict,
		DefaultScalarType:      orString(merged.DefaultScalarType, DefaultScalarType),
		Conventions:            conventions,
		TypesPrefix:            orString(merged.TypesPrefix, ""),
		TypesSuffix:            orString(merged.TypesSuffix, ""),
		SkipTypename:           orBool(merged.SkipTypename, false),
		NonOptionalTypename:    orBool(merged.NonOptionalTypename, false),
		OmitOperationSuffix:    orBool(merged.OmitOperationSuffix, false),
		DedupeOperationSuffix:  orBool(merged.DedupeOperationSuffix, false),
		FragmentVariablePrefix: orString(merged.FragmentVariablePrefix, ""),
		FragmentVariableSuffix: orString(merged.FragmentVariableSuffix, DefaultFragmentVariableSuffix),
		ExternalFragments:      slices.Clone(merged.ExternalFragments),
		FragmentImports:        slices.Clone(merged.FragmentImports),
		DedupeFragments:        orBool(merged.DedupeFragments, false),
		AllowEnumStringTypes:   orBool(merged.AllowEnumStringTypes, false),
		InlineFragmentTypes:    mode,
		ImmutableTypes:         orBool(merged.ImmutableTypes, false),
		UseTypeImports:         orBool(merged.UseTypeImports, false),
	}, nil
}

// merge picks, field by field, the override value when set, the raw value
// otherwise. Defaults are filled in later by Resolve.
func merge(raw, override *RawConfig) *RawConfig {
	if raw == nil {
		raw = &RawConfig{}
	}
	if override == nil {
		override = &RawConfig{}
	}

	merged := &RawConfig{
		Scalars:                raw.Scalars,
		StrictScalars:          pick(override.StrictScalars, raw.StrictScalars),
		DefaultScalarType:      pick(override.DefaultScalarType, raw.DefaultScalarType),
		NamingConvention:       pick(override.NamingConvention, raw.NamingConvention),
		TypesPrefix:            pick(override.TypesPrefix, raw.TypesPrefix),
		TypesSuffix:            pick(override.TypesSuffix, raw.TypesSuffix),
		SkipTypename:           pick(override.SkipTypename, raw.SkipTypename),
		NonOptionalTypename:    pick(override.NonOptionalTypename, raw.NonOptionalTypename),
		OmitOperationSuffix:    pick(override.OmitOperationSuffix, raw.OmitOperationSuffix),
		DedupeOperationSuffix:  pick(override.DedupeOperationSuffix, raw.DedupeOperationSuffix),
		FragmentVariablePrefix: pick(override.FragmentVariablePrefix, raw.FragmentVariablePrefix),
		FragmentVariableSuffix: pick(override.FragmentVariableSuffix, raw.FragmentVariableSuffix),
		DedupeFragments:        pick(override.DedupeFragments, raw.DedupeFragments),
		AllowEnumStringTypes:   pick(override.AllowEnumStringTypes, raw.AllowEnumStringTypes),
		InlineFragmentTypes:    pick(override.InlineFragmentTypes, raw.InlineFragmentTypes),
		ImmutableTypes:         pick(override.ImmutableTypes, raw.ImmutableTypes),
		UseTypeImports:         pick(override.UseTypeImports, raw.UseTypeImports),
		ExternalFragments:      raw.ExternalFragments,
		FragmentImports:        raw.FragmentImports,
	}

	if override.Scalars != nil {
		merged.Scalars = override.Scalars
	}
	if override.ExternalFragments != nil {
		merged.ExternalFragments = override.ExternalFragments
	}
	if override.FragmentImports != nil {
		merged.FragmentImports = override.FragmentImports
	}

	return merged
}

func resolveConventions(c *ConventionConfig) (casing.Conventions, error) {
	conventions := casing.Conventions{
		TypeNames:  casing.PascalCase,
		EnumValues: casing.PascalCase,
	}

	if c != nil {
		if c.All != "" {
			conventions.TypeNames = casing.StrategyName(c.All)
			conventions.EnumValues = casing.StrategyName(c.All)
		}
		if c.TypeNames != "" {
			conventions.TypeNames = casing.StrategyName(c.TypeNames)
		}
		if c.EnumValues != "" {
			conventions.EnumValues = casing.StrategyName(c.EnumValues)
		}
		if c.TransformUnderscore != nil {
			conventions.TransformUnderscore = *c.TransformUnderscore
		}
	}

	if _, err := casing.StrategyFor(conventions.TypeNames); err != nil {
		return casing.Conventions{}, err
	}
	if _, err := casing.StrategyFor(conventions.EnumValues); err != nil {
		return casing.Conventions{}, err
	}

	return conventions, nil
}

func pick[T any](override, raw *T) *T {
	if override != nil {
		return override
	}

	return raw
}

func orBool(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}

	return fallback
}

func orString(v *string, fallback string) string {
	if v != nil {
		return *v
	}

	return fallback
}
