// Package config resolves the raw, mostly-optional user configuration of the
// code generator into one immutable resolved configuration shared by every
// emission plugin of a generation run.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-json-experiment/json"
	"github.com/goccy/go-yaml"

	"github.com/vektah/gqlparser/v2/ast"
)

// RawConfig is the user-supplied configuration. Every field is optional;
// unset fields fall back to built-in defaults during Resolve.
type RawConfig struct {
	// Scalars maps a GraphQL scalar name to a target type literal.
	Scalars map[string]string `yaml:"scalars,omitempty" json:"scalars,omitempty"`
	// StrictScalars requires every referenced scalar to have an explicit
	// mapping; a miss is an error, never a silent fallback.
	StrictScalars     *bool   `yaml:"strict_scalars,omitempty" json:"strict_scalars,omitempty"`
	DefaultScalarType *string `yaml:"default_scalar_type,omitempty" json:"default_scalar_type,omitempty"`
	// NamingConvention selects the case strategy: a single identifier for
	// all categories, "keep", or a per-category mapping.
	NamingConvention       *ConventionConfig `yaml:"naming_convention,omitempty" json:"naming_convention,omitempty"`
	TypesPrefix            *string           `yaml:"types_prefix,omitempty" json:"types_prefix,omitempty"`
	TypesSuffix            *string           `yaml:"types_suffix,omitempty" json:"types_suffix,omitempty"`
	SkipTypename           *bool             `yaml:"skip_typename,omitempty" json:"skip_typename,omitempty"`
	NonOptionalTypename    *bool             `yaml:"non_optional_typename,omitempty" json:"non_optional_typename,omitempty"`
	OmitOperationSuffix    *bool             `yaml:"omit_operation_suffix,omitempty" json:"omit_operation_suffix,omitempty"`
	DedupeOperationSuffix  *bool             `yaml:"dedupe_operation_suffix,omitempty" json:"dedupe_operation_suffix,omitempty"`
	FragmentVariablePrefix *string           `yaml:"fragment_variable_prefix,omitempty" json:"fragment_variable_prefix,omitempty"`
	FragmentVariableSuffix *string           `yaml:"fragment_variable_suffix,omitempty" json:"fragment_variable_suffix,omitempty"`
	DedupeFragments        *bool             `yaml:"dedupe_fragments,omitempty" json:"dedupe_fragments,omitempty"`
	AllowEnumStringTypes   *bool             `yaml:"allow_enum_string_types,omitempty" json:"allow_enum_string_types,omitempty"`
	// InlineFragmentTypes is one of "inline", "combine" or "mask".
	InlineFragmentTypes *string `yaml:"inline_fragment_types,omitempty" json:"inline_fragment_types,omitempty"`
	ImmutableTypes      *bool   `yaml:"immutable_types,omitempty" json:"immutable_types,omitempty"`
	UseTypeImports      *bool   `yaml:"use_type_imports,omitempty" json:"use_type_imports,omitempty"`

	// ExternalFragments and FragmentImports are supplied programmatically by
	// the document loader, not from the config file.
	ExternalFragments []ExternalFragment `yaml:"-" json:"-"`
	FragmentImports   []FragmentImport   `yaml:"-" json:"-"`
}

// ExternalFragment is a fragment loaded from another document, referenced by
// the one being generated.
type ExternalFragment struct {
	Name       string
	OnType     string
	Level      int
	ImportFrom string
	Node       *ast.FragmentDefinition
}

// FragmentImport is an import declaration to emit for fragments that live in
// another generated file.
type FragmentImport struct {
	From  string
	Names []string
}

// ConventionConfig is the naming-convention selector. In YAML and JSON it is
// either a single strategy identifier:
//
//	naming_convention: keep
//
// or a per-category mapping:
//
//	naming_convention:
//	  type_names: pascalCase
//	  enum_values: constantCase
//	  transform_underscore: true
type ConventionConfig struct {
	All                 string `yaml:"-" json:"-"`
	TypeNames           string `yaml:"type_names,omitempty" json:"type_names,omitempty"`
	EnumValues          string `yaml:"enum_values,omitempty" json:"enum_values,omitempty"`
	TransformUnderscore *bool  `yaml:"transform_underscore,omitempty" json:"transform_underscore,omitempty"`
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (c *ConventionConfig) UnmarshalYAML(b []byte) error {
	var single string
	if err := yaml.Unmarshal(b, &single); err == nil {
		*c = ConventionConfig{All: single}

		return nil
	}

	type plain ConventionConfig

	var p plain
	if err := yaml.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("naming convention: %w", err)
	}

	*c = ConventionConfig(p)

	return nil
}

// UnmarshalJSON accepts both the string and the object form.
func (c *ConventionConfig) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var single string
		if err := json.Unmarshal(b, &single); err != nil {
			return fmt.Errorf("naming convention: %w", err)
		}

		*c = ConventionConfig{All: single}

		return nil
	}

	type plain ConventionConfig

	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("naming convention: %w", err)
	}

	*c = ConventionConfig(p)

	return nil
}

// Load reads a RawConfig from a YAML or JSON file. Environment variables in
// the file are expanded, unknown fields are rejected.
func Load(filename string) (*RawConfig, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	expanded := []byte(os.ExpandEnv(string(content)))

	var raw RawConfig

	if filepath.Ext(filename) == ".json" {
		if err := json.Unmarshal(expanded, &raw, json.RejectUnknownMembers(true)); err != nil {
			return nil, fmt.Errorf("unable to parse config: %w", err)
		}

		return &raw, nil
	}

	yamlDecoder := yaml.NewDecoder(bytes.NewReader(expanded), yaml.DisallowUnknownField())
	if err := yamlDecoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	return &raw, nil
}
