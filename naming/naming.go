// Package naming は全ての emission プラグインが共有する識別子導出レイヤを提供する。
//
// 各プラグインは型・フラグメント・オペレーションの識別子を独自に計算してはならず、
// 必ずこのパッケージの Visitor を経由する。これにより一回の生成で出力される全ファイルの
// 命名が一貫し、同一入力からは常にバイト単位で同一の出力が得られる。
package naming

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/gqlgo/gqlnaming/casing"
	"github.com/gqlgo/gqlnaming/config"
	"github.com/gqlgo/gqlnaming/scalars"
)

// Kind is the category a name was produced for.
type Kind string

const (
	KindTypeName         Kind = "typeName"
	KindEnumValue        Kind = "enumValue"
	KindFragment         Kind = "fragment"
	KindFragmentVariable Kind = "fragmentVariable"
	KindOperation        Kind = "operation"
)

// category maps a name kind onto the convention category it converts with.
// Only enum values have their own convention; everything else follows the
// type-name convention.
func (k Kind) category() casing.Category {
	if k == KindEnumValue {
		return casing.EnumValues
	}

	return casing.TypeNames
}

// Name is a derived identifier together with the kind it was produced for.
// It is a value: recomputing it for the same node, kind and configuration
// always yields the same result.
type Name struct {
	Value string
	Kind  Kind
}

func (n Name) String() string {
	return n.Value
}

// Visitor answers naming queries against one resolved configuration. It holds
// no mutable state, so any number of visitors and goroutines may share the
// same configuration without coordination.
type Visitor struct {
	cfg       *config.ResolvedConfig
	converter *casing.Converter
	registry  *scalars.Registry
}

// New builds a Visitor from a resolved configuration.
func New(cfg *config.ResolvedConfig) (*Visitor, error) {
	converter, err := casing.NewConverter(cfg.Conventions)
	if err != nil {
		return nil, fmt.Errorf("naming conventions: %w", err)
	}

	return &Visitor{
		cfg:       cfg,
		converter: converter,
		registry:  scalars.NewRegistry(cfg),
	}, nil
}

// Config returns the resolved configuration the visitor answers for.
func (v *Visitor) Config() *config.ResolvedConfig {
	return v.cfg
}

// Scalars returns the normalized scalar registry of the run.
func (v *Visitor) Scalars() *scalars.Registry {
	return v.registry
}

// ConvertOption adjusts a single ConvertName call.
type ConvertOption func(*convertOptions)

type convertOptions struct {
	kind           Kind
	prefix         *string
	suffix         *string
	useTypesPrefix bool
	useTypesSuffix bool
}

// WithKind selects the name category; the default is KindTypeName.
func WithKind(k Kind) ConvertOption {
	return func(o *convertOptions) { o.kind = k }
}

// WithPrefix replaces the configured types prefix with an explicit one. The
// prefix is emitted verbatim, never case-converted.
func WithPrefix(prefix string) ConvertOption {
	return func(o *convertOptions) { o.prefix = &prefix }
}

// WithSuffix replaces the configured types suffix with an explicit one. The
// suffix is emitted verbatim, never case-converted.
func WithSuffix(suffix string) ConvertOption {
	return func(o *convertOptions) { o.suffix = &suffix }
}

// WithoutTypesPrefix drops the configured types prefix.
func WithoutTypesPrefix() ConvertOption {
	return func(o *convertOptions) { o.useTypesPrefix = false }
}

// WithoutTypesSuffix drops the configured types suffix.
func WithoutTypesSuffix() ConvertOption {
	return func(o *convertOptions) { o.useTypesSuffix = false }
}

// ConvertName derives the final identifier for an AST node or raw string:
// prefix, then the case-converted node name, then suffix. Prefix and suffix
// default to the configured type-level ones unless opted out or replaced.
// Every other naming helper funnels through here.
func (v *Visitor) ConvertName(node any, opts ...ConvertOption) string {
	options := convertOptions{
		kind:           KindTypeName,
		useTypesPrefix: true,
		useTypesSuffix: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	var prefix, suffix string
	if options.useTypesPrefix {
		prefix = v.cfg.TypesPrefix
	}
	if options.useTypesSuffix {
		suffix = v.cfg.TypesSuffix
	}
	if options.prefix != nil {
		prefix = *options.prefix
	}
	if options.suffix != nil {
		suffix = *options.suffix
	}

	return prefix + v.converter.Convert(options.kind.category(), nodeName(node)) + suffix
}

// ConvertNameValue is ConvertName with the kind attached to the result.
func (v *Visitor) ConvertNameValue(node any, kind Kind, opts ...ConvertOption) Name {
	opts = append(opts, WithKind(kind))

	return Name{Value: v.ConvertName(node, opts...), Kind: kind}
}

// OperationSuffix returns the suffix to append to an operation identifier,
// e.g. "Query" for operation GetUser. It is empty when suffix omission is
// configured, and empty when de-duplication is enabled and the operation name
// itself already ends with the operation type. De-duplication compares the
// full lower-cased suffix, so a name ending in "query" does not match the
// suffix "queries".
func (v *Visitor) OperationSuffix(node any, operationType string) string {
	if v.cfg.OmitOperationSuffix {
		return ""
	}

	if v.cfg.DedupeOperationSuffix && hasSuffixFold(nodeName(node), operationType) {
		return ""
	}

	return operationType
}

// FragmentName derives the identifier for a fragment type. Fragments are
// operation-scoped identifiers, not schema type identifiers, so the types
// prefix is never applied.
func (v *Visitor) FragmentName(node any) string {
	return v.ConvertName(node,
		WithKind(KindFragment),
		WithSuffix(v.OperationSuffix(node, "Fragment")),
		WithoutTypesPrefix(),
	)
}

// FragmentVariableName derives the identifier of the document variable that
// holds a fragment. When suffix de-duplication is on and both the fragment
// name and the configured variable suffix carry a "fragment" segment, the
// leading segment of the suffix is dropped so the result reads UserFragmentDoc
// rather than UserFragmentFragmentDoc.
func (v *Visitor) FragmentVariableName(node any) string {
	name := nodeName(node)

	suffix := v.cfg.FragmentVariableSuffix
	switch {
	case v.cfg.OmitOperationSuffix:
		suffix = ""
	case v.cfg.DedupeOperationSuffix && hasSuffixFold(name, "fragment") && hasPrefixFold(suffix, "fragment"):
		suffix = suffix[len("fragment"):]
	}

	return v.ConvertName(node,
		WithKind(KindFragmentVariable),
		WithPrefix(v.cfg.FragmentVariablePrefix),
		WithSuffix(suffix),
		WithoutTypesPrefix(),
	)
}

// AncestorKinds recovers the textual trail of AST kinds from a node's
// ancestor path. Emission plugins use it as context when deriving names for
// nested selections; the naming rules themselves never depend on it.
func AncestorKinds(ancestors ...any) []string {
	kinds := make([]string, 0, len(ancestors))
	for _, ancestor := range ancestors {
		switch n := ancestor.(type) {
		case *ast.Definition:
			kinds = append(kinds, string(n.Kind))
		case *ast.FragmentDefinition:
			kinds = append(kinds, "FragmentDefinition")
		case *ast.OperationDefinition:
			kinds = append(kinds, "OperationDefinition")
		case *ast.Field:
			kinds = append(kinds, "Field")
		case *ast.FieldDefinition:
			kinds = append(kinds, "FieldDefinition")
		case *ast.InlineFragment:
			kinds = append(kinds, "InlineFragment")
		case *ast.FragmentSpread:
			kinds = append(kinds, "FragmentSpread")
		}
	}

	return kinds
}

// nodeName extracts the raw name from the node forms emission plugins hold.
func nodeName(node any) string {
	switch n := node.(type) {
	case string:
		return n
	case *ast.Definition:
		return n.Name
	case *ast.FragmentDefinition:
		return n.Name
	case *ast.OperationDefinition:
		return n.Name
	case *ast.FieldDefinition:
		return n.Name
	case *ast.EnumValueDefinition:
		return n.Name
	}

	panic(fmt.Sprintf("unexpected node type %T", node))
}

func hasSuffixFold(s, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(s), strings.ToLower(suffix))
}

func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
