// Package casing は識別子のケース変換ストラテジを提供する。
//
// スキーマ由来の名前（型名、enum 値）を出力言語の命名規約へ変換する純粋関数の集合で、
// カテゴリごとに独立したストラテジを選択できる。プレフィックス・サフィックスの付与は
// このパッケージの責務ではなく、naming パッケージ側で合成される。
package casing

import (
	"fmt"
	"strings"

	"github.com/99designs/gqlgen/codegen/templates"
	"github.com/iancoleman/strcase"
)

// Category is one of the closed set of name categories a convention can be
// configured for.
type Category string

const (
	TypeNames  Category = "typeNames"
	EnumValues Category = "enumValues"
)

// StrategyName identifies a built-in case strategy.
type StrategyName string

const (
	PascalCase   StrategyName = "pascalCase"
	CamelCase    StrategyName = "camelCase"
	ConstantCase StrategyName = "constantCase"
	SnakeCase    StrategyName = "snakeCase"
	UpperCase    StrategyName = "upperCase"
	LowerCase    StrategyName = "lowerCase"
	// Keep leaves the input untouched. Prefixes and suffixes still apply
	// downstream.
	Keep StrategyName = "keep"
	// GoPascalCase and GoCamelCase produce Go identifiers with initialisms
	// handled the way gqlgen does (UserId -> UserID).
	GoPascalCase StrategyName = "goPascalCase"
	GoCamelCase  StrategyName = "goCamelCase"
)

// strategies maps the identifiers accepted in configuration to their string
// transforms.
var strategies = map[StrategyName]func(string) string{
	PascalCase:   strcase.ToCamel,
	CamelCase:    strcase.ToLowerCamel,
	ConstantCase: strcase.ToScreamingSnake,
	SnakeCase:    strcase.ToSnake,
	UpperCase:    strings.ToUpper,
	LowerCase:    strings.ToLower,
	Keep:         func(s string) string { return s },
	GoPascalCase: templates.ToGo,
	GoCamelCase:  templates.ToGoPrivate,
}

// StrategyFor resolves a strategy identifier to its transform.
func StrategyFor(name StrategyName) (func(string) string, error) {
	fn, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown naming strategy %q", name)
	}

	return fn, nil
}

// Conventions is the resolved, data-only convention selection: one strategy
// per category plus the underscore policy. It is comparable and lives in the
// resolved configuration.
type Conventions struct {
	TypeNames  StrategyName
	EnumValues StrategyName
	// TransformUnderscore feeds the whole name to the strategy, which
	// collapses underscores. When false (the default) underscore-separated
	// segments are converted independently and rejoined, preserving the
	// underscores, including leading ones.
	TransformUnderscore bool
}

// Converter applies the configured strategy for a category. It holds no
// mutable state; the same input always produces the same output.
type Converter struct {
	typeNames           func(string) string
	enumValues          func(string) string
	transformUnderscore bool
}

// NewConverter builds a Converter from resolved conventions. Unknown strategy
// identifiers have already been rejected during configuration resolution, but
// the error is still surfaced for callers constructing Conventions by hand.
func NewConverter(c Conventions) (*Converter, error) {
	typeNames, err := StrategyFor(c.TypeNames)
	if err != nil {
		return nil, fmt.Errorf("type names: %w", err)
	}

	enumValues, err := StrategyFor(c.EnumValues)
	if err != nil {
		return nil, fmt.Errorf("enum values: %w", err)
	}

	return &Converter{
		typeNames:           typeNames,
		enumValues:          enumValues,
		transformUnderscore: c.TransformUnderscore,
	}, nil
}

// Convert applies the category's strategy under the underscore policy.
func (c *Converter) Convert(category Category, name string) string {
	fn := c.typeNames
	if category == EnumValues {
		fn = c.enumValues
	}

	if c.transformUnderscore {
		return fn(name)
	}

	// Convert each underscore-separated segment on its own so the
	// underscores survive the strategy.
	parts := strings.Split(name, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = fn(part)
	}

	return strings.Join(parts, "_")
}
