// Package plugin defines the contract between the naming layer and the
// emission plugins that consume it. The plugins themselves (type emitter,
// operation emitter, hook emitters, ...) live outside this module.
package plugin

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/gqlgo/gqlnaming/config"
	"github.com/gqlgo/gqlnaming/naming"
	"github.com/gqlgo/gqlnaming/scalars"
)

// Context is everything a plugin receives for one generation run. The
// configuration, names visitor and scalar registry are shared read-only by
// all plugins of the run; plugins must derive identifiers through Names and
// never recompute naming on their own.
type Context struct {
	Config  *config.ResolvedConfig
	Names   *naming.Visitor
	Scalars *scalars.Registry

	Schema   *ast.Schema
	Document *ast.QueryDocument
}

// Plugin is one code-generation pass over the schema and documents.
type Plugin interface {
	Name() string
	Generate(ctx *Context) error
}
