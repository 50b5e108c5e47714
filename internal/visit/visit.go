// Package visit implements the visitor interface detectors consume the
// IR through: one Visit method per IR node category (Declaration,
// Expression, Statement, TypeName, YulNode), plus a generic Walk that
// recurses through every node's children. There is no method per
// individual node kind; a Visit method tells kinds apart by the node's
// Kind field. Grounded on the teacher's internal/ast
// Visitor/Walk/Inspect shape, generalized from one AST per source
// language to one IR across Declaration/Expression/Statement/TypeName/
// Yul.
package visit

import "github.com/solidity-ir/engine/internal/ir"

// Visitor is implemented by anything that wants typed dispatch over
// the five IR node categories. Embed NoopVisitor to only override the methods
// that matter to a given detector.
type Visitor interface {
	VisitDeclaration(d *ir.Declaration) bool
	VisitExpression(e *ir.Expression) bool
	VisitStatement(s *ir.Statement) bool
	VisitTypeName(t *ir.TypeName) bool
	VisitYulNode(y *ir.YulNode) bool
}

// NoopVisitor implements Visitor with every method returning true
// (continue descending), so a detector can embed it and override only
// the node kinds it cares about — mirroring the teacher's
// ast.BaseVisitor convenience embed.
type NoopVisitor struct{}

func (NoopVisitor) VisitDeclaration(*ir.Declaration) bool { return true }
func (NoopVisitor) VisitExpression(*ir.Expression) bool   { return true }
func (NoopVisitor) VisitStatement(*ir.Statement) bool     { return true }
func (NoopVisitor) VisitTypeName(*ir.TypeName) bool       { return true }
func (NoopVisitor) VisitYulNode(*ir.YulNode) bool         { return true }

// Walk dispatches node to the Visit method for its category; if that
// method returns true, Walk recurses into node's children. Returns
// immediately (without recursing) if node is nil.
func Walk(v Visitor, node ir.Any) {
	if node == nil || isNilConcrete(node) {
		return
	}

	descend := true
	switch n := node.(type) {
	case *ir.Declaration:
		descend = v.VisitDeclaration(n)
	case *ir.Expression:
		descend = v.VisitExpression(n)
	case *ir.Statement:
		descend = v.VisitStatement(n)
	case *ir.TypeName:
		descend = v.VisitTypeName(n)
	case *ir.YulNode:
		descend = v.VisitYulNode(n)
	case *ir.ModifierInvocation, *ir.IdentifierPath, *ir.SourceUnit,
		*ir.ImportDirective, *ir.PragmaDirective, *ir.UsingForDirective,
		*ir.TryClause:
		// Support nodes: no dedicated Visit method, but still worth
		// descending into (e.g. a ModifierInvocation's arguments).
	}

	if !descend {
		return
	}
	for _, c := range node.Base().Children() {
		Walk(v, c)
	}
}

// isNilConcrete guards against the classic Go footgun where an
// interface value holding a typed nil pointer is itself non-nil.
func isNilConcrete(node ir.Any) bool {
	switch n := node.(type) {
	case *ir.Declaration:
		return n == nil
	case *ir.Expression:
		return n == nil
	case *ir.Statement:
		return n == nil
	case *ir.TypeName:
		return n == nil
	case *ir.YulNode:
		return n == nil
	default:
		return false
	}
}

// Inspect calls fn for node and every descendant, in pre-order. fn
// returning false stops descent into that node's children, mirroring
// the teacher's ast.Inspect shape built on top of Walk/a closure
// Visitor.
func Inspect(node ir.Any, fn func(ir.Any) bool) {
	Walk(inspector(fn), node)
}

type inspector func(ir.Any) bool

func (f inspector) VisitDeclaration(d *ir.Declaration) bool { return f(d) }
func (f inspector) VisitExpression(e *ir.Expression) bool   { return f(e) }
func (f inspector) VisitStatement(s *ir.Statement) bool     { return f(s) }
func (f inspector) VisitTypeName(t *ir.TypeName) bool       { return f(t) }
func (f inspector) VisitYulNode(y *ir.YulNode) bool         { return f(y) }
