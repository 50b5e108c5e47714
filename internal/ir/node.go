package ir

import (
	"github.com/solidity-ir/engine/internal/resolver"
	"github.com/solidity-ir/engine/internal/srcrange"
)

// Node is the common record embedded by every concrete IR type
// (Declaration, Expression, Statement, TypeName, YulNode). It holds
// every field spec.md §4.2 says applies regardless of node kind:
// parent link, depth, byte range, the source slice the range covers,
// the owning source unit, and the resolver handle used to look the
// node back up by (file, id).
type Node struct {
	Kind   Kind
	Parent Any

	Depth      int
	Range      srcrange.Range
	Source     string // the exact source bytes covered by Range
	SourceUnit string // absolutePath of the owning SourceUnit
	Handle     resolver.NodeRef

	children []Any
}

// Any is implemented by Declaration, Expression, Statement, TypeName,
// and YulNode — the five tagged-variant categories. A plain interface
// rather than a sum type since Go has no closed unions; internal/visit
// recovers exhaustiveness by switching on Base().Kind.
type Any interface {
	Base() *Node
}

func (n *Node) Base() *Node { return n }

// Children returns n's direct children in source order, as recorded
// during construction (see appendChild).
func (n *Node) Children() []Any {
	return n.children
}

func (n *Node) appendChild(c Any) {
	if c == nil {
		return
	}
	n.children = append(n.children, c)
}

// setParent is called once a concrete node's address is stable (after
// it has been stored in its owning slice/field), linking child back to
// parent and stamping a provisional depth; builder.go's indexIntervals
// restamps Depth top-down once the whole tree is built.
func setParent(parent Any, child Any) {
	if child == nil {
		return
	}
	cb := child.Base()
	cb.Parent = parent
	if parent != nil {
		cb.Depth = parent.Base().Depth + 1
	}
}
