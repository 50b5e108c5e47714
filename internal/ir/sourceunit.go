package ir

import "github.com/solidity-ir/engine/internal/srcrange"

// SourceUnit is the root IR node for one source file within a CU. It
// is not itself a Declaration — it doesn't introduce a single named
// entity — but per SPEC_FULL.md §4.2 its Nodes slice can hold
// Declaration entries directly (free functions, file-level constants,
// ≥0.7.1) alongside PragmaDirective/ImportDirective/UsingForDirective
// and ContractDefinition children, confirmed against
// original_source/wake's source_unit.declared_variables/.functions.
type SourceUnit struct {
	Node

	AbsolutePath    string
	License         string
	ExportedSymbols map[string][]int64

	Nodes []Any

	// Intervals answers "which nodes cover byte offset N" per spec.md
	// §4.7; populated once, after the whole file's tree is built (see
	// indexIntervals in builder.go), and never mutated afterward.
	Intervals *srcrange.Tree[Any]
	Lines     *srcrange.LineIndex
}

// NodesAt returns every IR node whose byte range contains offset,
// ordered shallowest-first; callers that want the most specific node
// should take the last entry.
func (su *SourceUnit) NodesAt(offset uint32) []Any {
	if su.Intervals == nil {
		return nil
	}
	hits := su.Intervals.Query(offset)
	sortByDepth(hits)
	return hits
}

func sortByDepth(nodes []Any) {
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && nodes[j].Base().Depth < nodes[j-1].Base().Depth; j-- {
			nodes[j], nodes[j-1] = nodes[j-1], nodes[j]
		}
	}
}

// ImportDirective links one file to another, carrying the optional
// namespace alias and the per-symbol aliases spec.md §4.4's
// import-alias binding resolves.
type ImportDirective struct {
	Node

	File             string
	AbsolutePath     string
	UnitAlias        string
	ImportedUnit     string // resolved SourceUnit.AbsolutePath
	SymbolAliases    []ImportSymbolAlias
}

// ImportSymbolAlias is one entry of `import {A as B} from "...";`.
type ImportSymbolAlias struct {
	ForeignName string
	LocalName   string // equal to ForeignName if no `as` clause
	// Resolved holds every declaration the foreign name matches after
	// the BFS described in spec.md §4.4; more than one entry means the
	// name is overloaded (multiple functions).
	Resolved []Any
}

// PragmaDirective records a `pragma solidity ...;`/`pragma
// experimental ...;` line; purely informational, never referenced.
type PragmaDirective struct {
	Node
	Literals []string
}

// UsingForDirective attaches a library's (or a single function's)
// methods to a type via `using Lib for T;`.
type UsingForDirective struct {
	Node
	Library    *TypeName // set for `using Lib for ...`
	Functions  []*IdentifierPath // set for `using {f, g} for ...`
	AppliedTo  *TypeName // nil means `using ... for *`
	Global     bool
}
