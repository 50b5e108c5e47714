// Package detect exposes the IR to out-of-core detector logic through
// the Analyzer/Pass/Report shape spec.md §6 describes, grounded on
// semantic/analysis/analysis.go's Analyzer/Pass/Issue shape from the
// teacher, generalized from "one Pass per file" to "one Pass per
// FunctionDefinition-with-body, carrying that function's lazily-built
// CFG" since this domain's detectors reason about control flow, not
// just syntax.
package detect

import (
	"github.com/solidity-ir/engine/internal/cfg"
	"github.com/solidity-ir/engine/internal/ir"
	"github.com/solidity-ir/engine/internal/resolver"
	"github.com/solidity-ir/engine/internal/visit"
)

// Analyzer is a single detector entry point, matching the teacher's
// analysis.Analyzer interface one-for-one.
type Analyzer interface {
	Run(*Pass)
}

// Pass describes one unit of detector work: a specific function
// within a specific source unit, plus the shared resolver (for
// cross-declaration queries like References) and a Report callback.
// CFG is built lazily from the shared cache the first time an
// Analyzer calls Pass.CFG(), per spec.md §4.6's "build on first
// access and cache" rule.
type Pass struct {
	SourceUnit *ir.SourceUnit
	Function   *ir.Declaration // FunctionDefinition or ModifierDefinition
	Resolver   *resolver.Resolver

	cfgCache *cfg.Cache

	// Report reports one Finding, a vulnerability tied to a specific
	// source location.
	Report func(Finding)
}

// Finding mirrors the teacher's engine.Finding/analysis.Issue split,
// collapsed into one struct since detect doesn't need the ID/Name/
// Severity/Confidence/Description quadruple the teacher threads in
// from a rule registry — that registry is out of the IR core's scope
// per spec.md §1; a caller wiring this package to a real rule
// registry can attach those fields itself around this type.
type Finding struct {
	File        string
	StartOffset uint32
	EndOffset   uint32
	Line        int
	Column      int
	Message     string
}

// NewFinding builds a Finding located at node's byte range, converting
// to a 1-indexed (line, column) pair via su.Lines, mirroring the
// teacher's analysis.NewIssue helper.
func NewFinding(su *ir.SourceUnit, node ir.Any, message string) Finding {
	rng := node.Base().Range
	line, column := 1, 1
	if su.Lines != nil {
		line, column = su.Lines.Position(rng.Start)
	}
	return Finding{
		File:        su.AbsolutePath,
		StartOffset: rng.Start,
		EndOffset:   rng.End(),
		Line:        line,
		Column:      column,
		Message:     message,
	}
}

// CFG returns (building and caching on first call, per function) the
// control flow graph for p.Function.
func (p *Pass) CFG() (*cfg.CFG, error) {
	if p.cfgCache == nil {
		p.cfgCache = cfg.NewCache()
	}
	return p.cfgCache.ForFunction(p.Function)
}

// Walk dispatches v over every node in p.Function's body, a thin
// convenience wrapper so an Analyzer doesn't need its own import of
// internal/visit.
func (p *Pass) Walk(v visit.Visitor) {
	if p.Function == nil || p.Function.Body == nil {
		return
	}
	visit.Walk(v, p.Function.Body)
}

// Run walks every SourceUnit in units, applying every Analyzer to
// every implemented function/modifier it finds, mirroring
// semantic.Rule.Run's "for every member, for every function" shape —
// generalized across contracts' Members and a source unit's top-level
// free functions, which spec.md §4.2 adds as SPEC_FULL.md's expansion
// of the declaration hierarchy.
func Run(units []*ir.SourceUnit, res *resolver.Resolver, analyzers []Analyzer) []Finding {
	var findings []Finding
	report := func(f Finding) { findings = append(findings, f) }

	shared := cfg.NewCache()

	for _, su := range units {
		for _, member := range su.Nodes {
			runOverDeclaration(su, member, res, analyzers, shared, report)
		}
	}
	return findings
}

func runOverDeclaration(su *ir.SourceUnit, node ir.Any, res *resolver.Resolver, analyzers []Analyzer, shared *cfg.Cache, report func(Finding)) {
	decl, ok := node.(*ir.Declaration)
	if !ok {
		return
	}
	switch decl.Kind {
	case ir.KindFunctionDefinition, ir.KindModifierDefinition:
		if decl.Implemented && decl.Body != nil {
			runPass(su, decl, res, analyzers, shared, report)
		}
	case ir.KindContractDefinition:
		for _, member := range decl.Members {
			runOverDeclaration(su, member, res, analyzers, shared, report)
		}
	}
}

func runPass(su *ir.SourceUnit, fn *ir.Declaration, res *resolver.Resolver, analyzers []Analyzer, shared *cfg.Cache, report func(Finding)) {
	pass := &Pass{
		SourceUnit: su,
		Function:   fn,
		Resolver:   res,
		Report:     report,
		cfgCache:   shared,
	}
	for _, a := range analyzers {
		a.Run(pass)
	}
}
