package resolver

import "github.com/solidity-ir/engine/internal/ierrors"

// kindStructuredDocumentation and kindUserDefinedTypeName/kindIdentifierPath
// mirror ir.Kind.String()'s output for the handful of kinds this package
// needs to name without importing internal/ir (which itself imports
// internal/resolver, so the dependency can't run the other way).
const (
	kindStructuredDocumentation = "StructuredDocumentation"
	kindUserDefinedTypeName     = "UserDefinedTypeName"
	kindIdentifierPath          = "IdentifierPath"
)

// ReconcileTrace zips kinds — the node-kind sequence a Builder recorded
// for file in traversal order during this CU's construction — against
// whatever sequence an earlier CU recorded for the same file, per
// spec.md §4.3(b). The first CU to traverse a file just seeds the
// stored sequence; every later one is checked against it.
//
// Two divergences are tolerated in place without breaking the zip:
// a StructuredDocumentation node present on one side and absent on the
// other (older compilers emit a bare-string doc comment with no node
// of its own), and a UserDefinedTypeName standing in for an
// IdentifierPath at the same position (a known cross-version
// difference for qualified type references). Any other mismatch is
// structural drift and fatal: the two traversals can no longer be
// zipped index-for-index, so every identity bound off of it from this
// point on would be unsound.
//
// The stored sequence is replaced with kinds before the comparison
// runs, so it holds the latest traversal even when reconciliation
// fails, mirroring BindIdentity's last-writer-wins semantics for the
// identity map itself.
func (r *Resolver) ReconcileTrace(file string, kinds []string) error {
	r.mu.Lock()
	prev, existed := r.traces[file]
	r.traces[file] = kinds
	r.mu.Unlock()

	if !existed {
		return nil
	}

	i, j := 0, 0
	for i < len(prev) && j < len(kinds) {
		a, b := prev[i], kinds[j]
		switch {
		case a == b:
			i++
			j++
		case equivalentKind(a, b):
			r.RecordDrift(DriftRecord{Key: Key{File: file, TraversalIndex: i}, Kind: DriftTypeNameVsPath})
			i++
			j++
		case a == kindStructuredDocumentation:
			r.RecordDrift(DriftRecord{Key: Key{File: file, TraversalIndex: i}, Kind: DriftDocumentation})
			i++
		case b == kindStructuredDocumentation:
			r.RecordDrift(DriftRecord{Key: Key{File: file, TraversalIndex: j}, Kind: DriftDocumentation})
			j++
		default:
			rec := DriftRecord{Key: Key{File: file, TraversalIndex: i}, Kind: DriftMismatch, Fatal: true}
			r.RecordDrift(rec)
			return ierrors.New(ierrors.StructuralDrift, "",
				"file %q: traversal %d diverges: %q vs %q", file, i, a, b)
		}
	}

	// Whichever side has leftover nodes may only trail off with extra
	// StructuredDocumentation nodes; anything else is the same fatal
	// mismatch, just discovered at the end of the shorter sequence
	// rather than mid-zip.
	for ; i < len(prev); i++ {
		if prev[i] != kindStructuredDocumentation {
			rec := DriftRecord{Key: Key{File: file, TraversalIndex: i}, Kind: DriftMismatch, Fatal: true}
			r.RecordDrift(rec)
			return ierrors.New(ierrors.StructuralDrift, "",
				"file %q: earlier traversal has unmatched trailing node %q at %d", file, prev[i], i)
		}
		r.RecordDrift(DriftRecord{Key: Key{File: file, TraversalIndex: i}, Kind: DriftDocumentation})
	}
	for ; j < len(kinds); j++ {
		if kinds[j] != kindStructuredDocumentation {
			rec := DriftRecord{Key: Key{File: file, TraversalIndex: j}, Kind: DriftMismatch, Fatal: true}
			r.RecordDrift(rec)
			return ierrors.New(ierrors.StructuralDrift, "",
				"file %q: later traversal has unmatched trailing node %q at %d", file, kinds[j], j)
		}
		r.RecordDrift(DriftRecord{Key: Key{File: file, TraversalIndex: j}, Kind: DriftDocumentation})
	}

	return nil
}

// equivalentKind reports whether a and b are the one substitution
// spec.md §4.3(b) tolerates beyond an exact match: a UserDefinedTypeName
// on one side standing in for an IdentifierPath on the other at the
// same syntactic position.
func equivalentKind(a, b string) bool {
	return (a == kindUserDefinedTypeName && b == kindIdentifierPath) ||
		(a == kindIdentifierPath && b == kindUserDefinedTypeName)
}
