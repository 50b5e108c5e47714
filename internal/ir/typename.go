package ir

import "github.com/solidity-ir/engine/internal/resolver"

// TypeName is the tagged-variant struct for syntactic type
// occurrences (spec.md §3): array, elementary, function, mapping,
// user-defined. Distinct from Expression's Type() — a TypeName is the
// syntax a type was spelled with, not the value-bearing expression
// that mentions it.
type TypeName struct {
	Node

	TypeIdentifier string
	TypeString     string

	// ElementaryTypeName
	Name            string
	StateMutability string // address payable, function state mutability

	// ArrayTypeName
	BaseType *TypeName
	Length   Any // *Expression, nil for a dynamic array

	// Mapping
	KeyType   *TypeName
	ValueType *TypeName

	// FunctionTypeName
	Visibility       string
	Parameters       []*TypeName
	ReturnParameters []*TypeName

	// UserDefinedTypeName / IdentifierPath substitution
	// (spec.md §9's documented structural-drift pair): Path is set
	// when the compiler used an IdentifierPath node in this position
	// instead of a UserDefinedTypeName; both forms resolve to the same
	// Referenced declaration.
	Path       *IdentifierPath
	Referenced resolver.NodeRef

	// RawReferencedDeclaration is the compiler's raw node id for the
	// declaration this type name names, captured at construction time
	// and consumed by internal/binder to populate Referenced once every
	// file in the CU has been built.
	RawReferencedDeclaration int64
}
