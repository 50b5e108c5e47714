package ir

import "github.com/solidity-ir/engine/internal/resolver"

// Declaration is the tagged-variant struct for every IR node that
// introduces a named, referenceable entity: contract, function,
// modifier, variable, struct, enum, enum value, event, error, and
// user-defined value type (spec.md §3's Declaration sub-abstract),
// plus the source-unit-level free-function/constant declarations
// SPEC_FULL.md §4.2 adds on top of spec.md.
//
// Fields below are grouped by which Kind populates them; a field left
// zero/nil for a given Kind simply doesn't apply to that variant. This
// is the flattening spec.md §9 calls for in place of one struct type
// per declaration kind.
type Declaration struct {
	Node

	Name         string
	NameLocation *NameLocation

	// ContractDefinition
	ContractKind            string // contract | interface | library
	Abstract                bool
	BaseContracts           []*TypeName
	LinearizedBaseContracts []int64
	UsedErrors              []int64
	UsedEvents              []int64
	Members                 []Any // contract body: functions, variables, structs, ...

	// FunctionDefinition / ModifierDefinition
	FunctionKind     string // function | constructor | fallback | receive, empty for modifiers
	StateMutability  string
	Visibility       string
	Virtual          bool
	Parameters       []*Declaration // *VariableDeclaration
	ReturnParameters []*Declaration
	Modifiers        []*ModifierInvocation
	Body             Any // *Statement (Block), nil if unimplemented/abstract
	Implemented      bool
	BaseFunctions     []int64
	Selector4         [4]byte // function selector (external/public) or error selector
	SelectorSet       bool

	// ChildFunctions / ChildContracts are back-sets populated by a
	// PriorityStructural (priority-0) post-process (internal/binder's
	// linearization pass):
	// every other Function/Contract that lists this one as a base,
	// per spec.md §4.2's "child-functions back-set (populated when any
	// other function declares one of these as a base)".
	ChildFunctions []resolver.NodeRef
	ChildContracts []resolver.NodeRef

	// VariableDeclaration
	Constant        bool
	StateVariable   bool
	Indexed         bool
	Mutability      string
	StorageLocation string
	TypeName        *TypeName
	TypeIdentifier  string // raw typeIdentifier; parsed lazily via internal/typedesc
	TypeString      string // compiler's human-readable type string, e.g. "uint256"
	InitialValue    Any    // *Expression, nil if absent

	// EnumDefinition / StructDefinition
	// (Members field above is reused for enum values / struct fields)

	// EventDefinition
	Anonymous bool
	Selector32 [32]byte

	// UserDefinedValueTypeDefinition
	Underlying *TypeName

	// Free-function / top-level-constant support (SPEC_FULL.md §4.2):
	// true when this Declaration sits directly under a SourceUnit
	// rather than inside a ContractDefinition.
	FreeStanding bool

	// Documentation is the natspec comment attached to this
	// declaration, when the compiler reported it as a structured node
	// of its own (≥ some 0.6.x versions) rather than a bare string. Per
	// spec.md §3's invariant, its byte range legally precedes d's own
	// range; it is always ordered as d's first child regardless of
	// which AST field the compiler nests it under (SPEC_FULL.md §9
	// Open Question #1).
	Documentation *StructuredDocumentation
}

// StructuredDocumentation is a declaration's natspec comment, built
// only when the compiler reports it as its own node (schema.Documentation.HasNode);
// the older bare-string encoding carries no node of its own and so
// produces no IR node, matching spec.md §4.3(b)'s "structured
// documentation nodes may be present in one CU and absent in the
// other" tolerated drift case.
type StructuredDocumentation struct {
	Node
	Text string
}

// ModifierInvocation is a thin non-declaration helper node (it doesn't
// itself introduce a name) recording one `onlyOwner(...)`-style
// modifier use on a function.
type ModifierInvocation struct {
	Node
	Name      *IdentifierPath
	Arguments []Any // []*Expression
}

// IdentifierPath is a dotted reference such as `Lib.Struct`, resolved
// per spec.md §4.4 right-to-left then via import-alias BFS.
type IdentifierPath struct {
	Node
	Parts []IdentifierPathPart

	// RawReferencedDeclaration is the compiler's raw node id for the
	// final segment of the path, when the AST reports one directly on
	// the path node itself (rather than only per-segment).
	RawReferencedDeclaration int64
}

// IdentifierPathPart is one `.`-separated segment of an
// IdentifierPath, each independently bound to a declaration.
type IdentifierPathPart struct {
	Name      string
	Range     NameLocation
	Resolved  resolver.NodeRef
	IsGlobal  bool
	Global    int // resolver.GlobalSymbol, stored as int to avoid an import cycle back into resolver's enum type name at use sites
}

// NameLocation is the byte range of a declaration's identifier, as
// opposed to its full declaration range. When the compiler's AST omits
// it (pre-0.8.2), it is derived by regex (namelocation.go) while the
// declaration is being built; the derivation is not deferred to first
// access.
type NameLocation struct {
	Offset uint32
	Length uint32
}

// References returns the set of IR nodes currently referring to d,
// looked up live from the shared resolver rather than cached locally
// — the resolver is the single owner of back-reference state per
// spec.md §4.3.
func (d *Declaration) References(r *resolver.Resolver) []resolver.NodeRef {
	return r.References(d.Handle)
}

// IsStateVariable reports whether d is a VariableDeclaration with
// StateVariable set. Declared as a method (rather than inlined at
// every call site) because SPEC_FULL.md §4.2 calls out the original's
// `Declaration.is_state_variable`-equivalent memoized predicate as a
// feature worth preserving explicitly; here it's cheap enough not to
// need memoization.
func (d *Declaration) IsStateVariable() bool {
	return d.Kind == KindVariableDeclaration && d.StateVariable
}
