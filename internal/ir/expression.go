package ir

import (
	"sync"

	"github.com/solidity-ir/engine/internal/resolver"
	"github.com/solidity-ir/engine/internal/typedesc"
)

// Expression is the tagged-variant struct for every node with a value
// (spec.md §3's Expression sub-abstract): assignment, binary/unary op,
// conditional, function call, function-call-options, identifier, index
// access, index-range access, literal, member access, new-expression,
// tuple expression, elementary type-name expression.
type Expression struct {
	Node

	TypeIdentifier string // compiler's raw typeIdentifier string
	TypeString     string

	// Statement is the nearest enclosing Statement, set during
	// construction for expressions inside a function or modifier body;
	// nil for every other expression (state variable initializers,
	// modifier-invocation arguments, array lengths in declared types).
	Statement Any

	// Referenced is set for Identifier and (when the compiler
	// populates it) MemberAccess; bound during post-process per
	// spec.md §4.4.
	Referenced     resolver.NodeRef
	ReferencedSet  bool
	GlobalSymbol   int // resolver.GlobalSymbol; zero value is GlobalUnknown
	OverloadSet    []resolver.NodeRef // import symbol aliases that resolve to multiple functions

	// RawReferencedDeclaration is the compiler's raw node id, captured
	// verbatim off Identifier/MemberAccess at construction time.
	// Negative ids name compiler built-ins (resolver.LookupGlobal);
	// internal/binder consumes this field to populate Referenced/
	// GlobalSymbol once every file in the CU has been built, then it is
	// not read again.
	RawReferencedDeclaration    int64
	RawReferencedDeclarationSet bool

	// IsRefToStateVariable holds the spec.md §8 S3/invariant-4 value:
	// true iff Referenced denotes a VariableDeclaration with
	// StateVariable set. Computed once during binding.
	IsRefToStateVariable bool

	// Name (Identifier), MemberName/MemberLocation (MemberAccess)
	Name           string
	MemberName     string
	MemberLocation *NameLocation

	Operator string // Assignment, BinaryOperation, UnaryOperation
	Prefix   bool   // UnaryOperation

	// OperatorFunction is set for a BinaryOperation/UnaryOperation
	// overloaded by a user-defined `function ... operator(...)`
	// binding, resolved during post-process per spec.md §4.4's
	// "user-defined operators" rule.
	RawOperatorFunction    int64
	RawOperatorFunctionSet bool
	OperatorFunction       resolver.NodeRef
	OperatorFunctionSet    bool

	// Sub-expression slots, reused by Kind:
	//   Assignment:       Left=LHS, Right=RHS
	//   BinaryOperation:  Left, Right
	//   UnaryOperation:   Left=SubExpression
	//   Conditional:      Condition, Left=True, Right=False
	//   IndexAccess:      Left=Base, Right=Index (nil for a bare `[]`)
	//   IndexRangeAccess: Left=Base, Condition=Start, Right=End
	//   MemberAccess:     Left=Expression
	//   FunctionCall:     Left=callee, Args=arguments
	//   FunctionCallOptions: Left=callee, Args=option values
	//   NewExpression:    TypeNameRef
	//   TupleExpression:  Components
	Condition Any
	Left      Any
	Right     Any
	Args      []Any
	ArgNames  []string

	CallKind       string // functionCall | typeConversion | structConstructorCall
	FunctionCalled resolver.NodeRef // the declaration (or GlobalSymbol) FunctionCall.expression resolves to

	TypeNameRef *TypeName // NewExpression, ElementaryTypeNameExpression

	IsInlineArray bool
	Components    []Any // TupleExpression; nil entries mark omitted tuple slots

	LiteralKind     string // number | string | bool | hexString | unicodeString
	LiteralValue    string
	HexValue        string
	Subdenomination string

	typeOnce sync.Once
	typeVal  typedesc.Type
	typeErr  error
}

// Type lazily parses TypeIdentifier into a typedesc.Type, caching the
// result, per spec.md §4.5 ("carries a type descriptor string parsed
// lazily into a typed representation").
func (e *Expression) Type() (typedesc.Type, error) {
	e.typeOnce.Do(func() {
		e.typeVal, e.typeErr = typedesc.Parse(e.TypeIdentifier)
	})
	return e.typeVal, e.typeErr
}
