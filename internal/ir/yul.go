package ir

// YulNode is the tagged-variant struct for the parallel, smaller Yul
// hierarchy (spec.md §3): yul-block, yul-assignment, yul-function-def,
// yul-function-call, yul-identifier, yul-literal, yul-typed-name,
// yul-if, yul-for, yul-switch, yul-case, yul-break, yul-continue,
// yul-leave, yul-expression-stmt, yul-variable-declaration.
type YulNode struct {
	Node

	Name string // YulIdentifier, YulFunctionDefinition, YulTypedName

	// YulBlock
	Statements []*YulNode

	// YulAssignment / YulVariableDeclaration
	Variables []*YulNode // YulIdentifier (assignment) or YulTypedName (decl)
	Value     *YulNode   // nil for an uninitialized declaration

	// YulFunctionDefinition
	Parameters      []*YulNode // YulTypedName
	ReturnVariables []*YulNode // YulTypedName
	Body            *YulNode   // YulBlock

	// YulFunctionCall
	FunctionName *YulNode // YulIdentifier
	Arguments    []*YulNode

	// YulLiteral
	LiteralKind  string
	LiteralValue string
	EVMType      string

	// YulTypedName
	EVMTypeName string

	// YulIf / YulForLoop / YulSwitch
	Condition *YulNode
	Pre       *YulNode // YulForLoop
	Post      *YulNode // YulForLoop

	// YulSwitch
	Cases []*YulNode // YulCase

	// YulCase
	IsDefault bool
	CaseValue *YulNode // YulLiteral, nil when IsDefault

	// YulExpressionStatement
	Expression *YulNode

	// ExternalReference link, set during binding for YulIdentifier
	// nodes that resolve to a Solidity variable (spec.md §4.4).
	External *ExternalReference
}
