// Package ir builds the typed, byte-range-indexed Intermediate
// Representation described in spec.md §4.2 out of the decoded schema
// trees from internal/schema. Per spec.md §9's guidance, node variants
// are flattened into five tagged-union struct types — Declaration,
// Expression, Statement, TypeName, YulNode — rather than one Go type
// per AST node kind, each carrying a Kind tag that callers switch on.
package ir

// Kind tags every IR node with the AST node kind it was built from.
// internal/visit's Walk dispatches on the Go type, not on Kind; a
// Visit method switches on Kind to tell kinds within a category apart.
type Kind int

const (
	KindUnknown Kind = iota

	// Declarations
	KindSourceUnit
	KindContractDefinition
	KindFunctionDefinition
	KindModifierDefinition
	KindVariableDeclaration
	KindStructDefinition
	KindEnumDefinition
	KindEnumValue
	KindEventDefinition
	KindErrorDefinition
	KindUserDefinedValueTypeDefinition

	// Directives and support declarations
	KindPragmaDirective
	KindImportDirective
	KindUsingForDirective
	KindInheritanceSpecifier
	KindOverrideSpecifier
	KindParameterList
	KindStructuredDocumentation
	KindModifierInvocation
	KindIdentifierPath

	// Expressions
	KindAssignment
	KindBinaryOperation
	KindUnaryOperation
	KindConditional
	KindFunctionCall
	KindFunctionCallOptions
	KindIdentifier
	KindIndexAccess
	KindIndexRangeAccess
	KindLiteral
	KindMemberAccess
	KindNewExpression
	KindTupleExpression
	KindElementaryTypeNameExpression

	// Statements
	KindBlock
	KindUncheckedBlock
	KindIfStatement
	KindForStatement
	KindWhileStatement
	KindDoWhileStatement
	KindReturn
	KindRevertStatement
	KindEmitStatement
	KindTryStatement
	KindTryCatchClause
	KindInlineAssembly
	KindBreak
	KindContinue
	KindPlaceholderStatement
	KindVariableDeclarationStatement
	KindExpressionStatement

	// Type names
	KindElementaryTypeName
	KindArrayTypeName
	KindMappingTypeName
	KindFunctionTypeName
	KindUserDefinedTypeName

	// Yul
	KindYulBlock
	KindYulAssignment
	KindYulFunctionDefinition
	KindYulFunctionCall
	KindYulIdentifier
	KindYulLiteral
	KindYulTypedName
	KindYulIf
	KindYulForLoop
	KindYulSwitch
	KindYulCase
	KindYulBreak
	KindYulContinue
	KindYulLeave
	KindYulExpressionStatement
	KindYulVariableDeclaration
)

var kindNames = map[Kind]string{
	KindSourceUnit:                     "SourceUnit",
	KindContractDefinition:             "ContractDefinition",
	KindFunctionDefinition:             "FunctionDefinition",
	KindModifierDefinition:             "ModifierDefinition",
	KindVariableDeclaration:            "VariableDeclaration",
	KindStructDefinition:               "StructDefinition",
	KindEnumDefinition:                 "EnumDefinition",
	KindEnumValue:                      "EnumValue",
	KindEventDefinition:                "EventDefinition",
	KindErrorDefinition:                "ErrorDefinition",
	KindUserDefinedValueTypeDefinition: "UserDefinedValueTypeDefinition",
	KindPragmaDirective:                "PragmaDirective",
	KindImportDirective:                "ImportDirective",
	KindUsingForDirective:              "UsingForDirective",
	KindInheritanceSpecifier:           "InheritanceSpecifier",
	KindOverrideSpecifier:              "OverrideSpecifier",
	KindParameterList:                  "ParameterList",
	KindStructuredDocumentation:        "StructuredDocumentation",
	KindModifierInvocation:             "ModifierInvocation",
	KindIdentifierPath:                 "IdentifierPath",
	KindAssignment:                     "Assignment",
	KindBinaryOperation:                "BinaryOperation",
	KindUnaryOperation:                 "UnaryOperation",
	KindConditional:                    "Conditional",
	KindFunctionCall:                   "FunctionCall",
	KindFunctionCallOptions:            "FunctionCallOptions",
	KindIdentifier:                     "Identifier",
	KindIndexAccess:                    "IndexAccess",
	KindIndexRangeAccess:               "IndexRangeAccess",
	KindLiteral:                        "Literal",
	KindMemberAccess:                   "MemberAccess",
	KindNewExpression:                  "NewExpression",
	KindTupleExpression:                "TupleExpression",
	KindElementaryTypeNameExpression:   "ElementaryTypeNameExpression",
	KindBlock:                          "Block",
	KindUncheckedBlock:                 "UncheckedBlock",
	KindIfStatement:                    "IfStatement",
	KindForStatement:                   "ForStatement",
	KindWhileStatement:                 "WhileStatement",
	KindDoWhileStatement:               "DoWhileStatement",
	KindReturn:                         "Return",
	KindRevertStatement:                "RevertStatement",
	KindEmitStatement:                  "EmitStatement",
	KindTryStatement:                   "TryStatement",
	KindTryCatchClause:                 "TryCatchClause",
	KindInlineAssembly:                 "InlineAssembly",
	KindBreak:                          "Break",
	KindContinue:                       "Continue",
	KindPlaceholderStatement:           "PlaceholderStatement",
	KindVariableDeclarationStatement:   "VariableDeclarationStatement",
	KindExpressionStatement:            "ExpressionStatement",
	KindElementaryTypeName:             "ElementaryTypeName",
	KindArrayTypeName:                  "ArrayTypeName",
	KindMappingTypeName:                "Mapping",
	KindFunctionTypeName:               "FunctionTypeName",
	KindUserDefinedTypeName:            "UserDefinedTypeName",
	KindYulBlock:                       "YulBlock",
	KindYulAssignment:                  "YulAssignment",
	KindYulFunctionDefinition:          "YulFunctionDefinition",
	KindYulFunctionCall:                "YulFunctionCall",
	KindYulIdentifier:                  "YulIdentifier",
	KindYulLiteral:                     "YulLiteral",
	KindYulTypedName:                   "YulTypedName",
	KindYulIf:                         "YulIf",
	KindYulForLoop:                     "YulForLoop",
	KindYulSwitch:                      "YulSwitch",
	KindYulCase:                        "YulCase",
	KindYulBreak:                       "YulBreak",
	KindYulContinue:                    "YulContinue",
	KindYulLeave:                       "YulLeave",
	KindYulExpressionStatement:         "YulExpressionStatement",
	KindYulVariableDeclaration:         "YulVariableDeclaration",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// KindFromNodeType maps a schema "nodeType" discriminator string back
// to its Kind, for construction code that has only the raw string.
func KindFromNodeType(nodeType string) Kind {
	for k, name := range kindNames {
		if name == nodeType {
			return k
		}
	}
	return KindUnknown
}
