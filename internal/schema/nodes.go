package schema

// This file declares one Go struct per AST node kind the Solidity
// compiler's --standard-json output can emit, per spec.md §3's
// declaration/expression/statement/type-name/Yul inventory. Each
// struct embeds Base for the id/nodeType/src triple every node
// carries, adds its kind-specific fields with `json` tags matching
// the compiler's camelCase wire names, and registers a constructor
// keyed by its "nodeType" discriminator so DecodeNode can dispatch to
// it without a type switch at every call site.

// ---- Source unit & directives -------------------------------------

type SourceUnit struct {
	Base
	AbsolutePath    string            `json:"absolutePath"`
	ExportedSymbols map[string][]int64 `json:"exportedSymbols"`
	License         string            `json:"license"`
	Nodes           []jsonRawMessage  `json:"nodes"`
}

type PragmaDirective struct {
	Base
	Literals []string `json:"literals"`
}

type ImportDirective struct {
	Base
	File            string           `json:"file"`
	AbsolutePath    string           `json:"absolutePath"`
	UnitAlias       string           `json:"unitAlias"`
	SymbolAliases   []ImportSymbolAlias `json:"symbolAliases"`
	SourceUnit      int64            `json:"sourceUnit"`
}

type ImportSymbolAlias struct {
	Foreign IdentifierPath `json:"foreign"`
	Local   *string        `json:"local"`
}

type UsingForDirective struct {
	Base
	LibraryName  *jsonRawMessage  `json:"libraryName"`
	FunctionList []UsingForFunction `json:"functionList"`
	TypeName     *jsonRawMessage  `json:"typeName"`
	Global       bool             `json:"global"`
}

type UsingForFunction struct {
	Function  *IdentifierPath `json:"function"`
	Definition *IdentifierPath `json:"definition"`
	Operator  string          `json:"operator"`
}

// ---- Declarations ---------------------------------------------------

type ContractDefinition struct {
	Base
	Name                    string            `json:"name"`
	NameLocation            *string           `json:"nameLocation"`
	Documentation           *Documentation    `json:"documentation"`
	ContractKind            string            `json:"contractKind"` // contract | interface | library
	Abstract                bool              `json:"abstract"`
	BaseContracts           []jsonRawMessage  `json:"baseContracts"`
	ContractDependencies    []int64           `json:"contractDependencies"`
	LinearizedBaseContracts []int64           `json:"linearizedBaseContracts"`
	UsedErrors              []int64           `json:"usedErrors"`
	UsedEvents              []int64           `json:"usedEvents"`
	Nodes                   []jsonRawMessage  `json:"nodes"`
	FullyImplemented        bool              `json:"fullyImplemented"`
}

type InheritanceSpecifier struct {
	Base
	BaseName  jsonRawMessage   `json:"baseName"`
	Arguments []jsonRawMessage `json:"arguments"`
}

type FunctionDefinition struct {
	Base
	Name                string             `json:"name"`
	NameLocation        *string            `json:"nameLocation"`
	Documentation       *Documentation     `json:"documentation"`
	Kind                string             `json:"kind"` // function|constructor|fallback|receive
	StateMutability     string             `json:"stateMutability"`
	Visibility          string             `json:"visibility"`
	Virtual             bool               `json:"virtual"`
	Overrides           *OverrideSpecifier `json:"overrides"`
	Parameters          ParameterList      `json:"parameters"`
	ReturnParameters    ParameterList      `json:"returnParameters"`
	Modifiers           []ModifierInvocation `json:"modifiers"`
	Body                *jsonRawMessage    `json:"body"`
	Implemented         bool               `json:"implemented"`
	BaseFunctions       []int64            `json:"baseFunctions"`
	FunctionSelector    string             `json:"functionSelector"`
}

type ModifierDefinition struct {
	Base
	Name             string          `json:"name"`
	NameLocation     *string         `json:"nameLocation"`
	Documentation    *Documentation  `json:"documentation"`
	Visibility       string          `json:"visibility"`
	Virtual          bool            `json:"virtual"`
	Overrides        *OverrideSpecifier `json:"overrides"`
	Parameters       ParameterList   `json:"parameters"`
	Body             *jsonRawMessage `json:"body"`
	BaseModifiers    []int64         `json:"baseModifiers"`
}

type ModifierInvocation struct {
	Base
	ModifierName jsonRawMessage   `json:"modifierName"`
	Arguments    []jsonRawMessage `json:"arguments"`
}

type OverrideSpecifier struct {
	Base
	Overrides []jsonRawMessage `json:"overrides"`
}

type VariableDeclaration struct {
	Base
	Name             string          `json:"name"`
	NameLocation     *string         `json:"nameLocation"`
	Documentation    *Documentation  `json:"documentation"`
	Constant         bool            `json:"constant"`
	StateVariable    bool            `json:"stateVariable"`
	Indexed          bool            `json:"indexed"`
	Mutability       string          `json:"mutability"` // mutable|immutable|constant
	Visibility       string          `json:"visibility"`
	StorageLocation  string          `json:"storageLocation"`
	TypeName         *jsonRawMessage `json:"typeName"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
	Value            *jsonRawMessage `json:"value"`
	BaseFunctions    []int64         `json:"baseFunctions"`
	FunctionSelector string          `json:"functionSelector"`
}

type ParameterList struct {
	Base
	Parameters []VariableDeclaration `json:"parameters"`
}

type StructDefinition struct {
	Base
	Name          string                 `json:"name"`
	NameLocation  *string                `json:"nameLocation"`
	Documentation *Documentation         `json:"documentation"`
	Visibility    string                 `json:"visibility"`
	Members       []VariableDeclaration  `json:"members"`
}

type EnumDefinition struct {
	Base
	Name         string      `json:"name"`
	NameLocation *string     `json:"nameLocation"`
	Members      []EnumValue `json:"members"`
}

type EnumValue struct {
	Base
	Name         string  `json:"name"`
	NameLocation *string `json:"nameLocation"`
}

type EventDefinition struct {
	Base
	Name            string         `json:"name"`
	NameLocation    *string        `json:"nameLocation"`
	Documentation   *Documentation `json:"documentation"`
	Anonymous       bool           `json:"anonymous"`
	Parameters      ParameterList  `json:"parameters"`
	EventSelector   string         `json:"eventSelector"`
}

type ErrorDefinition struct {
	Base
	Name           string         `json:"name"`
	NameLocation   *string        `json:"nameLocation"`
	Documentation  *Documentation `json:"documentation"`
	Parameters     ParameterList  `json:"parameters"`
	ErrorSelector  string         `json:"errorSelector"`
}

type UserDefinedValueTypeDefinition struct {
	Base
	Name         string          `json:"name"`
	NameLocation *string         `json:"nameLocation"`
	UnderlyingType jsonRawMessage `json:"underlyingType"`
}

type StructuredDocumentation struct {
	Base
	Text string `json:"text"`
}

// ---- Identifier path -------------------------------------------------

type IdentifierPath struct {
	Base
	Name                  string  `json:"name"`
	NameLocations         []string `json:"nameLocations"`
	ReferencedDeclaration int64   `json:"referencedDeclaration"`
}

// ---- Type names --------------------------------------------------

type TypeDescriptions struct {
	TypeIdentifier string `json:"typeIdentifier"`
	TypeString     string `json:"typeString"`
}

type ElementaryTypeName struct {
	Base
	Name             string           `json:"name"`
	StateMutability  string           `json:"stateMutability"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

type ArrayTypeName struct {
	Base
	BaseType         jsonRawMessage   `json:"baseType"`
	Length           *jsonRawMessage  `json:"length"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

type MappingTypeName struct {
	Base
	KeyType          jsonRawMessage   `json:"keyType"`
	ValueType        jsonRawMessage   `json:"valueType"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

type FunctionTypeName struct {
	Base
	Visibility       string           `json:"visibility"`
	StateMutability  string           `json:"stateMutability"`
	Parameters       ParameterList    `json:"parameterTypes"`
	ReturnParameters ParameterList    `json:"returnParameterTypes"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

type UserDefinedTypeName struct {
	Base
	Name                  string           `json:"name"`
	PathNode              *IdentifierPath  `json:"pathNode"`
	ReferencedDeclaration int64            `json:"referencedDeclaration"`
	TypeDescriptions      TypeDescriptions `json:"typeDescriptions"`
}

// ---- Expressions -----------------------------------------------------

type Assignment struct {
	Base
	Operator         string           `json:"operator"`
	LeftHandSide     jsonRawMessage   `json:"leftHandSide"`
	RightHandSide    jsonRawMessage   `json:"rightHandSide"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

type BinaryOperation struct {
	Base
	Operator         string           `json:"operator"`
	LeftExpression   jsonRawMessage   `json:"leftExpression"`
	RightExpression  jsonRawMessage   `json:"rightExpression"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
	// Function is set (≥0.8.19) when Operator is overloaded by a
	// `function ... operator(...)` user-defined-operator declaration.
	Function *int64 `json:"function"`
}

type UnaryOperation struct {
	Base
	Operator         string           `json:"operator"`
	Prefix           bool             `json:"prefix"`
	SubExpression    jsonRawMessage   `json:"subExpression"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
	Function         *int64           `json:"function"`
}

type Conditional struct {
	Base
	Condition        jsonRawMessage   `json:"condition"`
	TrueExpression   jsonRawMessage   `json:"trueExpression"`
	FalseExpression  jsonRawMessage   `json:"falseExpression"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

type FunctionCall struct {
	Base
	Expression       jsonRawMessage   `json:"expression"`
	Arguments        []jsonRawMessage `json:"arguments"`
	Names            []string         `json:"names"`
	Kind             string           `json:"kind"` // functionCall|typeConversion|structConstructorCall
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

type FunctionCallOptions struct {
	Base
	Expression       jsonRawMessage   `json:"expression"`
	Options          []jsonRawMessage `json:"options"`
	Names            []string         `json:"names"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

type Identifier struct {
	Base
	Name                  string           `json:"name"`
	ReferencedDeclaration int64            `json:"referencedDeclaration"`
	TypeDescriptions      TypeDescriptions `json:"typeDescriptions"`
}

type IndexAccess struct {
	Base
	BaseExpression   jsonRawMessage   `json:"baseExpression"`
	IndexExpression  *jsonRawMessage  `json:"indexExpression"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

type IndexRangeAccess struct {
	Base
	BaseExpression   jsonRawMessage  `json:"baseExpression"`
	StartExpression  *jsonRawMessage `json:"startExpression"`
	EndExpression    *jsonRawMessage `json:"endExpression"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

type Literal struct {
	Base
	Kind             string           `json:"kind"` // number|string|bool|hexString|unicodeString
	Value            *string          `json:"value"`
	HexValue         string           `json:"hexValue"`
	Subdenomination  *string          `json:"subdenomination"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

type MemberAccess struct {
	Base
	MemberName            string           `json:"memberName"`
	MemberLocation        *string          `json:"memberLocation"`
	Expression            jsonRawMessage   `json:"expression"`
	ReferencedDeclaration *int64           `json:"referencedDeclaration"`
	TypeDescriptions      TypeDescriptions `json:"typeDescriptions"`
}

type NewExpression struct {
	Base
	TypeName         jsonRawMessage   `json:"typeName"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

type TupleExpression struct {
	Base
	IsInlineArray    bool             `json:"isInlineArray"`
	Components       []*jsonRawMessage `json:"components"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

type ElementaryTypeNameExpression struct {
	Base
	TypeName         ElementaryTypeName `json:"typeName"`
	TypeDescriptions TypeDescriptions   `json:"typeDescriptions"`
}

// ---- Statements --------------------------------------------------

type Block struct {
	Base
	Statements []jsonRawMessage `json:"statements"`
}

type UncheckedBlock struct {
	Base
	Statements []jsonRawMessage `json:"statements"`
}

type IfStatement struct {
	Base
	Condition  jsonRawMessage  `json:"condition"`
	TrueBody   jsonRawMessage  `json:"trueBody"`
	FalseBody  *jsonRawMessage `json:"falseBody"`
}

type ForStatement struct {
	Base
	InitializationExpression *jsonRawMessage `json:"initializationExpression"`
	Condition                *jsonRawMessage `json:"condition"`
	LoopExpression           *jsonRawMessage `json:"loopExpression"`
	Body                     jsonRawMessage  `json:"body"`
}

type WhileStatement struct {
	Base
	Condition jsonRawMessage `json:"condition"`
	Body      jsonRawMessage `json:"body"`
}

type DoWhileStatement struct {
	Base
	Condition jsonRawMessage `json:"condition"`
	Body      jsonRawMessage `json:"body"`
}

type Return struct {
	Base
	Expression       *jsonRawMessage `json:"expression"`
	FunctionReturnParameters int64   `json:"functionReturnParameters"`
}

type RevertStatement struct {
	Base
	ErrorCall FunctionCall `json:"errorCall"`
}

type EmitStatement struct {
	Base
	EventCall FunctionCall `json:"eventCall"`
}

type TryStatement struct {
	Base
	ExternalCall jsonRawMessage    `json:"externalCall"`
	Clauses      []TryCatchClause  `json:"clauses"`
}

type TryCatchClause struct {
	Base
	ErrorName  string          `json:"errorName"`
	Parameters *ParameterList  `json:"parameters"`
	Block      jsonRawMessage  `json:"block"`
}

type InlineAssembly struct {
	Base
	AST                jsonRawMessage            `json:"AST"`
	ExternalReferences []InlineAssemblyExternalRef `json:"externalReferences"`
	Evmasm             string                    `json:"operations"`
}

type InlineAssemblyExternalRef struct {
	Declaration int64  `json:"declaration"`
	Src         Src    `json:"src"`
	ValueSize   int    `json:"valueSize"`
	Suffix      string `json:"suffix"` // slot|offset|length|address|selector
}

type Break struct {
	Base
}

type Continue struct {
	Base
}

type PlaceholderStatement struct {
	Base
}

type VariableDeclarationStatement struct {
	Base
	Declarations []*VariableDeclaration `json:"declarations"`
	InitialValue *jsonRawMessage        `json:"initialValue"`
}

type ExpressionStatement struct {
	Base
	Expression jsonRawMessage `json:"expression"`
}

// ---- Yul nodes -----------------------------------------------------

type YulBlock struct {
	Base
	Statements []jsonRawMessage `json:"statements"`
}

type YulAssignment struct {
	Base
	VariableNames []YulIdentifier `json:"variableNames"`
	Value         jsonRawMessage  `json:"value"`
}

type YulFunctionDefinition struct {
	Base
	Name       string           `json:"name"`
	Parameters []YulTypedName   `json:"parameters"`
	ReturnVariables []YulTypedName `json:"returnVariables"`
	Body       YulBlock         `json:"body"`
}

type YulFunctionCall struct {
	Base
	FunctionName YulIdentifier    `json:"functionName"`
	Arguments    []jsonRawMessage `json:"arguments"`
}

type YulIdentifier struct {
	Base
	Name string `json:"name"`
}

type YulLiteral struct {
	Base
	Kind  string `json:"kind"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

type YulTypedName struct {
	Base
	Name string `json:"name"`
	Type string `json:"type"`
}

type YulIf struct {
	Base
	Condition jsonRawMessage `json:"condition"`
	Body      YulBlock       `json:"body"`
}

type YulForLoop struct {
	Base
	Pre       YulBlock       `json:"pre"`
	Condition jsonRawMessage `json:"condition"`
	Post      YulBlock       `json:"post"`
	Body      YulBlock       `json:"body"`
}

type YulSwitch struct {
	Base
	Expression jsonRawMessage `json:"expression"`
	Cases      []YulCase      `json:"cases"`
}

type YulCase struct {
	Base
	Value interface{} `json:"value"` // "default" or a YulLiteral
	Body  YulBlock    `json:"body"`
}

type YulBreak struct {
	Base
}

type YulContinue struct {
	Base
}

type YulLeave struct {
	Base
}

type YulExpressionStatement struct {
	Base
	Expression jsonRawMessage `json:"expression"`
}

type YulVariableDeclaration struct {
	Base
	Variables []YulTypedName  `json:"variables"`
	Value     *jsonRawMessage `json:"value"`
}

func init() {
	register("SourceUnit", func() *SourceUnit { return &SourceUnit{} })
	register("PragmaDirective", func() *PragmaDirective { return &PragmaDirective{} })
	register("ImportDirective", func() *ImportDirective { return &ImportDirective{} })
	register("UsingForDirective", func() *UsingForDirective { return &UsingForDirective{} })

	register("ContractDefinition", func() *ContractDefinition { return &ContractDefinition{} })
	register("InheritanceSpecifier", func() *InheritanceSpecifier { return &InheritanceSpecifier{} })
	register("FunctionDefinition", func() *FunctionDefinition { return &FunctionDefinition{} })
	register("ModifierDefinition", func() *ModifierDefinition { return &ModifierDefinition{} })
	register("ModifierInvocation", func() *ModifierInvocation { return &ModifierInvocation{} })
	register("OverrideSpecifier", func() *OverrideSpecifier { return &OverrideSpecifier{} })
	register("VariableDeclaration", func() *VariableDeclaration { return &VariableDeclaration{} })
	register("ParameterList", func() *ParameterList { return &ParameterList{} })
	register("StructDefinition", func() *StructDefinition { return &StructDefinition{} })
	register("EnumDefinition", func() *EnumDefinition { return &EnumDefinition{} })
	register("EnumValue", func() *EnumValue { return &EnumValue{} })
	register("EventDefinition", func() *EventDefinition { return &EventDefinition{} })
	register("ErrorDefinition", func() *ErrorDefinition { return &ErrorDefinition{} })
	register("UserDefinedValueTypeDefinition", func() *UserDefinedValueTypeDefinition { return &UserDefinedValueTypeDefinition{} })
	register("StructuredDocumentation", func() *StructuredDocumentation { return &StructuredDocumentation{} })
	register("IdentifierPath", func() *IdentifierPath { return &IdentifierPath{} })

	register("ElementaryTypeName", func() *ElementaryTypeName { return &ElementaryTypeName{} })
	register("ArrayTypeName", func() *ArrayTypeName { return &ArrayTypeName{} })
	register("Mapping", func() *MappingTypeName { return &MappingTypeName{} })
	register("FunctionTypeName", func() *FunctionTypeName { return &FunctionTypeName{} })
	register("UserDefinedTypeName", func() *UserDefinedTypeName { return &UserDefinedTypeName{} })

	register("Assignment", func() *Assignment { return &Assignment{} })
	register("BinaryOperation", func() *BinaryOperation { return &BinaryOperation{} })
	register("UnaryOperation", func() *UnaryOperation { return &UnaryOperation{} })
	register("Conditional", func() *Conditional { return &Conditional{} })
	register("FunctionCall", func() *FunctionCall { return &FunctionCall{} })
	register("FunctionCallOptions", func() *FunctionCallOptions { return &FunctionCallOptions{} })
	register("Identifier", func() *Identifier { return &Identifier{} })
	register("IndexAccess", func() *IndexAccess { return &IndexAccess{} })
	register("IndexRangeAccess", func() *IndexRangeAccess { return &IndexRangeAccess{} })
	register("Literal", func() *Literal { return &Literal{} })
	register("MemberAccess", func() *MemberAccess { return &MemberAccess{} })
	register("NewExpression", func() *NewExpression { return &NewExpression{} })
	register("TupleExpression", func() *TupleExpression { return &TupleExpression{} })
	register("ElementaryTypeNameExpression", func() *ElementaryTypeNameExpression { return &ElementaryTypeNameExpression{} })

	register("Block", func() *Block { return &Block{} })
	register("UncheckedBlock", func() *UncheckedBlock { return &UncheckedBlock{} })
	register("IfStatement", func() *IfStatement { return &IfStatement{} })
	register("ForStatement", func() *ForStatement { return &ForStatement{} })
	register("WhileStatement", func() *WhileStatement { return &WhileStatement{} })
	register("DoWhileStatement", func() *DoWhileStatement { return &DoWhileStatement{} })
	register("Return", func() *Return { return &Return{} })
	register("RevertStatement", func() *RevertStatement { return &RevertStatement{} })
	register("EmitStatement", func() *EmitStatement { return &EmitStatement{} })
	register("TryStatement", func() *TryStatement { return &TryStatement{} })
	register("TryCatchClause", func() *TryCatchClause { return &TryCatchClause{} })
	register("InlineAssembly", func() *InlineAssembly { return &InlineAssembly{} })
	register("Break", func() *Break { return &Break{} })
	register("Continue", func() *Continue { return &Continue{} })
	register("PlaceholderStatement", func() *PlaceholderStatement { return &PlaceholderStatement{} })
	register("VariableDeclarationStatement", func() *VariableDeclarationStatement { return &VariableDeclarationStatement{} })
	register("ExpressionStatement", func() *ExpressionStatement { return &ExpressionStatement{} })

	register("YulBlock", func() *YulBlock { return &YulBlock{} })
	register("YulAssignment", func() *YulAssignment { return &YulAssignment{} })
	register("YulFunctionDefinition", func() *YulFunctionDefinition { return &YulFunctionDefinition{} })
	register("YulFunctionCall", func() *YulFunctionCall { return &YulFunctionCall{} })
	register("YulIdentifier", func() *YulIdentifier { return &YulIdentifier{} })
	register("YulLiteral", func() *YulLiteral { return &YulLiteral{} })
	register("YulTypedName", func() *YulTypedName { return &YulTypedName{} })
	register("YulIf", func() *YulIf { return &YulIf{} })
	register("YulForLoop", func() *YulForLoop { return &YulForLoop{} })
	register("YulSwitch", func() *YulSwitch { return &YulSwitch{} })
	register("YulCase", func() *YulCase { return &YulCase{} })
	register("YulBreak", func() *YulBreak { return &YulBreak{} })
	register("YulContinue", func() *YulContinue { return &YulContinue{} })
	register("YulLeave", func() *YulLeave { return &YulLeave{} })
	register("YulExpressionStatement", func() *YulExpressionStatement { return &YulExpressionStatement{} })
	register("YulVariableDeclaration", func() *YulVariableDeclaration { return &YulVariableDeclaration{} })
}
