// Package typedesc parses the Solidity compiler's typeIdentifier
// mini-language (e.g. "t_mapping$_t_address_$_t_uint256_$") into a
// tagged variant tree, per spec.md §4.5.
package typedesc

// DataLocation mirrors Solidity's storage/memory/calldata location
// annotations, used by String/Bytes/Array/Struct descriptors.
type DataLocation int

const (
	LocationUnknown DataLocation = iota
	LocationStorage
	LocationMemory
	LocationCalldata
)

// FunctionKind distinguishes the four call conventions Solidity's
// type system assigns a function type.
type FunctionKind int

const (
	FunctionKindInternal FunctionKind = iota
	FunctionKindExternal
	FunctionKindDelegateCall
	FunctionKindBareCall
)

// Type is the common interface every parsed type descriptor implements.
// It is intentionally tag-only: detectors type-switch on the concrete
// type below, per the "tagged variants over inheritance" guidance in
// spec.md §9.
type Type interface {
	typeDescriptor()
	String() string
}

type (
	// Address is `address` or `address payable`.
	Address struct{ Payable bool }

	// Bool is `bool`.
	Bool struct{}

	// Int is a signed integer of the given bit width.
	Int struct{ Bits int }

	// UInt is an unsigned integer of the given bit width.
	UInt struct{ Bits int }

	// Fixed is a signed fixed-point number.
	Fixed struct{ Bits, Decimals int }

	// UFixed is an unsigned fixed-point number.
	UFixed struct{ Bits, Decimals int }

	// String is Solidity's `string` type at a given data location.
	String struct{ Location DataLocation }

	// Bytes is Solidity's dynamically-sized `bytes` type.
	Bytes struct{ Location DataLocation }

	// FixedBytes is `bytesN` for 1 <= N <= 32.
	FixedBytes struct{ N int }

	// Function is a function type, including the ABI-relevant bits
	// the compiler encodes in the descriptor (gas/value/salt option
	// availability, and the declaration it is attached to when it
	// names a specific overload).
	Function struct {
		Kind            FunctionKind
		StateMutability string
		Params          []Type
		Returns         []Type
		GasSet          bool
		ValueSet        bool
		SaltSet         bool
		AttachedTo      string // declaration name, when known; empty otherwise.
	}

	// Mapping is `mapping(Key => Value)`.
	Mapping struct{ Key, Value Type }

	// Struct names a struct declaration by its canonical path.
	Struct struct {
		Declaration string
		Location    DataLocation
	}

	// Enum names an enum declaration by its canonical path.
	Enum struct{ Declaration string }

	// Contract names a contract declaration, optionally flagged as
	// `super` (the type of a `super` expression).
	Contract struct {
		Declaration string
		Super       bool
	}

	// UserDefinedValueType names a user-defined value type declaration.
	UserDefinedValueType struct{ Declaration string }

	// Array is `T[]` (Length == nil) or `T[N]`.
	Array struct {
		Base     Type
		Length   *uint64
		Location DataLocation
	}

	// Tuple is the type of a parenthesized/tuple expression.
	Tuple struct{ Components []Type }

	// TypeType is the type of a `type(T)` expression, e.g.
	// `type(T).creationCode`.
	TypeType struct{ Actual Type }

	// Magic is the type of a builtin global symbol expression
	// (`block`, `msg`, `tx`, `abi`, ...); Kind is the symbol's name.
	Magic struct{ Kind string }

	// Module is the type of an identifier referring to an imported
	// Source Unit (e.g. a namespace alias).
	Module struct{ SourceUnit string }

	// Rational is the type of an integer/fixed-point literal before
	// the compiler has assigned it a concrete numeric type.
	Rational struct{ Num, Denom int64 }

	// StringLiteral is the type of a string literal expression.
	StringLiteral struct{}

	// Modifier is the pseudo-type the compiler assigns modifier
	// invocations.
	Modifier struct{}
)

func (*Address) typeDescriptor()              {}
func (*Bool) typeDescriptor()                 {}
func (*Int) typeDescriptor()                  {}
func (*UInt) typeDescriptor()                 {}
func (*Fixed) typeDescriptor()                {}
func (*UFixed) typeDescriptor()               {}
func (*String) typeDescriptor()               {}
func (*Bytes) typeDescriptor()                {}
func (*FixedBytes) typeDescriptor()           {}
func (*Function) typeDescriptor()             {}
func (*Mapping) typeDescriptor()              {}
func (*Struct) typeDescriptor()               {}
func (*Enum) typeDescriptor()                 {}
func (*Contract) typeDescriptor()             {}
func (*UserDefinedValueType) typeDescriptor() {}
func (*Array) typeDescriptor()                {}
func (*Tuple) typeDescriptor()                {}
func (*TypeType) typeDescriptor()             {}
func (*Magic) typeDescriptor()                {}
func (*Module) typeDescriptor()               {}
func (*Rational) typeDescriptor()             {}
func (*StringLiteral) typeDescriptor()        {}
func (*Modifier) typeDescriptor()             {}
