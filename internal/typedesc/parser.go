package typedesc

import (
	"fmt"
	"strings"
)

// Parse parses a compiler typeIdentifier string into a Type. Parse
// must fully consume the input; leftover text is a parse-failure
// error per spec.md §4.5 ("any remainder is a bug").
func Parse(identifier string) (Type, error) {
	r := NewReader(identifier)
	t, err := parseType(r)
	if err != nil {
		return nil, err
	}
	if !r.Done() {
		return nil, fmt.Errorf("typedesc: unconsumed remainder %q after parsing %q", r.Remaining(), identifier)
	}
	return t, nil
}

// parseType dispatches on the next literal keyword in the reader.
//
//nolint:gocyclo // one dispatch site per typeIdentifier production; splitting hides the grammar, not simplifies it.
func parseType(r *Reader) (Type, error) {
	switch {
	case r.HasPrefix("t_address_payable"):
		_ = r.Read("t_address_payable")
		return &Address{Payable: true}, nil
	case r.HasPrefix("t_address"):
		_ = r.Read("t_address")
		return &Address{Payable: false}, nil
	case r.HasPrefix("t_bool"):
		_ = r.Read("t_bool")
		return &Bool{}, nil
	case r.HasPrefix("t_ufixed"):
		_ = r.Read("t_ufixed")
		bits, dec, err := readFixedDims(r)
		if err != nil {
			return nil, err
		}
		return &UFixed{Bits: bits, Decimals: dec}, nil
	case r.HasPrefix("t_fixed"):
		_ = r.Read("t_fixed")
		bits, dec, err := readFixedDims(r)
		if err != nil {
			return nil, err
		}
		return &Fixed{Bits: bits, Decimals: dec}, nil
	case r.HasPrefix("t_uint"):
		_ = r.Read("t_uint")
		bits, err := r.ReadDigits()
		if err != nil {
			return nil, err
		}
		return &UInt{Bits: bits}, nil
	case r.HasPrefix("t_int"):
		_ = r.Read("t_int")
		bits, err := r.ReadDigits()
		if err != nil {
			return nil, err
		}
		return &Int{Bits: bits}, nil
	case r.HasPrefix("t_bytes") && !r.HasPrefix("t_bytes_"):
		_ = r.Read("t_bytes")
		if n, err := r.ReadDigits(); err == nil {
			return &FixedBytes{N: n}, nil
		}
		return &Bytes{Location: readOptionalLocation(r)}, nil
	case r.HasPrefix("t_bytes"):
		_ = r.Read("t_bytes")
		return &Bytes{Location: readOptionalLocation(r)}, nil
	case r.HasPrefix("t_stringliteral"):
		_ = r.Read("t_stringliteral")
		r.ReadUntil("") // consume the trailing hash; identity not semantically meaningful to the IR.
		return &StringLiteral{}, nil
	case r.HasPrefix("t_string"):
		_ = r.Read("t_string")
		return &String{Location: readOptionalLocation(r)}, nil
	case r.HasPrefix("t_mapping"):
		return parseMapping(r)
	case r.HasPrefix("t_array"):
		return parseArray(r)
	case r.HasPrefix("t_tuple"):
		return parseTuple(r)
	case r.HasPrefix("t_function"):
		return parseFunction(r)
	case r.HasPrefix("t_struct"):
		return parseNamed(r, "t_struct", func(name string) Type {
			return &Struct{Declaration: name, Location: readOptionalLocation(r)}
		})
	case r.HasPrefix("t_enum"):
		return parseNamed(r, "t_enum", func(name string) Type { return &Enum{Declaration: name} })
	case r.HasPrefix("t_contract"):
		return parseContract(r)
	case r.HasPrefix("t_userDefinedValueType"):
		return parseNamed(r, "t_userDefinedValueType", func(name string) Type {
			return &UserDefinedValueType{Declaration: name}
		})
	case r.HasPrefix("t_type"):
		_ = r.Read("t_type")
		inner, err := parseDollarWrapped(r)
		if err != nil {
			return nil, err
		}
		return &TypeType{Actual: inner}, nil
	case r.HasPrefix("t_magic_"):
		_ = r.Read("t_magic_")
		kind := r.ReadUntil("$")
		return &Magic{Kind: kind}, nil
	case r.HasPrefix("t_module"):
		_ = r.Read("t_module")
		return parseNamed(r, "", func(name string) Type { return &Module{SourceUnit: name} })
	case r.HasPrefix("t_rational"):
		return parseRational(r)
	case r.HasPrefix("t_modifier"):
		_ = r.Read("t_modifier")
		return &Modifier{}, nil
	default:
		return nil, fmt.Errorf("typedesc: unrecognized type identifier at %q (original: %q)", r.Remaining(), r.original)
	}
}

func readFixedDims(r *Reader) (bits, decimals int, err error) {
	bits, err = r.ReadDigits()
	if err != nil {
		return 0, 0, err
	}
	if r.HasPrefix("x") {
		_ = r.Read("x")
		decimals, err = r.ReadDigits()
		if err != nil {
			return 0, 0, err
		}
	}
	return bits, decimals, nil
}

func readOptionalLocation(r *Reader) DataLocation {
	switch {
	case r.HasPrefix("_storage_ptr"), r.HasPrefix("_storage"):
		consumeOneOf(r, "_storage_ptr", "_storage")
		return LocationStorage
	case r.HasPrefix("_memory_ptr"), r.HasPrefix("_memory"):
		consumeOneOf(r, "_memory_ptr", "_memory")
		return LocationMemory
	case r.HasPrefix("_calldata_ptr"), r.HasPrefix("_calldata"):
		consumeOneOf(r, "_calldata_ptr", "_calldata")
		return LocationCalldata
	default:
		return LocationUnknown
	}
}

func consumeOneOf(r *Reader, options ...string) {
	for _, o := range options {
		if r.HasPrefix(o) {
			_ = r.Read(o)
			return
		}
	}
}

// parseDollarWrapped parses a single `$_<type>_$` group.
func parseDollarWrapped(r *Reader) (Type, error) {
	if err := r.Read("$_"); err != nil {
		return nil, err
	}
	t, err := parseType(r)
	if err != nil {
		return nil, err
	}
	if err := r.Read("_$"); err != nil {
		return nil, err
	}
	return t, nil
}

func parseMapping(r *Reader) (Type, error) {
	if err := r.Read("t_mapping"); err != nil {
		return nil, err
	}
	// The key's closing "_$" and the value's opening "$_" share one
	// underscore: "t_mapping$_<key>_$_<value>_$".
	if err := r.Read("$_"); err != nil {
		return nil, err
	}
	key, err := parseType(r)
	if err != nil {
		return nil, err
	}
	if err := r.Read("_$_"); err != nil {
		return nil, err
	}
	value, err := parseType(r)
	if err != nil {
		return nil, err
	}
	if err := r.Read("_$"); err != nil {
		return nil, err
	}
	return &Mapping{Key: key, Value: value}, nil
}

func parseArray(r *Reader) (Type, error) {
	if err := r.Read("t_array"); err != nil {
		return nil, err
	}
	base, err := parseDollarWrapped(r)
	if err != nil {
		return nil, err
	}

	var length *uint64
	switch {
	case r.HasPrefix("dyn"):
		_ = r.Read("dyn")
	default:
		n, derr := r.ReadDigits()
		if derr == nil {
			u := uint64(n)
			length = &u
		}
	}
	return &Array{Base: base, Length: length, Location: readOptionalLocation(r)}, nil
}

func parseTuple(r *Reader) (Type, error) {
	if err := r.Read("t_tuple"); err != nil {
		return nil, err
	}
	var components []Type
	for r.HasPrefix("$_") {
		c, err := parseDollarWrapped(r)
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return &Tuple{Components: components}, nil
}

func parseFunction(r *Reader) (Type, error) {
	if err := r.Read("t_function_"); err != nil {
		return nil, err
	}
	kindToken := r.ReadUntil("_")
	if err := r.Read("_"); err != nil {
		return nil, err
	}
	mutability := r.ReadUntil("$")

	fn := &Function{
		Kind:            functionKind(kindToken),
		StateMutability: mutability,
	}

	for r.HasPrefix("$_") {
		p, err := parseDollarWrapped(r)
		if err != nil {
			return nil, err
		}
		fn.Params = append(fn.Params, p)
	}
	if r.HasPrefix("returns") {
		_ = r.Read("returns")
		for r.HasPrefix("$_") {
			p, err := parseDollarWrapped(r)
			if err != nil {
				return nil, err
			}
			fn.Returns = append(fn.Returns, p)
		}
	}
	for {
		switch {
		case r.HasPrefix("gas"):
			_ = r.Read("gas")
			fn.GasSet = true
		case r.HasPrefix("value"):
			_ = r.Read("value")
			fn.ValueSet = true
		case r.HasPrefix("salt"):
			_ = r.Read("salt")
			fn.SaltSet = true
		case r.HasPrefix("bound_to"):
			_ = r.Read("bound_to")
			fn.AttachedTo = r.ReadUntil("$")
		default:
			return fn, nil
		}
	}
}

func functionKind(token string) FunctionKind {
	switch token {
	case "external":
		return FunctionKindExternal
	case "delegatecall":
		return FunctionKindDelegateCall
	case "barecall":
		return FunctionKindBareCall
	default:
		return FunctionKindInternal
	}
}

func parseNamed(r *Reader, prefix string, build func(name string) Type) (Type, error) {
	if prefix != "" {
		if err := r.Read(prefix); err != nil {
			return nil, err
		}
	}
	if err := r.Read("$_"); err != nil {
		return nil, err
	}
	name := r.ReadUntil("_$")
	if err := r.Read("_$"); err != nil {
		return nil, err
	}
	// Discard the compiler's internal declaration id, if present
	// (e.g. "t_struct$_Foo_$123_storage_ptr").
	for len(r.Remaining()) > 0 && r.Remaining()[0] >= '0' && r.Remaining()[0] <= '9' {
		_, _ = r.ReadDigits()
		break
	}
	return build(name), nil
}

func parseContract(r *Reader) (Type, error) {
	if err := r.Read("t_contract"); err != nil {
		return nil, err
	}
	super := false
	if r.HasPrefix(" super") {
		_ = r.Read(" super")
		super = true
	}
	if err := r.Read("$_"); err != nil {
		return nil, err
	}
	name := r.ReadUntil("_$")
	if err := r.Read("_$"); err != nil {
		return nil, err
	}
	for len(r.Remaining()) > 0 && r.Remaining()[0] >= '0' && r.Remaining()[0] <= '9' {
		_, _ = r.ReadDigits()
		break
	}
	return &Contract{Declaration: name, Super: super}, nil
}

func parseRational(r *Reader) (Type, error) {
	if err := r.Read("t_rational_"); err != nil {
		return nil, err
	}
	rest := r.ReadUntil("")
	parts := strings.SplitN(rest, "_by_", 2)
	num, err := parseSignedInt(parts[0])
	if err != nil {
		return nil, err
	}
	denom := int64(1)
	if len(parts) == 2 {
		denom, err = parseSignedInt(parts[1])
		if err != nil {
			return nil, err
		}
	}
	return &Rational{Num: num, Denom: denom}, nil
}

func parseSignedInt(s string) (int64, error) {
	neg := false
	if strings.HasPrefix(s, "minus_") {
		neg = true
		s = strings.TrimPrefix(s, "minus_")
	}
	var n int64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("typedesc: invalid rational component %q", s)
		}
		n = n*10 + int64(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
