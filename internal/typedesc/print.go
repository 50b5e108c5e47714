package typedesc

import (
	"fmt"
	"strings"
)

func (l DataLocation) String() string {
	switch l {
	case LocationStorage:
		return "storage"
	case LocationMemory:
		return "memory"
	case LocationCalldata:
		return "calldata"
	default:
		return ""
	}
}

func withLocation(base string, l DataLocation) string {
	if l == LocationUnknown {
		return base
	}
	return base + " " + l.String()
}

func (t *Address) String() string {
	if t.Payable {
		return "address payable"
	}
	return "address"
}

func (t *Bool) String() string { return "bool" }

func (t *Int) String() string  { return fmt.Sprintf("int%d", t.Bits) }
func (t *UInt) String() string { return fmt.Sprintf("uint%d", t.Bits) }

func (t *Fixed) String() string  { return fmt.Sprintf("fixed%dx%d", t.Bits, t.Decimals) }
func (t *UFixed) String() string { return fmt.Sprintf("ufixed%dx%d", t.Bits, t.Decimals) }

func (t *String) String() string { return withLocation("string", t.Location) }
func (t *Bytes) String() string  { return withLocation("bytes", t.Location) }

func (t *FixedBytes) String() string { return fmt.Sprintf("bytes%d", t.N) }

func (t *Function) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	s := fmt.Sprintf("function(%s)", strings.Join(params, ","))
	if len(t.Returns) > 0 {
		rets := make([]string, len(t.Returns))
		for i, r := range t.Returns {
			rets[i] = r.String()
		}
		s += " returns (" + strings.Join(rets, ",") + ")"
	}
	return s
}

func (t *Mapping) String() string {
	return fmt.Sprintf("mapping(%s => %s)", t.Key.String(), t.Value.String())
}

func (t *Struct) String() string { return withLocation("struct "+t.Declaration, t.Location) }
func (t *Enum) String() string   { return "enum " + t.Declaration }

func (t *Contract) String() string {
	if t.Super {
		return "super " + t.Declaration
	}
	return "contract " + t.Declaration
}

func (t *UserDefinedValueType) String() string { return t.Declaration }

func (t *Array) String() string {
	base := t.Base.String()
	if t.Length != nil {
		return withLocation(fmt.Sprintf("%s[%d]", base, *t.Length), t.Location)
	}
	return withLocation(base+"[]", t.Location)
}

func (t *Tuple) String() string {
	parts := make([]string, len(t.Components))
	for i, c := range t.Components {
		if c == nil {
			parts[i] = ""
			continue
		}
		parts[i] = c.String()
	}
	return "tuple(" + strings.Join(parts, ",") + ")"
}

func (t *TypeType) String() string { return "type(" + t.Actual.String() + ")" }
func (t *Magic) String() string    { return "magic(" + t.Kind + ")" }
func (t *Module) String() string   { return "module \"" + t.SourceUnit + "\"" }

func (t *Rational) String() string {
	if t.Denom == 1 {
		return fmt.Sprintf("int_const %d", t.Num)
	}
	return fmt.Sprintf("int_const %d/%d", t.Num, t.Denom)
}

func (t *StringLiteral) String() string { return "literal_string" }
func (t *Modifier) String() string      { return "modifier" }
