package ir

import (
	"github.com/solidity-ir/engine/internal/ierrors"
	"github.com/solidity-ir/engine/internal/schema"
)

func (b *Builder) buildTypeName(raw []byte) (*TypeName, error) {
	disc, err := schema.DecodeNode(raw)
	if err != nil {
		return nil, err
	}

	t := &TypeName{}
	switch n := disc.(type) {
	case *schema.ElementaryTypeName:
		return b.buildElementaryTypeName(*n)

	case *schema.ArrayTypeName:
		t.Kind = KindArrayTypeName
		t.Range, t.Handle = toRange(n.Src), b.bind(n.ID, t.Kind)
		t.TypeIdentifier, t.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		base, err := b.buildTypeName(n.BaseType)
		if err != nil {
			return nil, err
		}
		t.BaseType = base
		b.linkChildren(t, base)
		if n.Length != nil {
			length, err := b.buildExpression(*n.Length)
			if err != nil {
				return nil, err
			}
			t.Length = length
			b.linkChildren(t, length)
		}

	case *schema.MappingTypeName:
		t.Kind = KindMappingTypeName
		t.Range, t.Handle = toRange(n.Src), b.bind(n.ID, t.Kind)
		t.TypeIdentifier, t.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		key, err := b.buildTypeName(n.KeyType)
		if err != nil {
			return nil, err
		}
		val, err := b.buildTypeName(n.ValueType)
		if err != nil {
			return nil, err
		}
		t.KeyType, t.ValueType = key, val
		b.linkChildren(t, key, val)

	case *schema.FunctionTypeName:
		t.Kind = KindFunctionTypeName
		t.Visibility = n.Visibility
		t.StateMutability = n.StateMutability
		t.Range, t.Handle = toRange(n.Src), b.bind(n.ID, t.Kind)
		t.TypeIdentifier, t.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		for _, p := range n.Parameters.Parameters {
			pt, err := b.buildTypeNameFromVar(p)
			if err != nil {
				return nil, err
			}
			t.Parameters = append(t.Parameters, pt)
			b.linkChildren(t, pt)
		}
		for _, p := range n.ReturnParameters.Parameters {
			pt, err := b.buildTypeNameFromVar(p)
			if err != nil {
				return nil, err
			}
			t.ReturnParameters = append(t.ReturnParameters, pt)
			b.linkChildren(t, pt)
		}

	case *schema.UserDefinedTypeName:
		t.Kind = KindUserDefinedTypeName
		t.Name = n.Name
		t.Range, t.Handle = toRange(n.Src), b.bind(n.ID, t.Kind)
		t.TypeIdentifier, t.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		t.RawReferencedDeclaration = n.ReferencedDeclaration
		if n.PathNode != nil {
			path, err := b.buildIdentifierPath(n.PathNode)
			if err != nil {
				return nil, err
			}
			t.Path = path
			b.linkChildren(t, path)
		}

	// spec.md §9's documented drift: some compiler versions emit an
	// IdentifierPath directly where a UserDefinedTypeName would
	// otherwise sit (e.g. as a struct member's type). Treated as an
	// accepted substitution, not an error, per DriftTypeNameVsPath.
	case *schema.IdentifierPath:
		t.Kind = KindUserDefinedTypeName
		t.Range, t.Handle = toRange(n.Src), b.bind(n.ID, t.Kind)
		path, err := b.buildIdentifierPath(n)
		if err != nil {
			return nil, err
		}
		t.Path = path
		t.Name = n.Name
		t.RawReferencedDeclaration = n.ReferencedDeclaration
		b.linkChildren(t, path)

	default:
		return nil, ierrors.New(ierrors.UnsupportedConstruct, b.cu, "unexpected type-name nodeType %q", disc.Kind())
	}

	t.Source = b.slice(t.Range)
	return t, nil
}

func (b *Builder) buildElementaryTypeName(n schema.ElementaryTypeName) (*TypeName, error) {
	t := &TypeName{
		Kind:            KindElementaryTypeName,
		Name:            n.Name,
		StateMutability: n.StateMutability,
	}
	t.Range, t.Handle = toRange(n.Src), b.bind(n.ID, t.Kind)
	t.TypeIdentifier, t.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
	t.Source = b.slice(t.Range)
	return t, nil
}

// buildTypeNameFromVar extracts the TypeName out of a VariableDeclaration
// used purely as a parameter-type placeholder (FunctionTypeName's
// parameterTypes/returnParameterTypes are VariableDeclaration nodes
// with no name, per the compiler's AST schema).
func (b *Builder) buildTypeNameFromVar(v schema.VariableDeclaration) (*TypeName, error) {
	if v.TypeName == nil {
		return &TypeName{TypeIdentifier: v.TypeDescriptions.TypeIdentifier, TypeString: v.TypeDescriptions.TypeString}, nil
	}
	return b.buildTypeName(*v.TypeName)
}
