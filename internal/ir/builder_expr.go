package ir

import (
	"github.com/solidity-ir/engine/internal/ierrors"
	"github.com/solidity-ir/engine/internal/schema"
)

func (b *Builder) buildExpression(raw []byte) (*Expression, error) {
	disc, err := schema.DecodeNode(raw)
	if err != nil {
		return nil, err
	}

	e := &Expression{}
	switch n := disc.(type) {
	case *schema.Assignment:
		e.Kind = KindAssignment
		e.Operator = n.Operator
		e.Range, e.Handle = toRange(n.Src), b.bind(n.ID, e.Kind)
		e.TypeIdentifier, e.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		if e.Left, err = b.buildExpression(n.LeftHandSide); err != nil {
			return nil, err
		}
		if e.Right, err = b.buildExpression(n.RightHandSide); err != nil {
			return nil, err
		}
		b.linkChildren(e, e.Left, e.Right)

	case *schema.BinaryOperation:
		e.Kind = KindBinaryOperation
		e.Operator = n.Operator
		e.Range, e.Handle = toRange(n.Src), b.bind(n.ID, e.Kind)
		e.TypeIdentifier, e.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		if n.Function != nil {
			e.RawOperatorFunction, e.RawOperatorFunctionSet = *n.Function, true
		}
		if e.Left, err = b.buildExpression(n.LeftExpression); err != nil {
			return nil, err
		}
		if e.Right, err = b.buildExpression(n.RightExpression); err != nil {
			return nil, err
		}
		b.linkChildren(e, e.Left, e.Right)

	case *schema.UnaryOperation:
		e.Kind = KindUnaryOperation
		e.Operator = n.Operator
		e.Prefix = n.Prefix
		e.Range, e.Handle = toRange(n.Src), b.bind(n.ID, e.Kind)
		e.TypeIdentifier, e.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		if n.Function != nil {
			e.RawOperatorFunction, e.RawOperatorFunctionSet = *n.Function, true
		}
		if e.Left, err = b.buildExpression(n.SubExpression); err != nil {
			return nil, err
		}
		b.linkChildren(e, e.Left)

	case *schema.Conditional:
		e.Kind = KindConditional
		e.Range, e.Handle = toRange(n.Src), b.bind(n.ID, e.Kind)
		e.TypeIdentifier, e.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		if e.Condition, err = b.buildExpression(n.Condition); err != nil {
			return nil, err
		}
		if e.Left, err = b.buildExpression(n.TrueExpression); err != nil {
			return nil, err
		}
		if e.Right, err = b.buildExpression(n.FalseExpression); err != nil {
			return nil, err
		}
		b.linkChildren(e, e.Condition, e.Left, e.Right)

	case *schema.FunctionCall:
		e.Kind = KindFunctionCall
		e.CallKind = n.Kind
		e.ArgNames = n.Names
		e.Range, e.Handle = toRange(n.Src), b.bind(n.ID, e.Kind)
		e.TypeIdentifier, e.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		if e.Left, err = b.buildExpression(n.Expression); err != nil {
			return nil, err
		}
		b.linkChildren(e, e.Left)
		for _, a := range n.Arguments {
			arg, err := b.buildExpression(a)
			if err != nil {
				return nil, err
			}
			e.Args = append(e.Args, arg)
			b.linkChildren(e, arg)
		}

	case *schema.FunctionCallOptions:
		e.Kind = KindFunctionCallOptions
		e.ArgNames = n.Names
		e.Range, e.Handle = toRange(n.Src), b.bind(n.ID, e.Kind)
		e.TypeIdentifier, e.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		if e.Left, err = b.buildExpression(n.Expression); err != nil {
			return nil, err
		}
		b.linkChildren(e, e.Left)
		for _, o := range n.Options {
			opt, err := b.buildExpression(o)
			if err != nil {
				return nil, err
			}
			e.Args = append(e.Args, opt)
			b.linkChildren(e, opt)
		}

	case *schema.Identifier:
		e.Kind = KindIdentifier
		e.Name = n.Name
		e.Range, e.Handle = toRange(n.Src), b.bind(n.ID, e.Kind)
		e.TypeIdentifier, e.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		e.RawReferencedDeclaration, e.RawReferencedDeclarationSet = n.ReferencedDeclaration, true

	case *schema.IndexAccess:
		e.Kind = KindIndexAccess
		e.Range, e.Handle = toRange(n.Src), b.bind(n.ID, e.Kind)
		e.TypeIdentifier, e.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		if e.Left, err = b.buildExpression(n.BaseExpression); err != nil {
			return nil, err
		}
		b.linkChildren(e, e.Left)
		if n.IndexExpression != nil {
			if e.Right, err = b.buildExpression(*n.IndexExpression); err != nil {
				return nil, err
			}
			b.linkChildren(e, e.Right)
		}

	case *schema.IndexRangeAccess:
		e.Kind = KindIndexRangeAccess
		e.Range, e.Handle = toRange(n.Src), b.bind(n.ID, e.Kind)
		e.TypeIdentifier, e.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		if e.Left, err = b.buildExpression(n.BaseExpression); err != nil {
			return nil, err
		}
		b.linkChildren(e, e.Left)
		if n.StartExpression != nil {
			if e.Condition, err = b.buildExpression(*n.StartExpression); err != nil {
				return nil, err
			}
			b.linkChildren(e, e.Condition)
		}
		if n.EndExpression != nil {
			if e.Right, err = b.buildExpression(*n.EndExpression); err != nil {
				return nil, err
			}
			b.linkChildren(e, e.Right)
		}

	case *schema.Literal:
		e.Kind = KindLiteral
		e.LiteralKind = n.Kind
		e.HexValue = n.HexValue
		if n.Value != nil {
			e.LiteralValue = *n.Value
		}
		if n.Subdenomination != nil {
			e.Subdenomination = *n.Subdenomination
		}
		e.Range, e.Handle = toRange(n.Src), b.bind(n.ID, e.Kind)
		e.TypeIdentifier, e.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString

	case *schema.MemberAccess:
		e.Kind = KindMemberAccess
		e.MemberName = n.MemberName
		if n.MemberLocation != nil {
			e.MemberLocation = parseNameLocationString(*n.MemberLocation)
		}
		e.Range, e.Handle = toRange(n.Src), b.bind(n.ID, e.Kind)
		e.TypeIdentifier, e.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		if n.ReferencedDeclaration != nil {
			e.RawReferencedDeclaration, e.RawReferencedDeclarationSet = *n.ReferencedDeclaration, true
		}
		if e.Left, err = b.buildExpression(n.Expression); err != nil {
			return nil, err
		}
		b.linkChildren(e, e.Left)

	case *schema.NewExpression:
		e.Kind = KindNewExpression
		e.Range, e.Handle = toRange(n.Src), b.bind(n.ID, e.Kind)
		e.TypeIdentifier, e.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		tn, err := b.buildTypeName(n.TypeName)
		if err != nil {
			return nil, err
		}
		e.TypeNameRef = tn
		b.linkChildren(e, tn)

	case *schema.TupleExpression:
		e.Kind = KindTupleExpression
		e.IsInlineArray = n.IsInlineArray
		e.Range, e.Handle = toRange(n.Src), b.bind(n.ID, e.Kind)
		e.TypeIdentifier, e.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		for _, c := range n.Components {
			if c == nil {
				e.Components = append(e.Components, nil)
				continue
			}
			comp, err := b.buildExpression(*c)
			if err != nil {
				return nil, err
			}
			e.Components = append(e.Components, comp)
			b.linkChildren(e, comp)
		}

	case *schema.ElementaryTypeNameExpression:
		e.Kind = KindElementaryTypeNameExpression
		e.Range, e.Handle = toRange(n.Src), b.bind(n.ID, e.Kind)
		e.TypeIdentifier, e.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString
		tn, err := b.buildElementaryTypeName(n.TypeName)
		if err != nil {
			return nil, err
		}
		e.TypeNameRef = tn
		b.linkChildren(e, tn)

	default:
		return nil, ierrors.New(ierrors.UnsupportedConstruct, b.cu, "unexpected expression nodeType %q", disc.Kind())
	}

	e.Source = b.slice(e.Range)
	return e, nil
}

// linkChildren wires parent/child links for children built inline
// within a single schema.* case above (which, unlike the declaration
// builders, construct several sub-expressions before the parent
// Expression value is fully assembled).
func (b *Builder) linkChildren(parent Any, children ...Any) {
	for _, c := range children {
		if c == nil {
			continue
		}
		setParent(parent, c)
		parent.Base().appendChild(c)
	}
}

func (b *Builder) buildIdentifierPathRaw(raw []byte) (*IdentifierPath, error) {
	disc, err := schema.DecodeNode(raw)
	if err != nil {
		return nil, err
	}
	switch n := disc.(type) {
	case *schema.IdentifierPath:
		return b.buildIdentifierPath(n)
	case *schema.Identifier:
		p := &IdentifierPath{RawReferencedDeclaration: n.ReferencedDeclaration}
		p.Kind = KindIdentifierPath
		p.Range, p.Handle = toRange(n.Src), b.bind(n.ID, p.Kind)
		p.Source = b.slice(p.Range)
		p.Parts = []IdentifierPathPart{{Name: n.Name}}
		return p, nil
	default:
		return nil, ierrors.New(ierrors.UnsupportedConstruct, b.cu, "unexpected identifier-path nodeType %q", disc.Kind())
	}
}

func (b *Builder) buildIdentifierPath(n *schema.IdentifierPath) (*IdentifierPath, error) {
	p := &IdentifierPath{RawReferencedDeclaration: n.ReferencedDeclaration}
	p.Kind = KindIdentifierPath
	p.Range, p.Handle = toRange(n.Src), b.bind(n.ID, p.Kind)
	p.Source = b.slice(p.Range)

	names := splitDotted(n.Name)
	for _, name := range names {
		p.Parts = append(p.Parts, IdentifierPathPart{Name: name})
	}
	return p, nil
}

func splitDotted(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}
