package ir

import (
	"github.com/solidity-ir/engine/internal/ierrors"
	"github.com/solidity-ir/engine/internal/schema"
)

// buildYul dispatches on a raw Yul AST node, generalizing the same
// discriminated-decode approach builder_expr.go/builder_stmt.go use
// for the Solidity-level hierarchy.
func (b *Builder) buildYul(raw []byte) (*YulNode, error) {
	disc, err := schema.DecodeNode(raw)
	if err != nil {
		return nil, err
	}

	y := &YulNode{}
	switch n := disc.(type) {
	case *schema.YulBlock:
		y.Kind = KindYulBlock
		y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)
		for _, raw := range n.Statements {
			child, err := b.buildYul(raw)
			if err != nil {
				return nil, err
			}
			y.Statements = append(y.Statements, child)
			b.linkChildren(y, child)
		}

	case *schema.YulAssignment:
		y.Kind = KindYulAssignment
		y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)
		for _, v := range n.VariableNames {
			vn, err := b.buildYulIdentifier(v)
			if err != nil {
				return nil, err
			}
			y.Variables = append(y.Variables, vn)
			b.linkChildren(y, vn)
		}
		val, err := b.buildYul(n.Value)
		if err != nil {
			return nil, err
		}
		y.Value = val
		b.linkChildren(y, val)

	case *schema.YulFunctionDefinition:
		y.Kind = KindYulFunctionDefinition
		y.Name = n.Name
		y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)
		for _, p := range n.Parameters {
			pt, err := b.buildYulTypedName(p)
			if err != nil {
				return nil, err
			}
			y.Parameters = append(y.Parameters, pt)
			b.linkChildren(y, pt)
		}
		for _, r := range n.ReturnVariables {
			rt, err := b.buildYulTypedName(r)
			if err != nil {
				return nil, err
			}
			y.ReturnVariables = append(y.ReturnVariables, rt)
			b.linkChildren(y, rt)
		}
		body, err := b.buildYulBlockValue(n.Body)
		if err != nil {
			return nil, err
		}
		y.Body = body
		b.linkChildren(y, body)

	case *schema.YulFunctionCall:
		y.Kind = KindYulFunctionCall
		y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)
		fn, err := b.buildYulIdentifier(n.FunctionName)
		if err != nil {
			return nil, err
		}
		y.FunctionName = fn
		b.linkChildren(y, fn)
		for _, a := range n.Arguments {
			arg, err := b.buildYul(a)
			if err != nil {
				return nil, err
			}
			y.Arguments = append(y.Arguments, arg)
			b.linkChildren(y, arg)
		}

	case *schema.YulIdentifier:
		return b.buildYulIdentifier(*n)

	case *schema.YulLiteral:
		y.Kind = KindYulLiteral
		y.LiteralKind = n.Kind
		y.LiteralValue = n.Value
		y.EVMType = n.Type
		y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)

	case *schema.YulTypedName:
		return b.buildYulTypedName(*n)

	case *schema.YulIf:
		y.Kind = KindYulIf
		y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)
		cond, err := b.buildYul(n.Condition)
		if err != nil {
			return nil, err
		}
		body, err := b.buildYulBlockValue(n.Body)
		if err != nil {
			return nil, err
		}
		y.Condition, y.Body = cond, body
		b.linkChildren(y, cond, body)

	case *schema.YulForLoop:
		y.Kind = KindYulForLoop
		y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)
		pre, err := b.buildYulBlockValue(n.Pre)
		if err != nil {
			return nil, err
		}
		cond, err := b.buildYul(n.Condition)
		if err != nil {
			return nil, err
		}
		post, err := b.buildYulBlockValue(n.Post)
		if err != nil {
			return nil, err
		}
		body, err := b.buildYulBlockValue(n.Body)
		if err != nil {
			return nil, err
		}
		y.Pre, y.Condition, y.Post, y.Body = pre, cond, post, body
		b.linkChildren(y, pre, cond, post, body)

	case *schema.YulSwitch:
		y.Kind = KindYulSwitch
		y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)
		expr, err := b.buildYul(n.Expression)
		if err != nil {
			return nil, err
		}
		y.Condition = expr
		b.linkChildren(y, expr)
		for _, c := range n.Cases {
			cs := &YulNode{Kind: KindYulCase}
			cs.Range, cs.Handle = toRange(c.Src), b.bind(c.ID, cs.Kind)
			if s, ok := c.Value.(string); ok && s == "default" {
				cs.IsDefault = true
			} else if c.Value != nil {
				lit, err := b.buildYulCaseLiteral(c)
				if err != nil {
					return nil, err
				}
				cs.CaseValue = lit
				b.linkChildren(cs, lit)
			}
			body, err := b.buildYulBlockValue(c.Body)
			if err != nil {
				return nil, err
			}
			cs.Body = body
			b.linkChildren(cs, body)
			cs.Source = b.slice(cs.Range)
			y.Cases = append(y.Cases, cs)
			b.linkChildren(y, cs)
		}

	case *schema.YulBreak:
		y.Kind = KindYulBreak
		y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)

	case *schema.YulContinue:
		y.Kind = KindYulContinue
		y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)

	case *schema.YulLeave:
		y.Kind = KindYulLeave
		y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)

	case *schema.YulExpressionStatement:
		y.Kind = KindYulExpressionStatement
		y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)
		expr, err := b.buildYul(n.Expression)
		if err != nil {
			return nil, err
		}
		y.Expression = expr
		b.linkChildren(y, expr)

	case *schema.YulVariableDeclaration:
		y.Kind = KindYulVariableDeclaration
		y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)
		for _, v := range n.Variables {
			vt, err := b.buildYulTypedName(v)
			if err != nil {
				return nil, err
			}
			y.Variables = append(y.Variables, vt)
			b.linkChildren(y, vt)
		}
		if n.Value != nil {
			val, err := b.buildYul(*n.Value)
			if err != nil {
				return nil, err
			}
			y.Value = val
			b.linkChildren(y, val)
		}

	default:
		return nil, ierrors.New(ierrors.UnsupportedConstruct, b.cu, "unexpected yul nodeType %q", disc.Kind())
	}

	y.Source = b.slice(y.Range)
	return y, nil
}

func (b *Builder) buildYulIdentifier(n schema.YulIdentifier) (*YulNode, error) {
	y := &YulNode{Kind: KindYulIdentifier, Name: n.Name}
	y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)
	y.Source = b.slice(y.Range)
	return y, nil
}

func (b *Builder) buildYulTypedName(n schema.YulTypedName) (*YulNode, error) {
	y := &YulNode{Kind: KindYulTypedName, Name: n.Name, EVMTypeName: n.Type}
	y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)
	y.Source = b.slice(y.Range)
	return y, nil
}

func (b *Builder) buildYulBlockValue(n schema.YulBlock) (*YulNode, error) {
	y := &YulNode{Kind: KindYulBlock}
	y.Range, y.Handle = toRange(n.Src), b.bind(n.ID, y.Kind)
	for _, raw := range n.Statements {
		child, err := b.buildYul(raw)
		if err != nil {
			return nil, err
		}
		y.Statements = append(y.Statements, child)
		b.linkChildren(y, child)
	}
	y.Source = b.slice(y.Range)
	return y, nil
}

func (b *Builder) buildYulCaseLiteral(c schema.YulCase) (*YulNode, error) {
	raw, ok := c.Value.(map[string]interface{})
	if !ok {
		return nil, ierrors.New(ierrors.SchemaViolation, b.cu, "yul case value is neither \"default\" nor a literal object")
	}
	kind, _ := raw["kind"].(string)
	value, _ := raw["value"].(string)
	typ, _ := raw["type"].(string)
	y := &YulNode{Kind: KindYulLiteral, LiteralKind: kind, LiteralValue: value, EVMType: typ}
	y.Source = ""
	return y, nil
}
