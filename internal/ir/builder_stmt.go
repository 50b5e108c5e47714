package ir

import (
	"github.com/solidity-ir/engine/internal/ierrors"
	"github.com/solidity-ir/engine/internal/schema"
)

func (b *Builder) buildStatement(raw []byte) (*Statement, error) {
	disc, err := schema.DecodeNode(raw)
	if err != nil {
		return nil, err
	}

	s := &Statement{}
	switch n := disc.(type) {
	case *schema.Block:
		s.Kind = KindBlock
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)
		for _, raw := range n.Statements {
			child, err := b.buildStatement(raw)
			if err != nil {
				return nil, err
			}
			s.Statements = append(s.Statements, child)
			b.linkChildren(s, child)
		}

	case *schema.UncheckedBlock:
		s.Kind = KindUncheckedBlock
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)
		for _, raw := range n.Statements {
			child, err := b.buildStatement(raw)
			if err != nil {
				return nil, err
			}
			s.Statements = append(s.Statements, child)
			b.linkChildren(s, child)
		}

	case *schema.IfStatement:
		s.Kind = KindIfStatement
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)
		if s.Condition, err = b.buildExpression(n.Condition); err != nil {
			return nil, err
		}
		if s.TrueBody, err = b.buildStatement(n.TrueBody); err != nil {
			return nil, err
		}
		b.linkChildren(s, s.Condition, s.TrueBody)
		if n.FalseBody != nil {
			if s.FalseBody, err = b.buildStatement(*n.FalseBody); err != nil {
				return nil, err
			}
			b.linkChildren(s, s.FalseBody)
		}

	case *schema.ForStatement:
		s.Kind = KindForStatement
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)
		if n.InitializationExpression != nil {
			if s.Init, err = b.buildStatement(*n.InitializationExpression); err != nil {
				return nil, err
			}
			b.linkChildren(s, s.Init)
		}
		if n.Condition != nil {
			if s.Condition, err = b.buildExpression(*n.Condition); err != nil {
				return nil, err
			}
			b.linkChildren(s, s.Condition)
		}
		if n.LoopExpression != nil {
			if s.Loop, err = b.buildStatement(*n.LoopExpression); err != nil {
				return nil, err
			}
			b.linkChildren(s, s.Loop)
		}
		if s.Body, err = b.buildStatement(n.Body); err != nil {
			return nil, err
		}
		b.linkChildren(s, s.Body)

	case *schema.WhileStatement:
		s.Kind = KindWhileStatement
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)
		if s.Condition, err = b.buildExpression(n.Condition); err != nil {
			return nil, err
		}
		if s.Body, err = b.buildStatement(n.Body); err != nil {
			return nil, err
		}
		b.linkChildren(s, s.Condition, s.Body)

	case *schema.DoWhileStatement:
		s.Kind = KindDoWhileStatement
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)
		if s.Condition, err = b.buildExpression(n.Condition); err != nil {
			return nil, err
		}
		if s.Body, err = b.buildStatement(n.Body); err != nil {
			return nil, err
		}
		b.linkChildren(s, s.Condition, s.Body)

	case *schema.Return:
		s.Kind = KindReturn
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)
		if n.Expression != nil {
			if s.Expression, err = b.buildExpression(*n.Expression); err != nil {
				return nil, err
			}
			b.linkChildren(s, s.Expression)
		}

	case *schema.RevertStatement:
		s.Kind = KindRevertStatement
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)
		call, err := b.buildFunctionCallValue(n.ErrorCall)
		if err != nil {
			return nil, err
		}
		s.Expression = call
		b.linkChildren(s, call)

	case *schema.EmitStatement:
		s.Kind = KindEmitStatement
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)
		call, err := b.buildFunctionCallValue(n.EventCall)
		if err != nil {
			return nil, err
		}
		s.Expression = call
		b.linkChildren(s, call)

	case *schema.TryStatement:
		s.Kind = KindTryStatement
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)
		if s.ExternalCall, err = b.buildExpression(n.ExternalCall); err != nil {
			return nil, err
		}
		b.linkChildren(s, s.ExternalCall)
		for _, c := range n.Clauses {
			tc := &TryClause{ErrorName: c.ErrorName}
			tc.Kind = KindTryCatchClause
			tc.Range, tc.Handle = toRange(c.Src), b.bind(c.ID, tc.Kind)
			if c.Parameters != nil {
				params, err := b.buildParameterList(*c.Parameters)
				if err != nil {
					return nil, err
				}
				tc.Parameters = params
				for _, p := range params {
					b.linkChildren(tc, p)
				}
			}
			block, err := b.buildStatement(c.Block)
			if err != nil {
				return nil, err
			}
			tc.Block = block
			b.linkChildren(tc, block)
			s.Clauses = append(s.Clauses, tc)
			b.linkChildren(s, tc)
		}

	case *schema.InlineAssembly:
		s.Kind = KindInlineAssembly
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)
		yulBlock, err := b.buildYul(n.AST)
		if err != nil {
			return nil, err
		}
		s.YulBody = yulBlock
		b.linkChildren(s, yulBlock)
		for _, ref := range n.ExternalReferences {
			s.ExternalReferences = append(s.ExternalReferences, ExternalReference{
				IdentRange:     NameLocation{Offset: ref.Src.Offset, Length: ref.Src.Length},
				Suffix:         ref.Suffix,
				RawDeclaration: ref.Declaration,
			})
		}

	case *schema.Break:
		s.Kind = KindBreak
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)

	case *schema.Continue:
		s.Kind = KindContinue
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)

	case *schema.PlaceholderStatement:
		s.Kind = KindPlaceholderStatement
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)

	case *schema.VariableDeclarationStatement:
		s.Kind = KindVariableDeclarationStatement
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)
		for _, d := range n.Declarations {
			if d == nil {
				s.Declarations = append(s.Declarations, nil)
				continue
			}
			decl, err := b.buildVariable(d)
			if err != nil {
				return nil, err
			}
			s.Declarations = append(s.Declarations, decl)
			b.linkChildren(s, decl)
		}
		if n.InitialValue != nil {
			if s.InitialValue, err = b.buildExpression(*n.InitialValue); err != nil {
				return nil, err
			}
			b.linkChildren(s, s.InitialValue)
		}

	case *schema.ExpressionStatement:
		s.Kind = KindExpressionStatement
		s.Range, s.Handle = toRange(n.Src), b.bind(n.ID, s.Kind)
		if s.Expression, err = b.buildExpression(n.Expression); err != nil {
			return nil, err
		}
		b.linkChildren(s, s.Expression)

	default:
		return nil, ierrors.New(ierrors.UnsupportedConstruct, b.cu, "unexpected statement nodeType %q", disc.Kind())
	}

	s.Source = b.slice(s.Range)
	return s, nil
}

// buildFunctionCallValue builds the FunctionCall expression embedded
// directly (not as a json.RawMessage) in RevertStatement.ErrorCall /
// EmitStatement.EventCall; the compiler always emits this particular
// sub-node typed exactly as FunctionCall, so no discriminator dispatch
// is needed here.
func (b *Builder) buildFunctionCallValue(n schema.FunctionCall) (*Expression, error) {
	e := &Expression{
		Kind:     KindFunctionCall,
		CallKind: n.Kind,
		ArgNames: n.Names,
	}
	e.Range, e.Handle = toRange(n.Src), b.bind(n.ID, e.Kind)
	e.TypeIdentifier, e.TypeString = n.TypeDescriptions.TypeIdentifier, n.TypeDescriptions.TypeString

	left, err := b.buildExpression(n.Expression)
	if err != nil {
		return nil, err
	}
	e.Left = left
	b.linkChildren(e, left)

	for _, a := range n.Arguments {
		arg, err := b.buildExpression(a)
		if err != nil {
			return nil, err
		}
		e.Args = append(e.Args, arg)
		b.linkChildren(e, arg)
	}
	e.Source = b.slice(e.Range)
	return e, nil
}
