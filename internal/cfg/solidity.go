package cfg

import (
	"github.com/solidity-ir/engine/internal/ir"
	"github.com/solidity-ir/engine/internal/resolver"
)

// buildSolidityStatement threads one Solidity statement into b.current
// per the per-kind rules spec.md §4.6 lists. It leaves b.current
// pointing at whichever block subsequent sibling statements should be
// appended to.
func (b *builder) buildSolidityStatement(s *ir.Statement) {
	if s == nil {
		return
	}
	switch s.Kind {
	case ir.KindBlock, ir.KindUncheckedBlock:
		for _, c := range s.Statements {
			if b.current == nil {
				return
			}
			b.buildSolidityStatement(c.(*ir.Statement))
		}

	case ir.KindIfStatement:
		b.buildIf(s)

	case ir.KindForStatement:
		b.buildFor(s)

	case ir.KindWhileStatement:
		b.buildWhile(s)

	case ir.KindDoWhileStatement:
		b.buildDoWhile(s)

	case ir.KindReturn:
		b.index(s)
		b.addEdge(b.current, Always, b.cfg.SuccessEnd, nil)
		b.unreachableContinuation()

	case ir.KindRevertStatement:
		b.index(s)
		b.addEdge(b.current, Always, b.cfg.RevertEnd, nil)
		b.unreachableContinuation()

	case ir.KindEmitStatement, ir.KindPlaceholderStatement,
		ir.KindVariableDeclarationStatement:
		b.index(s)

	case ir.KindInlineAssembly:
		b.buildInlineAssembly(s)

	case ir.KindBreak:
		b.index(s)
		loop := b.topLoop()
		b.addEdge(b.current, Always, loop.next, nil)
		cont := b.newBlock("unreachable")
		b.addEdge(b.current, Never, cont, nil)
		b.current = cont

	case ir.KindContinue:
		b.index(s)
		loop := b.topLoop()
		b.addEdge(b.current, Always, loop.continueTo, nil)
		b.unreachableContinuation()

	case ir.KindTryStatement:
		b.buildTry(s)

	case ir.KindExpressionStatement:
		b.buildExpressionStatement(s)

	default:
		b.index(s)
	}
}

// buildExpressionStatement implements spec.md §4.6's special cases for
// require/assert (true → next, false → revert_end) and bare revert(…)
// calls (always → revert_end).
func (b *builder) buildExpressionStatement(s *ir.Statement) {
	b.index(s)
	call, ok := s.Expression.(*ir.Expression)
	if !ok || call == nil {
		return
	}
	g, ok := calleeGlobal(call)
	if !ok {
		return
	}
	switch g {
	case resolver.GlobalRequire, resolver.GlobalAssert:
		next := b.newBlock("")
		b.addEdge(b.current, IsTrue, next, nil)
		b.addEdge(b.current, IsFalse, b.cfg.RevertEnd, nil)
		b.current = next
	case resolver.GlobalRevert:
		b.addEdge(b.current, Always, b.cfg.RevertEnd, nil)
		b.unreachableContinuation()
	}
}

func (b *builder) buildIf(s *ir.Statement) {
	entry := b.current
	entry.Control = s
	b.indexControl(s, entry)
	trueBlk := b.newBlock("if.true")
	cont := b.newBlock("if.end")

	if s.FalseBody != nil {
		falseBlk := b.newBlock("if.false")
		b.addEdge(entry, IsTrue, trueBlk, nil)
		b.addEdge(entry, IsFalse, falseBlk, nil)

		b.current = trueBlk
		b.buildSolidityStatement(s.TrueBody.(*ir.Statement))
		b.fallthroughTo(cont)

		b.current = falseBlk
		b.buildSolidityStatement(s.FalseBody.(*ir.Statement))
		b.fallthroughTo(cont)
	} else {
		b.addEdge(entry, IsTrue, trueBlk, nil)
		b.addEdge(entry, IsFalse, cont, nil)

		b.current = trueBlk
		b.buildSolidityStatement(s.TrueBody.(*ir.Statement))
		b.fallthroughTo(cont)
	}

	b.current = cont
}

func (b *builder) buildFor(s *ir.Statement) {
	if s.Init != nil {
		b.buildSolidityStatement(s.Init.(*ir.Statement))
	}

	condBlk := b.newBlock("for.cond")
	b.fallthroughTo(condBlk)
	condBlk.Control = s
	b.indexControl(s, condBlk)
	b.current = condBlk

	bodyBlk := b.newBlock("for.body")
	next := b.newBlock("for.end")
	if s.Condition != nil {
		b.addEdge(condBlk, IsTrue, bodyBlk, nil)
		b.addEdge(condBlk, IsFalse, next, nil)
	} else {
		b.addEdge(condBlk, Always, bodyBlk, nil)
	}

	postBlk := b.newBlock("for.post")
	if s.Loop != nil {
		b.current = postBlk
		b.buildSolidityStatement(s.Loop.(*ir.Statement))
	}

	b.pushLoop(loopCtx{next: next, continueTo: postBlk})
	b.current = bodyBlk
	if body, ok := s.Body.(*ir.Statement); ok {
		b.buildSolidityStatement(body)
	}
	b.fallthroughTo(postBlk)
	b.popLoop()

	b.addEdge(postBlk, Always, condBlk, nil)
	b.current = next
}

func (b *builder) buildWhile(s *ir.Statement) {
	condBlk := b.newBlock("while.cond")
	b.fallthroughTo(condBlk)
	condBlk.Control = s
	b.indexControl(s, condBlk)
	b.current = condBlk

	bodyBlk := b.newBlock("while.body")
	next := b.newBlock("while.end")
	b.addEdge(condBlk, IsTrue, bodyBlk, nil)
	b.addEdge(condBlk, IsFalse, next, nil)

	b.pushLoop(loopCtx{next: next, continueTo: condBlk})
	b.current = bodyBlk
	if body, ok := s.Body.(*ir.Statement); ok {
		b.buildSolidityStatement(body)
	}
	b.fallthroughTo(condBlk)
	b.popLoop()

	b.current = next
}

func (b *builder) buildDoWhile(s *ir.Statement) {
	bodyBlk := b.newBlock("dowhile.body")
	b.fallthroughTo(bodyBlk)

	condBlk := b.newBlock("dowhile.cond")
	condBlk.Control = s
	b.indexControl(s, condBlk)
	next := b.newBlock("dowhile.end")

	b.pushLoop(loopCtx{next: next, continueTo: condBlk})
	b.current = bodyBlk
	if body, ok := s.Body.(*ir.Statement); ok {
		b.buildSolidityStatement(body)
	}
	b.fallthroughTo(condBlk)
	b.popLoop()

	b.current = condBlk
	b.addEdge(condBlk, IsTrue, bodyBlk, nil)
	b.addEdge(condBlk, IsFalse, next, nil)

	b.current = next
}

func (b *builder) buildTry(s *ir.Statement) {
	entry := b.current
	entry.Control = s
	b.indexControl(s, entry)
	cont := b.newBlock("try.end")

	if len(s.Clauses) == 0 {
		b.current = cont
		return
	}

	success := s.Clauses[0]
	succBlk := b.buildClause(success)
	b.addEdge(entry, TrySucceeded, succBlk, nil)
	b.fallthroughTo(cont)

	var catchAll *ir.TryClause
	for _, c := range s.Clauses[1:] {
		blk := b.buildClause(c)
		switch c.ErrorName {
		case "Error":
			b.addEdge(entry, TryReverted, blk, nil)
		case "Panic":
			b.addEdge(entry, TryPanicked, blk, nil)
		default:
			catchAll = c
			b.addEdge(entry, TryFailed, blk, nil)
		}
		b.fallthroughTo(cont)
	}
	if catchAll == nil {
		b.addEdge(entry, TryFailed, b.cfg.RevertEnd, nil)
	}

	b.current = cont
}

// buildClause builds one try/catch clause's block body starting from a
// fresh block, returning that starting block (the caller wires the
// entry edge to it); b.current is left at wherever the clause's own
// control flow ends up, ready for fallthroughTo(cont).
func (b *builder) buildClause(c *ir.TryClause) *Block {
	blk := b.newBlock("catch")
	b.current = blk
	if block, ok := c.Block.(*ir.Statement); ok {
		b.buildSolidityStatement(block)
	}
	return blk
}

func (b *builder) buildInlineAssembly(s *ir.Statement) {
	b.index(s)
	if s.YulBody != nil {
		b.buildYulStatement(s.YulBody)
	}
}
