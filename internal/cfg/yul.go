package cfg

import "github.com/solidity-ir/engine/internal/ir"

// buildYulStatement threads one Yul node into b.current, the Yul
// analog of buildSolidityStatement. Shares the same builder (current
// block, loop stack) as the enclosing Solidity function when called
// from an InlineAssembly statement, so a Yul `break`/`continue` only
// ever targets the Yul loop that is actually innermost at that point.
func (b *builder) buildYulStatement(y *ir.YulNode) {
	if y == nil {
		return
	}
	switch y.Kind {
	case ir.KindYulBlock:
		for _, c := range y.Statements {
			if b.current == nil {
				return
			}
			b.buildYulStatement(c)
		}

	case ir.KindYulIf:
		b.buildYulIf(y)

	case ir.KindYulForLoop:
		b.buildYulFor(y)

	case ir.KindYulSwitch:
		b.buildYulSwitch(y)

	case ir.KindYulLeave:
		b.index(y)
		b.addEdge(b.current, Always, b.cfg.SuccessEnd, nil)
		b.unreachableContinuation()

	case ir.KindYulBreak:
		b.index(y)
		loop := b.topLoop()
		b.addEdge(b.current, Always, loop.next, nil)
		cont := b.newBlock("unreachable")
		b.addEdge(b.current, Never, cont, nil)
		b.current = cont

	case ir.KindYulContinue:
		b.index(y)
		loop := b.topLoop()
		b.addEdge(b.current, Always, loop.continueTo, nil)
		b.unreachableContinuation()

	default:
		// YulAssignment, YulVariableDeclaration, YulExpressionStatement,
		// YulFunctionCall-as-statement: straight-line, no control effect.
		b.index(y)
	}
}

func (b *builder) buildYulIf(y *ir.YulNode) {
	entry := b.current
	entry.Control = y
	b.indexControl(y, entry)

	trueBlk := b.newBlock("yulif.true")
	cont := b.newBlock("yulif.end")
	b.addEdge(entry, IsTrue, trueBlk, nil)
	b.addEdge(entry, IsFalse, cont, nil)

	b.current = trueBlk
	b.buildYulStatement(y.Body)
	b.fallthroughTo(cont)

	b.current = cont
}

func (b *builder) buildYulFor(y *ir.YulNode) {
	if y.Pre != nil {
		b.buildYulStatement(y.Pre)
	}

	condBlk := b.newBlock("yulfor.cond")
	b.fallthroughTo(condBlk)
	condBlk.Control = y
	b.indexControl(y, condBlk)
	b.current = condBlk

	bodyBlk := b.newBlock("yulfor.body")
	next := b.newBlock("yulfor.end")
	if y.Condition != nil {
		b.addEdge(condBlk, IsTrue, bodyBlk, nil)
		b.addEdge(condBlk, IsFalse, next, nil)
	} else {
		b.addEdge(condBlk, Always, bodyBlk, nil)
	}

	postBlk := b.newBlock("yulfor.post")
	if y.Post != nil {
		b.current = postBlk
		b.buildYulStatement(y.Post)
	}

	b.pushLoop(loopCtx{next: next, continueTo: postBlk})
	b.current = bodyBlk
	b.buildYulStatement(y.Body)
	b.fallthroughTo(postBlk)
	b.popLoop()

	b.addEdge(postBlk, Always, condBlk, nil)
	b.current = next
}

// buildYulSwitch implements spec.md §4.6: one SWITCH_MATCHED edge per
// case (carrying the case literal), and a SWITCH_DEFAULT edge either
// to the default clause's block or straight to the continuation if
// no default clause is present.
func (b *builder) buildYulSwitch(y *ir.YulNode) {
	entry := b.current
	entry.Control = y
	b.indexControl(y, entry)
	cont := b.newBlock("yulswitch.end")

	hasDefault := false
	for _, c := range y.Cases {
		blk := b.newBlock("yulcase")
		b.current = blk
		b.buildYulStatement(c.Body)
		b.fallthroughTo(cont)

		if c.IsDefault {
			hasDefault = true
			b.addEdge(entry, SwitchDefault, blk, nil)
		} else {
			b.addEdge(entry, SwitchMatched, blk, c.CaseValue)
		}
	}
	if !hasDefault {
		b.addEdge(entry, SwitchDefault, cont, nil)
	}

	b.current = cont
}
