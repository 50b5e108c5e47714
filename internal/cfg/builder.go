package cfg

import (
	"github.com/solidity-ir/engine/internal/ir"
	"github.com/solidity-ir/engine/internal/resolver"
)

// Build constructs the CFG for a FunctionDefinition or
// ModifierDefinition (fn.Kind ∈ {KindFunctionDefinition,
// KindModifierDefinition}), per spec.md §4.6's per-statement
// construction rules. fn must be implemented (fn.Body != nil);
// callers check Implemented before calling Build.
func Build(fn *ir.Declaration) *CFG {
	b := newBuilder(fn)
	b.current = b.newBlock("body")
	b.addEdge(b.cfg.Start, Always, b.current, nil)
	if body, ok := fn.Body.(*ir.Statement); ok && body != nil {
		b.buildSolidityStatement(body)
	}
	b.fallthroughTo(b.cfg.SuccessEnd)
	normalize(b.cfg)
	return b.cfg
}

// BuildYulFunction constructs the CFG for a Yul FunctionDefinition
// (y.Kind == KindYulFunctionDefinition).
func BuildYulFunction(y *ir.YulNode) *CFG {
	b := newBuilder(y)
	b.current = b.newBlock("body")
	b.addEdge(b.cfg.Start, Always, b.current, nil)
	if y.Body != nil {
		b.buildYulStatement(y.Body)
	}
	b.fallthroughTo(b.cfg.SuccessEnd)
	normalize(b.cfg)
	return b.cfg
}

// loopCtx records the two targets spec.md §4.6 names for break/continue
// inside whichever loop is innermost at construction time.
type loopCtx struct {
	next     *Block // Break target: the loop's continuation.
	continueTo *Block // Continue target: loop_post (for) or the condition block (while/do-while).
}

type builder struct {
	cfg       *CFG
	current   *Block
	loopStack []loopCtx
}

func newBuilder(fn ir.Any) *builder {
	c := &CFG{
		Function:  fn,
		stmtBlock: make(map[ir.Any]*Block),
	}
	b := &builder{cfg: c}
	c.Start = b.newBlock("entry")
	c.SuccessEnd = b.newBlock("success")
	c.RevertEnd = b.newBlock("revert")
	return b
}

func (b *builder) newBlock(comment string) *Block {
	blk := &Block{Index: len(b.cfg.Blocks), Comment: comment}
	b.cfg.Blocks = append(b.cfg.Blocks, blk)
	return blk
}

func (b *builder) addEdge(from *Block, cond Condition, to *Block, expr ir.Any) {
	from.addOut(&Edge{Condition: cond, Expression: expr, To: to})
}

// fallthroughTo adds an Always edge from the current block to to,
// unless current already has an outgoing edge (meaning the block was
// already terminated by a control statement, return, revert, break,
// or continue).
func (b *builder) fallthroughTo(to *Block) {
	if len(b.current.Out) == 0 {
		b.addEdge(b.current, Always, to, nil)
	}
}

func (b *builder) index(stmt ir.Any) {
	b.cfg.stmtBlock[stmt] = b.current
	b.current.Statements = append(b.current.Statements, stmt)
}

// indexControl records stmt as occupying blk without adding it to
// blk's straight-line Statements list — used for the control
// statements (If/For/While/DoWhile/Try and their Yul equivalents)
// that terminate a block via Control rather than sit in its body.
func (b *builder) indexControl(stmt ir.Any, blk *Block) {
	b.cfg.stmtBlock[stmt] = blk
}

func (b *builder) pushLoop(l loopCtx) { b.loopStack = append(b.loopStack, l) }
func (b *builder) popLoop()           { b.loopStack = b.loopStack[:len(b.loopStack)-1] }
func (b *builder) topLoop() loopCtx   { return b.loopStack[len(b.loopStack)-1] }

// unreachableContinuation mints a fresh, edgeless block and makes it
// current, so that any source text following a statement that always
// transfers control elsewhere (return, revert, break, continue) has
// somewhere to attach; normalization drops it if it stays empty.
func (b *builder) unreachableContinuation() {
	b.current = b.newBlock("unreachable")
}

func calleeGlobal(e *ir.Expression) (resolver.GlobalSymbol, bool) {
	if e == nil || e.Kind != ir.KindFunctionCall {
		return resolver.GlobalUnknown, false
	}
	callee, ok := e.Left.(*ir.Expression)
	if !ok || callee == nil {
		return resolver.GlobalUnknown, false
	}
	g := resolver.GlobalSymbol(callee.GlobalSymbol)
	if g == resolver.GlobalUnknown {
		return resolver.GlobalUnknown, false
	}
	return g, true
}
