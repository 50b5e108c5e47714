package cfg

// normalize applies spec.md §4.6's fixpoint normalization: drop NEVER
// edges; contract empty single-ALWAYS-successor blocks (never the
// start block) by rewiring their inbound edges onto their successor;
// drop empty, inbound-edge-less blocks that are none of
// {start, success-end, revert-end}. Repeats until no further change,
// since a contraction or drop can make a neighboring block eligible.
func normalize(c *CFG) {
	for {
		changed := false

		if dropNeverEdges(c) {
			changed = true
		}
		recomputeInbound(c)

		if contractOneBlock(c) {
			changed = true
			recomputeInbound(c)
		}

		if dropOneDeadBlock(c) {
			changed = true
			recomputeInbound(c)
		}

		if !changed {
			break
		}
	}
	reindex(c)
}

func dropNeverEdges(c *CFG) bool {
	changed := false
	for _, blk := range c.Blocks {
		kept := blk.Out[:0]
		for _, e := range blk.Out {
			if e.Condition == Never {
				changed = true
				continue
			}
			kept = append(kept, e)
		}
		blk.Out = kept
	}
	return changed
}

func recomputeInbound(c *CFG) {
	for _, blk := range c.Blocks {
		blk.in = 0
	}
	for _, blk := range c.Blocks {
		for _, e := range blk.Out {
			e.To.in++
		}
	}
}

// contractOneBlock finds and rewires (at most) one empty block with a
// single ALWAYS successor, other than Start, reporting whether it did
// so. Only one contraction per call keeps the fixpoint loop simple and
// lets recomputeInbound stay accurate between steps.
func contractOneBlock(c *CFG) bool {
	for i, blk := range c.Blocks {
		if blk == c.Start {
			continue
		}
		if !blk.Empty() || len(blk.Out) != 1 || blk.Out[0].Condition != Always {
			continue
		}
		target := blk.Out[0].To
		if target == blk {
			continue // a self-loop would contract into nothing
		}
		rewireInbound(c, blk, target)
		c.Blocks = append(c.Blocks[:i], c.Blocks[i+1:]...)
		return true
	}
	return false
}

// rewireInbound redirects every edge across the whole graph that
// points at old onto new instead.
func rewireInbound(c *CFG, old, repl *Block) {
	for _, blk := range c.Blocks {
		for _, e := range blk.Out {
			if e.To == old {
				e.To = repl
			}
		}
	}
}

// dropOneDeadBlock finds and removes (at most) one empty block with no
// inbound edges that isn't one of the three distinguished blocks.
func dropOneDeadBlock(c *CFG) bool {
	for i, blk := range c.Blocks {
		if blk == c.Start || blk == c.SuccessEnd || blk == c.RevertEnd {
			continue
		}
		if blk.Empty() && blk.in == 0 {
			c.Blocks = append(c.Blocks[:i], c.Blocks[i+1:]...)
			return true
		}
	}
	return false
}

func reindex(c *CFG) {
	for i, blk := range c.Blocks {
		blk.Index = i
	}
}
