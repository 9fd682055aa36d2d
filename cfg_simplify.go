package dcc

// SimplifyCFG runs the three-pass graph compaction: jump elision
// (collapse a block that is nothing but an unconditional jump into its
// target), fall-through merging (absorb a block into its sole
// predecessor when that predecessor has no other successor), and DFS
// (re)numbering, which also drops any block the DFS never reaches from
// f.BBs.
func SimplifyCFG(f *Function) {
	rmJMP(f)
	mergeFallThrough(f)
	dfsNumbering(f)
}

// rmJMP retargets every edge that points at a block containing nothing
// but an unconditional jump directly at that jump's own target,
// following chains of such blocks. A visited set breaks cycles (a JMP
// block that, through some chain, jumps back to itself); a chain that
// turns out to be all pure jumps demotes the head block to NowhereNode,
// since it can never reach real code.
func rmJMP(f *Function) {
	isPureJump := func(bb *BB) bool {
		return bb.Kind == OneBranch && bb.Start == bb.Stop && len(bb.OutEdges) == 1
	}

	resolve := func(start *BB) *BB {
		visited := map[*BB]bool{}
		cur := start
		for isPureJump(cur) && !visited[cur] {
			visited[cur] = true
			cur = cur.OutEdges[0]
		}
		return cur
	}

	for _, bb := range f.BBs {
		switch bb.Kind {
		case OneBranch, TwoBranch, LoopNode:
		default:
			continue
		}
		// Out-edge order is [fallthrough, taken] on a conditional block
		// and [taken] on an unconditional one; only the taken edge's
		// retarget may rewrite the jump instruction's own immediate.
		takenIdx := 0
		if bb.Kind != OneBranch {
			takenIdx = 1
		}
		for i, succ := range bb.OutEdges {
			if !isPureJump(succ) {
				continue
			}
			final := resolve(succ)
			if isPureJump(final) {
				// The chain never reaches real code: a cycle of pure
				// jumps. The head block goes nowhere and sheds its edges.
				for _, out := range bb.OutEdges {
					removeInEdge(out, bb)
					orphanIfDead(f, out)
				}
				bb.OutEdges = nil
				bb.Kind = NowhereNode
				break
			}
			bb.OutEdges[i] = final
			removeInEdge(succ, bb)
			final.InEdges = append(final.InEdges, bb)
			orphanIfDead(f, succ)

			if i != takenIdx {
				continue
			}
			if last := lastValidIcode(f, bb); last != nil {
				ic := f.ICode.Get(*last)
				if ic.Flags.Any(FlagI) {
					f.ICode.SetImmediateOp(*last, final.Label)
				}
			}
		}
	}
}

// orphanIfDead marks bb elided once its last predecessor has been
// redirected elsewhere (InEdges empty): its whole I-code range is
// invalidated and the same check cascades into whichever BB it used to
// fall through to, since that successor may now be down to zero
// predecessors itself. The FlagNoCode guard on bb.Flags also doubles as
// a visited check, since a pure-jump chain can revisit a node through
// more than one predecessor.
func orphanIfDead(f *Function, bb *BB) {
	if len(bb.InEdges) != 0 || bb.Flags.Any(FlagNoCode) {
		return
	}
	bb.Flags |= FlagNoCode
	for i := bb.Start; i <= bb.Stop; i++ {
		f.ICode.SetLlInvalid(i, true)
	}
	for _, out := range bb.OutEdges {
		removeInEdge(out, bb)
		orphanIfDead(f, out)
	}
	bb.OutEdges = nil
}

func removeInEdge(bb, pred *BB) {
	for i, p := range bb.InEdges {
		if p == pred {
			bb.InEdges = append(bb.InEdges[:i], bb.InEdges[i+1:]...)
			return
		}
	}
}

// mergeFallThrough absorbs a block into its unique predecessor when that
// predecessor's only successor is this block: the two execute as one
// straight line, so there is no reason to keep them as separate CFG
// nodes. The pass repeats until a full scan makes no further merge,
// since merging can make a newly-extended block itself eligible to
// absorb its own successor in turn.
func mergeFallThrough(f *Function) {
	for {
		merged := false
		for _, bb := range f.BBs {
			if bb.Kind != FallNode && bb.Kind != OneBranch {
				continue
			}
			if len(bb.OutEdges) != 1 {
				continue
			}
			succ := bb.OutEdges[0]
			if succ == bb || succ == f.Cfg || len(succ.InEdges) != 1 {
				continue
			}

			if bb.Kind == OneBranch {
				if last := lastValidIcode(f, bb); last != nil {
					f.ICode.SetLlInvalid(*last, true)
				}
			}

			bb.Stop = succ.Stop
			bb.Kind = succ.Kind
			bb.OutEdges = succ.OutEdges
			for _, out := range bb.OutEdges {
				removeInEdge(out, succ)
				out.InEdges = append(out.InEdges, bb)
			}
			succ.Flags |= FlagNoCode
			f.BBs = removeBB(f.BBs, succ)
			merged = true
			break
		}
		if !merged {
			return
		}
	}
}

func removeBB(bbs []*BB, target *BB) []*BB {
	out := bbs[:0]
	for _, bb := range bbs {
		if bb != target {
			out = append(out, bb)
		}
	}
	return out
}

// dfsNumbering walks the CFG from its entry block and assigns each
// reached block a first-visit number ascending from 0 and a last-visit
// number descending from the reachable-block count minus one, so the
// entry ends up with dfsLast 0 and f.DfsLast lists blocks in reverse
// postorder. Blocks the walk never reaches are dropped from f.BBs and
// f.DfsLast — that is how dead code left over after jump elision and
// merging disappears from the graph the rest of analysis sees.
func dfsNumbering(f *Function) {
	if f.Cfg == nil {
		return
	}
	for _, bb := range f.BBs {
		bb.traversed = false
	}
	var postorder []*BB
	first := 0

	var visit func(bb *BB)
	visit = func(bb *BB) {
		if bb.traversed {
			return
		}
		bb.traversed = true
		bb.dfsFirst = first
		first++
		for _, succ := range bb.OutEdges {
			visit(succ)
		}
		postorder = append(postorder, bb)
	}
	visit(f.Cfg)

	n := len(postorder)
	f.DfsLast = make([]*BB, n)
	for i, bb := range postorder {
		bb.dfsLast = n - 1 - i
		f.DfsLast[bb.dfsLast] = bb
	}

	live := f.BBs[:0]
	for _, bb := range f.BBs {
		if bb.traversed {
			live = append(live, bb)
		}
	}
	f.BBs = live
}
