package dcc

import "sort"

func isConditionalJump(op Icode) bool {
	switch op {
	case IJO, IJNO, IJB, IJAE, IJE, IJNE, IJBE, IJA, IJS, IJNS, IJP, IJNP,
		IJL, IJGE, IJLE, IJG, ILOOP, ILOOPE, ILOOPNE, IJCXZ:
		return true
	}
	return false
}

func isLoopJump(op Icode) bool {
	return op == ILOOP || op == ILOOPE || op == ILOOPNE
}

func isUnconditionalJump(op Icode) bool {
	return op == IJMP || op == IJMPF
}

func isCall(op Icode) bool {
	return op == ICALL || op == ICALLF
}

func isReturn(op Icode) bool {
	return op == IRET || op == IRETF || op == IIRET
}

// CreateCFG partitions f's decoded I-codes into basic blocks and wires
// them into a control-flow graph rooted at f.Cfg. It is a two-pass
// leader-based partitioning: find every block boundary first, then
// connect blocks according to each block's terminating instruction,
// which keeps block indices stable instead of splitting nodes as new
// jump targets turn up mid-scan.
func CreateCFG(f *Function) {
	icodes := f.ICode.All()
	n := len(icodes)
	if n == 0 {
		return
	}

	labelToIndex := make(map[uint32]int, n)
	for i, ic := range icodes {
		labelToIndex[ic.Label] = i
	}

	leaders := map[int]bool{0: true}
	for i, ic := range icodes {
		if !f.ICode.IsValid(i) {
			continue
		}
		// A join point (jump or case-table target) always starts a block,
		// even when nothing in this procedure's own I-code jumps to it.
		if ic.Flags.Any(FlagTarget | FlagCase) {
			leaders[i] = true
		}
		switch {
		case ic.Flags.Any(FlagSwitch):
			if i+1 < n {
				leaders[i+1] = true
			}
			for _, target := range ic.CaseTbl.Entries {
				if idx, ok := labelToIndex[target]; ok {
					leaders[idx] = true
				}
			}
		case isConditionalJump(ic.Opcode), isUnconditionalJump(ic.Opcode):
			if i+1 < n {
				leaders[i+1] = true
			}
			if ic.Flags.Any(FlagI) {
				if idx, ok := labelToIndex[ic.Src.Immed]; ok {
					leaders[idx] = true
				}
			}
		case isCall(ic.Opcode), isReturn(ic.Opcode):
			if i+1 < n {
				leaders[i+1] = true
			}
		}
	}

	sorted := make([]int, 0, len(leaders))
	for i := range leaders {
		sorted = append(sorted, i)
	}
	sort.Ints(sorted)

	indexToBB := make(map[int]*BB, len(sorted))
	for bi, start := range sorted {
		stop := n - 1
		if bi+1 < len(sorted) {
			stop = sorted[bi+1] - 1
		}
		bb := newBB(start, stop, FallNode)
		bb.Label = icodes[start].Label
		f.BBs = append(f.BBs, bb)
		indexToBB[start] = bb
	}

	for bi, bb := range f.BBs {
		var nextBB *BB
		if bi+1 < len(f.BBs) {
			nextBB = f.BBs[bi+1]
		}
		term := lastValidIcode(f, bb)
		if term == nil {
			bb.Kind = FallNode
			if nextBB != nil {
				bb.addEdge(nextBB)
			} else {
				bb.Kind = NowhereNode
			}
			continue
		}
		ic := &icodes[*term]

		if ic.Flags.Any(FlagTerminates) {
			bb.Kind = TerminateNode
			continue
		}

		switch {
		case ic.Flags.Any(FlagSwitch):
			bb.Kind = MultiBranch
			f.Flags |= FlagHasCase
			for _, tgt := range ic.CaseTbl.Entries {
				if idx, ok := labelToIndex[tgt]; ok {
					if target, ok2 := indexToBB[idx]; ok2 {
						bb.addEdge(target)
						continue
					}
				}
				ic.Flags |= FlagNoLabel
			}

		case isConditionalJump(ic.Opcode):
			bb.Kind = TwoBranch
			if isLoopJump(ic.Opcode) {
				bb.Kind = LoopNode
			}
			if nextBB != nil {
				bb.addEdge(nextBB)
			}
			if target, ok := resolveTarget(ic, labelToIndex, indexToBB); ok {
				bb.addEdge(target)
			} else {
				ic.Flags |= FlagNoLabel
			}

		case isUnconditionalJump(ic.Opcode):
			bb.Kind = OneBranch
			if target, ok := resolveTarget(ic, labelToIndex, indexToBB); ok {
				bb.addEdge(target)
			} else {
				bb.Kind = NowhereNode
				ic.Flags |= FlagNoLabel
			}

		case isCall(ic.Opcode):
			// A call to a procedure that never returns keeps its CallNode
			// kind but loses the fall-through edge.
			bb.Kind = CallNode
			if ic.Src.Proc != nil && ic.Src.Proc.Terminates() {
				break
			}
			if nextBB != nil {
				bb.addEdge(nextBB)
			}

		case isReturn(ic.Opcode):
			bb.Kind = ReturnNode

		default:
			bb.Kind = FallNode
			if nextBB != nil {
				bb.addEdge(nextBB)
			} else {
				// Falling off the end of the procedure with no
				// terminator at all: the block goes nowhere.
				bb.Kind = NowhereNode
			}
		}
	}

	f.Cfg = f.BBs[0]
}

func lastValidIcode(f *Function, bb *BB) *int {
	for i := bb.Stop; i >= bb.Start; i-- {
		if f.ICode.IsValid(i) {
			idx := i
			return &idx
		}
	}
	return nil
}

func resolveTarget(ic *ICode, labelToIndex map[uint32]int, indexToBB map[int]*BB) (*BB, bool) {
	if !ic.Flags.Any(FlagI) {
		return nil, false
	}
	idx, ok := labelToIndex[ic.Src.Immed]
	if !ok {
		return nil, false
	}
	bb, ok := indexToBB[idx]
	return bb, ok
}
