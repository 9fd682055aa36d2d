package dcc

// Function is one discovered procedure: its decoded instructions, the
// basic-block graph built and simplified over them, its call-graph and
// argument-recovery results, and the flag bitfield that accumulates
// FlagTerminates, FlagRegArgs, FlagImpure and FlagHasCase as analysis
// passes run.
type Function struct {
	Name  string
	Entry uint32
	Flags Flags

	ICode *ICodeBuffer

	// BBs holds every basic block in creation order; Cfg is the entry
	// block. BBs keeps stale nodes until a simplification pass finishes
	// and compacts it down to the reachable blocks.
	BBs []*BB
	Cfg *BB

	// DfsLast maps a block's DFS-last (reverse-postorder) number to the block,
	// filled in by dfsNumbering; its length is the live block count
	// after compaction.
	DfsLast []*BB

	// Frame is this procedure's recovered argument list.
	Frame StkFrame

	// InitRegs is the register snapshot the host observed on entry
	// (e.g. from a known calling convention). Argument recovery does not
	// read it.
	InitRegs map[Reg]bool
}

// NewFunction returns a Function ready for decoding: an empty I-code
// buffer and a clean argument frame.
func NewFunction(name string, entry uint32) *Function {
	return &Function{
		Name:  name,
		Entry: entry,
		ICode: NewICodeBuffer(64),
	}
}

// Terminates reports whether this procedure is known to never return
// (e.g. a wrapper around exit/abort), the test the CFG builder uses to
// decide whether a CALL/CALLF to it falls through.
func (f *Function) Terminates() bool { return f.Flags.Any(FlagTerminates) }

// MarkImpure flags every I-code in f whose SYM_USE/SYM_DEF memory
// reference overlaps a byte range the host's symbol table says is known
// code — self-modifying code, or code and data interleaved. The symbol
// index comes from each I-code's SymIdx field.
func (f *Function) MarkImpure(symtab SymbolTable) {
	for i := range f.ICode.items {
		ic := &f.ICode.items[i]
		if !ic.Flags.Any(FlagSymUse | FlagSymDef) {
			continue
		}
		addr, size, ok := symtab.Symbol(ic.SymIdx)
		if !ok {
			continue
		}
		for b := addr; b < addr+size; b++ {
			if symtab.IsCode(b) {
				ic.Flags |= FlagImpure
				f.Flags |= FlagImpure
				break
			}
		}
	}
}
