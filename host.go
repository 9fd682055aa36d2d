package dcc

// SymbolTable is the host-supplied collaborator this module consults
// when it needs to know whether a byte range of the image is known code,
// and to resolve a symbol-table index to its address and size. The host
// owns symbol discovery end to end; this module only ever reads it.
type SymbolTable interface {
	// Symbol returns the address and byte size of the idx'th symbol.
	Symbol(idx int) (addr uint32, size uint32, ok bool)
	// IsCode reports whether the byte at the given absolute image offset
	// is known to be part of an instruction.
	IsCode(addr uint32) bool
}

// ProcSet is the host-supplied, already-discovered set of procedures this
// module builds call graphs and recovers arguments over. Procedure
// discovery itself (deciding where a Function starts and ends) is a host
// concern; this module consumes the result.
type ProcSet interface {
	// Functions returns every discovered procedure, in discovery order.
	Functions() []*Function
	// FunctionAt resolves an absolute call-target address to the
	// Function starting there, if one was discovered.
	FunctionAt(addr uint32) (*Function, bool)
}

// IndentStr returns level*4 spaces, the call-graph and I-code printers'
// shared indentation unit.
func IndentStr(level int) string {
	if level <= 0 {
		return ""
	}
	b := make([]byte, level*4)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
