package dcc

// Icode names a decoded mnemonic. IZERO is both the zero value and the
// decoder's "invalid opcode" sentinel: a table row whose opcode is still
// IZERO after both handlers run did not decode to anything.
type Icode int

const (
	IZERO Icode = iota

	IADD
	IOR
	IADC
	ISBB
	IAND
	ISUB
	IXOR
	ICMP
	IPUSH
	IPOP
	IDAA
	IDAS
	IAAA
	IAAS
	IINC
	IDEC
	IPUSHA
	IPOPA
	IBOUND
	IIMUL

	IINS
	IINSREP
	IOUTS
	IOUTSREP

	IJO
	IJNO
	IJB
	IJAE
	IJE
	IJNE
	IJBE
	IJA
	IJS
	IJNS
	IJP
	IJNP
	IJL
	IJGE
	IJLE
	IJG

	ITEST
	IXCHG
	IMOV
	ILEA
	INOP
	IXLAT
	ISIGNEX
	ICALLF
	IWAIT
	IPUSHF
	IPOPF
	ISAHF
	ILAHF

	IMOVS
	IMOVSREP
	ICMPS
	ICMPSREPNE
	ICMPSREPE
	ISTOS
	ISTOSREP
	ILODS
	ILODSREP
	ISCAS
	ISCASREPNE
	ISCASREPE

	IRET
	ILES
	ILDS
	IENTER
	ILEAVE
	IRETF
	IINT
	IINTO
	IIRET
	IAAM
	IAAD
	ILOOPNE
	ILOOPE
	ILOOP
	IJCXZ
	IIN
	IOUT
	ICALL
	IJMP
	IJMPF
	ILOCK
	IREPNE
	IREPE
	IHLT
	ICMC
	ICLC
	ISTC
	ICLI
	ISTI
	ICLD
	ISTD
	IROL
	IROR
	IRCL
	IRCR
	ISHL
	ISHR
	ISAR
	INOT
	INEG
	IMUL
	IDIV
	IIDIV
	IESC

	// isegPrefix is not a real mnemonic; it marks a segment-override
	// prefix byte (26/2E/36/3E) so Scan's prefix loop recognizes it the
	// same way it recognizes IREPE/IREPNE.
	isegPrefix
)

// CaseTable holds the resolved jump targets of a switch dispatch (built
// by a later pass from a jump table the decoder itself cannot see; the
// decoder sets neither the table nor FlagSwitch). Entries is empty until
// that pass runs.
type CaseTable struct {
	Entries []uint32
}

// ICode is one decoded instruction: opcode, both operands, the flags the
// opcode table and decoder accumulated on it, its def/use condition-code
// masks, its length in bytes, and its absolute image offset (Label).
// CaseTbl holds resolved switch targets; SymIdx ties a memory-referencing
// instruction to its symbol-table entry (see Function.MarkImpure).
type ICode struct {
	Opcode   Icode
	Src      LLOperand
	Dst      LLOperand
	Flags    Flags
	DefFlags Eflags
	UseFlags Eflags
	NumBytes byte
	Label    uint32

	CaseTbl CaseTable
	SymIdx  int // -1 when this I-code has no associated symbol-table entry

	// Actuals holds the actual-argument list recovered for a call
	// I-code (empty on every other I-code), built by RecoverArgs from
	// the register writes and PUSHes live into the call.
	Actuals []StkSym
}

// ICodeBuffer is the decode output for one procedure: an append-only,
// randomly-indexable sequence of I-codes whose indices never change once
// assigned, even after CFG simplification marks entries FlagNoCode. Later
// passes rewrite flags and operands in place, through the index-based
// setters or the pointer Get returns, so a recorded index is a stable
// address for the lifetime of the procedure.
type ICodeBuffer struct {
	items []ICode
}

// NewICodeBuffer returns an empty buffer with capacity hinted by cap.
func NewICodeBuffer(cap int) *ICodeBuffer {
	return &ICodeBuffer{items: make([]ICode, 0, cap)}
}

// Append adds ic to the end of the buffer and returns its stable index.
func (b *ICodeBuffer) Append(ic ICode) int {
	b.items = append(b.items, ic)
	return len(b.items) - 1
}

// Len returns the number of I-codes, including any flagged FlagNoCode.
func (b *ICodeBuffer) Len() int { return len(b.items) }

// Get returns a pointer to the i'th I-code for in-place mutation.
func (b *ICodeBuffer) Get(i int) *ICode { return &b.items[i] }

// All returns the full underlying slice, not a copy: writes through it
// change the buffer's I-codes.
func (b *ICodeBuffer) All() []ICode { return b.items }

// SetLlFlag ORs mask into the i'th I-code's flags.
func (b *ICodeBuffer) SetLlFlag(i int, mask Flags) { b.items[i].Flags |= mask }

// ClearLlFlag clears mask from the i'th I-code's flags.
func (b *ICodeBuffer) ClearLlFlag(i int, mask Flags) { b.items[i].Flags &^= mask }

// SetLlInvalid marks or unmarks the i'th I-code FlagNoCode.
func (b *ICodeBuffer) SetLlInvalid(i int, invalid bool) {
	if invalid {
		b.items[i].Flags |= FlagNoCode
	} else {
		b.items[i].Flags &^= FlagNoCode
	}
}

// IsValid reports whether the i'th I-code is still live (not FlagNoCode).
func (b *ICodeBuffer) IsValid(i int) bool { return b.items[i].Flags&FlagNoCode == 0 }

// SetImmediateOp rewrites the i'th I-code's source immediate, used by the
// CFG simplifier to retarget a jump after jump elision.
func (b *ICodeBuffer) SetImmediateOp(i int, v uint32) { b.items[i].Src.SetImmediateOp(v) }
