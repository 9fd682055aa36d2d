package dcc

// Flags is the shared bitfield used by both opcode-table entries and I-code
// records. A handful of bits only make sense on one side (e.g. Switch and
// Target are never set by the opcode table itself) but keeping a single
// type avoids a parallel translation layer between "table flags" and
// "icode flags".
type Flags uint32

const (
	// FlagB marks a byte-sized (8-bit) operand; shifts a decoded
	// word-register index into the matching byte-register group.
	FlagB Flags = 1 << iota
	// FlagToReg flips which side of an r/m pair is the destination.
	FlagToReg
	// FlagNSP disqualifies SP operands from high-level translation,
	// unless the immed fan-out clears it again for ADD/SUB.
	FlagNSP
	// FlagSExt sign-extends an 8-bit immediate to 16 bits.
	FlagSExt
	// FlagNoSrc marks an instruction with no source operand.
	FlagNoSrc
	// FlagNotHLL disqualifies the instruction from high-level translation.
	FlagNotHLL
	// FlagImOps marks implicit operands (string instructions).
	FlagImOps
	// FlagWordOff marks a 16-bit direct memory offset.
	FlagWordOff
	// FlagSegImmed marks an immediate word that is really a relocated
	// segment reference.
	FlagSegImmed
	// FlagI marks the presence of an immediate operand.
	FlagI
	// FlagNoOps marks an instruction with no explicit operands at all.
	FlagNoOps
	// FlagOp386 marks an opcode byte that only exists on 80386+.
	FlagOp386
	// FlagFloatOp tags ESC (floating point emulation) instructions.
	FlagFloatOp
	// FlagImDst marks an implicit destination operand.
	FlagImDst
	// FlagSrcB marks a byte-sized source independent of FlagB.
	FlagSrcB
	// FlagImTmpDst marks DIV/IDIV's implicit temporary destination.
	FlagImTmpDst
	// FlagSwitch marks a jump through a case/switch table.
	FlagSwitch
	// FlagNoLabel marks a conditional or unconditional jump whose target
	// could not be resolved to a label (jump into nowhere).
	FlagNoLabel
	// FlagTarget marks an I-code that is the target of some jump (a join
	// point).
	FlagTarget
	// FlagCase marks an I-code that is a case-table entry target.
	FlagCase
	// FlagNoCode marks a logically removed I-code; downstream passes
	// must skip it while its index stays stable.
	FlagNoCode
	// FlagImpure marks an I-code whose memory operand overlaps known
	// code (self-modifying or mixed code/data).
	FlagImpure
	// FlagTerminates marks an instruction (or procedure) that never
	// returns control, e.g. a call to exit/abort.
	FlagTerminates
	// FlagHasCase marks a Function that contains a switch dispatch.
	FlagHasCase
	// FlagRegArgs marks a Function discovered to take register
	// arguments.
	FlagRegArgs
	// FlagSymUse marks an I-code that uses a symbol-table memory
	// reference.
	FlagSymUse
	// FlagSymDef marks an I-code that defines a symbol-table memory
	// reference.
	FlagSymDef
	// FlagArgConsumed marks an assignment or PUSH I-code whose defined
	// register (or pushed value) was promoted into a call's actual
	// argument list, so later passes see it as consumed rather than
	// dead.
	FlagArgConsumed
)

// Has reports whether all bits in mask are set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Any reports whether any bit in mask is set.
func (f Flags) Any(mask Flags) bool { return f&mask != 0 }

// Eflags models the 8086 condition-code bits that an I-code can define or
// use: Sign, Zero, Carry, Direction.
type Eflags uint8

const (
	EflagS Eflags = 1 << iota
	EflagZ
	EflagC
	EflagD
)

// SZC is the common "sign, zero, carry" def/use group shared by most
// arithmetic and logical instructions.
const SZC = EflagS | EflagZ | EflagC
