package dcc

// LLOperand is one side (source or destination) of a low-level I-code
// instruction: the segment it resolves in, an optional explicit segment
// override prefix, a base/index register (or indexed-addressing code, or
// RegNone for a pure immediate/implicit operand), a signed displacement,
// and an immediate value.
//
// A single struct covers register operands, memory operands and
// immediates instead of a tagged union, since every field is cheap and
// the decoder and its consumers read whichever subset applies for the
// operand kind at hand; the immediate is one concrete value plus a
// has-immediate bit.
type LLOperand struct {
	Seg      Reg
	SegOver  Reg
	Regi     Reg
	Off      int16
	Immed    uint32
	HasImmed bool

	// Proc is the resolved call target for a CALL/CALLF operand, set by
	// the host once procedure discovery has matched the immediate
	// address to a Function. Nil until then, and always nil for
	// non-call operands.
	Proc *Function
}

// SetImmediateOp records v as this operand's immediate value (jump
// target, call target, or literal constant). Both the decoder and the
// CFG simplifier's jump retargeting write immediates through it.
func (o *LLOperand) SetImmediateOp(v uint32) {
	o.Immed = v
	o.HasImmed = true
}

// IsReg reports whether the operand names a plain (non-indexed) register.
func (o LLOperand) IsReg() bool {
	return o.Regi != RegNone && !o.Regi.IsIndexed()
}

// IsMem reports whether the operand is a memory reference: either an
// indexed addressing mode or a direct (word-offset, RegNone base) memory
// operand.
func (o LLOperand) IsMem(flags Flags) bool {
	return o.Regi.IsIndexed() || (o.Regi == RegNone && flags.Any(FlagWordOff))
}
