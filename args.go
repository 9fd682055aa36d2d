package dcc

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// RecoverArgs walks every call I-code in f and recovers its argument
// list by scanning backward over the contiguous run of I-codes that
// immediately precede the call: register writes still live at the call
// become register arguments (promoteWordArg/promoteLongArg), and PUSHes
// in that same run become stack-passed arguments (newStkArg). Every call
// site is visited, not just those in the entry block. img resolves
// constant actuals passed where a callee expects a string; nil skips
// that rewrite.
func RecoverArgs(f *Function, img *Image) {
	icodes := f.ICode.All()
	for i := range icodes {
		if !f.ICode.IsValid(i) {
			continue
		}
		if !isCall(icodes[i].Opcode) {
			continue
		}
		recoverCallArgs(f, img, i)
	}
}

// recoverCallArgs recovers the argument list of the single call at
// ticode: it scans backward through preceding assignments/PUSHes until
// it hits a join point, another call, a return, or a jump — the boundary
// past which an instruction is no longer unambiguously "live into this
// call" — and promotes what it finds.
func recoverCallArgs(f *Function, img *Image, ticode int) {
	tic := f.ICode.Get(ticode)
	callee := tic.Src.Proc
	far := tic.Opcode == ICALLF

	seen := map[Reg]bool{}
	var lives []int // icode indices of live register defs, closest-to-call first
	stkOff := int16(-2)

	for picode := ticode - 1; picode >= 0; picode-- {
		if !f.ICode.IsValid(picode) {
			continue
		}
		ic := f.ICode.Get(picode)
		if ic.Flags.Any(FlagTarget|FlagCase) ||
			isCall(ic.Opcode) || isReturn(ic.Opcode) ||
			isUnconditionalJump(ic.Opcode) || isConditionalJump(ic.Opcode) {
			break
		}

		if ic.Opcode == IPUSH {
			newStkArg(f, img, ticode, picode, far, callee, stkOff)
			stkOff -= 2
			continue
		}
		if !ic.Dst.IsReg() || seen[ic.Dst.Regi] {
			continue
		}
		seen[ic.Dst.Regi] = true
		if isArgRegister(ic.Dst.Regi) {
			lives = append(lives, picode)
		}
	}

	if callee == nil {
		return
	}

	promoted := false
	for idx := 0; idx < len(lives); idx++ {
		picode := lives[idx]
		pic := f.ICode.Get(picode)
		reg := pic.Dst.Regi

		// DX:AX adjacent live defs are one 32-bit logical argument, not
		// two word arguments.
		if reg == AX && idx+1 < len(lives) {
			if hi := f.ICode.Get(lives[idx+1]); hi.Dst.Regi == DX {
				promoteLongArg(f, ticode, lives[idx+1], picode, callee)
				idx++
				promoted = true
				continue
			}
		}

		promoteWordArg(f, ticode, picode, callee, reg)
		promoted = true
	}
	if promoted {
		callee.Flags |= FlagRegArgs
	}
}

// isArgRegister reports whether r is one of the general-purpose
// registers argument recovery tracks. SP/BP never carry arguments, and
// segment registers are handled separately by newStkArg's segment check.
func isArgRegister(r Reg) bool {
	switch r {
	case AX, BX, CX, DX, SI, DI, AL, CL, DL, BL, AH, CH, DH, BH:
		return true
	default:
		return false
	}
}

func isSegReg(r Reg) bool { return r == ES || r == CS || r == SS || r == DS }

// promoteWordArg ensures callee has a register formal for reg (allocating
// one the first time this register index is seen across any call site),
// emits the matching actual on the call at ticode, and marks the
// defining I-code at picode FlagArgConsumed so later passes recognize the
// value flowed into a parameter rather than being dead.
func promoteWordArg(f *Function, ticode, picode int, callee *Function, reg Reg) {
	formal := ensureRegFormal(callee, reg)
	pic := f.ICode.Get(picode)
	tic := f.ICode.Get(ticode)
	tic.Actuals = append(tic.Actuals, StkSym{
		Name:   formal.Name,
		Type:   formal.Type,
		Size:   formal.Size,
		Reg:    reg,
		Actual: pic.Src,
	})
	pic.Flags |= FlagArgConsumed
}

// promoteLongArg is promoteWordArg's long-pair counterpart: picodeHi and
// picodeLo are the DX and AX defining I-codes respectively.
func promoteLongArg(f *Function, ticode, picodeHi, picodeLo int, callee *Function) {
	formal := ensureLongFormal(callee)
	tic := f.ICode.Get(ticode)
	tic.Actuals = append(tic.Actuals, StkSym{
		Name:   formal.Name,
		Type:   TypeLong,
		Size:   4,
		RegHi:  DX,
		RegLo:  AX,
		Actual: f.ICode.Get(picodeLo).Src,
	})
	f.ICode.Get(picodeHi).Flags |= FlagArgConsumed
	f.ICode.Get(picodeLo).Flags |= FlagArgConsumed
}

// ensureRegFormal returns callee's existing formal for reg, or appends a
// new arg<N> formal the first time reg is seen as an actual for callee.
// Byte-group registers (AL..BH) get a byte formal; everything else gets
// a word formal.
func ensureRegFormal(callee *Function, reg Reg) *StkSym {
	for i := range callee.Frame.Sym {
		if callee.Frame.Sym[i].Reg == reg {
			return &callee.Frame.Sym[i]
		}
	}
	typ, size := TypeWord, 2
	if reg >= AL && reg <= BH {
		typ, size = TypeByte, 1
	}
	sym := StkSym{Name: formalName(callee.Frame.NumArgs), Type: typ, Size: size, Reg: reg}
	callee.Frame.Sym = append(callee.Frame.Sym, sym)
	callee.Frame.NumArgs++
	return &callee.Frame.Sym[len(callee.Frame.Sym)-1]
}

// ensureLongFormal is ensureRegFormal's long-pair counterpart. The
// interned long identifier is represented directly by the RegHi/RegLo
// pair rather than a separate interning table, since DX:AX is the only
// long-pair convention this decoder recognizes.
func ensureLongFormal(callee *Function) *StkSym {
	for i := range callee.Frame.Sym {
		if callee.Frame.Sym[i].RegHi == DX && callee.Frame.Sym[i].RegLo == AX {
			return &callee.Frame.Sym[i]
		}
	}
	sym := StkSym{Name: formalName(callee.Frame.NumArgs), Type: TypeLong, Size: 4, RegHi: DX, RegLo: AX}
	callee.Frame.Sym = append(callee.Frame.Sym, sym)
	callee.Frame.NumArgs++
	return &callee.Frame.Sym[len(callee.Frame.Sym)-1]
}

func formalName(i int) string {
	return "arg" + strconv.Itoa(i+1)
}

// newStkArg wraps the PUSH at picode (immediately preceding the call at
// ticode) as a stack-passed actual argument at frame offset off, and, if
// callee is known, reconciles it against callee's existing stack formal
// at that offset or appends a new one. A segment register pushed ahead
// of a near call can't be a valid argument and is logged as a semantic
// gap rather than silently recorded; the same push ahead of a far call
// is the callee's target segment, not an argument, and is suppressed
// entirely.
func newStkArg(f *Function, img *Image, ticode, picode int, far bool, callee *Function, off int16) {
	pic := f.ICode.Get(picode)
	reg := pic.Src.Regi

	// The decoder's PUSH ES/CS/SS/DS form carries the segment register
	// in Dst only.
	if isSegReg(reg) || isSegReg(pic.Dst.Regi) {
		if far {
			return
		}
		logrus.WithFields(logrus.Fields{
			"icode": picode,
			"call":  ticode,
		}).Warn("segment was used as an argument")
		return
	}

	typ, size := TypeWord, 2
	switch {
	case pic.Src.IsMem(pic.Flags):
		typ = TypeWordPtr
	case pic.Src.HasImmed && reg == RegNone:
		typ = TypeConst
	}
	tic := f.ICode.Get(ticode)
	tic.Actuals = append(tic.Actuals, StkSym{
		Name:   formalName(len(tic.Actuals)),
		Type:   typ,
		Size:   size,
		Off:    off,
		Actual: pic.Src,
	})
	pic.Flags |= FlagArgConsumed

	if callee != nil {
		if ensureStkFormal(callee, off, typ, size) == TypeString && typ == TypeConst {
			adjustStrArg(&tic.Actuals[len(tic.Actuals)-1], img)
		}
	}
}

// adjustStrArg rewrites a constant actual passed where the callee
// expects a string: the constant is an offset from the caller's data
// segment base (shifted left four bits, plus the PSP's 0x100 for a COM
// image) and the actual becomes a string operand pointing at that image
// offset.
func adjustStrArg(act *StkSym, img *Image) {
	if img == nil || !act.Actual.HasImmed {
		return
	}
	base := uint32(img.InitDS) << 4
	if img.Kind == KindCOM {
		base += 0x100
	}
	act.Type = TypeString
	act.StrOff = base + act.Actual.Immed
}

// ensureStkFormal reconciles callee's stack formal at offset off with
// the observed actual type typ (via StkFrame.reconcileArgType), or
// appends a new formal the first time a call site is seen passing an
// argument at that offset. It returns the formal's type after
// reconciliation, which is what decides whether the caller's actual
// needs the string rewrite.
func ensureStkFormal(callee *Function, off int16, typ SymType, size int) SymType {
	frame := &callee.Frame
	if i := frame.findFormalAt(0, off); i >= 0 {
		frame.reconcileArgType(i, typ)
		return frame.Sym[i].Type
	}
	declared := typ
	if declared == TypeConst {
		// A pushed constant declares an ordinary word slot; only another
		// call site (or the callee's own body) can refine it further.
		declared = TypeWord
	}
	frame.Sym = append(frame.Sym, StkSym{Name: formalName(frame.NumArgs), Type: declared, Size: size, Off: off})
	frame.NumArgs++
	if off < frame.MinOff {
		frame.MinOff = off
	}
	return declared
}
