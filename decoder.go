package dcc

// decodeContext carries the per-instruction decode state (pending
// segment override, pending REP prefix, the running byte cursor) as an
// explicit per-call struct, so Scan is reentrant and carries no state
// between unrelated procedures the way file-scope latches implicitly
// would.
type decodeContext struct {
	image  *Image
	cursor int // absolute offset of the next unread byte
	start  int // absolute offset this instruction started at

	segPrefix Reg   // RegNone if no segment override is active
	repPrefix Icode // 0 if no REP/REPNE prefix is active

	out *ICode
}

func (c *decodeContext) peek() byte { return c.image.Bytes[c.cursor] }

func (c *decodeContext) fetchByte() byte {
	b := c.image.Bytes[c.cursor]
	c.cursor++
	return b
}

func (c *decodeContext) fetchWord() uint16 {
	w := uint16(c.image.Bytes[c.cursor]) | uint16(c.image.Bytes[c.cursor+1])<<8
	c.cursor += 2
	return w
}

// handlerFn is the shape of every opcode-table handler. Each table entry
// supplies two: a primary that runs first, and a secondary that runs
// after, mirroring the two function pointers per state-table row (e.g.
// modrm then data1 for an immediate r/m instruction).
type handlerFn func(ctx *decodeContext, entry *opEntry, opByte byte)

// opEntry is one opcode-table row: the handler pair, the static flags,
// opcode, and def/use masks the table contributes before any handler
// runs.
type opEntry struct {
	primary   handlerFn
	secondary handlerFn
	flags     Flags
	opcode    Icode
	defFlags  Eflags
	useFlags  Eflags
}

// Scan decodes a single instruction starting at offset ip in img and
// returns the resulting I-code plus its status. NumBytes and Label are
// only meaningful when status is NoErr or a warning (IsWarning); an
// InvalidOpcode/IPOutOfRange result carries a zero-value I-code.
func Scan(img *Image, ip uint32) (ICode, ErrorID) {
	if int(ip) >= img.Len() {
		return ICode{}, IPOutOfRange
	}

	ic := ICode{SymIdx: -1}
	ctx := &decodeContext{
		image:     img,
		cursor:    int(ip),
		start:     int(ip),
		segPrefix: RegNone,
		out:       &ic,
	}

	for {
		opByte := ctx.fetchByte()
		entry := &opcodeTable[opByte]

		ic.Opcode = entry.opcode
		ic.Flags |= entry.flags
		ic.DefFlags = entry.defFlags
		ic.UseFlags = entry.useFlags

		if ic.Flags.Any(FlagOp386) {
			return ICode{}, Invalid386Op
		}

		entry.primary(ctx, entry, opByte)
		if ic.Opcode == IZERO {
			return ICode{}, InvalidOpcode
		}
		entry.secondary(ctx, entry, opByte)
		if ic.Opcode == IZERO {
			return ICode{}, InvalidOpcode
		}

		// A prefix byte (segment override, REP/REPNE) decodes to an
		// opcode that only sets decoder state and loops back for the
		// real opcode that follows it.
		if isPrefixOpcode(ic.Opcode) {
			ic.Flags = 0
			continue
		}
		break
	}

	ic.NumBytes = byte(ctx.cursor - ctx.start)
	ic.Label = uint32(ctx.start)

	// A prefix no operand or string opcode consumed is left dangling;
	// the I-code itself is still usable.
	if ctx.segPrefix != RegNone {
		return ic, FunnySegOvr
	}
	if ctx.repPrefix != 0 {
		return ic, FunnyRep
	}
	return ic, NoErr
}

func isPrefixOpcode(op Icode) bool {
	switch op {
	case IREPNE, IREPE, isegPrefix:
		return true
	}
	return false
}

// setAddress resolves seg/reg/off into whichever of the current
// instruction's src/dst operands TO_REG and isRM together select, then
// applies the default-segment and byte-register-group rules. isRM is
// true when the caller is filling in the r/m side of an operand pair
// (false for the reg-field side). A non-RegNone seg is the still-pending
// segment override: applying it here consumes it, which is what lets
// Scan detect a leftover override at the end.
func setAddress(ctx *decodeContext, entry *opEntry, isRM bool, seg Reg, reg Reg, off int16) {
	toReg := entry.flags.Any(FlagToReg)
	var target *LLOperand
	if (!toReg) == isRM {
		target = &ctx.out.Dst
	} else {
		target = &ctx.out.Src
	}

	if seg != RegNone {
		target.Seg = seg
		target.SegOver = seg
		ctx.segPrefix = RegNone
	} else if reg.indexUsesSS() {
		target.Seg = SS
	} else {
		target.Seg = DS
	}

	target.Regi = reg
	target.Off = off

	if reg != RegNone && reg < IndexBase && entry.flags.Any(FlagB) {
		target.Regi = reg.toByteReg()
	}
}

// rm decodes the modrm byte's mod/rm fields into the operand setAddress
// selects, advancing the cursor past the modrm byte and any
// displacement it carries. The reg-field side, if any, must already have
// been filled in by the caller (e.g. modrmHandler) before rm consumes the
// byte modrm peeked at.
func rm(ctx *decodeContext, entry *opEntry) {
	b := ctx.peek()
	mod := b >> 6
	rmField := Reg(b & 7)
	ctx.fetchByte()

	switch mod {
	case 0:
		if rmField == 6 {
			w := ctx.fetchWord()
			setAddress(ctx, entry, true, ctx.segPrefix, RegNone, int16(w))
			ctx.out.Flags |= FlagWordOff
		} else {
			setAddress(ctx, entry, true, ctx.segPrefix, IndexBase+rmField, 0)
		}
	case 1:
		d := ctx.fetchByte()
		setAddress(ctx, entry, true, ctx.segPrefix, IndexBase+rmField, int16(int8(d)))
	case 2:
		w := ctx.fetchWord()
		setAddress(ctx, entry, true, ctx.segPrefix, IndexBase+rmField, int16(w))
		ctx.out.Flags |= FlagWordOff
	case 3:
		setAddress(ctx, entry, true, RegNone, AX+rmField, 0)
	}

	if entry.flags.Any(FlagNSP) && (ctx.out.Src.Regi == SP || ctx.out.Dst.Regi == SP) {
		ctx.out.Flags |= FlagNotHLL
	}
}

func modrmHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	reg := AX + Reg((ctx.peek()>>3)&7)
	setAddress(ctx, entry, false, RegNone, reg, 0)
	rm(ctx, entry)
}

func segrmHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	reg := ES + Reg((ctx.peek()>>3)&7)
	if reg > DS || (reg == CS && entry.flags.Any(FlagToReg)) {
		ctx.out.Opcode = IZERO
		return
	}
	setAddress(ctx, entry, false, RegNone, reg, 0)
	rm(ctx, entry)
}

func regopHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	reg := AX + Reg(opByte&7)
	setAddress(ctx, entry, false, RegNone, reg, 0)
	ctx.out.Dst.Regi = ctx.out.Src.Regi
}

func segopHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	reg := ES + Reg((opByte&0x18)>>3)
	setAddress(ctx, entry, true, RegNone, reg, 0)
}

// axImpHandler plugs the implied accumulator operand: the r/m-side slot
// TO_REG selects, AX shifted to AL when the row carries the B flag.
func axImpHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	setAddress(ctx, entry, true, RegNone, AX, 0)
}

// alSrcHandler and axSrcHandler plug the implied accumulator source of
// CBW/CWD and the OUT forms, where the accumulator is read, not written.
func alSrcHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	ctx.out.Src.Regi = AL
}

func axSrcHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	ctx.out.Src.Regi = AX
}

// memImpHandler plugs the implied source memory operand of the string
// instructions and XLAT, honoring any pending segment override.
func memImpHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	setAddress(ctx, entry, false, ctx.segPrefix, RegNone, 0)
}

func memOnlyHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	if ctx.peek()&0xC0 == 0xC0 {
		ctx.out.Opcode = IZERO
	}
}

// memReg0Handler is memOnlyHandler's stricter sibling (8F/C6/C7): the
// operand must be memory and the modrm reg field must be 0.
func memReg0Handler(ctx *decodeContext, entry *opEntry, opByte byte) {
	b := ctx.peek()
	if (b>>3)&7 != 0 || b&0xC0 == 0xC0 {
		ctx.out.Opcode = IZERO
		return
	}
	rm(ctx, entry)
}

var immedTable = [8]Icode{IADD, IOR, IADC, ISBB, IAND, ISUB, IXOR, ICMP}
var immedUseFlags = [8]Eflags{0, 0, EflagC, EflagC, 0, 0, 0, 0}

func immedHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	regField := (ctx.peek() >> 3) & 7
	ctx.out.Opcode = immedTable[regField]
	ctx.out.UseFlags = immedUseFlags[regField]
	ctx.out.DefFlags = SZC
	rm(ctx, entry)
	if ctx.out.Opcode == IADD || ctx.out.Opcode == ISUB {
		ctx.out.Flags &^= FlagNotHLL // allow ADD/SUB SP, immed
	}
}

var shiftTable = [8]Icode{IROL, IROR, IRCL, IRCR, ISHL, ISHR, IZERO, ISAR}
var shiftUseFlags = [8]Eflags{0, 0, EflagC, EflagC, 0, 0, 0, 0}
var shiftDefFlags = [8]Eflags{EflagC, EflagC, EflagC, EflagC, SZC, SZC, 0, SZC}

func shiftHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	regField := (ctx.peek() >> 3) & 7
	ctx.out.Opcode = shiftTable[regField]
	ctx.out.UseFlags = shiftUseFlags[regField]
	ctx.out.DefFlags = shiftDefFlags[regField]
	rm(ctx, entry)
	// Only the 0xD2/0xD3 forms shift by CL; the rest take a constant or
	// immediate count filled in by the secondary handler.
	if opByte == 0xD2 || opByte == 0xD3 {
		ctx.out.Src.Regi = CL
	}
}

var transTable = [8]Icode{IINC, IDEC, ICALL, ICALLF, IJMP, IJMPF, IPUSH, IZERO}
var transDefFlags = [8]Eflags{EflagS | EflagZ, EflagS | EflagZ, 0, 0, 0, 0, 0, 0}

func transHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	regField := (ctx.peek() >> 3) & 7
	if regField >= 2 && entry.flags.Any(FlagB) {
		return // only INC/DEC are valid on a byte r/m
	}
	ctx.out.Opcode = transTable[regField]
	ctx.out.DefFlags = transDefFlags[regField]
	rm(ctx, entry)
	ctx.out.Src = ctx.out.Dst
	switch ctx.out.Opcode {
	case IJMP, ICALL, ICALLF:
		ctx.out.Flags |= FlagNoOps
	case IINC, IPUSH, IDEC:
		ctx.out.Flags |= FlagNoSrc
	}
}

var arithTable = [8]Icode{ITEST, IZERO, INOT, INEG, IMUL, IIMUL, IDIV, IIDIV}
var arithDefFlags = [8]Eflags{SZC, 0, 0, SZC, SZC, SZC, SZC, SZC}

func arithHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	regField := (ctx.peek() >> 3) & 7
	op := arithTable[regField]
	ctx.out.Opcode = op
	ctx.out.DefFlags = arithDefFlags[regField]
	rm(ctx, entry)

	switch {
	case op == ITEST:
		if entry.flags.Any(FlagB) {
			data1Handler(ctx, entry, opByte)
		} else {
			data2Handler(ctx, entry, opByte)
		}
	case op == INOT || op == INEG:
		ctx.out.Flags |= FlagNoSrc
	default:
		ctx.out.Src = ctx.out.Dst
		setAddress(ctx, entry, true, RegNone, AX, 0)
	}

	if op == IDIV || op == IIDIV {
		if !ctx.out.Flags.Any(FlagB) {
			ctx.out.Flags |= FlagImTmpDst
		}
	}
}

func data1Handler(ctx *decodeContext, entry *opEntry, opByte byte) {
	b := ctx.fetchByte()
	var v uint32
	if entry.flags.Any(FlagSExt) {
		v = uint32(int32(int8(b)))
	} else {
		v = uint32(b)
	}
	ctx.out.Src.SetImmediateOp(v)
	ctx.out.Flags |= FlagI
}

func data2Handler(ctx *decodeContext, entry *opEntry, opByte byte) {
	if ctx.image.IsReloc(uint32(ctx.cursor)) {
		ctx.out.Flags |= FlagSegImmed
	}
	if ctx.out.Opcode == IENTER {
		// ENTER stores the frame size in the destination offset and the
		// nesting level in the immediate; it has no real operands.
		ctx.out.Dst.Off = int16(ctx.fetchWord())
		ctx.out.Flags |= FlagNoOps
	} else {
		ctx.out.Src.SetImmediateOp(uint32(ctx.fetchWord()))
	}
	ctx.out.Flags |= FlagI
}

func dispMHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	w := ctx.fetchWord()
	setAddress(ctx, entry, false, ctx.segPrefix, RegNone, int16(w))
	ctx.out.Flags |= FlagWordOff
}

func dispNHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	w := ctx.fetchWord()
	off := int32(int16(w))
	target := uint32(off + int32(ctx.cursor))
	ctx.out.Src.SetImmediateOp(target)
	ctx.out.Flags |= FlagI
}

func dispSHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	b := ctx.fetchByte()
	off := int32(int8(b))
	target := uint32(off + int32(ctx.cursor))
	ctx.out.Src.SetImmediateOp(target)
	ctx.out.Flags |= FlagI
}

func dispFHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	off := ctx.fetchWord()
	seg := ctx.fetchWord()
	ctx.out.Src.SetImmediateOp(uint32(off) + uint32(seg)<<4)
	ctx.out.Flags |= FlagI
}

var segPrefixByOpByte = map[byte]Reg{0x26: ES, 0x2E: CS, 0x36: SS, 0x3E: DS}

func prefixHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	switch ctx.out.Opcode {
	case IREPE, IREPNE:
		ctx.repPrefix = ctx.out.Opcode
	default:
		if seg, ok := segPrefixByOpByte[opByte]; ok {
			ctx.segPrefix = seg
		}
	}
}

func bumpStringOpcode(op Icode, repPrefix Icode) Icode {
	switch op {
	case IINS:
		return IINSREP
	case IOUTS:
		return IOUTSREP
	case IMOVS:
		return IMOVSREP
	case ICMPS:
		if repPrefix == IREPE {
			return ICMPSREPE
		}
		return ICMPSREPNE
	case ISTOS:
		return ISTOSREP
	case ILODS:
		return ILODSREP
	case ISCAS:
		if repPrefix == IREPE {
			return ISCASREPE
		}
		return ISCASREPNE
	default:
		return op
	}
}

func stropHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	if ctx.repPrefix == 0 {
		return
	}
	ctx.out.Opcode = bumpStringOpcode(ctx.out.Opcode, ctx.repPrefix)
	if ctx.out.Opcode == ILODSREP {
		ctx.out.Flags |= FlagNotHLL
	}
	ctx.repPrefix = 0
}

func escopHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	regField := uint32((ctx.peek() >> 3) & 7)
	ctx.out.Src.SetImmediateOp(regField + uint32(opByte&7)<<3)
	ctx.out.Flags |= FlagI
	rm(ctx, entry)
}

func const1Handler(ctx *decodeContext, entry *opEntry, opByte byte) {
	ctx.out.Src.SetImmediateOp(1)
	ctx.out.Flags |= FlagI
}

func const3Handler(ctx *decodeContext, entry *opEntry, opByte byte) {
	ctx.out.Src.SetImmediateOp(3)
	ctx.out.Flags |= FlagI
}

func none1Handler(ctx *decodeContext, entry *opEntry, opByte byte) {}

func none2Handler(ctx *decodeContext, entry *opEntry, opByte byte) {
	if ctx.out.Flags.Any(FlagI) {
		ctx.out.Flags |= FlagNoOps
	}
}

// checkIntHandler implements the Borland/Microsoft floating-point
// emulation convention: INT 0x34..0x3B is not a real interrupt but an
// ESC opcode spelled as a two-byte INT for loaders that patch it in
// place. The interrupt number data1Handler just read selects which of
// the eight ESC opcodes was meant; it becomes the immediate.
func checkIntHandler(ctx *decodeContext, entry *opEntry, opByte byte) {
	n := uint16(ctx.out.Src.Immed)
	if n < 0x34 || n > 0x3B {
		return
	}
	ctx.out.Opcode = IESC
	ctx.out.Flags |= FlagFloatOp
	ctx.out.Src.SetImmediateOp(uint32(n - 0x34))
}
