package dcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageOf(bytes ...byte) *Image {
	return &Image{Bytes: bytes, Kind: KindCOM, Reloc: map[uint32]struct{}{}}
}

func TestScanNop(t *testing.T) {
	img := imageOf(0x90)

	ic, status := Scan(img, 0)

	require.Equal(t, NoErr, status)
	assert.Equal(t, INOP, ic.Opcode)
	assert.EqualValues(t, 1, ic.NumBytes)
	assert.True(t, ic.Flags.Any(FlagNoOps))
}

func TestScanJmpShortNegativeTwo(t *testing.T) {
	// JMP short -2: jumps back to its own start, the classic spin loop.
	img := imageOf(0xEB, 0xFE)

	ic, status := Scan(img, 0)

	require.Equal(t, NoErr, status)
	assert.Equal(t, IJMP, ic.Opcode)
	assert.EqualValues(t, 2, ic.NumBytes)
	assert.True(t, ic.Flags.Any(FlagI))
	assert.EqualValues(t, 0, ic.Src.Immed)
}

func TestScanIntRewrittenToEsc(t *testing.T) {
	// INT 0x35 falls in the Borland/Microsoft FP-emulation INT range and
	// is rewritten to ESC with src immediate 0x35-0x34 = 1.
	img := imageOf(0xCD, 0x35, 0x00)

	ic, status := Scan(img, 0)

	require.Equal(t, NoErr, status)
	assert.Equal(t, IESC, ic.Opcode)
	assert.True(t, ic.Flags.Any(FlagFloatOp))
	assert.EqualValues(t, 1, ic.Src.Immed)
}

func TestScanEsOverrideMovAxMem(t *testing.T) {
	// ES: MOV AX,[0x1000]
	img := imageOf(0x26, 0xA1, 0x00, 0x10)

	ic, status := Scan(img, 0)

	require.Equal(t, NoErr, status)
	assert.Equal(t, IMOV, ic.Opcode)
	assert.Equal(t, AX, ic.Dst.Regi)
	assert.Equal(t, ES, ic.Src.Seg)
	assert.Equal(t, ES, ic.Src.SegOver)
	assert.EqualValues(t, 0x1000, ic.Src.Off)
}

func TestScanIpOutOfRange(t *testing.T) {
	img := imageOf(0x90)

	_, status := Scan(img, 5)

	assert.Equal(t, IPOutOfRange, status)
}

func TestScanInvalid386Opcode(t *testing.T) {
	// 0x0F is the two-byte-opcode escape, 80386+ only in this table.
	img := imageOf(0x0F, 0x00)

	_, status := Scan(img, 0)

	assert.Equal(t, Invalid386Op, status)
}

func TestScanRepPrefixBumpsStringOpcode(t *testing.T) {
	// REP MOVSB
	img := imageOf(0xF3, 0xA4)

	ic, status := Scan(img, 0)

	require.Equal(t, NoErr, status)
	assert.Equal(t, IMOVSREP, ic.Opcode)
	assert.EqualValues(t, 2, ic.NumBytes)
}

func TestScanFunnySegOvrWarning(t *testing.T) {
	// A segment override with nothing to attach to: ES: followed by NOP.
	img := imageOf(0x26, 0x90)

	ic, status := Scan(img, 0)

	assert.Equal(t, FunnySegOvr, status)
	assert.True(t, status.IsWarning())
	assert.Equal(t, INOP, ic.Opcode)
}

func TestScanSpOperandDisqualifiesHighLevel(t *testing.T) {
	// OR AX,SP: an SP operand outside ADD/SUB can't survive into
	// high-level form.
	img := imageOf(0x09, 0xE0)

	ic, status := Scan(img, 0)

	require.Equal(t, NoErr, status)
	assert.Equal(t, IOR, ic.Opcode)
	assert.Equal(t, SP, ic.Src.Regi)
	assert.True(t, ic.Flags.Any(FlagNotHLL))
}

func TestScanAddSpImmediateStaysHighLevel(t *testing.T) {
	// ADD SP,8 is the stack-adjust idiom and keeps its high-level
	// eligibility even though it names SP.
	img := imageOf(0x83, 0xC4, 0x08)

	ic, status := Scan(img, 0)

	require.Equal(t, NoErr, status)
	assert.Equal(t, IADD, ic.Opcode)
	assert.Equal(t, SP, ic.Dst.Regi)
	assert.EqualValues(t, 8, ic.Src.Immed)
	assert.False(t, ic.Flags.Any(FlagNotHLL))
}

func TestScanLockIsStandaloneInstruction(t *testing.T) {
	img := imageOf(0xF0)

	ic, status := Scan(img, 0)

	require.Equal(t, NoErr, status)
	assert.Equal(t, ILOCK, ic.Opcode)
	assert.EqualValues(t, 1, ic.NumBytes)
	assert.True(t, ic.Flags.Any(FlagNotHLL))
}

func TestScanMovImmediateRejectsRegisterDirectForm(t *testing.T) {
	// C6 /0 takes a memory operand only: the mod=3 register-direct
	// encoding is invalid, just like a nonzero reg field.
	img := imageOf(0xC6, 0xC0, 0x7F)

	_, status := Scan(img, 0)

	assert.Equal(t, InvalidOpcode, status)
}

func TestScanMovImmediateToMemoryViaModrm(t *testing.T) {
	// MOV byte [0x1000],0x7F through C6 /0 with a direct memory operand.
	img := imageOf(0xC6, 0x06, 0x00, 0x10, 0x7F)

	ic, status := Scan(img, 0)

	require.Equal(t, NoErr, status)
	assert.Equal(t, IMOV, ic.Opcode)
	assert.EqualValues(t, 0x1000, ic.Dst.Off)
	assert.EqualValues(t, 0x7F, ic.Src.Immed)
	assert.EqualValues(t, 5, ic.NumBytes)
}

func TestScanShiftByOneCarriesConstantNotCL(t *testing.T) {
	// SHL AX,1 (D1 /4): the count is the constant 1, not CL.
	img := imageOf(0xD1, 0xE0)

	ic, status := Scan(img, 0)

	require.Equal(t, NoErr, status)
	assert.Equal(t, ISHL, ic.Opcode)
	assert.Equal(t, AX, ic.Dst.Regi)
	assert.Equal(t, RegNone, ic.Src.Regi)
	assert.EqualValues(t, 1, ic.Src.Immed)
}

func TestScanShiftByCL(t *testing.T) {
	// SHL AX,CL (D3 /4).
	img := imageOf(0xD3, 0xE0)

	ic, status := Scan(img, 0)

	require.Equal(t, NoErr, status)
	assert.Equal(t, ISHL, ic.Opcode)
	assert.Equal(t, CL, ic.Src.Regi)
}

func TestScanDirectMemoryOperandReadsAsMemory(t *testing.T) {
	// MOV AX,[0x1000] with no override: a direct word-offset operand in
	// the default data segment.
	img := imageOf(0xA1, 0x00, 0x10)

	ic, status := Scan(img, 0)

	require.Equal(t, NoErr, status)
	assert.Equal(t, DS, ic.Src.Seg)
	assert.True(t, ic.Src.IsMem(ic.Flags))
}

func TestRegByteGroupConversion(t *testing.T) {
	assert.Equal(t, AL, AX.toByteReg())
	assert.Equal(t, BH, BH.toByteReg()) // already byte-group, no-op
}

func TestIndexedAddressingDefaultsToSS(t *testing.T) {
	assert.True(t, (IndexBase + 6).indexUsesSS())  // [BP]
	assert.False(t, (IndexBase + 4).indexUsesSS()) // [SI]
}
