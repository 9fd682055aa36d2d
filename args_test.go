package dcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// movRegIcode builds a register-defining assignment I-code, standing in
// for whatever opcode actually loaded reg (MOV, ADD, XOR, ...); argument
// recovery only cares that it's a live def of reg at Dst.
func movRegIcode(label uint32, reg Reg) ICode {
	ic := ICode{Opcode: IMOV, Label: label, NumBytes: 2, SymIdx: -1}
	ic.Dst.Regi = reg
	return ic
}

func pushRegIcode(label uint32, reg Reg) ICode {
	ic := ICode{Opcode: IPUSH, Label: label, NumBytes: 1, SymIdx: -1}
	ic.Src.Regi = reg
	return ic
}

func callIcode(label uint32, callee *Function, far bool) ICode {
	op := ICALL
	if far {
		op = ICALLF
	}
	ic := ICode{Opcode: op, Label: label, NumBytes: 3, SymIdx: -1}
	ic.Src.Proc = callee
	return ic
}

func TestRecoverArgsPromotesSingleWordRegisterArg(t *testing.T) {
	callee := NewFunction("callee", 0x100)
	caller := NewFunction("caller", 0)
	caller.ICode.Append(movRegIcode(0, AX))
	ticode := caller.ICode.Append(callIcode(2, callee, false))

	RecoverArgs(caller, nil)

	require.Len(t, callee.Frame.Sym, 1)
	formal := callee.Frame.Sym[0]
	assert.Equal(t, "arg1", formal.Name)
	assert.Equal(t, AX, formal.Reg)
	assert.Equal(t, TypeWord, formal.Type)
	assert.True(t, callee.Flags.Any(FlagRegArgs))

	tic := caller.ICode.Get(ticode)
	require.Len(t, tic.Actuals, 1)
	assert.Equal(t, "arg1", tic.Actuals[0].Name)
	assert.Equal(t, AX, tic.Actuals[0].Reg)

	assert.True(t, caller.ICode.Get(0).Flags.Any(FlagArgConsumed))
}

func TestRecoverArgsPromotesByteRegisterArgAsByteType(t *testing.T) {
	callee := NewFunction("callee", 0x100)
	caller := NewFunction("caller", 0)
	caller.ICode.Append(movRegIcode(0, AL))
	caller.ICode.Append(callIcode(2, callee, false))

	RecoverArgs(caller, nil)

	require.Len(t, callee.Frame.Sym, 1)
	assert.Equal(t, TypeByte, callee.Frame.Sym[0].Type)
	assert.Equal(t, 1, callee.Frame.Sym[0].Size)
}

// DX loaded first, then AX immediately before the call, is one 32-bit
// logical argument, not two word arguments.
func TestRecoverArgsPromotesLongPairArg(t *testing.T) {
	callee := NewFunction("callee", 0x100)
	caller := NewFunction("caller", 0)
	caller.ICode.Append(movRegIcode(0, DX))
	caller.ICode.Append(movRegIcode(2, AX))
	ticode := caller.ICode.Append(callIcode(4, callee, false))

	RecoverArgs(caller, nil)

	require.Len(t, callee.Frame.Sym, 1, "DX:AX should merge into a single long formal")
	formal := callee.Frame.Sym[0]
	assert.Equal(t, TypeLong, formal.Type)
	assert.Equal(t, DX, formal.RegHi)
	assert.Equal(t, AX, formal.RegLo)

	tic := caller.ICode.Get(ticode)
	require.Len(t, tic.Actuals, 1)
	assert.Equal(t, TypeLong, tic.Actuals[0].Type)

	assert.True(t, caller.ICode.Get(0).Flags.Any(FlagArgConsumed))
	assert.True(t, caller.ICode.Get(1).Flags.Any(FlagArgConsumed))
}

func TestRecoverArgsPromotesStackPushedArg(t *testing.T) {
	callee := NewFunction("callee", 0x100)
	caller := NewFunction("caller", 0)
	pushIdx := caller.ICode.Append(pushRegIcode(0, BX))
	ticode := caller.ICode.Append(callIcode(1, callee, false))

	RecoverArgs(caller, nil)

	tic := caller.ICode.Get(ticode)
	require.Len(t, tic.Actuals, 1)
	assert.Equal(t, int16(-2), tic.Actuals[0].Off)
	assert.True(t, caller.ICode.Get(pushIdx).Flags.Any(FlagArgConsumed))

	require.Len(t, callee.Frame.Sym, 1)
	assert.Equal(t, int16(-2), callee.Frame.Sym[0].Off)
}

func TestRecoverArgsReconcilesRepeatedStackArgOffsetAcrossCallSites(t *testing.T) {
	callee := NewFunction("callee", 0x100)
	caller := NewFunction("caller", 0)
	caller.ICode.Append(pushRegIcode(0, BX))
	caller.ICode.Append(callIcode(1, callee, false))
	caller.ICode.Append(pushRegIcode(4, CX))
	caller.ICode.Append(callIcode(5, callee, false))

	RecoverArgs(caller, nil)

	// Both call sites push at the same frame offset (-2), so they must
	// reconcile onto the same formal rather than appending a second one.
	require.Len(t, callee.Frame.Sym, 1)
}

func TestNewStkArgSuppressesSegmentPushBeforeFarCall(t *testing.T) {
	callee := NewFunction("callee", 0x100)
	caller := NewFunction("caller", 0)
	caller.ICode.Append(pushRegIcode(0, ES))
	ticode := caller.ICode.Append(callIcode(1, callee, true))

	RecoverArgs(caller, nil)

	tic := caller.ICode.Get(ticode)
	assert.Empty(t, tic.Actuals, "a segment pushed ahead of a far call is the target segment, not an argument")
	assert.Empty(t, callee.Frame.Sym)
}

func TestNewStkArgWarnsAndDropsSegmentPushBeforeNearCall(t *testing.T) {
	callee := NewFunction("callee", 0x100)
	caller := NewFunction("caller", 0)
	caller.ICode.Append(pushRegIcode(0, ES))
	ticode := caller.ICode.Append(callIcode(1, callee, false))

	RecoverArgs(caller, nil)

	tic := caller.ICode.Get(ticode)
	assert.Empty(t, tic.Actuals, "a segment pushed ahead of a near call cannot be a valid argument")
}

func TestRecoverArgsStopsBackwardScanAtJoinPoint(t *testing.T) {
	callee := NewFunction("callee", 0x100)
	caller := NewFunction("caller", 0)
	caller.ICode.Append(movRegIcode(0, BX)) // on the far side of the join point: must not be seen
	join := ICode{Opcode: INOP, Label: 2, NumBytes: 1, SymIdx: -1}
	join.Flags |= FlagTarget
	caller.ICode.Append(join)
	caller.ICode.Append(movRegIcode(3, AX)) // closest to the call: must be picked up
	ticode := caller.ICode.Append(callIcode(5, callee, false))

	RecoverArgs(caller, nil)

	tic := caller.ICode.Get(ticode)
	require.Len(t, tic.Actuals, 1, "scan must halt at the join point before reaching the BX def beyond it")
	assert.Equal(t, AX, tic.Actuals[0].Reg)
}

func TestNewStkArgRewritesConstActualAgainstStringFormal(t *testing.T) {
	// The callee is already known to take a string at the first stack
	// slot; a call site pushing a bare constant is really passing a
	// pointer to string data in the caller's data segment (+0x100 past
	// the PSP for a COM image).
	img := &Image{Bytes: make([]byte, 0x200), Kind: KindCOM}

	callee := NewFunction("callee", 0x100)
	callee.Frame.Sym = append(callee.Frame.Sym, StkSym{Name: "arg1", Type: TypeString, Size: 2, Off: -2})
	callee.Frame.NumArgs = 1

	caller := NewFunction("caller", 0)
	push := ICode{Opcode: IPUSH, Label: 0, NumBytes: 3, SymIdx: -1}
	push.Src.SetImmediateOp(0x40)
	push.Flags |= FlagI
	caller.ICode.Append(push)
	ticode := caller.ICode.Append(callIcode(3, callee, false))

	RecoverArgs(caller, img)

	tic := caller.ICode.Get(ticode)
	require.Len(t, tic.Actuals, 1)
	assert.Equal(t, TypeString, tic.Actuals[0].Type)
	assert.EqualValues(t, 0x100+0x40, tic.Actuals[0].StrOff)
	assert.Equal(t, TypeString, callee.Frame.Sym[0].Type, "the formal stays a string")
}

func TestAdjustForArgTypeMergesLongActualAcrossTwoWordFormals(t *testing.T) {
	frame := &StkFrame{
		Sym: []StkSym{
			{Name: "arg1", Type: TypeWord, Size: 2, Off: -2},
			{Name: "arg2", Type: TypeWord, Size: 2, Off: -4},
		},
		NumArgs: 2,
	}

	ok := frame.adjustForArgType(0, -2, TypeLong)

	require.True(t, ok)
	assert.Equal(t, TypeLong, frame.Sym[0].Type)
	assert.Equal(t, 4, frame.Sym[0].Size)
	assert.Equal(t, "LO", frame.Sym[0].Macro)
	assert.Equal(t, "HI", frame.Sym[1].Macro)
	assert.Equal(t, "arg1", frame.Sym[1].Name, "both halves share the merged argument's name")
	assert.Equal(t, 1, frame.NumArgs)
}

func TestAdjustForArgTypeReconcilesUnknownFormal(t *testing.T) {
	frame := &StkFrame{Sym: []StkSym{{Name: "arg1", Type: TypeUnknown, Off: -2}}}

	ok := frame.adjustForArgType(0, -2, TypeWord)

	require.True(t, ok)
	assert.Equal(t, TypeWord, frame.Sym[0].Type)
	assert.False(t, frame.Sym[0].Invalid)
}

func TestAdjustForArgTypeFlagsMismatchedKnownTypes(t *testing.T) {
	frame := &StkFrame{Sym: []StkSym{{Name: "arg1", Type: TypeWord, Off: -2}}}

	ok := frame.adjustForArgType(0, -2, TypeString)

	require.True(t, ok, "a formal at the matching offset was found, even though its type conflicts")
	assert.True(t, frame.Sym[0].Invalid)
}

func TestAdjustForArgTypeReportsNoMatchAtUnknownOffset(t *testing.T) {
	frame := &StkFrame{Sym: []StkSym{{Name: "arg1", Type: TypeWord, Off: -2}}}

	ok := frame.adjustForArgType(0, -4, TypeWord)

	assert.False(t, ok)
}
