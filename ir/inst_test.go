package ir

import (
	"testing"

	"github.com/kartiknair/lir/types"
	"github.com/stretchr/testify/require"
)

// testFunc returns a fresh function with an open entry block.
func testFunc(t *testing.T, ret types.Type, params ...*Param) (*Module, *Func, *Block) {
	t.Helper()
	m := NewModule("test")
	f, err := m.NewFunc("f", ret, params...)
	require.NoError(t, err)
	return m, f, f.NewBlock("entry")
}

func TestBinaryOperandChecks(t *testing.T) {
	_, _, b := testFunc(t, types.Void, NewParam("a", types.I32), NewParam("b", types.I32))
	a := b.parent.Params[0]
	c := b.parent.Params[1]

	sum, err := b.NewAdd(a, c)
	require.NoError(t, err)
	require.True(t, sum.Type().Equal(types.I32))

	// Mismatched operand types.
	_, err = b.NewAdd(a, NewInt(types.I64, 1))
	require.ErrorIs(t, err, ErrType)

	// Integer opcode on floats.
	_, err = b.NewMul(NewFloat(types.Double, 1), NewFloat(types.Double, 2))
	require.ErrorIs(t, err, ErrType)

	// Float opcode on integers.
	_, err = b.NewFAdd(a, c)
	require.ErrorIs(t, err, ErrType)

	// Nothing but the one valid instruction was stored.
	require.Len(t, b.Insts, 1)
}

func TestCmpChecks(t *testing.T) {
	_, _, b := testFunc(t, types.Void)

	cmp, err := b.NewICmp(IntSLT, NewInt(types.I64, 1), NewInt(types.I64, 2))
	require.NoError(t, err)
	require.True(t, cmp.Type().Equal(types.I1))

	_, err = b.NewICmp(IntEQ, NewInt(types.I64, 1), NewInt(types.I32, 1))
	require.ErrorIs(t, err, ErrType)

	_, err = b.NewICmp(IntEQ, NewFloat(types.Double, 1), NewFloat(types.Double, 1))
	require.ErrorIs(t, err, ErrType)

	fcmp, err := b.NewFCmp(FloatOLT, NewFloat(types.Double, 1), NewFloat(types.Double, 2))
	require.NoError(t, err)
	require.True(t, fcmp.Type().Equal(types.I1))

	_, err = b.NewFCmp(FloatOEQ, NewInt(types.I32, 1), NewInt(types.I32, 1))
	require.ErrorIs(t, err, ErrType)
}

func TestConversionChecks(t *testing.T) {
	_, _, b := testFunc(t, types.Void, NewParam("x", types.I32), NewParam("p", types.I8Ptr))
	x := b.parent.Params[0]
	p := b.parent.Params[1]

	_, err := b.NewZExt(x, types.I64)
	require.NoError(t, err)
	_, err = b.NewTrunc(x, types.I8)
	require.NoError(t, err)
	_, err = b.NewPtrToInt(p, types.I64)
	require.NoError(t, err)
	_, err = b.NewBitCast(p, types.NewPointer(types.I32))
	require.NoError(t, err)

	// Widening trunc / narrowing zext.
	_, err = b.NewTrunc(x, types.I64)
	require.ErrorIs(t, err, ErrType)
	_, err = b.NewZExt(x, types.I8)
	require.ErrorIs(t, err, ErrType)

	// Class mismatches.
	_, err = b.NewSIToFP(p, types.Double)
	require.ErrorIs(t, err, ErrType)
	_, err = b.NewBitCast(p, types.I64)
	require.ErrorIs(t, err, ErrType)
	_, err = b.NewBitCast(x, types.NewStruct(types.I32))
	require.ErrorIs(t, err, ErrType)
}

func TestMemoryChecks(t *testing.T) {
	_, _, b := testFunc(t, types.Void)

	slot, err := b.NewAlloca(types.I32)
	require.NoError(t, err)
	require.Equal(t, "i32*", slot.Type().String())

	_, err = b.NewStore(NewInt(types.I32, 1), slot)
	require.NoError(t, err)
	loaded, err := b.NewLoad(types.I32, slot)
	require.NoError(t, err)
	require.True(t, loaded.Type().Equal(types.I32))

	// Declared load type must match the pointee.
	_, err = b.NewLoad(types.I64, slot)
	require.ErrorIs(t, err, ErrType)

	// Stored value must match the pointee.
	_, err = b.NewStore(NewInt(types.I64, 1), slot)
	require.ErrorIs(t, err, ErrType)

	// Loading through a non-pointer.
	_, err = b.NewLoad(types.I32, NewInt(types.I32, 0))
	require.ErrorIs(t, err, ErrType)

	_, err = b.NewAlloca(types.Void)
	require.ErrorIs(t, err, ErrType)
}

func TestGetElementPtrComputesResultTypes(t *testing.T) {
	_, _, b := testFunc(t, types.Void)

	pair := types.NewStruct(types.I8Ptr, types.I64)
	slot, err := b.NewAlloca(types.NewArray(3, pair))
	require.NoError(t, err)

	// &slot[0][1] -> i64*
	gep, err := b.NewGetElementPtr(types.NewArray(3, pair), slot,
		NewInt(types.I32, 0), NewInt(types.I32, 1), NewInt(types.I32, 1))
	require.NoError(t, err)
	require.Equal(t, "i64*", gep.Type().String())

	// Struct indices must be constant i32.
	_, err = b.NewGetElementPtr(types.NewArray(3, pair), slot,
		NewInt(types.I32, 0), NewInt(types.I32, 0), NewInt(types.I64, 1))
	require.ErrorIs(t, err, ErrType)

	// Struct index out of range.
	_, err = b.NewGetElementPtr(types.NewArray(3, pair), slot,
		NewInt(types.I32, 0), NewInt(types.I32, 0), NewInt(types.I32, 5))
	require.ErrorIs(t, err, ErrStructure)

	// Scalars cannot be indexed into.
	scalar, err := b.NewAlloca(types.I32)
	require.NoError(t, err)
	_, err = b.NewGetElementPtr(types.I32, scalar, NewInt(types.I32, 0), NewInt(types.I32, 0))
	require.ErrorIs(t, err, ErrType)
}

func TestCallChecks(t *testing.T) {
	m := NewModule("test")
	callee, err := m.NewFunc("callee", types.I64, NewParam("x", types.I64))
	require.NoError(t, err)
	caller, err := m.NewFunc("caller", types.Void)
	require.NoError(t, err)
	b := caller.NewBlock("entry")

	call, err := b.NewCall(callee, NewInt(types.I64, 1))
	require.NoError(t, err)
	require.True(t, call.Type().Equal(types.I64))

	// Wrong arity is rejected before any text exists.
	_, err = b.NewCall(callee)
	require.ErrorIs(t, err, ErrType)
	_, err = b.NewCall(callee, NewInt(types.I64, 1), NewInt(types.I64, 2))
	require.ErrorIs(t, err, ErrType)

	// Wrong argument type.
	_, err = b.NewCall(callee, NewInt(types.I32, 1))
	require.ErrorIs(t, err, ErrType)

	// Calling a non-function value.
	_, err = b.NewCall(NewInt(types.I64, 0))
	require.ErrorIs(t, err, ErrType)

	require.Len(t, b.Insts, 1)
}

func TestVariadicCalls(t *testing.T) {
	m := NewModule("test")
	printf, err := m.NewFunc("printf", types.I32, NewParam("fmt", types.I8Ptr))
	require.NoError(t, err)
	printf.Sig.Variadic = true
	caller, err := m.NewFunc("caller", types.Void)
	require.NoError(t, err)
	b := caller.NewBlock("entry")

	_, err = b.NewCall(printf, NewNull(types.I8Ptr))
	require.NoError(t, err)
	_, err = b.NewCall(printf, NewNull(types.I8Ptr), NewInt(types.I64, 1), NewFloat(types.Double, 2))
	require.NoError(t, err)

	// The fixed part is still required.
	_, err = b.NewCall(printf)
	require.ErrorIs(t, err, ErrType)
}

func TestSelectChecks(t *testing.T) {
	_, _, b := testFunc(t, types.Void, NewParam("c", types.I1))
	c := b.parent.Params[0]

	sel, err := b.NewSelect(c, NewInt(types.I32, 1), NewInt(types.I32, 2))
	require.NoError(t, err)
	require.True(t, sel.Type().Equal(types.I32))

	_, err = b.NewSelect(NewInt(types.I32, 1), NewInt(types.I32, 1), NewInt(types.I32, 2))
	require.ErrorIs(t, err, ErrType)

	_, err = b.NewSelect(c, NewInt(types.I32, 1), NewInt(types.I64, 2))
	require.ErrorIs(t, err, ErrType)
}
