package ir

import (
	"math"
	"testing"

	"github.com/kartiknair/lir/types"
	"github.com/stretchr/testify/require"
)

func TestIntLiterals(t *testing.T) {
	require.Equal(t, "42", NewInt(types.I32, 42).Ident())
	require.Equal(t, "-7", NewInt(types.I64, -7).Ident())
	require.Equal(t, "0", NewInt(types.I8, 0).Ident())

	// i1 renders as true/false.
	require.Equal(t, "true", True.Ident())
	require.Equal(t, "false", False.Ident())
	require.Equal(t, "true", NewInt(types.I1, 1).Ident())
}

func TestFloatLiterals(t *testing.T) {
	// Values with an exact decimal form use LLVM's scientific notation.
	require.Equal(t, "1.000000e+00", NewFloat(types.Double, 1).Ident())
	require.Equal(t, "-2.500000e-01", NewFloat(types.Double, -0.25).Ident())
	require.Equal(t, "0.000000e+00", NewFloat(types.Double, 0).Ident())

	// 0.1 has no exact decimal form; the bit pattern is printed instead.
	require.Equal(t, "0x3FB999999999999A", NewFloat(types.Double, 0.1).Ident())
	inf := NewFloat(types.Double, math.Inf(1))
	require.Equal(t, "0x7FF0000000000000", inf.Ident())

	// Single-precision values are truncated to float32 before rendering.
	require.Equal(t, "5.000000e-01", NewFloat(types.Float, 0.5).Ident())
}

func TestCharArrayLiterals(t *testing.T) {
	c := NewCharArrayFromString("hi\x00")
	require.Equal(t, "[3 x i8]", c.Type().String())
	require.Equal(t, `c"hi\00"`, c.Ident())

	require.Equal(t, `c"a\22b\5C\0A"`, NewCharArrayFromString("a\"b\\\n").Ident())
}

func TestAggregateLiterals(t *testing.T) {
	arr, err := NewArray(NewInt(types.I8, 1), NewInt(types.I8, 2))
	require.NoError(t, err)
	require.Equal(t, "[2 x i8]", arr.Type().String())
	require.Equal(t, "[i8 1, i8 2]", arr.Ident())

	_, err = NewArray(NewInt(types.I8, 1), NewInt(types.I16, 2))
	require.ErrorIs(t, err, ErrType)

	_, err = NewArray()
	require.ErrorIs(t, err, ErrType)

	s := NewStruct(NewInt(types.I32, 3), True)
	require.Equal(t, "{ i32, i1 }", s.Type().String())
	require.Equal(t, "{ i32 3, i1 true }", s.Ident())

	require.Equal(t, "zeroinitializer", NewZeroInitializer(types.NewArray(4, types.I8)).Ident())
	require.Equal(t, "undef", NewUndef(types.I64).Ident())
	require.Equal(t, "null", NewNull(types.I8Ptr).Ident())
}

func TestTypedStructLiterals(t *testing.T) {
	pair := &types.StructType{Name: "Pair", Fields: []types.Type{types.I32, types.I32}}

	s, err := NewTypedStruct(pair, NewInt(types.I32, 1), NewInt(types.I32, 2))
	require.NoError(t, err)
	require.Equal(t, "%Pair", s.Type().String())

	_, err = NewTypedStruct(pair, NewInt(types.I32, 1))
	require.ErrorIs(t, err, ErrType)

	_, err = NewTypedStruct(pair, NewInt(types.I32, 1), NewInt(types.I64, 2))
	require.ErrorIs(t, err, ErrType)

	opaque := &types.StructType{Name: "Qubit", Opaque: true}
	_, err = NewTypedStruct(opaque)
	require.ErrorIs(t, err, ErrType)
}

func TestConstExprs(t *testing.T) {
	qubit := &types.StructType{Name: "Qubit", Opaque: true}
	q := NewIntToPtr(NewInt(types.I64, 3), types.NewPointer(qubit))
	require.Equal(t, "%Qubit*", q.Type().String())
	require.Equal(t, "inttoptr (i64 3 to %Qubit*)", q.Ident())

	str := NewCharArrayFromString("hey\x00")
	g := &Global{GlobalName: "msg", ContentType: str.Type(), Init: str, Immutable: true}

	gep, err := NewGetElementPtr(str.Type(), g, NewInt(types.I32, 0), NewInt(types.I32, 0))
	require.NoError(t, err)
	require.Equal(t, "i8*", gep.Type().String())
	require.Equal(t, "getelementptr ([4 x i8], [4 x i8]* @msg, i32 0, i32 0)", gep.Ident())

	gep.InBounds = true
	require.Equal(t, "getelementptr inbounds ([4 x i8], [4 x i8]* @msg, i32 0, i32 0)", gep.Ident())

	// Element type must match the pointee.
	_, err = NewGetElementPtr(types.I8, g, NewInt(types.I32, 0))
	require.ErrorIs(t, err, ErrType)
}
