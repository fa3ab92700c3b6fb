package ir

import (
	"testing"

	"github.com/kartiknair/lir/types"
	"github.com/stretchr/testify/require"
)

func TestBlockSealsOnTerminator(t *testing.T) {
	_, _, b := testFunc(t, types.Void)

	require.False(t, b.Terminated())
	require.NoError(t, b.NewRet(nil))
	require.True(t, b.Terminated())

	// A second terminator is rejected and changes nothing.
	err := b.NewUnreachable()
	require.ErrorIs(t, err, ErrStructure)
	_, ok := b.Term.(*TermRet)
	require.True(t, ok)

	// Sealed blocks reject instructions too.
	_, err = b.NewAdd(NewInt(types.I32, 1), NewInt(types.I32, 2))
	require.ErrorIs(t, err, ErrStructure)
	require.Empty(t, b.Insts)
}

func TestRetTypeChecks(t *testing.T) {
	m := NewModule("test")
	f, err := m.NewFunc("f", types.I32)
	require.NoError(t, err)
	b := f.NewBlock("entry")

	require.ErrorIs(t, b.NewRet(nil), ErrType)
	require.ErrorIs(t, b.NewRet(NewInt(types.I64, 0)), ErrType)
	require.False(t, b.Terminated())
	require.NoError(t, b.NewRet(NewInt(types.I32, 0)))

	g, err := m.NewFunc("g", types.Void)
	require.NoError(t, err)
	gb := g.NewBlock("entry")
	require.ErrorIs(t, gb.NewRet(NewInt(types.I32, 0)), ErrType)
	require.NoError(t, gb.NewRet(nil))
}

func TestBranchTargetChecks(t *testing.T) {
	m := NewModule("test")
	f, err := m.NewFunc("f", types.Void, NewParam("c", types.I1))
	require.NoError(t, err)
	entry := f.NewBlock("entry")
	then := f.NewBlock("then")
	done := f.NewBlock("done")

	g, err := m.NewFunc("g", types.Void)
	require.NoError(t, err)
	foreign := g.NewBlock("entry")

	// Targets must belong to this function.
	require.ErrorIs(t, entry.NewBr(foreign), ErrStructure)
	require.ErrorIs(t, entry.NewBr(nil), ErrStructure)
	require.False(t, entry.Terminated())

	// Condition must be i1.
	require.ErrorIs(t, entry.NewCondBr(NewInt(types.I32, 1), then, done), ErrType)
	require.NoError(t, entry.NewCondBr(f.Params[0], then, done))

	require.NoError(t, then.NewBr(done))
	require.NoError(t, done.NewRet(nil))
}

func TestSwitchChecks(t *testing.T) {
	m := NewModule("test")
	f, err := m.NewFunc("f", types.Void, NewParam("x", types.I64))
	require.NoError(t, err)
	entry := f.NewBlock("entry")
	one := f.NewBlock("one")
	def := f.NewBlock("default")

	// Case values must share the operand's type.
	err = entry.NewSwitch(f.Params[0], def, NewCase(NewInt(types.I32, 1), one))
	require.ErrorIs(t, err, ErrType)

	// Switching on a non-integer.
	err = entry.NewSwitch(NewFloat(types.Double, 1), def, NewCase(NewInt(types.I64, 1), one))
	require.ErrorIs(t, err, ErrType)

	require.NoError(t, entry.NewSwitch(f.Params[0], def, NewCase(NewInt(types.I64, 1), one)))
	require.NoError(t, one.NewRet(nil))
	require.NoError(t, def.NewRet(nil))
	require.NoError(t, m.Finish())
}
