package ir

import (
	"testing"

	"github.com/kartiknair/lir/types"
	"github.com/stretchr/testify/require"
)

func TestFreshNames(t *testing.T) {
	m := NewModule("test")
	f, err := m.NewFunc("f", types.Void, NewParam("x", types.I32))
	require.NoError(t, err)
	b := f.NewBlock("entry")

	// Auto-named results count up.
	a, err := b.NewAdd(f.Params[0], NewInt(types.I32, 1))
	require.NoError(t, err)
	c, err := b.NewAdd(a, a)
	require.NoError(t, err)
	require.Equal(t, "%t0", a.Ident())
	require.Equal(t, "%t1", c.Ident())

	// Explicit names win, and clashes get a suffix.
	require.Equal(t, "sum", f.FreshName("sum"))
	require.Equal(t, "sum.1", f.FreshName("sum"))
	require.Equal(t, "sum.2", f.FreshName("sum"))

	// Params occupy the same namespace.
	require.Equal(t, "x.1", f.FreshName("x"))
}

func TestBlockLabels(t *testing.T) {
	m := NewModule("test")
	f, err := m.NewFunc("f", types.Void)
	require.NoError(t, err)

	entry := f.NewBlock("")
	loop := f.NewBlock("loop")
	again := f.NewBlock("loop")
	anon := f.NewBlock("")

	require.Equal(t, "b0", entry.Label)
	require.Equal(t, "loop", loop.Label)
	require.Equal(t, "loop.1", again.Label)
	require.Equal(t, "b1", anon.Label)

	// Labels and locals share one namespace: a value cannot shadow a label.
	require.Equal(t, "loop.2", f.FreshName("loop"))

	require.Same(t, entry, f.Entry())
}

func TestPhiConstructionChecks(t *testing.T) {
	m := NewModule("test")
	f, err := m.NewFunc("f", types.I32, NewParam("c", types.I1))
	require.NoError(t, err)
	entry := f.NewBlock("entry")
	then := f.NewBlock("then")
	els := f.NewBlock("else")
	join := f.NewBlock("join")

	require.NoError(t, entry.NewCondBr(f.Params[0], then, els))
	require.NoError(t, then.NewBr(join))
	require.NoError(t, els.NewBr(join))

	// Incoming types must agree.
	_, err = join.NewPhi(
		NewIncoming(NewInt(types.I32, 1), then),
		NewIncoming(NewInt(types.I64, 2), els),
	)
	require.ErrorIs(t, err, ErrType)

	// A terminated block that does not branch here is rejected eagerly.
	_, err = join.NewPhi(
		NewIncoming(NewInt(types.I32, 1), then),
		NewIncoming(NewInt(types.I32, 2), entry),
	)
	require.ErrorIs(t, err, ErrStructure)

	// Blocks of another function are rejected.
	g, err := m.NewFunc("g", types.Void)
	require.NoError(t, err)
	foreign := g.NewBlock("entry")
	_, err = join.NewPhi(NewIncoming(NewInt(types.I32, 1), foreign))
	require.ErrorIs(t, err, ErrStructure)

	// Duplicate predecessors are rejected.
	_, err = join.NewPhi(
		NewIncoming(NewInt(types.I32, 1), then),
		NewIncoming(NewInt(types.I32, 2), then),
	)
	require.ErrorIs(t, err, ErrStructure)

	phi, err := join.NewPhi(
		NewIncoming(NewInt(types.I32, 1), then),
		NewIncoming(NewInt(types.I32, 2), els),
	)
	require.NoError(t, err)

	// Phis must stay in front of the block.
	_, err = join.NewAdd(phi, NewInt(types.I32, 1))
	require.NoError(t, err)
	_, err = join.NewPhi(NewIncoming(NewInt(types.I32, 3), then))
	require.ErrorIs(t, err, ErrStructure)
}

func TestDeclarationsHaveNoEntry(t *testing.T) {
	m := NewModule("test")
	f, err := m.NewFunc("ext", types.Void, NewParam("x", types.I64))
	require.NoError(t, err)
	require.Nil(t, f.Entry())
	require.NoError(t, m.Finish())
}
