package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardOperationControlsSorted(t *testing.T) {
	op := NewMultiControlled([]Control{{Qubit: 5}, {Qubit: 2}, {Qubit: 7}}, X, 1)
	require.Equal(t, 3, op.NumControls())
	assert.Equal(t, Qubit(2), op.Controls()[0].Qubit)
	assert.Equal(t, Qubit(5), op.Controls()[1].Qubit)
	assert.Equal(t, Qubit(7), op.Controls()[2].Qubit)
}

func TestStandardOperationUsedQubits(t *testing.T) {
	op := NewControlled(Control{Qubit: 3}, X, 1)
	assert.Equal(t, []Qubit{1, 3}, op.UsedQubits())
	assert.True(t, op.ActsOn(1))
	assert.True(t, op.ActsOn(3))
	assert.False(t, op.ActsOn(2))
	assert.True(t, op.IsUnitary())
}

func TestInverseOf(t *testing.T) {
	inv, ok := InverseOf(S)
	require.True(t, ok)
	assert.Equal(t, Sdg, inv)

	inv, ok = InverseOf(H)
	require.True(t, ok)
	assert.Equal(t, H, inv)

	_, ok = InverseOf(RX)
	assert.False(t, ok, "parameterized kinds have no table inverse")
}

func TestCompoundOperationAggregates(t *testing.T) {
	comp := NewCompound()
	assert.True(t, comp.Empty())

	comp.Append(NewStandard(H, 0))
	comp.Append(NewControlled(Control{Qubit: 0}, X, 2))
	assert.Equal(t, []Qubit{0, 2}, comp.UsedQubits())
	assert.True(t, comp.IsUnitary())
	assert.False(t, comp.IsNonUnitary())

	comp.Append(NewMeasurement([]Qubit{2}, []Bit{0}))
	assert.False(t, comp.IsUnitary())
	assert.True(t, comp.IsNonUnitary())
}

func TestClassicControlledDelegates(t *testing.T) {
	inner := NewStandard(Z, 1)
	cc := NewClassicControlled(inner, ClassicalRegister{Start: 2, Width: 1}, 1)

	assert.Equal(t, Z, cc.Kind())
	assert.Equal(t, []Qubit{1}, cc.Targets())
	assert.True(t, cc.ActsOn(1))
	assert.False(t, cc.IsUnitary())
	assert.True(t, cc.IsClassicControlled())

	// marking the wrapped operation as identity shows through
	inner.SetKind(I)
	assert.Equal(t, I, cc.Kind())
}

func TestNonUnitaryMarkIdentity(t *testing.T) {
	m := NewMeasurement([]Qubit{0}, []Bit{0})
	require.Equal(t, Measure, m.Kind())
	m.MarkIdentity()
	assert.Equal(t, I, m.Kind())
	assert.Empty(t, m.Classics())
}

func TestMeasurementLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewMeasurement([]Qubit{0, 1}, []Bit{0})
	})
}

func TestCloneIsDeep(t *testing.T) {
	p := NewProgram(2)
	p.Append(NewStandard(H, 0))
	comp := NewCompound()
	comp.Append(NewStandard(X, 1))
	p.Append(comp)

	clone := p.Clone()
	clone.Ops[0].(*StandardOperation).SetKind(Z)
	clone.Ops[1].(*CompoundOperation).Ops[0].(*StandardOperation).SetKind(Y)
	clone.InitialLayout[0] = 1

	assert.Equal(t, H, p.Ops[0].Kind())
	assert.Equal(t, X, p.Ops[1].(*CompoundOperation).Ops[0].Kind())
	assert.Equal(t, Qubit(0), p.InitialLayout[0])
}

func TestInitializeIOMapping(t *testing.T) {
	p := NewProgram(2)
	p.Append(NewStandard(H, 0))
	p.AppendMeasurement(0, 1)
	p.AppendMeasurement(1, 0)

	p.InitializeIOMapping()
	assert.Equal(t, Qubit(1), p.OutputPermutation[0])
	assert.Equal(t, Qubit(0), p.OutputPermutation[1])
}

func TestInitializeIOMappingStopsAtNonMeasurement(t *testing.T) {
	p := NewProgram(2)
	p.AppendMeasurement(0, 1)
	p.Append(NewStandard(H, 0))
	p.AppendMeasurement(1, 0)

	p.InitializeIOMapping()
	// only the trailing measurement block counts
	assert.Equal(t, Qubit(0), p.OutputPermutation[1])
	assert.Equal(t, Qubit(0), p.OutputPermutation[0], "falls back to the initial layout")
}
