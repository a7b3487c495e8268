package optimizer

import (
	"errors"
	"testing"

	"github.com/TeWas/mqt-core/ir"
)

func classicX(target ir.Qubit, bit ir.Bit, expected uint64) *ir.ClassicControlledOperation {
	return ir.NewClassicControlled(
		ir.NewStandard(ir.X, target),
		ir.ClassicalRegister{Start: bit, Width: 1},
		expected,
	)
}

func TestEliminateResetsAllocatesFreshQubit(t *testing.T) {
	p := ir.NewProgram(1)
	p.Append(ir.NewStandard(ir.X, 0))
	p.Append(ir.NewReset(0))
	p.Append(ir.NewStandard(ir.H, 0))

	EliminateResets(p)
	expectKinds(t, p, ir.X, ir.H)
	if p.NumQubits() != 2 {
		t.Fatalf("expected a fresh qubit, got %d qubits", p.NumQubits())
	}
	if p.Ops[0].Targets()[0] != 0 {
		t.Fatalf("gate before the reset must keep its qubit")
	}
	if p.Ops[1].Targets()[0] != 1 {
		t.Fatalf("gate after the reset must use the fresh qubit, got %v", p.Ops[1].Targets())
	}
}

func TestEliminateResetsChainsRepeatedResets(t *testing.T) {
	p := ir.NewProgram(1)
	p.Append(ir.NewReset(0))
	p.Append(ir.NewStandard(ir.X, 0))
	p.Append(ir.NewReset(0))
	p.Append(ir.NewStandard(ir.Z, 0))

	EliminateResets(p)
	expectKinds(t, p, ir.X, ir.Z)
	if p.NumQubits() != 3 {
		t.Fatalf("expected two fresh qubits, got %d", p.NumQubits())
	}
	if p.Ops[0].Targets()[0] != 1 || p.Ops[1].Targets()[0] != 2 {
		t.Fatalf("resets must chain through fresh qubits, got %v and %v",
			p.Ops[0].Targets(), p.Ops[1].Targets())
	}
}

func TestEliminateResetsRewritesControls(t *testing.T) {
	p := ir.NewProgram(2)
	p.Append(ir.NewReset(0))
	p.Append(cnot(0, 1))

	EliminateResets(p)
	expectKinds(t, p, ir.X)
	if p.Ops[0].Controls()[0].Qubit != 2 {
		t.Fatalf("control must move to the fresh qubit, got %v", p.Ops[0].Controls())
	}
}

func TestDeferMeasurementsConvertsClassicControl(t *testing.T) {
	p := ir.NewProgram(2)
	p.Append(ir.NewStandard(ir.H, 0))
	p.AppendMeasurement(0, 0)
	p.Append(classicX(1, 0, 1))

	if err := DeferMeasurements(p); err != nil {
		t.Fatalf("DeferMeasurements: %v", err)
	}
	expectKinds(t, p, ir.H, ir.X, ir.Measure)
	converted := p.Ops[1]
	if converted.NumControls() != 1 || converted.Controls()[0].Qubit != 0 {
		t.Fatalf("expected a quantum control on the measured qubit, got %v", converted.Controls())
	}
	if converted.Controls()[0].Type != ir.Pos {
		t.Fatalf("expected value 1 to map to a positive control")
	}
	if p.OutputPermutation[0] != 0 {
		t.Fatalf("output permutation must map the measured qubit to its bit, got %v", p.OutputPermutation)
	}
}

func TestDeferMeasurementsNegativeControlForExpectedZero(t *testing.T) {
	p := ir.NewProgram(2)
	p.AppendMeasurement(0, 0)
	p.Append(classicX(1, 0, 0))

	if err := DeferMeasurements(p); err != nil {
		t.Fatalf("DeferMeasurements: %v", err)
	}
	expectKinds(t, p, ir.X, ir.Measure)
	if p.Ops[0].Controls()[0].Type != ir.Neg {
		t.Fatalf("expected value 0 to map to a negative control")
	}
}

func TestDeferMeasurementsLeavesTrailingMeasurement(t *testing.T) {
	p := ir.NewProgram(1)
	p.Append(ir.NewStandard(ir.H, 0))
	p.AppendMeasurement(0, 0)

	if err := DeferMeasurements(p); err != nil {
		t.Fatalf("DeferMeasurements: %v", err)
	}
	expectKinds(t, p, ir.H, ir.Measure)
}

func TestDeferMeasurementsRejectsMultiQubitMeasurement(t *testing.T) {
	p := ir.NewProgram(2)
	p.Append(ir.NewMeasurement([]ir.Qubit{0, 1}, []ir.Bit{0, 1}))
	p.Append(ir.NewStandard(ir.H, 0))

	err := DeferMeasurements(p)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestDeferMeasurementsRejectsReset(t *testing.T) {
	p := ir.NewProgram(2)
	p.AppendMeasurement(0, 0)
	p.Append(ir.NewReset(1))

	err := DeferMeasurements(p)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestDeferMeasurementsRejectsWidePredicate(t *testing.T) {
	p := ir.NewProgram(2)
	p.AppendMeasurement(0, 0)
	p.Append(ir.NewClassicControlled(
		ir.NewStandard(ir.X, 1),
		ir.ClassicalRegister{Start: 0, Width: 2},
		1,
	))

	err := DeferMeasurements(p)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestDeferMeasurementsRejectsImplicitReset(t *testing.T) {
	p := ir.NewProgram(1)
	p.AppendMeasurement(0, 0)
	p.Append(classicX(0, 0, 1))

	err := DeferMeasurements(p)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestEliminateResetsThenDefer(t *testing.T) {
	// the documented recipe: resets out first, then deferral succeeds
	p := ir.NewProgram(2)
	p.Append(ir.NewStandard(ir.H, 0))
	p.AppendMeasurement(0, 0)
	p.Append(ir.NewReset(0))
	p.Append(classicX(1, 0, 1))

	EliminateResets(p)
	if err := DeferMeasurements(p); err != nil {
		t.Fatalf("DeferMeasurements after EliminateResets: %v", err)
	}
	for _, op := range p.Ops[:len(p.Ops)-1] {
		if op.Kind() == ir.Measure {
			t.Fatalf("measurement not at the back: %v", kinds(p))
		}
	}
}
