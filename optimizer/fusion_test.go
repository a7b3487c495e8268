package optimizer

import (
	"testing"

	"github.com/TeWas/mqt-core/ir"
)

func TestFusionCancelsInversePair(t *testing.T) {
	tests := []struct {
		name string
		a, b ir.OpKind
	}{
		{"hadamard", ir.H, ir.H},
		{"pauli-x", ir.X, ir.X},
		{"s-sdg", ir.S, ir.Sdg},
		{"tdg-t", ir.Tdg, ir.T},
		{"sx-sxdg", ir.SX, ir.SXdg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ir.NewProgram(1)
			p.Append(ir.NewStandard(tt.a, 0))
			p.Append(ir.NewStandard(tt.b, 0))

			SingleQubitGateFusion(p)
			if len(p.Ops) != 0 {
				t.Fatalf("expected %s and %s to cancel, got %v", tt.a, tt.b, kinds(p))
			}
		})
	}
}

func TestFusionBuildsCompound(t *testing.T) {
	p := ir.NewProgram(1)
	p.Append(ir.NewStandard(ir.X, 0))
	p.Append(ir.NewStandard(ir.Y, 0))
	p.Append(ir.NewStandard(ir.Z, 0))

	SingleQubitGateFusion(p)
	if len(p.Ops) != 1 {
		t.Fatalf("expected a single fused operation, got %v", kinds(p))
	}
	comp, ok := p.Ops[0].(*ir.CompoundOperation)
	if !ok {
		t.Fatalf("expected a compound operation, got %T", p.Ops[0])
	}
	if comp.Len() != 3 {
		t.Fatalf("expected 3 members, got %d", comp.Len())
	}
}

func TestFusionPopsInvertedCompoundMember(t *testing.T) {
	// X Y then Y: the trailing Y cancels against the compound's last member
	p := ir.NewProgram(1)
	p.Append(ir.NewStandard(ir.X, 0))
	p.Append(ir.NewStandard(ir.Y, 0))
	p.Append(ir.NewStandard(ir.Y, 0))

	SingleQubitGateFusion(p)
	expectKinds(t, p, ir.X)
}

func TestFusionStopsAtMultiQubitGate(t *testing.T) {
	p := ir.NewProgram(2)
	p.Append(ir.NewStandard(ir.H, 0))
	p.Append(cnot(0, 1))
	p.Append(ir.NewStandard(ir.H, 0))

	SingleQubitGateFusion(p)
	expectKinds(t, p, ir.H, ir.X, ir.H)
}

func TestFusionKeepsParameters(t *testing.T) {
	p := ir.NewProgram(1)
	p.Append(ir.NewStandardP(ir.RZ, []float64{0.5}, 0))
	p.Append(ir.NewStandardP(ir.RZ, []float64{0.25}, 0))

	SingleQubitGateFusion(p)
	if len(p.Ops) != 1 {
		t.Fatalf("expected a single fused operation, got %v", kinds(p))
	}
	comp, ok := p.Ops[0].(*ir.CompoundOperation)
	if !ok {
		t.Fatalf("expected a compound operation, got %T", p.Ops[0])
	}
	if got := comp.Ops[0].Params(); len(got) != 1 || got[0] != 0.5 {
		t.Fatalf("expected first member to keep its parameter, got %v", got)
	}
	if got := comp.Ops[1].Params(); len(got) != 1 || got[0] != 0.25 {
		t.Fatalf("expected second member to keep its parameter, got %v", got)
	}
}
