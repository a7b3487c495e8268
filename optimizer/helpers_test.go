package optimizer

import (
	"testing"

	"github.com/TeWas/mqt-core/ir"
)

// kinds returns the top-level operation kinds of the program, for compact
// assertions on pass results.
func kinds(p *ir.Program) []ir.OpKind {
	ks := make([]ir.OpKind, len(p.Ops))
	for i, op := range p.Ops {
		ks[i] = op.Kind()
	}
	return ks
}

func expectKinds(t *testing.T, p *ir.Program, want ...ir.OpKind) {
	t.Helper()
	got := kinds(p)
	if len(got) != len(want) {
		t.Fatalf("expected %d operations %v, got %d: %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("operation %d: expected %s, got %s (full: %v)", i, want[i], got[i], got)
		}
	}
}

func cnot(control, target ir.Qubit) *ir.StandardOperation {
	return ir.NewControlled(ir.Control{Qubit: control}, ir.X, target)
}
