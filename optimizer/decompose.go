package optimizer

import (
	"slices"

	"github.com/TeWas/mqt-core/ir"
)

// DecomposeSWAP replaces every uncontrolled SWAP by three alternating CNOTs.
// On a directed architecture the middle CNOT cannot be reversed, so it is
// expressed as a forward CNOT sandwiched between Hadamards instead. Applies
// inside compound operations as well.
func DecomposeSWAP(p *ir.Program, directedArchitecture bool) {
	p.Ops = decomposeSWAPs(p.Ops, directedArchitecture)
}

func decomposeSWAPs(ops []ir.Operation, directed bool) []ir.Operation {
	i := 0
	for i < len(ops) {
		if comp, ok := ops[i].(*ir.CompoundOperation); ok {
			comp.Ops = decomposeSWAPs(comp.Ops, directed)
			i++
			continue
		}
		swap, ok := isBareSWAP(ops[i])
		if !ok {
			i++
			continue
		}
		t0, t1 := swap.Targets()[0], swap.Targets()[1]
		var repl []ir.Operation
		if directed {
			repl = []ir.Operation{
				ir.NewControlled(ir.Control{Qubit: t0}, ir.X, t1),
				ir.NewStandard(ir.H, t1),
				ir.NewStandard(ir.H, t0),
				ir.NewControlled(ir.Control{Qubit: t0}, ir.X, t1),
				ir.NewStandard(ir.H, t1),
				ir.NewStandard(ir.H, t0),
				ir.NewControlled(ir.Control{Qubit: t0}, ir.X, t1),
			}
		} else {
			repl = []ir.Operation{
				ir.NewControlled(ir.Control{Qubit: t0}, ir.X, t1),
				ir.NewControlled(ir.Control{Qubit: t1}, ir.X, t0),
				ir.NewControlled(ir.Control{Qubit: t0}, ir.X, t1),
			}
		}
		ops = slices.Replace(ops, i, i+1, repl...)
		i += len(repl)
	}
	return ops
}

// ReplaceMCXWithMCZ rewrites every controlled X into a controlled Z
// conjugated by Hadamards on the target. Applies inside compound operations
// as well.
func ReplaceMCXWithMCZ(p *ir.Program) {
	p.Ops = replaceMCXWithMCZ(p.Ops)
}

func replaceMCXWithMCZ(ops []ir.Operation) []ir.Operation {
	i := 0
	for i < len(ops) {
		if comp, ok := ops[i].(*ir.CompoundOperation); ok {
			comp.Ops = replaceMCXWithMCZ(comp.Ops)
			i++
			continue
		}
		st, ok := ops[i].(*ir.StandardOperation)
		if !ok || st.Kind() != ir.X || st.NumControls() == 0 {
			i++
			continue
		}
		target := st.Targets()[0]
		repl := []ir.Operation{
			ir.NewStandard(ir.H, target),
			ir.NewMultiControlled(slices.Clone(st.Controls()), ir.Z, target),
			ir.NewStandard(ir.H, target),
		}
		ops = slices.Replace(ops, i, i+1, repl...)
		i += len(repl)
	}
	return ops
}
