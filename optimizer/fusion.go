package optimizer

import (
	"slices"

	"github.com/TeWas/mqt-core/ir"
)

// SingleQubitGateFusion merges runs of single-qubit gates on the same qubit
// into compound operations. Adjacent inverse pairs annihilate instead of
// fusing, and a gate that inverts the last member of an open compound pops
// that member. Compounds only absorb further gates while they still span a
// single qubit.
func SingleQubitGateFusion(p *ir.Program) {
	dag := make(DAG, p.HighestPhysicalQubit()+1)
	for i, op := range p.Ops {
		st, ok := op.(*ir.StandardOperation)
		if !ok || st.NumControls() != 0 || len(st.Targets()) != 1 {
			dag.add(i, op)
			continue
		}
		target := st.Targets()[0]
		if len(dag[target]) == 0 {
			dag.add(i, op)
			continue
		}
		slot := dag[target][len(dag[target])-1]
		prev := p.Ops[slot]

		if comp, ok := prev.(*ir.CompoundOperation); ok {
			involved := 0
			for q := range dag {
				if comp.ActsOn(ir.Qubit(q)) {
					involved++
				}
			}
			if involved > 1 {
				dag.add(i, op)
				continue
			}
			if !comp.Empty() {
				last := comp.Ops[len(comp.Ops)-1]
				if inv, ok := ir.InverseOf(last.Kind()); ok && st.Kind() == inv && len(last.Params()) == 0 && len(st.Params()) == 0 {
					comp.PopBack()
					st.SetKind(ir.I)
					continue
				}
			}
			member := ir.NewStandardP(st.Kind(), slices.Clone(st.Params()), target)
			comp.Append(member)
			st.SetKind(ir.I)
			continue
		}

		prevSt, ok := prev.(*ir.StandardOperation)
		if !ok || prevSt.NumControls() != 0 || len(prevSt.Targets()) != 1 {
			dag.add(i, op)
			continue
		}
		if inv, ok := ir.InverseOf(prevSt.Kind()); ok && st.Kind() == inv && len(prevSt.Params()) == 0 && len(st.Params()) == 0 {
			prevSt.SetKind(ir.I)
			st.SetKind(ir.I)
			continue
		}
		comp := ir.NewCompound()
		comp.Append(ir.NewStandardP(prevSt.Kind(), slices.Clone(prevSt.Params()), prevSt.Targets()[0]))
		comp.Append(ir.NewStandardP(st.Kind(), slices.Clone(st.Params()), target))
		st.SetKind(ir.I)
		p.Ops[slot] = comp
		dag[target] = append(dag[target], slot)
	}
	RemoveIdentities(p)
}
