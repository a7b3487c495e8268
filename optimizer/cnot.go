package optimizer

import (
	"github.com/TeWas/mqt-core/ir"
)

// isCNOT reports whether op is an X gate with exactly one positive control.
func isCNOT(op ir.Operation) (*ir.StandardOperation, bool) {
	st, ok := op.(*ir.StandardOperation)
	if !ok {
		return nil, false
	}
	if st.Kind() != ir.X || st.NumControls() != 1 || st.Controls()[0].Type != ir.Pos {
		return nil, false
	}
	return st, true
}

// isBareSWAP reports whether op is an uncontrolled SWAP.
func isBareSWAP(op ir.Operation) (*ir.StandardOperation, bool) {
	st, ok := op.(*ir.StandardOperation)
	if !ok {
		return nil, false
	}
	if st.Kind() != ir.SWAP || st.NumControls() != 0 {
		return nil, false
	}
	return st, true
}

func orderedPair(a, b ir.Qubit) (ir.Qubit, ir.Qubit) {
	if a > b {
		return b, a
	}
	return a, b
}

// SwapReconstruction fuses adjacent CNOT pairs on the same qubit pair:
// equal orientation cancels both gates, opposite orientation rewrites the
// pair into a SWAP followed by a single CNOT. The DAG is built incrementally
// while scanning so each rewrite is immediately visible to the next one.
func SwapReconstruction(p *ir.Program) {
	dag := make(DAG, p.HighestPhysicalQubit()+1)
	for i, op := range p.Ops {
		cnot, ok := isCNOT(op)
		if !ok {
			dag.add(i, op)
			continue
		}
		control := cnot.Controls()[0].Qubit
		target := cnot.Targets()[0]
		if len(dag[control]) == 0 || len(dag[target]) == 0 {
			dag.add(i, op)
			continue
		}
		slot := dag[control][len(dag[control])-1]
		if slot != dag[target][len(dag[target])-1] {
			dag.add(i, op)
			continue
		}
		prev, ok := isCNOT(p.Ops[slot])
		if !ok {
			dag.add(i, op)
			continue
		}
		prevControl := prev.Controls()[0].Qubit
		prevTarget := prev.Targets()[0]
		switch {
		case control == prevControl && target == prevTarget:
			// CX q0,q1 ; CX q0,q1 -- both vanish
			dag[control] = dag[control][:len(dag[control])-1]
			dag[target] = dag[target][:len(dag[target])-1]
			prev.SetKind(ir.I)
			prev.ClearControls()
			cnot.SetKind(ir.I)
			cnot.ClearControls()
		case control == prevTarget && target == prevControl:
			// CX q0,q1 ; CX q1,q0 -- SWAP plus one CNOT
			dag[control] = dag[control][:len(dag[control])-1]
			dag[target] = dag[target][:len(dag[target])-1]
			lo, hi := orderedPair(control, target)
			prev.SetKind(ir.SWAP)
			prev.ClearControls()
			prev.SetTargets([]ir.Qubit{lo, hi})
			dag.add(slot, prev)
			cnot.SetTargets([]ir.Qubit{control})
			cnot.SetControls([]ir.Control{{Qubit: target, Type: ir.Pos}})
			dag.add(i, cnot)
		default:
			dag.add(i, op)
		}
	}
	RemoveIdentities(p)
}

// CancelCNOTs cancels adjacent CNOT and SWAP pairs and exploits the mixed
// rewrites between them: three alternating CNOTs collapse into a SWAP, a
// CNOT commutes through a preceding SWAP by swapping its qubits, and a SWAP
// after a CNOT merges into a reversed CNOT pair.
func CancelCNOTs(p *ir.Program) {
	dag := make(DAG, p.HighestPhysicalQubit()+1)
	for i, op := range p.Ops {
		cnot, okCNOT := isCNOT(op)
		swap, okSWAP := isBareSWAP(op)
		if !okCNOT && !okSWAP {
			dag.add(i, op)
			continue
		}
		var q0, q1 ir.Qubit
		if okSWAP {
			q0, q1 = swap.Targets()[0], swap.Targets()[1]
		} else {
			q0 = cnot.Targets()[0]
			q1 = cnot.Controls()[0].Qubit
		}
		if len(dag[q0]) == 0 || len(dag[q1]) == 0 {
			dag.add(i, op)
			continue
		}
		slot := dag[q0][len(dag[q0])-1]
		if slot != dag[q1][len(dag[q1])-1] {
			dag.add(i, op)
			continue
		}
		prevCNOT, prevIsCNOT := isCNOT(p.Ops[slot])
		prevSWAP, prevIsSWAP := isBareSWAP(p.Ops[slot])
		if !prevIsCNOT && !prevIsSWAP {
			dag.add(i, op)
			continue
		}
		var prevQ0, prevQ1 ir.Qubit
		if prevIsSWAP {
			prevQ0, prevQ1 = prevSWAP.Targets()[0], prevSWAP.Targets()[1]
		} else {
			prevQ0 = prevCNOT.Targets()[0]
			prevQ1 = prevCNOT.Controls()[0].Qubit
		}
		switch {
		case okCNOT && prevIsCNOT:
			if q0 == prevQ0 && q1 == prevQ1 {
				// identical CNOTs cancel
				dag[q0] = dag[q0][:len(dag[q0])-1]
				dag[q1] = dag[q1][:len(dag[q1])-1]
				prevCNOT.SetKind(ir.I)
				prevCNOT.ClearControls()
				cnot.SetKind(ir.I)
				cnot.ClearControls()
				continue
			}
			if q0 != prevQ1 || q1 != prevQ0 {
				dag.add(i, op)
				continue
			}
			// alternating orientation: look one further back for the
			// third CNOT of a SWAP pattern
			if len(dag[q0]) < 2 || len(dag[q1]) < 2 {
				dag.add(i, op)
				continue
			}
			third := dag[q0][len(dag[q0])-2]
			if third != dag[q1][len(dag[q1])-2] {
				dag.add(i, op)
				continue
			}
			thirdCNOT, ok := isCNOT(p.Ops[third])
			if !ok {
				dag.add(i, op)
				continue
			}
			if q0 != thirdCNOT.Targets()[0] || q1 != thirdCNOT.Controls()[0].Qubit {
				dag.add(i, op)
				continue
			}
			// CX a,b ; CX b,a ; CX a,b == SWAP a,b
			lo, hi := orderedPair(q0, q1)
			thirdCNOT.SetKind(ir.SWAP)
			thirdCNOT.ClearControls()
			thirdCNOT.SetTargets([]ir.Qubit{lo, hi})
			prevCNOT.SetKind(ir.I)
			prevCNOT.ClearControls()
			cnot.SetKind(ir.I)
			cnot.ClearControls()
			dag[q0] = dag[q0][:len(dag[q0])-1]
			dag[q1] = dag[q1][:len(dag[q1])-1]
		case okSWAP && prevIsSWAP:
			if (q0 == prevQ0 && q1 == prevQ1) || (q0 == prevQ1 && q1 == prevQ0) {
				// adjacent SWAPs on the same pair cancel
				dag[q0] = dag[q0][:len(dag[q0])-1]
				dag[q1] = dag[q1][:len(dag[q1])-1]
				prevSWAP.SetKind(ir.I)
				swap.SetKind(ir.I)
				continue
			}
			dag.add(i, op)
		case okCNOT && prevIsSWAP:
			// SWAP ; CX q1,q0 == CX q0,q1 ; SWAP, expressed as two CNOTs
			prevSWAP.SetKind(ir.X)
			prevSWAP.SetTargets([]ir.Qubit{q0})
			prevSWAP.SetControls([]ir.Control{{Qubit: q1, Type: ir.Pos}})
			cnot.SetTargets([]ir.Qubit{q1})
			cnot.SetControls([]ir.Control{{Qubit: q0, Type: ir.Pos}})
			dag.add(i, op)
		case okSWAP && prevIsCNOT:
			// CX q1,q0 ; SWAP == CX q0,q1 ; CX q1,q0
			prevCNOT.SetTargets([]ir.Qubit{prevQ1})
			prevCNOT.SetControls([]ir.Control{{Qubit: prevQ0, Type: ir.Pos}})
			swap.SetKind(ir.X)
			swap.SetTargets([]ir.Qubit{prevQ0})
			swap.SetControls([]ir.Control{{Qubit: prevQ1, Type: ir.Pos}})
			dag.add(i, op)
		}
	}
	RemoveIdentities(p)
}
