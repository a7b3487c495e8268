package optimizer

import (
	"maps"

	"github.com/TeWas/mqt-core/ir"
)

// BackpropagateOutputPermutation derives an initial layout from the output
// permutation by walking the program backwards and undoing the effect of
// every SWAP. Qubits without an output assignment are filled deterministically
// from the lowest unassigned logical qubit, preferring the identity
// assignment where possible. The result replaces the initial layout.
func BackpropagateOutputPermutation(p *ir.Program) {
	perm := maps.Clone(p.OutputPermutation)
	assigned := make(map[ir.Qubit]bool)
	for _, logical := range perm {
		assigned[logical] = true
	}
	missing := make(map[ir.Qubit]bool)
	for q := ir.Qubit(0); q < ir.Qubit(p.NumQubits()); q++ {
		if !assigned[q] {
			missing[q] = true
		}
	}

	backpropagate(p.Ops, perm, missing)

	// fill any remaining gaps, identity first
	for q := ir.Qubit(0); q < ir.Qubit(p.NumQubits()); q++ {
		if _, ok := perm[q]; ok {
			continue
		}
		if missing[q] {
			delete(missing, q)
			perm[q] = q
			continue
		}
		perm[q] = takeSmallest(missing)
	}
	p.InitialLayout = perm
}

func backpropagate(ops []ir.Operation, perm map[ir.Qubit]ir.Qubit, missing map[ir.Qubit]bool) {
	for i := len(ops) - 1; i >= 0; i-- {
		if comp, ok := ops[i].(*ir.CompoundOperation); ok {
			backpropagate(comp.Ops, perm, missing)
			continue
		}
		swap, ok := isBareSWAP(ops[i])
		if !ok {
			continue
		}
		t0, t1 := swap.Targets()[0], swap.Targets()[1]
		v0, ok0 := perm[t0]
		v1, ok1 := perm[t1]
		switch {
		case ok0 && ok1:
			perm[t0], perm[t1] = v1, v0
		case ok0:
			perm[t1] = v0
			perm[t0] = fill(t0, missing)
		case ok1:
			perm[t0] = v1
			perm[t1] = fill(t1, missing)
		}
	}
}

// fill assigns a logical qubit to a physical qubit that has no output
// assignment: its own index if still free, otherwise the smallest free one.
func fill(q ir.Qubit, missing map[ir.Qubit]bool) ir.Qubit {
	if missing[q] {
		delete(missing, q)
		return q
	}
	return takeSmallest(missing)
}

func takeSmallest(missing map[ir.Qubit]bool) ir.Qubit {
	found := false
	var smallest ir.Qubit
	for q := range missing {
		if !found || q < smallest {
			smallest = q
			found = true
		}
	}
	if found {
		delete(missing, smallest)
	}
	return smallest
}
