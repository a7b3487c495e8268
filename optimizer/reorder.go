package optimizer

import "github.com/TeWas/mqt-core/ir"

// ReorderOperations rebuilds the instruction stream in a canonical
// dependency-respecting order: repeatedly, scanning qubits from highest to
// lowest, it emits the frontier operation of a qubit as soon as every qubit
// the operation acts on has it at its frontier. The result is a
// deterministic topological order of the dependency index.
//
// The returned flag is true when the program contains classically
// controlled operations; reordering ignores classical dependencies, so the
// result should be treated with caution in that case.
func ReorderOperations(p *ir.Program) bool {
	dag := ConstructDAG(p)
	cursor := make([]int, len(dag))
	caution := false
	ordered := make([]ir.Operation, 0, len(p.Ops))

	for {
		done := true
		for q := len(dag) - 1; q >= 0; q-- {
			if cursor[q] >= len(dag[q]) {
				continue
			}
			done = false
			slot := dag[q][cursor[q]]
			op := p.Ops[slot]
			if op.IsClassicControlled() {
				caution = true
			}
			actsOn := make([]bool, len(dag))
			actsOn[q] = true
			executable := true
			for other := len(dag) - 1; other >= 0; other-- {
				if other == q || !op.ActsOn(ir.Qubit(other)) {
					continue
				}
				actsOn[other] = true
				if cursor[other] >= len(dag[other]) || dag[other][cursor[other]] != slot {
					executable = false
					break
				}
			}
			if !executable {
				continue
			}
			ordered = append(ordered, op)
			for qb, acts := range actsOn {
				if acts {
					cursor[qb]++
				}
			}
		}
		if done {
			break
		}
	}
	p.Ops = ordered
	return caution
}
