// Package optimizer provides the rewrite passes of the intermediate
// representation: peephole and global transformations that shrink a program
// or normalize it for scheduling, without any numeric simulation.
//
// Passes mutate the program in place. Passes that need topology build a
// transient per-qubit dependency index (DAG) over the instruction stream and
// discard it afterwards; while a DAG is live, a pass may only replace an
// operation's content in place or mark it as identity for the cleanup pass —
// structural edits require rebuilding the DAG.
package optimizer

import (
	"fmt"
	"strings"

	"github.com/TeWas/mqt-core/ir"
)

// DAG is a transient dependency index: dag[q] lists, in program order, the
// indices of the operations acting on physical qubit q. Indices are stable
// handles into the program's instruction stream and stay valid as long as no
// pass inserts or removes operations.
type DAG [][]int

// ConstructDAG builds the dependency index for the program.
func ConstructDAG(p *ir.Program) DAG {
	dag := make(DAG, p.HighestPhysicalQubit()+1)
	for i, op := range p.Ops {
		dag.add(i, op)
	}
	return dag
}

// add records slot i for every qubit the operation acts on.
func (dag DAG) add(i int, op ir.Operation) {
	switch op := op.(type) {
	case *ir.StandardOperation:
		for _, c := range op.Controls() {
			dag[c.Qubit] = append(dag[c.Qubit], i)
		}
		for _, t := range op.Targets() {
			dag[t] = append(dag[t], i)
		}
	case *ir.CompoundOperation:
		for _, q := range op.UsedQubits() {
			dag[q] = append(dag[q], i)
		}
	case *ir.NonUnitaryOperation:
		for _, q := range op.Targets() {
			dag[q] = append(dag[q], i)
		}
	case *ir.ClassicControlledOperation:
		inner := op.Operation()
		for _, c := range inner.Controls() {
			dag[c.Qubit] = append(dag[c.Qubit], i)
		}
		for _, t := range inner.Targets() {
			dag[t] = append(dag[t], i)
		}
	}
}

// FormatDAG renders the dependency index as a qubit-ordered text listing of
// slot indices and operation kinds. Debug output only.
func FormatDAG(p *ir.Program, dag DAG) string {
	var sb strings.Builder
	for q, slots := range dag {
		fmt.Fprintf(&sb, "q[%d]:", q)
		for _, slot := range slots {
			fmt.Fprintf(&sb, " - #%d(%s)", slot, p.Ops[slot].Kind())
		}
		sb.WriteString(" -\n")
	}
	return sb.String()
}
