package optimizer

import (
	"github.com/TeWas/mqt-core/ir"
)

// reverseScan walks a dependency index from the back of the program towards
// the front. cursor[q] indexes into dag[q]; a negative cursor means qubit q
// is exhausted. Recursion across qubits is bounded by the qubit count, never
// by the program length.
type reverseScan struct {
	p      *ir.Program
	dag    DAG
	cursor []int
}

func newReverseScan(p *ir.Program) *reverseScan {
	dag := ConstructDAG(p)
	s := &reverseScan{p: p, dag: dag, cursor: make([]int, len(dag))}
	for q := range dag {
		s.cursor[q] = len(dag[q]) - 1
	}
	return s
}

func (s *reverseScan) exhausted(q ir.Qubit) bool { return s.cursor[q] < 0 }

// slot returns the instruction index under the cursor of qubit q.
func (s *reverseScan) slot(q ir.Qubit) int { return s.dag[q][s.cursor[q]] }

func (s *reverseScan) advance(q ir.Qubit) { s.cursor[q]-- }

func (s *reverseScan) stop(q ir.Qubit) { s.cursor[q] = -1 }

// markIdentity neutralizes an operation in place so the trailing
// RemoveIdentities sweep can drop it without disturbing live DAG slots.
func markIdentity(op ir.Operation) {
	switch op := op.(type) {
	case *ir.StandardOperation:
		op.SetKind(ir.I)
	case *ir.NonUnitaryOperation:
		op.MarkIdentity()
	case *ir.ClassicControlledOperation:
		markIdentity(op.Operation())
	}
}

// RemoveDiagonalGatesBeforeMeasure removes diagonal gates that immediately
// precede a trailing measurement on every qubit they act on. Such gates only
// change phases and cannot influence the measurement outcome.
func RemoveDiagonalGatesBeforeMeasure(p *ir.Program) {
	s := newReverseScan(p)
	// only consider qubits that end in a measurement
	for q := range s.dag {
		if len(s.dag[q]) == 0 || p.Ops[s.slot(ir.Qubit(q))].Kind() != ir.Measure {
			s.stop(ir.Qubit(q))
			continue
		}
		s.advance(ir.Qubit(q))
	}
	s.removeDiagonal(0, -1)
	RemoveIdentities(p)
}

// removeDiagonal scans qubit q backwards, marking diagonal gates as
// identity, until a non-diagonal gate or the slot `until` is reached
// (until < 0 means unbounded). When qubit q is exhausted and the scan is
// unbounded, it moves on to the next qubit.
func (s *reverseScan) removeDiagonal(q ir.Qubit, until int) {
	if int(q) >= len(s.dag) {
		return
	}
	for !s.exhausted(q) {
		if until >= 0 && s.slot(q) == until {
			break
		}
		slot := s.slot(q)
		switch op := s.p.Ops[slot].(type) {
		case *ir.StandardOperation:
			if s.removeDiagonalGate(q, slot, op) {
				for _, c := range op.Controls() {
					s.advance(c.Qubit)
				}
				for _, t := range op.Targets() {
					s.advance(t)
				}
			}
		case *ir.CompoundOperation:
			only := true
			for j := len(op.Ops) - 1; j >= 0; j-- {
				member, ok := op.Ops[j].(*ir.StandardOperation)
				if !ok {
					s.stop(q)
					only = false
					break
				}
				if !s.removeDiagonalGate(q, slot, member) {
					only = false
					break
				}
			}
			if only {
				for qb := range s.dag {
					if op.ActsOn(ir.Qubit(qb)) {
						s.advance(ir.Qubit(qb))
					}
				}
			}
		case *ir.ClassicControlledOperation:
			inner, ok := op.Operation().(*ir.StandardOperation)
			if !ok {
				s.stop(q)
				break
			}
			if s.removeDiagonalGate(q, slot, inner) {
				for _, c := range inner.Controls() {
					s.advance(c.Qubit)
				}
				for _, t := range inner.Targets() {
					s.advance(t)
				}
			}
		default:
			s.stop(q)
		}
	}
	if until < 0 && s.exhausted(q) && int(q) < len(s.dag)-1 {
		s.removeDiagonal(q+1, -1)
	}
}

// removeDiagonalGate marks op as identity if it is diagonal and every other
// qubit it acts on can also be scanned back to slot. Negative controls stop
// the scan on their qubit: removing the gate would not be sound there.
func (s *reverseScan) removeDiagonalGate(q ir.Qubit, slot int, op *ir.StandardOperation) bool {
	if !op.Kind().IsDiagonal() {
		s.stop(q)
		return false
	}
	only := true
	for _, c := range op.Controls() {
		if c.Qubit == q {
			continue
		}
		if c.Type == ir.Neg {
			s.stop(c.Qubit)
			only = false
			break
		}
		if s.exhausted(c.Qubit) {
			only = false
			break
		}
		s.removeDiagonal(c.Qubit, slot)
		if s.exhausted(c.Qubit) || s.slot(c.Qubit) != slot {
			only = false
			break
		}
	}
	if only {
		for _, t := range op.Targets() {
			if t == q {
				continue
			}
			if s.exhausted(t) {
				only = false
				break
			}
			s.removeDiagonal(t, slot)
			if s.exhausted(t) || s.slot(t) != slot {
				only = false
				break
			}
		}
	}
	if !only {
		s.stop(q)
		return false
	}
	op.SetKind(ir.I)
	return true
}

// RemoveFinalMeasurements removes trailing measurements and barriers that no
// further operation depends on, including such members inside trailing
// compound operations.
func RemoveFinalMeasurements(p *ir.Program) {
	s := newReverseScan(p)
	s.removeFinal(0, -1)
	RemoveIdentities(p)
}

func (s *reverseScan) removeFinal(q ir.Qubit, until int) {
	if int(q) >= len(s.dag) {
		return
	}
	for !s.exhausted(q) {
		if until >= 0 && s.slot(q) == until {
			break
		}
		slot := s.slot(q)
		switch op := s.p.Ops[slot].(type) {
		case *ir.NonUnitaryOperation:
			if op.Kind() != ir.Measure && op.Kind() != ir.Barrier {
				s.stop(q)
				break
			}
			if s.removeFinalOp(q, slot, op) {
				for _, t := range op.Targets() {
					if s.exhausted(t) {
						break
					}
					s.advance(t)
				}
			}
		case *ir.CompoundOperation:
			if !op.IsNonUnitary() {
				s.stop(q)
				break
			}
			only := true
			for j := len(op.Ops) - 1; j >= 0; j-- {
				member := op.Ops[j]
				if len(member.Targets()) > 0 && member.Targets()[0] != q {
					continue
				}
				if !s.removeFinalOp(q, slot, member) {
					only = false
					break
				}
			}
			if only {
				s.advance(q)
			}
		default:
			s.stop(q)
		}
	}
	if until < 0 && s.exhausted(q) && int(q) < len(s.dag)-1 {
		s.removeFinal(q+1, -1)
	}
}

// removeFinalOp marks a trailing measurement or barrier as identity if its
// remaining target qubits can all be scanned back to the same slot.
func (s *reverseScan) removeFinalOp(q ir.Qubit, slot int, op ir.Operation) bool {
	if len(op.Targets()) == 0 {
		s.stop(q)
		return false
	}
	only := true
	for _, t := range op.Targets() {
		if t == q {
			continue
		}
		if s.exhausted(t) {
			only = false
			break
		}
		s.removeFinal(t, slot)
		if s.exhausted(t) || s.slot(t) != slot {
			only = false
			break
		}
	}
	if !only {
		s.stop(q)
		return false
	}
	markIdentity(op)
	return true
}
