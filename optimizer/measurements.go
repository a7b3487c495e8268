package optimizer

import (
	"fmt"
	"slices"

	"github.com/TeWas/mqt-core/ir"
)

// EliminateResets rewrites every reset into a fresh qubit: the reset is
// removed, a new qubit is allocated, and all subsequent uses of the reset
// qubit are redirected to it. Repeated resets of the same qubit chain
// through consecutive fresh qubits. Trades qubit count for the ability to
// defer measurements.
func EliminateResets(p *ir.Program) {
	replacements := make(map[ir.Qubit]ir.Qubit)
	i := 0
	for i < len(p.Ops) {
		op := p.Ops[i]
		if nu, ok := op.(*ir.NonUnitaryOperation); ok && nu.Kind() == ir.Reset {
			for _, t := range nu.Targets() {
				fresh := ir.Qubit(p.NumQubits())
				p.AddQubit(fresh, fresh)
				replacements[t] = fresh
			}
			p.Ops = slices.Delete(p.Ops, i, i+1)
			continue
		}
		if len(replacements) > 0 {
			if comp, ok := op.(*ir.CompoundOperation); ok {
				j := 0
				for j < len(comp.Ops) {
					if nu, ok := comp.Ops[j].(*ir.NonUnitaryOperation); ok && nu.Kind() == ir.Reset {
						for _, t := range nu.Targets() {
							fresh := ir.Qubit(p.NumQubits())
							p.AddQubit(fresh, fresh)
							replacements[t] = fresh
						}
						comp.Ops = slices.Delete(comp.Ops, j, j+1)
						continue
					}
					replaceQubits(comp.Ops[j], replacements)
					j++
				}
			} else {
				replaceQubits(op, replacements)
			}
		}
		i++
	}
}

// replaceQubits redirects every target and control of op according to the
// replacement map, preserving control polarity.
func replaceQubits(op ir.Operation, replacements map[ir.Qubit]ir.Qubit) {
	switch op := op.(type) {
	case *ir.StandardOperation:
		targets := slices.Clone(op.Targets())
		for i, t := range targets {
			if fresh, ok := replacements[t]; ok {
				targets[i] = fresh
			}
		}
		op.SetTargets(targets)
		controls := slices.Clone(op.Controls())
		for i, c := range controls {
			if fresh, ok := replacements[c.Qubit]; ok {
				controls[i].Qubit = fresh
			}
		}
		op.SetControls(controls)
	case *ir.NonUnitaryOperation:
		targets := slices.Clone(op.Targets())
		for i, t := range targets {
			if fresh, ok := replacements[t]; ok {
				targets[i] = fresh
			}
		}
		op.SetTargets(targets)
	case *ir.ClassicControlledOperation:
		replaceQubits(op.Operation(), replacements)
	case *ir.CompoundOperation:
		for _, member := range op.Ops {
			replaceQubits(member, replacements)
		}
	}
}

// DeferMeasurements moves measurements to the end of the program by turning
// classically controlled operations predicated on a measured bit into
// quantum-controlled operations on the measured qubit. Requires single-qubit
// measurements, single-bit predicates, and a reset-free program; run
// EliminateResets first. On success all measurements sit at the back and the
// output permutation is rebuilt from them.
func DeferMeasurements(p *ir.Program) error {
	deferred := make(map[ir.Qubit]ir.Bit)
	i := 0
	for i < len(p.Ops) {
		meas, ok := p.Ops[i].(*ir.NonUnitaryOperation)
		if !ok || meas.Kind() != ir.Measure {
			i++
			continue
		}
		targets := meas.Targets()
		classics := meas.Classics()
		if len(targets) != 1 || len(classics) != 1 {
			return fmt.Errorf("%w: deferring a measurement acting on more than one qubit; decompose the measurement first", ErrUnsupported)
		}
		if i == len(p.Ops)-1 {
			// already at the back
			break
		}
		qubit := targets[0]
		bit := classics[0]
		deferred[qubit] = bit
		p.Ops = slices.Delete(p.Ops, i, i+1)

		// scan the remainder; ins tracks where a converted operation is
		// reinserted and never overtakes j
		ins := i
		j := i
		for j < len(p.Ops) {
			op := p.Ops[j]
			if op.IsUnitary() {
				if !op.ActsOn(qubit) {
					ins++
				}
				j++
				continue
			}
			if nu, ok := op.(*ir.NonUnitaryOperation); ok {
				if nu.Kind() == ir.Reset {
					return fmt.Errorf("%w: reset encountered while deferring measurements; run EliminateResets first", ErrUnsupported)
				}
				if nu.Kind() == ir.Measure && slices.Equal(nu.Targets(), targets) && slices.Equal(nu.Classics(), classics) {
					// repeated measurement of the same qubit into the
					// same bit; the deferred one covers it
					break
				}
				if !nu.ActsOn(qubit) {
					ins++
				}
				j++
				continue
			}
			cc, ok := op.(*ir.ClassicControlledOperation)
			if !ok {
				if !op.ActsOn(qubit) {
					ins++
				}
				j++
				continue
			}
			reg := cc.Register()
			if reg.Width != 1 {
				return fmt.Errorf("%w: classically controlled operation predicated on more than one bit; decompose the predicate first", ErrUnsupported)
			}
			if reg.Start != bit {
				if !cc.ActsOn(qubit) {
					ins++
				}
				j++
				continue
			}
			inner, ok := cc.Operation().(*ir.StandardOperation)
			if !ok {
				return fmt.Errorf("%w: classically controlled operation does not wrap a standard operation", ErrUnsupported)
			}
			if slices.Contains(inner.Targets(), qubit) {
				return fmt.Errorf("%w: implicit reset of qubit %d: it is measured and then targeted by an operation controlled on the result", ErrUnsupported, qubit)
			}
			ctype := ir.Neg
			if cc.Expected() == 1 {
				ctype = ir.Pos
			}
			controls := slices.Clone(inner.Controls())
			controls = append(controls, ir.Control{Qubit: qubit, Type: ctype})
			converted := ir.NewMultiControlled(controls, inner.Kind(), slices.Clone(inner.Targets())...)
			converted.SetParams(slices.Clone(inner.Params()))
			p.Ops = slices.Delete(p.Ops, j, j+1)
			p.Ops = slices.Insert(p.Ops, ins, ir.Operation(converted))
			ins++
			j = ins
		}
		// re-examine slot i: deletion shifted a new operation into it
	}
	if len(deferred) == 0 {
		return nil
	}
	for q := range p.OutputPermutation {
		delete(p.OutputPermutation, q)
	}
	for _, q := range sortedQubits(deferred) {
		p.AppendMeasurement(q, deferred[q])
	}
	p.InitializeIOMapping()
	return nil
}

func sortedQubits[V any](m map[ir.Qubit]V) []ir.Qubit {
	qs := make([]ir.Qubit, 0, len(m))
	for q := range m {
		qs = append(qs, q)
	}
	slices.Sort(qs)
	return qs
}
