package optimizer

import "github.com/TeWas/mqt-core/ir"

type dynamicEntry uint8

const (
	entryGate dynamicEntry = iota
	entryMeasure
	entryTrivial
)

// IsDynamicCircuit reports whether the program contains mid-circuit
// measurements, resets, or classically controlled operations, i.e. whether
// it cannot run on hardware that only measures at the very end. Any reset or
// classical control is immediately dynamic; a measurement only counts when
// some gate still acts on the measured qubit afterwards.
func IsDynamicCircuit(p *ir.Program) bool {
	entries := make([][]dynamicEntry, p.HighestPhysicalQubit()+1)
	record := func(op ir.Operation, e dynamicEntry) {
		for _, q := range op.UsedQubits() {
			entries[q] = append(entries[q], e)
		}
	}
	hasMeasurement := false

	classify := func(op ir.Operation) (dynamic bool) {
		switch op := op.(type) {
		case *ir.ClassicControlledOperation:
			return true
		case *ir.NonUnitaryOperation:
			switch op.Kind() {
			case ir.Reset:
				return true
			case ir.Measure:
				hasMeasurement = true
				record(op, entryMeasure)
			default:
				record(op, entryTrivial)
			}
		default:
			record(op, entryGate)
		}
		return false
	}

	for _, op := range p.Ops {
		if comp, ok := op.(*ir.CompoundOperation); ok {
			for _, member := range comp.Ops {
				if classify(member) {
					return true
				}
			}
			continue
		}
		if classify(op) {
			return true
		}
	}
	if !hasMeasurement {
		return false
	}

	for _, list := range entries {
		sawGate := false
		for i := len(list) - 1; i >= 0; i-- {
			if list[i] == entryMeasure {
				if sawGate {
					return true
				}
				break
			}
			if list[i] == entryGate {
				sawGate = true
			}
		}
	}
	return false
}
