package ir

import "slices"

// CompoundOperation is an ordered group of operations treated as a single
// instruction. The cleanup pass removes empty compounds and collapses
// single-element ones back to their sole member.
type CompoundOperation struct {
	Ops []Operation
}

// NewCompound creates an empty compound operation.
func NewCompound() *CompoundOperation {
	return &CompoundOperation{}
}

func (op *CompoundOperation) Kind() OpKind { return None }

// Targets returns the union of the member targets in member order.
func (op *CompoundOperation) Targets() []Qubit {
	var targets []Qubit
	for _, sub := range op.Ops {
		targets = append(targets, sub.Targets()...)
	}
	return targets
}

func (op *CompoundOperation) Controls() []Control { return nil }
func (op *CompoundOperation) NumControls() int    { return 0 }
func (op *CompoundOperation) Params() []float64   { return nil }

func (op *CompoundOperation) ActsOn(q Qubit) bool {
	for _, sub := range op.Ops {
		if sub.ActsOn(q) {
			return true
		}
	}
	return false
}

func (op *CompoundOperation) UsedQubits() []Qubit {
	var used []Qubit
	for _, sub := range op.Ops {
		used = append(used, sub.UsedQubits()...)
	}
	slices.Sort(used)
	return slices.Compact(used)
}

func (op *CompoundOperation) IsUnitary() bool {
	for _, sub := range op.Ops {
		if !sub.IsUnitary() {
			return false
		}
	}
	return true
}

func (op *CompoundOperation) IsStandard() bool { return false }
func (op *CompoundOperation) IsCompound() bool { return true }

func (op *CompoundOperation) IsNonUnitary() bool {
	for _, sub := range op.Ops {
		if sub.IsNonUnitary() {
			return true
		}
	}
	return false
}

func (op *CompoundOperation) IsClassicControlled() bool { return false }

func (op *CompoundOperation) Empty() bool { return len(op.Ops) == 0 }
func (op *CompoundOperation) Len() int    { return len(op.Ops) }

// Append adds an operation at the end of the group.
func (op *CompoundOperation) Append(sub Operation) { op.Ops = append(op.Ops, sub) }

// PopBack removes the last operation of the group.
func (op *CompoundOperation) PopBack() { op.Ops = op.Ops[:len(op.Ops)-1] }

// Merge moves every operation of other into op, leaving other empty.
func (op *CompoundOperation) Merge(other *CompoundOperation) {
	op.Ops = append(op.Ops, other.Ops...)
	other.Ops = nil
}

// CollapsibleToSingle reports whether the group holds exactly one operation
// and can therefore be replaced by it.
func (op *CompoundOperation) CollapsibleToSingle() bool { return len(op.Ops) == 1 }

func (op *CompoundOperation) Clone() Operation {
	clone := &CompoundOperation{Ops: make([]Operation, len(op.Ops))}
	for i, sub := range op.Ops {
		clone.Ops[i] = sub.Clone()
	}
	return clone
}

func (op *CompoundOperation) sealed() {}
