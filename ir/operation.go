package ir

import "slices"

// ControlType is the polarity of a control qubit.
type ControlType uint8

const (
	// Pos fires the operation when the control qubit is |1>.
	Pos ControlType = iota
	// Neg fires the operation when the control qubit is |0>.
	Neg
)

// Control is a control qubit together with its polarity.
type Control struct {
	Qubit Qubit
	Type  ControlType
}

// Operation is one instruction of a quantum program. The concrete variants are
// StandardOperation, CompoundOperation, NonUnitaryOperation and
// ClassicControlledOperation; the interface is sealed so a type switch over
// these four is exhaustive.
type Operation interface {
	Kind() OpKind
	Targets() []Qubit
	Controls() []Control
	NumControls() int
	Params() []float64
	// ActsOn reports whether q appears among the operation's targets or
	// controls (or, for a measurement, its qubit list).
	ActsOn(q Qubit) bool
	// UsedQubits returns all qubits the operation touches, sorted ascending.
	UsedQubits() []Qubit
	IsUnitary() bool
	IsStandard() bool
	IsCompound() bool
	IsNonUnitary() bool
	IsClassicControlled() bool
	Clone() Operation

	sealed()
}

// StandardOperation is a plain gate: a kind, an ordered target list, a sorted
// control set and optional real parameters.
type StandardOperation struct {
	kind     OpKind
	targets  []Qubit
	controls []Control
	params   []float64
}

// NewStandard creates an uncontrolled gate.
func NewStandard(kind OpKind, targets ...Qubit) *StandardOperation {
	return &StandardOperation{kind: kind, targets: targets}
}

// NewStandardP creates an uncontrolled parameterized gate.
func NewStandardP(kind OpKind, params []float64, targets ...Qubit) *StandardOperation {
	return &StandardOperation{kind: kind, targets: targets, params: params}
}

// NewControlled creates a gate with a single control.
func NewControlled(control Control, kind OpKind, targets ...Qubit) *StandardOperation {
	return &StandardOperation{kind: kind, targets: targets, controls: []Control{control}}
}

// NewMultiControlled creates a gate with several controls.
func NewMultiControlled(controls []Control, kind OpKind, targets ...Qubit) *StandardOperation {
	op := &StandardOperation{kind: kind, targets: targets}
	op.SetControls(controls)
	return op
}

func (op *StandardOperation) Kind() OpKind        { return op.kind }
func (op *StandardOperation) Targets() []Qubit    { return op.targets }
func (op *StandardOperation) Controls() []Control { return op.controls }
func (op *StandardOperation) NumControls() int    { return len(op.controls) }
func (op *StandardOperation) Params() []float64   { return op.params }

// SetKind replaces the gate kind in place. Marking an operation as identity
// (SetKind(I) plus ClearControls) is how passes schedule it for removal while
// dependency lists referring to it are still live.
func (op *StandardOperation) SetKind(kind OpKind) { op.kind = kind }

// SetTargets replaces the target list in place.
func (op *StandardOperation) SetTargets(targets []Qubit) { op.targets = targets }

// SetControls replaces the control set, keeping it sorted by qubit.
func (op *StandardOperation) SetControls(controls []Control) {
	op.controls = slices.Clone(controls)
	slices.SortFunc(op.controls, func(a, b Control) int {
		return int(a.Qubit) - int(b.Qubit)
	})
}

// ClearControls removes every control.
func (op *StandardOperation) ClearControls() { op.controls = nil }

// SetParams replaces the parameter list in place.
func (op *StandardOperation) SetParams(params []float64) { op.params = params }

func (op *StandardOperation) ActsOn(q Qubit) bool {
	if slices.Contains(op.targets, q) {
		return true
	}
	for _, c := range op.controls {
		if c.Qubit == q {
			return true
		}
	}
	return false
}

func (op *StandardOperation) UsedQubits() []Qubit {
	used := make([]Qubit, 0, len(op.targets)+len(op.controls))
	used = append(used, op.targets...)
	for _, c := range op.controls {
		used = append(used, c.Qubit)
	}
	slices.Sort(used)
	return slices.Compact(used)
}

func (op *StandardOperation) IsUnitary() bool           { return true }
func (op *StandardOperation) IsStandard() bool          { return true }
func (op *StandardOperation) IsCompound() bool          { return false }
func (op *StandardOperation) IsNonUnitary() bool        { return false }
func (op *StandardOperation) IsClassicControlled() bool { return false }

func (op *StandardOperation) Clone() Operation {
	return &StandardOperation{
		kind:     op.kind,
		targets:  slices.Clone(op.targets),
		controls: slices.Clone(op.controls),
		params:   slices.Clone(op.params),
	}
}

func (op *StandardOperation) sealed() {}
