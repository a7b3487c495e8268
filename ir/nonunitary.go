package ir

import "slices"

// NonUnitaryOperation is a measurement, reset, barrier or diagnostic output
// instruction. For a measurement, Qubits and Classics have equal length and
// qubit [i] is read out into classical bit [i].
type NonUnitaryOperation struct {
	kind     OpKind
	qubits   []Qubit
	classics []Bit
	param    float64
}

// NewMeasurement creates a measurement of qubits into classical bits. Both
// lists must have the same length.
func NewMeasurement(qubits []Qubit, classics []Bit) *NonUnitaryOperation {
	if len(qubits) != len(classics) {
		panic("ir: measurement qubit and classical bit lists differ in length")
	}
	return &NonUnitaryOperation{kind: Measure, qubits: qubits, classics: classics}
}

// NewReset creates a reset of the given qubits.
func NewReset(qubits ...Qubit) *NonUnitaryOperation {
	return &NonUnitaryOperation{kind: Reset, qubits: qubits}
}

// NewBarrier creates a barrier across the given qubits.
func NewBarrier(qubits ...Qubit) *NonUnitaryOperation {
	return &NonUnitaryOperation{kind: Barrier, qubits: qubits}
}

// NewSnapshot creates a snapshot instruction carrying one numeric parameter.
func NewSnapshot(param float64, qubits ...Qubit) *NonUnitaryOperation {
	return &NonUnitaryOperation{kind: Snapshot, qubits: qubits, param: param}
}

// NewShowProbabilities creates a probability dump instruction.
func NewShowProbabilities() *NonUnitaryOperation {
	return &NonUnitaryOperation{kind: ShowProbabilities}
}

func (op *NonUnitaryOperation) Kind() OpKind { return op.kind }

// Targets returns the qubit list; for a measurement these are the measured
// qubits.
func (op *NonUnitaryOperation) Targets() []Qubit { return op.qubits }

// Classics returns the classical bits a measurement writes into.
func (op *NonUnitaryOperation) Classics() []Bit { return op.classics }

// Param returns the numeric parameter of a snapshot.
func (op *NonUnitaryOperation) Param() float64 { return op.param }

func (op *NonUnitaryOperation) Controls() []Control { return nil }
func (op *NonUnitaryOperation) NumControls() int    { return 0 }
func (op *NonUnitaryOperation) Params() []float64   { return nil }

func (op *NonUnitaryOperation) ActsOn(q Qubit) bool {
	return slices.Contains(op.qubits, q)
}

func (op *NonUnitaryOperation) UsedQubits() []Qubit {
	used := slices.Clone(op.qubits)
	slices.Sort(used)
	return slices.Compact(used)
}

// SetTargets replaces the qubit list in place.
func (op *NonUnitaryOperation) SetTargets(qubits []Qubit) { op.qubits = qubits }

// MarkIdentity neutralizes the operation so a cleanup sweep can remove it
// without invalidating references held elsewhere.
func (op *NonUnitaryOperation) MarkIdentity() {
	op.kind = I
	op.classics = nil
}

func (op *NonUnitaryOperation) IsUnitary() bool           { return false }
func (op *NonUnitaryOperation) IsStandard() bool          { return false }
func (op *NonUnitaryOperation) IsCompound() bool          { return false }
func (op *NonUnitaryOperation) IsNonUnitary() bool        { return true }
func (op *NonUnitaryOperation) IsClassicControlled() bool { return false }

func (op *NonUnitaryOperation) Clone() Operation {
	return &NonUnitaryOperation{
		kind:     op.kind,
		qubits:   slices.Clone(op.qubits),
		classics: slices.Clone(op.classics),
		param:    op.param,
	}
}

func (op *NonUnitaryOperation) sealed() {}
