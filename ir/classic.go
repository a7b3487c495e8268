package ir

// ClassicalRegister is a contiguous run of classical bits.
type ClassicalRegister struct {
	Start Bit
	Width uint
}

// ClassicControlledOperation wraps a unitary operation that only executes when
// a classical register holds an expected value at runtime.
type ClassicControlledOperation struct {
	op       Operation
	register ClassicalRegister
	expected uint64
}

// NewClassicControlled wraps op so it fires only when register equals expected.
func NewClassicControlled(op Operation, register ClassicalRegister, expected uint64) *ClassicControlledOperation {
	return &ClassicControlledOperation{op: op, register: register, expected: expected}
}

// Operation returns the wrapped unitary operation.
func (op *ClassicControlledOperation) Operation() Operation { return op.op }

// Register returns the classical register the predicate reads.
func (op *ClassicControlledOperation) Register() ClassicalRegister { return op.register }

// Expected returns the register value that triggers execution.
func (op *ClassicControlledOperation) Expected() uint64 { return op.expected }

// Kind delegates to the wrapped operation, so a wrapper whose inner operation
// has been marked identity is swept by the cleanup pass like any other
// identity.
func (op *ClassicControlledOperation) Kind() OpKind { return op.op.Kind() }

func (op *ClassicControlledOperation) Targets() []Qubit    { return op.op.Targets() }
func (op *ClassicControlledOperation) Controls() []Control { return op.op.Controls() }
func (op *ClassicControlledOperation) NumControls() int    { return op.op.NumControls() }
func (op *ClassicControlledOperation) Params() []float64   { return op.op.Params() }

func (op *ClassicControlledOperation) ActsOn(q Qubit) bool { return op.op.ActsOn(q) }
func (op *ClassicControlledOperation) UsedQubits() []Qubit { return op.op.UsedQubits() }

func (op *ClassicControlledOperation) IsUnitary() bool           { return false }
func (op *ClassicControlledOperation) IsStandard() bool          { return false }
func (op *ClassicControlledOperation) IsCompound() bool          { return false }
func (op *ClassicControlledOperation) IsNonUnitary() bool        { return false }
func (op *ClassicControlledOperation) IsClassicControlled() bool { return true }

func (op *ClassicControlledOperation) Clone() Operation {
	return &ClassicControlledOperation{
		op:       op.op.Clone(),
		register: op.register,
		expected: op.expected,
	}
}

func (op *ClassicControlledOperation) sealed() {}
