package ir

import "slices"

// Program is an owned, ordered sequence of operations together with the qubit
// layout metadata. InitialLayout maps physical qubit index to logical qubit
// index at the start of the program; OutputPermutation holds the (possibly
// partial) physical-to-logical mapping valid at the end.
type Program struct {
	Ops               []Operation
	InitialLayout     map[Qubit]Qubit
	OutputPermutation map[Qubit]Qubit
}

// NewProgram creates an empty program over n qubits with identity layouts.
func NewProgram(n uint) *Program {
	p := &Program{
		InitialLayout:     make(map[Qubit]Qubit, n),
		OutputPermutation: make(map[Qubit]Qubit, n),
	}
	for q := Qubit(0); q < Qubit(n); q++ {
		p.InitialLayout[q] = q
		p.OutputPermutation[q] = q
	}
	return p
}

// NumQubits returns the number of qubits in the layout.
func (p *Program) NumQubits() uint { return uint(len(p.InitialLayout)) }

// HighestPhysicalQubit returns the largest physical qubit index in the
// initial layout, or 0 for an empty layout.
func (p *Program) HighestPhysicalQubit() Qubit {
	var highest Qubit
	for q := range p.InitialLayout {
		highest = max(highest, q)
	}
	return highest
}

// AddQubit extends the layout with a fresh physical qubit mapped to the given
// logical qubit in both the initial layout and the output permutation.
func (p *Program) AddQubit(physical, logical Qubit) {
	p.InitialLayout[physical] = logical
	p.OutputPermutation[physical] = logical
}

// Append adds an operation at the end of the instruction stream.
func (p *Program) Append(op Operation) { p.Ops = append(p.Ops, op) }

// AppendMeasurement appends a measurement of qubit q into classical bit b.
func (p *Program) AppendMeasurement(q Qubit, b Bit) {
	p.Append(NewMeasurement([]Qubit{q}, []Bit{b}))
}

// InitializeIOMapping recomputes the output permutation: every qubit whose
// last operation is a measurement maps to the classical bit it is read into,
// and the remaining qubits fall back to their initial-layout entries.
func (p *Program) InitializeIOMapping() {
	p.OutputPermutation = make(map[Qubit]Qubit, len(p.InitialLayout))
	for physical, logical := range p.InitialLayout {
		p.OutputPermutation[physical] = logical
	}
	for i := len(p.Ops) - 1; i >= 0; i-- {
		m, ok := p.Ops[i].(*NonUnitaryOperation)
		if !ok || m.Kind() != Measure {
			break
		}
		qubits := m.Targets()
		classics := m.Classics()
		for j, q := range qubits {
			p.OutputPermutation[q] = Qubit(classics[j])
		}
	}
}

// PhysicalQubits returns the physical qubit indices of the layout in
// ascending order.
func (p *Program) PhysicalQubits() []Qubit {
	qubits := make([]Qubit, 0, len(p.InitialLayout))
	for q := range p.InitialLayout {
		qubits = append(qubits, q)
	}
	slices.Sort(qubits)
	return qubits
}

// Clone deep-copies the program.
func (p *Program) Clone() *Program {
	clone := &Program{
		Ops:               make([]Operation, len(p.Ops)),
		InitialLayout:     make(map[Qubit]Qubit, len(p.InitialLayout)),
		OutputPermutation: make(map[Qubit]Qubit, len(p.OutputPermutation)),
	}
	for i, op := range p.Ops {
		clone.Ops[i] = op.Clone()
	}
	for k, v := range p.InitialLayout {
		clone.InitialLayout[k] = v
	}
	for k, v := range p.OutputPermutation {
		clone.OutputPermutation[k] = v
	}
	return clone
}
