package ir

// Qubit indexes a physical qubit wire.
type Qubit uint32

// Bit indexes a classical bit.
type Bit uint64

// OpKind identifies a gate or non-unitary operation.
type OpKind uint8

const (
	None OpKind = iota
	I
	X
	Y
	Z
	H
	S
	Sdg
	T
	Tdg
	SX
	SXdg
	V
	Vdg
	RX
	RY
	RZ
	Phase
	U2
	U3
	SWAP
	Measure
	Reset
	Barrier
	Snapshot
	ShowProbabilities
)

var kindNames = map[OpKind]string{
	None:              "none",
	I:                 "i",
	X:                 "x",
	Y:                 "y",
	Z:                 "z",
	H:                 "h",
	S:                 "s",
	Sdg:               "sdg",
	T:                 "t",
	Tdg:               "tdg",
	SX:                "sx",
	SXdg:              "sxdg",
	V:                 "v",
	Vdg:               "vdg",
	RX:                "rx",
	RY:                "ry",
	RZ:                "rz",
	Phase:             "p",
	U2:                "u2",
	U3:                "u3",
	SWAP:              "swap",
	Measure:           "measure",
	Reset:             "reset",
	Barrier:           "barrier",
	Snapshot:          "snapshot",
	ShowProbabilities: "show_probabilities",
}

func (k OpKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// diagonalKinds are the gates that only introduce phases in the computational
// basis and therefore cannot change measurement outcome probabilities.
var diagonalKinds = map[OpKind]bool{
	I:     true,
	Z:     true,
	S:     true,
	Sdg:   true,
	T:     true,
	Tdg:   true,
	Phase: true,
	RZ:    true,
}

// IsDiagonal reports whether the kind belongs to the fixed diagonal-gate set.
func (k OpKind) IsDiagonal() bool {
	return diagonalKinds[k]
}

// inverseKinds maps each self- or pair-invertible kind to its inverse.
// Kinds absent from the map have no inverse the fusion pass can exploit.
var inverseKinds = map[OpKind]OpKind{
	I:       I,
	X:       X,
	Y:       Y,
	Z:       Z,
	H:       H,
	S:       Sdg,
	Sdg:     S,
	T:       Tdg,
	Tdg:     T,
	SX:      SXdg,
	SXdg:    SX,
	V:       Vdg,
	Vdg:     V,
	Barrier: Barrier,
}

// InverseOf returns the inverse kind and whether one is known.
func InverseOf(k OpKind) (OpKind, bool) {
	inv, ok := inverseKinds[k]
	return inv, ok
}
