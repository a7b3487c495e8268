package qasm

import (
	"fmt"
	"strings"

	"github.com/TeWas/mqt-core/ir"
)

// kindNames maps operation kinds to their QASM gate names.
var kindNames = map[ir.OpKind]string{
	ir.I:     "id",
	ir.X:     "x",
	ir.Y:     "y",
	ir.Z:     "z",
	ir.H:     "h",
	ir.S:     "s",
	ir.Sdg:   "sdg",
	ir.T:     "t",
	ir.Tdg:   "tdg",
	ir.SX:    "sx",
	ir.SXdg:  "sxdg",
	ir.RX:    "rx",
	ir.RY:    "ry",
	ir.RZ:    "rz",
	ir.Phase: "p",
	ir.U2:    "u2",
	ir.U3:    "u3",
	ir.SWAP:  "swap",
}

// Write renders the program as OpenQASM 2.0 text. All classical bits live in
// a single register c; compound operations are written member by member.
func Write(p *ir.Program) string {
	numQubits := max(int(p.HighestPhysicalQubit())+1, 1)
	numBits := max(highestClassic(p.Ops)+1, 1)

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", numQubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", numBits)

	for _, op := range p.Ops {
		writeOp(&sb, op)
	}
	return sb.String()
}

func highestClassic(ops []ir.Operation) int {
	highest := -1
	for _, op := range ops {
		switch op := op.(type) {
		case *ir.NonUnitaryOperation:
			for _, b := range op.Classics() {
				highest = max(highest, int(b))
			}
		case *ir.ClassicControlledOperation:
			reg := op.Register()
			highest = max(highest, int(reg.Start)+int(reg.Width)-1)
		case *ir.CompoundOperation:
			highest = max(highest, highestClassic(op.Ops))
		}
	}
	return highest
}

func writeOp(sb *strings.Builder, op ir.Operation) {
	switch op := op.(type) {
	case *ir.StandardOperation:
		writeStandard(sb, op)
	case *ir.CompoundOperation:
		for _, member := range op.Ops {
			writeOp(sb, member)
		}
	case *ir.NonUnitaryOperation:
		writeNonUnitary(sb, op)
	case *ir.ClassicControlledOperation:
		reg := op.Register()
		inner, ok := op.Operation().(*ir.StandardOperation)
		if !ok {
			return
		}
		if reg.Width == 1 {
			fmt.Fprintf(sb, "if (c[%d]==%d) ", reg.Start, op.Expected())
		} else {
			fmt.Fprintf(sb, "if (c==%d) ", op.Expected())
		}
		writeStandard(sb, inner)
	}
}

func writeStandard(sb *strings.Builder, op *ir.StandardOperation) {
	name, ok := kindNames[op.Kind()]
	if !ok {
		fmt.Fprintf(sb, "// unsupported gate %s\n", op.Kind())
		return
	}
	controls := op.Controls()

	// negative controls are conjugated by x
	for _, c := range controls {
		if c.Type == ir.Neg {
			fmt.Fprintf(sb, "x q[%d];\n", c.Qubit)
		}
	}

	var args []string
	if len(controls) > 0 {
		name = strings.Repeat("c", len(controls)) + name
		for _, c := range controls {
			args = append(args, fmt.Sprintf("q[%d]", c.Qubit))
		}
	}
	for _, t := range op.Targets() {
		args = append(args, fmt.Sprintf("q[%d]", t))
	}
	if params := op.Params(); len(params) > 0 {
		fmt.Fprintf(sb, "%s(%s) %s;\n", name, formatParams(params), strings.Join(args, ", "))
	} else {
		fmt.Fprintf(sb, "%s %s;\n", name, strings.Join(args, ", "))
	}

	for _, c := range controls {
		if c.Type == ir.Neg {
			fmt.Fprintf(sb, "x q[%d];\n", c.Qubit)
		}
	}
}

func writeNonUnitary(sb *strings.Builder, op *ir.NonUnitaryOperation) {
	switch op.Kind() {
	case ir.Measure:
		qubits := op.Targets()
		classics := op.Classics()
		for i, q := range qubits {
			fmt.Fprintf(sb, "measure q[%d] -> c[%d];\n", q, classics[i])
		}
	case ir.Reset:
		for _, q := range op.Targets() {
			fmt.Fprintf(sb, "reset q[%d];\n", q)
		}
	case ir.Barrier:
		args := make([]string, len(op.Targets()))
		for i, q := range op.Targets() {
			args[i] = fmt.Sprintf("q[%d]", q)
		}
		fmt.Fprintf(sb, "barrier %s;\n", strings.Join(args, ", "))
	case ir.Snapshot:
		fmt.Fprintf(sb, "// snapshot(%g)\n", op.Param())
	case ir.ShowProbabilities:
		sb.WriteString("// show probabilities\n")
	}
}
