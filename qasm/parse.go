// Package qasm reads and writes programs as OpenQASM 2.0 text. The reader is
// a line-oriented pattern matcher covering the common gate set; it is not a
// full grammar implementation.
package qasm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/TeWas/mqt-core/ir"
)

// Pre-compiled regexps for QASM parsing.
var (
	singleGateRegex      = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	singleGateParamRegex = regexp.MustCompile(`^(\w+)\s*\(\s*(` + paramPattern + `(?:\s*,\s*` + paramPattern + `)*)\s*\)\s+q\[(\d+)\];?$`)
	twoQubitRegex        = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	twoQubitParamRegex   = regexp.MustCompile(`^(\w+)\s*\(\s*(` + paramPattern + `)\s*\)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	threeQubitRegex      = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\],\s*q\[(\d+)\];?$`)
	measureRegex         = regexp.MustCompile(`^measure\s+q\[(\d+)\]\s*->\s*(\w+)\[(\d+)\];?$`)
	resetRegex           = regexp.MustCompile(`^reset\s+q\[(\d+)\];?$`)
	barrierRegex         = regexp.MustCompile(`^barrier\s+(.+?);?$`)
	barrierQubitRegex    = regexp.MustCompile(`q\[(\d+)\]`)
	ifRegex              = regexp.MustCompile(`^if\s*\(\s*(\w+)(?:\[(\d+)\])?\s*==\s*(\d+)\s*\)\s+(\w+)\s+q\[(\d+)\];?$`)
	ifParamRegex         = regexp.MustCompile(`^if\s*\(\s*(\w+)(?:\[(\d+)\])?\s*==\s*(\d+)\s*\)\s+(\w+)\s*\(\s*(` + paramPattern + `)\s*\)\s+q\[(\d+)\];?$`)
	qregRegex            = regexp.MustCompile(`qreg\s+(\w+)\[(\d+)\]`)
	cregRegex            = regexp.MustCompile(`creg\s+(\w+)\[(\d+)\]`)
)

// singleQubitKinds maps QASM gate names to operation kinds.
var singleQubitKinds = map[string]ir.OpKind{
	"id":   ir.I,
	"x":    ir.X,
	"y":    ir.Y,
	"z":    ir.Z,
	"h":    ir.H,
	"s":    ir.S,
	"sdg":  ir.Sdg,
	"t":    ir.T,
	"tdg":  ir.Tdg,
	"sx":   ir.SX,
	"sxdg": ir.SXdg,
	"rx":   ir.RX,
	"ry":   ir.RY,
	"rz":   ir.RZ,
	"p":    ir.Phase,
	"u1":   ir.Phase,
	"u2":   ir.U2,
	"u3":   ir.U3,
}

// controlledKinds maps two-qubit QASM gate names to the kind of the
// underlying single-qubit gate.
var controlledKinds = map[string]ir.OpKind{
	"cx":  ir.X,
	"cy":  ir.Y,
	"cz":  ir.Z,
	"ch":  ir.H,
	"cs":  ir.S,
	"crx": ir.RX,
	"cry": ir.RY,
	"crz": ir.RZ,
	"cp":  ir.Phase,
	"cu1": ir.Phase,
}

// creg tracks a named classical register and its offset in the flat
// classical bit space of the program.
type creg struct {
	start ir.Bit
	width uint
}

// Parse reads OpenQASM 2.0 text into a program. Classical registers are
// flattened into a single bit space in declaration order. Unrecognized
// statements are reported with their line number.
func Parse(text string) (*ir.Program, error) {
	p := ir.NewProgram(0)
	cregs := make(map[string]creg)
	var nextBit ir.Bit

	for lineNo, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include") {
			continue
		}
		if strings.HasPrefix(line, "qreg") {
			if matches := qregRegex.FindStringSubmatch(line); matches != nil {
				n, _ := strconv.Atoi(matches[2])
				for range n {
					q := ir.Qubit(p.NumQubits())
					p.AddQubit(q, q)
				}
			}
			continue
		}
		if strings.HasPrefix(line, "creg") {
			if matches := cregRegex.FindStringSubmatch(line); matches != nil {
				width, _ := strconv.Atoi(matches[2])
				cregs[matches[1]] = creg{start: nextBit, width: uint(width)}
				nextBit += ir.Bit(width)
			}
			continue
		}
		if matches := barrierRegex.FindStringSubmatch(line); matches != nil {
			var qubits []ir.Qubit
			for _, m := range barrierQubitRegex.FindAllStringSubmatch(matches[1], -1) {
				q, _ := strconv.Atoi(m[1])
				qubits = append(qubits, ir.Qubit(q))
			}
			if len(qubits) == 0 {
				// bare register barrier spans every qubit
				qubits = p.PhysicalQubits()
			}
			p.Append(ir.NewBarrier(qubits...))
			continue
		}
		if matches := measureRegex.FindStringSubmatch(line); matches != nil {
			q, _ := strconv.Atoi(matches[1])
			idx, _ := strconv.Atoi(matches[3])
			reg, ok := cregs[matches[2]]
			if !ok {
				return nil, fmt.Errorf("line %d: measurement into undeclared register %q", lineNo+1, matches[2])
			}
			p.AppendMeasurement(ir.Qubit(q), reg.start+ir.Bit(idx))
			continue
		}
		if matches := resetRegex.FindStringSubmatch(line); matches != nil {
			q, _ := strconv.Atoi(matches[1])
			p.Append(ir.NewReset(ir.Qubit(q)))
			continue
		}
		if matches := ifRegex.FindStringSubmatch(line); matches != nil {
			op, err := parseConditional(cregs, matches[1], matches[2], matches[3], matches[4], "", matches[5])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
			}
			p.Append(op)
			continue
		}
		if matches := ifParamRegex.FindStringSubmatch(line); matches != nil {
			op, err := parseConditional(cregs, matches[1], matches[2], matches[3], matches[4], matches[5], matches[6])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
			}
			p.Append(op)
			continue
		}
		if matches := singleGateParamRegex.FindStringSubmatch(line); matches != nil {
			kind, ok := singleQubitKinds[strings.ToLower(matches[1])]
			if !ok {
				return nil, fmt.Errorf("line %d: unknown gate %q", lineNo+1, matches[1])
			}
			params, ok := parseParamList(matches[2])
			if !ok {
				return nil, fmt.Errorf("line %d: bad parameter list %q", lineNo+1, matches[2])
			}
			target, _ := strconv.Atoi(matches[3])
			p.Append(ir.NewStandardP(kind, params, ir.Qubit(target)))
			continue
		}
		if matches := twoQubitParamRegex.FindStringSubmatch(line); matches != nil {
			kind, ok := controlledKinds[strings.ToLower(matches[1])]
			if !ok {
				return nil, fmt.Errorf("line %d: unknown gate %q", lineNo+1, matches[1])
			}
			param, ok := ParseParamExpr(matches[2])
			if !ok {
				return nil, fmt.Errorf("line %d: bad parameter %q", lineNo+1, matches[2])
			}
			control, _ := strconv.Atoi(matches[3])
			target, _ := strconv.Atoi(matches[4])
			op := ir.NewControlled(ir.Control{Qubit: ir.Qubit(control)}, kind, ir.Qubit(target))
			op.SetParams([]float64{param})
			p.Append(op)
			continue
		}
		if matches := threeQubitRegex.FindStringSubmatch(line); matches != nil {
			name := strings.ToLower(matches[1])
			q1, _ := strconv.Atoi(matches[2])
			q2, _ := strconv.Atoi(matches[3])
			q3, _ := strconv.Atoi(matches[4])
			switch name {
			case "ccx", "toffoli":
				controls := []ir.Control{{Qubit: ir.Qubit(q1)}, {Qubit: ir.Qubit(q2)}}
				p.Append(ir.NewMultiControlled(controls, ir.X, ir.Qubit(q3)))
			case "ccz":
				controls := []ir.Control{{Qubit: ir.Qubit(q1)}, {Qubit: ir.Qubit(q2)}}
				p.Append(ir.NewMultiControlled(controls, ir.Z, ir.Qubit(q3)))
			default:
				return nil, fmt.Errorf("line %d: unknown gate %q", lineNo+1, matches[1])
			}
			continue
		}
		if matches := twoQubitRegex.FindStringSubmatch(line); matches != nil {
			name := strings.ToLower(matches[1])
			q1, _ := strconv.Atoi(matches[2])
			q2, _ := strconv.Atoi(matches[3])
			if name == "swap" {
				p.Append(ir.NewStandard(ir.SWAP, ir.Qubit(q1), ir.Qubit(q2)))
				continue
			}
			kind, ok := controlledKinds[name]
			if !ok {
				return nil, fmt.Errorf("line %d: unknown gate %q", lineNo+1, matches[1])
			}
			p.Append(ir.NewControlled(ir.Control{Qubit: ir.Qubit(q1)}, kind, ir.Qubit(q2)))
			continue
		}
		if matches := singleGateRegex.FindStringSubmatch(line); matches != nil {
			kind, ok := singleQubitKinds[strings.ToLower(matches[1])]
			if !ok {
				return nil, fmt.Errorf("line %d: unknown gate %q", lineNo+1, matches[1])
			}
			target, _ := strconv.Atoi(matches[2])
			p.Append(ir.NewStandard(kind, ir.Qubit(target)))
			continue
		}
		return nil, fmt.Errorf("line %d: unrecognized statement %q", lineNo+1, line)
	}
	return p, nil
}

// parseConditional builds a classically controlled operation from the parts
// of an if statement. An indexed predicate (c[i]==v) reads a single bit; a
// bare register predicate (c==v) reads the whole register.
func parseConditional(cregs map[string]creg, regName, idxStr, valStr, gateName, paramStr, targetStr string) (ir.Operation, error) {
	reg, ok := cregs[regName]
	if !ok {
		return nil, fmt.Errorf("condition on undeclared register %q", regName)
	}
	register := ir.ClassicalRegister{Start: reg.start, Width: reg.width}
	if idxStr != "" {
		idx, _ := strconv.Atoi(idxStr)
		register = ir.ClassicalRegister{Start: reg.start + ir.Bit(idx), Width: 1}
	}
	expected, err := strconv.ParseUint(valStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad condition value %q", valStr)
	}
	kind, ok := singleQubitKinds[strings.ToLower(gateName)]
	if !ok {
		return nil, fmt.Errorf("unknown gate %q", gateName)
	}
	target, _ := strconv.Atoi(targetStr)
	inner := ir.NewStandard(kind, ir.Qubit(target))
	if paramStr != "" {
		param, ok := ParseParamExpr(paramStr)
		if !ok {
			return nil, fmt.Errorf("bad parameter %q", paramStr)
		}
		inner.SetParams([]float64{param})
	}
	return ir.NewClassicControlled(inner, register, expected), nil
}
