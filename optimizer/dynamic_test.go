package optimizer

import (
	"testing"

	"github.com/TeWas/mqt-core/ir"
)

func TestIsDynamicCircuit(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *ir.Program
		dynamic bool
	}{
		{
			name: "no measurements",
			build: func() *ir.Program {
				p := ir.NewProgram(1)
				p.Append(ir.NewStandard(ir.H, 0))
				return p
			},
		},
		{
			name: "final measurement",
			build: func() *ir.Program {
				p := ir.NewProgram(1)
				p.Append(ir.NewStandard(ir.H, 0))
				p.AppendMeasurement(0, 0)
				return p
			},
		},
		{
			name: "mid-circuit measurement",
			build: func() *ir.Program {
				p := ir.NewProgram(1)
				p.AppendMeasurement(0, 0)
				p.Append(ir.NewStandard(ir.X, 0))
				return p
			},
			dynamic: true,
		},
		{
			name: "measurement then gate on other qubit",
			build: func() *ir.Program {
				p := ir.NewProgram(2)
				p.AppendMeasurement(0, 0)
				p.Append(ir.NewStandard(ir.X, 1))
				return p
			},
		},
		{
			name: "reset",
			build: func() *ir.Program {
				p := ir.NewProgram(1)
				p.Append(ir.NewReset(0))
				return p
			},
			dynamic: true,
		},
		{
			name: "classic control",
			build: func() *ir.Program {
				p := ir.NewProgram(2)
				p.AppendMeasurement(0, 0)
				p.Append(ir.NewClassicControlled(
					ir.NewStandard(ir.X, 1),
					ir.ClassicalRegister{Start: 0, Width: 1},
					1,
				))
				return p
			},
			dynamic: true,
		},
		{
			name: "barrier after measurement is trivial",
			build: func() *ir.Program {
				p := ir.NewProgram(1)
				p.AppendMeasurement(0, 0)
				p.Append(ir.NewBarrier(0))
				return p
			},
		},
		{
			name: "mid-circuit measurement inside compound",
			build: func() *ir.Program {
				comp := ir.NewCompound()
				comp.Append(ir.NewMeasurement([]ir.Qubit{0}, []ir.Bit{0}))
				comp.Append(ir.NewStandard(ir.X, 0))
				p := ir.NewProgram(1)
				p.Append(comp)
				return p
			},
			dynamic: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.build()
			if got := IsDynamicCircuit(p); got != tt.dynamic {
				t.Fatalf("IsDynamicCircuit = %v, want %v", got, tt.dynamic)
			}
		})
	}
}
