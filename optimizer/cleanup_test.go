package optimizer

import (
	"testing"

	"github.com/TeWas/mqt-core/ir"
)

func TestRemoveIdentities(t *testing.T) {
	p := ir.NewProgram(1)
	p.Append(ir.NewStandard(ir.I, 0))
	p.Append(ir.NewStandard(ir.X, 0))
	p.Append(ir.NewStandard(ir.I, 0))

	RemoveIdentities(p)
	expectKinds(t, p, ir.X)
}

func TestRemoveIdentitiesInsideCompound(t *testing.T) {
	comp := ir.NewCompound()
	comp.Append(ir.NewStandard(ir.I, 0))
	comp.Append(ir.NewStandard(ir.H, 0))

	p := ir.NewProgram(1)
	p.Append(comp)

	RemoveIdentities(p)
	// single surviving member collapses to a bare gate
	expectKinds(t, p, ir.H)
}

func TestRemoveIdentitiesDropsEmptyCompound(t *testing.T) {
	comp := ir.NewCompound()
	comp.Append(ir.NewStandard(ir.I, 0))

	p := ir.NewProgram(1)
	p.Append(comp)
	p.Append(ir.NewStandard(ir.Z, 0))

	RemoveIdentities(p)
	expectKinds(t, p, ir.Z)
}

func TestRemoveIdentitiesIdempotent(t *testing.T) {
	p := ir.NewProgram(2)
	p.Append(ir.NewStandard(ir.H, 0))
	p.Append(cnot(0, 1))

	RemoveIdentities(p)
	first := kinds(p)
	RemoveIdentities(p)
	expectKinds(t, p, first...)
}

func TestFlattenOperations(t *testing.T) {
	inner := ir.NewCompound()
	inner.Append(ir.NewStandard(ir.T, 1))

	comp := ir.NewCompound()
	comp.Append(ir.NewStandard(ir.H, 0))
	comp.Append(inner)

	p := ir.NewProgram(2)
	p.Append(ir.NewStandard(ir.X, 0))
	p.Append(comp)
	p.Append(ir.NewStandard(ir.Z, 0))

	FlattenOperations(p)
	expectKinds(t, p, ir.X, ir.H, ir.T, ir.Z)
}
