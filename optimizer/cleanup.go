package optimizer

import (
	"slices"

	"github.com/TeWas/mqt-core/ir"
)

// RemoveIdentities strips every identity operation from the program,
// including identities that accumulated inside compound operations, and
// collapses compounds that end up holding a single member. Passes that hold
// a live DAG mark operations as identity instead of removing them; this is
// the sweep that makes those removals structural.
func RemoveIdentities(p *ir.Program) {
	i := 0
	for i < len(p.Ops) {
		op := p.Ops[i]
		if op.Kind() == ir.I && !op.IsCompound() {
			p.Ops = slices.Delete(p.Ops, i, i+1)
			continue
		}
		if comp, ok := op.(*ir.CompoundOperation); ok {
			comp.Ops = slices.DeleteFunc(comp.Ops, func(member ir.Operation) bool {
				return member.Kind() == ir.I && !member.IsCompound()
			})
			if comp.Empty() {
				p.Ops = slices.Delete(p.Ops, i, i+1)
				continue
			}
			if comp.CollapsibleToSingle() {
				p.Ops[i] = comp.Ops[0]
			}
		}
		i++
	}
}

// FlattenOperations replaces every compound operation by its members,
// in order. Nested compounds are flattened as well.
func FlattenOperations(p *ir.Program) {
	i := 0
	for i < len(p.Ops) {
		if comp, ok := p.Ops[i].(*ir.CompoundOperation); ok {
			p.Ops = slices.Replace(p.Ops, i, i+1, comp.Ops...)
			// stay put: the first member may itself be a compound
			continue
		}
		i++
	}
}
