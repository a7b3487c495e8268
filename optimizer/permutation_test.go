package optimizer

import (
	"testing"

	"github.com/TeWas/mqt-core/ir"
)

func TestBackpropagateOutputPermutationThroughSWAP(t *testing.T) {
	p := ir.NewProgram(2)
	p.Append(ir.NewStandard(ir.SWAP, 0, 1))
	p.OutputPermutation = map[ir.Qubit]ir.Qubit{0: 1, 1: 0}

	BackpropagateOutputPermutation(p)
	if p.InitialLayout[0] != 0 || p.InitialLayout[1] != 1 {
		t.Fatalf("expected the SWAP to undo the permutation, got %v", p.InitialLayout)
	}
}

func TestBackpropagateOutputPermutationNoSwaps(t *testing.T) {
	p := ir.NewProgram(2)
	p.Append(ir.NewStandard(ir.H, 0))
	p.OutputPermutation = map[ir.Qubit]ir.Qubit{0: 1, 1: 0}

	BackpropagateOutputPermutation(p)
	if p.InitialLayout[0] != 1 || p.InitialLayout[1] != 0 {
		t.Fatalf("without swaps the layout equals the output permutation, got %v", p.InitialLayout)
	}
}

func TestBackpropagateOutputPermutationPartial(t *testing.T) {
	p := ir.NewProgram(2)
	p.Append(ir.NewStandard(ir.SWAP, 0, 1))
	p.OutputPermutation = map[ir.Qubit]ir.Qubit{0: 0}

	BackpropagateOutputPermutation(p)
	// qubit 1 inherits the known assignment, qubit 0 takes the free one
	if p.InitialLayout[1] != 0 {
		t.Fatalf("expected the known assignment to move through the SWAP, got %v", p.InitialLayout)
	}
	if p.InitialLayout[0] != 1 {
		t.Fatalf("expected the free logical qubit to fill the gap, got %v", p.InitialLayout)
	}
}

func TestBackpropagateOutputPermutationFillsIdentityFirst(t *testing.T) {
	p := ir.NewProgram(3)
	p.OutputPermutation = map[ir.Qubit]ir.Qubit{1: 1}

	BackpropagateOutputPermutation(p)
	if p.InitialLayout[0] != 0 || p.InitialLayout[1] != 1 || p.InitialLayout[2] != 2 {
		t.Fatalf("expected identity fill, got %v", p.InitialLayout)
	}
}

func TestBackpropagateOutputPermutationInsideCompound(t *testing.T) {
	comp := ir.NewCompound()
	comp.Append(ir.NewStandard(ir.SWAP, 0, 1))

	p := ir.NewProgram(2)
	p.Append(comp)
	p.OutputPermutation = map[ir.Qubit]ir.Qubit{0: 1, 1: 0}

	BackpropagateOutputPermutation(p)
	if p.InitialLayout[0] != 0 || p.InitialLayout[1] != 1 {
		t.Fatalf("expected the SWAP inside the compound to count, got %v", p.InitialLayout)
	}
}
