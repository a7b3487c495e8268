package main

import (
	"fmt"

	"github.com/TeWas/mqt-core/ir"
	"github.com/TeWas/mqt-core/optimizer"
)

// passItem is one entry of the pass picker.
type passItem struct {
	name string
	// apply runs the pass and returns an optional advisory note.
	apply func(p *ir.Program) (string, error)
}

var passMenu = []passItem{
	{name: "Remove identities", apply: func(p *ir.Program) (string, error) {
		optimizer.RemoveIdentities(p)
		return "", nil
	}},
	{name: "Single-qubit gate fusion", apply: func(p *ir.Program) (string, error) {
		optimizer.SingleQubitGateFusion(p)
		return "", nil
	}},
	{name: "Cancel CNOTs", apply: func(p *ir.Program) (string, error) {
		optimizer.CancelCNOTs(p)
		return "", nil
	}},
	{name: "Reconstruct SWAPs", apply: func(p *ir.Program) (string, error) {
		optimizer.SwapReconstruction(p)
		return "", nil
	}},
	{name: "Decompose SWAPs", apply: func(p *ir.Program) (string, error) {
		optimizer.DecomposeSWAP(p, false)
		return "", nil
	}},
	{name: "Decompose SWAPs (directed)", apply: func(p *ir.Program) (string, error) {
		optimizer.DecomposeSWAP(p, true)
		return "", nil
	}},
	{name: "Replace MCX with MCZ", apply: func(p *ir.Program) (string, error) {
		optimizer.ReplaceMCXWithMCZ(p)
		return "", nil
	}},
	{name: "Remove diagonal gates before measure", apply: func(p *ir.Program) (string, error) {
		optimizer.RemoveDiagonalGatesBeforeMeasure(p)
		return "", nil
	}},
	{name: "Remove final measurements", apply: func(p *ir.Program) (string, error) {
		optimizer.RemoveFinalMeasurements(p)
		return "", nil
	}},
	{name: "Eliminate resets", apply: func(p *ir.Program) (string, error) {
		optimizer.EliminateResets(p)
		return "", nil
	}},
	{name: "Defer measurements", apply: func(p *ir.Program) (string, error) {
		return "", optimizer.DeferMeasurements(p)
	}},
	{name: "Reorder operations", apply: func(p *ir.Program) (string, error) {
		if optimizer.ReorderOperations(p) {
			return "program contains classic controls; verify the order", nil
		}
		return "", nil
	}},
	{name: "Collect 2-qubit blocks", apply: func(p *ir.Program) (string, error) {
		return "", optimizer.CollectBlocks(p, 2)
	}},
	{name: "Flatten compound operations", apply: func(p *ir.Program) (string, error) {
		optimizer.FlattenOperations(p)
		return "", nil
	}},
	{name: "Backpropagate output permutation", apply: func(p *ir.Program) (string, error) {
		optimizer.BackpropagateOutputPermutation(p)
		return "", nil
	}},
	{name: "Check dynamic", apply: func(p *ir.Program) (string, error) {
		if optimizer.IsDynamicCircuit(p) {
			return "circuit is dynamic", nil
		}
		return "circuit is static", nil
	}},
}

// summarize renders a one-line description of the program for the status bar.
func summarize(p *ir.Program) string {
	return fmt.Sprintf("%d qubits, %d operations", p.NumQubits(), len(p.Ops))
}
