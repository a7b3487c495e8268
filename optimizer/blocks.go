package optimizer

import (
	"slices"

	"github.com/TeWas/mqt-core/ir"
)

// blockTracker groups unitary operations into per-qubit-set blocks using a
// union-find over qubits. Each open block owns a compound under
// construction and remembers the instruction slot where it will be emitted.
type blockTracker struct {
	p      *ir.Program
	parent map[ir.Qubit]ir.Qubit
	qubits map[ir.Qubit][]ir.Qubit
	slot   map[ir.Qubit]int
	ops    map[ir.Qubit]*ir.CompoundOperation
}

func newBlockTracker(p *ir.Program) *blockTracker {
	return &blockTracker{
		p:      p,
		parent: make(map[ir.Qubit]ir.Qubit),
		qubits: make(map[ir.Qubit][]ir.Qubit),
		slot:   make(map[ir.Qubit]int),
		ops:    make(map[ir.Qubit]*ir.CompoundOperation),
	}
}

// find returns the representative of the block containing q, creating a
// fresh singleton block on first contact. Applies path compression.
func (t *blockTracker) find(q ir.Qubit) ir.Qubit {
	parent, ok := t.parent[q]
	if !ok {
		t.parent[q] = q
		t.qubits[q] = []ir.Qubit{q}
		t.slot[q] = -1
		t.ops[q] = ir.NewCompound()
		return q
	}
	if parent == q {
		return q
	}
	root := t.find(parent)
	t.parent[q] = root
	return root
}

func (t *blockTracker) empty(q ir.Qubit) bool {
	return t.slot[t.find(q)] == -1
}

func (t *blockTracker) size(q ir.Qubit) int {
	return len(t.qubits[t.find(q)])
}

// union merges the blocks of a and b, keeping the one with more collected
// operations as the representative. The absorbed block's reserved slot is
// neutralized to an identity for the final cleanup sweep.
func (t *blockTracker) union(a, b ir.Qubit) {
	ra, rb := t.find(a), t.find(b)
	if ra == rb {
		return
	}
	if len(t.ops[ra].Ops) < len(t.ops[rb].Ops) {
		ra, rb = rb, ra
	}
	t.parent[rb] = ra
	t.ops[ra].Merge(t.ops[rb])
	t.qubits[ra] = append(t.qubits[ra], t.qubits[rb]...)
	if t.slot[rb] != -1 {
		t.p.Ops[t.slot[rb]] = ir.NewStandard(ir.I, 0)
	}
	t.slot[rb] = -1
	t.ops[rb] = ir.NewCompound()
	t.qubits[rb] = nil
}

// finalize emits the block containing q at its reserved slot, collapsing a
// single-member compound to the bare member, and resets every involved
// qubit to a fresh singleton block.
func (t *blockTracker) finalize(q ir.Qubit) {
	root := t.find(q)
	if t.slot[root] != -1 {
		comp := t.ops[root]
		if comp.CollapsibleToSingle() {
			t.p.Ops[t.slot[root]] = comp.Ops[0]
		} else {
			t.p.Ops[t.slot[root]] = comp
		}
	}
	for _, member := range t.qubits[root] {
		t.parent[member] = member
		t.qubits[member] = []ir.Qubit{member}
		t.slot[member] = -1
		t.ops[member] = ir.NewCompound()
	}
}

// CollectBlocks gathers maximal sequences of unitary operations that act on
// at most maxBlockSize qubits into compound operations. Operations are first
// brought into canonical order and measurements are deferred to the back;
// the deferral can fail, in which case the program retains the reordered
// form and the error is returned.
func CollectBlocks(p *ir.Program, maxBlockSize int) error {
	if len(p.Ops) <= 1 {
		return nil
	}
	ReorderOperations(p)
	if err := DeferMeasurements(p); err != nil {
		return err
	}

	t := newBlockTracker(p)
	for idx := 0; idx < len(p.Ops); idx++ {
		op := p.Ops[idx]
		used := op.UsedQubits()
		if !op.IsUnitary() {
			// barrier between blocks: everything it touches is emitted
			for _, q := range used {
				t.finalize(q)
			}
			continue
		}

		// qubit count of the would-be merged block
		merged := make(map[ir.Qubit]struct{})
		total := 0
		for _, q := range used {
			root := t.find(q)
			if _, seen := merged[root]; !seen {
				merged[root] = struct{}{}
				total += t.size(root)
			}
		}
		if total > maxBlockSize {
			t.evict(used, maxBlockSize)
		}
		if len(used) > maxBlockSize {
			// cannot ever fit; leave the operation alone
			continue
		}
		for i := 1; i < len(used); i++ {
			t.union(used[0], used[i])
		}
		root := t.find(used[0])
		open := t.slot[root] != -1
		if !open {
			t.slot[root] = idx
		}
		t.ops[root].Append(op)
		if open {
			p.Ops[idx] = ir.NewStandard(ir.I, 0)
		}
	}
	for _, q := range sortedQubits(t.parent) {
		if t.parent[q] == q {
			t.finalize(q)
		}
	}
	RemoveIdentities(p)
	return nil
}

// evict frees capacity before an operation whose merged block would exceed
// the limit. If the operation alone can never fit, the touched blocks are
// packed together largest-first up to the limit and emitted; otherwise
// blocks are emitted most-qubits-saved-first until the merged block fits.
func (t *blockTracker) evict(used []ir.Qubit, maxBlockSize int) {
	type blockSize struct {
		root ir.Qubit
		size int
	}
	if len(used) > maxBlockSize {
		var blocks []blockSize
		seen := make(map[ir.Qubit]struct{})
		for _, q := range used {
			root := t.find(q)
			if _, ok := seen[root]; ok {
				continue
			}
			seen[root] = struct{}{}
			if t.empty(root) {
				continue
			}
			blocks = append(blocks, blockSize{root, t.size(root)})
		}
		slices.SortFunc(blocks, func(a, b blockSize) int {
			if a.size != b.size {
				return b.size - a.size
			}
			return int(a.root) - int(b.root)
		})
		for len(blocks) > 0 {
			current := blocks[0]
			blocks = blocks[1:]
			if current.size == maxBlockSize {
				t.finalize(current.root)
				continue
			}
			i := 0
			for i < len(blocks) && current.size < maxBlockSize {
				if current.size+blocks[i].size <= maxBlockSize {
					t.union(current.root, blocks[i].root)
					current.size += blocks[i].size
					blocks = slices.Delete(blocks, i, i+1)
					continue
				}
				i++
			}
			t.finalize(current.root)
		}
		return
	}

	var blocks []blockSize
	seen := make(map[ir.Qubit]struct{})
	total := 0
	for _, q := range used {
		root := t.find(q)
		if _, ok := seen[root]; ok {
			// a second qubit from the same block saves nothing extra
			for i := range blocks {
				if blocks[i].root == root {
					blocks[i].size--
					break
				}
			}
			continue
		}
		seen[root] = struct{}{}
		total += t.size(root)
		// emitting this block frees all its qubits except the one the
		// operation will re-open
		blocks = append(blocks, blockSize{root, t.size(root) - 1})
	}
	slices.SortFunc(blocks, func(a, b blockSize) int {
		if a.size != b.size {
			return b.size - a.size
		}
		return int(a.root) - int(b.root)
	})
	need := total - maxBlockSize
	for _, b := range blocks {
		if need <= 0 {
			break
		}
		need -= b.size
		t.finalize(b.root)
	}
}
