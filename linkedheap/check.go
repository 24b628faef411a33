package linkedheap

import (
	"fmt"

	"github.com/ajwerner/intrusive/internal/invariant"
)

// CheckIntegrity verifies that parent and child links agree, that the nodes
// form a complete binary tree of exactly Len nodes, and that no node orders
// before its parent. Any violation panics with an error wrapping ErrCorrupt.
//
// It is meant for tests and debugging and visits every node.
func (h *Heap[T, O]) CheckIntegrity() {
	invariant.Fail(h.check())
}

func (h *Heap[T, O]) check() error {
	if h.root == nil {
		if h.count != 0 {
			return fmt.Errorf("%w: no root but count %d", ErrCorrupt, h.count)
		}
		return nil
	}
	if h.root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrCorrupt, h.root.Value)
	}
	seen, err := h.checkNode(h.root, 1)
	if err != nil {
		return err
	}
	if seen != h.count {
		return fmt.Errorf("%w: found %d nodes, count is %d", ErrCorrupt, seen, h.count)
	}
	tracer().Debugf("linkedheap: checked %d nodes, depth %d", seen, depth(h.count))
	return nil
}

// checkNode checks the subtree rooted at n, which sits at slot i, and
// returns the number of nodes in it.
func (h *Heap[T, O]) checkNode(n *Node[T], i uint) (uint, error) {
	if i > h.count {
		return 0, fmt.Errorf("%w: node %v at slot %d beyond count %d", ErrCorrupt, n.Value, i, h.count)
	}
	seen := uint(1)
	for j, c := range [2]*Node[T]{n.left, n.right} {
		slot := 2*i + uint(j)
		if c == nil {
			if slot <= h.count {
				return 0, fmt.Errorf("%w: slot %d is empty, count is %d", ErrCorrupt, slot, h.count)
			}
			continue
		}
		if c.parent != n {
			return 0, fmt.Errorf("%w: node %v does not point back to parent %v", ErrCorrupt, c.Value, n.Value)
		}
		if h.ord.Less(c.Value, n.Value) {
			return 0, fmt.Errorf("%w: node %v orders before its parent %v", ErrCorrupt, c.Value, n.Value)
		}
		below, err := h.checkNode(c, slot)
		if err != nil {
			return 0, err
		}
		seen += below
	}
	return seen, nil
}
