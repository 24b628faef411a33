package avl

import (
	"fmt"

	"github.com/ajwerner/intrusive/internal/invariant"
)

// CheckIntegrity recomputes the height of every subtree and verifies that
// each stored balance factor equals height(right) - height(left) and lies in
// [-1, 1], that keys ascend strictly in order, and that the node count
// matches Len. Any violation panics with an error wrapping ErrCorrupt.
//
// It is meant for tests and debugging and visits every node.
func (t *Tree[K, V, O]) CheckIntegrity() {
	invariant.Fail(t.check())
}

func (t *Tree[K, V, O]) check() error {
	c := checker[K, V, O]{cfg: &t.cfg}
	height, err := c.checkNode(t.root)
	if err != nil {
		return err
	}
	if c.count != t.length {
		return fmt.Errorf("%w: counted %d nodes, length is %d", ErrCorrupt, c.count, t.length)
	}
	tracer().Debugf("avl: checked %d nodes, height %d", c.count, height)
	return nil
}

type checker[K, V any, O Ordering[K]] struct {
	cfg   *config[K, V, O]
	prev  *Node[K, V]
	count int
}

func (c *checker[K, V, O]) checkNode(n *Node[K, V]) (height int, err error) {
	if n == nil {
		return 0, nil
	}
	lh, err := c.checkNode(n.left)
	if err != nil {
		return 0, err
	}
	if c.prev != nil && !c.cfg.less(c.prev.Key, n.Key) {
		return 0, fmt.Errorf("%w: key %v follows %v in order", ErrCorrupt, n.Key, c.prev.Key)
	}
	c.prev = n
	c.count++
	rh, err := c.checkNode(n.right)
	if err != nil {
		return 0, err
	}
	if int(n.balance) != rh-lh {
		return 0, fmt.Errorf("%w: node %v has balance %d, subtree heights %d/%d",
			ErrCorrupt, n.Key, n.balance, lh, rh)
	}
	if n.balance < -1 || n.balance > 1 {
		return 0, fmt.Errorf("%w: node %v is out of balance (%d)", ErrCorrupt, n.Key, n.balance)
	}
	return 1 + max(lh, rh), nil
}
