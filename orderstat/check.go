package orderstat

import (
	"fmt"

	"github.com/ajwerner/intrusive/internal/invariant"
)

// CheckIntegrity runs the AVL integrity check and then verifies every
// node's subtree size. Violations panic with an error wrapping ErrCorrupt.
func (t *Tree[K, V, O]) CheckIntegrity() {
	t.t.CheckIntegrity()
	var walk func(n *Node[K, V]) error
	walk = func(n *Node[K, V]) error {
		if n == nil {
			return nil
		}
		if err := walk(n.Left()); err != nil {
			return err
		}
		if err := walk(n.Right()); err != nil {
			return err
		}
		if want := count(n); n.Key.size != want {
			return fmt.Errorf("%w: %v has size %d, want %d", ErrCorrupt, n.Key.Key, n.Key.size, want)
		}
		return nil
	}
	invariant.Fail(walk(t.t.Root()))
	s := size(t.t.Root())
	invariant.Assert(s == t.t.Len(), ErrCorrupt, "root size %d, length %d", s, t.t.Len())
	tracer().Debugf("orderstat: checked sizes of %d nodes", t.t.Len())
}
