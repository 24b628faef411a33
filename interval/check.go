package interval

import (
	"fmt"

	"github.com/ajwerner/intrusive/internal/invariant"
)

// CheckIntegrity runs the AVL integrity check and then verifies that every
// interval is well formed and that every node's max equals the largest of
// its own End and its children's max. Violations panic; see
// avl.Tree.CheckIntegrity.
func (t *Tree[K, V, O]) CheckIntegrity() {
	t.t.CheckIntegrity()
	u := t.t.Ordering()
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
		if u.ord.Less(n.Key.End, n.Key.Start) {
			return fmt.Errorf("%w: %v", ErrInvalidInterval, n.Key)
		}
		if want := u.upperBound(n); u.ord.Less(want, n.Key.max) || u.ord.Less(n.Key.max, want) {
			return fmt.Errorf("%w: %v has max %v, want %v", ErrCorrupt, n.Key, n.Key.max, want)
		}
		return nil
	}
	invariant.Fail(walk(t.t.Root()))
	tracer().Debugf("interval: checked max of %d intervals", t.t.Len())
}
