package avl

// Iterator is responsible for search and traversal within a Tree. It keeps
// the path from the root to the current node since nodes carry no parent
// links.
type Iterator[K, V any, O Ordering[K]] struct {
	t    *Tree[K, V, O]
	node *Node[K, V]
	s    iterStack[K, V]
}

// Reset leaves the iterator at an invalid position.
func (i *Iterator[K, V, O]) Reset() {
	i.node = nil
	i.s.reset()
}

// First seeks to the first key in the Tree.
func (i *Iterator[K, V, O]) First() {
	i.Reset()
	i.leftmost(i.t.root)
}

// Last seeks to the last key in the Tree.
func (i *Iterator[K, V, O]) Last() {
	i.Reset()
	i.rightmost(i.t.root)
}

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K, V, O]) SeekGE(key K) {
	i.Reset()
	cfg := &i.t.cfg
	for n := i.t.root; n != nil; {
		i.descend(n)
		switch {
		case cfg.less(n.Key, key):
			n = n.right
		case cfg.less(key, n.Key):
			n = n.left
		default:
			return
		}
	}
	// The search ended below the last node visited. If that node is smaller
	// than key, its successor is the answer.
	if i.node != nil && cfg.less(i.node.Key, key) {
		i.Next()
	}
}

// Next positions the Iterator to the key immediately following
// its current position.
func (i *Iterator[K, V, O]) Next() {
	if i.node == nil {
		return
	}
	if i.node.right != nil {
		i.leftmost(i.node.right)
		return
	}
	for {
		from := i.ascend()
		if i.node == nil || i.node.left == from {
			return
		}
	}
}

// Prev positions the Iterator to the key immediately preceding
// its current position.
func (i *Iterator[K, V, O]) Prev() {
	if i.node == nil {
		return
	}
	if i.node.left != nil {
		i.rightmost(i.node.left)
		return
	}
	for {
		from := i.ascend()
		if i.node == nil || i.node.right == from {
			return
		}
	}
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[K, V, O]) Valid() bool {
	return i.node != nil
}

// Cur returns the node at the Iterator's current position. It is illegal
// to call Cur if the Iterator is not valid.
func (i *Iterator[K, V, O]) Cur() *Node[K, V] {
	return i.node
}

// Key returns the key at the Iterator's current position.
func (i *Iterator[K, V, O]) Key() K {
	return i.node.Key
}

// Value returns the value at the Iterator's current position.
func (i *Iterator[K, V, O]) Value() V {
	return i.node.Value
}

func (i *Iterator[K, V, O]) leftmost(n *Node[K, V]) {
	for ; n != nil; n = n.left {
		i.descend(n)
	}
}

func (i *Iterator[K, V, O]) rightmost(n *Node[K, V]) {
	for ; n != nil; n = n.right {
		i.descend(n)
	}
}

// descend moves to n, which must be a child of the current node, or the
// root if the iterator is not positioned.
func (i *Iterator[K, V, O]) descend(n *Node[K, V]) {
	if i.node != nil {
		i.s.push(i.node)
	}
	i.node = n
}

// ascend moves to the parent of the current node and returns the node it
// came from. Ascending from the root invalidates the iterator.
func (i *Iterator[K, V, O]) ascend() (from *Node[K, V]) {
	from = i.node
	if i.s.len() == 0 {
		i.node = nil
	} else {
		i.node = i.s.pop()
	}
	return from
}
