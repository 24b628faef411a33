package avl

// The accessors below expose a node's structure to augmentations and to
// searches that need to steer their own descent, such as an interval
// overlap search.

// Left returns the left child of n, or nil.
func (n *Node[K, V]) Left() *Node[K, V] { return n.left }

// Right returns the right child of n, or nil.
func (n *Node[K, V]) Right() *Node[K, V] { return n.right }

// Balance returns the balance factor of n, height(right) - height(left).
func (n *Node[K, V]) Balance() int { return int(n.balance) }
