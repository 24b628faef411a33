package avl

// iterStack represents a stack of ancestors, which captures iteration state
// as an Iterator descends a Tree.
type iterStack[K, V any] struct {
	a    iterStackArr[K, V]
	aLen int16 // -1 when using s
	s    []*Node[K, V]
}

// An AVL tree of height 16 holds at least 2583 nodes.
const iterStackDepth = 16

// Used to avoid allocations for stacks below a certain size.
type iterStackArr[K, V any] [iterStackDepth]*Node[K, V]

func (is *iterStack[K, V]) push(n *Node[K, V]) {
	if is.aLen == -1 {
		is.s = append(is.s, n)
	} else if int(is.aLen) == len(is.a) {
		is.s = make([]*Node[K, V], int(is.aLen)+1, 2*int(is.aLen))
		copy(is.s, is.a[:])
		is.s[int(is.aLen)] = n
		is.aLen = -1
	} else {
		is.a[is.aLen] = n
		is.aLen++
	}
}

func (is *iterStack[K, V]) pop() *Node[K, V] {
	if is.aLen == -1 {
		n := is.s[len(is.s)-1]
		is.s = is.s[:len(is.s)-1]
		return n
	}
	is.aLen--
	return is.a[is.aLen]
}

func (is *iterStack[K, V]) len() int {
	if is.aLen == -1 {
		return len(is.s)
	}
	return int(is.aLen)
}

func (is *iterStack[K, V]) reset() {
	if is.aLen == -1 {
		is.s = is.s[:0]
	} else {
		is.aLen = 0
	}
}
