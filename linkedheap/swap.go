package linkedheap

import "math/bits"

// depth returns the depth of slot i, the root being slot 1 at depth 0.
func depth(i uint) int {
	return bits.Len(i) - 1
}

// swapWithParent exchanges the tree positions of c and its parent p by
// relinking, leaving their values in place.
//
//	    g              g
//	    |              |
//	    p              c
//	   / \     =>     / \
//	  c   s          p   s
//	 / \            / \
//	a   b          a   b
func (h *Heap[T, O]) swapWithParent(c *Node[T]) {
	p := c.parent
	g := p.parent
	switch {
	case g == nil:
		h.root = c
	case g.left == p:
		g.left = c
	default:
		g.right = c
	}
	a, b := c.left, c.right
	if p.left == c {
		c.left, c.right = p, p.right
		if s := c.right; s != nil {
			s.parent = c
		}
	} else {
		c.left, c.right = p.left, p
		if s := c.left; s != nil {
			s.parent = c
		}
	}
	c.parent = g
	p.parent = c
	p.left, p.right = a, b
	if a != nil {
		a.parent = p
	}
	if b != nil {
		b.parent = p
	}
}
