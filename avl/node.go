// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package avl

import (
	"fmt"
	"strings"
)

// Node is a caller-allocated tree node. Key and Value are set by the caller
// before Add; the link fields belong to the tree while the node is linked.
//
// A Node's Key must not be changed in a way that affects its ordering while
// the node is linked.
type Node[K, V any] struct {
	Key   K
	Value V

	// balance is height(right) - height(left), always in [-1, 1] between
	// operations.
	balance     int8
	left, right *Node[K, V]
}

func (n *Node[K, V]) canonical() bool {
	return n.left == nil && n.right == nil && n.balance == 0
}

func (n *Node[K, V]) reset() {
	n.left, n.right, n.balance = nil, nil, 0
}

// insert links n into the subtree rooted at *slot. It reports whether the
// height of that subtree grew and which node, if any, n replaced.
func (t *Tree[K, V, O]) insert(slot **Node[K, V], n *Node[K, V]) (grew bool, replaced *Node[K, V]) {
	p := *slot
	if p == nil {
		*slot = n
		t.cfg.notify(n)
		return true, nil
	}
	switch {
	case t.cfg.less(n.Key, p.Key):
		if grew, replaced = t.insert(&p.left, n); grew {
			p.balance--
		}
	case t.cfg.less(p.Key, n.Key):
		if grew, replaced = t.insert(&p.right, n); grew {
			p.balance++
		}
	default:
		n.balance, n.left, n.right = p.balance, p.left, p.right
		*slot = n
		p.reset()
		t.cfg.notify(n)
		return false, p
	}
	if p.balance < -1 || p.balance > 1 {
		// After an insertion a rotation always restores the subtree to its
		// height before the insertion.
		t.rebalance(slot)
		return false, replaced
	}
	t.cfg.notify(p)
	return grew && p.balance != 0, replaced
}

// rebalance restores the balance of the node at *slot, whose balance factor
// is -2 or +2, with a single or double rotation. Nodes lowered by the
// rotation are announced before the new subtree root.
//
// Left-right case (right-left is symmetric):
//
//	      p               g
//	     / \            /   \
//	    c   D          c     p
//	   / \      =>    / \   / \
//	  A   g          A   B C   D
//	     / \
//	    B   C
func (t *Tree[K, V, O]) rebalance(slot **Node[K, V]) {
	p := *slot
	if p.balance < 0 {
		c := p.left
		if c.balance > 0 {
			g := c.right
			rotateLeft(&p.left)
			rotateRight(slot)
			t.cfg.notify(c)
			t.cfg.notify(p)
			t.cfg.notify(g)
			return
		}
		rotateRight(slot)
		t.cfg.notify(p)
		t.cfg.notify(c)
		return
	}
	c := p.right
	if c.balance < 0 {
		g := c.left
		rotateRight(&p.right)
		rotateLeft(slot)
		t.cfg.notify(c)
		t.cfg.notify(p)
		t.cfg.notify(g)
		return
	}
	rotateLeft(slot)
	t.cfg.notify(p)
	t.cfg.notify(c)
}

// rotateRight rotates the subtree at *slot to the right, lifting its left
// child. The balance factors of the two nodes involved are derived from
// their previous values rather than recounted:
//
//	x' = x + 1 - min(y, 0)
//	y' = y + 1 + max(x', 0)
func rotateRight[K, V any](slot **Node[K, V]) {
	x := *slot
	y := x.left
	x.left = y.right
	y.right = x
	*slot = y
	x.balance = x.balance + 1 - min(y.balance, 0)
	y.balance = y.balance + 1 + max(x.balance, 0)
}

// rotateLeft rotates the subtree at *slot to the left, lifting its right
// child:
//
//	x' = x - 1 - max(y, 0)
//	y' = y - 1 + min(x', 0)
func rotateLeft[K, V any](slot **Node[K, V]) {
	x := *slot
	y := x.right
	x.right = y.left
	y.left = x
	*slot = y
	x.balance = x.balance - 1 - max(y.balance, 0)
	y.balance = y.balance - 1 + min(x.balance, 0)
}

func (n *Node[K, V]) writeString(b *strings.Builder) {
	if n.left != nil {
		b.WriteString("(")
		n.left.writeString(b)
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v:%v", n.Key, n.Value)
	if n.right != nil {
		b.WriteString("(")
		n.right.writeString(b)
		b.WriteString(")")
	}
}
