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

// Package linkedheap implements an intrusive binary min-heap whose nodes are
// linked by pointers rather than stored in an array.
//
// The heap keeps the shape of a complete binary tree. The position of the
// last node is derived from the running node count: the bits of the count
// below its leading one spell out the path from the root, 0 for left and 1
// for right, which is exactly the slot an array-backed heap would use.
//
// Nodes move by relinking, never by copying values, so a pointer to a node
// keeps referring to the same element while it is in the heap. The heap
// never allocates.
//
// A Heap is not safe for concurrent use.
package linkedheap

import (
	"fmt"
	"strings"

	"github.com/ajwerner/intrusive/internal/invariant"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'intrusive.heap'
func tracer() tracing.Trace {
	return tracing.Select("intrusive.heap")
}

// Ordering orders the values of a Heap.
type Ordering[T any] interface {
	Less(a, b T) bool
}

// LessFunc adapts an ordinary less function to an Ordering.
type LessFunc[T any] func(a, b T) bool

// Less implements Ordering.
func (f LessFunc[T]) Less(a, b T) bool { return f(a, b) }

// Node is a caller-allocated heap node. Value must not change in a way that
// affects its ordering while the node is in a heap.
type Node[T any] struct {
	Value T

	parent, left, right *Node[T]
}

// Parent returns the parent of n, or nil.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// Left returns the left child of n, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child of n, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

func (n *Node[T]) canonical() bool {
	return n.parent == nil && n.left == nil && n.right == nil
}

func (n *Node[T]) reset() {
	n.parent, n.left, n.right = nil, nil, nil
}

// Heap is an intrusive min-heap. The zero value is not usable; use MakeHeap.
type Heap[T any, O Ordering[T]] struct {
	root  *Node[T]
	count uint
	ord   O
}

// MakeHeap returns an empty heap ordered by ord.
func MakeHeap[T any, O Ordering[T]](ord O) Heap[T, O] {
	return Heap[T, O]{ord: ord}
}

// Len returns the number of nodes in the heap.
func (h *Heap[T, O]) Len() int {
	return int(h.count)
}

// Peek returns the minimum node without removing it, or nil.
func (h *Heap[T, O]) Peek() *Node[T] {
	return h.root
}

// Insert links n into the heap. n must be in its canonical unlinked state,
// as freshly allocated or as returned from Pop.
func (h *Heap[T, O]) Insert(n *Node[T]) {
	if n == nil {
		invariant.Fail(fmt.Errorf("%w: nil node", ErrNotCanonical))
	}
	if !n.canonical() || n == h.root {
		invariant.Fail(fmt.Errorf("%w: node %v is linked", ErrNotCanonical, n.Value))
	}
	h.count++
	if h.count == 1 {
		h.root = n
		return
	}
	p, right := h.parentOf(h.count)
	if right {
		p.right = n
	} else {
		p.left = n
	}
	n.parent = p
	h.up(n)
}

// Pop unlinks and returns the minimum node, or nil if the heap is empty. The
// returned node is in its canonical unlinked state.
func (h *Heap[T, O]) Pop() *Node[T] {
	top := h.root
	switch h.count {
	case 0:
		return nil
	case 1:
		h.root = nil
		h.count = 0
		return top
	}
	last := h.at(h.count)
	if p := last.parent; p.left == last {
		p.left = nil
	} else {
		p.right = nil
	}
	h.count--

	last.parent = nil
	last.left, last.right = top.left, top.right
	if last.left != nil {
		last.left.parent = last
	}
	if last.right != nil {
		last.right.parent = last
	}
	h.root = last
	top.reset()
	h.down(last)
	return top
}

// parentOf returns the node that is, or is to be, the parent of slot i in
// breadth-first order, and whether slot i is its right child. i must be at
// least 2 and the slots above i must be occupied.
func (h *Heap[T, O]) parentOf(i uint) (parent *Node[T], right bool) {
	n := h.root
	for bit := uint(1) << (depth(i) - 1); bit > 1; bit >>= 1 {
		if i&bit == 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n, i&1 == 1
}

// at returns the node at slot i, counting from 1 in breadth-first order.
func (h *Heap[T, O]) at(i uint) *Node[T] {
	if i == 1 {
		return h.root
	}
	p, right := h.parentOf(i)
	if right {
		return p.right
	}
	return p.left
}

// up moves n towards the root while it orders before its parent.
func (h *Heap[T, O]) up(n *Node[T]) {
	for n.parent != nil && h.ord.Less(n.Value, n.parent.Value) {
		h.swapWithParent(n)
	}
}

// down moves n towards the leaves while a child orders before it, always
// trading places with the smaller child; the left child wins ties.
func (h *Heap[T, O]) down(n *Node[T]) {
	for {
		m := n
		if l := n.left; l != nil && h.ord.Less(l.Value, m.Value) {
			m = l
		}
		if r := n.right; r != nil && h.ord.Less(r.Value, m.Value) {
			m = r
		}
		if m == n {
			return
		}
		h.swapWithParent(m)
	}
}

// String returns the values of the heap in breadth-first order.
func (h *Heap[T, O]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := uint(1); i <= h.count; i++ {
		if i > 1 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", h.at(i).Value)
	}
	b.WriteString("]")
	return b.String()
}
