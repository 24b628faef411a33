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

// Package interval implements an intrusive interval tree on top of the avl
// package. Every node carries the maximum end point of its subtree, kept
// current by the AVL tree's augmentation hook, which lets FindOne prune whole
// subtrees that cannot overlap a query.
//
// Intervals are half-open, [Start, End), and are keyed by Start alone: adding
// an interval whose Start equals that of a linked one replaces it.
package interval

import (
	"fmt"
	"iter"

	"github.com/ajwerner/intrusive/avl"
	"github.com/ajwerner/intrusive/internal/invariant"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'intrusive.interval'
func tracer() tracing.Trace {
	return tracing.Select("intrusive.interval")
}

// Interval is the key of an interval tree node. Start must not order after
// End. The subtree maximum is derived and maintained by the tree.
type Interval[K any] struct {
	Start, End K
	max        K
}

// Max returns the largest End in the subtree rooted at the node holding i.
// It is only meaningful while the node is linked.
func (i Interval[K]) Max() K { return i.max }

func (i Interval[K]) String() string {
	return fmt.Sprintf("[%v,%v)", i.Start, i.End)
}

// Node is a caller-allocated interval tree node.
type Node[K, V any] = avl.Node[Interval[K], V]

// NewNode allocates an unlinked node for [start, end). Nodes may equally be
// embedded in or allocated by the caller directly.
func NewNode[K, V any](start, end K, v V) *Node[K, V] {
	return &Node[K, V]{Key: Interval[K]{Start: start, End: end}, Value: v}
}

// Tree is an intrusive interval tree. The zero value is not usable; use
// MakeTree.
type Tree[K, V any, O avl.Ordering[K]] struct {
	t avl.Tree[Interval[K], V, updater[K, V, O]]
}

// MakeTree returns an empty interval tree whose end points are ordered by
// ord.
func MakeTree[K, V any, O avl.Ordering[K]](ord O) Tree[K, V, O] {
	return Tree[K, V, O]{
		t: avl.MakeTree[Interval[K], V](updater[K, V, O]{ord: ord}),
	}
}

// Add links n into the tree and returns the node with the same Start it
// replaced, if any. See avl.Tree.Add.
func (t *Tree[K, V, O]) Add(n *Node[K, V]) (replaced *Node[K, V]) {
	return t.t.Add(n)
}

// Find returns the node whose interval starts at start, or nil.
func (t *Tree[K, V, O]) Find(start K) *Node[K, V] {
	return t.t.Find(Interval[K]{Start: start})
}

// FindOne returns a node whose interval overlaps [start, end), or nil if
// there is none. When several intervals overlap, which one is returned is
// determined by the search order and is not otherwise specified.
//
// start must not order after end.
func (t *Tree[K, V, O]) FindOne(start, end K) *Node[K, V] {
	u := t.t.Ordering()
	if u.ord.Less(end, start) {
		invariant.Fail(fmt.Errorf("%w: [%v,%v)", ErrInvalidInterval, start, end))
	}
	n := t.t.Root()
	for n != nil {
		if !u.ord.Less(start, n.Key.max) {
			// Every interval below ends at or before start.
			return nil
		}
		if u.overlaps(&n.Key, start, end) {
			return n
		}
		// If the left subtree reaches past start but holds no overlap, its
		// far-reaching interval begins at or after end, and so does
		// everything to the right.
		if l := n.Left(); l != nil && u.ord.Less(start, l.Key.max) {
			n = l
		} else {
			n = n.Right()
		}
	}
	return nil
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[K, V, O]) Root() *Node[K, V] {
	return t.t.Root()
}

// Len returns the number of intervals in the tree.
func (t *Tree[K, V, O]) Len() int {
	return t.t.Len()
}

// Append appends the tree's entries to dst in ascending order of Start.
func (t *Tree[K, V, O]) Append(dst []avl.Entry[Interval[K], V]) []avl.Entry[Interval[K], V] {
	return t.t.Append(dst)
}

// All returns an iterator over the intervals in ascending order of Start.
func (t *Tree[K, V, O]) All() iter.Seq2[Interval[K], V] {
	return t.t.All()
}

// MakeIter returns an iterator over the underlying AVL tree.
func (t *Tree[K, V, O]) MakeIter() avl.Iterator[Interval[K], V, updater[K, V, O]] {
	return t.t.MakeIter()
}

// String returns a Newick-like description of the tree.
func (t *Tree[K, V, O]) String() string {
	return t.t.String()
}
