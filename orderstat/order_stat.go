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

// Package orderstat implements an intrusive order-statistic tree on top of
// the avl package. Every node counts the nodes of its subtree, which makes
// selecting the i-th key and ranking a key logarithmic.
package orderstat

import (
	"fmt"
	"iter"

	"github.com/ajwerner/intrusive/avl"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'intrusive.orderstat'
func tracer() tracing.Trace {
	return tracing.Select("intrusive.orderstat")
}

// Counted is the key of an order-statistic tree node.
type Counted[K any] struct {
	Key K
	// size is the number of nodes rooted at the node holding this key.
	size int
}

// Size returns the number of nodes in the subtree rooted at the node holding
// c. It is only meaningful while the node is linked.
func (c Counted[K]) Size() int { return c.size }

func (c Counted[K]) String() string { return fmt.Sprint(c.Key) }

// Node is a caller-allocated order-statistic tree node.
type Node[K, V any] = avl.Node[Counted[K], V]

// NewNode allocates an unlinked node.
func NewNode[K, V any](key K, v V) *Node[K, V] {
	return &Node[K, V]{Key: Counted[K]{Key: key}, Value: v}
}

// Tree is an intrusive order-statistic tree. The zero value is not usable;
// use MakeTree.
type Tree[K, V any, O avl.Ordering[K]] struct {
	t avl.Tree[Counted[K], V, aug[K, V, O]]
}

// MakeTree returns an empty tree ordered by ord.
func MakeTree[K, V any, O avl.Ordering[K]](ord O) Tree[K, V, O] {
	return Tree[K, V, O]{
		t: avl.MakeTree[Counted[K], V](aug[K, V, O]{ord: ord}),
	}
}

// Add links n into the tree and returns the node with an equal key it
// replaced, if any. See avl.Tree.Add.
func (t *Tree[K, V, O]) Add(n *Node[K, V]) (replaced *Node[K, V]) {
	return t.t.Add(n)
}

// Find returns the node with the given key, or nil.
func (t *Tree[K, V, O]) Find(key K) *Node[K, V] {
	return t.t.Find(Counted[K]{Key: key})
}

// Nth returns the node holding the i-th smallest key, counting from zero, or
// nil if i is out of range.
func (t *Tree[K, V, O]) Nth(i int) *Node[K, V] {
	if i < 0 || i >= t.t.Len() {
		return nil
	}
	n := t.t.Root()
	for n != nil {
		switch l := size(n.Left()); {
		case i < l:
			n = n.Left()
		case i == l:
			return n
		default:
			i -= l + 1
			n = n.Right()
		}
	}
	return nil
}

// Rank returns the number of keys in the tree that order before key, and
// whether key itself is present.
func (t *Tree[K, V, O]) Rank(key K) (rank int, found bool) {
	ord := t.t.Ordering().ord
	n := t.t.Root()
	for n != nil {
		switch {
		case ord.Less(key, n.Key.Key):
			n = n.Left()
		case ord.Less(n.Key.Key, key):
			rank += size(n.Left()) + 1
			n = n.Right()
		default:
			return rank + size(n.Left()), true
		}
	}
	return rank, false
}

// Len returns the number of nodes in the tree.
func (t *Tree[K, V, O]) Len() int {
	return t.t.Len()
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[K, V, O]) Root() *Node[K, V] {
	return t.t.Root()
}

// All returns an iterator over the keys and values in ascending key order.
func (t *Tree[K, V, O]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for c, v := range t.t.All() {
			if !yield(c.Key, v) {
				return
			}
		}
	}
}

// String returns a Newick-like description of the tree.
func (t *Tree[K, V, O]) String() string {
	return t.t.String()
}
