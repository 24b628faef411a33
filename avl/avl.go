// Copyright 2018 The Cockroach Authors.
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
	"iter"
	"strings"

	"github.com/ajwerner/intrusive/internal/invariant"
)

// Tree is an intrusive AVL tree keyed by K under the ordering O.
//
// The zero value is not usable; use MakeTree.
type Tree[K, V any, O Ordering[K]] struct {
	root   *Node[K, V]
	length int
	cfg    config[K, V, O]
}

// Entry is a key/value pair as exported by Append.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// MakeTree returns an empty tree ordered by ord. If ord implements
// Augmenter, its Update method is invoked on structural changes.
func MakeTree[K, V any, O Ordering[K]](ord O) Tree[K, V, O] {
	return Tree[K, V, O]{cfg: makeConfig[K, V](ord)}
}

// Find returns the node whose key is equal to key, or nil.
func (t *Tree[K, V, O]) Find(key K) *Node[K, V] {
	n := t.root
	for n != nil {
		switch {
		case t.cfg.less(key, n.Key):
			n = n.left
		case t.cfg.less(n.Key, key):
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Add links n into the tree. n must be in its canonical unlinked state, as
// freshly allocated or as returned from a previous Add.
//
// If a node with an equal key is already linked, n takes over its position,
// children and balance, and the displaced node is reset and returned. The
// tree holds no further reference to it. Otherwise Add returns nil.
func (t *Tree[K, V, O]) Add(n *Node[K, V]) (replaced *Node[K, V]) {
	if n == nil {
		invariant.Fail(fmt.Errorf("%w: nil node", ErrNotCanonical))
	}
	if !n.canonical() || n == t.root {
		invariant.Fail(fmt.Errorf("%w: node %v is linked", ErrNotCanonical, n.Key))
	}
	_, replaced = t.insert(&t.root, n)
	if replaced == nil {
		t.length++
	}
	return replaced
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[K, V, O]) Root() *Node[K, V] {
	return t.root
}

// Ordering returns the ordering the tree was made with.
func (t *Tree[K, V, O]) Ordering() O {
	return t.cfg.ord
}

// Len returns the number of nodes linked into the tree.
func (t *Tree[K, V, O]) Len() int {
	return t.length
}

// Height returns the height of the tree. An empty tree has height 0.
func (t *Tree[K, V, O]) Height() int {
	h := 0
	for n := t.root; n != nil; h++ {
		// The taller side is the one the balance factor leans towards.
		if n.balance < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return h
}

// Append appends the entries of the tree to dst in ascending key order and
// returns the extended slice.
func (t *Tree[K, V, O]) Append(dst []Entry[K, V]) []Entry[K, V] {
	it := t.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		dst = append(dst, Entry[K, V]{Key: it.Key(), Value: it.Value()})
	}
	return dst
}

// All returns an iterator over the key/value pairs in ascending key order.
// The tree must not be modified during iteration.
func (t *Tree[K, V, O]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := t.MakeIter()
		for it.First(); it.Valid(); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// MakeIter returns a new Iterator object. It is not safe to continue using an
// Iterator after modifications are made to the tree. If modifications are made,
// create a new Iterator.
func (t *Tree[K, V, O]) MakeIter() Iterator[K, V, O] {
	return Iterator[K, V, O]{t: t}
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Tree[K, V, O]) String() string {
	if t.root == nil {
		return ";"
	}
	var b strings.Builder
	t.root.writeString(&b)
	return b.String()
}
