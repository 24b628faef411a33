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

// Package intrusive collects the intrusive containers of this module under
// one import: an augmentable AVL tree, an interval tree and a pointer-linked
// binary heap. The containers never allocate; callers own the nodes and link
// them in and out.
//
// The subpackages carry the full API. This package only provides aliases and
// constructors for keys with a natural order.
package intrusive

import (
	"cmp"

	"github.com/ajwerner/intrusive/avl"
	"github.com/ajwerner/intrusive/interval"
	"github.com/ajwerner/intrusive/linkedheap"
)

// AVLTree is an intrusive AVL tree. See package avl.
type AVLTree[K, V any, O avl.Ordering[K]] = avl.Tree[K, V, O]

// AVLNode is a caller-allocated AVL tree node.
type AVLNode[K, V any] = avl.Node[K, V]

// IntervalTree is an intrusive interval tree. See package interval.
type IntervalTree[K, V any, O avl.Ordering[K]] = interval.Tree[K, V, O]

// IntervalNode is a caller-allocated interval tree node.
type IntervalNode[K, V any] = interval.Node[K, V]

// Interval is the half-open key of an interval tree node.
type Interval[K any] = interval.Interval[K]

// LinkedHeap is an intrusive min-heap. See package linkedheap.
type LinkedHeap[T any, O linkedheap.Ordering[T]] = linkedheap.Heap[T, O]

// HeapNode is a caller-allocated heap node.
type HeapNode[T any] = linkedheap.Node[T]

// Natural orders keys by their natural order, as cmp.Less does.
type Natural[K cmp.Ordered] struct{}

// Less implements avl.Ordering and linkedheap.Ordering.
func (Natural[K]) Less(a, b K) bool { return cmp.Less(a, b) }

// MakeAVLTree returns an empty, unaugmented AVL tree in natural key order.
func MakeAVLTree[K cmp.Ordered, V any]() AVLTree[K, V, Natural[K]] {
	return avl.MakeTree[K, V](Natural[K]{})
}

// MakeIntervalTree returns an empty interval tree over naturally ordered end
// points.
func MakeIntervalTree[K cmp.Ordered, V any]() IntervalTree[K, V, Natural[K]] {
	return interval.MakeTree[K, V](Natural[K]{})
}

// MakeLinkedHeap returns an empty min-heap in natural order.
func MakeLinkedHeap[T cmp.Ordered]() LinkedHeap[T, Natural[T]] {
	return linkedheap.MakeHeap[T](Natural[T]{})
}
