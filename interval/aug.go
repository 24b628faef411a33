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

package interval

import "github.com/ajwerner/intrusive/avl"

// updater is the ordering handed to the underlying AVL tree. It orders
// intervals by their start and maintains the max augmentation.
type updater[K, V any, O avl.Ordering[K]] struct {
	ord O
}

// Less implements avl.Ordering.
func (u updater[K, V, O]) Less(a, b Interval[K]) bool {
	return u.ord.Less(a.Start, b.Start)
}

// Update implements avl.Augmenter. The children of n have already been
// updated, so only one level needs to be inspected.
func (u updater[K, V, O]) Update(n *Node[K, V]) {
	n.Key.max = u.upperBound(n)
}

func (u updater[K, V, O]) upperBound(n *Node[K, V]) K {
	max := n.Key.End
	if l := n.Left(); l != nil && u.ord.Less(max, l.Key.max) {
		max = l.Key.max
	}
	if r := n.Right(); r != nil && u.ord.Less(max, r.Key.max) {
		max = r.Key.max
	}
	return max
}

// overlaps reports whether [start, end) and i share a point.
func (u updater[K, V, O]) overlaps(i *Interval[K], start, end K) bool {
	return u.ord.Less(i.Start, end) && u.ord.Less(start, i.End)
}
