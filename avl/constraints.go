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

// Ordering orders the keys of a Tree. Less must be a strict weak ordering and
// must not change for the lifetime of any tree it is used with.
type Ordering[K any] interface {
	Less(a, b K) bool
}

// Augmenter is an Ordering which additionally maintains derived data on the
// nodes of the tree. Update is called with a node whenever that node's
// children have just changed, bottom-up, so a node's children have always
// been updated before the node itself. Update must only touch fields
// reachable from n and must be idempotent.
//
// The tree detects an Augmenter when it is made. If the Update method has a
// pointer receiver the ordering must be passed as a pointer.
type Augmenter[K, V any] interface {
	Ordering[K]
	Update(n *Node[K, V])
}

// LessFunc adapts an ordinary less function to an Ordering.
type LessFunc[K any] func(a, b K) bool

// Less implements Ordering.
func (f LessFunc[K]) Less(a, b K) bool { return f(a, b) }
