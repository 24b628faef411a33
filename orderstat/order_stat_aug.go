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

package orderstat

import "github.com/ajwerner/intrusive/avl"

// aug orders counted keys by their key and keeps the subtree sizes current.
type aug[K, V any, O avl.Ordering[K]] struct {
	ord O
}

// Less implements avl.Ordering.
func (a aug[K, V, O]) Less(x, y Counted[K]) bool {
	return a.ord.Less(x.Key, y.Key)
}

// Update will update the count for the current node.
func (a aug[K, V, O]) Update(n *Node[K, V]) {
	n.Key.size = count(n)
}

// count computes the number of nodes rooted at n from its children.
func count[K, V any](n *Node[K, V]) int {
	return 1 + size(n.Left()) + size(n.Right())
}

// size is the number of nodes rooted at n, which may be nil.
func size[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.Key.size
}
