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

// config is the per-tree configuration. It consists of the ordering provided
// by the instantiator and, if that ordering is also an Augmenter, its update
// callback.
type config[K, V any, O Ordering[K]] struct {
	ord    O
	update func(*Node[K, V])
}

func makeConfig[K, V any, O Ordering[K]](ord O) (c config[K, V, O]) {
	c.ord = ord
	if a, ok := any(ord).(Augmenter[K, V]); ok {
		c.update = a.Update
	}
	return c
}

// less reports whether a orders before b.
func (c *config[K, V, O]) less(a, b K) bool { return c.ord.Less(a, b) }

// notify announces that the children of n changed.
func (c *config[K, V, O]) notify(n *Node[K, V]) {
	if c.update != nil {
		c.update(n)
	}
}
