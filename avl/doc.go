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

// Package avl implements an intrusive AVL tree with an augmentation hook.
//
// Nodes are allocated and owned by the caller; the tree only links them
// together and never allocates. No parent pointers are stored: insertion is
// recursive and iteration keeps an explicit stack of ancestors.
//
// If the tree's ordering also implements Augmenter, its Update method is
// called on every node whose children change, which lets derived per-subtree
// data (an interval's maximum end point, a subtree size) be maintained at no
// extra asymptotic cost. See the interval and orderstat packages.
//
// A Tree is not safe for concurrent use.
package avl

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'intrusive.avl'
func tracer() tracing.Trace {
	return tracing.Select("intrusive.avl")
}
