package avl

import "errors"

var (
	// ErrNotCanonical signals that a node passed to Add is still linked, or
	// carries stale link state from a previous tree.
	ErrNotCanonical = errors.New("avl: node is not in canonical unlinked state")
	// ErrCorrupt signals a violated tree invariant found by CheckIntegrity.
	ErrCorrupt = errors.New("avl: tree invariant violated")
)
