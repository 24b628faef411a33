package linkedheap

import "errors"

var (
	// ErrNotCanonical signals that a node passed to Insert is still linked.
	ErrNotCanonical = errors.New("linkedheap: node is not in canonical unlinked state")
	// ErrCorrupt signals a violated heap invariant found by CheckIntegrity.
	ErrCorrupt = errors.New("linkedheap: heap invariant violated")
)
