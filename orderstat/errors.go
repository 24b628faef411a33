package orderstat

import "errors"

// ErrCorrupt signals a subtree size that disagrees with the tree's shape.
var ErrCorrupt = errors.New("orderstat: size invariant violated")
