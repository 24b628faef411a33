package interval

import "errors"

var (
	// ErrInvalidInterval signals a query or node whose start orders after
	// its end.
	ErrInvalidInterval = errors.New("interval: start after end")
	// ErrCorrupt signals a violated max augmentation found by CheckIntegrity.
	ErrCorrupt = errors.New("interval: augmentation invariant violated")
)
