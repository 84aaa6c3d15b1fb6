package engine

import "errors"

// Sentinel errors for the engine's public operations.
// Check with errors.Is.
var (
	ErrUnknownCard    = errors.New("engine: unknown card")
	ErrUnknownConcept = errors.New("engine: unknown concept")
	ErrInvalidScope   = errors.New("engine: invalid subject scope")
)
