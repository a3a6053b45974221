package textkit

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrUnknownOption indicates an option name that is not in the registry.
	ErrUnknownOption = errors.New("textkit: unknown option")

	// ErrDuplicateOption indicates an option name defined twice. The
	// registry is fixed at startup, so this surfaces as a panic there.
	ErrDuplicateOption = errors.New("textkit: duplicate option")

	// ErrInvalidValue indicates an option value of the wrong type or
	// outside the allowed keywords.
	ErrInvalidValue = errors.New("textkit: invalid option value")

	// ErrPoolClosed indicates an acquire or release on a closed pool.
	ErrPoolClosed = errors.New("textkit: pool closed")

	// ErrEntitySyntax indicates unexpanded XML or HTML entity syntax in
	// input the caller asked to regularize.
	ErrEntitySyntax = errors.New("textkit: unexpanded entity syntax")
)
