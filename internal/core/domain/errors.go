// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Target errors
	ErrEmptyTarget   = errors.New("target cannot be empty")
	ErrInvalidDomain = errors.New("invalid domain format")

	// Generation errors
	ErrInvalidLength = errors.New("invalid length, expected N or A-B with 0 < A < B")
	ErrModeConflict  = errors.New("dictionary and length modes are mutually exclusive")
	ErrModeMissing   = errors.New("one of dictionary or length must be specified")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)
