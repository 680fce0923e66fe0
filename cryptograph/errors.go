package cryptograph

import "errors"

// Standard errors for the cryptograph package
var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrVersionMismatch = errors.New("address version mismatch")
)
