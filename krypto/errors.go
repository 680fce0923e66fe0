package krypto

import "errors"

// Standard errors for the krypto package
var (
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrInsufficientEntropy  = errors.New("insufficient entropy")
	ErrInvalidHashFormat    = errors.New("invalid hash format")
)
