package base58

import (
	"errors"
	"fmt"
)

// Standard errors for the base58 package
var (
	// ErrInvalidCharacter is returned when decode input holds a symbol outside the alphabet.
	ErrInvalidCharacter = errors.New("invalid base58 character")
	// ErrInvalidLength is returned when checked input is too short to carry a checksum.
	ErrInvalidLength = errors.New("invalid base58check length")
	// ErrChecksumMismatch is returned when the embedded checksum does not match the payload.
	ErrChecksumMismatch = errors.New("base58check checksum mismatch")
)

// CharacterError reports the first symbol that could not be decoded.
type CharacterError struct {
	Char   rune
	Offset int // byte offset in the trimmed input
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("%v %q at offset %d", ErrInvalidCharacter, e.Char, e.Offset)
}

// Unwrap lets errors.Is match ErrInvalidCharacter.
func (e *CharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
