package krypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/gobeaver/cryptograph/base58"
	"github.com/google/uuid"
)

// defaultRandomRetries bounds how often a failed read from the system
// random source is retried before giving up.
const defaultRandomRetries = 1024

// randReader is swapped in tests.
var randReader io.Reader = rand.Reader

// GenerateRandomBytes returns length bytes from the system's
// cryptographically secure random source.
func GenerateRandomBytes(length int) ([]byte, error) {
	return RetryGenerateRandomBytes(length, defaultRandomRetries)
}

// RetryGenerateRandomBytes is GenerateRandomBytes with an explicit retry
// budget. The last read error is returned wrapped in ErrInsufficientEntropy
// when every attempt fails.
func RetryGenerateRandomBytes(length int, retries int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidParameter, length)
	}
	if retries < 1 {
		retries = 1
	}

	b := make([]byte, length)
	var err error
	for i := 0; i < retries; i++ {
		if _, err = io.ReadFull(randReader, b); err == nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrInsufficientEntropy, err)
}

// GenerateSecureToken returns length random bytes written in Base58, suited
// to session tokens and API keys that users may need to copy by hand.
func GenerateSecureToken(length int) (string, error) {
	b, err := GenerateRandomBytes(length)
	if err != nil {
		return "", err
	}
	return base58.Encode(b), nil
}

// GenerateRandomString returns length symbols drawn uniformly from the
// Base58 alphabet.
func GenerateRandomString(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: negative length %d", ErrInvalidParameter, length)
	}
	radix := big.NewInt(int64(base58.Radix))

	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(randReader, radix)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInsufficientEntropy, err)
		}
		out[i] = base58.SymbolAt(int(n.Int64()))
	}
	return string(out), nil
}

// GenerateID returns a random (version 4) UUID written in Base58, at most
// 22 characters instead of the usual 36.
func GenerateID() (string, error) {
	id, err := uuid.NewRandomFromReader(randReader)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInsufficientEntropy, err)
	}
	return base58.Encode(id[:]), nil
}

// ParseID reverses GenerateID.
func ParseID(s string) (uuid.UUID, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return id, nil
}
