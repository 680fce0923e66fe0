package krypto

import (
	"crypto/subtle"
	"fmt"
	"math"
	"strings"

	"github.com/gobeaver/cryptograph/base58"
	"golang.org/x/crypto/argon2"
)

const (
	memory      = 4096
	iterations  = 3
	parallelism = 6
	saltLength  = 16
	keyLength   = 32

	// maxMemory caps the cost a stored hash may ask for: 1 GiB, in KiB.
	maxMemory = 1 << 20
)

// Argon2id is a memory-hard KdfProvider. The iterations argument of
// DeriveKey is the Argon2 time cost.
type Argon2id struct {
	Memory      uint32 // KiB
	Parallelism uint8
}

// DefaultArgon2id returns the parameters used by Argon2idHashPassword.
func DefaultArgon2id() *Argon2id {
	return &Argon2id{Memory: memory, Parallelism: parallelism}
}

// DeriveKey returns keyLen bytes derived from password and salt.
func (a *Argon2id) DeriveKey(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if iterations < 1 || keyLen < 1 {
		return nil, fmt.Errorf("%w: iterations and key length must be at least 1", ErrInvalidParameter)
	}
	if uint64(iterations) > math.MaxUint32 || uint64(keyLen) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: iterations and key length must fit in 32 bits", ErrInvalidParameter)
	}
	if a.Memory == 0 || a.Parallelism == 0 {
		return nil, fmt.Errorf("%w: memory and parallelism must be positive", ErrInvalidParameter)
	}
	return argon2.IDKey(password, salt, uint32(iterations), a.Memory, a.Parallelism, uint32(keyLen)), nil //nolint:gosec // range checked above
}

// Argon2idHashPassword hashes password with a fresh random salt.
//
// The result has the form "d<memory>$<iterations>$<parallelism>$<salt>$<hash>"
// with salt and hash written in Base58, so it never needs escaping in URLs,
// JSON or shell arguments.
func Argon2idHashPassword(password string) (string, error) {
	salt, err := GenerateRandomBytes(saltLength)
	if err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, keyLength)
	return fmt.Sprintf("d%d$%d$%d$%s$%s", memory, iterations, parallelism, base58.Encode(salt), base58.Encode(hash)), nil
}

// Argon2idVerifyPassword reports whether password matches encodedHash, as
// returned by Argon2idHashPassword. The parameters stored in encodedHash are
// used for the comparison, which runs in constant time.
func Argon2idVerifyPassword(password, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 5 {
		return false, ErrInvalidHashFormat
	}

	var m uint32
	if _, err := fmt.Sscanf(parts[0], "d%d", &m); err != nil {
		return false, fmt.Errorf("failed to parse memory parameter: %w", err)
	}
	if m == 0 || m > maxMemory {
		return false, fmt.Errorf("%w: memory %d KiB out of range", ErrInvalidHashFormat, m)
	}

	var i uint32
	if _, err := fmt.Sscanf(parts[1], "%d", &i); err != nil {
		return false, fmt.Errorf("failed to parse iterations parameter: %w", err)
	}
	if i == 0 {
		return false, fmt.Errorf("%w: iterations must be positive", ErrInvalidHashFormat)
	}

	var p uint32
	if _, err := fmt.Sscanf(parts[2], "%d", &p); err != nil {
		return false, fmt.Errorf("failed to parse parallelism parameter: %w", err)
	}
	// argon2 takes parallelism as uint8
	if p == 0 || p > 255 {
		return false, fmt.Errorf("%w: parallelism %d out of range", ErrInvalidHashFormat, p)
	}

	salt, err := base58.Decode(parts[3])
	if err != nil {
		return false, fmt.Errorf("failed to decode salt: %w", err)
	}
	decodedHash, err := base58.Decode(parts[4])
	if err != nil {
		return false, fmt.Errorf("failed to decode hash: %w", err)
	}
	if len(salt) == 0 || len(decodedHash) == 0 {
		return false, fmt.Errorf("%w: empty salt or hash", ErrInvalidHashFormat)
	}

	computedHash := argon2.IDKey([]byte(password), salt, i, m, uint8(p), uint32(len(decodedHash))) //nolint:gosec // p validated above

	return subtle.ConstantTimeCompare(decodedHash, computedHash) == 1, nil
}
