package krypto

import (
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// KdfProvider stretches a password into key material.
type KdfProvider interface {
	DeriveKey(password, salt []byte, iterations, keyLen int) ([]byte, error)
}

// pbkdf2PRFs lists the hash functions PBKDF2 may use as its HMAC PRF.
var pbkdf2PRFs = map[Algorithm]bool{
	SHA1:   true,
	SHA224: true,
	SHA256: true,
	SHA384: true,
	SHA512: true,
}

// PBKDF2 derives keys per RFC 8018 with HMAC over Algorithm as the PRF.
type PBKDF2 struct {
	Algorithm Algorithm
}

// NewPBKDF2 returns a PBKDF2 deriver. Only the SHA-1 and SHA-2 family
// (sha1, sha224, sha256, sha384, sha512) are accepted as PRF.
func NewPBKDF2(alg Algorithm) (*PBKDF2, error) {
	if !pbkdf2PRFs[alg] {
		return nil, fmt.Errorf("%w: pbkdf2 with %v", ErrUnsupportedAlgorithm, alg)
	}
	return &PBKDF2{Algorithm: alg}, nil
}

// DeriveKey returns keyLen bytes derived from password and salt.
//
// Online tools often default to HMAC-SHA1; results only match when the PRF
// agrees.
func (p *PBKDF2) DeriveKey(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if !pbkdf2PRFs[p.Algorithm] {
		return nil, fmt.Errorf("%w: pbkdf2 with %v", ErrUnsupportedAlgorithm, p.Algorithm)
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: iterations must be at least 1, got %d", ErrInvalidParameter, iterations)
	}
	if keyLen < 1 {
		return nil, fmt.Errorf("%w: key length must be at least 1, got %d", ErrInvalidParameter, keyLen)
	}
	return pbkdf2.Key(password, salt, iterations, keyLen, p.Algorithm.New), nil
}
