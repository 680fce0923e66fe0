package krypto

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

// DigestProvider computes a fixed-length digest.
type DigestProvider interface {
	Hash(data []byte) []byte
}

// NewDigest returns the provider for alg, or ErrUnsupportedAlgorithm.
func NewDigest(alg Algorithm) (DigestProvider, error) {
	if !alg.Available() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, alg)
	}
	return alg, nil
}

// DoubleHash returns p(p(data)).
func DoubleHash(p DigestProvider, data []byte) []byte {
	return p.Hash(p.Hash(data))
}

// Hash160 returns RIPEMD-160(SHA-256(data)), the hash behind Bitcoin
// pay-to-pubkey-hash addresses.
func Hash160(data []byte) []byte {
	return RIPEMD160.Hash(SHA256.Hash(data))
}

// ToHexadecimal returns the lower-case hex form of b.
func ToHexadecimal(b []byte) string {
	return hex.EncodeToString(b)
}

// HashHex hashes the UTF-8 bytes of message and returns the digest as hex,
// upper-case when upper is set.
//
// Example:
//
//	krypto.HashHex(krypto.MD5, "", false) // "d41d8cd98f00b204e9800998ecf8427e"
func HashHex(alg Algorithm, message string, upper bool) (string, error) {
	p, err := NewDigest(alg)
	if err != nil {
		return "", err
	}
	out := ToHexadecimal(p.Hash([]byte(message)))
	if upper {
		out = strings.ToUpper(out)
	}
	return out, nil
}

// HashSHA256 returns the hex SHA-256 digest of data.
func HashSHA256(data string) string {
	return ToHexadecimal(SHA256.Hash([]byte(data)))
}

// VerifySHA256 reports whether hash is the hex SHA-256 digest of data.
// Either letter case is accepted; the comparison runs in constant time.
func VerifySHA256(data, hash string) bool {
	expected := HashSHA256(data)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(hash))) == 1
}
