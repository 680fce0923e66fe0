package krypto

import (
	"crypto/hmac"
	"fmt"
)

// MacProvider computes a keyed message authentication code.
type MacProvider interface {
	MAC(key, data []byte) []byte
}

// HMAC is an RFC 2104 MAC over one of the supported hash algorithms.
// Keys are plain byte slices; callers holding a string convert it with []byte(s).
type HMAC struct {
	Algorithm Algorithm
}

// NewHMAC returns an HMAC over alg, or ErrUnsupportedAlgorithm.
func NewHMAC(alg Algorithm) (*HMAC, error) {
	if !alg.Available() {
		return nil, fmt.Errorf("%w: hmac-%v", ErrUnsupportedAlgorithm, alg)
	}
	return &HMAC{Algorithm: alg}, nil
}

// MAC returns the tag for data under key.
func (h *HMAC) MAC(key, data []byte) []byte {
	m := hmac.New(h.Algorithm.New, key)
	m.Write(data)
	return m.Sum(nil)
}

// Verify reports in constant time whether tag authenticates data under key.
func (h *HMAC) Verify(key, data, tag []byte) bool {
	return hmac.Equal(h.MAC(key, data), tag)
}

// Size returns the tag length in bytes.
func (h *HMAC) Size() int {
	return h.Algorithm.Size()
}

// GenerateHMAC returns the hex HMAC-SHA256 of message keyed with secret.
func GenerateHMAC(message, secret string) string {
	h := &HMAC{Algorithm: SHA256}
	return ToHexadecimal(h.MAC([]byte(secret), []byte(message)))
}

// VerifyHMAC reports whether signature is GenerateHMAC(message, secret).
func VerifyHMAC(message, secret, signature string) bool {
	return hmac.Equal([]byte(GenerateHMAC(message, secret)), []byte(signature))
}
