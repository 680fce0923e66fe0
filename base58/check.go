package base58

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
)

// ChecksumLen is the number of digest bytes appended by Base58Check.
const ChecksumLen = 4

// DigestProvider hashes a byte slice. Base58Check applies it twice and keeps
// the first ChecksumLen bytes, so its digest must be at least that long.
type DigestProvider interface {
	Hash(data []byte) []byte
}

// DigestFunc adapts a plain function to DigestProvider.
type DigestFunc func(data []byte) []byte

// Hash calls f(data).
func (f DigestFunc) Hash(data []byte) []byte {
	return f(data)
}

// SHA256 is the digest Bitcoin uses for Base58Check.
var SHA256 DigestProvider = DigestFunc(func(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
})

var defaultCodec = NewCheckCodec(nil)

// CheckCodec encodes payloads with a trailing checksum so transcription
// errors are caught on decode. It holds no mutable state and is safe for
// concurrent use.
type CheckCodec struct {
	digest DigestProvider
}

// NewCheckCodec returns a codec whose checksum is computed with p. A nil p
// selects SHA256.
func NewCheckCodec(p DigestProvider) *CheckCodec {
	if p == nil {
		p = SHA256
	}
	return &CheckCodec{digest: p}
}

// Checksum returns the first ChecksumLen bytes of p(p(payload)). It panics
// if p yields a digest shorter than ChecksumLen.
func Checksum(p DigestProvider, payload []byte) [ChecksumLen]byte {
	var sum [ChecksumLen]byte
	h := p.Hash(p.Hash(payload))
	if len(h) < ChecksumLen {
		panic(fmt.Sprintf("base58: digest of %d bytes is shorter than the %d byte checksum", len(h), ChecksumLen))
	}
	copy(sum[:], h)
	return sum
}

// Encode returns the Base58 text of payload followed by its checksum.
func (c *CheckCodec) Encode(payload []byte) string {
	sum := Checksum(c.digest, payload)
	buf := make([]byte, 0, len(payload)+ChecksumLen)
	buf = append(buf, payload...)
	buf = append(buf, sum[:]...)
	return Encode(buf)
}

// Decode reverses Encode. Errors from Decode are passed through; input of
// fewer than ChecksumLen bytes fails with ErrInvalidLength and a wrong
// checksum with ErrChecksumMismatch.
func (c *CheckCodec) Decode(s string) ([]byte, error) {
	raw, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(raw) < ChecksumLen {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrInvalidLength, len(raw), ChecksumLen)
	}

	n := len(raw) - ChecksumLen
	payload, got := raw[:n:n], raw[n:]
	want := Checksum(c.digest, payload)
	if subtle.ConstantTimeCompare(got, want[:]) != 1 {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}

// EncodeVersion prefixes payload with a version byte, as Bitcoin does to
// tell address kinds apart, and encodes the result.
func (c *CheckCodec) EncodeVersion(version byte, payload []byte) string {
	buf := make([]byte, 0, 1+len(payload))
	buf = append(buf, version)
	buf = append(buf, payload...)
	return c.Encode(buf)
}

// DecodeVersion reverses EncodeVersion. A valid checked string that carries
// no version byte fails with ErrInvalidLength.
func (c *CheckCodec) DecodeVersion(s string) (byte, []byte, error) {
	decoded, err := c.Decode(s)
	if err != nil {
		return 0, nil, err
	}
	if len(decoded) == 0 {
		return 0, nil, fmt.Errorf("%w: missing version byte", ErrInvalidLength)
	}
	return decoded[0], decoded[1:], nil
}

// CheckEncode encodes payload with a double SHA-256 checksum.
func CheckEncode(payload []byte) string {
	return defaultCodec.Encode(payload)
}

// CheckDecode decodes text produced by CheckEncode.
func CheckDecode(s string) ([]byte, error) {
	return defaultCodec.Decode(s)
}
