package krypto

import (
	"crypto/md5"  //nolint:gosec // offered for legacy interop, not for new designs
	"crypto/sha1" //nolint:gosec // offered for legacy interop, not for new designs
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // still required by Bitcoin's Hash160
	"golang.org/x/crypto/sha3"
)

// Algorithm identifies a hash function. The zero value is not a valid algorithm.
type Algorithm int

// Supported hash algorithms
const (
	UnknownAlgorithm Algorithm = iota
	MD5
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
	SHA512_224
	SHA512_256
	RIPEMD160
	SHA3_256
)

type algorithmInfo struct {
	name string
	size int
	new  func() hash.Hash
}

var algorithms = map[Algorithm]algorithmInfo{
	MD5:        {"md5", md5.Size, md5.New},
	SHA1:       {"sha1", sha1.Size, sha1.New},
	SHA224:     {"sha224", sha256.Size224, sha256.New224},
	SHA256:     {"sha256", sha256.Size, sha256.New},
	SHA384:     {"sha384", sha512.Size384, sha512.New384},
	SHA512:     {"sha512", sha512.Size, sha512.New},
	SHA512_224: {"sha512/224", sha512.Size224, sha512.New512_224},
	SHA512_256: {"sha512/256", sha512.Size256, sha512.New512_256},
	RIPEMD160:  {"ripemd160", ripemd160.Size, ripemd160.New},
	SHA3_256:   {"sha3-256", 32, sha3.New256},
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA224, SHA256, SHA384, SHA512, SHA512_224, SHA512_256, RIPEMD160, SHA3_256}
}

// ParseAlgorithm resolves a name such as "sha256", "SHA-256" or
// "sha512/256". Case, '-', '_', '/' and spaces are ignored.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := normalizeAlgorithmName(name)
	for alg, info := range algorithms {
		if normalizeAlgorithmName(info.name) == key {
			return alg, nil
		}
	}
	return UnknownAlgorithm, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

func normalizeAlgorithmName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '/', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	if info, ok := algorithms[a]; ok {
		return info.name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Available reports whether a names a supported algorithm.
func (a Algorithm) Available() bool {
	_, ok := algorithms[a]
	return ok
}

// Size returns the digest length in bytes, or 0 for an unknown algorithm.
func (a Algorithm) Size() int {
	return algorithms[a].size
}

// New returns a fresh hash.Hash. It panics if a is not available, the same
// way crypto.Hash.New does.
func (a Algorithm) New() hash.Hash {
	info, ok := algorithms[a]
	if !ok {
		panic(fmt.Sprintf("krypto: %v: %v", ErrUnsupportedAlgorithm, a))
	}
	return info.new()
}

// Hash returns the digest of data. Algorithm therefore satisfies
// DigestProvider and base58.DigestProvider.
func (a Algorithm) Hash(data []byte) []byte {
	h := a.New()
	h.Write(data)
	return h.Sum(nil)
}
