// Package krypto provides the hashing, message authentication and key
// derivation primitives used by cryptograph, plus secure random token and
// identifier generation.
//
// Every primitive is a thin layer over the Go standard library or
// golang.org/x/crypto. The package adds a single enumerated Algorithm tag,
// small capability interfaces and consistent errors on top of them.
//
// # Algorithms
//
// An Algorithm names a hash function and can be parsed from configuration:
//
//	alg, err := krypto.ParseAlgorithm("SHA-256")
//	if err != nil {
//	    log.Fatal(err) // wraps krypto.ErrUnsupportedAlgorithm
//	}
//	digest := alg.Hash([]byte("data"))
//
// Supported: md5, sha1, sha224, sha256, sha384, sha512, sha512/224,
// sha512/256, ripemd160 and sha3-256. MD5 and SHA-1 are kept for
// interoperability with existing systems only.
//
// # Digests
//
// Algorithm implements DigestProvider, which is the same shape as
// base58.DigestProvider, so any algorithm can drive a Base58Check codec:
//
//	codec := base58.NewCheckCodec(krypto.SHA256)
//	addr := codec.EncodeVersion(0x00, krypto.Hash160(publicKey))
//
// HashHex returns the hex digest of a string message:
//
//	krypto.HashHex(krypto.MD5, "", false) // "d41d8cd98f00b204e9800998ecf8427e"
//
// # HMAC Operations
//
//	mac, _ := krypto.NewHMAC(krypto.SHA512)
//	tag := mac.MAC(key, message)
//	ok := mac.Verify(key, message, tag)
//
//	// Hex HMAC-SHA256 helpers for string messages
//	signature := krypto.GenerateHMAC("important message", "shared-secret-key")
//	isValid := krypto.VerifyHMAC("important message", "shared-secret-key", signature)
//
// Keys are always []byte. There is no dynamically typed key parameter.
//
// # Key Derivation
//
// PBKDF2 and Argon2id both implement KdfProvider:
//
//	kdf, _ := krypto.NewPBKDF2(krypto.SHA256)
//	key, err := kdf.DeriveKey(password, salt, 600000, 32)
//
//	hashed, err := krypto.Argon2idHashPassword("userPassword123")
//	ok, err := krypto.Argon2idVerifyPassword("userPassword123", hashed)
//
// # Secure Random Generation
//
//	b, err := krypto.GenerateRandomBytes(32)
//	token, err := krypto.GenerateSecureToken(32) // Base58 text
//	id, err := krypto.GenerateID()               // Base58 UUIDv4, at most 22 chars
//
// # Error Handling
//
//	switch {
//	case errors.Is(err, krypto.ErrUnsupportedAlgorithm):
//	case errors.Is(err, krypto.ErrInvalidParameter):
//	case errors.Is(err, krypto.ErrInsufficientEntropy):
//	}
//
// # Thread Safety
//
// All functions and provider values in this package are safe for concurrent
// use.
package krypto
