// Package base58 implements the Base58 and Base58Check text encodings used
// for cryptocurrency-style addresses and short identifiers.
//
// Base58 maps an arbitrary byte slice to text over a 58 symbol alphabet that
// leaves out look-alike characters. Leading zero bytes are kept as leading
// '1' symbols, so the byte length is always recoverable:
//
//	s := base58.Encode([]byte{0x00, 0x01}) // "12"
//	b, err := base58.Decode(s)              // []byte{0x00, 0x01}
//
// Base58Check appends the first four bytes of a double hash of the payload
// before encoding, which catches almost every transcription error:
//
//	addr := base58.CheckEncode(payload)
//	payload, err := base58.CheckDecode(addr)
//	if errors.Is(err, base58.ErrChecksumMismatch) {
//	    // mistyped
//	}
//
// A CheckCodec built with NewCheckCodec uses any DigestProvider for the
// checksum; the package functions use SHA-256.
//
// # Cost
//
// Conversion is schoolbook long arithmetic over a byte buffer and is
// quadratic in the input length. It suits inputs of tens to a few hundred
// bytes, not bulk data.
//
// # Thread Safety
//
// All functions and CheckCodec values are safe for concurrent use.
package base58
