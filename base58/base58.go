package base58

import (
	"strings"
)

// Encode returns the Base58 text for b. Each leading zero byte becomes one
// leading '1'; the remaining bytes are read as a big-endian integer and
// written in base 58, most significant digit first. An empty input gives "".
//
// The conversion is exact for any input length, at O(n²) cost in len(b).
// It is meant for identifier-sized inputs.
func Encode(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}
	rest := b[zeros:]

	// log(256)/log(58) < 1.38, so this always holds the result.
	size := len(rest)*138/100 + 1
	digits := make([]byte, size)

	length := 0
	for _, v := range rest {
		carry := int(v)
		i := 0
		for j := size - 1; j >= 0 && (carry != 0 || i < length); j-- {
			carry += 256 * int(digits[j])
			digits[j] = byte(carry % Radix)
			carry /= Radix
			i++
		}
		length = i
	}

	start := size - length
	for start < size && digits[start] == 0 {
		start++
	}

	var sb strings.Builder
	sb.Grow(zeros + size - start)
	for i := 0; i < zeros; i++ {
		sb.WriteByte(zeroSymbol)
	}
	for _, d := range digits[start:] {
		sb.WriteByte(SymbolAt(int(d)))
	}
	return sb.String()
}

// Decode returns the bytes encoded by s. Surrounding whitespace is ignored
// and an empty (or all-whitespace) s decodes to an empty slice. Any other
// symbol outside the alphabet, embedded whitespace included, fails with a
// *CharacterError that matches ErrInvalidCharacter.
//
// Like Encode, Decode costs O(n²) in len(s).
func Decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []byte{}, nil
	}

	zeros := 0
	for zeros < len(s) && s[zeros] == zeroSymbol {
		zeros++
	}
	rest := s[zeros:]

	// log(58)/log(256) < 0.733
	size := len(rest)*733/1000 + 1
	buf := make([]byte, size)

	length := 0
	for off, c := range rest {
		digit, ok := IndexOf(c)
		if !ok {
			return nil, &CharacterError{Char: c, Offset: zeros + off}
		}
		carry := digit
		i := 0
		for j := size - 1; j >= 0 && (carry != 0 || i < length); j-- {
			carry += Radix * int(buf[j])
			buf[j] = byte(carry & 0xff)
			carry >>= 8
			i++
		}
		length = i
	}

	start := size - length
	for start < size && buf[start] == 0 {
		start++
	}

	out := make([]byte, zeros+size-start)
	copy(out[zeros:], buf[start:])
	return out, nil
}
