package base58

// Alphabet is the Bitcoin Base58 symbol table. It leaves out 0, O, I and l
// (and the Base64 symbols + and /) so addresses survive being read aloud or
// copied by hand.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Radix is the number of symbols in Alphabet.
const Radix = len(Alphabet)

// zeroSymbol is Alphabet[0]; a run of it at the start of an encoding stands
// for the same number of leading zero bytes.
const zeroSymbol = '1'

// decodeTable maps an ASCII code point to its Alphabet index, or -1.
var decodeTable = func() [128]int8 {
	var t [128]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = int8(i)
	}
	return t
}()

// SymbolAt returns the symbol for digit index. It panics if index is outside [0, Radix).
func SymbolAt(index int) byte {
	return Alphabet[index]
}

// IndexOf returns the digit value of c. The boolean is false for any rune
// that is not one of the 58 symbols, including non-ASCII input.
func IndexOf(c rune) (int, bool) {
	if c < 0 || c >= rune(len(decodeTable)) {
		return 0, false
	}
	i := decodeTable[c]
	if i < 0 {
		return 0, false
	}
	return int(i), true
}
