package huffman

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// Symbol represents a symbol in an arbitrary alphabet, typically a byte or a
// rune.  Negative symbols are not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is non-negative.
func (s Symbol) IsValid() bool {
	return s >= 0
}

// String returns the Symbol as a quoted Go character literal, e.g. 'a' or
// '\n'.  Symbols outside the Unicode range are rendered as plain integers.
func (s Symbol) String() string {
	if !s.IsValid() {
		return "<invalid>"
	}
	if r := rune(s); utf8.ValidRune(r) {
		return strconv.QuoteRune(r)
	}
	return strconv.FormatInt(int64(s), 10)
}

// SymbolsFromBytes returns one Symbol per byte of data.
func SymbolsFromBytes(data []byte) []Symbol {
	out := make([]Symbol, len(data))
	for index, b := range data {
		out[index] = Symbol(b)
	}
	return out
}

// SymbolsFromString returns one Symbol per rune of str.  Invalid UTF-8
// sequences become utf8.RuneError, as with a range loop.
func SymbolsFromString(str string) []Symbol {
	out := make([]Symbol, 0, len(str))
	for _, r := range str {
		out = append(out, Symbol(r))
	}
	return out
}
