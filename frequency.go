package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// SymbolCount pairs a Symbol with its number of occurrences.
type SymbolCount struct {
	Symbol Symbol
	Count  uint64
}

// FrequencyTable maps each distinct Symbol of an input to its (positive)
// number of occurrences.  It remembers the order in which symbols first
// appeared, which the tree builder uses to break ties.
//
// The zero value is an empty table.  Tables are never modified after
// construction.
type FrequencyTable struct {
	entries []SymbolCount
	index   map[Symbol]int
	total   uint64
}

// CountFrequencies counts the occurrences of each Symbol in symbols.  It
// returns ErrEmptyInput if symbols is empty.
func CountFrequencies(symbols []Symbol) (FrequencyTable, error) {
	if len(symbols) == 0 {
		return FrequencyTable{}, fmt.Errorf("huffman: count frequencies: %w", ErrEmptyInput)
	}

	ft := FrequencyTable{index: make(map[Symbol]int)}
	for pos, symbol := range symbols {
		if !symbol.IsValid() {
			return FrequencyTable{}, fmt.Errorf("huffman: count frequencies: symbol %d at position %d: %w", int32(symbol), pos, ErrInvalidSymbol)
		}
		if i, found := ft.index[symbol]; found {
			ft.entries[i].Count++
		} else {
			ft.index[symbol] = len(ft.entries)
			ft.entries = append(ft.entries, SymbolCount{symbol, 1})
		}
	}
	ft.total = uint64(len(symbols))
	return ft, nil
}

// MakeFrequencyTable constructs a FrequencyTable from explicit counts.  The
// order of entries is the first-appearance order of the resulting table.
func MakeFrequencyTable(entries ...SymbolCount) (FrequencyTable, error) {
	if len(entries) == 0 {
		return FrequencyTable{}, fmt.Errorf("huffman: make frequency table: %w", ErrEmptyInput)
	}

	ft := FrequencyTable{
		entries: make([]SymbolCount, 0, len(entries)),
		index:   make(map[Symbol]int, len(entries)),
	}
	for _, entry := range entries {
		switch {
		case !entry.Symbol.IsValid():
			return FrequencyTable{}, fmt.Errorf("huffman: make frequency table: symbol %d: %w", int32(entry.Symbol), ErrInvalidSymbol)
		case entry.Count == 0:
			return FrequencyTable{}, fmt.Errorf("huffman: make frequency table: symbol %v: %w", entry.Symbol, ErrZeroCount)
		}
		if _, found := ft.index[entry.Symbol]; found {
			return FrequencyTable{}, fmt.Errorf("huffman: make frequency table: symbol %v: %w", entry.Symbol, ErrDuplicateSymbol)
		}
		sum := ft.total + entry.Count
		if sum < ft.total {
			return FrequencyTable{}, fmt.Errorf("huffman: make frequency table: total count overflows uint64")
		}
		ft.total = sum
		ft.index[entry.Symbol] = len(ft.entries)
		ft.entries = append(ft.entries, entry)
	}
	return ft, nil
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	return len(ft.entries)
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Count returns the number of occurrences of symbol, or 0 if absent.
func (ft FrequencyTable) Count(symbol Symbol) uint64 {
	if i, found := ft.index[symbol]; found {
		return ft.entries[i].Count
	}
	return 0
}

// Symbols returns the distinct symbols in first-appearance order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.entries))
	for i, entry := range ft.entries {
		out[i] = entry.Symbol
	}
	return out
}

// Entries returns a copy of the (symbol, count) pairs in first-appearance
// order.
func (ft FrequencyTable) Entries() []SymbolCount {
	out := make([]SymbolCount, len(ft.entries))
	copy(out, ft.entries)
	return out
}

// MostFrequent returns up to n entries ordered by descending count.  Equal
// counts keep first-appearance order.  A negative n returns every entry.
func (ft FrequencyTable) MostFrequent(n int) []SymbolCount {
	out := ft.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ft.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, entry := range ft.entries {
		fmt.Fprintf(&buf, "\tCount(%v) = %d\n", entry.Symbol, entry.Count)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
