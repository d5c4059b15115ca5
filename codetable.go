package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"sort"
)

// CodeTable maps each Symbol of a Tree to its prefix-free Code.  It is
// immutable once generated.
type CodeTable struct {
	codes   map[Symbol]Code
	order   []Symbol
	minSize byte
	maxSize byte
}

// GenerateCodes assigns a Code to every leaf of t by walking it depth-first,
// appending 0 for each left branch and 1 for each right branch.
//
// A tree consisting of a single leaf has no branches at all.  By convention
// that leaf's symbol receives the 1-bit code "0".
//
func GenerateCodes(t *Tree) (CodeTable, error) {
	if t == nil || t.root == nil {
		return CodeTable{}, newInvariantError("generate codes", "tree is empty")
	}

	ct := CodeTable{codes: make(map[Symbol]Code, t.numLeaves)}
	err := walkTree(t.root, func(node Node, path Code) error {
		leaf, ok := node.(*Leaf)
		if !ok {
			return nil
		}
		if path.Size == 0 {
			path = MakeCode(1, 0)
		}
		if _, dupe := ct.codes[leaf.Symbol]; dupe {
			return newInvariantError("generate codes", "symbol %v appears in more than one leaf", leaf.Symbol)
		}
		ct.add(leaf.Symbol, path)
		return nil
	})
	if err != nil {
		return CodeTable{}, err
	}
	return ct, nil
}

func (ct *CodeTable) add(symbol Symbol, hc Code) {
	if len(ct.order) == 0 || ct.minSize > hc.Size {
		ct.minSize = hc.Size
	}
	if ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
	ct.codes[symbol] = hc
	ct.order = append(ct.order, symbol)
}

// Len returns the number of symbols with a code.
func (ct CodeTable) Len() int {
	return len(ct.order)
}

// Lookup returns the Code for symbol.  The second result is false if symbol
// has no code.
func (ct CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc, found := ct.codes[symbol]
	return hc, found
}

// Symbols returns the coded symbols in the order their leaves were visited.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, len(ct.order))
	copy(out, ct.order)
	return out
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// IsPrefixFree returns true iff no code is a prefix of a different code.
func (ct CodeTable) IsPrefixFree() bool {
	sorted := make(byCode, 0, len(ct.order))
	for _, symbol := range ct.order {
		sorted = append(sorted, ct.codes[symbol])
	}
	sorted.SortLexically()

	// After a lexical sort, any code that is a prefix of another sorts
	// immediately before some code it prefixes.
	for i := 1; i < len(sorted); i++ {
		if sorted[i].HasPrefix(sorted[i-1]) {
			return false
		}
	}
	return true
}

// KraftSum returns the exact value of Σ 2^-len(code) over every code.  It is
// at most 1 for any prefix code, and exactly 1 for a code with two or more
// symbols built by GenerateCodes.
func (ct CodeTable) KraftSum() *big.Rat {
	sum := new(big.Rat)
	for _, symbol := range ct.order {
		denom := new(big.Int).Lsh(big.NewInt(1), uint(ct.codes[symbol].Size))
		sum.Add(sum, new(big.Rat).SetFrac(big.NewInt(1), denom))
	}
	return sum
}

// Canonical returns the canonical Huffman code with the same code lengths:
// symbols sorted by (length, symbol) receive consecutive codes, per the
// algorithm in RFC 1951 Section 3.2.2.  The result compresses exactly as
// well as the original.
func (ct CodeTable) Canonical() CodeTable {
	out := CodeTable{codes: make(map[Symbol]Code, len(ct.order))}
	if len(ct.order) == 0 {
		return out
	}

	// Step 1: sort the symbols by (size, symbol) ascending.

	sorted := make(bySize, 0, len(ct.order))
	for _, symbol := range ct.order {
		sorted = append(sorted, symbolAndSize{symbol, ct.codes[symbol].Size})
	}
	sorted.Sort()

	// Step 2: assign the codes sequentially, per the algorithm detailed at
	// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.

	lastSize := sorted[0].size
	nextCode := uint64(0)
	for _, item := range sorted {
		if item.size > lastSize {
			nextCode <<= (item.size - lastSize)
			lastSize = item.size
		}
		out.add(item.symbol, MakeCode(item.size, nextCode))
		nextCode++
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.order {
		fmt.Fprintf(&buf, "\tLookup(%v) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   byte
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}

// type byCode {{{

// byCode sorts codes lexically by their bit strings, so "0" < "01" < "1".
type byCode []Code

func (list byCode) SortLexically() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	n := a.Size
	if b.Size < n {
		n = b.Size
	}
	ap, bp := a.Bits>>(a.Size-n), b.Bits>>(b.Size-n)
	if ap != bp {
		return ap < bp
	}
	return a.Size < b.Size
}

var _ sort.Interface = byCode(nil)

// }}}
