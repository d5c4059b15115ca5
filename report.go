package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// DefaultFixedWidth is the conventional baseline width of one uncompressed
// symbol, in bits.
const DefaultFixedWidth = 8

// Report summarizes how well a CodeTable compresses the input described by a
// FrequencyTable.
type Report struct {
	// TotalSymbols is the length of the input.
	TotalSymbols uint64

	// DistinctSymbols is the size of the input's alphabet.
	DistinctSymbols int

	// FixedWidth is the baseline width of one uncompressed symbol.
	FixedWidth uint

	// MinFixedWidth is the narrowest fixed width that can still tell every
	// symbol of the alphabet apart.
	MinFixedWidth uint

	// OriginalBits is TotalSymbols × FixedWidth.
	OriginalBits uint64

	// EncodedBits is Σ count(symbol) × len(code(symbol)).
	EncodedBits uint64

	// Entropy is the Shannon entropy of the input in bits per symbol, a
	// lower bound for the average code length of any prefix code.
	Entropy float64
}

// Analyze computes the compression Report for a FrequencyTable and the
// CodeTable generated from it.  Every counted symbol must have a code;
// a missing one is an *InvariantError.
func Analyze(ft FrequencyTable, ct CodeTable, fixedWidth uint) (Report, error) {
	r := Report{
		TotalSymbols:    ft.Total(),
		DistinctSymbols: ft.Len(),
		FixedWidth:      fixedWidth,
		MinFixedWidth:   MinFixedWidth(ft.Len()),
	}

	var total uint64
	for _, entry := range ft.entries {
		hc, found := ct.Lookup(entry.Symbol)
		if !found {
			return Report{}, newInvariantError("analyze", "symbol %v has no code", entry.Symbol)
		}
		if hc.Size == 0 {
			return Report{}, newInvariantError("analyze", "symbol %v has an empty code", entry.Symbol)
		}
		total += entry.Count
		r.EncodedBits += entry.Count * uint64(hc.Size)

		p := float64(entry.Count) / float64(ft.Total())
		r.Entropy -= p * math.Log2(p)
	}
	if total != r.TotalSymbols {
		return Report{}, newInvariantError("analyze", "counts sum to %d, table total is %d", total, r.TotalSymbols)
	}
	if r.Entropy <= 0 {
		// also clears -0.0 from a single-symbol alphabet
		r.Entropy = 0
	}

	r.OriginalBits = r.TotalSymbols * uint64(fixedWidth)
	return r, nil
}

// Ratio returns 1 − EncodedBits/OriginalBits.  The second result is false
// when OriginalBits is 0, in which case the ratio is undefined.
func (r Report) Ratio() (float64, bool) {
	if r.OriginalBits == 0 {
		return 0, false
	}
	return 1 - float64(r.EncodedBits)/float64(r.OriginalBits), true
}

// SavedBits returns OriginalBits − EncodedBits, which is negative when the
// code is longer than the baseline.
func (r Report) SavedBits() int64 {
	return int64(r.OriginalBits) - int64(r.EncodedBits)
}

// AverageCodeLength returns the mean number of bits per encoded symbol.
func (r Report) AverageCodeLength() float64 {
	if r.TotalSymbols == 0 {
		return 0
	}
	return float64(r.EncodedBits) / float64(r.TotalSymbols)
}

// String returns a one-line summary of the report.
func (r Report) String() string {
	ratio := "N/A"
	if x, ok := r.Ratio(); ok {
		ratio = fmt.Sprintf("%.2f%%", 100*x)
	}
	return fmt.Sprintf("(%d symbols, %d distinct, %d bits → %d bits, ratio %s)",
		r.TotalSymbols, r.DistinctSymbols, r.OriginalBits, r.EncodedBits, ratio)
}

// Dump writes a programmer-readable debugging dump of the Report to the given
// writer.
func (r Report) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Report{\n")
	fmt.Fprintf(&buf, "\tTotalSymbols = %d\n", r.TotalSymbols)
	fmt.Fprintf(&buf, "\tDistinctSymbols = %d\n", r.DistinctSymbols)
	fmt.Fprintf(&buf, "\tFixedWidth = %d\n", r.FixedWidth)
	fmt.Fprintf(&buf, "\tMinFixedWidth = %d\n", r.MinFixedWidth)
	fmt.Fprintf(&buf, "\tOriginalBits = %d\n", r.OriginalBits)
	fmt.Fprintf(&buf, "\tEncodedBits = %d\n", r.EncodedBits)
	if x, ok := r.Ratio(); ok {
		fmt.Fprintf(&buf, "\tRatio() = %.4f\n", x)
	} else {
		buf.WriteString("\tRatio() = N/A\n")
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = Report{}

// Result holds every intermediate product of one pipeline run.
type Result struct {
	Table  FrequencyTable
	Tree   *Tree
	Codes  CodeTable
	Report Report
}

// Compute runs the whole pipeline over symbols: it counts frequencies,
// builds the tree, generates codes and analyzes them against a baseline of
// fixedWidth bits per symbol.
func Compute(symbols []Symbol, fixedWidth uint) (Result, error) {
	ft, err := CountFrequencies(symbols)
	if err != nil {
		return Result{}, err
	}
	t, err := BuildTree(ft)
	if err != nil {
		return Result{}, err
	}
	ct, err := GenerateCodes(t)
	if err != nil {
		return Result{}, err
	}
	r, err := Analyze(ft, ct, fixedWidth)
	if err != nil {
		return Result{}, err
	}
	return Result{Table: ft, Tree: t, Codes: ct, Report: r}, nil
}
