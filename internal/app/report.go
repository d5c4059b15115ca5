package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	huffman "github.com/chronos-tachyon/huffstat"
)

type reportParams struct {
	Path    string
	Table   huffman.FrequencyTable
	Codes   huffman.CodeTable
	Report  huffman.Report
	TopSize int
}

const rule = "--------------------------------------------------"

// writeReport prints the three report sections: the most frequent symbols,
// their codes and the compression statistics.
func writeReport(w io.Writer, p reportParams) error {
	bw := bufio.NewWriter(w)

	n := p.TopSize
	if n == 0 {
		n = -1
	}
	top := p.Table.MostFrequent(n)
	hidden := p.Table.Len() - len(top)

	heading := "all symbols"
	if hidden > 0 {
		heading = fmt.Sprintf("%d most frequent", len(top))
	}

	fmt.Fprintf(bw, "--- Source: %s ---\n", p.Path)

	fmt.Fprintf(bw, "\n--- 1. Symbol frequencies (%s) ---\n", heading)
	for _, entry := range top {
		fmt.Fprintf(bw, "%-8s : %d\n", entry.Symbol, entry.Count)
	}
	if hidden > 0 {
		fmt.Fprintf(bw, "(... and %d more symbols)\n", hidden)
	}

	fmt.Fprintf(bw, "\n--- 2. Code table (%s) ---\n", heading)
	for _, entry := range top {
		hc, found := p.Codes.Lookup(entry.Symbol)
		if !found {
			// Analyze already guarantees coverage.
			return fmt.Errorf("no code for symbol %v", entry.Symbol)
		}
		fmt.Fprintf(bw, "%-8s : %s\n", entry.Symbol, hc.Bitstring())
	}
	if hidden > 0 {
		fmt.Fprintf(bw, "(... and %d more codes)\n", hidden)
	}

	r := p.Report
	ratio := "N/A"
	if x, ok := r.Ratio(); ok {
		ratio = fmt.Sprintf("%.2f%%", 100*x)
	}
	lines := []string{
		fmt.Sprintf("Total symbols:       %d (%d distinct)", r.TotalSymbols, r.DistinctSymbols),
		fmt.Sprintf("Original size:       %d bits (%d bits/symbol)", r.OriginalBits, r.FixedWidth),
		fmt.Sprintf("Encoded size:        %d bits", r.EncodedBits),
		rule,
		fmt.Sprintf("Compression ratio:   %s", ratio),
		fmt.Sprintf("Saved bits:          %d bits", r.SavedBits()),
		fmt.Sprintf("Average code length: %.3f bits/symbol", r.AverageCodeLength()),
		fmt.Sprintf("Entropy:             %.3f bits/symbol", r.Entropy),
		fmt.Sprintf("Minimum fixed width: %d bits/symbol", r.MinFixedWidth),
	}
	fmt.Fprintf(bw, "\n--- 3. Compression report ---\n%s\n", strings.Join(lines, "\n"))

	return bw.Flush()
}
