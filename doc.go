// Package huffman builds minimum-redundancy prefix codes (Huffman codes) for
// a finite alphabet and reports how well such a code compresses its input.
//
// The pipeline runs strictly forward:
//
//     symbols → FrequencyTable → Tree → CodeTable → Report
//
// Every stage produces an immutable value and never touches the output of an
// earlier stage, so independent pipelines may run concurrently.
//
// Equal-frequency nodes are ordered by when they entered the priority queue,
// which makes the generated codes fully deterministic for a given table.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
package huffman
