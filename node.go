package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Node is one vertex of a Huffman merge tree.  It is implemented only by
// *Leaf and *Internal, so a type switch over those two cases is exhaustive.
type Node interface {
	// Frequency returns the total count of every symbol below this node.
	Frequency() uint64

	isNode()
}

// Leaf is a Node that carries a Symbol and has no children.
type Leaf struct {
	Symbol Symbol
	Freq   uint64
}

// NewLeaf constructs a Leaf.  The frequency must be positive.
func NewLeaf(symbol Symbol, freq uint64) *Leaf {
	assert.Assertf(symbol.IsValid(), "leaf symbol %d is negative", int32(symbol))
	assert.Assertf(freq != 0, "leaf %v has frequency 0", symbol)
	return &Leaf{Symbol: symbol, Freq: freq}
}

// Frequency fulfills the Node interface.
func (leaf *Leaf) Frequency() uint64 {
	return leaf.Freq
}

func (*Leaf) isNode() {}

// Internal is a Node with exactly two children and no Symbol.  It owns its
// children; they are never shared with or moved to another parent.
type Internal struct {
	Freq  uint64
	Left  Node
	Right Node
}

// NewInternal constructs an Internal node whose frequency is the sum of its
// children's.  Both children must be non-nil.
func NewInternal(left Node, right Node) *Internal {
	assert.Assertf(left != nil, "internal node has nil left child")
	assert.Assertf(right != nil, "internal node has nil right child")

	a, b := left.Frequency(), right.Frequency()
	sum := a + b
	assert.Assertf(sum >= a, "frequency overflow: %d + %d", a, b)
	return &Internal{Freq: sum, Left: left, Right: right}
}

// Frequency fulfills the Node interface.
func (node *Internal) Frequency() uint64 {
	return node.Freq
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)
