package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
)

// Tree is a finished Huffman merge tree.  It is immutable once built.
type Tree struct {
	root      Node
	numLeaves int
	depth     int
}

// BuildTree builds the Huffman tree for the given FrequencyTable.
//
// The two lowest-frequency pending nodes are merged repeatedly; the first one
// extracted becomes the left child.  Ties are broken by enqueue order: leaves
// are enqueued in the table's first-appearance order, and each merged node is
// enqueued after every node that already exists, so the result is the same
// for every run over an identical table.
//
// An empty table is a precondition violation and yields an *InvariantError.
//
func BuildTree(ft FrequencyTable) (*Tree, error) {
	nodeLen := ft.Len()
	if nodeLen == 0 {
		return nil, newInvariantError("build tree", "frequency table is empty")
	}

	// Step 1: build a minheap of leaves.

	list := make([]nodeAndSeq, 0, nodeLen)
	for _, entry := range ft.entries {
		list = append(list, nodeAndSeq{NewLeaf(entry.Symbol, entry.Count), uint64(len(list))})
	}
	h := nodeHeap{list}
	h.Init()
	nextSeq := uint64(nodeLen)

	// Step 2: pop two nodes, combine them, push the combination back.
	// A single remaining node is the root; this also covers the
	// single-symbol case, where no merge happens at all.

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)
		heap.Push(&h, nodeAndSeq{NewInternal(a.node, b.node), nextSeq})
		nextSeq++
	}
	root := heap.Pop(&h).(nodeAndSeq).node

	if root.Frequency() != ft.Total() {
		return nil, newInvariantError("build tree", "root frequency %d != total count %d", root.Frequency(), ft.Total())
	}

	t := &Tree{root: root}
	err := walkTree(root, func(node Node, path Code) error {
		if _, ok := node.(*Leaf); ok {
			t.numLeaves++
		}
		if int(path.Size) > t.depth {
			t.depth = int(path.Size)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if t.numLeaves != nodeLen {
		return nil, newInvariantError("build tree", "tree has %d leaves, table has %d symbols", t.numLeaves, nodeLen)
	}
	return t, nil
}

// Root returns the root Node.
func (t *Tree) Root() Node {
	return t.root
}

// Frequency returns the root frequency, which equals the total symbol count.
func (t *Tree) Frequency() uint64 {
	return t.root.Frequency()
}

// NumLeaves returns the number of leaves, one per distinct symbol.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// Depth returns the length of the longest root-to-leaf path.  A tree made of
// a single leaf has depth 0.
func (t *Tree) Depth() int {
	return t.depth
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line in pre-order, each labelled with its path.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tFrequency() = %d\n", t.Frequency())
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.numLeaves)
	fmt.Fprintf(&buf, "\tDepth() = %d\n", t.depth)
	_ = walkTree(t.root, func(node Node, path Code) error {
		switch x := node.(type) {
		case *Leaf:
			fmt.Fprintf(&buf, "\t%s = Leaf(%v, %d)\n", path, x.Symbol, x.Freq)
		case *Internal:
			fmt.Fprintf(&buf, "\t%s = Internal(%d)\n", path, x.Freq)
		}
		return nil
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walkTree visits every node below root in depth-first pre-order, left
// before right, passing the path from the root (0 = left, 1 = right).
//
// Nodes that are neither a well-formed *Leaf nor a well-formed *Internal
// yield an *InvariantError, as do paths longer than MaxCodeSize.
//
func walkTree(root Node, visit func(node Node, path Code) error) error {
	type stackItem struct {
		node Node
		path Code
	}

	stack := []stackItem{{node: root}}
	for len(stack) != 0 {
		last := len(stack) - 1
		item := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		switch x := item.node.(type) {
		case *Leaf:
			if x == nil {
				return newInvariantError("walk tree", "nil leaf at path %s", item.path)
			}
			if x.Freq == 0 {
				return newInvariantError("walk tree", "leaf %v at path %s has frequency 0", x.Symbol, item.path)
			}

		case *Internal:
			if x == nil || x.Left == nil || x.Right == nil {
				return newInvariantError("walk tree", "internal node at path %s is missing a child", item.path)
			}
			if item.path.Size >= MaxCodeSize {
				return newInvariantError("walk tree", "tree is deeper than %d levels", MaxCodeSize)
			}
			if x.Freq != x.Left.Frequency()+x.Right.Frequency() {
				return newInvariantError("walk tree", "internal node at path %s has frequency %d, children sum to %d", item.path, x.Freq, x.Left.Frequency()+x.Right.Frequency())
			}
			// Push right first so that left is visited first.
			stack = append(stack, stackItem{x.Right, item.path.Append(1)})
			stack = append(stack, stackItem{x.Left, item.path.Append(0)})

		default:
			return newInvariantError("walk tree", "unexpected node %T at path %s", item.node, item.path)
		}

		if err := visit(item.node, item.path); err != nil {
			return err
		}
	}
	return nil
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node Node
	seq  uint64
}

type nodeHeap struct {
	list []nodeAndSeq
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	af, bf := a.node.Frequency(), b.node.Frequency()
	if af != bf {
		return af < bf
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
