package radix

import (
	"fmt"
	"strings"
)

// Walk calls fn once for every word stored in the tree, in edge order,
// which is deterministic but otherwise meaningless. Each word is the
// concatenation of the edge labels from the root down to a leaf. Return
// false from fn to stop the walk early.
func (t *Tree) Walk(fn func(word string) bool) {
	if t.IsLeaf() {
		// An empty tree stores nothing; the root is never a word end.
		return
	}
	t.walk("", fn)
}

func (t *Tree) walk(prefix string, fn func(string) bool) bool {
	if t.IsLeaf() {
		return fn(prefix)
	}
	for _, e := range t.edges {
		if !e.next.walk(prefix+e.label, fn) {
			return false
		}
	}
	return true
}

// NumWords returns the number of words stored in the tree. Every stored
// word ends at exactly one leaf, so this is the leaf count.
func (t *Tree) NumWords() int {
	if t.IsLeaf() {
		return 0
	}
	return t.countLeaves()
}

func (t *Tree) countLeaves() int {
	if t.IsLeaf() {
		return 1
	}
	n := 0
	for _, e := range t.edges {
		n += e.next.countLeaves()
	}
	return n
}

// NumNodes returns the number of nodes in the tree, counting the root and
// every leaf.
func (t *Tree) NumNodes() int {
	n := 1
	for _, e := range t.edges {
		n += e.next.NumNodes()
	}
	return n
}

// NumEdges returns the number of edges in the tree, counting empty-labelled
// completion edges.
func (t *Tree) NumEdges() int {
	n := len(t.edges)
	for _, e := range t.edges {
		n += e.next.NumEdges()
	}
	return n
}

// String renders the tree for debugging. A leaf prints as Ø and an empty
// edge label prints as λ, so a word that is a prefix of another shows up as
// an explicit completion marker rather than an invisible empty string.
func (t *Tree) String() string {
	if t.IsLeaf() {
		return "Ø"
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, e := range t.edges {
		if i > 0 {
			b.WriteString(", ")
		}
		if e.label == "" {
			b.WriteString("λ")
		} else {
			fmt.Fprintf(&b, "%q", e.label)
		}
		b.WriteString(" → ")
		b.WriteString(e.next.String())
	}
	b.WriteByte('}')
	return b.String()
}
