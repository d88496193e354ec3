package radix

import "strings"

// Tree is a node in a radix tree. The zero value is an empty tree, ready to
// use; New is provided for symmetry with the rest of the API.
//
// Every node owns its outgoing edges and, through them, the entire subtree
// below it. There is no parent link and no sharing, so the whole structure
// is released when the root becomes unreachable.
type Tree struct {
	edges []edge
}

// edge connects a node to the subtree that continues it. The label is the
// string consumed when the edge is traversed; an empty label marks that the
// path reaching the parent node is itself a complete word.
type edge struct {
	label string
	next  *Tree
}

// New returns an empty tree containing no words.
func New() *Tree {
	return &Tree{}
}

// IsLeaf reports whether the node has no outgoing edges. A leaf marks the
// end of a stored word, except for the root of an empty tree.
func (t *Tree) IsLeaf() bool {
	return len(t.edges) == 0
}

// Insert adds a word to the tree. Inserting a word that is already present
// leaves the tree unchanged, and every string, including the empty string,
// is a valid argument.
func (t *Tree) Insert(word string) {
	// A repeated empty word would add a second completion edge; one is
	// enough.
	if word == "" && t.Contains("") {
		return
	}

	// Find the edge sharing the longest common prefix with the word.
	// Ties keep the first edge found; after an insert completes no two
	// sibling labels share a leading character, so at most one edge can
	// match more than zero characters anyway.
	index := -1
	rootLength := 0
	for i := range t.edges {
		label := t.edges[i].label
		j := 0
		for j < len(word) && j < len(label) && word[j] == label[j] {
			j++
		}
		if j > rootLength {
			index = i
			rootLength = j
		}
	}

	if rootLength == 0 {
		// No edge shares a leading character with the word, so it
		// starts a fresh branch. This also covers a node with no
		// edges, and the empty word, whose empty-labelled edge marks
		// the current node as a word end.
		t.edges = append(t.edges, edge{label: word, next: &Tree{}})
		return
	}

	leading := &t.edges[index]
	if rootLength == len(leading.label) {
		// The whole edge label is a prefix of the word; whatever is
		// left belongs below its successor.
		if rootLength == len(word) {
			// The path already spells the word.
			return
		}
		if leading.next.IsLeaf() {
			// The successor currently terminates a shorter word.
			// Mark that completion with an empty-labelled edge
			// before growing the node, or the shorter word would
			// be lost.
			leading.next.Insert("")
		}
		leading.next.Insert(word[rootLength:])
		return
	}

	// The word and the edge label diverge partway through the label.
	// Split the edge: a new edge spells the shared prefix, and its
	// successor branches into the remainder of the word and the
	// remainder of the original label, which keeps the original subtree.
	t.edges[index] = edge{
		label: word[:rootLength],
		next: &Tree{edges: []edge{
			{label: word[rootLength:], next: &Tree{}},
			{label: leading.label[rootLength:], next: leading.next},
		}},
	}
}

// Contains reports whether the word was stored in the tree. The query is
// read-only and compares bytes exactly; it never modifies the tree.
func (t *Tree) Contains(word string) bool {
	// Successor of the edge whose label is the longest strict prefix of
	// the word, and that label's length.
	var best *Tree
	rootLength := 0

	for i := range t.edges {
		label := t.edges[i].label
		if !strings.HasPrefix(word, label) {
			continue
		}
		if word == label {
			// The edge spells the rest of the word. It is stored
			// iff the successor terminates here, either directly
			// or through an empty-labelled completion edge.
			next := t.edges[i].next
			return next.IsLeaf() || next.Contains("")
		}
		if len(label) > rootLength {
			best = t.edges[i].next
			rootLength = len(label)
		}
	}

	return best != nil && best.Contains(word[rootLength:])
}
