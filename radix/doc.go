/*
Package radix implements a radix tree (a prefix-compressed trie) over plain
strings, used as a dictionary for exact membership queries.

Edges are labelled with strings rather than single characters, so words that
share a prefix share the edge that spells it. No two edges leaving the same
node ever share a leading character; inserting a word that partially matches
an existing edge splits that edge in place. A node with no outgoing edges is
a leaf and marks the end of a stored word. When a stored word is a strict
prefix of another, the shorter word is kept alive by an empty-labelled edge
to a leaf under the node where it ends.

To use it, create a tree with New(), add words with Insert, and query with
Contains. Both operations are total: every string, including the empty
string, is a valid argument, and duplicate inserts leave the tree unchanged.
Insertion order does not matter as long as no word is inserted after two or
more of its extensions. The tree performs exact, case-sensitive comparison;
any normalization (such as lowercasing) is the caller's concern.

The tree is not safe for concurrent use. Populate it fully, then share it
for reads.
*/
package radix
