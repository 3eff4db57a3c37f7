// ═══════════════════════════════════════════════════════════════════════════════
// POSTING SKIP LIST
// ═══════════════════════════════════════════════════════════════════════════════
// A posting list is the set of documents containing a given stem, stored as a
// sorted, deduplicated, singly-linked list of PostingIDs. Every node also carries
// an optional skip pointer spaced roughly √n apart, so the boolean set operators
// in the booleanops package can jump past runs of non-matching postings instead
// of walking them one at a time.
//
// Unlike a general-purpose skip list, this one is built once from a sorted slice
// and never mutated afterwards: the index is a build-then-query structure, not an
// insert-as-you-go one. There is no randomized tower of levels, no rebalancing,
// and no deletion — just a single skip pointer per node, computed deterministically
// from the list's length.
// ═══════════════════════════════════════════════════════════════════════════════

package postinglist

import "math"

// PostingID identifies a single document. IDs are non-negative and, within a
// given SkipList, strictly increasing from Head to the final node.
type PostingID int

// Node is one element of a posting list.
type Node struct {
	Data PostingID
	Next *Node // the next posting in document-ID order
	Skip *Node // nil unless this node is a skip-stride boundary
}

// SkipList is a sorted, deduplicated chain of postings with sparse skip
// pointers. The zero value is an empty list.
type SkipList struct {
	Head   *Node
	Length int
}

// BuildFrom constructs a SkipList from ids, which must already be sorted in
// ascending order with no duplicates — callers (the indexer, the boolean
// operators) are responsible for that invariant; BuildFrom does not re-sort
// or dedup.
//
// Skip pointers are placed at a stride of ⌊√n⌋: node 0 skips to node stride,
// node stride skips to node 2·stride, and so on, stopping once a skip would
// land past the end of the list. Lists shorter than 4 elements (stride < 2)
// carry no skip pointers at all — the linear scan is already as fast as a
// skip would be.
func BuildFrom(ids []PostingID) *SkipList {
	sl := &SkipList{}
	if len(ids) == 0 {
		return sl
	}

	nodes := make([]Node, len(ids))
	for i, id := range ids {
		nodes[i].Data = id
	}
	for i := 0; i < len(nodes)-1; i++ {
		nodes[i].Next = &nodes[i+1]
	}

	stride := int(math.Sqrt(float64(len(nodes))))
	if stride >= 2 {
		for i := 0; i+stride < len(nodes); i += stride {
			nodes[i].Skip = &nodes[i+stride]
		}
	}

	sl.Head = &nodes[0]
	sl.Length = len(nodes)
	return sl
}

// ToList walks the chain and returns its postings in order. Used by the
// searcher to render a final result and by tests to assert structure.
func (sl *SkipList) ToList() []PostingID {
	if sl == nil {
		return nil
	}
	out := make([]PostingID, 0, sl.Length)
	for n := sl.Head; n != nil; n = n.Next {
		out = append(out, n.Data)
	}
	return out
}
