// ═══════════════════════════════════════════════════════════════════════════════
// SMALLEST-OPERAND-FIRST EVALUATOR
// ═══════════════════════════════════════════════════════════════════════════════
// Rather than evaluate the tree bottom-up in a fixed traversal order, Evaluate
// repeatedly picks the shortest leaf posting list still in the tree, reduces its
// parent operator (once the parent's other operand, if any, is also a leaf), and
// collapses the parent into a new leaf holding the result. This keeps every
// intermediate intersect/union/complement operating on the smallest operand
// available at that moment, rather than committing to a left-to-right or
// depth-first evaluation order fixed at compile time.
// ═══════════════════════════════════════════════════════════════════════════════

package querytree

import (
	"sort"

	"github.com/anchortide/govirgo/booleanops"
	"github.com/anchortide/govirgo/postinglist"
)

// Evaluate reduces tree to a single posting list. universe is the
// dictionary's universal posting list, needed to realize NOT.
func Evaluate(tree *Tree, universe *postinglist.SkipList) (*postinglist.SkipList, error) {
	for tree.Root.Kind != Leaf {
		leaves := collectLeaves(tree.Root)
		sort.SliceStable(leaves, func(i, j int) bool {
			return leaves[i].Postings.Length < leaves[j].Postings.Length
		})

		reduced := false
		for _, leaf := range leaves {
			parent := leaf.Parent
			if parent == nil {
				continue // leaf is the root; loop condition already excludes this
			}

			switch parent.Kind {
			case Unary:
				result, err := booleanops.Complement(parent.Left.Postings, universe)
				if err != nil {
					return nil, err
				}
				collapse(parent, result)
				reduced = true

			case Binary:
				sibling := parent.Left
				if parent.Left == leaf {
					sibling = parent.Right
				}
				if sibling.Kind != Leaf {
					continue
				}
				var result *postinglist.SkipList
				if parent.Op == OpAnd {
					result = booleanops.Intersect(parent.Left.Postings, parent.Right.Postings)
				} else {
					result = booleanops.Union(parent.Left.Postings, parent.Right.Postings)
				}
				collapse(parent, result)
				reduced = true
			}

			if reduced {
				break
			}
		}

		if !reduced {
			return nil, ErrMalformedQuery
		}
	}
	return tree.Root.Postings, nil
}

// collapse turns an operator node into a resolved Leaf in place, so any
// Parent pointer held by nodes above it keeps pointing at a valid node.
func collapse(n *Node, result *postinglist.SkipList) {
	n.Kind = Leaf
	n.Postings = result
	n.Left = nil
	n.Right = nil
}

// collectLeaves returns every Leaf node reachable from root, in left-to-right
// tree order.
func collectLeaves(n *Node) []*Node {
	if n.Kind == Leaf {
		return []*Node{n}
	}
	var out []*Node
	if n.Left != nil {
		out = append(out, collectLeaves(n.Left)...)
	}
	if n.Right != nil {
		out = append(out, collectLeaves(n.Right)...)
	}
	return out
}
