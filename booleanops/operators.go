// ═══════════════════════════════════════════════════════════════════════════════
// BOOLEAN SET OPERATORS
// ═══════════════════════════════════════════════════════════════════════════════
// union, intersect, and complement are the three primitives the query evaluator
// composes to answer AND/OR/NOT. All three are single left-to-right passes over
// their operands' linked postings — no random access, no extra allocation beyond
// the output list. intersect is the one that actually uses the skip pointers;
// union and complement are plain two-pointer merges since skipping past a run
// only pays off when you are trying to discard postings, not collect them.
// ═══════════════════════════════════════════════════════════════════════════════

package booleanops

import (
	"errors"
	"fmt"

	"github.com/anchortide/govirgo/postinglist"
)

// ErrCorruptIndex is returned by Complement when it observes a posting in
// the negated operand that does not also appear in the universal list —
// something that cannot happen if every posting list was built as a subset
// of the universal one, so its appearance means the on-disk index has been
// damaged or was built by something other than the indexer.
var ErrCorruptIndex = errors.New("booleanops: corrupt index")

// Union returns the sorted, deduplicated merge of a and b — OR.
func Union(a, b *postinglist.SkipList) *postinglist.SkipList {
	var out []postinglist.PostingID
	na, nb := a.Head, b.Head
	for na != nil && nb != nil {
		switch {
		case na.Data < nb.Data:
			out = append(out, na.Data)
			na = na.Next
		case na.Data > nb.Data:
			out = append(out, nb.Data)
			nb = nb.Next
		default:
			out = append(out, na.Data)
			na = na.Next
			nb = nb.Next
		}
	}
	for ; na != nil; na = na.Next {
		out = append(out, na.Data)
	}
	for ; nb != nil; nb = nb.Next {
		out = append(out, nb.Data)
	}
	return postinglist.BuildFrom(out)
}

// Intersect returns the postings present in both a and b — AND. Whichever
// operand currently holds the smaller value is advanced first; if its skip
// pointer lands at or before the other operand's current value, the skip is
// taken instead of the single step, letting a long run of non-matching
// postings be crossed in one hop.
func Intersect(a, b *postinglist.SkipList) *postinglist.SkipList {
	var out []postinglist.PostingID
	na, nb := a.Head, b.Head
	for na != nil && nb != nil {
		switch {
		case na.Data == nb.Data:
			out = append(out, na.Data)
			na = na.Next
			nb = nb.Next
		case na.Data < nb.Data:
			if na.Skip != nil && na.Skip.Data <= nb.Data {
				na = na.Skip
			} else {
				na = na.Next
			}
		default:
			if nb.Skip != nil && nb.Skip.Data <= na.Data {
				nb = nb.Skip
			} else {
				nb = nb.Next
			}
		}
	}
	return postinglist.BuildFrom(out)
}

// Complement returns universe minus x — NOT x. x must be a subset of
// universe; any posting in x that universe's cursor never reaches in order
// is reported as ErrCorruptIndex rather than silently dropped.
func Complement(x, universe *postinglist.SkipList) (*postinglist.SkipList, error) {
	var out []postinglist.PostingID
	u, nx := universe.Head, x.Head
	for u != nil && nx != nil {
		switch {
		case u.Data < nx.Data:
			out = append(out, u.Data)
			u = u.Next
		case u.Data == nx.Data:
			u = u.Next
			nx = nx.Next
		default:
			return nil, fmt.Errorf("%w: posting %d absent from universal list", ErrCorruptIndex, nx.Data)
		}
	}
	if nx != nil {
		return nil, fmt.Errorf("%w: posting %d absent from universal list", ErrCorruptIndex, nx.Data)
	}
	for ; u != nil; u = u.Next {
		out = append(out, u.Data)
	}
	return postinglist.BuildFrom(out), nil
}
