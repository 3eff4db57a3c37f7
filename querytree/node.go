// ═══════════════════════════════════════════════════════════════════════════════
// PARSE TREE
// ═══════════════════════════════════════════════════════════════════════════════
// A Node is either a Leaf (a resolved posting list), a Unary node (NOT, one
// child), or a Binary node (AND/OR, two children). Build walks a postfix token
// stream with a stack, exactly as a postfix calculator would, and additionally
// wires each child's Parent pointer so the evaluator can walk from a leaf back up
// to the operator that consumes it without re-traversing the whole tree.
// ═══════════════════════════════════════════════════════════════════════════════

package querytree

import (
	"errors"
	"fmt"

	"github.com/anchortide/govirgo/postinglist"
	"github.com/anchortide/govirgo/queryparse"
)

// ErrMalformedQuery is returned when the postfix stream does not reduce to
// exactly one tree: too few operands for an operator, or more than one
// value left over once the stream is exhausted.
var ErrMalformedQuery = errors.New("querytree: malformed query")

// Kind tags which shape of Node this is.
type Kind int

const (
	Leaf Kind = iota
	Unary
	Binary
)

// Op is the boolean operator a Unary or Binary node applies.
type Op int

const (
	OpNot Op = iota
	OpAnd
	OpOr
)

// Node is one point in the parse tree. Once Kind is Leaf, Postings holds the
// resolved result for that subtree and Left/Right/Op are unused; the
// evaluator collapses an operator node into a Leaf in place once it has
// been reduced.
type Node struct {
	Kind     Kind
	Op       Op
	Postings *postinglist.SkipList
	Left     *Node
	Right    *Node
	Parent   *Node
}

// Tree wraps the root of a compiled query.
type Tree struct {
	Root *Node
}

// Loader resolves a stemmed query term to its posting list. The caller is
// responsible for returning an empty (not nil) SkipList for a stem absent
// from the dictionary — an unknown stem is not a compiler error.
type Loader func(stem string) (*postinglist.SkipList, error)

// Build turns a postfix token stream into a Tree. Operator tokens pop their
// operands off the construction stack in the order Build pushed leaves and
// reduced subtrees onto it; every remaining token is a stemmed term, resolved
// through load into a Leaf.
func Build(postfix []string, load Loader) (*Tree, error) {
	var stack []*Node

	pop := func() (*Node, error) {
		if len(stack) == 0 {
			return nil, fmt.Errorf("%w: operator with no operand", ErrMalformedQuery)
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n, nil
	}

	for _, tok := range postfix {
		switch tok {
		case queryparse.KeywordNot:
			child, err := pop()
			if err != nil {
				return nil, err
			}
			node := &Node{Kind: Unary, Op: OpNot, Left: child}
			child.Parent = node
			stack = append(stack, node)

		case queryparse.KeywordAnd, queryparse.KeywordOr:
			right, err := pop()
			if err != nil {
				return nil, err
			}
			left, err := pop()
			if err != nil {
				return nil, err
			}
			op := OpAnd
			if tok == queryparse.KeywordOr {
				op = OpOr
			}
			node := &Node{Kind: Binary, Op: op, Left: left, Right: right}
			left.Parent = node
			right.Parent = node
			stack = append(stack, node)

		default:
			postings, err := load(tok)
			if err != nil {
				return nil, err
			}
			stack = append(stack, &Node{Kind: Leaf, Postings: postings})
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d values left over", ErrMalformedQuery, len(stack))
	}
	return &Tree{Root: stack[0]}, nil
}
