package expand

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/parsekit/lgcore"
	"github.com/parsekit/lgcore/dict"
	"github.com/parsekit/lgcore/pool"
)

// tracer traces with key 'lgcore.expand'.
func tracer() tracing.Trace {
	return tracing.Select("lgcore.expand")
}

// Builder expands one word's expression tree into its clause list. A
// Builder is single-use per word: it owns the monotonic
// expression-position counter that must run continuously across the
// whole tree.
type Builder struct {
	pool *pool.Pool[TempLink]
	pos  int
}

// NewBuilder creates a clause builder backed by p. Expand accumulates
// cost across every ancestor of a clause, including negative-cost
// ancestors not yet visited, so it never prunes on cost itself; that is
// left entirely to the disjunct builder, which sees each clause's final
// total (§4.3).
func NewBuilder(p *pool.Pool[TempLink]) *Builder {
	return &Builder{pool: p}
}

// Expand walks e and returns its clause list.
func (b *Builder) Expand(e dict.Node) ([]*Clause, error) {
	switch n := e.(type) {
	case *dict.ConnectorNode:
		return b.expandConnector(n)
	case *dict.AndNode:
		return b.expandAnd(n)
	case *dict.OrNode:
		return b.expandOr(n)
	default:
		return nil, fmt.Errorf("expand: %w: unrecognized node type %T", lgcore.ErrMalformedExpression, e)
	}
}

func (b *Builder) expandConnector(n *dict.ConnectorNode) ([]*Clause, error) {
	entry := b.pool.Alloc()
	if entry == nil {
		return nil, fmt.Errorf("expand: %w: temp-link pool exhausted", lgcore.ErrOutOfMemory)
	}
	entry.Node = n
	entry.ExpPos = b.pos
	entry.Cached = nil
	entry.Next = nil
	b.pos++
	return []*Clause{{Head: entry, Cost: n.Cost()}}, nil
}

func (b *Builder) expandAnd(n *dict.AndNode) ([]*Clause, error) {
	if len(n.Operands) == 0 {
		return []*Clause{{Head: nil, Cost: n.Cost()}}, nil
	}
	acc, err := b.Expand(n.Operands[0])
	if err != nil {
		return nil, err
	}
	for _, op := range n.Operands[1:] {
		next, err := b.Expand(op)
		if err != nil {
			return nil, err
		}
		acc, err = b.product(acc, next)
		if err != nil {
			return nil, err
		}
	}
	for _, c := range acc {
		c.Cost += n.Cost()
	}
	return acc, nil
}

func (b *Builder) expandOr(n *dict.OrNode) ([]*Clause, error) {
	if len(n.Operands) == 0 {
		return nil, nil
	}
	var out []*Clause
	for _, op := range n.Operands {
		sub, err := b.Expand(op)
		if err != nil {
			return nil, err
		}
		for _, c := range sub {
			c.Cost += n.Cost()
			out = append(out, c)
		}
	}
	return out, nil
}

// product forms the Cartesian product of two clause lists: every pair
// (a, b) with a drawn from the accumulated (earlier) operands and b
// from the newly expanded (later) operand yields catenate(b.Head,
// a.Head), so a's chain becomes the tail shared across every
// alternative of b at this fold step.
func (b *Builder) product(acc, next []*Clause) ([]*Clause, error) {
	out := make([]*Clause, 0, len(acc)*len(next))
	for _, a := range acc {
		for _, nx := range next {
			head, err := b.catenate(nx.Head, a.Head)
			if err != nil {
				return nil, err
			}
			out = append(out, &Clause{Head: head, Cost: a.Cost + nx.Cost})
		}
	}
	return out, nil
}

// catenate copies head1's chain into freshly pool-allocated entries
// and links the last copy's Next onto head2 by reference; head2 is
// never copied. A nil head1 catenates to head2 unchanged; a nil head2
// simply terminates the copy.
func (b *Builder) catenate(head1, head2 *TempLink) (*TempLink, error) {
	if head1 == nil {
		return head2, nil
	}
	var newHead, tail *TempLink
	for cur := head1; cur != nil; cur = cur.Next {
		e := b.pool.Alloc()
		if e == nil {
			return nil, fmt.Errorf("expand: %w: temp-link pool exhausted", lgcore.ErrOutOfMemory)
		}
		e.Node = cur.Node
		e.ExpPos = cur.ExpPos
		e.Cached = cur.Cached
		e.Next = nil
		if newHead == nil {
			newHead = e
		} else {
			tail.Next = e
		}
		tail = e
	}
	tail.Next = head2
	return newHead, nil
}
