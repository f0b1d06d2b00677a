package disjunct

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/schuko/tracing"
	"github.com/parsekit/lgcore"
	"github.com/parsekit/lgcore/expand"
	"github.com/parsekit/lgcore/intern"
	"github.com/parsekit/lgcore/pool"
)

// tracer traces with key 'lgcore.disjunct'.
func tracer() tracing.Trace {
	return tracing.Select("lgcore.disjunct")
}

// Builder materializes a word's clause list into its disjunct list.
type Builder struct {
	ConnPool     *pool.Pool[Connector]
	DisjPool     *pool.Pool[Disjunct]
	Interner     *intern.Interner
	Cutoff       lgcore.Cost
	MaxDisjuncts int    // 0 disables down-sampling
	RandState    uint64 // 0 selects the system generator
}

// BuildWord materializes clauses into a per-word disjunct list. word
// is either a plain word spelling or a category-encoded form (a
// leading space followed by a hex category number). provenance is an
// opaque handle stamped onto every resulting disjunct unchanged.
func (b *Builder) BuildWord(clauses []*expand.Clause, word string, provenance interface{}) (*Disjunct, error) {
	var list []*Disjunct
	for _, c := range clauses {
		if c.Head == nil {
			continue
		}
		if c.Cost > b.Cutoff {
			continue
		}
		left, right, err := b.materialize(c.Head)
		if err != nil {
			return nil, err
		}
		d := b.DisjPool.Alloc()
		if d == nil {
			return nil, fmt.Errorf("disjunct: %w: disjunct pool exhausted", lgcore.ErrOutOfMemory)
		}
		d.Left, d.Right = left, right
		d.Cost = c.Cost
		d.Provenance = provenance
		if err := b.finalizeWord(d, word); err != nil {
			return nil, err
		}
		if d.IsCategory {
			// The clause cost lives in Categories[0].Cost. The top-level
			// Cost field is left zero: build-disjuncts.c sets
			// category[0].cost but explicitly skips the top-level field
			// ("No! clobbers memory!") since the two share underlying
			// storage in the original layout.
			d.Cost = 0
		}
		list = append(list, d)
	}
	if b.MaxDisjuncts > 0 {
		list = downSample(list, b.MaxDisjuncts, b.RandState)
	}
	// Disjuncts are prepended to the per-word list, so the final order
	// is the reverse of the clause order they were built from.
	var head *Disjunct
	for _, d := range list {
		d.Next = head
		head = d
	}
	return head, nil
}

type chainSide struct {
	head, tail *Connector
	sealed     bool
}

func (s *chainSide) extend(connPool *pool.Pool[Connector], entry *expand.TempLink) error {
	if s.sealed {
		return nil
	}
	if cached, ok := entry.Cached.(*Connector); ok && cached != nil {
		if s.head == nil {
			s.head = cached
		} else {
			s.tail.Next = cached
		}
		s.sealed = true
		return nil
	}
	c := connPool.Alloc()
	if c == nil {
		return fmt.Errorf("disjunct: %w: connector pool exhausted", lgcore.ErrOutOfMemory)
	}
	c.Descriptor = entry.Node.Descriptor
	c.Multi = entry.Node.Multi
	c.Position = entry.ExpPos
	c.FarthestWord = entry.Node.FarthestWord
	entry.Cached = c
	if s.head == nil {
		s.head = c
	} else {
		s.tail.Next = c
	}
	s.tail = c
	return nil
}

// materialize walks a clause's temporary half-link chain, splitting it
// into left- and right-going connector chains.
func (b *Builder) materialize(head *expand.TempLink) (*Connector, *Connector, error) {
	left, right := &chainSide{}, &chainSide{}
	for cur := head; cur != nil; cur = cur.Next {
		side := right
		if cur.Node.Dir == lgcore.Left {
			side = left
		}
		if err := side.extend(b.ConnPool, cur); err != nil {
			return nil, nil, err
		}
	}
	return left.head, right.head, nil
}

// finalizeWord fills in either d.Word or d.IsCategory/d.Categories.
// A word string of the form " <hex>" (a leading space, ASCII 0x20,
// followed by a hex number in (0, 65536)) denotes a category-encoded
// entry rather than a literal spelling.
func (b *Builder) finalizeWord(d *Disjunct, word string) error {
	if len(word) > 1 && word[0] == 0x20 {
		n, err := strconv.ParseUint(word[1:], 16, 32)
		if err != nil || n == 0 || n >= 65536 {
			return fmt.Errorf("disjunct: %w: invalid category number %q", lgcore.ErrCorruptDictionary, word[1:])
		}
		d.IsCategory = true
		cats := make([]CategoryEntry, 0, 4)
		cats = append(cats, CategoryEntry{Num: int(n), Cost: d.Cost})
		cats = append(cats, CategoryEntry{Num: 0, Cost: 0})
		d.Categories = cats
		return nil
	}
	d.Word = b.Interner.Intern(word)
	return nil
}
