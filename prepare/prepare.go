package prepare

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/parsekit/lgcore"
	"github.com/parsekit/lgcore/disjunct"
)

// tracer traces with key 'lgcore.prepare'.
func tracer() tracing.Trace {
	return tracing.Select("lgcore.prepare")
}

// Word prepares the disjunct list of the word at index w within a
// sentence of the given length: it prunes disjuncts that cannot
// possibly link within the sentence's bounds, marks each surviving
// chain's head connector Shallow, and stamps every connector with its
// disjunct's provenance handle.
func Word(head *disjunct.Disjunct, w lgcore.WordIndex, sentenceLen int) (*disjunct.Disjunct, error) {
	if sentenceLen <= 0 {
		return nil, fmt.Errorf("prepare: %w: non-positive sentence length %d", lgcore.ErrMalformedExpression, sentenceLen)
	}
	if w < 0 || int(w) >= sentenceLen {
		return nil, fmt.Errorf("prepare: %w: word index %d out of range [0,%d)", lgcore.ErrMalformedExpression, w, sentenceLen)
	}

	var newHead, tail *disjunct.Disjunct
	kept, pruned := 0, 0
	for cur := head; cur != nil; {
		next := cur.Next
		if propagate(cur, w, sentenceLen) {
			if cur.Left != nil {
				cur.Left.Shallow = true
			}
			if cur.Right != nil {
				cur.Right.Shallow = true
			}
			stamp(cur.Left, cur.Provenance)
			stamp(cur.Right, cur.Provenance)
			cur.Next = nil
			if newHead == nil {
				newHead = cur
			} else {
				tail.Next = cur
			}
			tail = cur
			kept++
		} else {
			pruned++
		}
		cur = next
	}
	if pruned > 0 {
		tracer().Debugf("word %d: pruned %d of %d disjuncts", w, pruned, kept+pruned)
	}
	return newHead, nil
}

// propagate assigns nearest_word along both chains of d and reports
// whether the disjunct survives (both chains stay within bounds).
func propagate(d *disjunct.Disjunct, w lgcore.WordIndex, sentenceLen int) bool {
	depth := 0
	for c := d.Left; c != nil; c = c.Next {
		nw := w - 1 - lgcore.WordIndex(depth)
		if nw < 0 {
			return false
		}
		c.NearestWord = nw
		depth++
	}
	depth = 0
	for c := d.Right; c != nil; c = c.Next {
		nw := w + 1 + lgcore.WordIndex(depth)
		if int(nw) >= sentenceLen {
			return false
		}
		c.NearestWord = nw
		depth++
	}
	return true
}

func stamp(chain *disjunct.Connector, provenance interface{}) {
	for c := chain; c != nil; c = c.Next {
		c.OriginatingGword = provenance
	}
}
