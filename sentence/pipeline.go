package sentence

import (
	"context"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/parsekit/lgcore"
	"github.com/parsekit/lgcore/disjunct"
	"github.com/parsekit/lgcore/expand"
	"github.com/parsekit/lgcore/prepare"
)

// tracer traces with key 'lgcore.sentence'.
func tracer() tracing.Trace {
	return tracing.Select("lgcore.sentence")
}

// Prepare drives every word in the sentence through the pipeline:
// clause building, disjunct building, duplicate elimination and
// preparation, in that order, storing the result in s.Disjuncts.
//
// Cancellation is cooperative and coarse-grained (§5): ctx is checked
// between words, never mid-word. If ctx is done before every word has
// been processed, Prepare returns lgcore.ErrOverBudget; whatever words
// had already been fully processed remain valid in s.Disjuncts, so the
// caller receives a partial result rather than nothing.
func (s *Sentence) Prepare(ctx context.Context) error {
	queue := newPendingQueue(len(s.Words))
	elim := disjunct.NewEliminator(s.Options.Generation)

	for {
		select {
		case <-ctx.Done():
			if queue.len() == 0 {
				return nil
			}
			tracer().Infof("sentence: over budget with %d words still pending", queue.len())
			return lgcore.ErrOverBudget
		default:
		}
		w, ok := queue.pop()
		if !ok {
			return nil
		}
		if err := s.prepareWord(w, elim); err != nil {
			return err
		}
	}
}

func (s *Sentence) prepareWord(w int, elim *disjunct.Eliminator) error {
	entries := s.Dict.Entries(s.Words[w])
	var wordList *disjunct.Disjunct
	var tail *disjunct.Disjunct

	for _, entry := range entries {
		clauseBuilder := expand.NewBuilder(s.tempPool)
		clauses, err := clauseBuilder.Expand(entry.Expression)
		if err != nil {
			return fmt.Errorf("sentence: word %d: %w", w, err)
		}
		disjBuilder := &disjunct.Builder{
			ConnPool:     s.connPool,
			DisjPool:     s.disjPool,
			Interner:     s.Interner,
			Cutoff:       s.Options.DisjunctCost,
			MaxDisjuncts: s.Options.MaxDisjuncts,
			RandState:    s.Options.RandState,
		}
		head, err := disjBuilder.BuildWord(clauses, entry.WordString, entry)
		if err != nil {
			return fmt.Errorf("sentence: word %d: %w", w, err)
		}
		for cur := head; cur != nil; cur = cur.Next {
			if wordList == nil {
				wordList = cur
			} else {
				tail.Next = cur
			}
			tail = cur
		}
	}

	deduped := elim.Dedup(wordList)
	prepared, err := prepare.Word(deduped, lgcore.WordIndex(w), len(s.Words))
	if err != nil {
		return fmt.Errorf("sentence: word %d: %w", w, err)
	}
	s.Disjuncts[w] = prepared
	// The clause and temp-link scratch region is entirely per-word
	// (§4.1); reclaim it now rather than let it accumulate for the rest
	// of the sentence.
	s.tempPool.Reset()
	return nil
}
