package lgcore

import "errors"

// Error taxonomy for the core pipeline (§7). Callers should compare with
// errors.Is; the concrete errors returned from a stage are usually
// wrapped with additional context via fmt.Errorf("...: %w", ...).
var (
	// ErrMalformedExpression signals an expression tree with an
	// unrecognized node type, or otherwise structurally invalid. Fatal
	// for the affected word; other words may still be processed.
	// prepare.Word also returns it for a non-positive sentence length or
	// an out-of-range word index.
	ErrMalformedExpression = errors.New("lgcore: malformed expression")

	// ErrCorruptDictionary signals a violated dictionary invariant, such
	// as a category-encoded word string carrying an out-of-range
	// category number. Fatal for the sentence.
	ErrCorruptDictionary = errors.New("lgcore: corrupt dictionary")

	// ErrOutOfMemory signals that a pool could not grow to satisfy an
	// allocation. Fatal for the sentence.
	ErrOutOfMemory = errors.New("lgcore: out of memory")

	// ErrOverBudget signals that a per-sentence deadline or resource
	// budget was exceeded. The sentence yields a partial result; it is
	// not itself a bug and the caller decides whether to keep the
	// partial result.
	ErrOverBudget = errors.New("lgcore: over budget")
)
