package sentence

import (
	"github.com/parsekit/lgcore/dict"
	"github.com/parsekit/lgcore/disjunct"
	"github.com/parsekit/lgcore/expand"
	"github.com/parsekit/lgcore/intern"
	"github.com/parsekit/lgcore/pool"
)

// Entry is one (expression, word_string) pair a Dictionary hands back
// for a word. The expression tree it points to is owned by the
// dictionary and must not be mutated by anything downstream.
type Entry struct {
	Expression dict.Node
	WordString string
}

// Dictionary supplies the ordered list of dictionary entries matching
// a word. Implementations are expected to be immutable and safely
// shared, read-only, across many concurrently running Sentences.
type Dictionary interface {
	Entries(word string) []Entry
}

// Sentence owns one parse run's per-word inputs, scratch pools and
// resulting disjunct lists. Not safe for concurrent use; the
// concurrency model is one Sentence per goroutine (§5).
type Sentence struct {
	Words    []string
	Dict     Dictionary
	Interner *intern.Interner
	Options  *ParseOptions

	// Disjuncts[w] is the head of word w's final disjunct list once
	// Prepare has processed it; nil until then.
	Disjuncts []*disjunct.Disjunct

	tempPool *pool.Pool[expand.TempLink]
	connPool *pool.Pool[disjunct.Connector]
	disjPool *pool.Pool[disjunct.Disjunct]
}

// New creates a Sentence over words, ready to run Prepare. dictionary
// and interner may be shared across many Sentences; the scratch and
// per-sentence pools are private to this instance.
func New(words []string, dictionary Dictionary, interner *intern.Interner, opts ...Option) *Sentence {
	return &Sentence{
		Words:     words,
		Dict:      dictionary,
		Interner:  interner,
		Options:   NewParseOptions(opts...),
		Disjuncts: make([]*disjunct.Disjunct, len(words)),
		tempPool:  pool.New[expand.TempLink](pool.DefaultSlabSize, false),
		connPool:  pool.New[disjunct.Connector](pool.DefaultSlabSize, false),
		disjPool:  pool.New[disjunct.Disjunct](pool.DefaultSlabSize, false),
	}
}

// Close releases the sentence's scratch and per-sentence pools. Disjuncts and
// Connectors returned to the caller before Close must not be
// dereferenced afterward.
func (s *Sentence) Close() {
	s.tempPool.Destroy()
	s.connPool.Destroy()
	s.disjPool.Destroy()
}
