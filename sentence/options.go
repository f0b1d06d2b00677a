package sentence

import "github.com/parsekit/lgcore"

// DefaultDisjunctCost is the cost cutoff applied when no
// WithDisjunctCost option is given: effectively unbounded for the
// costs any real dictionary entry is expected to carry.
const DefaultDisjunctCost lgcore.Cost = 1000.0

// ParseOptions configures one Sentence's pipeline run.
type ParseOptions struct {
	DisjunctCost lgcore.Cost // clauses/disjuncts costing more than this are dropped
	MaxDisjuncts int         // down-sampling target per dictionary entry of a word; 0 disables it
	RandState    uint64      // seed for down-sampling; 0 selects the system generator
	Generation   bool        // duplicate-eliminator equality mode (§4.5)
	Verbosity    int         // 0 = silent; any value above zero enables DumpDisjuncts
}

// Option configures a ParseOptions value, in the functional-options
// style used throughout this module's dictionary-facing configuration.
type Option func(*ParseOptions)

// WithDisjunctCost sets the cost cutoff for clause and disjunct
// construction.
func WithDisjunctCost(c lgcore.Cost) Option {
	return func(o *ParseOptions) { o.DisjunctCost = c }
}

// WithMaxDisjuncts sets the down-sampling target n. Each dictionary
// entry of a word whose built disjunct list exceeds n is thinned to
// roughly n disjuncts; the count is not an exact cap, and the lists of
// a word's several entries are thinned separately, not as one total.
func WithMaxDisjuncts(n int) Option {
	return func(o *ParseOptions) { o.MaxDisjuncts = n }
}

// WithRandState seeds the down-sampler's PRNG for reproducible runs.
func WithRandState(state uint64) Option {
	return func(o *ParseOptions) { o.RandState = state }
}

// WithGenerationMode switches the duplicate eliminator into generation
// mode, where two disjuncts must also share the same word string to be
// considered duplicates.
func WithGenerationMode(on bool) Option {
	return func(o *ParseOptions) { o.Generation = on }
}

// WithVerbosity sets the diagnostic dump verbosity level.
func WithVerbosity(v int) Option {
	return func(o *ParseOptions) { o.Verbosity = v }
}

// NewParseOptions builds a ParseOptions value from defaults plus opts.
func NewParseOptions(opts ...Option) *ParseOptions {
	o := &ParseOptions{DisjunctCost: DefaultDisjunctCost}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
