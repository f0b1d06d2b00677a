/*
Package pool implements a bump/slab allocator for fixed-size elements
(§4.1 of the design).

The clause-expansion phase allocates in the inner loop of a
multiplicative combinatorial expansion; individual-free would dominate
runtime, and RAII-style release is unnecessary because the entire
scratch region is discarded when a word is done. Downstream per-sentence
objects (connectors, disjuncts) have a single teardown point instead.

The design is grounded on the binary/ternary clause allocator found in
SAT solvers: a large backing slice is carved up by a bump pointer, and
"freeing" is either a full reset (scratch pools, reused between words)
or simply letting the whole pool go out of scope (per-sentence pools,
released at sentence teardown). Neither path frees individual elements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package pool

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lgcore.pool'.
func tracer() tracing.Trace {
	return tracing.Select("lgcore.pool")
}

// DefaultSlabSize is the number of elements carved from a single backing
// slice before a new slab is allocated.
const DefaultSlabSize = 1024

// Pool is a fixed-element-size bump allocator. Allocations return stable
// pointers that remain valid until either the pool is Reset (all elements
// reclaimed at once, pointers invalidated) or the pool is Destroyed.
// Pool is not safe for concurrent use; the concurrency model (§5) is one
// pool per sentence, one sentence per goroutine.
type Pool[T any] struct {
	slabSize    int
	maxSlabs    int // 0 = unbounded
	zeroOnAlloc bool
	slabs       [][]T
	slab        int // index of the slab currently being carved
	used        int // elements used within slabs[slab]
}

// New creates a pool with unbounded growth: it never fails an allocation.
// zeroOnAlloc controls whether a freshly returned element is explicitly
// zero-valued; this matters only after a Reset, since a reused slab still
// holds the previous generation's field values until overwritten.
func New[T any](slabSize int, zeroOnAlloc bool) *Pool[T] {
	if slabSize <= 0 {
		slabSize = DefaultSlabSize
	}
	return &Pool[T]{slabSize: slabSize, zeroOnAlloc: zeroOnAlloc}
}

// NewCapped creates a pool that refuses to grow past maxSlabs slabs.
// Alloc returns nil once the cap is reached; callers are expected to
// surface this as lgcore.ErrOutOfMemory.
func NewCapped[T any](slabSize, maxSlabs int, zeroOnAlloc bool) *Pool[T] {
	p := New[T](slabSize, zeroOnAlloc)
	p.maxSlabs = maxSlabs
	return p
}

// Alloc returns a pointer to a freshly carved element. The pointer stays
// valid until the next Reset or Destroy. Returns nil only for a capped
// pool that has exhausted its slab budget; an uncapped pool never
// returns nil.
func (p *Pool[T]) Alloc() *T {
	if p.slab >= len(p.slabs) || p.used >= len(p.slabs[p.slab]) {
		if !p.growSlab() {
			tracer().Errorf("pool exhausted at %d slabs of %d elements", len(p.slabs), p.slabSize)
			return nil
		}
	}
	e := &p.slabs[p.slab][p.used]
	if p.zeroOnAlloc {
		var zero T
		*e = zero
	}
	p.used++
	return e
}

// growSlab appends a new backing slab, or advances to the next
// already-allocated one (this happens after a Reset that did not shrink
// the slab list). Returns false if the pool is capped and already at its
// slab limit.
func (p *Pool[T]) growSlab() bool {
	if p.slab < len(p.slabs)-1 {
		p.slab++
		p.used = 0
		return true
	}
	if p.maxSlabs > 0 && len(p.slabs) >= p.maxSlabs {
		return false
	}
	p.slabs = append(p.slabs, make([]T, p.slabSize))
	p.slab = len(p.slabs) - 1
	p.used = 0
	return true
}

// Reset reclaims all elements at once. Every pointer previously returned
// by Alloc becomes invalid; the caller must not dereference it again.
// The underlying slabs are retained so the next round of allocations does
// not need to touch the allocator.
func (p *Pool[T]) Reset() {
	p.slab = 0
	p.used = 0
}

// Destroy releases the backing storage entirely. Used at sentence
// teardown for the connector and disjunct pools.
func (p *Pool[T]) Destroy() {
	p.slabs = nil
	p.slab = 0
	p.used = 0
}

// Len returns the number of elements currently allocated (i.e. live
// since the last Reset).
func (p *Pool[T]) Len() int {
	if len(p.slabs) == 0 {
		return 0
	}
	return p.slab*p.slabSize + p.used
}

// Each iterates over every live element in allocation order. Mutating fn
// may modify *T in place but must not retain a *T beyond the next Reset.
func (p *Pool[T]) Each(fn func(*T)) {
	for i := 0; i <= p.slab && i < len(p.slabs); i++ {
		n := p.slabSize
		if i == p.slab {
			n = p.used
		}
		for j := 0; j < n; j++ {
			fn(&p.slabs[i][j])
		}
	}
}
