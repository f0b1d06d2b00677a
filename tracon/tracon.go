package tracon

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lgcore.tracon'.
func tracer() tracing.Trace {
	return tracing.Select("lgcore.tracon")
}

// Link is the minimal contract a connector-chain element must satisfy
// to be interned by a Set. NextLink must return a plain nil interface
// (not a typed nil) at the end of the chain.
//
// UpperID/LowerBits are polynomial-mixed numeric forms used only for
// hashing (primaryHash/strideHash); they may collide across distinct
// connector names. DescKey is the corresponding connector's descriptor
// identity — comparable with ==, distinct across distinct names — and
// is what Equal actually compares.
type Link interface {
	NextLink() Link
	UpperID() uint32
	LowerBits() uint32
	IsMulti() bool
	IsShallow() bool
	DescKey() interface{}
}

// primes are the successive table sizes a Set grows through.
var primes = []int{53, 97, 193, 389, 769, 1543, 3079, 6151, 12289, 24593, 49157, 98317, 196613, 393241, 786433}

type slot struct {
	used  bool
	hash  uint64
	chain Link
}

// Set is a hash-consing table of connector chains. The zero value is
// not usable; construct with New.
type Set struct {
	shallowDiscriminating bool
	slots                 []slot
	size                  int
}

// New creates an empty tracon set. When shallowDiscriminating is true,
// two otherwise-identical chains whose head connectors differ in their
// Shallow flag are treated as distinct entries.
func New(shallowDiscriminating bool) *Set {
	return &Set{shallowDiscriminating: shallowDiscriminating, slots: make([]slot, primes[0])}
}

// Len reports the number of distinct chains interned.
func (s *Set) Len() int { return s.size }

// Reset clears every entry without releasing the backing storage.
func (s *Set) Reset() {
	for i := range s.slots {
		s.slots[i] = slot{}
	}
	s.size = 0
}

// Insert interns chain. If a structurally equal chain is already
// present, its canonical pointer is returned and ok is true; otherwise
// chain itself becomes the canonical entry and ok is false.
func (s *Set) Insert(chain Link) (canonical Link, ok bool) {
	h := s.primaryHash(chain)
	stride := s.strideHash(chain)
	n := uint64(len(s.slots))
	idx := h % n
	for i := uint64(0); i < n; i++ {
		sl := &s.slots[idx]
		if !sl.used {
			sl.used = true
			sl.hash = h
			sl.chain = chain
			s.size++
			if 8*s.size > 3*len(s.slots) {
				s.grow()
			}
			return chain, false
		}
		if sl.hash == h && Equal(sl.chain, chain, s.shallowDiscriminating) {
			return sl.chain, true
		}
		idx = (idx + stride) % n
	}
	tracer().Errorf("tracon table full at %d slots despite load-factor guard", len(s.slots))
	s.grow()
	return s.Insert(chain)
}

func (s *Set) grow() {
	pending := arraylist.New()
	for i := range s.slots {
		if s.slots[i].used {
			pending.Add(s.slots[i])
		}
	}
	s.slots = make([]slot, nextPrime(len(s.slots)))
	s.size = 0
	it := pending.Iterator()
	for it.Next() {
		old := it.Value().(slot)
		s.insertRehash(old.chain, old.hash)
	}
	tracer().Debugf("tracon set grown to %d slots (%d entries)", len(s.slots), s.size)
}

func (s *Set) insertRehash(chain Link, h uint64) {
	stride := s.strideHash(chain)
	n := uint64(len(s.slots))
	idx := h % n
	for {
		sl := &s.slots[idx]
		if !sl.used {
			sl.used = true
			sl.hash = h
			sl.chain = chain
			s.size++
			return
		}
		idx = (idx + stride) % n
	}
}

func nextPrime(cur int) int {
	for _, p := range primes {
		if p > cur {
			return p
		}
	}
	n := 2*cur + 1
	for {
		prime := true
		for d := 3; d*d <= n; d += 2 {
			if n%d == 0 {
				prime = false
				break
			}
		}
		if prime {
			return n
		}
		n += 2
	}
}

// primaryHash mixes the descriptor numeric forms (UpperID, LowerBits)
// and multi flag over the whole
// chain with multiplier 7; in shallow-discriminating mode the head's
// Shallow flag also contributes.
func (s *Set) primaryHash(chain Link) uint64 {
	var h uint64
	for cur := chain; cur != nil; cur = cur.NextLink() {
		h = h*7 + uint64(cur.UpperID())
		h = h*7 + uint64(cur.LowerBits())
		if cur.IsMulti() {
			h = h*7 + 1
		}
	}
	if s.shallowDiscriminating && chain != nil && chain.IsShallow() {
		h = h*7 + 1
	}
	return h
}

// strideHash computes the double-hashing probe stride with multiplier
// 17, reduced modulo the current table size and forced nonzero so every
// slot in the (prime-sized) table is reachable.
func (s *Set) strideHash(chain Link) uint64 {
	var h uint64
	for cur := chain; cur != nil; cur = cur.NextLink() {
		h = h*17 + uint64(cur.UpperID())
		h = h*17 + uint64(cur.LowerBits())
	}
	h %= uint64(len(s.slots))
	if h == 0 {
		h = 1
	}
	return h
}

// Equal reports whether two chains are structurally identical:
// pairwise equal connector descriptor identity and multi flags, the
// same length, and (when shallowDiscriminating) the same head Shallow
// flag. Descriptor identity, not the hashed numeric forms, decides
// equality — two distinct connectors can share a UpperID/LowerBits
// pair by hash collision without being the same connector.
func Equal(a, b Link, shallowDiscriminating bool) bool {
	if shallowDiscriminating {
		aShallow := a != nil && a.IsShallow()
		bShallow := b != nil && b.IsShallow()
		if aShallow != bShallow {
			return false
		}
	}
	for {
		if a == nil && b == nil {
			return true
		}
		if a == nil || b == nil {
			return false
		}
		if a.DescKey() != b.DescKey() || a.IsMulti() != b.IsMulti() {
			return false
		}
		a, b = a.NextLink(), b.NextLink()
	}
}
