package tracon

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// fakeLink is a minimal Link implementation used only by these tests.
// key stands in for connector descriptor identity: distinct connectors
// use distinct keys even when upper/lower (their hash-only numeric
// forms) happen to collide.
type fakeLink struct {
	key     interface{}
	upper   uint32
	lower   uint32
	multi   bool
	shallow bool
	next    *fakeLink
}

func (f *fakeLink) NextLink() Link {
	if f == nil || f.next == nil {
		return nil
	}
	return f.next
}
func (f *fakeLink) UpperID() uint32      { return f.upper }
func (f *fakeLink) LowerBits() uint32    { return f.lower }
func (f *fakeLink) IsMulti() bool        { return f.multi }
func (f *fakeLink) IsShallow() bool      { return f.shallow }
func (f *fakeLink) DescKey() interface{} { return f.key }

func chain(elems ...*fakeLink) *fakeLink {
	for i := 0; i < len(elems)-1; i++ {
		elems[i].next = elems[i+1]
	}
	return elems[0]
}

func TestInsertDedupsStructurallyEqualChains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lgcore.tracon")
	defer teardown()
	s := New(false)
	a := chain(&fakeLink{key: "A", upper: 1, lower: 2}, &fakeLink{key: "B", upper: 3, lower: 4})
	b := chain(&fakeLink{key: "A", upper: 1, lower: 2}, &fakeLink{key: "B", upper: 3, lower: 4})
	c1, ok1 := s.Insert(a)
	if ok1 {
		t.Fatalf("expected first insert to be new")
	}
	c2, ok2 := s.Insert(b)
	if !ok2 {
		t.Fatalf("expected second structurally-equal chain to be recognized as duplicate")
	}
	if c1 != c2 {
		t.Fatalf("expected canonical pointer identity")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}
}

func TestInsertDistinguishesDifferentChains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lgcore.tracon")
	defer teardown()
	s := New(false)
	a := chain(&fakeLink{key: "A", upper: 1})
	b := chain(&fakeLink{key: "B", upper: 2})
	s.Insert(a)
	_, ok := s.Insert(b)
	if ok {
		t.Fatalf("expected distinct chains to both be treated as new")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}
}

func TestInsertDistinguishesHashCollidingDescriptors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lgcore.tracon")
	defer teardown()
	// Two connectors with identical hash-only numeric forms (UpperID,
	// LowerBits) but different descriptor identity must not be merged:
	// Equal is required to key off descriptor identity, not the
	// polynomial hash used for table placement.
	s := New(false)
	a := chain(&fakeLink{key: "A", upper: 42, lower: 7})
	b := chain(&fakeLink{key: "B", upper: 42, lower: 7})
	s.Insert(a)
	canon, ok := s.Insert(b)
	if ok {
		t.Fatalf("expected hash-colliding but distinct descriptors to be treated as new")
	}
	if canon != b {
		t.Fatalf("expected b to become its own canonical entry")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}
}

func TestShallowDiscriminatingMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lgcore.tracon")
	defer teardown()
	s := New(true)
	a := chain(&fakeLink{key: "A", upper: 1, shallow: true})
	b := chain(&fakeLink{key: "A", upper: 1, shallow: false})
	s.Insert(a)
	_, ok := s.Insert(b)
	if ok {
		t.Fatalf("expected shallow-discriminating set to treat differing Shallow flags as distinct")
	}
}

func TestGrowRehashesWithoutLosingEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lgcore.tracon")
	defer teardown()
	s := New(false)
	seen := map[Link]bool{}
	for i := 0; i < 100; i++ {
		l := chain(&fakeLink{key: i, upper: uint32(i)})
		canon, _ := s.Insert(l)
		seen[canon] = true
	}
	if s.Len() != 100 {
		t.Fatalf("expected 100 entries after growth, got %d", s.Len())
	}
	// Every previously inserted chain must still look up to itself.
	for i := 0; i < 100; i++ {
		probe := chain(&fakeLink{key: i, upper: uint32(i)})
		canon, ok := s.Insert(probe)
		if !ok {
			t.Fatalf("chain %d lost after growth", i)
		}
		if canon.UpperID() != uint32(i) {
			t.Fatalf("wrong canonical chain returned for %d", i)
		}
	}
}

func TestReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lgcore.tracon")
	defer teardown()
	s := New(false)
	s.Insert(chain(&fakeLink{key: "A", upper: 1}))
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("expected Len()=0 after Reset")
	}
	_, ok := s.Insert(chain(&fakeLink{key: "A", upper: 1}))
	if ok {
		t.Fatalf("expected chain to be treated as new after Reset")
	}
}
