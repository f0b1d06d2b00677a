/*
Package intern implements a string interner: a set of canonical strings
backing connector names and word spellings. After interning, two equal
strings share the same backing pointer, so callers may compare by
identity instead of by content — this is what lets the tracon set (§4.4)
hash and compare connector descriptors in O(1) instead of doing a byte
comparison per probe.

The design follows the shape of a classic symbol table: a name maps to
one canonical record, insertion is idempotent, and lookup never creates.
This mirrors runtime.SymbolTable (name -> *Tag), specialized down to bare
strings and made safe for concurrent readers plus serialized writers, as
required for a dictionary-backed interner that is shared read-only across
sentences but may occasionally be extended at load time (§5).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package intern

import "sync"

// Interner is a set of canonical strings. The zero value is not usable;
// construct with New.
type Interner struct {
	mu    sync.RWMutex
	table map[string]*string
}

// New creates an empty interner.
func New() *Interner {
	return &Interner{table: make(map[string]*string)}
}

// Intern returns the canonical pointer for s, inserting it if this is the
// first time s has been seen. All mutators are serialized (§5): once a
// dictionary has been loaded, the interner is expected to be read-only
// and shareable across parallel sentence instances; Intern remains safe
// to call concurrently for the rare case of runtime additions.
func (in *Interner) Intern(s string) *string {
	in.mu.RLock()
	if p, ok := in.table[s]; ok {
		in.mu.RUnlock()
		return p
	}
	in.mu.RUnlock()

	in.mu.Lock()
	defer in.mu.Unlock()
	if p, ok := in.table[s]; ok { // lost the race, someone else interned it
		return p
	}
	canon := s
	in.table[s] = &canon
	return &canon
}

// Lookup finds the canonical pointer for s without inserting it.
func (in *Interner) Lookup(s string) (*string, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	p, ok := in.table[s]
	return p, ok
}

// Len reports how many distinct strings have been interned.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.table)
}

// Same reports whether a and b are the same canonical string, by
// pointer identity rather than by content comparison.
func Same(a, b *string) bool {
	return a == b
}
