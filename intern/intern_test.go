package intern

import "testing"

func TestInternIsIdempotentByIdentity(t *testing.T) {
	in := New()
	a := in.Intern("Ss")
	b := in.Intern("Ss")
	if a != b {
		t.Fatalf("expected identical pointers for repeated Intern of the same string")
	}
	if *a != "Ss" {
		t.Fatalf("expected canonical value 'Ss', got %q", *a)
	}
}

func TestInternDistinctStrings(t *testing.T) {
	in := New()
	a := in.Intern("A")
	b := in.Intern("B")
	if a == b {
		t.Fatalf("expected distinct pointers for distinct strings")
	}
	if in.Len() != 2 {
		t.Fatalf("expected 2 interned strings, got %d", in.Len())
	}
}

func TestLookupDoesNotInsert(t *testing.T) {
	in := New()
	if _, ok := in.Lookup("missing"); ok {
		t.Fatalf("expected Lookup of unseen string to fail")
	}
	if in.Len() != 0 {
		t.Fatalf("Lookup must not insert; Len()=%d", in.Len())
	}
}
