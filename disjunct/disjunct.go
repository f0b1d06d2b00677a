package disjunct

import "github.com/parsekit/lgcore"

// CategoryEntry is one entry in a category-encoded disjunct's category
// array: a category number paired with the cost of picking it. A
// zero-numbered entry terminates the array.
type CategoryEntry struct {
	Num  int
	Cost lgcore.Cost
}

// Disjunct is one alternative way a word may link to its neighbors: a
// pair of connector chains (Left grows away from the word to the
// left, Right grows away to the right) plus the word's own spelling
// or, for a category-encoded entry, a small array of category
// alternatives.
type Disjunct struct {
	Left  *Connector
	Right *Connector

	Word       *string // interned word string; nil when IsCategory
	IsCategory bool
	Categories []CategoryEntry // capacity >= 4, terminated by a zero-numbered entry; used when IsCategory

	Cost       lgcore.Cost
	Provenance interface{} // opaque originating_gword-style handle

	Next *Disjunct // per-word list link
}
