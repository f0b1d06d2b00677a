/*
Package tracon implements the tracon set (§4.4): a hash-consing table
over connector chains ("tracons" — trailing connector sequences) that
gives structurally equal chains the same canonical pointer, so two
disjuncts sharing a trailing sequence compare and hash it in O(1)
instead of walking it link by link.

A tracon set does not know about the concrete connector type; a chain
element only needs to satisfy Link, which any disjunct chain node can
implement without importing this package's caller. This keeps package
disjunct (which produces the chains) and package tracon (which interns
them) free of a dependency cycle.

The table is a straightforward open-addressing hash set with double
hashing: a primary hash picks the starting slot, a stride hash (forced
nonzero) picks the probe sequence, and the table grows to the next
prime size once the load factor passes 3/8. This is the same style of
growable hash table gorgo's LR automaton uses for its state closures
(github.com/emirpasic/gods/lists/arraylist backs the rehash scratch
list), just specialized to structural chain equality instead of item-set
equality.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package tracon
