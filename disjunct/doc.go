/*
Package disjunct implements the final, pool-allocated Connector and
Disjunct types together with the disjunct builder (§4.3) and duplicate
eliminator (§4.5).

The builder walks a clause's temporary half-link chain (produced by
package expand), splits it into a left-going and a right-going chain
by connector direction, and materializes each half-link into a pooled
Connector — unless that half-link's cache slot already holds a
materialized connector from an earlier clause sharing the same
half-link by reference, in which case the cached chain is adopted
wholesale and the rest of that direction's walk on this clause is
skipped. This is the mechanism that turns expand's structural sharing
into shared Connector chains instead of merely shared TempLinks.

The duplicate eliminator canonicalizes each disjunct's left and right
chains through a tracon.Set (package tracon), so two disjuncts are
recognized as duplicates by comparing canonical pointers rather than
walking their chains — the near-linear complexity target the design
calls for.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package disjunct
