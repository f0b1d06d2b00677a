/*
Package expand implements the clause builder (§4.2 of the design): it
turns a dictionary's expression tree for one word into a list of
clauses, where a clause is an ordered chain of temporary half-link
records, each wrapping a source CONNECTOR node plus a monotonic
expression-position id and a cache slot the disjunct builder (package
disjunct) will later use to detect and adopt already-materialized
shared tails.

AND folds its operands as a Cartesian product: at each step the
newly-expanded operand's half-link chain is copied fresh (because it
must be re-pointed at whichever accumulated alternative it is paired
with) while the previously-accumulated chain is referenced unchanged,
becoming a shared tail across every alternative of the new operand.
This is exactly the sharing tracons (§4.4) later exploit. OR simply
concatenates its operands' clause lists.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package expand
