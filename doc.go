/*
Package lgcore implements the core of a Link Grammar style parser: the
transformation of per-word dictionary expressions into flat disjunct
lists, the compact encoding of shared connector trailing sequences
("tracons"), and the pre-parse preparation that prunes disjuncts unable
to link within a sentence.

Package structure is as follows:

■ pool: a bump/slab allocator for fixed-size elements, used for scratch
clause data and for long-lived per-sentence connectors and disjuncts.

■ intern: a string interner backing connector names and word spellings.

■ dict: the expression-tree data model (AND/OR/CONNECTOR) that a
dictionary hands to the core, read-only.

■ expand: the clause builder, turning one word's expression tree into a
list of AND-clauses.

■ tracon: a hash set over connector chains, keyed by structural
equality, used to give every distinct connector-chain suffix a single
object identity.

■ disjunct: the disjunct builder (materializing clauses into connectors
and disjuncts) and the duplicate eliminator.

■ prepare: the preparator, computing nearest_word and shallow, and
pruning disjuncts that cannot possibly link within the sentence.

■ sentence: the external interfaces a caller implements (Dictionary,
Sentence) plus ParseOptions and the orchestration entry point tying the
four stages together.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lgcore
