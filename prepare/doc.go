/*
Package prepare implements the preparator (§4.6): the last pipeline
stage before a sentence's disjuncts are handed to a downstream matcher.

For every disjunct at word index w, it propagates a nearest_word bound
outward along the left chain (starting at w-1 and decrementing per
depth) and the right chain (starting at w+1 and incrementing per
depth). A disjunct whose deepest left connector would reach before
word 0, or whose deepest right connector would reach at or past the
sentence length, cannot possibly link within the sentence and is
pruned. Surviving chains have their head connector marked Shallow, and
every connector on the disjunct is stamped with the disjunct's
provenance handle.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package prepare
