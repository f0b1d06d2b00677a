/*
Package sentence ties the pipeline together: it defines the external
interfaces a caller supplies (Dictionary) and configures (ParseOptions),
owns the per-sentence resource pools, and drives one sentence's words
through the clause builder, disjunct builder, duplicate eliminator and
preparator in turn (§4.7, §5).

Sentence plays the role gorgo's runtime.Runtime plays for an
interpreter: a per-run, single-goroutine object that owns its own
scratch pools and is torn down as a unit once the caller is done with
it. Nothing here is safe for concurrent use by design (§5) — the
concurrency model is one Sentence per goroutine, with only the
read-only Dictionary and its interner shared across sentences.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package sentence
