package disjunct

import "github.com/cnf/structhash"

// Fingerprint returns a stable diagnostic hash of d as structhash
// serializes it: besides d's connector chains and word/category data it
// covers Cost, Provenance and, through Next, the rest of the list d
// heads. It exists purely for trace output —
// spotting near-duplicate disjuncts in a Debug log without printing
// full chains — and is not used anywhere in the actual duplicate
// elimination or matching logic, which compare structurally instead.
func Fingerprint(d *Disjunct) string {
	h, err := structhash.Hash(d, 1)
	if err != nil {
		return "?"
	}
	return h
}
