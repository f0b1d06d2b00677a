package disjunct

import (
	"sort"

	"github.com/parsekit/lgcore"
	"github.com/parsekit/lgcore/tracon"
)

// Eliminator removes duplicate disjuncts from a per-word list (§4.5).
// Two disjuncts are duplicates when their left and right connector
// chains are structurally equal; in generation mode they must also
// share the same word string, since a category-encoded disjunct
// generation pass needs to keep per-word variants distinct.
type Eliminator struct {
	left, right *tracon.Set
	generation  bool
}

// NewEliminator creates a duplicate eliminator. Its internal tracon
// sets are private and are not the ones used for downstream matching;
// they exist purely to give this pass O(1) chain comparisons.
func NewEliminator(generation bool) *Eliminator {
	return &Eliminator{left: tracon.New(false), right: tracon.New(false), generation: generation}
}

type dedupKey struct {
	left, right tracon.Link
	word        *string
}

// Dedup removes duplicates from head in place, returning the new list
// head. Among duplicates the lowest-cost variant survives; on an exact
// cost tie the first-seen variant survives. Category arrays of merged
// category-encoded duplicates are unioned by category number, keeping
// the lowest cost per number.
func (e *Eliminator) Dedup(head *Disjunct) *Disjunct {
	seen := make(map[dedupKey]*Disjunct)
	var order []dedupKey
	for cur := head; cur != nil; {
		next := cur.Next
		leftCanon, _ := e.left.Insert(asLink(cur.Left))
		rightCanon, _ := e.right.Insert(asLink(cur.Right))
		cur.Left = chainFromLink(leftCanon)
		cur.Right = chainFromLink(rightCanon)

		key := dedupKey{left: leftCanon, right: rightCanon}
		if e.generation {
			key.word = cur.Word
		}
		if existing, ok := seen[key]; ok {
			tracer().Debugf("dedup: merging %s into %s", Fingerprint(cur), Fingerprint(existing))
			seen[key] = mergeDuplicate(existing, cur)
		} else {
			seen[key] = cur
			order = append(order, key)
		}
		cur = next
	}

	var newHead, tail *Disjunct
	for _, k := range order {
		d := seen[k]
		d.Next = nil
		if newHead == nil {
			newHead = d
		} else {
			tail.Next = d
		}
		tail = d
	}
	return newHead
}

// mergeDuplicate folds dup into kept and returns the disjunct that
// survives: the cheaper of the two, or kept on a cost tie.
func mergeDuplicate(kept, dup *Disjunct) *Disjunct {
	if kept.IsCategory && dup.IsCategory {
		// Category disjuncts carry their cost per category number, not
		// in the top-level field (see BuildWord); comparing/assigning
		// Cost here would compare stale zeros instead.
		kept.Categories = unionCategories(kept.Categories, dup.Categories)
		return kept
	}
	if dup.Cost < kept.Cost {
		return dup
	}
	return kept
}

func unionCategories(a, b []CategoryEntry) []CategoryEntry {
	best := make(map[int]lgcore.Cost)
	for _, e := range a {
		if e.Num == 0 {
			continue
		}
		if c, ok := best[e.Num]; !ok || e.Cost < c {
			best[e.Num] = e.Cost
		}
	}
	for _, e := range b {
		if e.Num == 0 {
			continue
		}
		if c, ok := best[e.Num]; !ok || e.Cost < c {
			best[e.Num] = e.Cost
		}
	}
	nums := make([]int, 0, len(best))
	for num := range best {
		nums = append(nums, num)
	}
	sort.Ints(nums)
	capacity := len(nums) + 1
	if capacity < 4 {
		capacity = 4
	}
	out := make([]CategoryEntry, 0, capacity)
	for _, num := range nums {
		out = append(out, CategoryEntry{Num: num, Cost: best[num]})
	}
	out = append(out, CategoryEntry{Num: 0})
	return out
}
