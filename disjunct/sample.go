package disjunct

import "math/rand"

// downSample reduces list to roughly max entries when it holds more,
// by keeping the head unconditionally and then keeping each remaining
// entry independently with probability max/len(list). This is a
// deliberately non-uniform reservoir approximation, not an exact
// max-sized sample: the expected length is 1 + (len(list)-1)*max/len(list),
// just under max+1, and single runs come back shorter or longer than
// max, which is fine for a cost-bounded search space where "roughly
// max" is the actual requirement. randState==0
// selects the process-global generator; any other value seeds a
// private one so identical inputs reproduce identical output.
func downSample(list []*Disjunct, max int, randState uint64) []*Disjunct {
	n := len(list)
	if n == 0 || n <= max {
		return list
	}
	var intn func(int) int
	if randState == 0 {
		intn = rand.Intn
	} else {
		src := rand.New(rand.NewSource(int64(randState)))
		intn = src.Intn
	}
	out := make([]*Disjunct, 0, max+1)
	out = append(out, list[0])
	for _, d := range list[1:] {
		if intn(n) < max {
			out = append(out, d)
		}
	}
	return out
}
