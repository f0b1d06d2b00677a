package sentence

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/parsekit/lgcore/disjunct"
)

// DumpDisjuncts renders every word's current disjunct list as a table.
// It is a no-op unless Options.Verbosity is above zero, mirroring how
// gorgo gates its own Dump() output behind a trace level rather than
// always printing.
func (s *Sentence) DumpDisjuncts() {
	if s.Options.Verbosity <= 0 {
		return
	}
	data := pterm.TableData{{"word", "left", "right", "cost"}}
	for w, head := range s.Disjuncts {
		for cur := head; cur != nil; cur = cur.Next {
			data = append(data, []string{
				s.Words[w],
				chainString(cur.Left),
				chainString(cur.Right),
				costString(cur),
			})
		}
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("dump disjuncts: %v", err)
	}
}

// costString reports a disjunct's cost. Category-encoded disjuncts
// don't carry a meaningful top-level Cost (see disjunct.Builder.BuildWord),
// so their category-array costs are reported instead.
func costString(d *disjunct.Disjunct) string {
	if !d.IsCategory {
		return fmt.Sprintf("%.3f", float64(d.Cost))
	}
	var parts []string
	for _, c := range d.Categories {
		if c.Num == 0 {
			break
		}
		parts = append(parts, fmt.Sprintf("%#x:%.3f", c.Num, float64(c.Cost)))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func chainString(head *disjunct.Connector) string {
	var parts []string
	for c := head; c != nil; c = c.Next {
		parts = append(parts, *c.Descriptor.Name)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
