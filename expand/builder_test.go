package expand

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/parsekit/lgcore"
	"github.com/parsekit/lgcore/dict"
	"github.com/parsekit/lgcore/intern"
	"github.com/parsekit/lgcore/pool"
)

func chainNames(head *TempLink) []string {
	var out []string
	for cur := head; cur != nil; cur = cur.Next {
		out = append(out, *cur.Node.Descriptor.Name)
	}
	return out
}

func connector(in *intern.Interner, name string, dir lgcore.Direction) *dict.ConnectorNode {
	return dict.NewConnector(dict.NewConnectorDescriptor(in, name), dir, false, 0, -1)
}

func TestExpandSingleConnectorProducesOneClause(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lgcore.expand")
	defer teardown()
	in := intern.New()
	p := pool.New[TempLink](8, false)
	b := NewBuilder(p)
	clauses, err := b.Expand(connector(in, "A", lgcore.Right))
	if err != nil {
		t.Fatal(err)
	}
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(clauses))
	}
	if names := chainNames(clauses[0].Head); len(names) != 1 || names[0] != "A" {
		t.Fatalf("unexpected chain %v", names)
	}
}

func TestExpandOrConcatenatesAlternatives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lgcore.expand")
	defer teardown()
	in := intern.New()
	p := pool.New[TempLink](8, false)
	b := NewBuilder(p)
	or := dict.NewOr(0, connector(in, "A", lgcore.Right), connector(in, "B", lgcore.Right))
	clauses, err := b.Expand(or)
	if err != nil {
		t.Fatal(err)
	}
	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses from OR, got %d", len(clauses))
	}
}

func TestExpandAndProducesSharedTail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lgcore.expand")
	defer teardown()
	in := intern.New()
	p := pool.New[TempLink](32, false)
	b := NewBuilder(p)
	// A & (X or Y): the accumulated clause for A should be referenced,
	// not copied, as the tail of both X's and Y's chains.
	and := dict.NewAnd(0,
		connector(in, "A", lgcore.Right),
		dict.NewOr(0, connector(in, "X", lgcore.Right), connector(in, "Y", lgcore.Right)),
	)
	clauses, err := b.Expand(and)
	if err != nil {
		t.Fatal(err)
	}
	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(clauses))
	}
	tailA := clauses[0].Head.Next
	tailB := clauses[1].Head.Next
	if tailA != tailB {
		t.Fatalf("expected both alternatives to share the same accumulated tail entry")
	}
	if *tailA.Node.Descriptor.Name != "A" {
		t.Fatalf("expected shared tail to be the earlier operand A, got %s", *tailA.Node.Descriptor.Name)
	}
}

func TestExpandZeroOperandAndIsEmptyClause(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lgcore.expand")
	defer teardown()
	in := intern.New()
	_ = in
	p := pool.New[TempLink](8, false)
	b := NewBuilder(p)
	clauses, err := b.Expand(dict.NewAnd(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(clauses) != 1 || clauses[0].Head != nil {
		t.Fatalf("expected single empty clause for zero-operand AND")
	}
}

func TestExpandCostAccumulates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lgcore.expand")
	defer teardown()
	in := intern.New()
	p := pool.New[TempLink](8, false)
	b := NewBuilder(p)
	c := connector(in, "A", lgcore.Right)
	c.NodeCost = 1.5
	and := dict.NewAnd(0.25, c)
	clauses, err := b.Expand(and)
	if err != nil {
		t.Fatal(err)
	}
	if clauses[0].Cost != 1.75 {
		t.Fatalf("expected accumulated cost 1.75, got %v", clauses[0].Cost)
	}
}

func TestExpandDoesNotPruneOnPartialCost(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lgcore.expand")
	defer teardown()
	// AND(cost=0, [X(cost=10)]) nested inside OR(cost=-8, ...): X's
	// partial accumulated cost (10) exceeds a hypothetical cutoff of 5
	// before the OR's negative cost is folded in, but the true final
	// total is 2, well under 5. Expand must never prune on a partial
	// total — only the disjunct builder checks the finished clause cost
	// (§4.3), since negative ancestor costs (§3) can bring an
	// over-budget partial back under cutoff.
	in := intern.New()
	p := pool.New[TempLink](8, false)
	b := NewBuilder(p)
	x := connector(in, "X", lgcore.Right)
	x.NodeCost = 10
	and := dict.NewAnd(0, x)
	or := dict.NewOr(-8, and)
	clauses, err := b.Expand(or)
	if err != nil {
		t.Fatal(err)
	}
	if len(clauses) != 1 {
		t.Fatalf("expected the clause to survive expansion, got %d clauses", len(clauses))
	}
	if clauses[0].Cost != 2 {
		t.Fatalf("expected final cost 2, got %v", clauses[0].Cost)
	}
}
