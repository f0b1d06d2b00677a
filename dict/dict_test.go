package dict

import (
	"testing"

	"github.com/parsekit/lgcore/intern"
)

func TestDescriptorSplitsUpperAndLowerRuns(t *testing.T) {
	in := intern.New()
	d := NewConnectorDescriptor(in, "MVp")
	upper, lower := splitCase("MVp")
	if upper != "MV" || lower != "p" {
		t.Fatalf("splitCase(%q) = (%q, %q)", "MVp", upper, lower)
	}
	if d.LowerBits()&(1<<('p'-'a')) == 0 {
		t.Fatalf("expected lower-bit for 'p' to be set")
	}
}

func TestDescriptorsOfEqualNamesAreEqual(t *testing.T) {
	in := intern.New()
	a := NewConnectorDescriptor(in, "Ss")
	b := NewConnectorDescriptor(in, "Ss")
	if a.Name != b.Name {
		t.Fatalf("expected interned identical name pointers")
	}
	if a.UpperID() != b.UpperID() || a.LowerBits() != b.LowerBits() {
		t.Fatalf("expected equal numeric forms for equal names")
	}
}

func TestDescriptorsOfDistinctNamesDiffer(t *testing.T) {
	in := intern.New()
	a := NewConnectorDescriptor(in, "Ss")
	b := NewConnectorDescriptor(in, "Wd")
	if a.UpperID() == b.UpperID() && a.LowerBits() == b.LowerBits() {
		t.Fatalf("expected distinct numeric forms for distinct names")
	}
}

func TestNodeKinds(t *testing.T) {
	in := intern.New()
	c := NewConnector(NewConnectorDescriptor(in, "A"), 1, false, 0, -1)
	and := NewAnd(0, c)
	or := NewOr(0, c)
	if c.Kind() != ConnectorKind || and.Kind() != AndKind || or.Kind() != OrKind {
		t.Fatalf("unexpected node kinds")
	}
}
