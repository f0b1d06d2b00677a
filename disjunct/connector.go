package disjunct

import (
	"github.com/parsekit/lgcore"
	"github.com/parsekit/lgcore/dict"
	"github.com/parsekit/lgcore/tracon"
)

// Connector is the final, pool-allocated form of a connector: a link
// end ready for matching, chained to its neighbor in the same
// direction via Next.
type Connector struct {
	Descriptor       *dict.ConnectorDescriptor
	Multi            bool
	Position         int              // expression-position id carried from the source half-link
	FarthestWord     int              // bound copied from the source CONNECTOR node
	NearestWord      lgcore.WordIndex // set by the preparator (§4.6)
	Shallow          bool             // true iff this is the head of its disjunct's chain, set by the preparator
	OriginatingGword interface{}      // opaque provenance handle, stamped through from the disjunct
	Next             *Connector
}

// NextLink implements tracon.Link, returning an untyped nil at chain
// end so a nil *Connector never gets boxed into a non-nil interface.
func (c *Connector) NextLink() tracon.Link {
	if c.Next == nil {
		return nil
	}
	return c.Next
}

func (c *Connector) UpperID() uint32   { return c.Descriptor.UpperID() }
func (c *Connector) LowerBits() uint32 { return c.Descriptor.LowerBits() }
func (c *Connector) IsMulti() bool     { return c.Multi }
func (c *Connector) IsShallow() bool   { return c.Shallow }

// DescKey implements tracon.Link. It returns the connector's interned
// name pointer rather than the *dict.ConnectorDescriptor itself:
// NewConnectorDescriptor allocates a fresh descriptor on every call, so
// only the interned Name is guaranteed identical across descriptors
// built from equal connector names.
func (c *Connector) DescKey() interface{} { return c.Descriptor.Name }

// asLink adapts a possibly-nil *Connector to tracon.Link without
// boxing a typed nil pointer into a non-nil interface value.
func asLink(c *Connector) tracon.Link {
	if c == nil {
		return nil
	}
	return c
}

// chainFromLink unwraps a tracon.Link known to be backed by *Connector
// (or nil) back into a concrete chain head.
func chainFromLink(l tracon.Link) *Connector {
	if l == nil {
		return nil
	}
	return l.(*Connector)
}
