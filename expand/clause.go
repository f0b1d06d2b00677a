package expand

import (
	"github.com/parsekit/lgcore"
	"github.com/parsekit/lgcore/dict"
)

// TempLink is one temporary half-link record in a clause's chain. It
// wraps a source CONNECTOR node and carries a cache slot the disjunct
// builder fills in once this exact entry (by pointer identity) has
// been materialized into a real connector; any later clause that
// shares the same TempLink by reference finds Cached already set and
// adopts it wholesale instead of re-allocating.
type TempLink struct {
	Node   *dict.ConnectorNode
	ExpPos int         // monotonic position id, assigned once per entry
	Cached interface{} // set by package disjunct once materialized; nil until then
	Next   *TempLink
}

// Clause is one alternative reading of an expression: an ordered chain
// of temporary half-links plus the accumulated cost of every AND/OR
// node contributing to this alternative. A nil Head denotes the empty
// clause (no connectors at all), which arises from a zero-operand AND.
type Clause struct {
	Head *TempLink
	Cost lgcore.Cost
}
