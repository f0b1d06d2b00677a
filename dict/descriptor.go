package dict

import "github.com/parsekit/lgcore/intern"

// ConnectorDescriptor is the interned, hash-ready form of a connector
// name such as "Ss" or "MVp". The name is split into a leading run
// (case-insensitive letters, digits and punctuation up to the first
// lower-case letter) and a trailing lower-case subtype run; both are
// folded into small numeric forms so the tracon set (§4.4) can hash
// chains without touching the backing string; its equality test uses
// the interned Name pointer instead.
type ConnectorDescriptor struct {
	Name      *string // canonical interned spelling, e.g. "MVp"
	upperID   uint32  // polynomial hash of the leading run
	lowerBits uint32  // bitmap of lower-case letters present in the trailing run
}

// NewConnectorDescriptor interns name and derives its numeric forms.
// Two descriptors built from equal names always compare equal by
// UpperID/LowerBits, and their Name pointers are identical.
func NewConnectorDescriptor(in *intern.Interner, name string) *ConnectorDescriptor {
	upper, lower := splitCase(name)
	return &ConnectorDescriptor{
		Name:      in.Intern(name),
		upperID:   polyHash(upper),
		lowerBits: lowerBitmap(lower),
	}
}

// UpperID is the numeric form of the connector's leading (head) run,
// used as the dominant term in tracon hashing.
func (d *ConnectorDescriptor) UpperID() uint32 { return d.upperID }

// LowerBits is a bitmap over a-z of the letters present in the
// connector's trailing subtype run.
func (d *ConnectorDescriptor) LowerBits() uint32 { return d.lowerBits }

func (d *ConnectorDescriptor) String() string { return *d.Name }

// splitCase splits name at the first lower-case letter.
func splitCase(name string) (upper, lower string) {
	i := 0
	for i < len(name) && !(name[i] >= 'a' && name[i] <= 'z') {
		i++
	}
	return name[:i], name[i:]
}

func polyHash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*131 + uint32(s[i])
	}
	return h
}

func lowerBitmap(s string) uint32 {
	var bits uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			bits |= 1 << uint(c-'a')
		}
	}
	return bits
}
