package synapse

import "github.com/mitchellh/hashstructure"

// hashable is the normalized, hashstructure-friendly representation of a
// Connection's structure: one normalized struct per node, handed whole to
// a structural-hashing library rather than hand-summed per child.
type hashable struct {
	Neuron   string
	Children []hashableChild
}

type hashableChild struct {
	Kind  string // "scalar", "placeholder", "connection"
	Tag   string
	Value interface{} `hash:"ignore,omitempty"`
	Text  string      // the decimal/verbatim text form of a scalar, or the nested Connection's Expression()
}

func (c *Connection) toHashable() hashable {
	h := hashable{Neuron: c.Neuron.signatureKey(), Children: make([]hashableChild, len(c.Children))}
	for i, child := range c.Children {
		switch {
		case child.IsPlaceholder():
			h.Children[i] = hashableChild{Kind: "placeholder", Tag: child.Placeholder().Name}
		case child.IsConnection():
			h.Children[i] = hashableChild{Kind: "connection", Tag: child.Tag().Name, Text: child.ConnectionValue().Expression()}
		default:
			h.Children[i] = hashableChild{Kind: "scalar", Tag: child.Tag().Name, Text: scalarToString(child)}
		}
	}
	return h
}

// computeHash combines the neuron's identity (name + input tags + output
// tag, folded into signatureKey) with a per-child contribution drawn from
// the child's Value kind. Two Connections with equal neurons and
// structurally equal children always hash equal.
func (c *Connection) computeHash() uint64 {
	h, err := hashstructure.Hash(c.toHashable(), nil)
	if err != nil {
		// hashstructure only errors on unsupported field kinds, which
		// cannot occur for the closed hashable shape above.
		panic(err)
	}
	return h
}

// Hash returns the cached structural hash, recomputed after every
// ApplyInputs.
func (c *Connection) Hash() uint64 { return c.hash }

// Equal implements Connection's equality relation: same Neuron pointer,
// and pairwise-equal children (scalar/string by value, placeholder by
// tag, Connection by recursive equality).
func (c *Connection) Equal(other *Connection) bool {
	if c == other {
		return true
	}
	if other == nil || c.Neuron != other.Neuron {
		return false
	}
	if len(c.Children) != len(other.Children) {
		return false
	}
	for i := range c.Children {
		if !valueEqual(c.Children[i], other.Children[i]) {
			return false
		}
	}
	return true
}
