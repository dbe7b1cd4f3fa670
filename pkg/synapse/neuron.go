package synapse

import "fmt"

// NeuronFunc is the pure function a Neuron realizes. It must be
// deterministic and side-effect-free and must accept any argument vector
// whose tags equal the declared Inputs. An error return it raises is not
// caught here; it propagates up through Connection.Output.
type NeuronFunc func(args []Value) (Value, error)

// Neuron is an immutable named pure typed function used as an operator in
// expressions. Leaf neurons have an empty Inputs signature and are
// invoked with no arguments.
type Neuron struct {
	Name   string
	Inputs []TypeTag
	Output TypeTag
	Fn     NeuronFunc
}

// NewNeuron constructs a Neuron. fn is never invoked here; the engine
// trusts that fn honours the declared signature.
func NewNeuron(name string, inputs []TypeTag, output TypeTag, fn NeuronFunc) *Neuron {
	return &Neuron{Name: name, Inputs: inputs, Output: output, Fn: fn}
}

// IsLeaf reports whether this neuron has an empty input signature.
func (n *Neuron) IsLeaf() bool { return len(n.Inputs) == 0 }

// signatureKey returns a comparable value identifying name+signature,
// used as the Neuron's hash contribution and in String(). Two distinct
// Neuron pointers may share a key (allowed — Connection equality keys off
// the pointer, not this key).
func (n *Neuron) signatureKey() string {
	s := n.Name + "("
	for i, t := range n.Inputs {
		if i > 0 {
			s += ","
		}
		s += t.Name
	}
	return s + ")->" + n.Output.Name
}

func (n *Neuron) String() string {
	return fmt.Sprintf("%s: %s", n.Name, n.signatureKey())
}

// dot emits the single "n<index> [label=...]" node fragment for this
// neuron, used by Connection.Dot (connection_dot.go) when rendering the
// operator node of an expression tree.
func (n *Neuron) dot(index int) string {
	return fmt.Sprintf("n%d [label=%q, shape=circle, style=filled];\n", index, n.Name)
}
