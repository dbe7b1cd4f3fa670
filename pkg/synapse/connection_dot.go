package synapse

import "fmt"

// Dot emits a graph-description fragment for this Connection: one node
// per neuron/value/tag, edges from each input into the neuron node, and a
// single edge from the neuron to its output node. The fragment is
// concatenable with a wrapping header/footer by the caller — this module
// does not itself render or persist a graph.
func (c *Connection) Dot(index int) (string, int) {
	s := c.Neuron.dot(index)
	nodeIndex := index
	index++

	for _, child := range c.Children {
		switch {
		case child.IsConnection():
			var frag string
			frag, index = child.ConnectionValue().Dot(index)
			s += fmt.Sprintf("n%d -> n%d;\n", index-1, nodeIndex)
			s += frag
		default:
			label := dotLabel(child)
			s += fmt.Sprintf("n%d [label=%q, shape=circle, style=filled];\n", index, label)
			s += fmt.Sprintf("n%d -> n%d;\n", index, nodeIndex)
			index++
		}
	}

	label := c.Neuron.Output.Name
	if out, err := c.Output(); err == nil {
		label = scalarToString(out)
	}
	s += fmt.Sprintf("n%d [label=%q, shape=circle, style=filled];\n", index, label)
	s += fmt.Sprintf("n%d -> n%d;\n", nodeIndex, index)
	index++

	return s, index
}

func dotLabel(v Value) string {
	if v.IsPlaceholder() {
		return v.Placeholder().Name
	}
	return scalarToString(v)
}
