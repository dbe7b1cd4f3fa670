package synapse

import "strings"

// Connection is a typed expression tree node: a Neuron plus a vector of
// child inputs, each child being a nested Connection, a constant Value,
// or a type placeholder.
//
// Connections are value-like: cloned freely, equal and hashed by
// structure (Clone, Equal, Hash). The tree exclusively owns its children;
// a Connection stored as a Value child is copied by Clone whenever a
// mutable copy is required (ApplyInputs mutates its receiver in place).
type Connection struct {
	Neuron   *Neuron
	Children []Value

	name   string
	source *Connection

	hash uint64
	cost int
}

// NewConnection constructs a Connection, enforcing its structural
// invariants:
//
//   - len(children) == len(neuron.Inputs)
//   - for each i, children[i] is either a placeholder equal to
//     neuron.Inputs[i], a Connection whose neuron's output tag equals
//     neuron.Inputs[i], or a concrete Value whose tag equals
//     neuron.Inputs[i].
//
// Violations are reported as a *Error{Type: ErrConstruction} rather than
// a panic.
func NewConnection(neuron *Neuron, children []Value) (*Connection, error) {
	if neuron == nil {
		return nil, NewConstructionError("", "neuron must not be nil")
	}
	if len(children) != len(neuron.Inputs) {
		return nil, NewConstructionError(neuron.Name, "expected %d children, got %d", len(neuron.Inputs), len(children))
	}
	for i, child := range children {
		want := neuron.Inputs[i]
		switch {
		case child.IsPlaceholder():
			if child.Placeholder() != want {
				return nil, NewConstructionError(neuron.Name, "child %d placeholder tag %s does not match input tag %s", i, child.Placeholder(), want)
			}
		case child.IsConnection():
			if child.ConnectionValue().Neuron.Output != want {
				return nil, NewConstructionError(neuron.Name, "child %d connection output tag %s does not match input tag %s", i, child.ConnectionValue().Neuron.Output, want)
			}
		default:
			if child.Tag() != want {
				return nil, NewConstructionError(neuron.Name, "child %d value tag %s does not match input tag %s", i, child.Tag(), want)
			}
		}
	}

	c := &Connection{Neuron: neuron, Children: append([]Value(nil), children...)}
	c.recompute()
	return c, nil
}

// mustConnection is a test/fixture helper that panics on construction
// error; production code should always handle NewConnection's error.
func mustConnection(neuron *Neuron, children []Value) *Connection {
	c, err := NewConnection(neuron, children)
	if err != nil {
		panic(err)
	}
	return c
}

// Cost is the number of edges in the subtree: a leaf Connection has cost 0.
func (c *Connection) Cost() int { return c.cost }

func (c *Connection) computeCost() int {
	total := 0
	for _, child := range c.Children {
		total++
		if child.IsConnection() {
			total += child.ConnectionValue().Cost()
		}
	}
	return total
}

// Depth is the max recursion depth over Connection children, 0 for a leaf.
func (c *Connection) Depth() int {
	d := 0
	for _, child := range c.Children {
		if child.IsConnection() {
			if cd := 1 + child.ConnectionValue().Depth(); cd > d {
				d = cd
			}
		}
	}
	return d
}

// InputTypes is the flat left-to-right sequence of leaf placeholder/value
// tags obtained by descending the tree.
func (c *Connection) InputTypes() []TypeTag {
	var types []TypeTag
	for _, child := range c.Children {
		switch {
		case child.IsConnection():
			nested := child.ConnectionValue()
			if holes := nested.InputTypes(); len(holes) > 0 {
				types = append(types, holes...)
			} else {
				types = append(types, nested.Neuron.Output)
			}
		case child.IsPlaceholder():
			types = append(types, child.Placeholder())
		default:
			types = append(types, child.Tag())
		}
	}
	return types
}

// LeafInputs is the flat sequence of actual leaf Values analogous to
// InputTypes, used by String() to render named connections: a Connection
// child with holes is descended into, and a hole-free Connection child
// contributes its evaluated output (or itself, if evaluation fails).
func (c *Connection) LeafInputs() []Value {
	var leaves []Value
	for _, child := range c.Children {
		if child.IsConnection() {
			nested := child.ConnectionValue()
			if len(nested.InputTypes()) > 0 {
				leaves = append(leaves, nested.LeafInputs()...)
			} else if out, err := nested.Output(); err == nil {
				leaves = append(leaves, out)
			} else {
				leaves = append(leaves, child)
			}
		} else {
			leaves = append(leaves, child)
		}
	}
	return leaves
}

// ApplyInputs substitutes, left-to-right, the next entry of flatValues
// into every placeholder, descending into Connection children; each
// Connection child consumes exactly its own InputTypes().size() entries.
// Concrete Value children are overwritten outright (this is how the
// engine replaces a placeholder-filled skeleton with constants).
//
// len(flatValues) must equal len(c.InputTypes()); callers that violate
// this receive a *Error{Type: ErrConstruction}.
func (c *Connection) ApplyInputs(flatValues []Value) error {
	want := c.InputTypes()
	if len(flatValues) != len(want) {
		return NewConstructionError(c.Neuron.Name, "applyInputs: expected %d values, got %d", len(want), len(flatValues))
	}

	index := 0
	for i, child := range c.Children {
		switch {
		case child.IsConnection():
			nested := child.ConnectionValue()
			holes := nested.InputTypes()
			if len(holes) > 0 {
				if err := nested.ApplyInputs(flatValues[index : index+len(holes)]); err != nil {
					return err
				}
				index += len(holes)
			} else {
				// A placeholder-free Connection child is itself a leaf
				// value to be replaced wholesale.
				c.Children[i] = flatValues[index]
				index++
			}
		case child.IsPlaceholder():
			next := flatValues[index]
			if next.EffectiveTag() != child.Placeholder() {
				return NewConstructionError(c.Neuron.Name, "applyInputs: value %d has tag %s, want %s", index, next.EffectiveTag(), child.Placeholder())
			}
			c.Children[i] = next
			index++
		default:
			if index < len(flatValues) {
				c.Children[i] = flatValues[index]
				index++
			}
		}
	}

	c.recompute()
	return nil
}

// recompute refreshes the cached cost and hash after construction or a
// mutation via ApplyInputs.
func (c *Connection) recompute() {
	c.cost = c.computeCost()
	c.hash = c.computeHash()
}

// Clone produces a deep, independently mutable copy: Connection-valued
// children are recursively cloned, since ApplyInputs mutates its receiver
// in place and the tree exclusively owns its children.
func (c *Connection) Clone() *Connection {
	clone := &Connection{
		Neuron:   c.Neuron,
		Children: make([]Value, len(c.Children)),
		name:     c.name,
		source:   c.source,
		hash:     c.hash,
		cost:     c.cost,
	}
	for i, child := range c.Children {
		clone.Children[i] = cloneValue(child)
	}
	return clone
}

// Output recursively evaluates the Connection: for each child, a nested
// Connection is recursively evaluated, a concrete Value passes through.
// Output is only defined once every placeholder has been resolved by
// ApplyInputs; a remaining placeholder is a programmer error reported as
// ErrConstruction rather than evaluated.
func (c *Connection) Output() (Value, error) {
	args := make([]Value, len(c.Children))
	for i, child := range c.Children {
		switch {
		case child.IsConnection():
			v, err := child.ConnectionValue().Output()
			if err != nil {
				return Value{}, err
			}
			args[i] = v
		case child.IsPlaceholder():
			return Value{}, NewConstructionError(c.Neuron.Name, "output: unresolved placeholder at position %d (tag %s)", i, child.Placeholder())
		default:
			args[i] = child
		}
	}

	out, err := c.Neuron.Fn(args)
	if err != nil {
		return Value{}, NewEvaluationError(c.Neuron.Name, err)
	}
	return out, nil
}

// Name returns the name assigned by SetName, or "" if none was set.
func (c *Connection) Name() string { return c.name }

// SetName attaches a human-readable name, changing String()'s rendering
// from the canonical expression() form to "name(leafInputs...)".
func (c *Connection) SetName(name string) { c.name = name }

// Source returns the provenance pointer set by SetSource, or c itself if
// none was set — a read-only snapshot of the pre-substitution Connection
// this candidate was derived from.
func (c *Connection) Source() *Connection {
	if c.source == nil {
		return c
	}
	return c.source
}

// SetSource stores a provenance back-reference. The reference is shared
// (not deep-cloned): it is read-only metadata whose lifetime is the
// longest holder.
func (c *Connection) SetSource(source *Connection) { c.source = source }

// Expression renders the canonical prefix textual form used for
// equality-up-to-structure debugging, independent of any assigned name.
func (c *Connection) Expression() string {
	if len(c.Children) == 0 {
		return c.Neuron.Name
	}
	args := make([]string, len(c.Children))
	for i, child := range c.Children {
		args[i] = valueExpression(child)
	}
	return c.Neuron.Name + "(" + strings.Join(args, ", ") + ")"
}

func valueExpression(v Value) string {
	switch {
	case v.IsConnection():
		return v.ConnectionValue().Expression()
	case v.IsPlaceholder():
		return v.Placeholder().Name
	default:
		return scalarToString(v)
	}
}

// String renders name(leafInputs...) when a name has been attached via
// SetName, otherwise the canonical Expression().
func (c *Connection) String() string {
	if c.name == "" {
		return c.Expression()
	}
	leaves := c.LeafInputs()
	args := make([]string, len(leaves))
	for i, v := range leaves {
		args[i] = valueExpression(v)
	}
	if len(args) == 0 {
		return c.name
	}
	return c.name + "(" + strings.Join(args, ", ") + ")"
}
