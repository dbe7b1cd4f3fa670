package synapse

import "encoding/json"

// JSON wire shapes:
//
//   Brain       { "neurons": [Neuron], "connections": [Connection] }
//   Neuron      { "name", "inputTypes": [tagName], "outputType": tagName }
//   Connection  { "name", "neuron": Neuron, "types": [tagName],
//                 "inputs": [string | Connection] }
//
// types[i] selects the leaf parse strategy when inputs[i] is a JSON
// string: the concrete tag name for a scalar leaf, or "type-tag" for a
// placeholder hole whose own value is the held tag's name. When
// inputs[i] is a JSON object it is a nested Connection and types[i] is
// its neuron's output tag.

type neuronJSON struct {
	Name       string   `json:"name"`
	InputTypes []string `json:"inputTypes"`
	OutputType string   `json:"outputType"`
}

func (n *Neuron) toJSON() neuronJSON {
	types := make([]string, len(n.Inputs))
	for i, t := range n.Inputs {
		types[i] = t.Name
	}
	return neuronJSON{Name: n.Name, InputTypes: types, OutputType: n.Output.Name}
}

type connectionJSON struct {
	Name   string            `json:"name"`
	Neuron neuronJSON        `json:"neuron"`
	Types  []string          `json:"types"`
	Inputs []json.RawMessage `json:"inputs"`
}

// ToJSON renders c into the wire shape described above.
func (c *Connection) ToJSON() ([]byte, error) {
	cj, err := c.toJSONValue()
	if err != nil {
		return nil, err
	}
	return json.Marshal(cj)
}

func (c *Connection) toJSONValue() (connectionJSON, error) {
	cj := connectionJSON{
		Name:   c.name,
		Neuron: c.Neuron.toJSON(),
		Types:  make([]string, len(c.Children)),
		Inputs: make([]json.RawMessage, len(c.Children)),
	}
	for i, child := range c.Children {
		switch {
		case child.IsConnection():
			nested, err := child.ConnectionValue().toJSONValue()
			if err != nil {
				return connectionJSON{}, err
			}
			cj.Types[i] = child.Tag().Name
			raw, err := json.Marshal(nested)
			if err != nil {
				return connectionJSON{}, err
			}
			cj.Inputs[i] = raw
		case child.IsPlaceholder():
			cj.Types[i] = TagTypeTag.Name
			raw, err := json.Marshal(child.Placeholder().Name)
			if err != nil {
				return connectionJSON{}, err
			}
			cj.Inputs[i] = raw
		default:
			cj.Types[i] = child.Tag().Name
			raw, err := json.Marshal(scalarToString(child))
			if err != nil {
				return connectionJSON{}, err
			}
			cj.Inputs[i] = raw
		}
	}
	return cj, nil
}

// connectionFromJSON parses raw into a Connection, resolving neuron
// references against lookup (the Brain's own neuron roster: a referenced
// neuron not found there rejects this Connection's load). An unknown tag
// name in types similarly rejects a leaf (string) entry; for a nested
// object entry types[i] is not consulted.
func connectionFromJSON(raw json.RawMessage, lookup func(name string) (*Neuron, bool)) (*Connection, error) {
	var cj connectionJSON
	if err := json.Unmarshal(raw, &cj); err != nil {
		return nil, NewSerializationError("invalid connection JSON: %s", err)
	}

	neuron, ok := lookup(cj.Neuron.Name)
	if !ok {
		return nil, NewSerializationError("neuron %q not found in brain", cj.Neuron.Name)
	}
	if len(cj.Types) != len(cj.Inputs) {
		return nil, NewSerializationError("connection %q: types/inputs length mismatch", cj.Neuron.Name)
	}

	children := make([]Value, len(cj.Inputs))
	for i, rawInput := range cj.Inputs {
		tag := NewTypeTag(cj.Types[i])

		// A leading '{' (after whitespace) means this entry is a nested
		// Connection object rather than a leaf string.
		if looksLikeObject(rawInput) {
			nested, err := connectionFromJSON(rawInput, lookup)
			if err != nil {
				return nil, err
			}
			children[i] = NewConnectionValue(nested)
			continue
		}

		var text string
		if err := json.Unmarshal(rawInput, &text); err != nil {
			return nil, NewSerializationError("connection %q input %d: %s", cj.Neuron.Name, i, err)
		}
		v, err := parseScalar(tag, text)
		if err != nil {
			return nil, err
		}
		children[i] = v
	}

	conn, err := NewConnection(neuron, children)
	if err != nil {
		return nil, err
	}
	conn.SetName(cj.Name)
	return conn, nil
}

func looksLikeObject(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}
