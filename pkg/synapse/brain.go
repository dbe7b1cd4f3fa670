package synapse

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	yaml "gopkg.in/yaml.v3"

	"github.com/go-synapse/synapse/internal/config"
	"github.com/go-synapse/synapse/internal/logx"
)

// Brain is the synthesis engine instance: a fixed neuron library plus a
// mutable memorised Connection pool. A Brain is safe for concurrent use;
// Learn may itself run many goroutines internally.
type Brain struct {
	ID     uuid.UUID
	neurons []*Neuron
	byName  map[string]*Neuron

	mu         sync.RWMutex
	memorized  []*Connection
}

// NewBrain constructs a Brain over a fixed neuron roster. Every malformed
// neuron — nil, or a duplicate of an already-seen name — is collected
// rather than rejecting on the first one found, since the JSON loader and
// the enumerator both key neurons by name and a caller fixing up a
// roster wants to see every offender in one pass. If any are found,
// construction fails with a *MultiError of *Error{Type: ErrConstruction}
// values.
func NewBrain(neurons []*Neuron) (*Brain, error) {
	byName := make(map[string]*Neuron, len(neurons))
	var merr MultiError
	for _, n := range neurons {
		if n == nil {
			merr.Append(NewConstructionError("", "brain: nil neuron in roster"))
			continue
		}
		if _, dup := byName[n.Name]; dup {
			merr.Append(NewConstructionError(n.Name, "brain: duplicate neuron name %q", n.Name))
			continue
		}
		byName[n.Name] = n
	}
	if merr.Count() > 0 {
		logx.WARN("brain: rejecting neuron roster: %s", merr.Error())
		return nil, &merr
	}
	return &Brain{
		ID:      uuid.New(),
		neurons: append([]*Neuron(nil), neurons...),
		byName:  byName,
	}, nil
}

// Neurons is a read-only accessor over the fixed roster.
func (b *Brain) Neurons() []*Neuron {
	return append([]*Neuron(nil), b.neurons...)
}

// Connections is a read-only accessor over the memorised pool.
func (b *Brain) Connections() []*Connection {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]*Connection(nil), b.memorized...)
}

// AddConnection inserts c into the memorised pool.
func (b *Brain) AddConnection(c *Connection) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.memorized = append(b.memorized, c)
}

// RemoveConnection removes the first memorised Connection structurally
// equal to c, reporting whether one was found.
func (b *Brain) RemoveConnection(c *Connection) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, existing := range b.memorized {
		if existing.Equal(c) {
			b.memorized = append(b.memorized[:i], b.memorized[i+1:]...)
			return true
		}
	}
	return false
}

// ClearConnections empties the memorised pool.
func (b *Brain) ClearConnections() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.memorized = nil
}

// Learn synthesizes, for each target Value, the best-matching Connection
// built from this Brain's neurons and memorised pool. It returns one
// result slot per target; a slot is nil when that target's frontier
// emptied out — that is a successful call, not an error. Learn's error
// return is reserved for construction/evaluation failures during
// enumeration or refinement itself, and for a cancelled or timed-out ctx.
//
// cfg is optional: a nil cfg uses config.DefaultConfig().
func (b *Brain) Learn(ctx context.Context, targets []Value, cfg *config.Config) ([]*Connection, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	b.mu.RLock()
	memorized := append([]*Connection(nil), b.memorized...)
	b.mu.RUnlock()

	result, err := Enumerate(b.neurons, memorized, cfg.Engine.Level)
	if err != nil {
		logx.WARN("brain %s: enumeration failed: %s", b.ID, err)
		return nil, err
	}

	out, err := Refine(ctx, result, targets, RefineConfig{
		Eps:        cfg.Engine.Eps,
		MaxWorkers: cfg.Engine.Concurrency.MaxWorkers,
	})
	if err != nil {
		logx.WARN("brain %s: refinement failed: %s", b.ID, err)
	}
	return out, err
}

// brainJSON is the wire shape of a Brain:
// { "neurons": [Neuron], "connections": [Connection] }.
type brainJSON struct {
	Neurons     []neuronJSON      `json:"neurons"`
	Connections []json.RawMessage `json:"connections"`
}

// ToJSON serialises the Brain's neuron roster and memorised pool.
func (b *Brain) ToJSON() ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	bj := brainJSON{
		Neurons:     make([]neuronJSON, len(b.neurons)),
		Connections: make([]json.RawMessage, len(b.memorized)),
	}
	for i, n := range b.neurons {
		bj.Neurons[i] = n.toJSON()
	}
	for i, c := range b.memorized {
		cj, err := c.toJSONValue()
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(cj)
		if err != nil {
			return nil, err
		}
		bj.Connections[i] = raw
	}
	return json.Marshal(bj)
}

// FromJSON replaces the memorised pool from data, validating every
// referenced neuron name against this Brain's existing roster: an
// unknown neuron name causes the load of that Connection to be rejected
// and the Brain to report failure. The neuron roster itself is never
// replaced by a load — only the memorised pool is. On any failure the
// memorised pool is left cleared.
func (b *Brain) FromJSON(data []byte) error {
	var bj brainJSON
	if err := json.Unmarshal(data, &bj); err != nil {
		b.ClearConnections()
		return NewSerializationError("invalid brain JSON: %s", err)
	}

	lookup := func(name string) (*Neuron, bool) {
		b.mu.RLock()
		defer b.mu.RUnlock()
		n, ok := b.byName[name]
		return n, ok
	}

	loaded := make([]*Connection, 0, len(bj.Connections))
	for _, raw := range bj.Connections {
		conn, err := connectionFromJSON(raw, lookup)
		if err != nil {
			b.ClearConnections()
			return err
		}
		loaded = append(loaded, conn)
	}

	b.mu.Lock()
	b.memorized = loaded
	b.mu.Unlock()
	return nil
}

// dumpView is the YAML projection emitted by Dump: a human-readable
// debug snapshot, not a round-trippable serialisation (ToJSON/FromJSON
// cover that contract).
type dumpView struct {
	ID          string   `yaml:"id"`
	Neurons     []string `yaml:"neurons"`
	Connections []string `yaml:"connections"`
}

// Dump renders a YAML debug snapshot of the Brain's roster and memorised
// pool.
func (b *Brain) Dump() (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	view := dumpView{
		ID:          b.ID.String(),
		Neurons:     make([]string, len(b.neurons)),
		Connections: make([]string, len(b.memorized)),
	}
	for i, n := range b.neurons {
		view.Neurons[i] = n.String()
	}
	for i, c := range b.memorized {
		view.Connections[i] = c.String()
	}
	out, err := yaml.Marshal(view)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
