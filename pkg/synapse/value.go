package synapse

import "reflect"

// valueKind distinguishes the three admissible inhabitants of Value.
type valueKind int

const (
	kindScalar valueKind = iota
	kindPlaceholder
	kindConnection
)

// Value is the closed tagged union every Neuron consumes and produces.
// It is one of:
//
//   - a scalar or container of a registered TypeTag, carrying the actual
//     datum (kindScalar);
//   - a type placeholder whose datum is a TypeTag: "a hole that must be
//     filled by a Value of that tag" (kindPlaceholder);
//   - a nested Connection: "a Value produced by evaluating this
//     subexpression" (kindConnection).
//
// Value is a small value type and is cheap to copy; the Connection it may
// point to is shared by reference (Connection itself is cloned explicitly
// with Connection.Clone when a mutable copy is required).
type Value struct {
	tag         TypeTag
	kind        valueKind
	scalar      interface{}
	placeholder TypeTag
	connection  *Connection
}

// NewScalar builds a concrete Value of the given tag carrying data.
func NewScalar(tag TypeTag, data interface{}) Value {
	return Value{tag: tag, kind: kindScalar, scalar: data}
}

// NewPlaceholder builds a hole that must be filled by a Value of tag t.
func NewPlaceholder(t TypeTag) Value {
	return Value{tag: TagTypeTag, kind: kindPlaceholder, placeholder: t}
}

// NewConnectionValue wraps a Connection as a Value; its tag is the
// Connection's neuron's output tag.
func NewConnectionValue(c *Connection) Value {
	return Value{tag: c.Neuron.Output, kind: kindConnection, connection: c}
}

// Tag returns the Value's type tag. For a placeholder this is always
// TagTypeTag; use Placeholder() to get the tag of the hole itself.
func (v Value) Tag() TypeTag { return v.tag }

func (v Value) IsScalar() bool     { return v.kind == kindScalar }
func (v Value) IsPlaceholder() bool { return v.kind == kindPlaceholder }
func (v Value) IsConnection() bool { return v.kind == kindConnection }

// Scalar returns the carried datum. Panics if v is not a scalar; callers
// should check IsScalar first and cast against the known tag.
func (v Value) Scalar() interface{} {
	if v.kind != kindScalar {
		panic("synapse: Scalar called on non-scalar Value")
	}
	return v.scalar
}

// Placeholder returns the tag of the hole. Panics if v is not a placeholder.
func (v Value) Placeholder() TypeTag {
	if v.kind != kindPlaceholder {
		panic("synapse: Placeholder called on non-placeholder Value")
	}
	return v.placeholder
}

// ConnectionValue returns the nested Connection. Panics if v does not hold one.
func (v Value) ConnectionValue() *Connection {
	if v.kind != kindConnection {
		panic("synapse: ConnectionValue called on non-connection Value")
	}
	return v.connection
}

// EffectiveTag is the tag a placeholder-free reading of v would carry: for
// a placeholder this is the hole's tag (there is no datum yet), otherwise
// it is Tag().
func (v Value) EffectiveTag() TypeTag {
	if v.kind == kindPlaceholder {
		return v.placeholder
	}
	return v.tag
}

// valueEqual implements Value's equality relation: scalar and string
// values compare by value, placeholders compare by tag, nested
// Connections compare by recursive Connection equality.
func valueEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case kindPlaceholder:
		return a.placeholder == b.placeholder
	case kindConnection:
		return a.connection.Equal(b.connection)
	default:
		return reflect.DeepEqual(a.scalar, b.scalar)
	}
}

// cloneValue produces a Value safe to mutate independently of v: scalar
// and placeholder Values are copied as-is (their payloads are immutable
// from the engine's perspective), a connection-valued child is deep
// cloned since Connection.ApplyInputs mutates its receiver in place.
func cloneValue(v Value) Value {
	if v.kind == kindConnection {
		return NewConnectionValue(v.connection.Clone())
	}
	return v
}
