package synapse

import "testing"

func TestNewScalarAndAccessors(t *testing.T) {
	v := NewScalar(TagInt, 5)
	if !v.IsScalar() {
		t.Error("expected IsScalar true")
	}
	if v.IsPlaceholder() || v.IsConnection() {
		t.Error("expected a scalar to not be a placeholder or connection")
	}
	if v.Tag() != TagInt {
		t.Errorf("expected tag int, got %v", v.Tag())
	}
	if v.Scalar().(int) != 5 {
		t.Errorf("expected scalar 5, got %v", v.Scalar())
	}
	if v.EffectiveTag() != TagInt {
		t.Errorf("expected effective tag int, got %v", v.EffectiveTag())
	}
}

func TestNewPlaceholder(t *testing.T) {
	v := NewPlaceholder(TagString)
	if !v.IsPlaceholder() {
		t.Error("expected IsPlaceholder true")
	}
	if v.Placeholder() != TagString {
		t.Errorf("expected hole tag string, got %v", v.Placeholder())
	}
	if v.EffectiveTag() != TagString {
		t.Errorf("expected effective tag to be the hole's tag, got %v", v.EffectiveTag())
	}
	if v.Tag() != TagTypeTag {
		t.Errorf("expected a placeholder's own Tag() to be type-tag, got %v", v.Tag())
	}
}

func TestValueEqual(t *testing.T) {
	a := NewScalar(TagInt, 3)
	b := NewScalar(TagInt, 3)
	c := NewScalar(TagInt, 4)
	if !valueEqual(a, b) {
		t.Error("expected equal scalars to compare equal")
	}
	if valueEqual(a, c) {
		t.Error("expected different scalars to compare unequal")
	}

	ph1 := NewPlaceholder(TagInt)
	ph2 := NewPlaceholder(TagInt)
	ph3 := NewPlaceholder(TagString)
	if !valueEqual(ph1, ph2) {
		t.Error("expected placeholders of equal tag to compare equal")
	}
	if valueEqual(ph1, ph3) {
		t.Error("expected placeholders of different tag to compare unequal")
	}

	if valueEqual(a, ph1) {
		t.Error("expected a scalar and a placeholder never to compare equal")
	}
}

func TestCloneValueDeepCopiesConnections(t *testing.T) {
	leaf := mustConnection(NewNeuron("one", nil, TagInt, func(args []Value) (Value, error) {
		return NewScalar(TagInt, 1), nil
	}), nil)
	v := NewConnectionValue(leaf)
	clone := cloneValue(v)

	if clone.ConnectionValue() == v.ConnectionValue() {
		t.Error("expected cloneValue to deep-copy the underlying Connection pointer")
	}
	if !clone.ConnectionValue().Equal(v.ConnectionValue()) {
		t.Error("expected the clone to remain structurally equal to the original")
	}
}

func TestCloneValuePassesThroughScalarsAndPlaceholders(t *testing.T) {
	scalar := NewScalar(TagInt, 9)
	if cloneValue(scalar) != scalar {
		t.Error("expected cloneValue to pass scalar Values through unchanged")
	}
	ph := NewPlaceholder(TagInt)
	if cloneValue(ph) != ph {
		t.Error("expected cloneValue to pass placeholder Values through unchanged")
	}
}
