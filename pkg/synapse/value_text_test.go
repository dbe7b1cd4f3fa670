package synapse

import "testing"

func TestScalarToStringRoundTripsThroughParseScalar(t *testing.T) {
	cases := []Value{
		NewScalar(TagBool, true),
		NewScalar(TagChar, 'x'),
		NewScalar(TagInt, 42),
		NewScalar(TagLong, int64(9000000000)),
		NewScalar(TagFloat, float32(1.5)),
		NewScalar(TagDouble, 2.25),
		NewScalar(TagString, "hello"),
	}
	for _, v := range cases {
		text := scalarToString(v)
		parsed, err := parseScalar(v.Tag(), text)
		if err != nil {
			t.Fatalf("parseScalar(%v, %q): %v", v.Tag(), text, err)
		}
		if parsed.Scalar() != v.Scalar() {
			t.Errorf("round trip mismatch for %v: got %v, want %v", v.Tag(), parsed.Scalar(), v.Scalar())
		}
	}
}

func TestParseScalarPlaceholderTag(t *testing.T) {
	v, err := parseScalar(TagTypeTag, "int")
	if err != nil {
		t.Fatalf("parseScalar: %v", err)
	}
	if !v.IsPlaceholder() || v.Placeholder() != TagInt {
		t.Errorf("expected a type-tag leaf to parse into a placeholder for int, got %v", v)
	}
}

func TestParseScalarUnknownTag(t *testing.T) {
	if _, err := parseScalar(NewTypeTag("nonsense"), "x"); err == nil {
		t.Error("expected an error for an unrecognised tag")
	}
}

func TestParseScalarInvalidBool(t *testing.T) {
	if _, err := parseScalar(TagBool, "not-a-bool"); err == nil {
		t.Error("expected an error for an invalid bool literal")
	}
}
