package synapse

import "testing"

func TestParamEnumeratorAdvancesOverCartesianProduct(t *testing.T) {
	pools := [][]Value{
		{NewScalar(TagInt, 1), NewScalar(TagInt, 2)},
		{NewScalar(TagInt, 10), NewScalar(TagInt, 20)},
	}
	pe := newParamEnumerator(pools)

	count := 0
	for {
		_, ok := pe.Advance()
		if !ok {
			break
		}
		count++
	}
	if count != 4 {
		t.Errorf("expected 4 tuples, got %d", count)
	}
	if !pe.Exhausted() {
		t.Error("expected the enumerator to report exhausted after draining all tuples")
	}
}

func TestParamEnumeratorReset(t *testing.T) {
	pools := [][]Value{{NewScalar(TagInt, 1), NewScalar(TagInt, 2)}}
	pe := newParamEnumerator(pools)
	pe.Advance()
	pe.Advance()
	if !pe.Exhausted() {
		t.Fatal("expected exhausted after draining a single-pool enumerator")
	}
	pe.Reset()
	if pe.Exhausted() {
		t.Error("expected Reset to make more tuples available")
	}
	tuple, ok := pe.Advance()
	if !ok || tuple[0].Scalar().(int) != 1 {
		t.Errorf("expected Reset to rewind to the first tuple, got %v, ok=%v", tuple, ok)
	}
}

func TestParamEnumeratorZeroPoolsYieldsOneEmptyTuple(t *testing.T) {
	pe := newParamEnumerator(nil)
	tuple, ok := pe.Advance()
	if !ok || len(tuple) != 0 {
		t.Errorf("expected a single empty tuple for zero pools, got %v, ok=%v", tuple, ok)
	}
	if _, ok := pe.Advance(); ok {
		t.Error("expected the zero-pool enumerator to be exhausted after one draw")
	}
}
