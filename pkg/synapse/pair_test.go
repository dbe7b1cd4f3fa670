package synapse

import "testing"

func TestFrontierOrderedSortsByHeuristicThenCost(t *testing.T) {
	f := newFrontier()
	f.set(Pair{CostH: 5, CostStruct: 1, SkeletonID: 1})
	f.set(Pair{CostH: 1, CostStruct: 9, SkeletonID: 2})
	f.set(Pair{CostH: 1, CostStruct: 2, SkeletonID: 3})

	ordered := f.Ordered()
	if len(ordered) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(ordered))
	}
	if ordered[0].SkeletonID != 3 {
		t.Errorf("expected the lowest (costH, costStruct) pair first, got skeleton %d", ordered[0].SkeletonID)
	}
	if ordered[1].SkeletonID != 2 {
		t.Errorf("expected skeleton 2 second, got %d", ordered[1].SkeletonID)
	}
	if ordered[2].SkeletonID != 1 {
		t.Errorf("expected skeleton 1 last, got %d", ordered[2].SkeletonID)
	}
}

func TestFrontierBest(t *testing.T) {
	f := newFrontier()
	if _, ok := f.Best(); ok {
		t.Error("expected Best to report false on an empty frontier")
	}
	f.set(Pair{CostH: 3, SkeletonID: 1})
	f.set(Pair{CostH: 1, SkeletonID: 2})
	best, ok := f.Best()
	if !ok || best.SkeletonID != 2 {
		t.Errorf("expected skeleton 2 to be best, got %v, ok=%v", best, ok)
	}
}

func TestFrontierEqualAsMultiset(t *testing.T) {
	leaf := mustConnection(constNeuron("one", 1), nil)

	a := newFrontier()
	a.set(Pair{CostH: 1, CostStruct: 0, SkeletonID: 1, Filled: leaf})
	b := newFrontier()
	b.set(Pair{CostH: 1, CostStruct: 0, SkeletonID: 1, Filled: leaf})

	if !a.equalAsMultiset(b) {
		t.Error("expected two frontiers with identical entries to compare equal")
	}

	b.set(Pair{CostH: 2, CostStruct: 0, SkeletonID: 1, Filled: leaf})
	if a.equalAsMultiset(b) {
		t.Error("expected frontiers with a changed CostH to compare unequal")
	}
}

func TestFrontierEqualAsMultisetDifferentSizes(t *testing.T) {
	a := newFrontier()
	a.set(Pair{CostH: 1, SkeletonID: 1})
	b := newFrontier()
	if a.equalAsMultiset(b) {
		t.Error("expected frontiers of different sizes to compare unequal")
	}
}
