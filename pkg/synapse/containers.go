package synapse

import "math"

// Container value shapes for the closed TypeTag set. These are the
// Go-native representations carried inside a scalar Value's datum; the
// grid/array primitive library itself is out of scope, but the engine's
// heuristic and JSON codec need concrete types to operate on.

// Grid is a 2-D integer matrix (TagGrid).
type Grid [][]int

// IntPair is a single (row, col) grid location (TagIntPair).
type IntPair struct {
	X, Y int
}

// Region is a connected set of same-valued grid locations (TagRegion).
type Region []IntPair

// GridPair pairs a training input grid with its corresponding output grid
// (TagGridPairVector's element type).
type GridPair struct {
	Input, Output Grid
}

// PointPair pairs two grid locations, used by region-pairing primitives
// (TagPairOfPointsVector's element type).
type PointPair struct {
	A, B IntPair
}

// PairedRegion pairs two regions together (TagPairedRegionVector's
// element type).
type PairedRegion struct {
	A, B Region
}

func sumGrid(g Grid) int {
	s := 0
	for _, row := range g {
		for _, v := range row {
			s += v
		}
	}
	return s
}

func gridShapeEqual(a, b Grid) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
	}
	return true
}

// frobenius computes the Frobenius norm of the element-wise difference
// of two same-shape grids.
func frobenius(a, b Grid) float64 {
	sum := 0.0
	for i := range a {
		for j := range a[i] {
			d := float64(a[i][j] - b[i][j])
			sum += d * d
		}
	}
	return math.Sqrt(sum)
}
