package synapse

import (
	"math"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// sentinelHeuristic is the dominant fallback cost for a mismatched tag
// or an unhandled combination. Its absolute value is not semantically
// significant provided it exceeds realistic matching costs accumulated
// within one synthesis call.
const sentinelHeuristic = 1000.0

// Heuristic computes h(value, target): a domain-sensitive, non-negative
// distance that is 0 for identical values and decreases monotonically as
// value approaches target.
func Heuristic(value, target Value) float64 {
	if value.IsPlaceholder() || target.IsPlaceholder() {
		return sentinelHeuristic
	}
	if value.IsConnection() {
		out, err := value.ConnectionValue().Output()
		if err != nil {
			return sentinelHeuristic
		}
		value = out
	}
	if target.IsConnection() {
		out, err := target.ConnectionValue().Output()
		if err != nil {
			return sentinelHeuristic
		}
		target = out
	}

	switch {
	case isNumericTag(target.Tag()):
		return numericHeuristic(value, target)
	case target.Tag() == TagString:
		return stringHeuristic(value, target)
	case target.Tag() == TagGrid:
		return gridHeuristic(value, target)
	case target.Tag() == TagGridVector:
		return gridVectorHeuristic(value, target)
	case target.Tag() == TagBool:
		if value.Tag() == TagBool && value.Scalar().(bool) == target.Scalar().(bool) {
			return 0
		}
		return sentinelHeuristic
	case target.Tag() == TagChar:
		if value.Tag() == TagChar && value.Scalar().(rune) == target.Scalar().(rune) {
			return 0
		}
		return sentinelHeuristic
	default:
		return sentinelHeuristic
	}
}

// numericConversionPenalty is absorbed into the cost whenever a numeric
// value's tag differs from the target's numeric tag.
const numericConversionPenalty = 2.0

func asFloat(v Value) (float64, bool) {
	switch x := v.Scalar().(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

func numericHeuristic(value, target Value) float64 {
	if !isNumericTag(value.Tag()) {
		return sentinelHeuristic
	}
	vf, ok1 := asFloat(value)
	tf, ok2 := asFloat(target)
	if !ok1 || !ok2 {
		return sentinelHeuristic
	}
	penalty := 0.0
	if value.Tag() != target.Tag() {
		penalty = numericConversionPenalty
	}
	return penalty + math.Abs(vf-tf)
}

func gridHeuristic(value, target Value) float64 {
	if value.Tag() != TagGrid {
		return sentinelHeuristic
	}
	a, b := value.Scalar().(Grid), target.Scalar().(Grid)
	if gridShapeEqual(a, b) {
		return frobenius(a, b)
	}
	return 100 + math.Abs(float64(sumGrid(a)-sumGrid(b)))
}

func gridVectorHeuristic(value, target Value) float64 {
	if value.Tag() != TagGridVector {
		return sentinelHeuristic
	}
	a, b := value.Scalar().([]Grid), target.Scalar().([]Grid)
	if len(a) != len(b) {
		return sentinelHeuristic
	}
	total := 0.0
	for i := range a {
		total += gridHeuristic(NewScalar(TagGrid, a[i]), NewScalar(TagGrid, b[i]))
	}
	return total
}

// stringConvertible reports whether v's scalar can be rendered as a
// string for the "value is not itself a string but is string-convertible"
// branch of the string heuristic.
func stringConvertible(v Value) (string, bool) {
	if v.Tag() == TagString {
		return v.Scalar().(string), true
	}
	switch v.Scalar().(type) {
	case bool, rune, int, int64, float32, float64:
		return scalarToString(v), true
	default:
		return "", false
	}
}

func stringHeuristic(value, target Value) float64 {
	s, ok := stringConvertible(value)
	if !ok {
		return sentinelHeuristic
	}
	t := target.Scalar().(string)

	penalty := 0.0
	if value.Tag() != TagString {
		penalty = 1
	}

	a, b := s, t
	if a != "" && strings.Contains(b, a) {
		// a is a substring of b: count occurrences so multi-occurrence
		// substrings score lower.
		count := strings.Count(b, a)
		return penalty + 1 - 1/float64(count) + 1/(1+float64(len(a))) - 1/(1+float64(len(b)))
	}
	if b != "" && strings.Contains(a, b) {
		count := strings.Count(a, b)
		return penalty + 1 - 1/float64(count) + 1/(1+float64(len(b))) - 1/(1+float64(len(a)))
	}

	dist := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	return penalty + float64(dist) + 1/(1+float64(len(a))) - 1/(1+float64(len(b)))
}
