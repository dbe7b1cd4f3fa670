package synapse

import "sort"

// TypeTag is the primitive typing relation: a stable identifier for each
// runtime-distinguishable shape of Value. Tag equality is the engine's
// only notion of type compatibility between a Neuron's declared signature
// and the Values fed into it.
//
// The set is open: an embedder may register additional tags beyond the
// closed set used by the default primitive set (see NewTypeTag). The
// engine treats tags opaquely except that it must totally order them for
// use as map keys and for deterministic output, which the Name field's
// lexicographic order provides.
type TypeTag struct {
	Name string
}

// NewTypeTag constructs a TypeTag with the given stable name. Two tags
// with the same name are the same tag.
func NewTypeTag(name string) TypeTag {
	return TypeTag{Name: name}
}

func (t TypeTag) String() string { return t.Name }

// Less gives TypeTag a total order, used by sortTags when a deterministic
// ordering of tags is required.
func (t TypeTag) Less(other TypeTag) bool { return t.Name < other.Name }

// The closed set of tags used by the default primitive set. An embedder's
// own primitive library is free to register further tags with NewTypeTag;
// the engine never special-cases these names beyond using them as map
// keys.
var (
	TagBool                     = NewTypeTag("bool")
	TagChar                     = NewTypeTag("char")
	TagInt                      = NewTypeTag("int")
	TagLong                     = NewTypeTag("long")
	TagFloat                    = NewTypeTag("float")
	TagDouble                   = NewTypeTag("double")
	TagString                   = NewTypeTag("string")
	TagGrid                     = NewTypeTag("grid")
	TagGridVector               = NewTypeTag("grid-vector")
	TagGridPairVector           = NewTypeTag("grid-pair-vector")
	TagIntPair                  = NewTypeTag("int-pair")
	TagIntPairVector            = NewTypeTag("int-pair-vector")
	TagRegion                   = NewTypeTag("region")
	TagRegionVector             = NewTypeTag("region-vector")
	TagRegionVectorVector       = NewTypeTag("region-vector-vector")
	TagPairOfPointsVector       = NewTypeTag("pair-of-points-vector")
	TagPairOfPointsVectorVector = NewTypeTag("pair-of-points-vector-vector")
	TagPairedRegionVector       = NewTypeTag("paired-region-vector")
	TagIntToIntMap              = NewTypeTag("int-to-int-map")
	TagTypeTag                  = NewTypeTag("type-tag")
)

// numericTags is consulted by the heuristic's numeric-vs-numeric dispatch
// (heuristic.go) to decide whether two tags are both "numeric".
var numericTags = map[TypeTag]bool{
	TagInt:    true,
	TagLong:   true,
	TagFloat:  true,
	TagDouble: true,
}

func isNumericTag(t TypeTag) bool { return numericTags[t] }

// sortTags returns a stable, deterministic ordering of tags for output
// that must not depend on Go's randomized map iteration order.
func sortTags(tags []TypeTag) []TypeTag {
	out := make([]TypeTag, len(tags))
	copy(out, tags)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
