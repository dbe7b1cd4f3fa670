package synapse

import "sort"

// EnumerationResult is the output of Enumerate: a deduplicated,
// cost-sorted set of candidate skeletons plus the per-tag leaf parameter
// pools gathered while partitioning the neuron roster, which the
// refinement engine (refine.go) reuses to fill each skeleton's remaining
// placeholders.
type EnumerationResult struct {
	Skeletons  []*Connection
	Parameters map[TypeTag][]*Connection
}

// Enumerate produces the set of well-typed expression skeletons up to
// depth level by iterated substitution of type placeholders with
// previously produced skeletons of matching output type.
//
// memorized Connections with no remaining holes are folded into the leaf
// parameter pools; memorized Connections that still have holes enter the
// working skeleton set alongside the operator-neuron skeletons.
func Enumerate(neurons []*Neuron, memorized []*Connection, level int) (EnumerationResult, error) {
	parameters := make(map[TypeTag][]*Connection)
	working := newConnSet()

	// Step 1: partition neurons into leaves and operators; seed
	// parameters[T] with one leaf Connection per leaf neuron of output T.
	for _, n := range neurons {
		if n.IsLeaf() {
			leaf, err := NewConnection(n, nil)
			if err != nil {
				return EnumerationResult{}, err
			}
			parameters[n.Output] = append(parameters[n.Output], leaf)
			continue
		}
		children := make([]Value, len(n.Inputs))
		for i, t := range n.Inputs {
			children[i] = NewPlaceholder(t)
		}
		skeleton, err := NewConnection(n, children)
		if err != nil {
			return EnumerationResult{}, err
		}
		working.add(skeleton)
	}

	// Merge memorized connections: those with empty InputTypes are fully
	// resolved and act as extra leaf parameters; the rest are additional
	// skeletons to extend.
	for _, m := range memorized {
		if len(m.InputTypes()) == 0 {
			parameters[m.Neuron.Output] = append(parameters[m.Neuron.Output], m)
		} else {
			working.add(m)
		}
	}

	// Step 3: repeat `level` times, accumulating per-output-tag pools of
	// previously produced skeletons.
	accumulated := make(map[TypeTag][]*Connection)
	for round := 0; round < level; round++ {
		mapping := make(map[TypeTag]*connSet)
		for tag, conns := range accumulated {
			s := newConnSet()
			s.addAll(conns)
			mapping[tag] = s
		}

		for _, skeleton := range working.slice() {
			holes := skeleton.InputTypes()
			if len(holes) == 0 {
				continue
			}

			pools := make([][]Value, len(holes))
			for i, hole := range holes {
				pool := []Value{NewPlaceholder(hole)}
				for _, prior := range accumulated[hole] {
					pool = append(pool, NewConnectionValue(prior))
				}
				pools[i] = pool
			}

			dst, ok := mapping[skeleton.Neuron.Output]
			if !ok {
				dst = newConnSet()
				mapping[skeleton.Neuron.Output] = dst
			}

			for _, combo := range cartesianProduct(pools) {
				candidate := skeleton.Clone()
				if err := candidate.ApplyInputs(combo); err != nil {
					return EnumerationResult{}, err
				}
				dst.add(candidate)
			}
		}

		accumulated = make(map[TypeTag][]*Connection, len(mapping))
		for tag, s := range mapping {
			accumulated[tag] = s.slice()
		}

		working = newConnSet()
		for _, conns := range accumulated {
			working.addAll(conns)
		}
	}

	// Step 4: re-inject leaf Connections so they are present in the
	// returned set too.
	for _, n := range neurons {
		if n.IsLeaf() {
			leaf, err := NewConnection(n, nil)
			if err != nil {
				return EnumerationResult{}, err
			}
			working.add(leaf)
		}
	}

	skeletons := working.slice()
	sort.SliceStable(skeletons, func(i, j int) bool { return skeletons[i].Cost() < skeletons[j].Cost() })

	return EnumerationResult{Skeletons: skeletons, Parameters: parameters}, nil
}

// cartesianProduct enumerates the Cartesian product of pools, each an
// ordered slice of candidate Values for one hole position.
func cartesianProduct(pools [][]Value) [][]Value {
	if len(pools) == 0 {
		return [][]Value{{}}
	}
	result := [][]Value{{}}
	for _, pool := range pools {
		if len(pool) == 0 {
			return nil
		}
		next := make([][]Value, 0, len(result)*len(pool))
		for _, prefix := range result {
			for _, v := range pool {
				combo := make([]Value, len(prefix)+1)
				copy(combo, prefix)
				combo[len(prefix)] = v
				next = append(next, combo)
			}
		}
		result = next
	}
	return result
}
