/*
Package synapse is a typed program-synthesis engine: it searches
well-typed expression trees ("connections") built from named typed
operators ("neurons") to minimize a heuristic distance to one or more
target values.

# Quick Start

A Brain wraps a fixed neuron roster and a memorized connection pool:

	brain, err := synapse.NewBrain([]*synapse.Neuron{
	    synapse.NewNeuron("one", nil, synapse.TagInt, func(args []synapse.Value) (synapse.Value, error) {
	        return synapse.NewScalar(synapse.TagInt, 1), nil
	    }),
	    synapse.NewNeuron("add", []synapse.TypeTag{synapse.TagInt, synapse.TagInt}, synapse.TagInt, func(args []synapse.Value) (synapse.Value, error) {
	        return synapse.NewScalar(synapse.TagInt, args[0].Scalar().(int)+args[1].Scalar().(int)), nil
	    }),
	})
	if err != nil {
	    log.Fatal(err)
	}

	target := synapse.NewScalar(synapse.TagInt, 2)
	results, err := brain.Learn(context.Background(), []synapse.Value{target}, nil)

# Values and Neurons

A Value is one of a concrete scalar/container, a type placeholder (an
unfilled hole), or a nested Connection. A Neuron is an immutable named
pure function from a fixed input-tag signature to an output tag.

# Enumeration and Refinement

Enumerate builds a deduplicated, cost-sorted set of well-typed expression
skeletons up to a given depth. Refine fills each skeleton's remaining
placeholders from a per-tag leaf parameter pool, running one goroutine
per target and converging each target's search frontier independently.
*/
package synapse
