// Package fixtures provides a small, fixed neuron roster for embedders:
// decimal digit leaves, integer addition and multiplication, and an
// int-to-string coercion. No package in this module imports it; the
// engine's own tests define equivalent helpers inside package synapse.
package fixtures

import (
	"strconv"

	"github.com/go-synapse/synapse/pkg/synapse"
)

// Digits returns leaf neurons "0".."9", each a zero-argument Neuron
// producing the corresponding TagInt constant.
func Digits() []*synapse.Neuron {
	neurons := make([]*synapse.Neuron, 0, 10)
	for i := 0; i < 10; i++ {
		i := i
		name := digitName(i)
		neurons = append(neurons, synapse.NewNeuron(name, nil, synapse.TagInt, func(args []synapse.Value) (synapse.Value, error) {
			return synapse.NewScalar(synapse.TagInt, i), nil
		}))
	}
	return neurons
}

func digitName(i int) string {
	return string(rune('0' + i))
}

// Add is int(int,int)->int addition.
func Add() *synapse.Neuron {
	return synapse.NewNeuron("add", []synapse.TypeTag{synapse.TagInt, synapse.TagInt}, synapse.TagInt, func(args []synapse.Value) (synapse.Value, error) {
		a := args[0].Scalar().(int)
		b := args[1].Scalar().(int)
		return synapse.NewScalar(synapse.TagInt, a+b), nil
	})
}

// Mul is int(int,int)->int multiplication.
func Mul() *synapse.Neuron {
	return synapse.NewNeuron("mul", []synapse.TypeTag{synapse.TagInt, synapse.TagInt}, synapse.TagInt, func(args []synapse.Value) (synapse.Value, error) {
		a := args[0].Scalar().(int)
		b := args[1].Scalar().(int)
		return synapse.NewScalar(synapse.TagInt, a*b), nil
	})
}

// IntToStr coerces an int to its decimal string representation.
func IntToStr() *synapse.Neuron {
	return synapse.NewNeuron("intToStr", []synapse.TypeTag{synapse.TagInt}, synapse.TagString, func(args []synapse.Value) (synapse.Value, error) {
		n := args[0].Scalar().(int)
		return synapse.NewScalar(synapse.TagString, strconv.Itoa(n)), nil
	})
}

// Arithmetic returns the digits plus Add and Mul.
func Arithmetic() []*synapse.Neuron {
	return append(Digits(), Add(), Mul())
}

// ArithmeticWithStr additionally includes IntToStr.
func ArithmeticWithStr() []*synapse.Neuron {
	return append(Arithmetic(), IntToStr())
}
