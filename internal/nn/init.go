package nn

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Initializer produces the initial weight matrix for a dense layer with
// the given fan-in and fan-out. Biases are always initialized to zero and
// are not part of the policy.
type Initializer func(fanIn, fanOut int) *mat.Dense

// XavierUniform returns an Initializer drawing weights from the
// Xavier/Glorot uniform distribution:
//
//	U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut)))
//
// This initialization helps maintain variance of activations across
// layers. A nil src draws from the package-level random source.
func XavierUniform(src rand.Source) Initializer {
	return func(fanIn, fanOut int) *mat.Dense {
		bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
		dist := distuv.Uniform{
			Min: -bound,
			Max: bound,
			Src: src,
		}
		data := make([]float64, fanIn*fanOut)
		for i := range data {
			data[i] = dist.Rand()
		}
		return mat.NewDense(fanIn, fanOut, data)
	}
}

// zeroBias allocates a zero-valued bias vector of the given width.
func zeroBias(width int) *mat.VecDense {
	return mat.NewVecDense(width, nil)
}
