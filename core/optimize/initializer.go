package optimize

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// CoefficientsInitializer produces the starting coefficient matrix when the
// caller supplies none.
type CoefficientsInitializer interface {
	Generate(rows, cols int) *mat.Dense
}

// ZeroInitializer starts every coefficient at zero.
type ZeroInitializer struct{}

// Generate returns a rows x cols zero matrix.
func (ZeroInitializer) Generate(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}

// RandomInitializer starts coefficients at small normally distributed values.
type RandomInitializer struct {
	rng   *rand.Rand
	scale float64
}

// NewRandomInitializer creates a RandomInitializer. A seed >= 0 makes the
// generated matrices reproducible.
func NewRandomInitializer(seed int64) *RandomInitializer {
	src := rand.NewSource(rand.Int63())
	if seed >= 0 {
		src = rand.NewSource(seed)
	}
	return &RandomInitializer{rng: rand.New(src), scale: 0.01}
}

// Generate returns a rows x cols matrix of N(0, scale) values.
func (r *RandomInitializer) Generate(rows, cols int) *mat.Dense {
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, r.rng.NormFloat64()*r.scale)
		}
	}
	return out
}
