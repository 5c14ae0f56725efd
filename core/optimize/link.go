package optimize

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// LinkFunction maps a linear combination matrix (observations x outputs) to
// predicted probabilities of the same shape. Classification cost functions
// are parameterized by a link so the optimizer loop stays link-agnostic.
type LinkFunction interface {
	Apply(linear mat.Matrix) *mat.Dense
}

// Logistic is the elementwise sigmoid link used for binary classification.
type Logistic struct{}

// Apply returns sigmoid(z) for every element of linear.
func (Logistic) Apply(linear mat.Matrix) *mat.Dense {
	r, c := linear.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, sigmoid(linear.At(i, j)))
		}
	}
	return out
}

// Softmax is the row-wise softmax link used for multiclass classification
// over one-hot label matrices.
type Softmax struct{}

// Apply normalizes each row of linear into a probability distribution.
// The row maximum is subtracted before exponentiation for stability.
func (Softmax) Apply(linear mat.Matrix) *mat.Dense {
	r, c := linear.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		maxScore := linear.At(i, 0)
		for j := 1; j < c; j++ {
			if linear.At(i, j) > maxScore {
				maxScore = linear.At(i, j)
			}
		}

		sum := 0.0
		for j := 0; j < c; j++ {
			e := math.Exp(linear.At(i, j) - maxScore)
			out.Set(i, j, e)
			sum += e
		}
		for j := 0; j < c; j++ {
			out.Set(i, j, out.At(i, j)/sum)
		}
	}
	return out
}

// sigmoid computes the sigmoid function.
func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
