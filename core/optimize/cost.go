package optimize

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CostFunction computes the scalar cost and the gradient of the objective for
// a batch of observations under the current coefficients. Implementations
// must be stateless: the optimizers call them with arbitrary batches in
// arbitrary order.
//
// Shape contract: points is (n x features), coefficients is
// (features x outputs), labels is (n x outputs); Gradient returns
// (features x outputs).
type CostFunction interface {
	Cost(points, coefficients, labels mat.Matrix) float64
	Gradient(points, coefficients, labels mat.Matrix) *mat.Dense
}

// SquaredLoss is the regression cost: mean squared residual of
// points*coefficients against labels. Minimize it.
type SquaredLoss struct{}

// Cost returns the mean of the squared residuals over all matrix entries.
func (SquaredLoss) Cost(points, coefficients, labels mat.Matrix) float64 {
	n, _ := points.Dims()

	var residual mat.Dense
	residual.Mul(points, coefficients)
	residual.Sub(&residual, labels)

	r, c := residual.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := residual.At(i, j)
			sum += v * v
		}
	}
	return sum / float64(n)
}

// Gradient returns (2/n) * points^T * (points*coefficients - labels).
// The scale matches the subtractive update rule of the gradient optimizer.
func (SquaredLoss) Gradient(points, coefficients, labels mat.Matrix) *mat.Dense {
	n, _ := points.Dims()

	var residual mat.Dense
	residual.Mul(points, coefficients)
	residual.Sub(&residual, labels)

	grad := &mat.Dense{}
	grad.Mul(points.T(), &residual)
	grad.Scale(2.0/float64(n), grad)
	return grad
}

// LogLikelihood is the classification cost: mean log-likelihood of the labels
// under the probabilities produced by the link function. It is a quantity to
// maximize; callers pass WithMaximization to FindExtrema. The gradient has
// the same (features x outputs) shape as SquaredLoss, so the optimizer loop
// does not care which link is plugged in.
type LogLikelihood struct {
	Link LinkFunction
}

// epsilon guards the logarithm against probabilities rounded to 0 or 1.
const logLikelihoodEpsilon = 1e-15

// Cost returns (1/n) * sum over entries of labels * log(probabilities).
func (l LogLikelihood) Cost(points, coefficients, labels mat.Matrix) float64 {
	n, _ := points.Dims()

	var linear mat.Dense
	linear.Mul(points, coefficients)
	probs := l.Link.Apply(&linear)

	r, c := probs.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			y := labels.At(i, j)
			if y == 0 && c > 1 {
				// One-hot rows contribute only through their hot column.
				continue
			}
			p := probs.At(i, j)
			if p < logLikelihoodEpsilon {
				p = logLikelihoodEpsilon
			} else if p > 1-logLikelihoodEpsilon {
				p = 1 - logLikelihoodEpsilon
			}
			if c == 1 {
				// Binary case: a single column carries both outcomes.
				sum += y*math.Log(p) + (1-y)*math.Log(1-p)
			} else {
				sum += y * math.Log(p)
			}
		}
	}
	return sum / float64(n)
}

// Gradient returns (1/n) * points^T * (labels - link(points*coefficients)),
// the ascent direction of the log-likelihood.
func (l LogLikelihood) Gradient(points, coefficients, labels mat.Matrix) *mat.Dense {
	n, _ := points.Dims()

	var linear mat.Dense
	linear.Mul(points, coefficients)
	probs := l.Link.Apply(&linear)

	var diff mat.Dense
	diff.Sub(labels, probs)

	grad := &mat.Dense{}
	grad.Mul(points.T(), &diff)
	grad.Scale(1.0/float64(n), grad)
	return grad
}
