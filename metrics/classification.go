package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lingrad/pkg/errors"
)

// Accuracy computes the fraction of exactly matching predictions.
func Accuracy(yTrue, yPred mat.Matrix) (float64, error) {
	n, err := validatePair("Accuracy", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.At(i, 0) == yPred.At(i, 0) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// LogLoss computes the mean negative log-likelihood of one-hot labels under
// predicted probabilities. Both matrices are (n x classes); probabilities are
// clamped away from 0 and 1 before taking the logarithm.
func LogLoss(yTrue, probs mat.Matrix) (float64, error) {
	const eps = 1e-15

	rTrue, cTrue := yTrue.Dims()
	rProb, cProb := probs.Dims()
	if rTrue == 0 || cTrue == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "LogLoss")
	}
	if rTrue != rProb || cTrue != cProb {
		return 0, errors.NewDimensionError("LogLoss", rTrue, rProb, 0)
	}

	var sum float64
	for i := 0; i < rTrue; i++ {
		for j := 0; j < cTrue; j++ {
			y := yTrue.At(i, j)
			if y == 0 {
				continue
			}
			p := probs.At(i, j)
			if p < eps {
				p = eps
			} else if p > 1-eps {
				p = 1 - eps
			}
			sum -= y * math.Log(p)
		}
	}
	return sum / float64(rTrue), nil
}
