// Package metrics provides scoring functions for fitted models.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lingrad/pkg/errors"
)

// validatePair checks that yTrue and yPred are matching non-empty column
// vectors and returns the row count.
func validatePair(op string, yTrue, yPred mat.Matrix) (int, error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, op)
	}
	if rTrue != rPred || cTrue != cPred {
		return 0, errors.NewDimensionError(op, rTrue, rPred, 0)
	}
	if cTrue != 1 {
		return 0, errors.NewValueError(op, "must be a column vector (n x 1 matrix)")
	}
	return rTrue, nil
}

// MSE computes the mean squared error between true and predicted values.
func MSE(yTrue, yPred mat.Matrix) (float64, error) {
	n, err := validatePair("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.At(i, 0) - yPred.At(i, 0)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE computes the root mean squared error.
func RMSE(yTrue, yPred mat.Matrix) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error.
func MAE(yTrue, yPred mat.Matrix) (float64, error) {
	n, err := validatePair("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.At(i, 0) - yPred.At(i, 0))
	}
	return sum / float64(n), nil
}

// MAPE computes the mean absolute percentage error. Rows with a zero true
// value are rejected because the percentage is undefined there.
func MAPE(yTrue, yPred mat.Matrix) (float64, error) {
	n, err := validatePair("MAPE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		actual := yTrue.At(i, 0)
		if actual == 0 {
			return 0, errors.NewValueError("MAPE", "yTrue contains zero values")
		}
		sum += math.Abs((actual - yPred.At(i, 0)) / actual)
	}
	return sum / float64(n), nil
}

// R2Score computes the coefficient of determination.
func R2Score(yTrue, yPred mat.Matrix) (float64, error) {
	n, err := validatePair("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue.At(i, 0)
	}
	yMean /= float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		actual := yTrue.At(i, 0)
		predicted := yPred.At(i, 0)
		tss += (actual - yMean) * (actual - yMean)
		rss += (actual - predicted) * (actual - predicted)
	}

	if tss == 0 {
		return 0, errors.NewValueError("R2Score", "total sum of squares is zero")
	}
	return 1 - rss/tss, nil
}
