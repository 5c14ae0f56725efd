// Package preprocessing provides input transformations applied before
// training, currently the intercept-column preprocessor.
package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lingrad/core/parallel"
	"github.com/YuminosukeSato/lingrad/pkg/errors"
)

// parallelThreshold is the row count above which the copy loop is chunked
// across cores.
const parallelThreshold = 1000

// AddIntercept returns a copy of X with a constant column of the given scale
// appended as the last feature column, so an intercept term can be learned as
// an ordinary coefficient. A scale of 0 disables the intercept and returns X
// unchanged.
//
// Note the appended column participates in regularization like any other
// feature; callers that want an unregularized intercept train with lambda 0
// or keep the scale at 0 and fit the offset themselves.
func AddIntercept(X mat.Matrix, scale float64) (mat.Matrix, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "AddIntercept")
	}
	if scale == 0 {
		return X, nil
	}

	out := mat.NewDense(r, c+1, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < c; j++ {
				out.Set(i, j, X.At(i, j))
			}
			out.Set(i, c, scale)
		}
	})
	return out, nil
}
