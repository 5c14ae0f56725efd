package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lingrad/core"
	"github.com/YuminosukeSato/lingrad/pkg/errors"
)

var _ core.Model = (*SGDRegressor)(nil)

func TestSGDRegressor_FitPredict(t *testing.T) {
	// y = 2x + 1
	X := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
	y := mat.NewDense(5, 1, []float64{3, 5, 7, 9, 11})

	reg := NewSGDRegressor(
		WithSGDLearningRate(0.02),
		WithSGDIterationLimit(20000),
		WithSGDTol(1e-10),
	)
	require.NoError(t, reg.Fit(X, y))

	assert.InDelta(t, 2.0, reg.Coef_.At(0, 0), 0.05)
	assert.InDelta(t, 1.0, reg.Intercept_, 0.15)

	pred, err := reg.Predict(mat.NewDense(2, 1, []float64{6, 7}))
	require.NoError(t, err)
	assert.InDelta(t, 13.0, pred.At(0, 0), 0.3)
	assert.InDelta(t, 15.0, pred.At(1, 0), 0.3)

	score, err := reg.Score(X, y)
	require.NoError(t, err)
	assert.Greater(t, score, 0.99)
}

func TestSGDRegressor_WithoutIntercept(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})

	reg := NewSGDRegressor(
		WithSGDFitIntercept(false),
		WithSGDLearningRate(0.05),
		WithSGDIterationLimit(5000),
	)
	require.NoError(t, reg.Fit(X, y))

	assert.InDelta(t, 2.0, reg.Coef_.At(0, 0), 1e-3)
	assert.Zero(t, reg.Intercept_)
}

func TestSGDRegressor_ZeroInterceptScale(t *testing.T) {
	// Scale 0 disables the intercept column even with fitIntercept set, so no
	// intercept row exists in the learned coefficients.
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})

	reg := NewSGDRegressor(
		WithSGDInterceptScale(0),
		WithSGDLearningRate(0.05),
		WithSGDIterationLimit(5000),
	)
	require.NoError(t, reg.Fit(X, y))

	assert.Zero(t, reg.Intercept_)
	rows, _ := reg.Coef_.Dims()
	assert.Equal(t, 1, rows)
	assert.InDelta(t, 2.0, reg.Coef_.At(0, 0), 1e-3)
}

func TestSGDRegressor_MiniBatchReproducible(t *testing.T) {
	X := mat.NewDense(8, 1, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	y := mat.NewDense(8, 1, []float64{2, 4, 6, 8, 10, 12, 14, 16})

	fit := func() float64 {
		reg := NewSGDRegressor(
			WithSGDFitIntercept(false),
			WithSGDBatchSize(2),
			WithSGDLearningRate(0.01),
			WithSGDIterationLimit(500),
			WithSGDRandomState(42),
		)
		require.NoError(t, reg.Fit(X, y))
		return reg.Coef_.At(0, 0)
	}

	assert.Equal(t, fit(), fit(), "seeded runs must produce identical coefficients")
}

func TestSGDRegressor_LossHistory(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})

	reg := NewSGDRegressor(
		WithSGDFitIntercept(false),
		WithSGDLearningRate(0.05),
		WithSGDIterationLimit(100),
		WithSGDTol(0),
		WithSGDLossHistory(true),
	)
	require.NoError(t, reg.Fit(X, y))

	history := reg.LossHistory()
	require.Len(t, history, 100)
	assert.Less(t, history[len(history)-1], history[0], "loss must decrease")

	// Refitting without the flag clears the history.
	reg2 := NewSGDRegressor(WithSGDFitIntercept(false), WithSGDIterationLimit(10))
	require.NoError(t, reg2.Fit(X, y))
	assert.Empty(t, reg2.LossHistory())
}

func TestSGDRegressor_Validation(t *testing.T) {
	reg := NewSGDRegressor()

	_, err := reg.Predict(mat.NewDense(1, 1, nil))
	var nfErr *errors.NotFittedError
	assert.True(t, errors.As(err, &nfErr))

	err = reg.Fit(&mat.Dense{}, &mat.Dense{})
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	err = reg.Fit(mat.NewDense(3, 1, nil), mat.NewDense(2, 1, nil))
	assert.Error(t, err, "mismatched rows must fail")

	err = reg.Fit(mat.NewDense(3, 1, nil), mat.NewDense(3, 2, nil))
	assert.Error(t, err, "y must be a column vector")

	X := mat.NewDense(3, 2, []float64{1, 1, 2, 2, 3, 3})
	y := mat.NewDense(3, 1, []float64{1, 2, 3})
	require.NoError(t, reg.Fit(X, y))

	_, err = reg.Predict(mat.NewDense(3, 3, nil))
	assert.Error(t, err, "feature count mismatch must fail")
}

func TestSGDRegressor_ConvergenceWarning(t *testing.T) {
	var captured error
	errors.SetWarningHandler(func(w error) { captured = w })
	defer errors.SetWarningHandler(func(w error) {})

	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})

	reg := NewSGDRegressor(
		WithSGDFitIntercept(false),
		WithSGDIterationLimit(3),
		WithSGDTol(0),
	)
	require.NoError(t, reg.Fit(X, y))

	var warning *errors.ConvergenceWarning
	require.True(t, errors.As(captured, &warning))
	assert.Equal(t, "SGDRegressor", warning.Algorithm)
	assert.Equal(t, 3, warning.Iterations)
}
