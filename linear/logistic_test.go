package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lingrad/core"
)

var _ core.Model = (*LogisticRegression)(nil)

func TestLogisticRegression_Binary(t *testing.T) {
	// Class 0 around (1, 1), class 1 around (3, 3).
	X := mat.NewDense(6, 2, []float64{
		0.5, 0.5,
		1.0, 1.5,
		1.5, 1.0,
		3.0, 2.5,
		2.5, 3.0,
		3.5, 3.5,
	})
	y := mat.NewDense(6, 1, []float64{0, 0, 0, 1, 1, 1})

	lr := NewLogisticRegression(
		WithLogisticIterationLimit(2000),
		WithLogisticLearningRate(0.5),
	)
	require.NoError(t, lr.Fit(X, y))
	assert.Equal(t, []int{0, 1}, lr.Classes_)

	predictions, err := lr.Predict(X)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		assert.Equal(t, y.At(i, 0), predictions.At(i, 0), "sample %d", i)
	}

	testPreds, err := lr.Predict(mat.NewDense(2, 2, []float64{
		1.0, 1.0,
		3.0, 3.0,
	}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, testPreds.At(0, 0))
	assert.Equal(t, 1.0, testPreds.At(1, 0))

	score, err := lr.Score(X, y)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestLogisticRegression_PredictProba(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{-2, -1, 1, 2})
	y := mat.NewDense(4, 1, []float64{0, 0, 1, 1})

	lr := NewLogisticRegression(
		WithLogisticIterationLimit(2000),
		WithLogisticLearningRate(0.5),
	)
	require.NoError(t, lr.Fit(X, y))

	probas, err := lr.PredictProba(X)
	require.NoError(t, err)

	r, c := probas.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 2, c)
	for i := 0; i < r; i++ {
		assert.InDelta(t, 1.0, probas.At(i, 0)+probas.At(i, 1), 1e-12)
	}

	// The negative side must favor class 0, the positive side class 1.
	assert.Greater(t, probas.At(0, 0), probas.At(0, 1))
	assert.Greater(t, probas.At(3, 1), probas.At(3, 0))
}

func TestLogisticRegression_ZeroInterceptScale(t *testing.T) {
	// Scale 0 disables the intercept column, so the coefficient matrix has one
	// row per feature and nothing more. The symmetric fixture still separates.
	X := mat.NewDense(4, 1, []float64{-2, -1, 1, 2})
	y := mat.NewDense(4, 1, []float64{0, 0, 1, 1})

	lr := NewLogisticRegression(
		WithLogisticInterceptScale(0),
		WithLogisticIterationLimit(1000),
		WithLogisticLearningRate(0.5),
	)
	require.NoError(t, lr.Fit(X, y))

	rows, cols := lr.Coef_.Dims()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 1, cols)

	score, err := lr.Score(X, y)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestLogisticRegression_Multiclass(t *testing.T) {
	// Three well-separated clusters, labels deliberately non-contiguous.
	X := mat.NewDense(9, 2, []float64{
		0, 0,
		0.5, 0,
		0, 0.5,
		5, 5,
		5.5, 5,
		5, 5.5,
		-5, 5,
		-5.5, 5,
		-5, 5.5,
	})
	y := mat.NewDense(9, 1, []float64{2, 2, 2, 5, 5, 5, 9, 9, 9})

	lr := NewLogisticRegression(
		WithLogisticIterationLimit(3000),
		WithLogisticLearningRate(0.1),
	)
	require.NoError(t, lr.Fit(X, y))
	assert.Equal(t, []int{2, 5, 9}, lr.Classes_)

	score, err := lr.Score(X, y)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)

	probas, err := lr.PredictProba(X)
	require.NoError(t, err)
	r, c := probas.Dims()
	assert.Equal(t, 9, r)
	assert.Equal(t, 3, c)
	for i := 0; i < r; i++ {
		sum := 0.0
		for j := 0; j < c; j++ {
			sum += probas.At(i, j)
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestLogisticRegression_LossHistoryAscends(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{-2, -1, 1, 2})
	y := mat.NewDense(4, 1, []float64{0, 0, 1, 1})

	lr := NewLogisticRegression(
		WithLogisticIterationLimit(50),
		WithLogisticTol(0),
		WithLogisticLearningRate(0.1),
		WithLogisticLossHistory(true),
	)
	require.NoError(t, lr.Fit(X, y))

	history := lr.LossHistory()
	require.Len(t, history, 50)
	// Gradient ascent on the log-likelihood: later values are larger.
	assert.Greater(t, history[len(history)-1], history[0])
}

func TestLogisticRegression_Validation(t *testing.T) {
	lr := NewLogisticRegression()

	_, err := lr.Predict(mat.NewDense(1, 1, nil))
	assert.Error(t, err, "predict before fit must fail")

	err = lr.Fit(mat.NewDense(3, 1, nil), mat.NewDense(2, 1, nil))
	assert.Error(t, err)

	// A single class cannot be fitted.
	err = lr.Fit(mat.NewDense(3, 1, []float64{1, 2, 3}), mat.NewDense(3, 1, []float64{1, 1, 1}))
	assert.Error(t, err)
}
