package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestAccuracy(t *testing.T) {
	yTrue := mat.NewDense(4, 1, []float64{0, 1, 1, 0})
	yPred := mat.NewDense(4, 1, []float64{0, 1, 0, 0})

	acc, err := Accuracy(yTrue, yPred)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, acc, 1e-12)

	acc, err = Accuracy(yTrue, yTrue)
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc)

	_, err = Accuracy(yTrue, mat.NewDense(2, 1, nil))
	assert.Error(t, err)
}

func TestLogLoss(t *testing.T) {
	yTrue := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	probs := mat.NewDense(2, 2, []float64{0.8, 0.2, 0.3, 0.7})

	loss, err := LogLoss(yTrue, probs)
	require.NoError(t, err)
	want := -(math.Log(0.8) + math.Log(0.7)) / 2.0
	assert.InDelta(t, want, loss, 1e-12)
}

func TestLogLoss_ClampsProbabilities(t *testing.T) {
	yTrue := mat.NewDense(1, 2, []float64{1, 0})
	probs := mat.NewDense(1, 2, []float64{0, 1})

	loss, err := LogLoss(yTrue, probs)
	require.NoError(t, err)
	assert.False(t, math.IsInf(loss, 1))
	assert.InDelta(t, -math.Log(1e-15), loss, 1e-3)
}

func TestLogLoss_Validation(t *testing.T) {
	_, err := LogLoss(mat.NewDense(2, 2, nil), mat.NewDense(3, 2, nil))
	assert.Error(t, err, "shape mismatch must fail")
}
