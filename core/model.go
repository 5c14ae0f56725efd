// Package core defines the interfaces shared by all lingrad estimators.
package core

import "gonum.org/v1/gonum/mat"

// Fitter is a model that can be trained on a design matrix and labels.
type Fitter interface {
	Fit(X, y mat.Matrix) error
}

// Predictor is a fitted model that can produce predictions.
type Predictor interface {
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is a fitted model that can score its predictions against labels.
type Scorer interface {
	Score(X, y mat.Matrix) (float64, error)
}

// Model is the full supervised-learning surface every lingrad estimator
// implements.
type Model interface {
	Fitter
	Predictor
	Scorer
}
