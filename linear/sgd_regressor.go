// Package linear provides the linear-model façades built on the optimizers
// in core/optimize: SGDRegressor, Lasso and LogisticRegression.
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lingrad/core/model"
	"github.com/YuminosukeSato/lingrad/core/optimize"
	"github.com/YuminosukeSato/lingrad/metrics"
	"github.com/YuminosukeSato/lingrad/pkg/errors"
	"github.com/YuminosukeSato/lingrad/pkg/log"
	"github.com/YuminosukeSato/lingrad/preprocessing"
)

// SGDRegressor is a linear regression model trained by mini-batch gradient
// descent on the squared loss, with optional ridge-style shrinkage.
type SGDRegressor struct {
	state *model.StateManager

	// Hyperparameters
	lambda         float64 // Regularization strength; 0 disables shrinkage
	batchSize      int     // Rows per gradient step; 0 means full batch
	iterationLimit int     // Hard cap on iterations
	tol            float64 // Minimum coefficient update before stopping
	eta0           float64 // Initial learning rate
	learningRate   string  // Schedule: "constant" or "decreasing"
	decay          float64 // Decay for the decreasing schedule
	initStrategy   string  // Initial coefficients: "zeros" or "random"
	fitIntercept   bool    // Whether to append an intercept column
	interceptScale float64 // Scale of the intercept column
	randomState    int64   // Seed; negative means non-deterministic
	collectLoss    bool    // Record the per-iteration loss history

	// Learned parameters
	Coef_      *mat.Dense // (n_features x 1) coefficients
	Intercept_ float64    // Learned offset (0 when fitIntercept is false)

	lossHistory []float64
	nIter       int
}

// NewSGDRegressor creates an SGDRegressor with default hyperparameters.
func NewSGDRegressor(opts ...SGDOption) *SGDRegressor {
	r := &SGDRegressor{
		state:          model.NewStateManager(),
		lambda:         0,
		batchSize:      0,
		iterationLimit: 1000,
		tol:            1e-6,
		eta0:           0.01,
		learningRate:   "constant",
		decay:          0.1,
		initStrategy:   "zeros",
		fitIntercept:   true,
		interceptScale: 1.0,
		randomState:    -1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fit trains the model on X (n_samples x n_features) and the column vector y.
func (r *SGDRegressor) Fit(X, y mat.Matrix) error {
	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()

	if nSamples == 0 || nFeatures == 0 {
		return errors.Wrap(errors.ErrEmptyData, "SGDRegressor.Fit")
	}
	if yRows != nSamples {
		return errors.NewDimensionError("SGDRegressor.Fit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("SGDRegressor.Fit", "y must be a column vector")
	}

	logger := log.Logger()
	logger.Info().
		Str(log.ModelNameKey, "SGDRegressor").
		Str(log.OperationKey, "fit").
		Int(log.SamplesKey, nSamples).
		Int(log.FeaturesKey, nFeatures).
		Msg("fit started")

	// A zero intercept scale means AddIntercept appends no column, so the
	// coefficient matrix has no intercept row to extract afterwards.
	hasIntercept := r.fitIntercept && r.interceptScale != 0

	XFit := mat.Matrix(X)
	if hasIntercept {
		var err error
		XFit, err = preprocessing.AddIntercept(X, r.interceptScale)
		if err != nil {
			return err
		}
	}

	batch := r.batchSize
	if batch <= 0 || batch > nSamples {
		batch = nSamples
	}

	opt, err := optimize.NewGradientOptimizer(optimize.SquaredLoss{}, batch, nSamples,
		optimize.WithLambda(r.lambda),
		optimize.WithIterationLimit(r.iterationLimit),
		optimize.WithMinCoefficientsUpdate(r.tol),
		optimize.WithInitialLearningRate(r.eta0),
		optimize.WithLearningRateGenerator(r.schedule()),
		optimize.WithCoefficientsInitializer(r.coefficientsInitializer()),
		optimize.WithRandomSeed(r.randomState),
	)
	if err != nil {
		return err
	}

	var callOpts []optimize.ExtremaOption
	if r.collectLoss {
		callOpts = append(callOpts, optimize.WithLearningData())
	}

	coefficients, err := opt.FindExtrema(XFit, y, callOpts...)
	if err != nil {
		return err
	}

	r.lossHistory = opt.CostTrace()
	r.nIter = opt.Iterations()
	if r.nIter >= r.iterationLimit {
		errors.Warn(errors.NewConvergenceWarning("SGDRegressor", r.nIter, ""))
	}

	if hasIntercept {
		// The intercept column is the last one; its effective offset is the
		// learned coefficient times the column scale.
		r.Intercept_ = coefficients.At(nFeatures, 0) * r.interceptScale
		r.Coef_ = mat.DenseCopyOf(coefficients.Slice(0, nFeatures, 0, 1))
	} else {
		r.Intercept_ = 0
		r.Coef_ = coefficients
	}

	r.state.SetDimensions(nSamples, nFeatures, 1)
	r.state.SetFitted()
	return nil
}

// Predict returns predictions for X as an (n_samples x 1) matrix.
func (r *SGDRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := r.state.RequireFitted("SGDRegressor", "Predict"); err != nil {
		return nil, err
	}

	nSamples, nFeatures := X.Dims()
	_, fitFeatures, _ := r.state.Dimensions()
	if nFeatures != fitFeatures {
		return nil, errors.NewDimensionError("SGDRegressor.Predict", fitFeatures, nFeatures, 1)
	}

	predictions := mat.NewDense(nSamples, 1, nil)
	predictions.Mul(X, r.Coef_)
	if r.Intercept_ != 0 {
		for i := 0; i < nSamples; i++ {
			predictions.Set(i, 0, predictions.At(i, 0)+r.Intercept_)
		}
	}
	return predictions, nil
}

// Score returns the coefficient of determination of the predictions on X
// against y.
func (r *SGDRegressor) Score(X, y mat.Matrix) (float64, error) {
	if err := r.state.RequireFitted("SGDRegressor", "Score"); err != nil {
		return 0, err
	}
	yPred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(y, yPred)
}

// LossHistory returns the per-iteration full-dataset loss recorded by the
// last Fit call, when loss collection was enabled.
func (r *SGDRegressor) LossHistory() []float64 {
	return r.lossHistory
}

// NIter returns the number of iterations the last Fit call ran for.
func (r *SGDRegressor) NIter() int {
	return r.nIter
}

func (r *SGDRegressor) schedule() optimize.LearningRateGenerator {
	if r.learningRate == "decreasing" {
		return optimize.NewDecreasingRate(r.decay)
	}
	return optimize.NewConstantRate()
}

func (r *SGDRegressor) coefficientsInitializer() optimize.CoefficientsInitializer {
	if r.initStrategy == "random" {
		return optimize.NewRandomInitializer(r.randomState)
	}
	return optimize.ZeroInitializer{}
}
