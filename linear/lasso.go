package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lingrad/core/model"
	"github.com/YuminosukeSato/lingrad/core/optimize"
	"github.com/YuminosukeSato/lingrad/metrics"
	"github.com/YuminosukeSato/lingrad/pkg/errors"
	"github.com/YuminosukeSato/lingrad/pkg/log"
)

// Lasso is an L1-regularized linear regression trained by cyclic coordinate
// descent with soft-thresholding. Coefficients of uninformative features are
// driven exactly to zero.
type Lasso struct {
	state *model.StateManager

	// Hyperparameters
	alpha          float64 // L1 strength in per-sample units
	iterationLimit int
	tol            float64
	fitIntercept   bool
	collectLoss    bool

	// Learned parameters
	Coef_      *mat.Dense // (n_features x 1), sparse in practice
	Intercept_ float64

	lossHistory []float64
	nIter       int
}

// NewLasso creates a Lasso model with the given L1 strength.
func NewLasso(alpha float64, opts ...LassoOption) *Lasso {
	l := &Lasso{
		state:          model.NewStateManager(),
		alpha:          alpha,
		iterationLimit: 1000,
		tol:            1e-6,
		fitIntercept:   true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Fit trains the model on X (n_samples x n_features) and the column vector y.
func (l *Lasso) Fit(X, y mat.Matrix) error {
	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()

	if nSamples == 0 || nFeatures == 0 {
		return errors.Wrap(errors.ErrEmptyData, "Lasso.Fit")
	}
	if yRows != nSamples {
		return errors.NewDimensionError("Lasso.Fit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("Lasso.Fit", "y must be a column vector")
	}

	logger := log.Logger()
	logger.Info().
		Str(log.ModelNameKey, "Lasso").
		Str(log.OperationKey, "fit").
		Int(log.SamplesKey, nSamples).
		Int(log.FeaturesKey, nFeatures).
		Msg("fit started")

	// The intercept is never penalized: instead of an intercept column the
	// data is centered and the offset recovered from the means afterwards.
	XWork := mat.DenseCopyOf(X)
	yWork := mat.NewDense(nSamples, 1, nil)
	yWork.Copy(y)

	var xMeans []float64
	var yMean float64
	if l.fitIntercept {
		xMeans = make([]float64, nFeatures)
		for j := 0; j < nFeatures; j++ {
			var sum float64
			for i := 0; i < nSamples; i++ {
				sum += XWork.At(i, j)
			}
			xMeans[j] = sum / float64(nSamples)
			for i := 0; i < nSamples; i++ {
				XWork.Set(i, j, XWork.At(i, j)-xMeans[j])
			}
		}
		for i := 0; i < nSamples; i++ {
			yMean += yWork.At(i, 0)
		}
		yMean /= float64(nSamples)
		for i := 0; i < nSamples; i++ {
			yWork.Set(i, 0, yWork.At(i, 0)-yMean)
		}
	}

	// alpha is per-sample; the coordinate optimizer thresholds raw
	// correlations, so scale by the sample count.
	opt, err := optimize.NewCoordinateOptimizer(l.alpha*float64(nSamples),
		optimize.WithCoordinateIterationLimit(l.iterationLimit),
		optimize.WithCoordinateMinUpdate(l.tol),
	)
	if err != nil {
		return err
	}

	var callOpts []optimize.ExtremaOption
	if l.collectLoss {
		callOpts = append(callOpts, optimize.WithLearningData())
	}

	coefficients, err := opt.FindExtrema(XWork, yWork, callOpts...)
	if err != nil {
		return err
	}

	l.lossHistory = opt.CostTrace()
	l.nIter = opt.Iterations()
	if l.nIter >= l.iterationLimit {
		errors.Warn(errors.NewConvergenceWarning("Lasso", l.nIter, ""))
	}

	l.Coef_ = coefficients
	l.Intercept_ = 0
	if l.fitIntercept {
		l.Intercept_ = yMean
		for j := 0; j < nFeatures; j++ {
			l.Intercept_ -= xMeans[j] * coefficients.At(j, 0)
		}
	}

	l.state.SetDimensions(nSamples, nFeatures, 1)
	l.state.SetFitted()
	return nil
}

// Predict returns predictions for X as an (n_samples x 1) matrix.
func (l *Lasso) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := l.state.RequireFitted("Lasso", "Predict"); err != nil {
		return nil, err
	}

	nSamples, nFeatures := X.Dims()
	_, fitFeatures, _ := l.state.Dimensions()
	if nFeatures != fitFeatures {
		return nil, errors.NewDimensionError("Lasso.Predict", fitFeatures, nFeatures, 1)
	}

	predictions := mat.NewDense(nSamples, 1, nil)
	predictions.Mul(X, l.Coef_)
	if l.Intercept_ != 0 {
		for i := 0; i < nSamples; i++ {
			predictions.Set(i, 0, predictions.At(i, 0)+l.Intercept_)
		}
	}
	return predictions, nil
}

// Score returns the coefficient of determination of the predictions on X
// against y.
func (l *Lasso) Score(X, y mat.Matrix) (float64, error) {
	if err := l.state.RequireFitted("Lasso", "Score"); err != nil {
		return 0, err
	}
	yPred, err := l.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(y, yPred)
}

// LossHistory returns the per-sweep loss recorded by the last Fit call, when
// loss collection was enabled.
func (l *Lasso) LossHistory() []float64 {
	return l.lossHistory
}

// NIter returns the number of sweeps the last Fit call ran for.
func (l *Lasso) NIter() int {
	return l.nIter
}
