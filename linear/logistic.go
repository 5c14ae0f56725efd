package linear

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lingrad/core/model"
	"github.com/YuminosukeSato/lingrad/core/optimize"
	"github.com/YuminosukeSato/lingrad/metrics"
	"github.com/YuminosukeSato/lingrad/pkg/errors"
	"github.com/YuminosukeSato/lingrad/pkg/log"
	"github.com/YuminosukeSato/lingrad/preprocessing"
)

// LogisticRegression is a classifier trained by gradient ascent on the
// log-likelihood. Binary problems use the logistic link on a single output
// column; problems with more than two classes use the softmax link on a
// one-hot label expansion.
type LogisticRegression struct {
	state *model.StateManager

	// Hyperparameters
	lambda         float64
	batchSize      int
	iterationLimit int
	tol            float64
	eta0           float64
	learningRate   string
	decay          float64
	fitIntercept   bool
	interceptScale float64
	randomState    int64
	collectLoss    bool

	// Learned parameters. Coef_ includes the intercept row (the last one)
	// when fitIntercept is set.
	Coef_    *mat.Dense
	Classes_ []int

	lossHistory []float64
	nIter       int
}

// NewLogisticRegression creates a LogisticRegression classifier with default
// hyperparameters.
func NewLogisticRegression(opts ...LogisticOption) *LogisticRegression {
	lr := &LogisticRegression{
		state:          model.NewStateManager(),
		lambda:         0,
		batchSize:      0,
		iterationLimit: 1000,
		tol:            1e-6,
		eta0:           0.1,
		learningRate:   "constant",
		decay:          0.1,
		fitIntercept:   true,
		interceptScale: 1.0,
		randomState:    -1,
	}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit trains the classifier on X (n_samples x n_features) and the column
// vector y of class labels.
func (lr *LogisticRegression) Fit(X, y mat.Matrix) error {
	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()

	if nSamples == 0 || nFeatures == 0 {
		return errors.Wrap(errors.ErrEmptyData, "LogisticRegression.Fit")
	}
	if yRows != nSamples {
		return errors.NewDimensionError("LogisticRegression.Fit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("LogisticRegression.Fit", "y must be a column vector")
	}

	lr.extractClasses(y)
	if len(lr.Classes_) < 2 {
		return errors.NewValueError("LogisticRegression.Fit", "need at least 2 classes")
	}

	logger := log.Logger()
	logger.Info().
		Str(log.ModelNameKey, "LogisticRegression").
		Str(log.OperationKey, "fit").
		Int(log.SamplesKey, nSamples).
		Int(log.FeaturesKey, nFeatures).
		Int(log.TargetsKey, len(lr.Classes_)).
		Msg("fit started")

	XFit := mat.Matrix(X)
	if lr.fitIntercept {
		var err error
		XFit, err = preprocessing.AddIntercept(X, lr.interceptScale)
		if err != nil {
			return err
		}
	}

	targets, link := lr.buildTargets(y, nSamples)

	batch := lr.batchSize
	if batch <= 0 || batch > nSamples {
		batch = nSamples
	}

	opt, err := optimize.NewGradientOptimizer(optimize.LogLikelihood{Link: link}, batch, nSamples,
		optimize.WithLambda(lr.lambda),
		optimize.WithIterationLimit(lr.iterationLimit),
		optimize.WithMinCoefficientsUpdate(lr.tol),
		optimize.WithInitialLearningRate(lr.eta0),
		optimize.WithLearningRateGenerator(lr.schedule()),
		optimize.WithRandomSeed(lr.randomState),
	)
	if err != nil {
		return err
	}

	callOpts := []optimize.ExtremaOption{optimize.WithMaximization()}
	if lr.collectLoss {
		callOpts = append(callOpts, optimize.WithLearningData())
	}

	coefficients, err := opt.FindExtrema(XFit, targets, callOpts...)
	if err != nil {
		return err
	}

	lr.lossHistory = opt.CostTrace()
	lr.nIter = opt.Iterations()
	if lr.nIter >= lr.iterationLimit {
		errors.Warn(errors.NewConvergenceWarning("LogisticRegression", lr.nIter, ""))
	}

	lr.Coef_ = coefficients
	lr.state.SetDimensions(nSamples, nFeatures, len(lr.Classes_))
	lr.state.SetFitted()
	return nil
}

// extractClasses records the sorted unique class labels of y.
func (lr *LogisticRegression) extractClasses(y mat.Matrix) {
	rows, _ := y.Dims()
	seen := make(map[int]bool)
	for i := 0; i < rows; i++ {
		seen[int(y.At(i, 0))] = true
	}

	lr.Classes_ = make([]int, 0, len(seen))
	for class := range seen {
		lr.Classes_ = append(lr.Classes_, class)
	}
	sort.Ints(lr.Classes_)
}

// buildTargets converts class labels into the label matrix the cost function
// expects: a 0/1 column for binary problems, a one-hot matrix otherwise.
func (lr *LogisticRegression) buildTargets(y mat.Matrix, nSamples int) (*mat.Dense, optimize.LinkFunction) {
	if len(lr.Classes_) == 2 {
		targets := mat.NewDense(nSamples, 1, nil)
		for i := 0; i < nSamples; i++ {
			if int(y.At(i, 0)) == lr.Classes_[1] {
				targets.Set(i, 0, 1)
			}
		}
		return targets, optimize.Logistic{}
	}

	index := make(map[int]int, len(lr.Classes_))
	for j, class := range lr.Classes_ {
		index[class] = j
	}
	targets := mat.NewDense(nSamples, len(lr.Classes_), nil)
	for i := 0; i < nSamples; i++ {
		targets.Set(i, index[int(y.At(i, 0))], 1)
	}
	return targets, optimize.Softmax{}
}

// decisionMatrix returns X (with the intercept column when configured)
// multiplied by the coefficients.
func (lr *LogisticRegression) decisionMatrix(X mat.Matrix) (*mat.Dense, error) {
	nSamples, nFeatures := X.Dims()
	_, fitFeatures, _ := lr.state.Dimensions()
	if nFeatures != fitFeatures {
		return nil, errors.NewDimensionError("LogisticRegression", fitFeatures, nFeatures, 1)
	}

	XPred := mat.Matrix(X)
	if lr.fitIntercept {
		var err error
		XPred, err = preprocessing.AddIntercept(X, lr.interceptScale)
		if err != nil {
			return nil, err
		}
	}

	scores := mat.NewDense(nSamples, lr.nOutputs(), nil)
	scores.Mul(XPred, lr.Coef_)
	return scores, nil
}

func (lr *LogisticRegression) nOutputs() int {
	if len(lr.Classes_) == 2 {
		return 1
	}
	return len(lr.Classes_)
}

// PredictProba returns class probabilities as an (n_samples x n_classes)
// matrix, columns ordered like Classes_.
func (lr *LogisticRegression) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if err := lr.state.RequireFitted("LogisticRegression", "PredictProba"); err != nil {
		return nil, err
	}

	scores, err := lr.decisionMatrix(X)
	if err != nil {
		return nil, err
	}

	nSamples, _ := scores.Dims()
	if len(lr.Classes_) == 2 {
		probs := optimize.Logistic{}.Apply(scores)
		out := mat.NewDense(nSamples, 2, nil)
		for i := 0; i < nSamples; i++ {
			p := probs.At(i, 0)
			out.Set(i, 0, 1-p)
			out.Set(i, 1, p)
		}
		return out, nil
	}
	return optimize.Softmax{}.Apply(scores), nil
}

// Predict returns the most probable class label for each row of X.
func (lr *LogisticRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := lr.state.RequireFitted("LogisticRegression", "Predict"); err != nil {
		return nil, err
	}

	scores, err := lr.decisionMatrix(X)
	if err != nil {
		return nil, err
	}

	nSamples, _ := scores.Dims()
	predictions := mat.NewDense(nSamples, 1, nil)

	if len(lr.Classes_) == 2 {
		for i := 0; i < nSamples; i++ {
			if scores.At(i, 0) >= 0 {
				predictions.Set(i, 0, float64(lr.Classes_[1]))
			} else {
				predictions.Set(i, 0, float64(lr.Classes_[0]))
			}
		}
		return predictions, nil
	}

	for i := 0; i < nSamples; i++ {
		best, bestScore := 0, scores.At(i, 0)
		for j := 1; j < len(lr.Classes_); j++ {
			if scores.At(i, j) > bestScore {
				best, bestScore = j, scores.At(i, j)
			}
		}
		predictions.Set(i, 0, float64(lr.Classes_[best]))
	}
	return predictions, nil
}

// Score returns the mean accuracy of the predictions on X against y.
func (lr *LogisticRegression) Score(X, y mat.Matrix) (float64, error) {
	if err := lr.state.RequireFitted("LogisticRegression", "Score"); err != nil {
		return 0, err
	}
	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.Accuracy(y, yPred)
}

// LossHistory returns the per-iteration log-likelihood recorded by the last
// Fit call, when loss collection was enabled.
func (lr *LogisticRegression) LossHistory() []float64 {
	return lr.lossHistory
}

// NIter returns the number of iterations the last Fit call ran for.
func (lr *LogisticRegression) NIter() int {
	return lr.nIter
}

func (lr *LogisticRegression) schedule() optimize.LearningRateGenerator {
	if lr.learningRate == "decreasing" {
		return optimize.NewDecreasingRate(lr.decay)
	}
	return optimize.NewConstantRate()
}
