package optimize

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lingrad/pkg/errors"
	"github.com/YuminosukeSato/lingrad/pkg/log"
)

// GradientOptimizer iteratively updates a coefficient matrix along the
// gradient of a cost function until the convergence detector signals or the
// iteration limit is reached. Hyperparameters are fixed and validated at
// construction; FindExtrema may be called any number of times with different
// data and no state leaks between calls apart from the readable cost trace
// of the most recent one.
type GradientOptimizer struct {
	cost              CostFunction
	batchSize         int
	totalObservations int

	lambda                float64
	iterationLimit        int
	minCoefficientsUpdate float64
	initialLearningRate   float64
	randomSeed            int64

	rateGen     LearningRateGenerator
	detector    ConvergenceDetector
	initializer CoefficientsInitializer
	randomizer  IntervalRandomizer

	// Trace of the most recent FindExtrema call with learning-data
	// collection enabled. Reset at the start of every call.
	costTrace []float64

	// Completed iteration count of the most recent FindExtrema call.
	iterations int
}

// GradientOption configures a GradientOptimizer at construction time.
type GradientOption func(*GradientOptimizer)

// WithLambda sets the regularization strength. Zero disables regularization.
func WithLambda(lambda float64) GradientOption {
	return func(o *GradientOptimizer) { o.lambda = lambda }
}

// WithIterationLimit sets the hard cap on iterations.
func WithIterationLimit(limit int) GradientOption {
	return func(o *GradientOptimizer) { o.iterationLimit = limit }
}

// WithMinCoefficientsUpdate sets the convergence tolerance on the L2 norm of
// the coefficient delta.
func WithMinCoefficientsUpdate(minUpdate float64) GradientOption {
	return func(o *GradientOptimizer) { o.minCoefficientsUpdate = minUpdate }
}

// WithInitialLearningRate sets the rate the schedule is initialized with at
// the start of every FindExtrema call.
func WithInitialLearningRate(rate float64) GradientOption {
	return func(o *GradientOptimizer) { o.initialLearningRate = rate }
}

// WithLearningRateGenerator replaces the default constant schedule.
func WithLearningRateGenerator(g LearningRateGenerator) GradientOption {
	return func(o *GradientOptimizer) { o.rateGen = g }
}

// WithConvergenceDetector replaces the default delta-norm detector.
func WithConvergenceDetector(d ConvergenceDetector) GradientOption {
	return func(o *GradientOptimizer) { o.detector = d }
}

// WithCoefficientsInitializer replaces the default zero initializer.
func WithCoefficientsInitializer(init CoefficientsInitializer) GradientOption {
	return func(o *GradientOptimizer) { o.initializer = init }
}

// WithIntervalRandomizer replaces the default batch randomizer.
func WithIntervalRandomizer(r IntervalRandomizer) GradientOption {
	return func(o *GradientOptimizer) { o.randomizer = r }
}

// WithRandomSeed seeds the default batch randomizer and initializer for
// reproducible runs. Negative seeds keep them non-deterministic.
func WithRandomSeed(seed int64) GradientOption {
	return func(o *GradientOptimizer) { o.randomSeed = seed }
}

// NewGradientOptimizer creates a gradient optimizer for a dataset of
// totalObservations rows, sampling batchSize rows per iteration. All
// configuration errors are reported here, before any data is touched.
func NewGradientOptimizer(cost CostFunction, batchSize, totalObservations int, opts ...GradientOption) (*GradientOptimizer, error) {
	if cost == nil {
		return nil, errors.NewValidationError("cost", "must not be nil", nil)
	}
	if totalObservations < 1 {
		return nil, errors.NewValidationError("totalObservations", "must be at least 1", totalObservations)
	}
	if batchSize < 1 || batchSize > totalObservations {
		return nil, errors.NewValidationError("batchSize",
			"must be in range [1, totalObservations]", batchSize)
	}

	o := &GradientOptimizer{
		cost:                  cost,
		batchSize:             batchSize,
		totalObservations:     totalObservations,
		lambda:                0,
		iterationLimit:        1000,
		minCoefficientsUpdate: 1e-6,
		initialLearningRate:   0.01,
		randomSeed:            -1,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.lambda < 0 {
		return nil, errors.NewValidationError("lambda", "must be non-negative", o.lambda)
	}
	if o.iterationLimit < 1 {
		return nil, errors.NewValidationError("iterationLimit", "must be at least 1", o.iterationLimit)
	}
	if o.minCoefficientsUpdate < 0 {
		return nil, errors.NewValidationError("minCoefficientsUpdate", "must be non-negative", o.minCoefficientsUpdate)
	}
	if o.initialLearningRate <= 0 {
		return nil, errors.NewValidationError("initialLearningRate", "must be positive", o.initialLearningRate)
	}

	if o.rateGen == nil {
		o.rateGen = NewConstantRate()
	}
	if o.detector == nil {
		o.detector = NewDeltaDetector(o.minCoefficientsUpdate, o.iterationLimit)
	}
	if o.initializer == nil {
		o.initializer = ZeroInitializer{}
	}
	if o.randomizer == nil {
		o.randomizer = NewIntervalRandomizer(o.randomSeed)
	}
	return o, nil
}

// ExtremaOption configures a single FindExtrema call.
type ExtremaOption func(*extremaConfig)

type extremaConfig struct {
	initial             *mat.Dense
	maximize            bool
	collectLearningData bool
}

// WithInitialCoefficients supplies the starting coefficient matrix instead of
// the configured initializer. It is shape-validated against the data and
// cloned; the caller's matrix is never mutated.
func WithInitialCoefficients(initial *mat.Dense) ExtremaOption {
	return func(c *extremaConfig) { c.initial = initial }
}

// WithMaximization makes the call ascend the cost function instead of
// descending it, flipping the sign of the gradient step.
func WithMaximization() ExtremaOption {
	return func(c *extremaConfig) { c.maximize = true }
}

// WithLearningData records the full-dataset cost after every iteration; read
// it back with CostTrace.
func WithLearningData() ExtremaOption {
	return func(c *extremaConfig) { c.collectLearningData = true }
}

// FindExtrema runs the optimization loop over points (observations x
// features) and labels (observations x outputs) and returns the learned
// (features x outputs) coefficient matrix. Shape errors are reported before
// the first iteration runs. Non-convergence is not an error: the coefficients
// at the iteration cap are returned.
func (o *GradientOptimizer) FindExtrema(points, labels mat.Matrix, opts ...ExtremaOption) (*mat.Dense, error) {
	var cfg extremaConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	nPoints, nFeatures := points.Dims()
	nLabels, nOutputs := labels.Dims()

	if nPoints != o.totalObservations {
		return nil, errors.NewDimensionError("GradientOptimizer.FindExtrema", o.totalObservations, nPoints, 0)
	}
	if nLabels != nPoints {
		return nil, errors.NewDimensionError("GradientOptimizer.FindExtrema", nPoints, nLabels, 0)
	}

	var coefficients *mat.Dense
	if cfg.initial != nil {
		ir, ic := cfg.initial.Dims()
		if ir != nFeatures {
			return nil, errors.NewDimensionError("GradientOptimizer.FindExtrema", nFeatures, ir, 0)
		}
		if ic != nOutputs {
			return nil, errors.NewDimensionError("GradientOptimizer.FindExtrema", nOutputs, ic, 1)
		}
		coefficients = mat.DenseCopyOf(cfg.initial)
	} else {
		coefficients = o.initializer.Generate(nFeatures, nOutputs)
	}

	// The readable trace fields are reset at the start of every call so
	// nothing leaks from the previous one.
	o.costTrace = nil
	o.iterations = 0
	logger := log.Logger()

	o.rateGen.Init(o.initialLearningRate)
	defer o.rateGen.Stop()

	prev := mat.NewDense(nFeatures, nOutputs, nil)
	var diff mat.Dense
	delta := math.MaxFloat64

	for i := 0; ; i++ {
		if o.detector.IsConverged(delta, i) {
			break
		}
		if i >= o.iterationLimit {
			break
		}

		start, end := 0, nPoints
		if o.batchSize < nPoints {
			start, end = o.randomizer.IntInterval(0, nPoints, o.batchSize)
		}
		pointsBatch := sliceRows(points, start, end)
		labelsBatch := sliceRows(labels, start, end)

		gradient := o.cost.Gradient(pointsBatch, coefficients, labelsBatch)
		rate := o.rateGen.NextValue()

		prev.Copy(coefficients)

		if o.lambda > 0 {
			coefficients.Scale(1.0-2.0*rate*o.lambda, coefficients)
		}

		gradient.Scale(rate, gradient)
		if cfg.maximize {
			coefficients.Add(coefficients, gradient)
		} else {
			coefficients.Sub(coefficients, gradient)
		}

		if cfg.collectLearningData {
			// Cost is always taken over the full dataset so trace values
			// stay comparable across iterations regardless of batching.
			cost := o.cost.Cost(points, coefficients, labels)
			o.costTrace = append(o.costTrace, cost)
		}

		diff.Sub(coefficients, prev)
		delta = mat.Norm(&diff, 2)
		o.iterations = i + 1

		evt := logger.Debug().
			Int(log.IterationKey, i).
			Float64(log.DeltaKey, delta).
			Float64(log.LearningRateKey, rate)
		if cfg.collectLearningData {
			evt = evt.Float64(log.CostKey, o.costTrace[len(o.costTrace)-1])
		}
		evt.Msg("gradient iteration")
	}

	return coefficients, nil
}

// CostTrace returns the per-iteration full-dataset costs recorded by the most
// recent FindExtrema call made with WithLearningData. It is empty after calls
// without learning-data collection.
func (o *GradientOptimizer) CostTrace() []float64 {
	return o.costTrace
}

// Iterations returns the number of iterations completed by the most recent
// FindExtrema call.
func (o *GradientOptimizer) Iterations() int {
	return o.iterations
}

// sliceRows returns the [start, end) row window of m without copying when m
// supports slicing.
func sliceRows(m mat.Matrix, start, end int) mat.Matrix {
	type rowSlicer interface {
		Slice(i, k, j, l int) mat.Matrix
	}
	_, c := m.Dims()
	if s, ok := m.(rowSlicer); ok {
		return s.Slice(start, end, 0, c)
	}

	out := mat.NewDense(end-start, c, nil)
	for i := start; i < end; i++ {
		for j := 0; j < c; j++ {
			out.Set(i-start, j, m.At(i, j))
		}
	}
	return out
}
