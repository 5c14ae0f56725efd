package optimize

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lingrad/pkg/errors"
	"github.com/YuminosukeSato/lingrad/pkg/log"
)

// CoordinateOptimizer minimizes the squared loss with an L1 penalty by cyclic
// coordinate descent: each sweep visits every feature dimension in turn,
// computes the closed-form optimum for that coordinate on the partial
// residual, and soft-thresholds it by lambda. Coefficients whose unconstrained
// magnitude falls below the threshold are zeroed, which is what induces
// sparsity. Coordinate descent always uses the full dataset; there is no
// batch sampling.
type CoordinateOptimizer struct {
	lambda                float64
	iterationLimit        int
	minCoefficientsUpdate float64

	cost        CostFunction
	detector    ConvergenceDetector
	initializer CoefficientsInitializer

	costTrace  []float64
	iterations int
}

// CoordinateOption configures a CoordinateOptimizer at construction time.
type CoordinateOption func(*CoordinateOptimizer)

// WithCoordinateIterationLimit sets the hard cap on full sweeps.
func WithCoordinateIterationLimit(limit int) CoordinateOption {
	return func(o *CoordinateOptimizer) { o.iterationLimit = limit }
}

// WithCoordinateMinUpdate sets the convergence tolerance on the L2 norm of
// the per-sweep coefficient delta.
func WithCoordinateMinUpdate(minUpdate float64) CoordinateOption {
	return func(o *CoordinateOptimizer) { o.minCoefficientsUpdate = minUpdate }
}

// WithCoordinateConvergenceDetector replaces the default delta-norm detector.
func WithCoordinateConvergenceDetector(d ConvergenceDetector) CoordinateOption {
	return func(o *CoordinateOptimizer) { o.detector = d }
}

// WithCoordinateInitializer replaces the default zero initializer.
func WithCoordinateInitializer(init CoefficientsInitializer) CoordinateOption {
	return func(o *CoordinateOptimizer) { o.initializer = init }
}

// NewCoordinateOptimizer creates a coordinate-descent optimizer with the
// given L1 strength. Configuration errors are reported here.
func NewCoordinateOptimizer(lambda float64, opts ...CoordinateOption) (*CoordinateOptimizer, error) {
	if lambda < 0 {
		return nil, errors.NewValidationError("lambda", "must be non-negative", lambda)
	}

	o := &CoordinateOptimizer{
		lambda:                lambda,
		iterationLimit:        1000,
		minCoefficientsUpdate: 1e-6,
		cost:                  SquaredLoss{},
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.iterationLimit < 1 {
		return nil, errors.NewValidationError("iterationLimit", "must be at least 1", o.iterationLimit)
	}
	if o.minCoefficientsUpdate < 0 {
		return nil, errors.NewValidationError("minCoefficientsUpdate", "must be non-negative", o.minCoefficientsUpdate)
	}

	if o.detector == nil {
		o.detector = NewDeltaDetector(o.minCoefficientsUpdate, o.iterationLimit)
	}
	if o.initializer == nil {
		o.initializer = ZeroInitializer{}
	}
	return o, nil
}

// FindExtrema runs coordinate descent over points (observations x features)
// and a single-column label matrix and returns the learned (features x 1)
// coefficient matrix. Convergence is evaluated once per full sweep with the
// same detector contract as the gradient optimizer.
func (o *CoordinateOptimizer) FindExtrema(points, labels mat.Matrix, opts ...ExtremaOption) (*mat.Dense, error) {
	var cfg extremaConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maximize {
		return nil, errors.NewValueError("CoordinateOptimizer.FindExtrema",
			"maximization is not supported for coordinate descent")
	}

	nPoints, nFeatures := points.Dims()
	nLabels, nOutputs := labels.Dims()
	if nLabels != nPoints {
		return nil, errors.NewDimensionError("CoordinateOptimizer.FindExtrema", nPoints, nLabels, 0)
	}
	if nOutputs != 1 {
		return nil, errors.NewValueError("CoordinateOptimizer.FindExtrema", "labels must be a column vector")
	}

	var coefficients *mat.Dense
	if cfg.initial != nil {
		ir, ic := cfg.initial.Dims()
		if ir != nFeatures {
			return nil, errors.NewDimensionError("CoordinateOptimizer.FindExtrema", nFeatures, ir, 0)
		}
		if ic != 1 {
			return nil, errors.NewDimensionError("CoordinateOptimizer.FindExtrema", 1, ic, 1)
		}
		coefficients = mat.DenseCopyOf(cfg.initial)
	} else {
		coefficients = o.initializer.Generate(nFeatures, 1)
	}

	o.costTrace = nil
	o.iterations = 0
	logger := log.Logger()

	// Residuals r = y - X*w, maintained incrementally as coordinates change.
	residuals := make([]float64, nPoints)
	for i := 0; i < nPoints; i++ {
		v := labels.At(i, 0)
		for j := 0; j < nFeatures; j++ {
			v -= points.At(i, j) * coefficients.At(j, 0)
		}
		residuals[i] = v
	}

	prev := mat.NewDense(nFeatures, 1, nil)
	var diff mat.Dense
	delta := math.MaxFloat64

	for sweep := 0; ; sweep++ {
		if o.detector.IsConverged(delta, sweep) {
			break
		}
		if sweep >= o.iterationLimit {
			break
		}

		prev.Copy(coefficients)

		for j := 0; j < nFeatures; j++ {
			oldWeight := coefficients.At(j, 0)

			// Add coordinate j's contribution back into the residuals so
			// they exclude it.
			if oldWeight != 0 {
				for i := 0; i < nPoints; i++ {
					residuals[i] += points.At(i, j) * oldWeight
				}
			}

			// rho = X_j^T * residuals, xtx = ||X_j||^2.
			rho, xtx := 0.0, 0.0
			for i := 0; i < nPoints; i++ {
				xv := points.At(i, j)
				rho += xv * residuals[i]
				xtx += xv * xv
			}

			newWeight := 0.0
			if xtx > 0 {
				newWeight = softThreshold(rho, o.lambda) / xtx
			}

			if newWeight != 0 {
				for i := 0; i < nPoints; i++ {
					residuals[i] -= points.At(i, j) * newWeight
				}
			}
			coefficients.Set(j, 0, newWeight)
		}

		if cfg.collectLearningData {
			cost := o.cost.Cost(points, coefficients, labels)
			o.costTrace = append(o.costTrace, cost)
		}

		diff.Sub(coefficients, prev)
		delta = mat.Norm(&diff, 2)
		o.iterations = sweep + 1

		logger.Debug().
			Int(log.IterationKey, sweep).
			Float64(log.DeltaKey, delta).
			Msg("coordinate sweep")
	}

	return coefficients, nil
}

// CostTrace returns the per-sweep full-dataset costs recorded by the most
// recent FindExtrema call made with WithLearningData.
func (o *CoordinateOptimizer) CostTrace() []float64 {
	return o.costTrace
}

// Iterations returns the number of full sweeps completed by the most recent
// FindExtrema call.
func (o *CoordinateOptimizer) Iterations() int {
	return o.iterations
}

// softThreshold shrinks x toward zero by threshold, clamping at zero.
func softThreshold(x, threshold float64) float64 {
	switch {
	case x > threshold:
		return x - threshold
	case x < -threshold:
		return x + threshold
	default:
		return 0
	}
}
