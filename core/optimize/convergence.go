package optimize

// ConvergenceDetector decides whether the optimizer should stop. It is
// consulted once before every iteration with the norm of the previous
// coefficient update and the number of iterations completed so far
// (zero-based: the first consultation happens with iteration 0 and a delta
// of math.MaxFloat64, so a detector can never halt before one real update
// exists to compare).
type ConvergenceDetector interface {
	IsConverged(delta float64, iteration int) bool
}

// DeltaDetector is the default stopping rule: converged once the update norm
// drops below MinUpdate, or once IterationLimit iterations have completed.
type DeltaDetector struct {
	MinUpdate      float64
	IterationLimit int
}

// NewDeltaDetector creates a DeltaDetector.
func NewDeltaDetector(minUpdate float64, iterationLimit int) *DeltaDetector {
	return &DeltaDetector{MinUpdate: minUpdate, IterationLimit: iterationLimit}
}

// IsConverged implements ConvergenceDetector.
func (d *DeltaDetector) IsConverged(delta float64, iteration int) bool {
	return delta < d.MinUpdate || iteration >= d.IterationLimit
}
