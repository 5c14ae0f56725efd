package optimize

import (
	"math/rand"
)

// IntervalRandomizer samples a half-open index interval [start, end) of a
// requested length from [lowerBound, upperBound). Used by the gradient
// optimizer to pick mini-batches; in full-batch mode it is bypassed entirely.
type IntervalRandomizer interface {
	IntInterval(lowerBound, upperBound, intervalLength int) (start, end int)
}

// UniformIntervalRandomizer draws the interval start uniformly from the valid
// positions. When constructed with a non-negative seed the sequence of
// intervals is fully reproducible given the same call order.
type UniformIntervalRandomizer struct {
	rng *rand.Rand
}

// NewIntervalRandomizer creates a randomizer. A seed >= 0 makes it
// deterministic; a negative seed produces run-to-run varying intervals.
func NewIntervalRandomizer(seed int64) *UniformIntervalRandomizer {
	if seed >= 0 {
		return &UniformIntervalRandomizer{rng: rand.New(rand.NewSource(seed))}
	}
	return &UniformIntervalRandomizer{rng: rand.New(rand.NewSource(rand.Int63()))}
}

// IntInterval returns a random [start, start+intervalLength) interval inside
// [lowerBound, upperBound). The length is clamped to the available range.
func (u *UniformIntervalRandomizer) IntInterval(lowerBound, upperBound, intervalLength int) (start, end int) {
	if intervalLength > upperBound-lowerBound {
		intervalLength = upperBound - lowerBound
	}
	span := upperBound - intervalLength - lowerBound + 1
	start = lowerBound + u.rng.Intn(span)
	return start, start + intervalLength
}
