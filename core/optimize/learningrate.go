package optimize

import "fmt"

// LearningRateGenerator is a stateful schedule producing one learning-rate
// value per iteration. The lifecycle is explicit:
//
//	uninitialized -> Init -> running -> Stop -> stopped
//
// The gradient optimizer calls Init exactly once at the start of every
// FindExtrema call and Stop exactly once when the loop exits, on every exit
// path. Calling NextValue outside the running state is a programming error
// and panics.
type LearningRateGenerator interface {
	Init(initialRate float64)
	NextValue() float64
	Stop()
}

type scheduleState int

const (
	scheduleUninitialized scheduleState = iota
	scheduleRunning
	scheduleStopped
)

func (s scheduleState) checkRunning(schedule string) {
	if s != scheduleRunning {
		panic(fmt.Sprintf("lingrad: %s: NextValue called while not running (state %d)", schedule, s))
	}
}

// ConstantRate returns the initial rate on every call.
type ConstantRate struct {
	state scheduleState
	rate  float64
}

// NewConstantRate creates a constant learning-rate schedule.
func NewConstantRate() *ConstantRate {
	return &ConstantRate{}
}

// Init seeds the schedule with the initial rate and starts it.
func (c *ConstantRate) Init(initialRate float64) {
	c.rate = initialRate
	c.state = scheduleRunning
}

// NextValue returns the initial rate.
func (c *ConstantRate) NextValue() float64 {
	c.state.checkRunning("ConstantRate")
	return c.rate
}

// Stop ends the schedule.
func (c *ConstantRate) Stop() {
	c.state = scheduleStopped
}

// DecreasingRate returns initial/(1 + decay*k) for the k-th call (0-based),
// a monotonically non-increasing schedule.
type DecreasingRate struct {
	state scheduleState
	rate  float64
	decay float64
	calls int
}

// NewDecreasingRate creates a decreasing schedule with the given decay. A
// non-positive decay falls back to 0.1.
func NewDecreasingRate(decay float64) *DecreasingRate {
	if decay <= 0 {
		decay = 0.1
	}
	return &DecreasingRate{decay: decay}
}

// Init seeds the schedule with the initial rate, resets the call counter and
// starts it.
func (d *DecreasingRate) Init(initialRate float64) {
	d.rate = initialRate
	d.calls = 0
	d.state = scheduleRunning
}

// NextValue returns the next value of the decreasing sequence.
func (d *DecreasingRate) NextValue() float64 {
	d.state.checkRunning("DecreasingRate")
	v := d.rate / (1.0 + d.decay*float64(d.calls))
	d.calls++
	return v
}

// Stop ends the schedule.
func (d *DecreasingRate) Stop() {
	d.state = scheduleStopped
}
