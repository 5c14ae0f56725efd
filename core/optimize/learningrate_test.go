package optimize

import (
	"testing"
)

func TestConstantRate(t *testing.T) {
	c := NewConstantRate()
	c.Init(0.5)

	for i := 0; i < 10; i++ {
		if v := c.NextValue(); v != 0.5 {
			t.Errorf("call %d: expected 0.5, got %v", i, v)
		}
	}
	c.Stop()
}

func TestDecreasingRate_MonotoneNonIncreasing(t *testing.T) {
	d := NewDecreasingRate(0.1)
	d.Init(1.0)

	if v := d.NextValue(); v != 1.0 {
		t.Errorf("first value must equal the initial rate, got %v", v)
	}

	prev := 1.0
	for i := 0; i < 100; i++ {
		v := d.NextValue()
		if v > prev {
			t.Fatalf("schedule increased at call %d: %v > %v", i, v, prev)
		}
		prev = v
	}
	d.Stop()
}

func TestDecreasingRate_InitResetsCounter(t *testing.T) {
	d := NewDecreasingRate(0.5)
	d.Init(2.0)
	d.NextValue()
	d.NextValue()
	d.Stop()

	d.Init(2.0)
	if v := d.NextValue(); v != 2.0 {
		t.Errorf("Init must reset the call counter, got %v", v)
	}
	d.Stop()
}

func TestLearningRate_PanicsOutsideRunning(t *testing.T) {
	assertPanics := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	uninitialized := NewConstantRate()
	assertPanics("before Init", func() { uninitialized.NextValue() })

	stopped := NewDecreasingRate(0.1)
	stopped.Init(1.0)
	stopped.Stop()
	assertPanics("after Stop", func() { stopped.NextValue() })
}
