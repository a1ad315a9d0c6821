package instrumentation

import (
	"time"
)

// Measurer receives the measurements streams report as they run: counters for
// subscriptions, emissions and terminations, and timings for sequence
// durations. The activity identifies which stream reported the measurement.
type Measurer interface {
	Incr(activity string, name string, value float64, tags ...string)
	Timing(activity string, name string, value time.Duration, tags ...string)
}

// NilMeasurer discards every measurement. It is the default provider.
type NilMeasurer struct{}

func (*NilMeasurer) Incr(activity string, name string, value float64, tags ...string)         {}
func (*NilMeasurer) Timing(activity string, name string, value time.Duration, tags ...string) {}
