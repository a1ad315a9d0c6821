package instrumentation

import (
	"sync"
	"time"

	"github.com/guptarohit/asciigraph"
)

// RateChart is a Measurer that buckets counter increments into per-second
// totals so a stream's throughput can be rendered as an ascii chart. Timings
// are discarded. Intended for development and load investigations rather than
// as a production metrics pipeline.
type RateChart struct {
	mu      sync.Mutex
	started time.Time
	buckets map[string][]float64
}

var _ Measurer = (*RateChart)(nil)

func NewRateChart() *RateChart {
	return &RateChart{
		started: time.Now(),
		buckets: make(map[string][]float64),
	}
}

func (r *RateChart) Incr(activity string, name string, value float64, tags ...string) {
	second := int(time.Since(r.started) / time.Second)

	r.mu.Lock()
	defer r.mu.Unlock()

	series := r.buckets[name]
	for len(series) <= second {
		series = append(series, 0)
	}
	series[second] += value
	r.buckets[name] = series
}

func (r *RateChart) Timing(activity string, name string, value time.Duration, tags ...string) {}

// Render draws the per-second totals of the named counter. It returns an
// empty string when the counter has never been incremented.
func (r *RateChart) Render(name string) string {
	r.mu.Lock()
	series := make([]float64, len(r.buckets[name]))
	copy(series, r.buckets[name])
	r.mu.Unlock()

	if len(series) == 0 {
		return ""
	}

	return asciigraph.Plot(
		series,
		asciigraph.Height(10),
		asciigraph.Caption(name+" per second"),
	)
}
