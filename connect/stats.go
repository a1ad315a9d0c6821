package connect

import (
	"context"
	"time"

	"github.com/ducka/go-coracle/observe"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// StatsSample is a point-in-time reading of host resource usage.
type StatsSample struct {
	At                time.Time
	CPUPercent        float64
	MemoryUsedPercent float64
	MemoryUsedBytes   uint64
}

// StatsSource observes host cpu and memory usage on a fixed interval. A
// failed reading ends the sequence through the error path.
func StatsSource(interval time.Duration, opts ...observe.ObservableOption) *observe.Observable[StatsSample] {
	opts = append([]observe.ObservableOption{observe.WithActivityName("StatsSource")}, opts...)

	return observe.Producer[StatsSample](func(sub *observe.Subscriber[StatsSample]) (observe.TeardownFunc, error) {
		ticker := time.NewTicker(interval)
		ctx := sub.Context()

		go func() {
			for {
				select {
				case <-ctx.Done():
					sub.Error(ctx.Err())
					return
				case at := <-ticker.C:
					sample, err := readSample(ctx, at)
					if err != nil {
						sub.Error(err)
						return
					}
					sub.Next(sample)
				}
			}
		}()

		return ticker.Stop, nil
	}, opts...)
}

func readSample(ctx context.Context, at time.Time) (StatsSample, error) {
	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return StatsSample{}, err
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return StatsSample{}, err
	}

	sample := StatsSample{
		At:                at,
		MemoryUsedPercent: vm.UsedPercent,
		MemoryUsedBytes:   vm.Used,
	}
	if len(percents) > 0 {
		sample.CPUPercent = percents[0]
	}

	return sample, nil
}
