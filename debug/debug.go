// Package debug provides frame timing statistics.
//
package debug

import (
	"time"

	"go.uber.org/zap"
)

const samples = 32

// Timer keeps a moving window of the last 32 frame durations.
//
type Timer struct {
	times [samples]time.Duration
	index int
	n     int
}

func (t *Timer) Add(dt time.Duration) {
	t.times[t.index] = dt
	t.index = (t.index + 1) & (samples - 1)
	if t.n < samples {
		t.n++
	}
}

// Average returns the average duration over the samples collected so far.
//
func (t *Timer) Average() time.Duration {
	if t.n == 0 {
		return 0
	}
	var avg time.Duration
	for _, dt := range t.times[:t.n] {
		avg += dt
	}
	return avg / time.Duration(t.n)
}

func (t *Timer) AveragePerSecond() float64 {
	avg := t.Average()
	if avg == 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// Log writes the current average to l at debug level.
//
func (t *Timer) Log(l *zap.Logger, name string) {
	l.Debug(name,
		zap.Duration("avg", t.Average()),
		zap.Float64("perSecond", t.AveragePerSecond()))
}
