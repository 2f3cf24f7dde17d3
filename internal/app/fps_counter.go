package app

import "time"

// FPSCounter counts frames and reports a rate once per interval
type FPSCounter struct {
	interval time.Duration
	frames   int
	last     time.Time
}

func NewFPSCounter(interval time.Duration, start time.Time) *FPSCounter {
	return &FPSCounter{interval: interval, last: start}
}

// Frame records a frame at now. ok is true once per interval, with the
// rounded average rate over that interval.
func (c *FPSCounter) Frame(now time.Time) (fps int, ok bool) {
	c.frames++
	elapsed := now.Sub(c.last)
	if elapsed < c.interval {
		return 0, false
	}
	fps = int(float64(c.frames)/elapsed.Seconds() + 0.5)
	c.frames = 0
	c.last = now
	return fps, true
}
