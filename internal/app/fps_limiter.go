package app

import (
	"time"

	"gltutor/internal/config"
)

// FPSLimiter paces frames to config.GetFPSLimit
type FPSLimiter struct {
	next time.Time
	now  func() time.Time
	wait func(time.Duration)
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{now: time.Now, wait: preciseSleep}
}

// Wait blocks until the next frame is due. It returns immediately when the
// limit is 0. A frame late by more than one period resyncs instead of
// rushing to catch up.
func (f *FPSLimiter) Wait() {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)
	now := f.now()

	if f.next.IsZero() {
		f.next = now.Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	if remaining := f.next.Sub(now); remaining > 0 {
		f.wait(remaining)
	}

	if late := f.now().Sub(f.next); late > target {
		f.next = f.now()
	}
}

// preciseSleep sleeps most of d and spins the last 200µs,
// which is much more accurate at high frame caps
func preciseSleep(d time.Duration) {
	deadline := time.Now().Add(d)
	if d > 200*time.Microsecond {
		time.Sleep(d - 200*time.Microsecond)
	}
	for time.Now().Before(deadline) {
	}
}
