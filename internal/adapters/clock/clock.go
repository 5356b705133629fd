package clock

import (
	"context"
	"time"
)

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// TimerDelay waits a fixed duration on a real timer. The wait ends early only
// when ctx is done.
type TimerDelay struct {
	Duration time.Duration
}

func NewTimerDelay(d time.Duration) *TimerDelay {
	return &TimerDelay{Duration: d}
}

func (d *TimerDelay) Wait(ctx context.Context) error {
	if d.Duration <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d.Duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoDelay returns immediately.
type NoDelay struct{}

func (NoDelay) Wait(ctx context.Context) error {
	return ctx.Err()
}
