package chrono

import (
	"context"
	"time"
)

// Clock is the interface that anything depending on the system clock or on
// deliberate pauses should use.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Sleep blocks for d or until ctx is done, whichever comes first.
	// It returns ctx.Err() if the context ended the wait.
	Sleep(ctx context.Context, d time.Duration) error
}

// StandardClock is the standard implementation of Clock using the standard library.
type StandardClock struct{}

// NewStandardClock is the constructor of StandardClock.
func NewStandardClock() StandardClock {
	return StandardClock{}
}

func (StandardClock) Now() time.Time {
	return time.Now()
}

func (StandardClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
