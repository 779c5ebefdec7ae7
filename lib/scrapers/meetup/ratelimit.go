package meetup

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"eventizer/lib/chrono"
)

const (
	// MinRemainingRequests is the quota at or below which the client cools down
	// until the window resets.
	MinRemainingRequests = 5

	headerRemaining = "X-RateLimit-Remaining"
	headerReset     = "X-RateLimit-Reset"
)

// RateLimiter watches the remaining quota the API reports on each response
// and pauses the next request until the window resets once it runs low.
type RateLimiter struct {
	clock chrono.Clock

	mutex   sync.Mutex
	pending time.Duration
}

func NewRateLimiter(clock chrono.Clock) *RateLimiter {
	return &RateLimiter{clock: clock}
}

// Observe records the quota carried by a response. Responses without both
// headers, or with unparsable values, are ignored.
func (l *RateLimiter) Observe(header http.Header) {
	remainingRaw := header.Get(headerRemaining)
	resetRaw := header.Get(headerReset)
	if remainingRaw == "" || resetRaw == "" {
		return
	}
	remaining, err := strconv.Atoi(remainingRaw)
	if err != nil {
		slog.Warn("invalid rate limit header", "header", headerRemaining, "value", remainingRaw)
		return
	}
	reset, err := strconv.ParseFloat(resetRaw, 64)
	if err != nil {
		slog.Warn("invalid rate limit header", "header", headerReset, "value", resetRaw)
		return
	}
	l.observe(remaining, time.Duration(reset*float64(time.Second)))
}

func (l *RateLimiter) observe(remaining int, reset time.Duration) {
	if remaining > MinRemainingRequests || reset <= 0 {
		return
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if reset > l.pending {
		l.pending = reset
	}
	slog.Debug("rate limit almost exhausted", "remaining", remaining, "reset", reset)
}

// Wait sleeps off any pending cooldown. It returns early with the context's
// error if ctx ends first, leaving the cooldown in place.
func (l *RateLimiter) Wait(ctx context.Context) error {
	l.mutex.Lock()
	pending := l.pending
	l.mutex.Unlock()
	if pending <= 0 {
		return ctx.Err()
	}

	slog.InfoContext(ctx, "waiting for rate limit reset", "duration", pending)
	err := l.clock.Sleep(ctx, pending)
	if err != nil {
		return err
	}

	l.mutex.Lock()
	l.pending = 0
	l.mutex.Unlock()
	return nil
}
