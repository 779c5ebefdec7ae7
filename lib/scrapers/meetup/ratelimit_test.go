package meetup

import (
	"context"
	"net/http"
	"testing"
	"time"

	"eventizer/lib/chrono"

	"github.com/stretchr/testify/require"
)

func quotaHeader(remaining, reset string) http.Header {
	header := http.Header{}
	if remaining != "" {
		header.Set(headerRemaining, remaining)
	}
	if reset != "" {
		header.Set(headerReset, reset)
	}
	return header
}

func TestRateLimiter(t *testing.T) {
	testCases := []struct {
		name      string
		header    http.Header
		expectErr bool
		sleeps    []time.Duration
	}{
		{name: "plenty left", header: quotaHeader("30", "10")},
		{name: "exactly at the threshold", header: quotaHeader("5", "7"), sleeps: []time.Duration{7 * time.Second}},
		{name: "exhausted", header: quotaHeader("0", "1.5"), sleeps: []time.Duration{1500 * time.Millisecond}},
		{name: "missing reset", header: quotaHeader("1", "")},
		{name: "missing remaining", header: quotaHeader("", "10")},
		{name: "garbage", header: quotaHeader("lots", "10")},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			clock := chrono.NewFakeClock(time.Unix(0, 0))
			limiter := NewRateLimiter(clock)

			limiter.Observe(test.header)
			require.NoError(t, limiter.Wait(context.Background()))
			require.Equal(t, len(test.sleeps), len(clock.Sleeps()))
			for i, d := range test.sleeps {
				require.Equal(t, d, clock.Sleeps()[i])
			}

			// the cooldown is consumed by the first wait
			require.NoError(t, limiter.Wait(context.Background()))
			require.Equal(t, len(test.sleeps), len(clock.Sleeps()))
		})
	}
}

func TestRateLimiterCancelled(t *testing.T) {
	clock := chrono.NewFakeClock(time.Unix(0, 0))
	limiter := NewRateLimiter(clock)
	limiter.Observe(quotaHeader("2", "60"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, limiter.Wait(ctx), context.Canceled)

	// the cooldown is still owed after a cancelled wait
	require.NoError(t, limiter.Wait(context.Background()))
	require.Equal(t, []time.Duration{time.Minute}, clock.Sleeps())
}
