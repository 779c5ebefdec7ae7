package chrono

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStandardSleepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewStandardClock().Sleep(ctx, time.Hour)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStandardSleepZero(t *testing.T) {
	err := NewStandardClock().Sleep(context.Background(), 0)
	require.NoError(t, err)
}

func TestFakeClock(t *testing.T) {
	start := time.Date(2015, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start)

	require.NoError(t, clock.Sleep(context.Background(), 2*time.Second))
	require.NoError(t, clock.Sleep(context.Background(), 0))
	require.Equal(t, start.Add(2*time.Second), clock.Now())
	require.Equal(t, []time.Duration{2 * time.Second, 0}, clock.Sleeps())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, clock.Sleep(ctx, time.Second))
	require.Len(t, clock.Sleeps(), 2)
}
