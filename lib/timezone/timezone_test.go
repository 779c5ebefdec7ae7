package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocalWallClock(t *testing.T) {
	// 2015-06-01T18:00:00Z observed at UTC+02:00
	ms := time.Date(2015, 6, 1, 18, 0, 0, 0, time.UTC).UnixMilli()
	offset := int64(7_200_000)

	local := LocalWallClock(ms, offset)
	require.Equal(t, 20, local.Hour())
	require.Equal(t, time.UTC, local.Location())
	require.Equal(t, int64(2), OffsetHours(offset))
	require.Equal(t, int64(-5), OffsetHours(-18_000_000))

	// the same instant rendered through a fixed zone agrees with the wall clock
	require.Equal(t, local.Hour(), time.UnixMilli(ms).In(FixedZone(offset)).Hour())
}

func TestEpochMillis(t *testing.T) {
	require.True(t, FromEpochMillis(0).IsZero())
	require.Equal(t, int64(0), ToEpochMillis(time.Time{}))

	ts := FromEpochMillis(1_426_000_000_123)
	require.Equal(t, int64(1_426_000_000_123), ToEpochMillis(ts))
	require.Equal(t, time.UTC, ts.Location())
}
