package timezone

import "time"

// FromEpochMillis converts a millisecond epoch into a UTC time. Zero stays
// the zero time so that absent values survive a round trip.
func FromEpochMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// ToEpochMillis is the inverse of FromEpochMillis.
func ToEpochMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// LocalWallClock returns the wall clock reading at the place an instant was
// observed, given that place's offset from UTC in milliseconds. The result is
// expressed in UTC so that it reads as the local hour and minute.
func LocalWallClock(ms, offsetMs int64) time.Time {
	return time.UnixMilli(ms + offsetMs).UTC()
}

// OffsetHours converts a millisecond UTC offset into whole hours, truncating
// toward zero.
func OffsetHours(offsetMs int64) int64 {
	return offsetMs / int64(time.Hour/time.Millisecond)
}

// FixedZone returns a location for a millisecond UTC offset.
func FixedZone(offsetMs int64) *time.Location {
	return time.FixedZone("", int(offsetMs/1000))
}
