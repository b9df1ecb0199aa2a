package engine

import "time"

// dayKeyLayout is the canonical calendar-day key format. Fixed width and
// zero-padded, so lexicographic order on keys equals chronological order.
const dayKeyLayout = "2006-01-02"

// DayKey converts an instant to its local calendar-day key (YYYY-MM-DD).
// Two instants on the same local day map to the same key regardless of
// time-of-day or timezone offset.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey reconstructs the local date a key identifies. The result is
// midnight local time on that day, never shifted by a timezone conversion.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, key, time.Local)
}

// InRange reports whether day key d falls within [start, end], both bounds
// inclusive. When start > end the range is empty and no key is in it.
func InRange(d, start, end string) bool {
	return start <= d && d <= end
}
