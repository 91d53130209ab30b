package duration

import (
	"fmt"
)

// Millisecond bases for the h/m/s breakdown.
const (
	msPerHour   int64 = 3_600_000
	msPerMinute int64 = 60_000
	msPerSecond int64 = 1_000
)

// HMS is the hours/minutes/seconds breakdown of a millisecond count.
type HMS struct {
	Hours   int64
	Minutes int64
	Seconds int64
}

// ToHMS breaks a non-negative millisecond count into whole hours, minutes
// and seconds using floor division. Negative input is treated as zero.
func ToHMS(ms int64) HMS {
	if ms < 0 {
		ms = 0
	}
	return HMS{
		Hours:   ms / msPerHour,
		Minutes: (ms % msPerHour) / msPerMinute,
		Seconds: (ms % msPerMinute) / msPerSecond,
	}
}

// FromHMS converts whole hours and minutes to milliseconds.
func FromHMS(hours, minutes int64) int64 {
	return hours*msPerHour + minutes*msPerMinute
}

// Clock formats a millisecond count as a zero-padded HH:MM:SS string.
func Clock(ms int64) string {
	hms := ToHMS(ms)
	return fmt.Sprintf("%02d:%02d:%02d", hms.Hours, hms.Minutes, hms.Seconds)
}

// ShortHM formats a millisecond count as "3h 5m", dropping the hours part
// when it is zero.
func ShortHM(ms int64) string {
	hms := ToHMS(ms)
	if hms.Hours > 0 {
		return fmt.Sprintf("%dh %dm", hms.Hours, hms.Minutes)
	}
	return fmt.Sprintf("%dm", hms.Minutes)
}

// LongHMS formats a millisecond count as "1h 30m 12s".
func LongHMS(ms int64) string {
	hms := ToHMS(ms)
	return fmt.Sprintf("%dh %dm %ds", hms.Hours, hms.Minutes, hms.Seconds)
}

// DecimalHours formats a millisecond count as decimal hours with two
// places, the format used by the CSV export.
func DecimalHours(ms int64) string {
	return fmt.Sprintf("%.2f", float64(ms)/float64(msPerHour))
}
