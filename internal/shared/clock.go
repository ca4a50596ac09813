package shared

import "time"

// Clock supplies the current time.
//
// Week windows and streaks are computed against a Clock so tests can pin "now".
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock [Clock].
type SystemClock struct{}

// Now returns [time.Now] in the local time zone.
func (SystemClock) Now() time.Time { return time.Now() }
