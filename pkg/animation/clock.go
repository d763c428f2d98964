package animation

import "time"

// Clock provides time for animations. Tests inject a fake clock into a
// [Scheduler] to step animations deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads wall-clock time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
